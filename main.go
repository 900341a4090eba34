package main

import "github.com/entremotivator/turoi/cmd"

func main() {
	cmd.Execute()
}
