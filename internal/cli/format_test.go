package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{750, "$750.00"},
		{25000, "$25,000.00"},
		{33.333333, "$33.33"},
		{1234567.895, "$1,234,567.90"},
		{-50, "-$50.00"},
		{2249.9999999999995, "$2,250.00"},
	}

	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	if got := FormatMonths(25000.0 / 750.0); got != "33.33 months" {
		t.Errorf("FormatMonths = %q, want %q", got, "33.33 months")
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(3); got != "3.00%" {
		t.Errorf("FormatPercent(3) = %q, want %q", got, "3.00%")
	}
	if got := FormatPercent(10.456); got != "10.46%" {
		t.Errorf("FormatPercent(10.456) = %q, want %q", got, "10.46%")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
