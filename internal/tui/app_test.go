package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/entremotivator/turoi/internal/config"
	"github.com/entremotivator/turoi/internal/model"
)

func TestNewApp_SeedsFormFromDefaults(t *testing.T) {
	a := NewApp(config.DefaultConfig())

	if !a.editing {
		t.Fatal("new app should open on the input form")
	}
	if a.formVals.cost != "25000.00" {
		t.Fatalf("form cost = %q, want 25000.00", a.formVals.cost)
	}
	if a.formVals.rate != "50.00" {
		t.Fatalf("form rate = %q, want 50.00", a.formVals.rate)
	}
	if a.formVals.days != "15" {
		t.Fatalf("form days = %q, want 15", a.formVals.days)
	}
}

func TestParseFormValues(t *testing.T) {
	in, err := parseFormValues(formValues{cost: "25000.00", rate: "50.00", days: "15"})
	if err != nil {
		t.Fatalf("parseFormValues returned error: %v", err)
	}
	want := model.RentalInputs{CarCost: 25000, DailyRate: 50, RentalDays: 15}
	if in != want {
		t.Fatalf("parsed inputs = %+v, want %+v", in, want)
	}

	_, err = parseFormValues(formValues{cost: "25000", rate: "0", days: "15"})
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("zero rate: err = %v, want ErrInvalidInput", err)
	}

	_, err = parseFormValues(formValues{cost: "not a number", rate: "50", days: "15"})
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Fatalf("garbage cost: err = %v, want ErrInvalidInput", err)
	}
}

func TestFieldValidators(t *testing.T) {
	if err := validatePositiveFloat("50.00"); err != nil {
		t.Fatalf("validatePositiveFloat(50.00) = %v", err)
	}
	if err := validatePositiveFloat("0"); err == nil {
		t.Fatal("validatePositiveFloat(0) accepted zero")
	}
	if err := validatePositiveFloat("-5"); err == nil {
		t.Fatal("validatePositiveFloat(-5) accepted a negative")
	}
	if err := validatePositiveInt("15"); err != nil {
		t.Fatalf("validatePositiveInt(15) = %v", err)
	}
	if err := validatePositiveInt("2.5"); err == nil {
		t.Fatal("validatePositiveInt(2.5) accepted a fraction")
	}
}

func TestRecompute(t *testing.T) {
	a := NewApp(config.DefaultConfig())
	a.height = 40

	a.inputs = model.RentalInputs{CarCost: 10000, DailyRate: 100, RentalDays: 10}
	a.recompute()

	if a.calcErr != nil {
		t.Fatalf("recompute set calcErr: %v", a.calcErr)
	}
	if len(a.series) != 12 {
		t.Fatalf("series length = %d, want 12", len(a.series))
	}
	if got := len(a.milestones.Rows()); got != 12 {
		t.Fatalf("milestone table rows = %d, want 12", got)
	}
}

func TestViewResults_ChartTitleMatchesSeries(t *testing.T) {
	a := NewApp(config.DefaultConfig())
	a.width, a.height = 100, 40

	// 10.5 months to recoup; truncation gives a 12-point series, and the
	// chart card title must report 12, not a rounded-up month count.
	a.inputs = model.RentalInputs{CarCost: 10500, DailyRate: 100, RentalDays: 10}
	a.recompute()
	if len(a.series) != 12 {
		t.Fatalf("series length = %d, want 12", len(a.series))
	}

	view := a.viewResults(a.contentWidth())
	if !strings.Contains(view, "(12 months)") {
		t.Fatal("chart card title should report the 12-month series")
	}
	if strings.Contains(view, "(13 months)") {
		t.Fatal("chart card title rounded the month count up past the series")
	}
}

func TestRecompute_UndefinedClearsSeries(t *testing.T) {
	a := NewApp(config.DefaultConfig())
	a.inputs = model.RentalInputs{CarCost: 10000, DailyRate: 0, RentalDays: 10}
	a.recompute()

	if a.calcErr == nil {
		t.Fatal("recompute with zero income should set calcErr")
	}
	if len(a.series) != 0 {
		t.Fatalf("series length = %d, want 0 (no partial results)", len(a.series))
	}
}
