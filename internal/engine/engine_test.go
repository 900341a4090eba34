package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/entremotivator/turoi/internal/model"
)

const tolerance = 1e-9

func TestCompute_TypicalScenario(t *testing.T) {
	// 25000 cost, 50/day, 15 days/month
	res, err := Compute(model.RentalInputs{CarCost: 25000, DailyRate: 50, RentalDays: 15})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	if res.MonthlyIncome != 750 {
		t.Fatalf("MonthlyIncome = %.2f, want 750.00", res.MonthlyIncome)
	}
	if math.Abs(res.MonthsToRecoup-25000.0/750.0) > tolerance {
		t.Fatalf("MonthsToRecoup = %.4f, want %.4f", res.MonthsToRecoup, 25000.0/750.0)
	}
	if math.Abs(res.ROIPercent-3.0) > tolerance {
		t.Fatalf("ROIPercent = %.4f, want 3.00", res.ROIPercent)
	}
}

func TestCompute_RoundNumbers(t *testing.T) {
	// 10000 cost, 100/day, 10 days/month
	res, err := Compute(model.RentalInputs{CarCost: 10000, DailyRate: 100, RentalDays: 10})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}

	if res.MonthlyIncome != 1000 {
		t.Fatalf("MonthlyIncome = %.2f, want 1000.00", res.MonthlyIncome)
	}
	if res.MonthsToRecoup != 10 {
		t.Fatalf("MonthsToRecoup = %.2f, want 10.00", res.MonthsToRecoup)
	}
	if res.ROIPercent != 10 {
		t.Fatalf("ROIPercent = %.2f, want 10.00", res.ROIPercent)
	}
}

func TestCompute_ZeroIncomeIsUndefined(t *testing.T) {
	cases := []struct {
		name string
		in   model.RentalInputs
	}{
		{"zero rate", model.RentalInputs{CarCost: 25000, DailyRate: 0, RentalDays: 15}},
		{"zero days", model.RentalInputs{CarCost: 25000, DailyRate: 50, RentalDays: 0}},
		{"both zero", model.RentalInputs{CarCost: 25000, DailyRate: 0, RentalDays: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.in)
			if !errors.Is(err, ErrNoIncome) {
				t.Fatalf("Compute error = %v, want ErrNoIncome", err)
			}
		})
	}
}

func TestCompute_ZeroCostIsUndefined(t *testing.T) {
	// Free car with real income: ROI would divide by zero. Policy is to
	// treat it as undefined rather than emit an infinite percentage.
	_, err := Compute(model.RentalInputs{CarCost: 0, DailyRate: 50, RentalDays: 15})
	if !errors.Is(err, ErrZeroCost) {
		t.Fatalf("Compute error = %v, want ErrZeroCost", err)
	}
	if errors.Is(err, ErrNoIncome) {
		t.Fatal("zero cost must be distinguishable from zero income")
	}
}

func TestCompute_Identities(t *testing.T) {
	cases := []model.RentalInputs{
		{CarCost: 25000, DailyRate: 50, RentalDays: 15},
		{CarCost: 10000, DailyRate: 100, RentalDays: 10},
		{CarCost: 47999.99, DailyRate: 83.5, RentalDays: 22},
		{CarCost: 1, DailyRate: 0.01, RentalDays: 1},
		{CarCost: 900000, DailyRate: 1200, RentalDays: 28},
	}

	for _, in := range cases {
		res, err := Compute(in)
		if err != nil {
			t.Fatalf("Compute(%+v) returned error: %v", in, err)
		}

		if res.MonthlyIncome != in.DailyRate*float64(in.RentalDays) {
			t.Fatalf("MonthlyIncome = %v, want rate*days = %v", res.MonthlyIncome, in.DailyRate*float64(in.RentalDays))
		}
		// recoup * income recovers the car cost
		if math.Abs(res.MonthsToRecoup*res.MonthlyIncome-in.CarCost) > 1e-6*in.CarCost {
			t.Fatalf("MonthsToRecoup*MonthlyIncome = %v, want %v", res.MonthsToRecoup*res.MonthlyIncome, in.CarCost)
		}
		if math.Abs(res.ROIPercent-100*res.MonthlyIncome/in.CarCost) > tolerance {
			t.Fatalf("ROIPercent = %v, want %v", res.ROIPercent, 100*res.MonthlyIncome/in.CarCost)
		}
		if res.ROIPercent <= 0 {
			t.Fatalf("ROIPercent = %v, want > 0 for positive inputs", res.ROIPercent)
		}
	}
}

func TestCompute_Deterministic(t *testing.T) {
	in := model.RentalInputs{CarCost: 31337, DailyRate: 77.7, RentalDays: 19}

	first, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	second, err := Compute(in)
	if err != nil {
		t.Fatalf("Compute returned error on repeat: %v", err)
	}

	if first != second {
		t.Fatalf("repeated Compute differs: %+v vs %+v", first, second)
	}
}

func TestCompute_NegativeInputsPassThrough(t *testing.T) {
	// The engine does not validate positivity; that is the shell's job.
	// Negative income still divides cleanly, so the result is defined.
	res, err := Compute(model.RentalInputs{CarCost: 10000, DailyRate: -100, RentalDays: 10})
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if res.MonthlyIncome != -1000 {
		t.Fatalf("MonthlyIncome = %v, want -1000", res.MonthlyIncome)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      model.RentalInputs
		wantErr bool
	}{
		{"all positive", model.RentalInputs{CarCost: 25000, DailyRate: 50, RentalDays: 15}, false},
		{"zero cost", model.RentalInputs{CarCost: 0, DailyRate: 50, RentalDays: 15}, true},
		{"negative cost", model.RentalInputs{CarCost: -1, DailyRate: 50, RentalDays: 15}, true},
		{"zero rate", model.RentalInputs{CarCost: 25000, DailyRate: 0, RentalDays: 15}, true},
		{"zero days", model.RentalInputs{CarCost: 25000, DailyRate: 50, RentalDays: 0}, true},
		{"negative days", model.RentalInputs{CarCost: 25000, DailyRate: 50, RentalDays: -3}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr && !errors.Is(err, model.ErrInvalidInput) {
				t.Fatalf("Validate error = %v, want ErrInvalidInput", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Validate returned unexpected error: %v", err)
			}
		})
	}
}
