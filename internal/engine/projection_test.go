package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/entremotivator/turoi/internal/model"
)

func TestBuildProjection_Length(t *testing.T) {
	cases := []struct {
		name           string
		monthlyIncome  float64
		monthsToRecoup float64
		wantLen        int
	}{
		{"typical", 750, 25000.0 / 750.0, 40}, // 100/3 * 6/5 lands exactly on 40
		{"round", 1000, 10, 12},
		{"just under a month", 1000, 0.8, 0}, // int(0.96) = 0
		{"exactly at cutoff", 1000, 2.5, 3},  // int(3.0) = 3
		{"zero recoup", 1000, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			series := BuildProjection(tc.monthlyIncome, tc.monthsToRecoup)
			if len(series) != tc.wantLen {
				t.Fatalf("series length = %d, want %d", len(series), tc.wantLen)
			}
		})
	}
}

func TestBuildProjection_SeriesShape(t *testing.T) {
	const monthlyIncome = 750.0
	series := BuildProjection(monthlyIncome, 25000.0/monthlyIncome)

	for i, p := range series {
		if p.Month != i+1 {
			t.Fatalf("series[%d].Month = %d, want %d", i, p.Month, i+1)
		}
		want := monthlyIncome * float64(p.Month)
		if math.Abs(p.CumulativeIncome-want) > 1e-9 {
			t.Fatalf("series[%d].CumulativeIncome = %v, want %v", i, p.CumulativeIncome, want)
		}
		if i > 0 && p.CumulativeIncome <= series[i-1].CumulativeIncome {
			t.Fatalf("series not strictly increasing at index %d", i)
		}
	}
}

func TestBuildProjection_ReachesPastCarCost(t *testing.T) {
	// The 20% extension means whenever recoupment takes at least 5 months,
	// the final milestone clears the car cost line.
	const carCost, monthlyIncome = 25000.0, 750.0
	series := BuildProjection(monthlyIncome, carCost/monthlyIncome)

	final, ok := series.Final()
	if !ok {
		t.Fatal("series unexpectedly empty")
	}
	if final.CumulativeIncome < carCost {
		t.Fatalf("final cumulative income %.2f never reaches car cost %.2f", final.CumulativeIncome, carCost)
	}

	idx := series.BreakEvenIndex(carCost)
	if idx < 0 {
		t.Fatal("BreakEvenIndex = -1, want a break-even milestone")
	}
	if series[idx].Month != 34 {
		// 33.33 months to recoup, so month 34 is the first full month past it
		t.Fatalf("break-even month = %d, want 34", series[idx].Month)
	}
}

func TestProject(t *testing.T) {
	res, series, err := Project(model.RentalInputs{CarCost: 10000, DailyRate: 100, RentalDays: 10})
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}
	if res.MonthsToRecoup != 10 {
		t.Fatalf("MonthsToRecoup = %v, want 10", res.MonthsToRecoup)
	}
	if len(series) != 12 {
		t.Fatalf("series length = %d, want 12", len(series))
	}

	_, _, err = Project(model.RentalInputs{CarCost: 10000, DailyRate: 0, RentalDays: 10})
	if !errors.Is(err, ErrNoIncome) {
		t.Fatalf("Project error = %v, want ErrNoIncome", err)
	}
}

func TestProjectionSeries_Helpers(t *testing.T) {
	series := BuildProjection(500, 4) // 4 months, int(4.8)=4

	months := series.Months()
	vals := series.Values()
	if len(months) != 4 || len(vals) != 4 {
		t.Fatalf("helper lengths = %d/%d, want 4/4", len(months), len(vals))
	}
	if months[3] != 4 || vals[3] != 2000 {
		t.Fatalf("last month/value = %d/%v, want 4/2000", months[3], vals[3])
	}

	empty := BuildProjection(500, 0)
	if _, ok := empty.Final(); ok {
		t.Fatal("Final on empty series reported ok")
	}
	if idx := empty.BreakEvenIndex(100); idx != -1 {
		t.Fatalf("BreakEvenIndex on empty series = %d, want -1", idx)
	}
}
