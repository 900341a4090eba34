// Package model defines the value types shared by the ROI engine and the
// presentation layers.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks inputs the calculator refuses to run on.
// Wrapped errors carry the offending field name.
var ErrInvalidInput = errors.New("invalid input")

// RentalInputs holds the three numbers the calculator works from.
// Values are immutable once constructed; a fresh RentalInputs is built
// for every computation.
type RentalInputs struct {
	CarCost    float64 // purchase cost of the car, currency units
	DailyRate  float64 // rental rate per day, currency units
	RentalDays int     // expected rental days per month
}

// Validate reports whether all three inputs are strictly positive.
// The engine itself accepts any values; this is the gate the shell
// applies before invoking it.
func (in RentalInputs) Validate() error {
	if in.CarCost <= 0 {
		return fmt.Errorf("%w: car cost must be positive, got %.2f", ErrInvalidInput, in.CarCost)
	}
	if in.DailyRate <= 0 {
		return fmt.Errorf("%w: daily rate must be positive, got %.2f", ErrInvalidInput, in.DailyRate)
	}
	if in.RentalDays <= 0 {
		return fmt.Errorf("%w: rental days per month must be positive, got %d", ErrInvalidInput, in.RentalDays)
	}
	return nil
}

// ROIResult is the output of a defined ROI computation.
type ROIResult struct {
	MonthlyIncome  float64
	MonthsToRecoup float64
	ROIPercent     float64
}

// MilestonePoint is one (month, cumulative income) pair in a projection.
type MilestonePoint struct {
	Month            int
	CumulativeIncome float64
}

// ProjectionSeries is the ordered cumulative-income series from month 1
// through 120% of the recoupment time. Strictly increasing by month, no
// duplicates; may be empty. The same series feeds both the chart and the
// milestone table without recomputation.
type ProjectionSeries []MilestonePoint

// Values returns the cumulative income column, in month order.
func (s ProjectionSeries) Values() []float64 {
	vals := make([]float64, len(s))
	for i, p := range s {
		vals[i] = p.CumulativeIncome
	}
	return vals
}

// Months returns the month column.
func (s ProjectionSeries) Months() []int {
	months := make([]int, len(s))
	for i, p := range s {
		months[i] = p.Month
	}
	return months
}

// Final returns the last milestone and false when the series is empty.
func (s ProjectionSeries) Final() (MilestonePoint, bool) {
	if len(s) == 0 {
		return MilestonePoint{}, false
	}
	return s[len(s)-1], true
}

// BreakEvenIndex returns the index of the first milestone whose cumulative
// income reaches carCost, or -1 if the series never gets there.
func (s ProjectionSeries) BreakEvenIndex(carCost float64) int {
	for i, p := range s {
		if p.CumulativeIncome >= carCost {
			return i
		}
	}
	return -1
}
