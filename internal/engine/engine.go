// Package engine computes rental return-on-investment figures and the
// cumulative-income projection derived from them. Everything here is a
// pure function of its inputs: no I/O, no state, no caching.
package engine

import (
	"errors"

	"github.com/entremotivator/turoi/internal/model"
)

// ErrNoIncome is returned when daily rate times rental days is exactly
// zero. Recoupment time is undefined in that case; the caller shows an
// error instead of partial results.
var ErrNoIncome = errors.New("monthly income is zero")

// ErrZeroCost is returned when the car cost is zero but income is not.
// ROI would divide by zero, so the computation is treated as undefined
// rather than producing an infinite percentage.
var ErrZeroCost = errors.New("car cost is zero")

// Compute derives monthly income, recoupment time, and monthly ROI from
// the rental inputs. It accepts any values, including non-positive ones;
// positivity checks belong to the caller via RentalInputs.Validate.
func Compute(in model.RentalInputs) (model.ROIResult, error) {
	monthlyIncome := in.DailyRate * float64(in.RentalDays)
	if monthlyIncome == 0 {
		return model.ROIResult{}, ErrNoIncome
	}
	if in.CarCost == 0 {
		return model.ROIResult{}, ErrZeroCost
	}

	return model.ROIResult{
		MonthlyIncome:  monthlyIncome,
		MonthsToRecoup: in.CarCost / monthlyIncome,
		ROIPercent:     monthlyIncome / in.CarCost * 100,
	}, nil
}
