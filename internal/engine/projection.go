package engine

import "github.com/entremotivator/turoi/internal/model"

// projectionExtension stretches the projected timeline 20% past the
// recoupment point so the chart shows income crossing the car cost line.
const projectionExtension = 1.2

// BuildProjection produces the cumulative-income milestone series for
// months 1 through int(monthsToRecoup * 1.2). Truncation toward zero,
// so a recoupment time under ~0.84 months yields an empty series.
// monthlyIncome must come from a defined Compute result.
func BuildProjection(monthlyIncome, monthsToRecoup float64) model.ProjectionSeries {
	maxMonths := int(monthsToRecoup * projectionExtension)
	if maxMonths < 1 {
		return model.ProjectionSeries{}
	}

	series := make(model.ProjectionSeries, maxMonths)
	for m := 1; m <= maxMonths; m++ {
		series[m-1] = model.MilestonePoint{
			Month:            m,
			CumulativeIncome: monthlyIncome * float64(m),
		}
	}
	return series
}

// Project runs Compute and BuildProjection in one step, the common path
// for shells that want both the figures and the series.
func Project(in model.RentalInputs) (model.ROIResult, model.ProjectionSeries, error) {
	res, err := Compute(in)
	if err != nil {
		return model.ROIResult{}, nil, err
	}
	return res, BuildProjection(res.MonthlyIncome, res.MonthsToRecoup), nil
}
