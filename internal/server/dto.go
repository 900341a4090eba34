package server

import (
	"fmt"

	"github.com/entremotivator/turoi/internal/cli"
	"github.com/entremotivator/turoi/internal/model"
)

// ROIRequest is the JSON body for POST /v1/roi. The same fields are
// accepted as query parameters on GET.
type ROIRequest struct {
	CarCost    float64 `json:"car_cost"`
	DailyRate  float64 `json:"daily_rate"`
	RentalDays int     `json:"rental_days"`
}

// Inputs converts the request into engine inputs.
func (r ROIRequest) Inputs() model.RentalInputs {
	return model.RentalInputs{
		CarCost:    r.CarCost,
		DailyRate:  r.DailyRate,
		RentalDays: r.RentalDays,
	}
}

// Milestone is one projection point in an ROIResponse.
type Milestone struct {
	Month            int     `json:"month"`
	CumulativeIncome float64 `json:"cumulative_income"`
}

// ROIResponse is the successful calculation payload.
type ROIResponse struct {
	MonthlyIncome  float64     `json:"monthly_income"`
	MonthsToRecoup float64     `json:"months_to_recoup"`
	ROIPercent     float64     `json:"roi_percent"`
	Breakdown      []string    `json:"breakdown"`
	Projection     []Milestone `json:"projection"`
}

// ErrorResponse carries a machine-readable code plus a user-facing message.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// Error codes returned by the API.
const (
	CodeInvalidInput         = "invalid_input"
	CodeUndefinedComputation = "undefined_computation"
)

func newROIResponse(in model.RentalInputs, res model.ROIResult, series model.ProjectionSeries) ROIResponse {
	projection := make([]Milestone, len(series))
	for i, p := range series {
		projection[i] = Milestone{Month: p.Month, CumulativeIncome: p.CumulativeIncome}
	}

	return ROIResponse{
		MonthlyIncome:  res.MonthlyIncome,
		MonthsToRecoup: res.MonthsToRecoup,
		ROIPercent:     res.ROIPercent,
		Breakdown:      breakdownLines(in, res),
		Projection:     projection,
	}
}

// breakdownLines echoes the three formulas with substituted values,
// unstyled for transport.
func breakdownLines(in model.RentalInputs, res model.ROIResult) []string {
	return []string{
		fmt.Sprintf("Monthly Income: Daily Rate x Rental Days = %s x %d = %s",
			cli.FormatMoney(in.DailyRate), in.RentalDays, cli.FormatMoney(res.MonthlyIncome)),
		fmt.Sprintf("Recoupment Time: Car Cost / Monthly Income = %s / %s = %s",
			cli.FormatMoney(in.CarCost), cli.FormatMoney(res.MonthlyIncome), cli.FormatMonths(res.MonthsToRecoup)),
		fmt.Sprintf("Monthly ROI: (Monthly Income / Car Cost) x 100 = (%s / %s) x 100 = %s",
			cli.FormatMoney(res.MonthlyIncome), cli.FormatMoney(in.CarCost), cli.FormatPercent(res.ROIPercent)),
	}
}
