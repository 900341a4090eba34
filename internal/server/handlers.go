package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/entremotivator/turoi/internal/engine"
	"github.com/entremotivator/turoi/internal/model"
)

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ROIRequest{
		CarCost:    s.defaults.CarCost,
		DailyRate:  s.defaults.DailyRate,
		RentalDays: s.defaults.RentalDays,
	})
}

func (s *Service) handleROI(w http.ResponseWriter, r *http.Request) {
	var req ROIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, "request body is not valid JSON")
		return
	}
	s.respondROI(w, req.Inputs())
}

func (s *Service) handleROIQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cost, err := strconv.ParseFloat(q.Get("cost"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, "cost must be a number")
		return
	}
	rate, err := strconv.ParseFloat(q.Get("rate"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, "rate must be a number")
		return
	}
	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, "days must be an integer")
		return
	}

	s.respondROI(w, model.RentalInputs{CarCost: cost, DailyRate: rate, RentalDays: days})
}

// respondROI validates, computes, and writes the result. Negative values
// are malformed requests; zero values flow through to the engine, which
// reports them as undefined computations. Neither returns partial data.
func (s *Service) respondROI(w http.ResponseWriter, in model.RentalInputs) {
	if in.CarCost < 0 || in.DailyRate < 0 || in.RentalDays < 0 {
		writeError(w, http.StatusBadRequest, CodeInvalidInput, in.Validate().Error())
		return
	}

	res, series, err := engine.Project(in)
	if err != nil {
		if errors.Is(err, engine.ErrNoIncome) || errors.Is(err, engine.ErrZeroCost) {
			writeError(w, http.StatusUnprocessableEntity, CodeUndefinedComputation,
				"calculation cannot proceed: "+err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, newROIResponse(in, res, series))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Error: msg})
}
