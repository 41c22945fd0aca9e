package handler

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/quickmart-dev/checkout-scheduler/internal/analytics"
	"github.com/quickmart-dev/checkout-scheduler/internal/domain"
	"github.com/quickmart-dev/checkout-scheduler/internal/scheduler"
	"github.com/quickmart-dev/checkout-scheduler/internal/workload"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "ok", nil)
}

func (h *Handler) GenerateClients(w http.ResponseWriter, r *http.Request) {
	var req struct {
		// the historical frontend calls the arrival rates "variances"
		MorningVariance   *float64 `json:"morning_variance" validate:"required,min=0"`
		AfternoonVariance *float64 `json:"afternoon_variance" validate:"required,min=0"`
		Seed              *int64   `json:"seed"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// seedless requests get a fresh workload each time; seeded ones are
	// reproducible
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	clients, err := workload.Generate(*req.MorningVariance, *req.AfternoonVariance, rng)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.successResponse(w, r, "clients generated", clients)
}

func (h *Handler) SolveProblem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cashiers        []domain.Cashier `json:"cashiers" validate:"required,min=1"`
		Clients         []domain.Client  `json:"clients" validate:"required,min=1"`
		IncludeInactive bool             `json:"include_inactive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	parameters := scheduler.DefaultParameters()
	parameters.NodeBudget = h.config.Solver.NodeBudget
	parameters.IncludeInactive = req.IncludeInactive

	sched, err := scheduler.New(parameters, req.Cashiers, req.Clients)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Solver.Timeout)*time.Second)
	defer cancel()

	entries, err := sched.Solve(ctx)
	if err != nil {
		switch {
		case errors.Is(err, scheduler.ErrTimeout):
			h.errorResponse(w, r, "the solve did not finish in time; retry with a smaller instance or a larger timeout")
		case errors.Is(err, scheduler.ErrSolverFailure):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	report, err := analytics.BuildReport(entries)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "problem solved", struct {
		*analytics.Report
		Timetable []domain.TimetableEntry `json:"timetable"`
		Status    string                  `json:"status"`
		Objective int                     `json:"objective"`
	}{
		Report:    report,
		Timetable: domain.Timetable(entries),
		Status:    sched.Status().String(),
		Objective: sched.Objective(),
	})
}
