package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quickmart-dev/checkout-scheduler/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Solver.Timeout = 5
	cfg.Solver.NodeBudget = 500_000

	h, err := NewHandler(cfg)
	require.NoError(t, err)
	h.RegisterRoutes()
	return h
}

func post(t *testing.T, h *Handler, path string, body any) *Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

func TestGenerateClientsIsSeedable(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]any{
		"morning_variance":   10.0,
		"afternoon_variance": 10.0,
		"seed":               7,
	}

	first := post(t, h, "/generate_clients", body)
	require.True(t, first.Success, first.Message)
	second := post(t, h, "/generate_clients", body)
	require.True(t, second.Success, second.Message)

	assert.Equal(t, first.Data, second.Data, "same seed, same workload")
	assert.NotEmpty(t, first.Data)
}

func TestGenerateClientsValidatesRates(t *testing.T) {
	h := newTestHandler(t)

	resp := post(t, h, "/generate_clients", map[string]any{
		"afternoon_variance": 10.0,
	})
	assert.False(t, resp.Success, "missing morning_variance must be rejected")
}

func TestSolveProblemReturnsTimetableAndKPIs(t *testing.T) {
	h := newTestHandler(t)

	resp := post(t, h, "/solve_problem", map[string]any{
		"cashiers": []map[string]any{
			{"name": "Ana", "available_in_the_morning": true, "available_in_the_afternoon": false, "effectiveness_average": 1.0},
			{"name": "Bruno", "available_in_the_morning": false, "available_in_the_afternoon": true, "effectiveness_average": 1.0},
		},
		"clients": []map[string]any{
			{"id": 0, "arrival_time": 10, "products": 4},
			{"id": 1, "arrival_time": 400, "products": 8},
		},
	})
	require.True(t, resp.Success, resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)

	timetable, ok := data["timetable"].([]any)
	require.True(t, ok)
	assert.Len(t, timetable, 2)

	assert.Equal(t, "OPTIMAL", data["status"])
	assert.Contains(t, data, "serviceLevel")
	assert.Contains(t, data, "avgQueueWaitingTime")
	assert.Contains(t, data, "avgProcessingTime")
	assert.Contains(t, data, "avgFreeTime")
	assert.Contains(t, data, "efficiencyData")
}

func TestSolveProblemRejectsEmptyWorkload(t *testing.T) {
	h := newTestHandler(t)

	resp := post(t, h, "/solve_problem", map[string]any{
		"cashiers": []map[string]any{
			{"name": "Ana", "available_in_the_morning": true, "available_in_the_afternoon": false, "effectiveness_average": 1.0},
		},
		"clients": []map[string]any{},
	})
	assert.False(t, resp.Success)
}

func TestSolveProblemSurfacesInfeasibility(t *testing.T) {
	h := newTestHandler(t)

	resp := post(t, h, "/solve_problem", map[string]any{
		"cashiers": []map[string]any{
			{"name": "Ana", "available_in_the_morning": false, "available_in_the_afternoon": false, "effectiveness_average": 1.0},
		},
		"clients": []map[string]any{
			{"id": 0, "arrival_time": 10, "products": 4},
		},
	})
	assert.False(t, resp.Success, "an infeasible instance must not produce a schedule")
	assert.Contains(t, resp.Message, "no feasible schedule")
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
