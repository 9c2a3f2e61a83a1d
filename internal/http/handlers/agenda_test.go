package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicwave/agenda-ops/internal/agenda"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

type fakeAggregator struct {
	result  *agenda.Consolidated
	err     error
	lastDay time.Time
}

func (f *fakeAggregator) Aggregate(_ context.Context, day time.Time) (*agenda.Consolidated, error) {
	f.lastDay = day
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func sampleConsolidated(t *testing.T) *agenda.Consolidated {
	t.Helper()
	patient := "Maria Souza"
	slots := []agenda.Slot{
		{Time: "08:00", Status: agenda.StatusConfirmed, Patient: &patient},
		{Time: "09:00", Status: agenda.StatusFree},
	}
	counts := agenda.StatusCounts{}
	for _, s := range slots {
		counts.Add(s.Status)
	}
	day, err := time.Parse(time.DateOnly, "2026-08-31")
	require.NoError(t, err)
	return &agenda.Consolidated{
		Date:    day,
		Order:   []string{"Dra. Ana Lima"},
		Agendas: map[string]agenda.ProfessionalAgenda{"Dra. Ana Lima": {ID: 7, Slots: slots}},
		Summary: agenda.SummaryMatrix{"Dra. Ana Lima": counts},
	}
}

func TestGetAgendaReturnsConsolidatedView(t *testing.T) {
	agg := &fakeAggregator{result: sampleConsolidated(t)}
	h := NewAgendaHandler(agg, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2026-08-31", nil)
	rec := httptest.NewRecorder()
	h.GetAgenda(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-08-31", agg.lastDay.Format(time.DateOnly))

	var body agendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-08-31", body.Date)
	require.Len(t, body.Professionals, 1)
	assert.Equal(t, "Dra. Ana Lima", body.Professionals[0].Name)
	require.Len(t, body.Professionals[0].Slots, 2)
	assert.Equal(t, string(agenda.StatusConfirmed), body.Professionals[0].Slots[0].Status)
	assert.Equal(t, agenda.StatusConfirmed.Style(), body.Professionals[0].Slots[0].Style)
	require.NotNil(t, body.Professionals[0].Slots[0].Patient)
	assert.Equal(t, "Maria Souza", *body.Professionals[0].Slots[0].Patient)

	require.Len(t, body.Summary, 1)
	row := body.Summary[0]
	assert.Equal(t, 1, row.TotalBooked)
	assert.True(t, row.Confirmation.Computable)
	assert.InDelta(t, 100.0, row.Confirmation.Rate, 1e-9)
	assert.Equal(t, string(agenda.RateHealthy), row.Confirmation.Level)
	assert.True(t, body.Occupancy.Computable)
	assert.InDelta(t, 50.0, body.Occupancy.Rate, 1e-9)
	assert.Equal(t, string(agenda.RateCritical), body.Occupancy.Level)
}

func TestGetAgendaDefaultsToToday(t *testing.T) {
	agg := &fakeAggregator{result: sampleConsolidated(t)}
	h := NewAgendaHandler(agg, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agenda", nil)
	rec := httptest.NewRecorder()
	h.GetAgenda(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Now().Format(time.DateOnly), agg.lastDay.Format(time.DateOnly))
}

func TestGetAgendaRejectsBadDate(t *testing.T) {
	h := NewAgendaHandler(&fakeAggregator{}, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=31-08-2026", nil)
	rec := httptest.NewRecorder()
	h.GetAgenda(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAgendaDirectoryFailure(t *testing.T) {
	agg := &fakeAggregator{err: errors.New("directory unavailable")}
	h := NewAgendaHandler(agg, logging.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agenda?date=2026-08-31", nil)
	rec := httptest.NewRecorder()
	h.GetAgenda(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
