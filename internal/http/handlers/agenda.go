package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/clinicwave/agenda-ops/internal/agenda"
	"github.com/clinicwave/agenda-ops/internal/observability/metrics"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

// AgendaAggregator is the slice of the aggregation engine the handler needs.
type AgendaAggregator interface {
	Aggregate(ctx context.Context, day time.Time) (*agenda.Consolidated, error)
}

// AgendaHandler serves the consolidated day view consumed by the display
// layer: schedules with per-slot styles, the summary matrix, and the
// confirmation/occupancy statistics.
type AgendaHandler struct {
	aggregator AgendaAggregator
	metrics    *metrics.AgendaMetrics
	logger     *logging.Logger
}

// NewAgendaHandler creates an agenda HTTP handler.
func NewAgendaHandler(aggregator AgendaAggregator, logger *logging.Logger) *AgendaHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AgendaHandler{aggregator: aggregator, logger: logger}
}

// WithMetrics attaches observability counters.
func (h *AgendaHandler) WithMetrics(m *metrics.AgendaMetrics) *AgendaHandler {
	h.metrics = m
	return h
}

type slotView struct {
	Time    string  `json:"time"`
	Status  string  `json:"status"`
	Style   string  `json:"style"`
	Patient *string `json:"patient,omitempty"`
}

type professionalView struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Slots []slotView `json:"slots"`
}

type rateView struct {
	Computable bool    `json:"computable"`
	Rate       float64 `json:"rate,omitempty"`
	Level      string  `json:"level,omitempty"`
}

func newRateView(rate float64, ok bool) rateView {
	if !ok {
		return rateView{Computable: false}
	}
	return rateView{Computable: true, Rate: rate, Level: string(agenda.ClassifyRate(rate))}
}

type summaryRowView struct {
	Professional string         `json:"professional"`
	Counts       map[string]int `json:"counts"`
	TotalBooked  int            `json:"total_booked"`
	Confirmation rateView       `json:"confirmation"`
	Occupancy    rateView       `json:"occupancy"`
}

type agendaResponse struct {
	Date          string             `json:"date"`
	Professionals []professionalView `json:"professionals"`
	Statuses      []string           `json:"statuses"`
	Summary       []summaryRowView   `json:"summary"`
	Confirmation  rateView           `json:"confirmation"`
	Occupancy     rateView           `json:"occupancy"`
}

// GetAgenda returns the consolidated schedule for one date.
// GET /api/v1/agenda?date=2026-08-31 (defaults to today)
func (h *AgendaHandler) GetAgenda(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		day = parsed
	}

	started := time.Now()
	consolidated, err := h.aggregator.Aggregate(r.Context(), day)
	if err != nil {
		h.metrics.ObserveAggregation("error", time.Since(started).Seconds())
		h.logger.Error("agenda aggregation failed", "error", err)
		writeError(w, http.StatusBadGateway, "could not fetch the professional directory")
		return
	}
	h.metrics.ObserveAggregation("ok", time.Since(started).Seconds())

	writeJSON(w, http.StatusOK, buildAgendaResponse(consolidated))
}

func buildAgendaResponse(c *agenda.Consolidated) agendaResponse {
	professionals := make([]professionalView, 0, len(c.Order))
	for _, name := range c.Order {
		pa := c.Agendas[name]
		slots := make([]slotView, 0, len(pa.Slots))
		for _, slot := range pa.Slots {
			slots = append(slots, slotView{
				Time:    slot.Time,
				Status:  string(slot.Status),
				Style:   slot.Status.Style(),
				Patient: slot.Patient,
			})
		}
		professionals = append(professionals, professionalView{ID: pa.ID, Name: name, Slots: slots})
	}

	statuses := c.Summary.Statuses()
	statusLabels := make([]string, 0, len(statuses))
	for _, status := range statuses {
		statusLabels = append(statusLabels, string(status))
	}
	sort.Strings(statusLabels)

	summary := make([]summaryRowView, 0, len(c.Order))
	for _, name := range c.Order {
		counts := c.Summary[name]
		countView := make(map[string]int, len(counts))
		for status, n := range counts {
			countView[string(status)] = n
		}
		confirmation, confOK := counts.ConfirmationRate()
		occupancy, occOK := counts.OccupancyRate()
		summary = append(summary, summaryRowView{
			Professional: name,
			Counts:       countView,
			TotalBooked:  counts.TotalBooked(),
			Confirmation: newRateView(confirmation, confOK),
			Occupancy:    newRateView(occupancy, occOK),
		})
	}

	globalConfirmation, confOK := c.Summary.GlobalConfirmationRate()
	globalOccupancy, occOK := c.Summary.GlobalOccupancyRate()

	return agendaResponse{
		Date:          c.Date.Format(time.DateOnly),
		Professionals: professionals,
		Statuses:      statusLabels,
		Summary:       summary,
		Confirmation:  newRateView(globalConfirmation, confOK),
		Occupancy:     newRateView(globalOccupancy, occOK),
	}
}
