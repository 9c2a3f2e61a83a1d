package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicwave/agenda-ops/internal/amei"
	"github.com/clinicwave/agenda-ops/internal/observability/metrics"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

// ClinicAPI is the slice of the clinic client the aggregator needs.
type ClinicAPI interface {
	ListProfessionals(ctx context.Context) ([]amei.Professional, error)
	ListSlots(ctx context.Context, professionalID int, day time.Time) ([]amei.RawSlot, error)
}

// ProfessionalAgenda is one professional's ordered schedule for the day.
type ProfessionalAgenda struct {
	ID    int    `json:"id"`
	Slots []Slot `json:"slots"`
}

// Consolidated is the full aggregation result for one date: schedules keyed
// by professional name plus the per-status summary matrix. Order preserves
// the directory's sequence so downstream column layout matches it.
type Consolidated struct {
	Date    time.Time
	Order   []string
	Agendas map[string]ProfessionalAgenda
	Summary SummaryMatrix
}

// Aggregator builds the consolidated day view by polling each professional's
// slots sequentially against the rate-limited clinic API.
type Aggregator struct {
	api     ClinicAPI
	cache   *directoryCache
	logger  *logging.Logger
	metrics *metrics.AgendaMetrics
}

// NewAggregator creates an aggregator. directoryTTL bounds how long the
// professional directory is memoized across runs; zero disables caching.
func NewAggregator(api ClinicAPI, directoryTTL time.Duration, logger *logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Aggregator{
		api:    api,
		cache:  newDirectoryCache(directoryTTL),
		logger: logger,
	}
}

// WithMetrics attaches observability counters. A nil metrics value is valid
// and turns observation into a no-op.
func (a *Aggregator) WithMetrics(m *metrics.AgendaMetrics) *Aggregator {
	a.metrics = m
	return a
}

// Aggregate fetches every professional's slots for the given day and merges
// them into a consolidated schedule and summary matrix.
//
// A directory failure aborts the whole operation. A single professional's
// slot-fetch failure is tolerated and treated as zero slots, so one flaky
// agenda cannot take down the batch. Professionals with no slots at all are
// dropped from both the schedule and the summary.
func (a *Aggregator) Aggregate(ctx context.Context, day time.Time) (*Consolidated, error) {
	professionals, err := a.cache.get(ctx, a.api.ListProfessionals)
	if err != nil {
		return nil, fmt.Errorf("agenda: fetch professional directory: %w", err)
	}

	out := &Consolidated{
		Date:    day,
		Agendas: make(map[string]ProfessionalAgenda, len(professionals)),
		Summary: make(SummaryMatrix, len(professionals)),
	}

	for _, prof := range professionals {
		name := prof.Name
		if name == "" {
			name = fmt.Sprintf("Profissional ID %d", prof.ID)
		}

		raws, err := a.api.ListSlots(ctx, prof.ID, day)
		if err != nil {
			a.metrics.ObserveSlotFetch("error")
			a.logger.Warn("agenda: slot fetch failed, treating as empty",
				"professional", name, "professional_id", prof.ID, "error", err)
			continue
		}
		a.metrics.ObserveSlotFetch("ok")
		if len(raws) == 0 {
			continue
		}

		slots := make([]Slot, 0, len(raws))
		counts := make(StatusCounts)
		for _, raw := range raws {
			slot := NormalizeSlot(raw)
			counts.Add(slot.Status)
			slots = append(slots, slot)
		}
		SortSlots(slots)

		out.Order = append(out.Order, name)
		out.Agendas[name] = ProfessionalAgenda{ID: prof.ID, Slots: slots}
		out.Summary[name] = counts
	}

	a.logger.Info("agenda: aggregation complete",
		"date", day.Format(time.DateOnly),
		"directory_size", len(professionals),
		"professionals_with_slots", len(out.Order),
	)
	return out, nil
}
