package campaign

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/clinicwave/agenda-ops/internal/amei"
	"github.com/clinicwave/agenda-ops/internal/observability/metrics"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

// Lister fetches pages of confirmable appointments.
type Lister interface {
	ListConfirmable(ctx context.Context, p amei.ConfirmableParams) (*amei.ConfirmablePage, error)
}

// Sender delivers one reminder message.
type Sender interface {
	SendMessage(ctx context.Context, number, text string) (string, error)
}

// Exporter writes the flattened record set to a checkpoint artifact.
type Exporter interface {
	Export(records []Record) (string, error)
}

// Runner drives one confirmation campaign end to end: windowed paginated
// fetch, flattening, spreadsheet export, and the throttled send loop.
//
// Everything runs on the calling goroutine with one outstanding API call at
// a time; the inter-send pause is a deliberate rate-control mechanism, so
// the send loop must stay strictly sequential.
type Runner struct {
	lister   Lister
	sender   Sender
	exporter Exporter
	tmpl     *Template
	logger   *logging.Logger
	metrics  *metrics.CampaignMetrics

	now      func() time.Time
	sleep    func(time.Duration)
	randInt  func(n int64) int64
	pauseMin time.Duration
	pauseMax time.Duration
}

// NewRunner creates a campaign runner with the production pause window.
func NewRunner(lister Lister, sender Sender, exporter Exporter, tmpl *Template, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{
		lister:   lister,
		sender:   sender,
		exporter: exporter,
		tmpl:     tmpl,
		logger:   logger,
		now:      time.Now,
		sleep:    time.Sleep,
		randInt:  rand.Int63n,
		pauseMin: 30 * time.Second,
		pauseMax: 60 * time.Second,
	}
}

// WithPauseWindow overrides the jittered inter-send pause bounds.
func (r *Runner) WithPauseWindow(min, max time.Duration) *Runner {
	if min > 0 && max >= min {
		r.pauseMin = min
		r.pauseMax = max
	}
	return r
}

// WithClock overrides the time source, for tests.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	if now != nil {
		r.now = now
	}
	return r
}

// WithSleep overrides the sleep function, for tests.
func (r *Runner) WithSleep(sleep func(time.Duration)) *Runner {
	if sleep != nil {
		r.sleep = sleep
	}
	return r
}

// WithMetrics attaches campaign counters. Nil is valid and disables them.
func (r *Runner) WithMetrics(m *metrics.CampaignMetrics) *Runner {
	r.metrics = m
	return r
}

type sendTarget struct {
	record Record
	number string
}

// Run executes one campaign against the given run state. The state must be
// fresh; a run cannot be restarted. Any error is terminal for this run and
// already reflected in the state when Run returns.
func (r *Runner) Run(ctx context.Context, state *RunState) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("campaign: run aborted: %v", p)
			r.fail(state, err)
		}
	}()

	logger := r.logger.With("run_id", state.ID().String())

	state.SetPhase(PhaseFetching)
	state.SetStatus("Fetching appointments...")
	state.Logf("starting confirmation campaign")

	today := r.now()
	start, end := Window(today)
	state.Logf("today is %s; fetching window %s to %s",
		today.Weekday(), start.Format("02/01/2006"), end.Format("02/01/2006"))

	items, err := r.fetchAll(ctx, state, start, end)
	if err != nil {
		// A partial appointment list could under-notify patients, so the
		// listing fetch gets no per-page tolerance: the whole run aborts.
		r.fail(state, err)
		return err
	}

	if len(items) == 0 {
		state.Logf("no appointments found for the window")
		state.SetStatus("Completed (no data)")
		state.SetPhase(PhaseDone)
		r.metrics.ObserveRun("empty")
		logger.Info("campaign finished without data")
		return nil
	}

	state.Logf("fetch finished: %d appointments found", len(items))

	state.SetPhase(PhaseGeneratingExport)
	state.SetStatus("Generating export...")
	records, err := Flatten(items)
	if err != nil {
		r.fail(state, err)
		return err
	}

	exportPath, err := r.exporter.Export(records)
	if err != nil {
		r.fail(state, fmt.Errorf("campaign: export: %w", err))
		return err
	}
	state.SetExportPath(exportPath)
	state.Logf("export written to %s", exportPath)

	targets := make([]sendTarget, 0, len(records))
	for _, rec := range records {
		number := NormalizePhone(rec.Phone)
		if number == "" {
			state.Logf("skipping %s: no usable phone number", rec.Name)
			continue
		}
		targets = append(targets, sendTarget{record: rec, number: number})
	}

	state.SetPhase(PhaseSending)
	state.Logf("starting send loop for %d contacts", len(targets))

	for i, target := range targets {
		rec := target.record
		state.SetStatus(fmt.Sprintf("Sending message %d/%d to %s", i+1, len(targets), rec.Name))

		message, err := r.tmpl.Render(TemplateData{
			Nome:         rec.Name,
			Profissional: rec.Professional,
			Data:         rec.Date,
			Hora:         rec.Hour,
		})
		if err != nil {
			r.fail(state, err)
			return err
		}

		// A single rejected send must not abort the loop, but success and
		// failure are logged distinctly so the campaign log stays honest.
		if _, err := r.sender.SendMessage(ctx, target.number, message); err != nil {
			r.metrics.ObserveSend("failed")
			state.Logf("(%d/%d) send to %s (%s) failed: %v", i+1, len(targets), rec.Name, target.number, err)
			logger.Warn("campaign send failed", "patient", rec.Name, "error", err)
		} else {
			r.metrics.ObserveSend("sent")
			state.Logf("(%d/%d) message sent to %s (%s)", i+1, len(targets), rec.Name, target.number)
		}

		if i < len(targets)-1 {
			pause := r.pauseDuration()
			state.Logf("pausing %d seconds before next send", int(pause.Seconds()))
			r.sleep(pause)
		}
	}

	state.Logf("send loop finished")
	state.SetStatus(fmt.Sprintf("Completed! %d messages processed.", len(targets)))
	state.SetPhase(PhaseDone)
	r.metrics.ObserveRun("done")
	logger.Info("campaign finished", "sent_targets", len(targets), "records", len(records))
	return nil
}

// fetchAll accumulates every listing page before anything is sent. The total
// page count comes from the first page's metadata and defaults to a single
// page when the API omits it. Pages advance strictly in ascending order.
func (r *Runner) fetchAll(ctx context.Context, state *RunState, start, end time.Time) ([]amei.AppointmentItem, error) {
	var items []amei.AppointmentItem
	page, totalPages := 1, 1
	for page <= totalPages {
		state.SetStatus(fmt.Sprintf("Fetching appointments... (page %d/%d)", page, totalPages))
		state.Logf("fetching listing page %d of %d", page, totalPages)

		result, err := r.lister.ListConfirmable(ctx, amei.ConfirmableParams{
			DateInit:   start,
			DateFinish: end,
			Page:       page,
		})
		if err != nil {
			return nil, fmt.Errorf("campaign: fetch listing page %d: %w", page, err)
		}
		r.metrics.ObservePage()
		items = append(items, result.Items...)

		if page == 1 && result.Meta != nil && result.Meta.TotalPages > 0 {
			totalPages = result.Meta.TotalPages
		}
		page++
	}
	return items, nil
}

// pauseDuration draws a uniform duration from [pauseMin, pauseMax].
func (r *Runner) pauseDuration() time.Duration {
	spread := int64(r.pauseMax - r.pauseMin)
	if spread <= 0 {
		return r.pauseMin
	}
	return r.pauseMin + time.Duration(r.randInt(spread+1))
}

func (r *Runner) fail(state *RunState, err error) {
	state.Logf("fatal error: %v", err)
	state.SetStatus("Run finished with error.")
	state.SetPhase(PhaseFailed)
	r.metrics.ObserveRun("failed")
	r.logger.Error("campaign run failed", "run_id", state.ID().String(), "error", err)
}
