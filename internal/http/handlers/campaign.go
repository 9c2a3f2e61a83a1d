package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/clinicwave/agenda-ops/internal/campaign"
	"github.com/clinicwave/agenda-ops/pkg/logging"
)

// CampaignRunner is the slice of the campaign driver the handler needs.
type CampaignRunner interface {
	Run(ctx context.Context, state *campaign.RunState) error
}

// CampaignHandler starts confirmation campaign runs and exposes the state
// of the most recent one. At most one run is active at a time; a run that
// has started is carried to completion regardless of the client connection.
type CampaignHandler struct {
	runner CampaignRunner
	logger *logging.Logger

	mu      sync.Mutex
	current *campaign.RunState
}

// NewCampaignHandler creates a campaign HTTP handler. A nil runner disables
// run starts (StartRun answers 503) while the rest of the API stays up.
func NewCampaignHandler(runner CampaignRunner, logger *logging.Logger) *CampaignHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &CampaignHandler{runner: runner, logger: logger}
}

type runView struct {
	ID         string   `json:"id"`
	Phase      string   `json:"phase"`
	Status     string   `json:"status"`
	Logs       []string `json:"logs"`
	ExportPath string   `json:"export_path,omitempty"`
}

func newRunView(s campaign.Snapshot) runView {
	return runView{
		ID:         s.ID.String(),
		Phase:      string(s.Phase),
		Status:     s.StatusText,
		Logs:       s.Logs,
		ExportPath: s.ExportPath,
	}
}

// StartRun launches a new campaign run.
// POST /api/v1/campaign/runs
func (h *CampaignHandler) StartRun(w http.ResponseWriter, r *http.Request) {
	if h.runner == nil {
		writeError(w, http.StatusServiceUnavailable, "campaign sending is not configured")
		return
	}

	h.mu.Lock()
	// A fresh run sits in IDLE until its goroutine is scheduled, so the guard
	// must cover every non-terminal phase, not just the in-flight ones.
	if h.current != nil && !h.current.Snapshot().Phase.Terminal() {
		snapshot := h.current.Snapshot()
		h.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]any{
			"error": "a campaign run is already in progress",
			"run":   newRunView(snapshot),
		})
		return
	}
	state := campaign.NewRunState()
	h.current = state
	h.mu.Unlock()

	h.logger.Info("campaign run starting", "run_id", state.ID().String())

	// The run is detached from the request so it survives the client
	// going away; sends pace themselves and must not be interrupted.
	go func() {
		if err := h.runner.Run(context.Background(), state); err != nil {
			h.logger.Error("campaign run failed", "run_id", state.ID().String(), "error", err)
		}
	}()

	writeJSON(w, http.StatusAccepted, newRunView(state.Snapshot()))
}

// CurrentRun reports the latest run's snapshot.
// GET /api/v1/campaign/runs/current
func (h *CampaignHandler) CurrentRun(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	state := h.current
	h.mu.Unlock()

	if state == nil {
		writeError(w, http.StatusNotFound, "no campaign run has been started")
		return
	}
	writeJSON(w, http.StatusOK, newRunView(state.Snapshot()))
}
