package campaign

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Phase is a campaign run's position in its one-way state machine. A run
// cannot be paused or resumed; after DONE or FAILED only a new run starts
// the machine over.
type Phase string

const (
	PhaseIdle             Phase = "IDLE"
	PhaseFetching         Phase = "FETCHING"
	PhaseGeneratingExport Phase = "GENERATING_EXPORT"
	PhaseSending          Phase = "SENDING"
	PhaseDone             Phase = "DONE"
	PhaseFailed           Phase = "FAILED"
)

// Terminal reports whether the phase ends the run.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// Active reports whether a run in this phase is still in flight.
func (p Phase) Active() bool {
	return p == PhaseFetching || p == PhaseGeneratingExport || p == PhaseSending
}

// RunState is the live state of one campaign run: an append-only timestamped
// log and a single current-status line, mutated only by the driver and read
// by the display layer. Snapshots are safe to take while the run progresses.
type RunState struct {
	mu         sync.Mutex
	id         uuid.UUID
	phase      Phase
	statusText string
	logs       []string
	exportPath string
	now        func() time.Time
}

// NewRunState creates the state for a fresh run.
func NewRunState() *RunState {
	return &RunState{
		id:         uuid.New(),
		phase:      PhaseIdle,
		statusText: "Waiting to start",
		now:        time.Now,
	}
}

// ID returns the run's identifier.
func (s *RunState) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// Logf appends a timestamped line to the run log.
func (s *RunState) Logf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	line := fmt.Sprintf("[%s] %s", s.now().Format("15:04:05"), fmt.Sprintf(format, args...))
	s.logs = append(s.logs, line)
}

// SetStatus replaces the current-status line.
func (s *RunState) SetStatus(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusText = text
}

// SetPhase advances the state machine. Transitions are one-way: once the run
// reached a terminal phase the phase no longer changes.
func (s *RunState) SetPhase(p Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase.Terminal() {
		return
	}
	s.phase = p
}

// SetExportPath records where the checkpoint spreadsheet was written.
func (s *RunState) SetExportPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exportPath = path
}

// Snapshot is a point-in-time copy of the run state for the display layer.
type Snapshot struct {
	ID         uuid.UUID `json:"id"`
	Phase      Phase     `json:"phase"`
	StatusText string    `json:"status_text"`
	Logs       []string  `json:"logs"`
	ExportPath string    `json:"export_path,omitempty"`
}

// Snapshot returns a consistent copy of the current state.
func (s *RunState) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	logs := make([]string, len(s.logs))
	copy(logs, s.logs)
	return Snapshot{
		ID:         s.id,
		Phase:      s.phase,
		StatusText: s.statusText,
		Logs:       logs,
		ExportPath: s.exportPath,
	}
}
