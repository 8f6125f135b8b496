// Package state implements the per-host migration stage ledger. The ledger
// is a plain JSON object of stage name to boolean, kept on the migrated host
// so a re-run resumes from where the previous one stopped.
package state

import (
	"encoding/json"
	"fmt"
)

// StageCompleted is the ledger key that marks the whole migration as done.
const StageCompleted = "completed"

// Ledger tracks which migration stages have finished successfully on a host.
type Ledger struct {
	stages map[string]bool
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{stages: make(map[string]bool)}
}

// Parse reads a ledger from its JSON representation.
func Parse(data []byte) (*Ledger, error) {
	l := NewLedger()
	if len(data) == 0 {
		return l, nil
	}
	if err := json.Unmarshal(data, &l.stages); err != nil {
		return nil, fmt.Errorf("failed to parse stage status data: %w", err)
	}
	return l, nil
}

// Done returns true when the named stage has been recorded as successful.
func (l *Ledger) Done(stage string) bool {
	if l == nil {
		return false
	}
	return l.stages[stage]
}

// SetDone records a successful stage.
func (l *Ledger) SetDone(stage string) {
	if l.stages == nil {
		l.stages = make(map[string]bool)
	}
	l.stages[stage] = true
}

// Completed returns true when the whole migration has been recorded as done.
func (l *Ledger) Completed() bool {
	return l.Done(StageCompleted)
}

// Stages returns the recorded stage names and their status.
func (l *Ledger) Stages() map[string]bool {
	out := make(map[string]bool, len(l.stages))
	for k, v := range l.stages {
		out[k] = v
	}
	return out
}

// Marshal renders the ledger in the on-disk format. The four space indent
// matches the format written by earlier versions of the tool.
func (l *Ledger) Marshal() ([]byte, error) {
	if l.stages == nil {
		return []byte("{}"), nil
	}
	return json.MarshalIndent(l.stages, "", "    ")
}
