package monitor

import (
	"github.com/google/uuid"
)

// CycleTracker numbers poll cycles and enforces the optional cycle limit.
// It is owned by the single loop goroutine and needs no locking.
type CycleTracker struct {
	currentCycleID string
	maxCycles      int
	currentCycle   int
	changes        int
}

// NewCycleTracker creates a CycleTracker. maxCycles of 0 means unbounded.
func NewCycleTracker(maxCycles int) *CycleTracker {
	return &CycleTracker{maxCycles: maxCycles}
}

// StartCycle begins a new cycle, increments the counter, and sets a new ID.
func (ct *CycleTracker) StartCycle() string {
	ct.currentCycle++
	ct.currentCycleID = uuid.NewString()
	return ct.currentCycleID
}

// ShouldContinue returns false if the maximum number of cycles has been reached.
func (ct *CycleTracker) ShouldContinue() bool {
	if ct.maxCycles == 0 {
		return true
	}
	return ct.currentCycle < ct.maxCycles
}

// RecordChange counts a cycle that dispatched an alert.
func (ct *CycleTracker) RecordChange() {
	ct.changes++
}

// GetCurrentCycleID returns the current cycle ID
func (ct *CycleTracker) GetCurrentCycleID() string {
	return ct.currentCycleID
}

// GetCycleCount returns the number of cycles started
func (ct *CycleTracker) GetCycleCount() int {
	return ct.currentCycle
}

// GetChangeCount returns the number of cycles that dispatched an alert
func (ct *CycleTracker) GetChangeCount() int {
	return ct.changes
}
