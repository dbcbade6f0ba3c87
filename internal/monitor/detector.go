package monitor

import (
	"github.com/aleister1102/gistwatch/internal/models"
)

// ChangeDetector holds the baseline count and decides when a snapshot is news.
// Jumps of more than one item are coalesced into a single alert for the newest item.
type ChangeDetector struct {
	baseline int
}

// NewChangeDetector creates a detector with a zero baseline.
func NewChangeDetector() *ChangeDetector {
	return &ChangeDetector{}
}

// Establish sets the baseline without alerting.
func (d *ChangeDetector) Establish(count int) {
	d.baseline = count
}

// Baseline returns the count used for the next comparison.
func (d *ChangeDetector) Baseline() int {
	return d.baseline
}

// Observe compares snapshot against the baseline. When the count differs it
// returns the newest item's record and moves the baseline to snapshot.Count.
// A shrink to an empty list moves the baseline without a record. On error the
// baseline is left untouched.
func (d *ChangeDetector) Observe(snapshot models.CollectionSnapshot) (*models.GistRecord, bool, error) {
	if snapshot.Count == d.baseline {
		return nil, false, nil
	}

	newest, ok := snapshot.Newest()
	if !ok {
		d.baseline = snapshot.Count
		return nil, false, nil
	}

	record, err := BuildRecord(newest)
	if err != nil {
		return nil, false, err
	}

	d.baseline = snapshot.Count
	return &record, true, nil
}
