package monitor

import (
	"fmt"
	"testing"

	"github.com/aleister1102/gistwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// snapshotOf returns n gists, newest first, with IDs n..1.
func snapshotOf(n int) models.CollectionSnapshot {
	items := make([]models.Gist, 0, n)
	for i := n; i >= 1; i-- {
		items = append(items, models.Gist{
			ID:        fmt.Sprint(i),
			CreatedAt: fmt.Sprintf("2019-09-%02dT10:00:00Z", i),
			HTMLURL:   fmt.Sprintf("https://gist.github.com/%d", i),
		})
	}
	return models.NewCollectionSnapshot(items, models.RateLimit{})
}

func TestChangeDetector_NewItemFiresOnce(t *testing.T) {
	d := NewChangeDetector()
	d.Establish(1)

	record, changed, err := d.Observe(snapshotOf(2))

	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, "2", record.ID)
	assert.Equal(t, "https://gist.github.com/2", record.URL)
	assert.Equal(t, 2, d.Baseline())

	_, changed, err = d.Observe(snapshotOf(2))
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestChangeDetector_UnchangedNeverFires(t *testing.T) {
	d := NewChangeDetector()
	d.Establish(3)

	for i := 0; i < 25; i++ {
		record, changed, err := d.Observe(snapshotOf(3))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Nil(t, record)
	}
	assert.Equal(t, 3, d.Baseline())
}

func TestChangeDetector_CoalescesJumps(t *testing.T) {
	d := NewChangeDetector()
	d.Establish(1)

	record, changed, err := d.Observe(snapshotOf(4))

	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, "4", record.ID)
	assert.Equal(t, 4, d.Baseline())
}

func TestChangeDetector_Shrink(t *testing.T) {
	d := NewChangeDetector()
	d.Establish(3)

	record, changed, err := d.Observe(snapshotOf(2))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "2", record.ID)

	record, changed, err = d.Observe(snapshotOf(0))
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Nil(t, record)
	assert.Equal(t, 0, d.Baseline())
}

func TestChangeDetector_BadTimestampKeepsBaseline(t *testing.T) {
	d := NewChangeDetector()
	d.Establish(0)

	snapshot := models.NewCollectionSnapshot([]models.Gist{{ID: "x", CreatedAt: "not a time"}}, models.RateLimit{})
	_, changed, err := d.Observe(snapshot)

	assert.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, 0, d.Baseline())
}
