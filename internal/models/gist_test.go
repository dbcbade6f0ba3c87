package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGist_DecodeNullDescription(t *testing.T) {
	body := `[
		{"id":"b","created_at":"2019-09-12T22:42:02Z","description":null,"html_url":"https://gist.github.com/b"},
		{"id":"a","created_at":"2019-09-01T10:00:00Z","description":"first","html_url":"https://gist.github.com/a"}
	]`

	var gists []Gist
	require.NoError(t, json.Unmarshal([]byte(body), &gists))

	snapshot := NewCollectionSnapshot(gists, RateLimit{})
	assert.Equal(t, 2, snapshot.Count)

	newest, ok := snapshot.Newest()
	require.True(t, ok)
	assert.Equal(t, "b", newest.ID)
	assert.Nil(t, newest.Description)
	require.NotNil(t, gists[1].Description)
	assert.Equal(t, "first", *gists[1].Description)
}

func TestCollectionSnapshot_NewestEmpty(t *testing.T) {
	_, ok := NewCollectionSnapshot(nil, RateLimit{}).Newest()
	assert.False(t, ok)
}

func TestParseRateLimit(t *testing.T) {
	h := http.Header{}
	h.Set("X-RateLimit-Limit", "60")
	h.Set("X-RateLimit-Remaining", "57")
	h.Set("X-RateLimit-Reset", "1568328122")

	rl := ParseRateLimit(h)

	assert.True(t, rl.Known)
	assert.Equal(t, 60, rl.Limit)
	assert.Equal(t, 57, rl.Remaining)
	assert.Equal(t, time.Unix(1568328122, 0).UTC(), rl.Reset)
}

func TestParseRateLimit_Missing(t *testing.T) {
	assert.False(t, ParseRateLimit(http.Header{}).Known)
	assert.False(t, ParseRateLimit(nil).Known)
}
