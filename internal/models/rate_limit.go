package models

import (
	"strconv"
	"time"
)

// RateLimit is the API quota reported on a response. Zero values mean the header was absent.
type RateLimit struct {
	Limit     int
	Remaining int
	Reset     time.Time
	Known     bool
}

// headerGetter is satisfied by http.Header.
type headerGetter interface {
	Get(key string) string
}

// ParseRateLimit reads the X-RateLimit-* headers.
func ParseRateLimit(h headerGetter) RateLimit {
	var rl RateLimit
	if h == nil {
		return rl
	}

	remaining, err := strconv.Atoi(h.Get("X-RateLimit-Remaining"))
	if err != nil {
		return rl
	}
	rl.Known = true
	rl.Remaining = remaining

	if limit, err := strconv.Atoi(h.Get("X-RateLimit-Limit")); err == nil {
		rl.Limit = limit
	}
	if reset, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		rl.Reset = time.Unix(reset, 0).UTC()
	}
	return rl
}
