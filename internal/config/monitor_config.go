package config

import (
	"time"
)

// MonitorConfig defines configuration for the polling loop
type MonitorConfig struct {
	PollDelaySeconds int `json:"poll_delay_seconds,omitempty" yaml:"poll_delay_seconds,omitempty" toml:"poll_delay_seconds,omitempty" validate:"minpolldelay"`
	// FirstPollPolicy is "baseline" (the first poll only records the count) or
	// "notify" (the first poll is compared against InitialBaseline).
	FirstPollPolicy string `json:"first_poll_policy,omitempty" yaml:"first_poll_policy,omitempty" toml:"first_poll_policy,omitempty" validate:"firstpoll"`
	InitialBaseline int    `json:"initial_baseline,omitempty" yaml:"initial_baseline,omitempty" toml:"initial_baseline,omitempty" validate:"min=0"`
	MaxCycles       int    `json:"max_cycles,omitempty" yaml:"max_cycles,omitempty" toml:"max_cycles,omitempty" validate:"min=0"` // 0 means run indefinitely
}

// NewDefaultMonitorConfig creates default monitor configuration
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		PollDelaySeconds: DefaultPollDelaySeconds,
		FirstPollPolicy:  DefaultFirstPollPolicy,
		InitialBaseline:  0,
		MaxCycles:        0,
	}
}

// PollDelay returns the fixed end-of-iteration delay
func (c MonitorConfig) PollDelay() time.Duration {
	return time.Duration(c.PollDelaySeconds) * time.Second
}

// NotifyOnFirstPoll reports whether the first poll may fire an alert
func (c MonitorConfig) NotifyOnFirstPoll() bool {
	return c.FirstPollPolicy == FirstPollNotify
}
