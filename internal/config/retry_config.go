package config

import "time"

// RetryConfig defines configuration for HTTP request retries.
// Retries are off by default: a failed poll is fatal.
type RetryConfig struct {
	// Maximum number of retry attempts for retryable status codes
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty" toml:"max_retries,omitempty" validate:"min=0,max=10"`
	// Base delay in seconds for exponential backoff
	BaseDelaySecs int `json:"base_delay_secs,omitempty" yaml:"base_delay_secs,omitempty" toml:"base_delay_secs,omitempty" validate:"omitempty,min=1,max=300"`
	// Maximum delay in seconds for exponential backoff
	MaxDelaySecs int `json:"max_delay_secs,omitempty" yaml:"max_delay_secs,omitempty" toml:"max_delay_secs,omitempty" validate:"omitempty,min=1,max=3600"`
	// Enable jitter to randomize delays slightly
	EnableJitter bool `json:"enable_jitter" yaml:"enable_jitter" toml:"enable_jitter"`
	// HTTP status codes that should trigger retries
	RetryStatusCodes []int `json:"retry_status_codes,omitempty" yaml:"retry_status_codes,omitempty" toml:"retry_status_codes,omitempty"`
}

// NewDefaultRetryConfig creates default retry configuration
func NewDefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:       DefaultRetryMaxRetries,
		BaseDelaySecs:    DefaultRetryBaseDelaySecs,
		MaxDelaySecs:     DefaultRetryMaxDelaySecs,
		EnableJitter:     true,
		RetryStatusCodes: []int{429},
	}
}

// BaseDelay returns the backoff base as a duration
func (c RetryConfig) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelaySecs) * time.Second
}

// MaxDelay returns the backoff cap as a duration
func (c RetryConfig) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelaySecs) * time.Second
}
