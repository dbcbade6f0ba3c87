package config

import "time"

// GitHubConfig defines how the remote API is reached and which identity is watched
type GitHubConfig struct {
	APIBaseURL         string `json:"api_base_url,omitempty" yaml:"api_base_url,omitempty" toml:"api_base_url,omitempty" validate:"required,url"`
	Username           string `json:"username,omitempty" yaml:"username,omitempty" toml:"username,omitempty" validate:"required,ghuser"`
	AcceptHeader       string `json:"accept_header,omitempty" yaml:"accept_header,omitempty" toml:"accept_header,omitempty"`
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty" toml:"user_agent,omitempty"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds,omitempty" yaml:"http_timeout_seconds,omitempty" toml:"http_timeout_seconds,omitempty" validate:"min=1"`
	EnableHTTP2        bool   `json:"enable_http2" yaml:"enable_http2" toml:"enable_http2"`
	MaxResponseSizeMB  int    `json:"max_response_size_mb,omitempty" yaml:"max_response_size_mb,omitempty" toml:"max_response_size_mb,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultGitHubConfig creates default GitHub API configuration
func NewDefaultGitHubConfig() GitHubConfig {
	return GitHubConfig{
		APIBaseURL:         DefaultGitHubAPIBaseURL,
		Username:           DefaultGitHubUsername,
		AcceptHeader:       DefaultGitHubAcceptHeader,
		UserAgent:          DefaultGitHubUserAgent,
		HTTPTimeoutSeconds: DefaultGitHubHTTPTimeoutSecs,
		EnableHTTP2:        DefaultGitHubEnableHTTP2,
		MaxResponseSizeMB:  DefaultGitHubMaxResponseSizeMB,
	}
}

// HTTPTimeout returns the per-call timeout as a duration
func (c GitHubConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
