package config

import "time"

// NotificationConfig holds the per-sink toggles and sink settings
type NotificationConfig struct {
	Console ConsoleConfig `json:"console" yaml:"console" toml:"console"`
	Email   EmailConfig   `json:"email" yaml:"email" toml:"email"`
}

// ConsoleConfig toggles the stdout sink
type ConsoleConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
}

// EmailConfig defines the SMTP relay used by the email sink
type EmailConfig struct {
	Enabled        bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	SMTPServer     string `json:"smtp_server,omitempty" yaml:"smtp_server,omitempty" toml:"smtp_server,omitempty" validate:"required_if=Enabled true"`
	SMTPPort       int    `json:"smtp_port,omitempty" yaml:"smtp_port,omitempty" toml:"smtp_port,omitempty" validate:"min=0,max=65535,required_if=Enabled true"`
	Sender         string `json:"sender,omitempty" yaml:"sender,omitempty" toml:"sender,omitempty" validate:"required_if=Enabled true"`
	Recipient      string `json:"recipient,omitempty" yaml:"recipient,omitempty" toml:"recipient,omitempty" validate:"required_if=Enabled true"`
	Subject        string `json:"subject,omitempty" yaml:"subject,omitempty" toml:"subject,omitempty"`
	Username       string `json:"username,omitempty" yaml:"username,omitempty" toml:"username,omitempty"`
	Password       string `json:"password,omitempty" yaml:"password,omitempty" toml:"password,omitempty"`
	TLSPolicy      string `json:"tls_policy,omitempty" yaml:"tls_policy,omitempty" toml:"tls_policy,omitempty" validate:"tlspolicy"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" toml:"timeout_seconds,omitempty" validate:"min=0"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		Console: ConsoleConfig{Enabled: true},
		Email: EmailConfig{
			Enabled:        false,
			SMTPPort:       DefaultEmailSMTPPort,
			Subject:        DefaultEmailSubject,
			TLSPolicy:      DefaultEmailTLSPolicy,
			TimeoutSeconds: DefaultEmailTimeoutSecs,
		},
	}
}

// Timeout returns the SMTP dial/send timeout
func (c EmailConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultEmailTimeoutSecs * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
