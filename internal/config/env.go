package config

import (
	"github.com/aleister1102/gistwatch/internal/common"
	"github.com/kelseyhightower/envconfig"
)

// envOverrides lists the settings that may be supplied through GISTWATCH_* variables.
// envconfig leaves a field untouched when its variable is unset, so the struct is
// seeded from the loaded config and copied back after processing.
// Keys carry the full prefix so envconfig never falls back to a bare name such as USERNAME.
type envOverrides struct {
	Username         string `envconfig:"GISTWATCH_USERNAME"`
	APIBaseURL       string `envconfig:"GISTWATCH_API_BASE_URL"`
	HTTPTimeoutSecs  int    `envconfig:"GISTWATCH_HTTP_TIMEOUT_SECONDS"`
	PollDelaySeconds int    `envconfig:"GISTWATCH_POLL_DELAY_SECONDS"`
	FirstPollPolicy  string `envconfig:"GISTWATCH_FIRST_POLL_POLICY"`
	MaxCycles        int    `envconfig:"GISTWATCH_MAX_CYCLES"`
	ConsoleEnabled   bool   `envconfig:"GISTWATCH_CONSOLE_ENABLED"`
	EmailEnabled     bool   `envconfig:"GISTWATCH_EMAIL_ENABLED"`
	SMTPServer       string `envconfig:"GISTWATCH_SMTP_SERVER"`
	SMTPPort         int    `envconfig:"GISTWATCH_SMTP_PORT"`
	SMTPUsername     string `envconfig:"GISTWATCH_SMTP_USERNAME"`
	SMTPPassword     string `envconfig:"GISTWATCH_SMTP_PASSWORD"`
	EmailSender      string `envconfig:"GISTWATCH_EMAIL_SENDER"`
	EmailRecipient   string `envconfig:"GISTWATCH_EMAIL_RECIPIENT"`
	LogLevel         string `envconfig:"GISTWATCH_LOG_LEVEL"`
	LogFormat        string `envconfig:"GISTWATCH_LOG_FORMAT"`
	LogFile          string `envconfig:"GISTWATCH_LOG_FILE"`
	MetricsEnabled   bool   `envconfig:"GISTWATCH_METRICS_ENABLED"`
	MetricsAddr      string `envconfig:"GISTWATCH_METRICS_ADDR"`
}

// ApplyEnvOverrides overlays GISTWATCH_* environment variables on cfg.
func ApplyEnvOverrides(cfg *GlobalConfig) error {
	o := envOverrides{
		Username:         cfg.GitHubConfig.Username,
		APIBaseURL:       cfg.GitHubConfig.APIBaseURL,
		HTTPTimeoutSecs:  cfg.GitHubConfig.HTTPTimeoutSeconds,
		PollDelaySeconds: cfg.MonitorConfig.PollDelaySeconds,
		FirstPollPolicy:  cfg.MonitorConfig.FirstPollPolicy,
		MaxCycles:        cfg.MonitorConfig.MaxCycles,
		ConsoleEnabled:   cfg.NotificationConfig.Console.Enabled,
		EmailEnabled:     cfg.NotificationConfig.Email.Enabled,
		SMTPServer:       cfg.NotificationConfig.Email.SMTPServer,
		SMTPPort:         cfg.NotificationConfig.Email.SMTPPort,
		SMTPUsername:     cfg.NotificationConfig.Email.Username,
		SMTPPassword:     cfg.NotificationConfig.Email.Password,
		EmailSender:      cfg.NotificationConfig.Email.Sender,
		EmailRecipient:   cfg.NotificationConfig.Email.Recipient,
		LogLevel:         cfg.LogConfig.LogLevel,
		LogFormat:        cfg.LogConfig.LogFormat,
		LogFile:          cfg.LogConfig.LogFile,
		MetricsEnabled:   cfg.MetricsConfig.Enabled,
		MetricsAddr:      cfg.MetricsConfig.ListenAddr,
	}

	if err := envconfig.Process("", &o); err != nil {
		return common.WrapError(err, "failed to read environment overrides")
	}

	cfg.GitHubConfig.Username = o.Username
	cfg.GitHubConfig.APIBaseURL = o.APIBaseURL
	cfg.GitHubConfig.HTTPTimeoutSeconds = o.HTTPTimeoutSecs
	cfg.MonitorConfig.PollDelaySeconds = o.PollDelaySeconds
	cfg.MonitorConfig.FirstPollPolicy = o.FirstPollPolicy
	cfg.MonitorConfig.MaxCycles = o.MaxCycles
	cfg.NotificationConfig.Console.Enabled = o.ConsoleEnabled
	cfg.NotificationConfig.Email.Enabled = o.EmailEnabled
	cfg.NotificationConfig.Email.SMTPServer = o.SMTPServer
	cfg.NotificationConfig.Email.SMTPPort = o.SMTPPort
	cfg.NotificationConfig.Email.Username = o.SMTPUsername
	cfg.NotificationConfig.Email.Password = o.SMTPPassword
	cfg.NotificationConfig.Email.Sender = o.EmailSender
	cfg.NotificationConfig.Email.Recipient = o.EmailRecipient
	cfg.LogConfig.LogLevel = o.LogLevel
	cfg.LogConfig.LogFormat = o.LogFormat
	cfg.LogConfig.LogFile = o.LogFile
	cfg.MetricsConfig.Enabled = o.MetricsEnabled
	cfg.MetricsConfig.ListenAddr = o.MetricsAddr
	return nil
}
