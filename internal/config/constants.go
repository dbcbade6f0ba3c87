package config

const (
	// GitHub Defaults
	DefaultGitHubAPIBaseURL        = "https://api.github.com"
	DefaultGitHubUsername          = "bazza2000"
	DefaultGitHubAcceptHeader      = "application/vnd.github.v3+json"
	DefaultGitHubUserAgent         = "gistwatch"
	DefaultGitHubHTTPTimeoutSecs   = 30
	DefaultGitHubEnableHTTP2       = true
	DefaultGitHubMaxResponseSizeMB = 10

	// Monitor Defaults
	// The unauthenticated GitHub REST API allows 60 requests per hour, so one
	// poll per minute is the floor.
	MinPollDelaySeconds     = 60
	DefaultPollDelaySeconds = 60
	FirstPollBaseline       = "baseline"
	FirstPollNotify         = "notify"
	DefaultFirstPollPolicy  = FirstPollBaseline

	// Notification Defaults
	DefaultEmailSubject     = "New Gist Notification"
	DefaultEmailSMTPPort    = 25
	DefaultEmailTimeoutSecs = 30
	DefaultEmailTLSPolicy   = TLSPolicyOpportunistic
	TLSPolicyNone           = "none"
	TLSPolicyOpportunistic  = "opportunistic"
	TLSPolicyMandatory      = "mandatory"

	// Retry Defaults
	DefaultRetryMaxRetries    = 0
	DefaultRetryBaseDelaySecs = 10
	DefaultRetryMaxDelaySecs  = 60

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Metrics Defaults
	DefaultMetricsListenAddr = ":9090"

	// ConfigPathEnvVar names the environment variable consulted by GetConfigPath.
	ConfigPathEnvVar = "GISTWATCH_CONFIG_PATH"
)
