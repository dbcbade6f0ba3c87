package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/gistwatch/internal/common"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, DefaultGitHubAPIBaseURL, cfg.GitHubConfig.APIBaseURL)
	assert.Equal(t, DefaultGitHubUsername, cfg.GitHubConfig.Username)
	assert.Equal(t, "application/vnd.github.v3+json", cfg.GitHubConfig.AcceptHeader)
	assert.Equal(t, 60, cfg.MonitorConfig.PollDelaySeconds)
	assert.Equal(t, FirstPollBaseline, cfg.MonitorConfig.FirstPollPolicy)
	assert.True(t, cfg.NotificationConfig.Console.Enabled)
	assert.False(t, cfg.NotificationConfig.Email.Enabled)
	assert.Equal(t, 0, cfg.RetryConfig.MaxRetries)
	assert.False(t, cfg.MetricsConfig.Enabled)
	require.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_NoConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := LoadGlobalConfig("", zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, NewDefaultGlobalConfig(), cfg)
}

func TestLoadGlobalConfig_NonExistentFile(t *testing.T) {
	cfg, err := LoadGlobalConfig("/nonexistent/config.json", zerolog.Nop())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestLoadGlobalConfig_JSONFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.json")
	configData := `{
		"github_config": {"username": "octocat"},
		"monitor_config": {"poll_delay_seconds": 120},
		"log_config": {"log_level": "debug"}
	}`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.GitHubConfig.Username)
	assert.Equal(t, 120, cfg.MonitorConfig.PollDelaySeconds)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultGitHubAPIBaseURL, cfg.GitHubConfig.APIBaseURL)
	assert.True(t, cfg.NotificationConfig.Console.Enabled)
}

func TestLoadGlobalConfig_YAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	configData := `
github_config:
  username: octocat
monitor_config:
  first_poll_policy: notify
notification_config:
  console:
    enabled: false
  email:
    enabled: true
    smtp_server: smtp.example.com
    smtp_port: 587
    sender: gistwatch@example.com
    recipient: me@example.com
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.GitHubConfig.Username)
	assert.Equal(t, FirstPollNotify, cfg.MonitorConfig.FirstPollPolicy)
	assert.False(t, cfg.NotificationConfig.Console.Enabled)
	assert.True(t, cfg.NotificationConfig.Email.Enabled)
	assert.Equal(t, "smtp.example.com", cfg.NotificationConfig.Email.SMTPServer)
	assert.Equal(t, 587, cfg.NotificationConfig.Email.SMTPPort)
	assert.Equal(t, DefaultEmailSubject, cfg.NotificationConfig.Email.Subject)
	require.NoError(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfig_TOMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.toml")
	configData := `
[github_config]
username = "octocat"
http_timeout_seconds = 10

[monitor_config]
max_cycles = 5

[metrics_config]
enabled = true
listen_addr = "127.0.0.1:9191"
`
	require.NoError(t, os.WriteFile(configFile, []byte(configData), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	require.NoError(t, err)
	assert.Equal(t, "octocat", cfg.GitHubConfig.Username)
	assert.Equal(t, 10, cfg.GitHubConfig.HTTPTimeoutSeconds)
	assert.Equal(t, 5, cfg.MonitorConfig.MaxCycles)
	assert.True(t, cfg.MetricsConfig.Enabled)
	assert.Equal(t, "127.0.0.1:9191", cfg.MetricsConfig.ListenAddr)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("github_config: [unterminated"), 0644))

	cfg, err := LoadGlobalConfig(configFile, zerolog.Nop())

	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "failed to unmarshal YAML")
}

func TestGetConfigPath_EnvVar(t *testing.T) {
	chdir(t, t.TempDir())
	configFile := filepath.Join(t.TempDir(), "watch.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("{}"), 0644))
	t.Setenv(ConfigPathEnvVar, configFile)

	assert.Equal(t, configFile, GetConfigPath(""))
}

func TestGetConfigPath_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv(ConfigPathEnvVar, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(""), 0644))

	assert.Equal(t, filepath.Join(dir, "config.toml"), GetConfigPath(""))
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.NotificationConfig.Email.SMTPServer = "from-file.example.com"

	t.Setenv("GISTWATCH_USERNAME", "octocat")
	t.Setenv("GISTWATCH_POLL_DELAY_SECONDS", "300")
	t.Setenv("GISTWATCH_CONSOLE_ENABLED", "false")
	t.Setenv("GISTWATCH_EMAIL_RECIPIENT", "me@example.com")

	require.NoError(t, ApplyEnvOverrides(cfg))

	assert.Equal(t, "octocat", cfg.GitHubConfig.Username)
	assert.Equal(t, 300, cfg.MonitorConfig.PollDelaySeconds)
	assert.False(t, cfg.NotificationConfig.Console.Enabled)
	assert.Equal(t, "me@example.com", cfg.NotificationConfig.Email.Recipient)
	// Unset variables leave file values alone.
	assert.Equal(t, "from-file.example.com", cfg.NotificationConfig.Email.SMTPServer)
	assert.Equal(t, DefaultEmailSMTPPort, cfg.NotificationConfig.Email.SMTPPort)
}

func TestApplyEnvOverrides_BadValue(t *testing.T) {
	t.Setenv("GISTWATCH_POLL_DELAY_SECONDS", "soon")

	err := ApplyEnvOverrides(NewDefaultGlobalConfig())

	assert.ErrorContains(t, err, "failed to read environment overrides")
}
