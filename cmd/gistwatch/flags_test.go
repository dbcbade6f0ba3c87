package main

import (
	"testing"

	"github.com/aleister1102/gistwatch/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd(nil)
	require.NoError(t, cmd.ParseFlags([]string{"--delay", "120", "--email", "--no-console", "--first-poll", "notify"}))

	var flags AppFlags
	flags.PollDelaySeconds, _ = cmd.Flags().GetInt("delay")
	flags.Email, _ = cmd.Flags().GetBool("email")
	flags.NoConsole, _ = cmd.Flags().GetBool("no-console")
	flags.FirstPollPolicy, _ = cmd.Flags().GetString("first-poll")

	cfg := config.NewDefaultGlobalConfig()
	cfg.MonitorConfig.MaxCycles = 9
	applyFlags(cmd, []string{"octocat"}, flags, cfg)

	assert.Equal(t, "octocat", cfg.GitHubConfig.Username)
	assert.Equal(t, 120, cfg.MonitorConfig.PollDelaySeconds)
	assert.True(t, cfg.NotificationConfig.Email.Enabled)
	assert.False(t, cfg.NotificationConfig.Console.Enabled)
	assert.Equal(t, config.FirstPollNotify, cfg.MonitorConfig.FirstPollPolicy)
	// Unset flags leave config values alone.
	assert.Equal(t, 9, cfg.MonitorConfig.MaxCycles)
}

func TestApplyFlags_UserFlagBeatsPositional(t *testing.T) {
	cmd := newRootCmd(nil)
	require.NoError(t, cmd.ParseFlags([]string{"--user", "from-flag"}))

	cfg := config.NewDefaultGlobalConfig()
	applyFlags(cmd, []string{"from-arg"}, AppFlags{Username: "from-flag"}, cfg)

	assert.Equal(t, "from-flag", cfg.GitHubConfig.Username)
}

func TestApplyFlags_DefaultUser(t *testing.T) {
	cmd := newRootCmd(nil)
	cfg := config.NewDefaultGlobalConfig()

	applyFlags(cmd, nil, AppFlags{}, cfg)

	assert.Equal(t, config.DefaultGitHubUsername, cfg.GitHubConfig.Username)
}
