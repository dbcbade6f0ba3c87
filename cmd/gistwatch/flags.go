package main

import (
	"github.com/aleister1102/gistwatch/internal/config"
	"github.com/spf13/cobra"
)

// AppFlags holds command-line overrides. Only flags the user set are applied.
type AppFlags struct {
	ConfigFile       string
	Username         string
	PollDelaySeconds int
	NoConsole        bool
	Email            bool
	MaxCycles        int
	FirstPollPolicy  string
	NoColor          bool
}

func bindFlags(cmd *cobra.Command, flags *AppFlags) {
	f := cmd.Flags()
	f.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML, TOML or JSON config file. If not set, searches default locations.")
	f.StringVarP(&flags.Username, "user", "u", "", "GitHub user whose public gists are watched")
	f.IntVarP(&flags.PollDelaySeconds, "delay", "d", 0, "Seconds between polls (minimum 60)")
	f.BoolVar(&flags.NoConsole, "no-console", false, "Do not print alerts to stdout")
	f.BoolVar(&flags.Email, "email", false, "Send alerts by email (requires SMTP settings)")
	f.IntVar(&flags.MaxCycles, "max-cycles", 0, "Stop after this many poll cycles (0 runs until interrupted)")
	f.StringVar(&flags.FirstPollPolicy, "first-poll", "", "First poll behaviour: baseline or notify")
	f.BoolVar(&flags.NoColor, "no-color", false, "Disable coloured log output")
}

// applyFlags copies explicitly set flags and the positional username onto cfg.
func applyFlags(cmd *cobra.Command, args []string, flags AppFlags, cfg *config.GlobalConfig) {
	f := cmd.Flags()

	if len(args) == 1 && args[0] != "" {
		cfg.GitHubConfig.Username = args[0]
	}
	if f.Changed("user") {
		cfg.GitHubConfig.Username = flags.Username
	}
	if f.Changed("delay") {
		cfg.MonitorConfig.PollDelaySeconds = flags.PollDelaySeconds
	}
	if f.Changed("no-console") {
		cfg.NotificationConfig.Console.Enabled = !flags.NoConsole
	}
	if f.Changed("email") {
		cfg.NotificationConfig.Email.Enabled = flags.Email
	}
	if f.Changed("max-cycles") {
		cfg.MonitorConfig.MaxCycles = flags.MaxCycles
	}
	if f.Changed("first-poll") {
		cfg.MonitorConfig.FirstPollPolicy = flags.FirstPollPolicy
	}
}
