package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/gistwatch/internal/config"
	"github.com/aleister1102/gistwatch/internal/github"
	"github.com/aleister1102/gistwatch/internal/logger"
	"github.com/aleister1102/gistwatch/internal/metrics"
	"github.com/aleister1102/gistwatch/internal/monitor"
	"github.com/aleister1102/gistwatch/internal/notifier"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := executeRoot(ctx, newRootCmd(os.Stdout)); err != nil {
		stop()
		os.Exit(1)
	}
}

// reportedError marks an error that run has already logged.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// executeRoot runs cmd and prints argument and flag errors that never reached run.
func executeRoot(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return err
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var flags AppFlags

	cmd := &cobra.Command{
		Use:           appName + " [username]",
		Short:         "Watch a GitHub user's public gists and report new ones",
		Args:          cobra.MaximumNArgs(1),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(cmd, args, flags, stdout); err != nil {
				return reportedError{err}
			}
			return nil
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("Running %s Version: {{.Version}}\n", appName))
	bindFlags(cmd, &flags)
	return cmd
}

// run builds the configuration and components, then blocks in the poll loop.
// Any returned error means exit status 1.
func run(cmd *cobra.Command, args []string, flags AppFlags, stdout io.Writer) error {
	bootLogger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).With().Timestamp().Logger()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile, bootLogger)
	if err != nil {
		bootLogger.Error().Err(err).Str("path", flags.ConfigFile).Msg("Could not load config")
		return err
	}
	if err := config.ApplyEnvOverrides(gCfg); err != nil {
		bootLogger.Error().Err(err).Msg("Could not apply environment overrides")
		return err
	}
	applyFlags(cmd, args, flags, gCfg)

	if err := config.ValidateConfig(gCfg); err != nil {
		bootLogger.Error().Err(err).Msg("Configuration validation failed")
		return err
	}

	appLogger, err := logger.NewLoggerBuilder().
		WithConfig(gCfg.LogConfig).
		WithNoColor(flags.NoColor).
		WithConsoleWriter(cmd.ErrOrStderr()).
		Build()
	if err != nil {
		bootLogger.Error().Err(err).Msg("Could not initialize logger")
		return err
	}
	zLogger := *appLogger.GetZerolog()

	zLogger.Info().Str("version", Version).Msgf("Running %s Version: %s", appName, Version)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if gCfg.MetricsConfig.Enabled {
		registry := prometheus.NewRegistry()
		metrics.MustRegister(registry)
		metricsServer := metrics.NewServer(gCfg.MetricsConfig.ListenAddr, registry, zLogger)
		if _, err := metricsServer.Start(ctx); err != nil {
			zLogger.Error().Err(err).Str("addr", gCfg.MetricsConfig.ListenAddr).Msg("Could not start metrics server")
			return err
		}
		defer func() {
			cancel()
			<-metricsServer.Done()
		}()
	}

	client, err := github.NewClient(gCfg.GitHubConfig, gCfg.RetryConfig, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not create GitHub client")
		return err
	}

	dispatcher, err := notifier.NewDispatcher(gCfg.NotificationConfig, stdout, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not create notification sinks")
		return err
	}

	service := monitor.NewMonitoringService(
		gCfg.MonitorConfig,
		gCfg.GitHubConfig.Username,
		monitor.NewIdentityValidator(client, zLogger),
		monitor.NewCollectionPoller(client, zLogger),
		dispatcher,
		zLogger,
	)

	if err := service.Run(ctx); err != nil {
		zLogger.Error().Err(err).Msg("Monitoring stopped on fatal error")
		return err
	}

	zLogger.Info().Msg("Exiting")
	return nil
}
