package monitor

import (
	"context"
	"fmt"

	"github.com/aleister1102/gistwatch/internal/common"
	"github.com/aleister1102/gistwatch/internal/config"
	"github.com/aleister1102/gistwatch/internal/metrics"
	"github.com/aleister1102/gistwatch/internal/models"
	"github.com/aleister1102/gistwatch/internal/notifier"
	"github.com/rs/zerolog"
)

type identityChecker interface {
	Validate(ctx context.Context, name string) error
}

type collectionFetcher interface {
	FetchCollection(ctx context.Context, name string) (models.CollectionSnapshot, error)
}

type alertDispatcher interface {
	Dispatch(ctx context.Context, alert models.Alert) notifier.DispatchResult
}

// MonitoringService runs the poll loop for one user: validate once, establish a
// baseline, then poll, compare, dispatch and sleep until cancelled.
type MonitoringService struct {
	cfg        config.MonitorConfig
	identity   string
	validator  identityChecker
	poller     collectionFetcher
	dispatcher alertDispatcher
	detector   *ChangeDetector
	cycles     *CycleTracker
	logger     zerolog.Logger
}

// NewMonitoringService creates a new instance of MonitoringService.
func NewMonitoringService(
	cfg config.MonitorConfig,
	identity string,
	validator identityChecker,
	poller collectionFetcher,
	dispatcher alertDispatcher,
	baseLogger zerolog.Logger,
) *MonitoringService {
	return &MonitoringService{
		cfg:        cfg,
		identity:   identity,
		validator:  validator,
		poller:     poller,
		dispatcher: dispatcher,
		detector:   NewChangeDetector(),
		cycles:     NewCycleTracker(cfg.MaxCycles),
		logger:     baseLogger.With().Str("component", "MonitoringService").Str("user", identity).Logger(),
	}
}

// Run blocks until ctx is cancelled or MaxCycles cycles have completed, and
// then returns nil. Identity and poll failures are returned as errors.
func (s *MonitoringService) Run(ctx context.Context) error {
	s.logger.Info().
		Dur("poll_delay", s.cfg.PollDelay()).
		Str("first_poll_policy", s.cfg.FirstPollPolicy).
		Int("max_cycles", s.cfg.MaxCycles).
		Msg("Starting MonitoringService...")

	if err := s.validator.Validate(ctx, s.identity); err != nil {
		metrics.ObservePoll(err)
		if ctx.Err() != nil {
			s.logger.Info().Msg("Context cancelled during identity check")
			return nil
		}
		return err
	}

	if err := s.establishBaseline(ctx); err != nil {
		if ctx.Err() != nil {
			s.logger.Info().Msg("Context cancelled while establishing baseline")
			return nil
		}
		return err
	}

	for s.cycles.ShouldContinue() {
		if common.CheckCancellationWithLog(ctx, s.logger, "poll cycle") {
			return nil
		}

		if err := s.runCycle(ctx); err != nil {
			if ctx.Err() != nil {
				s.logger.Info().Msg("Context cancelled during poll")
				return nil
			}
			return err
		}

		if !s.cycles.ShouldContinue() {
			break
		}
		if !s.wait(ctx) {
			s.logger.Info().Int("cycles", s.cycles.GetCycleCount()).Msg("Context cancelled, MonitoringService stopping")
			return nil
		}
	}

	s.logger.Info().
		Int("cycles", s.cycles.GetCycleCount()).
		Int("alerts", s.cycles.GetChangeCount()).
		Msg("Maximum cycles reached, MonitoringService stopping")
	return nil
}

// Baseline returns the current baseline count.
func (s *MonitoringService) Baseline() int {
	return s.detector.Baseline()
}

// AlertCount returns how many alerts have been dispatched.
func (s *MonitoringService) AlertCount() int {
	return s.cycles.GetChangeCount()
}

func (s *MonitoringService) establishBaseline(ctx context.Context) error {
	if s.cfg.NotifyOnFirstPoll() {
		s.detector.Establish(s.cfg.InitialBaseline)
		metrics.SetBaseline(s.cfg.InitialBaseline)
		s.logger.Info().Int("baseline", s.cfg.InitialBaseline).Msg("Using configured baseline, first poll may alert")
		return nil
	}

	snapshot, err := s.poller.FetchCollection(ctx, s.identity)
	metrics.ObservePoll(err)
	if err != nil {
		return err
	}

	s.detector.Establish(snapshot.Count)
	metrics.SetBaseline(snapshot.Count)
	s.logger.Info().Int("baseline", snapshot.Count).Msg("Baseline established")
	return nil
}

func (s *MonitoringService) runCycle(ctx context.Context) error {
	cycleID := s.cycles.StartCycle()
	cycleLogger := s.logger.With().Str("cycle_id", cycleID).Logger()

	snapshot, err := s.poller.FetchCollection(ctx, s.identity)
	metrics.ObservePoll(err)
	if err != nil {
		return err
	}
	if snapshot.RateLimit.Known {
		metrics.SetRateLimitRemaining(snapshot.RateLimit.Remaining)
	}

	initial := s.detector.Baseline()
	cycleLogger.Info().
		Int("initial", initial).
		Int("current", snapshot.Count).
		Msgf("Initial:%d Current:%d", initial, snapshot.Count)

	record, changed, err := s.detector.Observe(snapshot)
	if err != nil {
		return fmt.Errorf("failed to read newest gist: %w", err)
	}
	metrics.SetBaseline(s.detector.Baseline())

	if !changed {
		if initial != s.detector.Baseline() {
			cycleLogger.Info().Int("baseline", s.detector.Baseline()).Msg("Gist list is empty, baseline moved without alert")
		}
		return nil
	}

	alert := FormatAlert(s.identity, *record)
	result := s.dispatcher.Dispatch(ctx, alert)
	metrics.IncAlert()
	s.cycles.RecordChange()

	cycleLogger.Info().
		Str("gist_url", record.URL).
		Int("baseline", s.detector.Baseline()).
		Strs("delivered", result.Delivered).
		Int("failed_sinks", len(result.Failed)).
		Msg("New gist detected")
	return nil
}

// wait sleeps for the poll delay and reports false if ctx ended first.
func (s *MonitoringService) wait(ctx context.Context) bool {
	return common.WaitWithCancellation(ctx, s.cfg.PollDelay()) == nil
}
