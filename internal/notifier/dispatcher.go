package notifier

import (
	"context"
	"io"

	"github.com/aleister1102/gistwatch/internal/config"
	"github.com/aleister1102/gistwatch/internal/metrics"
	"github.com/aleister1102/gistwatch/internal/models"
	"github.com/rs/zerolog"
)

// DispatchResult reports which sinks received an alert.
type DispatchResult struct {
	Delivered []string
	Failed    map[string]error
}

// OK reports whether every sink succeeded.
func (r DispatchResult) OK() bool {
	return len(r.Failed) == 0
}

// Dispatcher fans an alert out to its sinks sequentially, in registration order.
type Dispatcher struct {
	sinks  []Sink
	logger zerolog.Logger
}

// NewDispatcher builds the enabled sinks, console before email.
func NewDispatcher(cfg config.NotificationConfig, stdout io.Writer, logger zerolog.Logger) (*Dispatcher, error) {
	var sinks []Sink
	if cfg.Console.Enabled {
		sinks = append(sinks, NewConsoleSink(stdout))
	}
	if cfg.Email.Enabled {
		emailSink, err := NewEmailSink(cfg.Email, logger)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, emailSink)
	}
	return NewDispatcherWithSinks(logger, sinks...), nil
}

// NewDispatcherWithSinks creates a Dispatcher over an explicit sink list.
func NewDispatcherWithSinks(logger zerolog.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks:  sinks,
		logger: logger.With().Str("component", "Dispatcher").Logger(),
	}
	if len(sinks) == 0 {
		d.logger.Warn().Msg("No notification sinks enabled, alerts will only be counted")
	}
	return d
}

// Sinks returns the sink names in dispatch order.
func (d *Dispatcher) Sinks() []string {
	names := make([]string, 0, len(d.sinks))
	for _, s := range d.sinks {
		names = append(names, s.Name())
	}
	return names
}

// Dispatch delivers alert to every sink. A failing sink is logged and counted
// and never stops delivery to the sinks after it.
func (d *Dispatcher) Dispatch(ctx context.Context, alert models.Alert) DispatchResult {
	result := DispatchResult{Failed: map[string]error{}}

	for _, sink := range d.sinks {
		if err := sink.Notify(ctx, alert); err != nil {
			metrics.IncSinkFailure(sink.Name())
			d.logger.Error().
				Err(err).
				Str("sink", sink.Name()).
				Str("user", alert.Identity).
				Str("gist_url", alert.Record.URL).
				Msg("Failed to deliver notification")
			result.Failed[sink.Name()] = err
			continue
		}
		result.Delivered = append(result.Delivered, sink.Name())
	}

	return result
}
