package expect

import (
	"github.com/rs/zerolog"

	"digital.vasic.assertions/pkg/report"
)

// Option configures a single assertion or expectation.
type Option func(*config)

// config carries the per-assertion settings.
type config struct {
	message  string
	logger   zerolog.Logger
	recorder *report.Recorder
}

// newConfig applies the options over the defaults: no message,
// no recorder, and a disabled logger.
func newConfig(opts []Option) config {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMessage attaches a message shown when the assertion
// fails.
func WithMessage(message string) Option {
	return func(cfg *config) {
		cfg.message = message
	}
}

// WithLogger enables debug tracing of matcher evaluations on
// the given logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithRecorder records the assertion's outcome on the given
// recorder, passed or failed.
func WithRecorder(recorder *report.Recorder) Option {
	return func(cfg *config) {
		cfg.recorder = recorder
	}
}
