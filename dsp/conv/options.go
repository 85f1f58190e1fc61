package conv

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-stconv/dsp/spectral"
)

// Config holds construction settings shared by all convolvers.
type Config struct {
	// Planner supplies transforms. When nil, a new spectral.Cache using
	// Backend is created per constructor call and shared by every engine
	// that call builds.
	Planner spectral.Planner

	// Backend is used only when Planner is nil.
	Backend spectral.Backend

	Logger logrus.FieldLogger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the algo-fft backend and the logrus standard logger.
func DefaultConfig() Config {
	return Config{
		Backend: spectral.AlgoFFT,
		Logger:  logrus.StandardLogger(),
	}
}

// WithPlanner shares an existing planner, typically a spectral.Cache, with
// the convolver.
func WithPlanner(p spectral.Planner) Option {
	return func(cfg *Config) {
		if p != nil {
			cfg.Planner = p
		}
	}
}

// WithBackend selects the transform implementation for the planner created
// when none is injected.
func WithBackend(b spectral.Backend) Option {
	return func(cfg *Config) {
		if b != nil {
			cfg.Backend = b
		}
	}
}

// WithLogger sets the logger used at construction time.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// applyOptions applies opts to the default config and fills in a planner.
func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Planner == nil {
		cfg.Planner = spectral.NewCache(cfg.Backend, cfg.Logger)
	}
	return cfg
}
