package collection

import (
	"github.com/rs/zerolog"
)

type (
	// Validator is an additional conformance check layered on top of the
	// element kind. A non-nil error rejects the item.
	Validator func(item any) error

	namedValidator struct {
		name string
		fn   Validator
	}

	config struct {
		capacity   int
		validators []namedValidator
		logger     zerolog.Logger
	}

	Option func(cfg *config)
)

func newConfig(options []Option) config {
	cfg := config{
		logger: zerolog.Nop(),
	}

	for _, o := range options {
		o(&cfg)
	}

	if cfg.capacity < 0 {
		cfg.capacity = 0
	}

	return cfg
}

// WithCapacity pre-sizes the backing storage.
func WithCapacity(n int) Option {
	return func(cfg *config) {
		cfg.capacity = n
	}
}

// WithValidator registers a named validator. Validators run in registration
// order after the kind check and only see values of the collection's kind.
func WithValidator(name string, fn Validator) Option {
	return func(cfg *config) {
		if fn == nil {
			return
		}
		cfg.validators = append(cfg.validators, namedValidator{name: name, fn: fn})
	}
}

// WithLogger makes rejected insertions visible at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
