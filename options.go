package mailbox

import "log/slog"

const defaultName = "mailbox"

type (
	// Interceptor inspects every message accepted by a mailbox, on the
	// posting goroutine. It must not block.
	Interceptor func(message any)

	// Option represents an optional setting, passed to the mailbox
	// constructors, which alters default behavior.
	Option func(*config)
)

type config struct {
	name        string
	logger      *slog.Logger
	metrics     Metrics
	interceptor Interceptor
}

func newConfig(options []Option) *config {
	cfg := &config{
		name:    defaultName,
		logger:  slog.Default(),
		metrics: NopMetrics(),
	}
	for _, option := range options {
		option(cfg)
	}
	cfg.logger = cfg.logger.With(slog.String("mailbox", cfg.name))
	return cfg
}

// WithName sets the label used in logs and metrics. It is not an address:
// mailboxes are reached only through their senders.
func WithName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMetrics sets the instrumentation backend.
func WithMetrics(metrics Metrics) Option {
	return func(cfg *config) {
		if metrics != nil {
			cfg.metrics = metrics
		}
	}
}

// WithInterceptor sets a function that sees all the messages accepted by
// the mailbox, useful for tracing or cross-actor bookkeeping.
func WithInterceptor(interceptor Interceptor) Option {
	return func(cfg *config) {
		cfg.interceptor = interceptor
	}
}
