package scheduler

import "log/slog"

// Options configures scheduler behavior.
//
// Use DefaultOptions() for the usual defaults.
type Options struct {
	// CopyPlans copies plans implementing motion.Copier before they reach a
	// performer, so callers may keep mutating their plan values.
	// Default: true
	CopyPlans bool

	// Logger receives per-operation debug records and a commit summary.
	// Default: nil (uses the process-wide logger)
	Logger *slog.Logger
}

// DefaultOptions returns the default scheduler options.
func DefaultOptions() Options {
	return Options{
		CopyPlans: true,
	}
}
