package stickercube

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	moveHistory    bool
	historyLimit   int
	strictNotation bool
}

func defaultConfig() *config {
	return &config{
		moveHistory:    true,
		historyLimit:   0,
		strictNotation: false,
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via Moves()
// and can be undone. Disable this for long sessions to reduce memory usage.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithHistoryLimit keeps at most n moves of history, dropping the oldest.
// Zero (default) means unlimited.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.historyLimit = n
	}
}

// WithStrictNotation makes ApplyNotation reject strings containing
// unrecognized tokens instead of skipping them.
func WithStrictNotation(enabled bool) Option {
	return func(c *config) {
		c.strictNotation = enabled
	}
}
