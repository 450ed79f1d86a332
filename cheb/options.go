package cheb

// config holds construction settings.
type config struct {
	layout   Layout
	strategy Strategy
}

// Option mutates a construction config.
type Option func(*config)

func defaultConfig() config {
	return config{
		layout:   DefaultLayout(),
		strategy: StrategySampleLagrange,
	}
}

// WithLayout replaces the node layout. The degree passed to [New] must equal
// layout.Degree().
func WithLayout(layout Layout) Option {
	return func(cfg *config) {
		cfg.layout = layout
	}
}

// WithJitter overrides the jitter amplitude of the current layout.
func WithJitter(jitter float64) Option {
	return func(cfg *config) {
		cfg.layout.Jitter = jitter
	}
}

// WithStrategy selects the coefficient strategy.
func WithStrategy(s Strategy) Option {
	return func(cfg *config) {
		cfg.strategy = s
	}
}
