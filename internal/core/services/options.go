package services

// Option is a functional option shared by all services.
type Option func(*BaseService)

// WithClock overrides the time source.
func WithClock(clock Clock) Option {
	return func(s *BaseService) {
		s.clock = clock
	}
}

func applyOptions(base *BaseService, options []Option) {
	for _, option := range options {
		option(base)
	}
}
