package interval

// DefaultDistribution is the remainder policy applied when no option
// overrides it.
const DefaultDistribution = Proportional

const panicDistributionInvalid = "interval: WithDistribution: unknown distribution"

// Option mutates Options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options holds the effective configuration after applying Option setters.
// Fields are unexported; Partition resolves them via gatherOptions.
type Options struct {
	distribution Distribution // DefaultDistribution
}

// WithDistribution selects the remainder policy.
// Panics on a value outside the declared Distribution constants.
func WithDistribution(d Distribution) Option {
	if !d.valid() {
		panic(panicDistributionInvalid)
	}
	return func(o *Options) { o.distribution = d }
}

// WithFrontLoaded is shorthand for WithDistribution(FrontLoaded).
func WithFrontLoaded() Option { return WithDistribution(FrontLoaded) }

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{distribution: DefaultDistribution}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
