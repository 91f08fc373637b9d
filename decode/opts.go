package decode

// DefaultMaxDepth bounds container nesting when no option overrides
// it. Exceeding the bound fails with ErrDepthExceeded instead of
// exhausting the call stack on pathological input.
const DefaultMaxDepth = 1024

type options struct {
	maxDepth int
}

type Option func(*options)

// MaxDepth overrides the container nesting bound. Values below 1 keep
// the default.
func MaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
