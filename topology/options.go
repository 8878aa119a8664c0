package topology

import "fmt"

// Warning reports a non-fatal parameter clamp: the generator adjusted Given
// to Clamped for the named field and continued.
type Warning struct {
	// Method is the generator that clamped, e.g. MethodRing.
	Method string
	// Field is the parameter that was adjusted ("skip", "dimension", ...).
	Field string
	// Given is the caller-supplied value; Clamped is the value used instead.
	Given   int
	Clamped int
}

// String renders the warning for logs and error-adjacent display.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s=%d out of range, using %d", w.Method, w.Field, w.Given, w.Clamped)
}

// Option configures generator behavior via functional arguments.
type Option func(*buildOptions)

// buildOptions holds resolved per-call configuration.
// Passed by value to generators; defaults come from defaultOptions.
type buildOptions struct {
	// warn receives one Warning per clamped parameter; never nil.
	warn func(Warning)
}

// defaultOptions returns the deterministic defaults: a no-op warning hook.
func defaultOptions() buildOptions {
	return buildOptions{
		warn: func(Warning) {},
	}
}

// newBuildOptions resolves opts in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuildOptions(opts ...Option) buildOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWarnFunc registers a hook invoked for every clamped parameter.
// Panics on nil to surface programmer error early.
func WithWarnFunc(fn func(Warning)) Option {
	if fn == nil {
		panic("topology: WithWarnFunc(nil)")
	}

	return func(o *buildOptions) {
		o.warn = fn
	}
}

// clamp restricts v to [lo, hi], emitting a Warning through o.warn when the
// caller-supplied value had to be adjusted.
func (o buildOptions) clamp(method, field string, v, lo, hi int) int {
	switch {
	case v < lo:
		o.warn(Warning{Method: method, Field: field, Given: v, Clamped: lo})

		return lo
	case v > hi:
		o.warn(Warning{Method: method, Field: field, Given: v, Clamped: hi})

		return hi
	default:
		return v
	}
}
