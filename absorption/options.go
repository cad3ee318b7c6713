// SPDX-License-Identifier: MIT

package absorption

// Option configures Solve and SolveAll.
type Option func(*Options)

// Options holds solver knobs. The zero value is not the default; use
// DefaultOptions.
type Options struct {
	// Start is the state whose distribution Solve reports. A negative value
	// selects the first transient state.
	Start int

	// CheckReachability enables the constructive reverse-BFS check before the
	// linear solve. When false, unreachable absorption is detected only from
	// a singular (I − Q).
	CheckReachability bool

	// AcyclicShortcut solves by back-substitution in reverse topological
	// order when no transient state can return to itself, instead of
	// eliminating (I − Q).
	AcyclicShortcut bool
}

// DefaultOptions returns first-transient start, reachability checking on and
// the acyclic shortcut on.
func DefaultOptions() Options {
	return Options{
		Start:             -1,
		CheckReachability: true,
		AcyclicShortcut:   true,
	}
}

// WithStart selects the start state. It must be transient.
func WithStart(state int) Option {
	return func(o *Options) {
		o.Start = state
	}
}

// WithReachabilityCheck toggles the constructive reachability check.
func WithReachabilityCheck(enabled bool) Option {
	return func(o *Options) {
		o.CheckReachability = enabled
	}
}

// WithAcyclicShortcut toggles back-substitution for acyclic chains. Results
// are identical either way.
func WithAcyclicShortcut(enabled bool) Option {
	return func(o *Options) {
		o.AcyclicShortcut = enabled
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
