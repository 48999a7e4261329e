package cleanandglue

// Options configures a Solve call.
type Options struct {
	lowerBound int
	upperBound int // 0 means unset: no ceiling
	nodeBudget int // 0 means unset: fall back to maxGlueStepsPerPop
	onTrial    func(k int)
}

// Option configures Options before a Solve call.
type Option func(*Options)

// WithLowerBound seeds the search at trial width k = lb instead of k = 1,
// skipping widths already known infeasible from an external heuristic
// (see package lowerbound).
func WithLowerBound(lb int) Option {
	return func(o *Options) {
		if lb > o.lowerBound {
			o.lowerBound = lb
		}
	}
}

// WithUpperBound aborts the search once k would reach ub: the caller
// already holds a decomposition of width ub (see package upperbound), so
// only widths below ub are searched.
func WithUpperBound(ub int) Option {
	return func(o *Options) { o.upperBound = ub }
}

// WithNodeBudget caps how many transitive split-glue merges a single
// frontier pop may perform before abandoning that pop's glue expansion
// (see maxGlueStepsPerPop). Zero or negative leaves the engine's own
// default in place.
func WithNodeBudget(budget int) Option {
	return func(o *Options) {
		if budget > 0 {
			o.nodeBudget = budget
		}
	}
}

// WithTrialObserver registers a callback invoked with each trial width
// before it is attempted, letting an embedder (see cmd/treewidth) log
// per-width progress without the library itself performing any logging.
func WithTrialObserver(fn func(k int)) Option {
	return func(o *Options) { o.onTrial = fn }
}

func defaultOptions() *Options {
	return &Options{lowerBound: 1}
}
