// Package poset defines the Poset type, its sentinel errors, and the
// construction options. See doc.go for the package overview.
package poset

import "errors"

var (
	// ErrElementNotFound indicates an operation referenced a name that
	// is not an element of the poset.
	ErrElementNotFound = errors.New("poset: element not found")

	// ErrSelfOrder indicates an attempt to Link an element with itself;
	// strict orders are irreflexive. Order(a, a) reports ErrAsymmetry.
	ErrSelfOrder = errors.New("poset: self-ordering not allowed")

	// ErrAsymmetry indicates that Order(a, b) would make a both a
	// predecessor and a successor of b.
	ErrAsymmetry = errors.New("poset: ordering would violate asymmetry")

	// ErrCycleDetected indicates that Close found a cycle among the
	// edges inserted via Link.
	ErrCycleDetected = errors.New("poset: cycle detected")
)

// defaultRejectionCacheSize bounds the LRU cache of (a, b) pairs whose
// ordering was rejected for asymmetry. The cache is per instance and
// allocated lazily on the first rejection.
const defaultRejectionCacheSize = 4096

// Option configures a Poset at construction time.
// Use with New(elements, opts...).
type Option func(*options)

// options holds construction-time settings.
type options struct {
	rejectionCacheSize int // capacity of the asymmetry rejection cache
}

// defaultOptions returns the default construction settings.
func defaultOptions() options {
	return options{rejectionCacheSize: defaultRejectionCacheSize}
}

// WithRejectionCacheSize returns an Option that sets the capacity of
// the asymmetry rejection cache. Values below 1 are ignored.
func WithRejectionCacheSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.rejectionCacheSize = n
		}
	}
}
