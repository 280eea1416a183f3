// Package bloom provides the probabilistic pre-check behind the crawl's
// visited set.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter is a probabilistic string set. A negative answer from MayContain
// is exact; a positive one is wrong with roughly the configured rate.
type Filter struct {
	bits *bloom.BloomFilter
}

// NewFilter creates a filter sized for capacity keys at the given false
// positive rate. A zero capacity is treated as one.
func NewFilter(capacity uint, fpRate float64) *Filter {
	return &Filter{bits: bloom.NewWithEstimates(max(capacity, 1), fpRate)}
}

// Add inserts key.
func (f *Filter) Add(key string) {
	f.bits.AddString(key)
}

// MayContain reports whether key may have been added.
func (f *Filter) MayContain(key string) bool {
	return f.bits.TestString(key)
}
