package crawl

import "github.com/fwojciec/mailscout/bloom"

// VisitedSet records the normalized URLs a crawl has already popped.
// A Bloom filter answers most negative lookups; the exact set settles
// positives so a false positive never hides an unvisited page.
type VisitedSet struct {
	filter *bloom.Filter
	urls   map[string]struct{}
}

// NewVisitedSet creates a VisitedSet sized for n expected URLs. The set
// grows past n; beyond it the filter answers positive more often and the
// exact set takes over.
func NewVisitedSet(n uint) *VisitedSet {
	return &VisitedSet{
		filter: bloom.NewFilter(n, visitedFalsePositiveRate),
		urls:   make(map[string]struct{}, n),
	}
}

// visitedFalsePositiveRate sizes the pre-check filter.
const visitedFalsePositiveRate = 0.01

// Add marks url as visited.
func (v *VisitedSet) Add(url string) {
	v.filter.Add(url)
	v.urls[url] = struct{}{}
}

// Contains reports whether url has been visited.
func (v *VisitedSet) Contains(url string) bool {
	if !v.filter.MayContain(url) {
		return false
	}
	_, ok := v.urls[url]
	return ok
}
