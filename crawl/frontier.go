package crawl

import "github.com/fwojciec/mailscout"

// Compile-time interface verification.
var _ mailscout.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory two-level URL queue. High-priority URLs are
// popped before any low-priority URL, most recently pushed first, which
// matches pushing them onto the front of a single double-ended queue.
// Low-priority URLs are popped in the order they were pushed.
//
// Frontier does not deduplicate; the crawl checks its VisitedSet at pop
// time. It is owned by a single crawl and is not safe for concurrent use.
type Frontier struct {
	high []string // stack, top is next
	low  []string // queue, head is low[lowHead]

	lowHead int
}

// NewFrontier returns an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// PushHigh adds url so that it is popped next.
func (f *Frontier) PushHigh(url string) {
	f.high = append(f.high, url)
}

// PushLow adds url behind every URL already queued.
func (f *Frontier) PushLow(url string) {
	f.low = append(f.low, url)
}

// Pop returns the next URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if n := len(f.high); n > 0 {
		url := f.high[n-1]
		f.high = f.high[:n-1]
		return url, true
	}
	if f.lowHead < len(f.low) {
		url := f.low[f.lowHead]
		f.low[f.lowHead] = ""
		f.lowHead++
		if f.lowHead == len(f.low) {
			f.low = f.low[:0]
			f.lowHead = 0
		}
		return url, true
	}
	return "", false
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	return len(f.high) + len(f.low) - f.lowHead
}
