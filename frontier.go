package mailscout

import "context"

// URLFrontier is the pending-URL work queue driving a crawl.
// Entries carry no metadata; priority is expressed by insertion position.
type URLFrontier interface {
	// PushHigh adds a URL so that it is popped next.
	PushHigh(url string)

	// PushLow adds a URL behind everything already queued.
	PushLow(url string)

	// Pop removes and returns the next URL.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs in the queue.
	Len() int
}

// Pacer spaces out successive requests to the same site.
type Pacer interface {
	// Wait blocks for the politeness interval.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
