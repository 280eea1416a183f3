package mailscout

import (
	"context"
	"strings"
)

// DefaultMaxPages is the page budget used when a request does not set one.
const DefaultMaxPages = 100

// CrawlRequest asks for one site to be searched for contact e-mails.
type CrawlRequest struct {
	// StartURL is the entry page. A missing scheme defaults to https.
	StartURL string `json:"url"`

	// MaxPages caps the number of pages attempted, failed fetches included.
	// Zero means DefaultMaxPages.
	MaxPages int `json:"max_pages"`
}

// Validate returns an error if the request contains invalid fields.
func (r *CrawlRequest) Validate() error {
	if strings.TrimSpace(r.StartURL) == "" {
		return Errorf(EINVALID, "url missing")
	}
	if r.MaxPages < 0 {
		return Errorf(EINVALID, "max_pages must be positive")
	}
	return nil
}

// PageBudget returns the effective page budget for the request.
func (r *CrawlRequest) PageBudget() int {
	if r.MaxPages == 0 {
		return DefaultMaxPages
	}
	return r.MaxPages
}

// CrawlResult is the outcome of a single crawl.
type CrawlResult struct {
	// StartURL is the normalized, scheme-qualified entry URL.
	StartURL string `json:"start_url"`

	// PagesCrawled counts every URL popped and attempted.
	PagesCrawled int `json:"pages_crawled"`

	// Emails are unique and sorted lexicographically. Never nil.
	Emails []string `json:"emails"`
}

// CrawlService searches sites for contact e-mail addresses.
type CrawlService interface {
	// Crawl visits pages reachable from req.StartURL on the same host and
	// returns the addresses found. Once the request is valid, a result is
	// always returned; fetch failures only reduce what is found.
	// Returns EINVALID if the request is invalid.
	Crawl(ctx context.Context, req CrawlRequest) (*CrawlResult, error)
}
