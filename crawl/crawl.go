// Package crawl implements the e-mail discovery crawl: URL normalization,
// scope filtering, the priority frontier, and the sequential crawl loop
// that stops at the first page yielding an address.
package crawl

import (
	"context"
	"maps"
	"slices"

	"github.com/fwojciec/mailscout"
)

var _ mailscout.CrawlService = (*Crawler)(nil)

// Crawler searches a site for contact e-mail addresses.
//
// A Crawler holds only read-only collaborators, so one value may serve many
// concurrent crawls. Each call to Crawl builds its own frontier, visited
// set and e-mail set.
type Crawler struct {
	Fetcher mailscout.Fetcher
	Parser  mailscout.Parser

	// Pacer spaces out fetches within a crawl. Nil means no delay.
	Pacer mailscout.Pacer

	// Rules defaults to DefaultRules() when nil.
	Rules *Rules

	// NewFrontier builds the queue for each crawl. Nil means NewFrontier.
	NewFrontier func() mailscout.URLFrontier
}

// visitedSizeHint caps the initial visited-set sizing. The page budget is
// client-supplied, so it only bounds the crawl, never an allocation.
const visitedSizeHint = 1024

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Completed int // pages crawled so far
	Total     int // page budget
	Bytes     int
	Hash      string
	Emails    []string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressFetched ProgressType = iota
	ProgressFailed
	ProgressEmailsFound
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Crawl implements mailscout.CrawlService.
func (c *Crawler) Crawl(ctx context.Context, req mailscout.CrawlRequest) (*mailscout.CrawlResult, error) {
	return c.CrawlWithProgress(ctx, req, nil)
}

// WithProgress returns a CrawlService that crawls with c and reports each
// page to progress. It lets decorators wrap a crawl that reports progress.
func (c *Crawler) WithProgress(progress ProgressFunc) mailscout.CrawlService {
	return crawlFunc(func(ctx context.Context, req mailscout.CrawlRequest) (*mailscout.CrawlResult, error) {
		return c.CrawlWithProgress(ctx, req, progress)
	})
}

// crawlFunc adapts a function to mailscout.CrawlService.
type crawlFunc func(ctx context.Context, req mailscout.CrawlRequest) (*mailscout.CrawlResult, error)

func (f crawlFunc) Crawl(ctx context.Context, req mailscout.CrawlRequest) (*mailscout.CrawlResult, error) {
	return f(ctx, req)
}

// CrawlWithProgress crawls like Crawl and reports each page to progress,
// which may be nil.
//
// The loop ends when the frontier is empty, the page budget is spent, an
// address has been found, or ctx is canceled. Failed fetches count against
// the budget. Cancellation is not an error: the partial result is returned.
func (c *Crawler) CrawlWithProgress(ctx context.Context, req mailscout.CrawlRequest, progress ProgressFunc) (*mailscout.CrawlResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	rules := c.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	startURL := EnsureScheme(req.StartURL)
	startURL = NormalizeURL(startURL, startURL)
	scope := NewScope(startURL, rules)
	budget := req.PageBudget()

	newFrontier := c.NewFrontier
	if newFrontier == nil {
		newFrontier = func() mailscout.URLFrontier { return NewFrontier() }
	}
	frontier := newFrontier()
	frontier.PushLow(startURL)
	visited := NewVisitedSet(uint(min(budget, visitedSizeHint)))
	found := make(map[string]struct{})
	pages := 0

	for pages < budget {
		if ctx.Err() != nil {
			break
		}

		pageURL, ok := frontier.Pop()
		if !ok {
			break
		}
		if visited.Contains(pageURL) {
			continue
		}
		visited.Add(pageURL)
		pages++

		html, err := c.Fetcher.Fetch(ctx, pageURL)
		if err != nil {
			progress(ProgressEvent{Type: ProgressFailed, URL: pageURL, Completed: pages, Total: budget, Error: err})
			continue
		}

		page, err := c.Parser.Parse(html)
		if err != nil {
			progress(ProgressEvent{Type: ProgressFailed, URL: pageURL, Completed: pages, Total: budget, Error: err})
			continue
		}

		emails := rules.ExtractEmails(page)
		for _, email := range emails {
			found[email] = struct{}{}
		}
		if len(found) > 0 {
			progress(ProgressEvent{
				Type:      ProgressEmailsFound,
				URL:       pageURL,
				Completed: pages,
				Total:     budget,
				Bytes:     len(html),
				Hash:      computeHash(html),
				Emails:    emails,
			})
			break
		}

		for _, a := range page.Anchors {
			link := NormalizeURL(a.Href, pageURL)
			if !scope.Accepts(link) || visited.Contains(link) {
				continue
			}
			if rules.IsPriority(link) {
				frontier.PushHigh(link)
			} else {
				frontier.PushLow(link)
			}
		}

		progress(ProgressEvent{
			Type:      ProgressFetched,
			URL:       pageURL,
			Completed: pages,
			Total:     budget,
			Bytes:     len(html),
			Hash:      computeHash(html),
		})

		if pages >= budget || frontier.Len() == 0 {
			break
		}
		if c.Pacer != nil {
			if err := c.Pacer.Wait(ctx); err != nil {
				break // Context canceled
			}
		}
	}

	result := &mailscout.CrawlResult{
		StartURL:     startURL,
		PagesCrawled: pages,
		Emails:       sortedEmails(found),
	}

	progress(ProgressEvent{
		Type:      ProgressFinished,
		URL:       startURL,
		Completed: pages,
		Total:     budget,
		Emails:    result.Emails,
	})

	return result, nil
}

// sortedEmails returns the set's members in lexicographic order, never nil.
func sortedEmails(found map[string]struct{}) []string {
	if len(found) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(found))
}
