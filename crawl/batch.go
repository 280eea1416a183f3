package crawl

import (
	"context"

	"github.com/fwojciec/mailscout"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds simultaneous crawls in CrawlAll.
const DefaultConcurrency = 4

// CrawlAll runs one crawl per request, at most concurrency at a time, and
// returns the results in request order. Every request is validated before
// any crawl starts, so an invalid entry means nothing is fetched.
//
// Each crawl is independent: a crawl never fails after validation, so the
// only error after that point is one returned by svc itself.
func CrawlAll(ctx context.Context, svc mailscout.CrawlService, reqs []mailscout.CrawlRequest, concurrency int) ([]*mailscout.CrawlResult, error) {
	for i := range reqs {
		if err := reqs[i].Validate(); err != nil {
			return nil, err
		}
	}

	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*mailscout.CrawlResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		g.Go(func() error {
			result, err := svc.Crawl(gctx, req)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
