package mock

import (
	"context"

	"github.com/fwojciec/mailscout"
)

var _ mailscout.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of mailscout.CrawlService.
type CrawlService struct {
	CrawlFn func(ctx context.Context, req mailscout.CrawlRequest) (*mailscout.CrawlResult, error)
}

func (s *CrawlService) Crawl(ctx context.Context, req mailscout.CrawlRequest) (*mailscout.CrawlResult, error) {
	return s.CrawlFn(ctx, req)
}
