package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mailscout"
)

// Ensure LoggingCrawlService implements mailscout.CrawlService.
var _ mailscout.CrawlService = (*LoggingCrawlService)(nil)

// LoggingCrawlService wraps a CrawlService with logging.
type LoggingCrawlService struct {
	next   mailscout.CrawlService
	logger *slog.Logger
}

// NewLoggingCrawlService creates a new LoggingCrawlService.
func NewLoggingCrawlService(next mailscout.CrawlService, logger *slog.Logger) *LoggingCrawlService {
	return &LoggingCrawlService{next: next, logger: logger}
}

// Crawl delegates to the wrapped service and logs the outcome.
func (s *LoggingCrawlService) Crawl(ctx context.Context, req mailscout.CrawlRequest) (result *mailscout.CrawlResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", req.StartURL,
			"max_pages", req.PageBudget(),
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.Warn("crawl", append(attrs, "err", err)...)
			return
		}
		s.logger.Info("crawl", append(attrs,
			"start_url", result.StartURL,
			"pages", result.PagesCrawled,
			"emails", len(result.Emails),
			"canceled", ctx.Err() != nil,
		)...)
	}(time.Now())
	return s.next.Crawl(ctx, req)
}
