// Package slog provides logging decorators for mailscout services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mailscout"
	"github.com/fwojciec/mailscout/crawl"
)

// Ensure LoggingFetcher implements mailscout.Fetcher.
var _ mailscout.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   mailscout.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mailscout.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if err != nil {
			f.logger.Debug("fetch", append(attrs, "err", err)...)
			return
		}
		f.logger.Debug("fetch", append(attrs, "hash", crawl.ComputeHash(html))...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
