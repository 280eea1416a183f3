package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/mailscout"
	"github.com/fwojciec/mailscout/crawl"
	mslog "github.com/fwojciec/mailscout/slog"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if c.MaxPages < 1 {
		err := mailscout.Errorf(mailscout.EINVALID, "max_pages must be positive")
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailscout.ErrorMessage(err))
		return err
	}

	var progress crawl.ProgressFunc
	if c.Verbose {
		progress = func(event crawl.ProgressEvent) {
			fmt.Fprintln(deps.Stderr, crawl.FormatProgress(event))
		}
	}

	crawls := mslog.NewLoggingCrawlService(deps.Crawler.WithProgress(progress), deps.Logger)

	req := mailscout.CrawlRequest{StartURL: c.URL, MaxPages: c.MaxPages}
	result, err := crawls.Crawl(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mailscout.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
