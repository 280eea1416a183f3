package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/fwojciec/mailscout"
	"github.com/fwojciec/mailscout/crawl"
	mshttp "github.com/fwojciec/mailscout/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Crawler *crawl.Crawler
	Crawls  mailscout.CrawlService

	// Listener, when set, is used by serve instead of binding the port.
	Listener net.Listener
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	LogLevel     string        `env:"MAILSCOUT_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat    string        `default:"text" enum:"text,json" help:"Log format (text, json)"`
	UserAgent    string        `env:"MAILSCOUT_USER_AGENT" default:"Mozilla/5.0 EmailBot/1.0" help:"User-Agent sent with every fetch"`
	FetchTimeout time.Duration `env:"MAILSCOUT_FETCH_TIMEOUT" default:"8s" help:"Per-page fetch timeout"`

	Serve ServeCmd `cmd:"" help:"Run the HTTP crawl service"`
	Crawl CrawlCmd `cmd:"" help:"Crawl one site and print the result as JSON"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Port           int     `env:"PORT" default:"5001" help:"TCP port to listen on"`
	APIToken       string  `name:"api-token" env:"API_TOKEN" help:"Shared secret required in X-API-KEY (empty disables auth)"`
	MaxConcurrency int     `env:"MAILSCOUT_MAX_CONCURRENCY" default:"4" help:"Concurrent crawls per batch request"`
	RateLimit      float64 `env:"MAILSCOUT_RATE_LIMIT" default:"0" help:"Per-client requests per second on /scrape (0 disables)"`
	RateBurst      int           `default:"5" help:"Per-client burst size"`
	RateIdleTTL    time.Duration `default:"10m" help:"Forget clients idle for this long"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string `arg:"" help:"Start URL (https:// is assumed without a scheme)"`
	MaxPages int    `short:"n" default:"100" help:"Maximum pages to fetch"`
	Verbose  bool   `short:"v" help:"Print progress to stderr"`
}

// serverConfig builds the HTTP server settings from flags.
func (c *ServeCmd) serverConfig() mshttp.Config {
	return mshttp.Config{
		Addr:        net.JoinHostPort("", strconv.Itoa(c.Port)),
		APIToken:    c.APIToken,
		Concurrency: c.MaxConcurrency,
		RateLimit:   c.RateLimit,
		RateBurst:   c.RateBurst,
		RateIdleTTL: c.RateIdleTTL,
	}
}
