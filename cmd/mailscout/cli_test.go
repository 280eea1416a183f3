package main_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/mailscout/cmd/mailscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *main.CLI) *kong.Kong {
	t.Helper()
	parser, err := kong.New(cli,
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestCLI_ServeFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	_, err := newParser(t, cli).Parse([]string{
		"--fetch-timeout", "3s",
		"--user-agent", "TestBot/1.0",
		"serve",
		"--port", "8080",
		"--api-token", "secret",
		"--max-concurrency", "8",
		"--rate-limit", "2.5",
	})
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cli.FetchTimeout)
	assert.Equal(t, "TestBot/1.0", cli.UserAgent)
	assert.Equal(t, 8080, cli.Serve.Port)
	assert.Equal(t, "secret", cli.Serve.APIToken)
	assert.Equal(t, 8, cli.Serve.MaxConcurrency)
	assert.InDelta(t, 2.5, cli.Serve.RateLimit, 1e-9)
	assert.Equal(t, 5, cli.Serve.RateBurst)
	assert.Equal(t, 10*time.Minute, cli.Serve.RateIdleTTL)
	assert.Equal(t, "text", cli.LogFormat)
}

func TestCLI_CrawlFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults max pages", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		_, err := newParser(t, cli).Parse([]string{"crawl", "example.com"})
		require.NoError(t, err)

		assert.Equal(t, "example.com", cli.Crawl.URL)
		assert.Equal(t, 100, cli.Crawl.MaxPages)
		assert.False(t, cli.Crawl.Verbose)
	})

	t.Run("accepts short flags", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{}
		_, err := newParser(t, cli).Parse([]string{"crawl", "example.com", "-n", "7", "-v"})
		require.NoError(t, err)

		assert.Equal(t, 7, cli.Crawl.MaxPages)
		assert.True(t, cli.Crawl.Verbose)
	})

	t.Run("requires url", func(t *testing.T) {
		t.Parallel()

		_, err := newParser(t, &main.CLI{}).Parse([]string{"crawl"})
		require.Error(t, err)
	})
}

func TestCLI_RejectsUnknownLogLevel(t *testing.T) {
	t.Parallel()

	_, err := newParser(t, &main.CLI{}).Parse([]string{"--log-level", "verbose", "crawl", "example.com"})
	require.Error(t, err)
}
