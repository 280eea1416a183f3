package crawl

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// progressURLWidth is the display width of URLs in progress lines.
const progressURLWidth = 60

// computeHash returns the xxhash of a fetched body, hex-encoded.
func computeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// ComputeHash returns the xxhash of content, hex-encoded. Identical bodies
// served under different URLs share a hash.
func ComputeHash(content string) string {
	return computeHash(content)
}

// FormatProgress renders an event as a single human-readable line.
func FormatProgress(event ProgressEvent) string {
	counter := fmt.Sprintf("[%d/%d]", event.Completed, event.Total)
	url := truncateURL(event.URL, progressURLWidth)
	switch event.Type {
	case ProgressFetched:
		return fmt.Sprintf("%s %s (%s)", counter, url, formatBytes(event.Bytes))
	case ProgressFailed:
		return fmt.Sprintf("%s skip %s: %v", counter, url, event.Error)
	case ProgressEmailsFound:
		return fmt.Sprintf("%s %s: found %s", counter, url, strings.Join(event.Emails, ", "))
	case ProgressFinished:
		return fmt.Sprintf("done after %d pages, %d emails", event.Completed, len(event.Emails))
	default:
		return counter + " " + url
	}
}

// truncateURL keeps the tail of url, which is the informative part.
func truncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	if maxLen < 4 {
		return url[:max(maxLen, 0)]
	}
	return "..." + url[len(url)-maxLen+3:]
}

func formatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
