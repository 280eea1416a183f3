package crawl

import (
	"net/url"
	"regexp"
	"strings"
)

// Rules holds the fixed heuristics a crawl applies. It is built once and
// shared read-only between crawls.
type Rules struct {
	// Keywords are path substrings that mark a page as likely to list
	// contact details. Matching is case-insensitive.
	Keywords []string

	// AssetExtensions are path suffixes (without the dot) of non-document
	// resources that are never fetched. Matching is case-insensitive.
	AssetExtensions []string

	// EmailPattern finds addresses in page text.
	EmailPattern *regexp.Regexp
}

// DefaultKeywords are the priority path keywords.
func DefaultKeywords() []string {
	return []string{"contact", "mention", "legal", "email", "equipe", "team", "about", "support"}
}

// DefaultAssetExtensions are the skipped file extensions.
func DefaultAssetExtensions() []string {
	return []string{"jpg", "jpeg", "png", "gif", "svg", "css", "js", "pdf", "zip", "mp4", "avi"}
}

var defaultEmailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// DefaultRules returns the rules used when a Crawler has none configured.
func DefaultRules() *Rules {
	return &Rules{
		Keywords:        DefaultKeywords(),
		AssetExtensions: DefaultAssetExtensions(),
		EmailPattern:    defaultEmailPattern,
	}
}

// IsPriority reports whether the URL's path contains a priority keyword.
func (r *Rules) IsPriority(rawURL string) bool {
	path := strings.ToLower(pathOf(rawURL))
	for _, kw := range r.Keywords {
		if strings.Contains(path, kw) {
			return true
		}
	}
	return false
}

// IsAsset reports whether the URL's path ends with an excluded extension.
func (r *Rules) IsAsset(rawURL string) bool {
	path := strings.ToLower(pathOf(rawURL))
	for _, ext := range r.AssetExtensions {
		if strings.HasSuffix(path, "."+ext) {
			return true
		}
	}
	return false
}

// Scope decides which discovered URLs belong to a crawl.
type Scope struct {
	host  string
	rules *Rules
}

// NewScope returns a Scope anchored on the host of startURL.
func NewScope(startURL string, rules *Rules) *Scope {
	var host string
	if u, err := url.Parse(startURL); err == nil {
		host = u.Host
	}
	return &Scope{host: host, rules: rules}
}

// IsInternal reports whether rawURL is on the start host. Path-only URLs
// are internal. Hosts are compared exactly, so subdomains and www variants
// are considered different hosts.
func (s *Scope) IsInternal(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Opaque != "" {
		return false
	}
	return u.Host == "" || u.Host == s.host
}

// Accepts reports whether rawURL may be queued: internal and not an asset.
func (s *Scope) Accepts(rawURL string) bool {
	return s.IsInternal(rawURL) && !s.rules.IsAsset(rawURL)
}

// pathOf returns the escaped path of rawURL, or rawURL itself if it does
// not parse.
func pathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.EscapedPath()
}
