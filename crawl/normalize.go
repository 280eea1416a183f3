package crawl

import (
	"net/url"
	"strings"
)

// NormalizeURL resolves link against base and returns it in canonical
// form: scheme://host/path, with ?query appended only when present. The
// fragment is always dropped.
//
// There is no error path. A link that cannot be parsed comes back with its
// fragment stripped so the fetch simply fails downstream.
func NormalizeURL(link, base string) string {
	link = strings.TrimSpace(link)
	ref, err := url.Parse(link)
	if err != nil {
		return stripFragment(link)
	}
	if b, err := url.Parse(base); err == nil {
		ref = b.ResolveReference(ref)
	}
	return canonical(ref)
}

// EnsureScheme prefixes raw with https:// when it carries no scheme.
// A "://" later in the URL, such as inside a query value, is not a scheme.
func EnsureScheme(raw string) string {
	raw = strings.TrimSpace(raw)
	if hasScheme(raw) {
		return raw
	}
	return "https://" + strings.TrimPrefix(raw, "//")
}

// hasScheme reports whether raw starts with "scheme://", where scheme
// follows RFC 3986: a letter, then letters, digits, '+', '-' or '.'.
func hasScheme(raw string) bool {
	i := strings.Index(raw, "://")
	if i <= 0 {
		return false
	}
	for j, r := range raw[:i] {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		case j > 0 && ('0' <= r && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// canonical rebuilds u from scheme, host, path and query only.
func canonical(u *url.URL) string {
	var b strings.Builder
	if u.Opaque != "" {
		// mailto:, tel:, javascript: and friends have no host or path.
		b.WriteString(u.Scheme)
		b.WriteByte(':')
		b.WriteString(u.Opaque)
	} else {
		b.WriteString(u.Scheme)
		b.WriteString("://")
		b.WriteString(u.Host)
		b.WriteString(u.EscapedPath())
	}
	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(u.RawQuery)
	}
	return b.String()
}

func stripFragment(s string) string {
	if idx := strings.Index(s, "#"); idx != -1 {
		return s[:idx]
	}
	return s
}
