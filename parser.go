package mailscout

// Anchor is a link element found on a page.
type Anchor struct {
	// Href is the raw, unresolved value of the href attribute.
	Href string
}

// Page is the parsed form of a fetched HTML document.
type Page struct {
	// Text is the visible text of the document, with text nodes separated
	// by single spaces so adjacent elements never run together.
	Text string

	// Anchors holds every element carrying an href, in document order.
	Anchors []Anchor
}

// Parser turns an HTML document into text and anchors.
type Parser interface {
	// Parse is best-effort: malformed markup yields whatever could be
	// recovered rather than an error.
	Parse(html string) (*Page, error)
}
