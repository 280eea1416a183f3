// Package goquery implements mailscout.Parser on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mailscout"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Parser implements mailscout.Parser at compile time.
var _ mailscout.Parser = (*Parser)(nil)

// textSeparator joins adjacent text nodes so that neighbouring elements
// never fuse into a single token.
const textSeparator = " "

// Parser extracts visible text and anchors from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a mailscout.Page from html. The HTML5 parser recovers from
// malformed markup, so an error is only returned if the input cannot be
// read at all.
func (p *Parser) Parse(htmlContent string) (*mailscout.Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, mailscout.Errorf(mailscout.EINVALID, "failed to parse HTML: %v", err)
	}

	var parts []string
	for _, n := range doc.Nodes {
		collectText(n, &parts)
	}

	var anchors []mailscout.Anchor
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		anchors = append(anchors, mailscout.Anchor{Href: href})
	})

	return &mailscout.Page{
		Text:    strings.Join(parts, textSeparator),
		Anchors: anchors,
	}, nil
}

// collectText appends the text nodes under n in document order. Script,
// style and template contents are not visible text and are skipped, as are
// comments.
func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		*parts = append(*parts, n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template:
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
