package mock

import "github.com/fwojciec/mailscout"

var _ mailscout.Parser = (*Parser)(nil)

// Parser is a mock implementation of mailscout.Parser.
type Parser struct {
	ParseFn func(html string) (*mailscout.Page, error)
}

func (p *Parser) Parse(html string) (*mailscout.Page, error) {
	return p.ParseFn(html)
}
