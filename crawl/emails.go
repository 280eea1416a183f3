package crawl

import (
	"strings"

	"github.com/fwojciec/mailscout"
)

const mailtoPrefix = "mailto:"

// ExtractEmails returns the addresses found in page, in discovery order.
// Text matches come first, then mailto: anchors. Values are verbatim and
// may repeat; callers collapse them into a set.
func (r *Rules) ExtractEmails(page *mailscout.Page) []string {
	emails := r.EmailPattern.FindAllString(page.Text, -1)
	for _, a := range page.Anchors {
		if mail := mailtoAddress(a.Href); mail != "" {
			emails = append(emails, mail)
		}
	}
	return emails
}

// mailtoAddress returns everything after the last "mailto:" of a mailto
// href, or "" if href is not a mailto link.
func mailtoAddress(href string) string {
	if !strings.HasPrefix(href, mailtoPrefix) {
		return ""
	}
	idx := strings.LastIndex(href, mailtoPrefix)
	return href[idx+len(mailtoPrefix):]
}
