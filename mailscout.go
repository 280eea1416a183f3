// Package mailscout discovers contact e-mail addresses published on a
// website. It crawls the site's internal link graph from a single entry URL,
// visiting pages whose paths suggest contact information first, and stops at
// the first page that yields an address or when the page budget runs out.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, bloom/).
package mailscout
