// Package mention extracts @topic and #journey references from free
// text and resolves them against the story catalog.
//
// Each marker has two token shapes: a bracketed display-name form
// (@[The Dance of DNA], #[Science & Technology]) and a bare-id form
// (@9, #science-tech). Tokens that resolve to nothing are treated as
// plain text and dropped. Every function in this package is pure and
// total: no error returns, no shared state, safe for concurrent use.
package mention

import "regexp"

// One alternation per marker: bracketed form first, then bare id.
// The bracketed group never matches across a closing bracket, so
// overlapping tokens cannot occur.
var (
	topicPattern   = regexp.MustCompile(`@\[([^\]]+)\]|@(\d+)`)
	journeyPattern = regexp.MustCompile(`#\[([^\]]+)\]|#([a-zA-Z0-9-]+)`)
)
