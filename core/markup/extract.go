// ABOUTME: Markup extractor isolates the injectable body region of a design document
// ABOUTME: Pattern-based on purpose; the source document is a trusted asset, not user input

package markup

import (
	"regexp"
)

var (
	bodyOpenPattern  = regexp.MustCompile(`(?i)<body[^>]*>`)
	bodyClosePattern = regexp.MustCompile(`(?i)</body\s*>`)

	// Paired script elements first, then orphaned open or close tags left
	// behind by malformed exports.
	scriptPattern      = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	scriptOpenPattern  = regexp.MustCompile(`(?i)<script\b[^>]*/?>`)
	scriptClosePattern = regexp.MustCompile(`(?i)</script\s*>`)
)

// ExtractBody returns the content between the first opening <body> tag and
// the first closing </body> tag that follows it. A document without a body
// region is returned verbatim; that is a signal, not an error.
func ExtractBody(doc string) string {
	open := bodyOpenPattern.FindStringIndex(doc)
	if open == nil {
		return doc
	}

	rest := doc[open[1]:]
	end := bodyClosePattern.FindStringIndex(rest)
	if end == nil {
		return doc
	}

	return rest[:end[0]]
}

// StripScripts removes every script element from the given markup. Matching
// is case-insensitive and spans newlines; unpaired open or close tags are
// removed as well so the result never contains a script element.
func StripScripts(s string) string {
	s = scriptPattern.ReplaceAllString(s, "")
	s = scriptOpenPattern.ReplaceAllString(s, "")
	s = scriptClosePattern.ReplaceAllString(s, "")
	return s
}

// Extract isolates the injectable markup of a full design document: the body
// region with all script elements removed. Best-effort and total; malformed
// input yields best-effort output, never an error.
func Extract(doc string) string {
	return StripScripts(ExtractBody(doc))
}
