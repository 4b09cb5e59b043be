// ABOUTME: Document info summarizes a design document for preview surfaces
// ABOUTME: Produced by the docinfo service from readability extraction

package domain

// DocumentInfo is a readable summary of a design document. It feeds the
// preview index and accessibility labels; a zero value is always safe to
// render.
type DocumentInfo struct {
	// Title is the document title, when one can be extracted.
	Title string `json:"title"`

	// Excerpt is a short description of the document content.
	Excerpt string `json:"excerpt,omitempty"`

	// TextContent is the plain text of the document body.
	TextContent string `json:"textContent,omitempty"`

	// Markdown is a Markdown rendering of the document content.
	Markdown string `json:"markdown,omitempty"`

	// Length is the extracted content length in characters.
	Length int `json:"length"`
}
