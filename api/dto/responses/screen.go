// ABOUTME: Response DTOs for the preview server endpoints
// ABOUTME: Defines the JSON shapes for the screens index and asset audit reports

package responses

// DocumentInfoResponse summarizes a screen's design document.
type DocumentInfoResponse struct {
	Title       string `json:"title,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`
	TextContent string `json:"text_content,omitempty"`
	Markdown    string `json:"markdown,omitempty"`
	Length      int    `json:"length,omitempty"`
}

// ScreenSummary is one entry in the screens index.
type ScreenSummary struct {
	Name      string                `json:"name"`
	Kind      string                `json:"kind"`
	URL       string                `json:"url,omitempty"`
	Container string                `json:"container"`
	Available bool                  `json:"available"`
	Info      *DocumentInfoResponse `json:"info,omitempty"`
}

// ScreensResponse is the screens index.
type ScreensResponse struct {
	Screens []ScreenSummary `json:"screens"`
}

// AssetCheckResponse is the probe result for one asset reference.
type AssetCheckResponse struct {
	Reference  string `json:"reference"`
	OK         bool   `json:"ok"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// AssetAuditResponse reports which of a screen's asset references resolve
// against an origin.
type AssetAuditResponse struct {
	Screen     string               `json:"screen"`
	Origin     string               `json:"origin"`
	References []AssetCheckResponse `json:"references"`
}
