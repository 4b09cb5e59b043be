// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps the preview server's JSON shapes independent of core types

package mappers

import (
	"designmount/api/dto/responses"
	"designmount/core/domain"
	"designmount/core/interfaces"
)

// ToDocumentInfoResponse converts a domain DocumentInfo to its DTO. Empty
// info maps to nil so the index omits it.
func ToDocumentInfoResponse(info *domain.DocumentInfo) *responses.DocumentInfoResponse {
	if info == nil {
		return nil
	}

	if info.Title == "" && info.Excerpt == "" && info.TextContent == "" &&
		info.Markdown == "" && info.Length == 0 {
		return nil
	}

	return &responses.DocumentInfoResponse{
		Title:       info.Title,
		Excerpt:     info.Excerpt,
		TextContent: info.TextContent,
		Markdown:    info.Markdown,
		Length:      info.Length,
	}
}

// ToAssetAuditResponse converts an audit report to its DTO.
func ToAssetAuditResponse(screenName string, report *interfaces.AssetAuditReport) *responses.AssetAuditResponse {
	if report == nil {
		return nil
	}

	out := &responses.AssetAuditResponse{
		Screen:     screenName,
		Origin:     report.Origin,
		References: make([]responses.AssetCheckResponse, 0, len(report.References)),
	}

	for _, check := range report.References {
		out.References = append(out.References, responses.AssetCheckResponse{
			Reference:  check.Reference,
			OK:         check.OK,
			StatusCode: check.StatusCode,
			Error:      check.Error,
		})
	}

	return out
}
