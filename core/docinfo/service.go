// ABOUTME: Service layer implementation for design document summaries
// ABOUTME: Extracts title, excerpt and content using go-readability

package docinfo

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"time"

	"designmount/core/domain"
	"designmount/core/interfaces"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

// defaultInfoTTL is how long document summaries stay cached.
const defaultInfoTTL = 1 * time.Hour

// Service summarizes design documents for preview surfaces. Extraction is
// best-effort: a document readability cannot make sense of yields a zero
// summary, never an error, so description can never block a mount.
type Service struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewService creates a document info service. Both dependencies may be nil;
// a nil cache disables summary caching.
func NewService(cache interfaces.Cache, logger interfaces.Logger) *Service {
	return &Service{
		cache:  cache,
		logger: logger,
	}
}

// Describe extracts a readable summary from the given document HTML.
// sourceURL is used as the base for resolving relative references and as the
// cache key; it may be empty for embedded documents, which are never cached.
func (s *Service) Describe(ctx context.Context, doc string, sourceURL string) (*domain.DocumentInfo, error) {
	if cached, ok := s.cachedInfo(ctx, sourceURL); ok {
		return cached, nil
	}

	pageURL := &url.URL{}
	if sourceURL != "" {
		if parsed, err := url.Parse(sourceURL); err == nil {
			pageURL = parsed
		}
	}

	article, err := readability.FromReader(strings.NewReader(doc), pageURL)
	if err != nil {
		s.logDebug("Failed to extract document summary", map[string]interface{}{
			"url":   sourceURL,
			"error": err.Error(),
		})
		return &domain.DocumentInfo{}, nil
	}

	info := &domain.DocumentInfo{
		Title:       article.Title,
		Excerpt:     article.Excerpt,
		TextContent: strings.TrimSpace(article.TextContent),
		Length:      article.Length,
	}

	if article.Content != "" {
		converter := md.NewConverter("", true, nil)
		markdown, err := converter.ConvertString(article.Content)
		if err != nil {
			s.logDebug("Failed to convert summary to markdown", map[string]interface{}{
				"url":   sourceURL,
				"error": err.Error(),
			})
		} else {
			info.Markdown = normalizeMarkdown(markdown)
		}
	}

	s.cacheInfo(ctx, sourceURL, info)

	return info, nil
}

// cachedInfo looks the summary up in the cache. Any failure counts as a
// miss.
func (s *Service) cachedInfo(ctx context.Context, sourceURL string) (*domain.DocumentInfo, bool) {
	if s.cache == nil || sourceURL == "" {
		return nil, false
	}

	data, err := s.cache.Get(ctx, cacheKey(sourceURL))
	if err != nil || len(data) == 0 {
		return nil, false
	}

	var info domain.DocumentInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, false
	}

	return &info, true
}

// cacheInfo stores the summary. Failures are ignored; caching summaries is
// an optimization.
func (s *Service) cacheInfo(ctx context.Context, sourceURL string, info *domain.DocumentInfo) {
	if s.cache == nil || sourceURL == "" {
		return
	}

	data, err := json.Marshal(info)
	if err != nil {
		return
	}

	_ = s.cache.Set(ctx, cacheKey(sourceURL), data, defaultInfoTTL)
}

func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, fields)
	}
}

// cacheKey namespaces summary entries in the shared cache.
func cacheKey(sourceURL string) string {
	return "docinfo:" + sourceURL
}

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// normalizeMarkdown cleans up converter output: consistent line endings, no
// runs of blank lines, no surrounding whitespace.
func normalizeMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
