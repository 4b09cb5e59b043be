// ABOUTME: Screen handlers for the preview server
// ABOUTME: Serves the screens index, mounted screen pages, and asset audit reports

package handlers

import (
	"context"
	"net/http"
	"time"

	"designmount/api/dto/mappers"
	"designmount/api/dto/responses"
	"designmount/api/middleware"
	"designmount/assets"
	"designmount/core/acquire"
	"designmount/core/domain"
	cerrors "designmount/core/errors"
	"designmount/core/interfaces"
	"designmount/core/rewrite"
	"designmount/core/screen"
	hostdoc "designmount/infrastructure/hostdoc/goquery"
	"designmount/pkg/config"

	"github.com/go-chi/chi/v5"
)

// ScreenHandler serves the configured screens. Every GET of a screen runs
// the full lifecycle against a fresh shell document: mount, serialize,
// unmount.
type ScreenHandler struct {
	deps     interfaces.Dependencies
	screens  []config.Screen
	engine   config.EngineConfig
	infoSvc  interfaces.DocumentInfoService
	auditSvc interfaces.AssetAuditService
}

// NewScreenHandler creates a screen handler for the given screens.
func NewScreenHandler(
	deps interfaces.Dependencies,
	screens []config.Screen,
	engine config.EngineConfig,
	infoSvc interfaces.DocumentInfoService,
	auditSvc interfaces.AssetAuditService,
) *ScreenHandler {
	return &ScreenHandler{
		deps:     deps,
		screens:  screens,
		engine:   engine,
		infoSvc:  infoSvc,
		auditSvc: auditSvc,
	}
}

// RegisterRoutes registers all screen-related routes.
func (h *ScreenHandler) RegisterRoutes(r chi.Router) {
	r.Get("/screens", h.ListScreens)
	r.Get("/screens/{name}", h.GetScreen)
	r.Get("/screens/{name}/assets", h.AuditScreen)
}

// ListScreens handles GET /screens. Document info is reported for screens
// whose document is obtainable without a network round trip: embedded ones,
// and remote ones already cached by an earlier mount.
func (h *ScreenHandler) ListScreens(w http.ResponseWriter, r *http.Request) {
	offline := h.deps
	offline.HTTPClient = nil
	acquirer := acquire.NewService(offline)

	out := responses.ScreensResponse{
		Screens: make([]responses.ScreenSummary, 0, len(h.screens)),
	}

	for _, sc := range h.screens {
		summary := responses.ScreenSummary{
			Name:      sc.Name,
			Kind:      screenKind(sc),
			URL:       sc.URL,
			Container: containerID(sc),
		}

		if src, err := h.source(sc); err == nil {
			if m, aerr := acquirer.Acquire(r.Context(), src); aerr == nil {
				summary.Available = true
				summary.Info = h.describe(r.Context(), m, sc.URL)
			}
		}

		// Remote screens are mountable without a cache hit as long as the
		// environment has a network capability.
		if !summary.Available && !sc.Embedded && h.deps.HTTPClient != nil {
			summary.Available = true
		}

		out.Screens = append(out.Screens, summary)
	}

	writeJSON(w, http.StatusOK, out)
}

// GetScreen handles GET /screens/{name}. The response is the serialized
// shell document after the mount, with the resulting screen state in the
// X-Screen-State header. A failed mount still serves the shell, which then
// carries the fallback content.
func (h *ScreenHandler) GetScreen(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	sc, ok := config.FindScreen(h.screens, name)
	if !ok {
		h.respondError(w, r, &cerrors.NotFoundError{Resource: "screen", ID: name})
		return
	}

	src, err := h.source(sc)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	shell, err := hostdoc.NewDocument(assets.ShellDocument(sc.Container))
	if err != nil {
		h.respondError(w, r, cerrors.WrapError(err, "building shell document"))
		return
	}

	ctrl := screen.NewController(h.deps, src, h.screenOptions(sc, shell)...)

	state := ctrl.Mount(r.Context())

	page, err := shell.Serialize()

	ctrl.Unmount()

	if err != nil {
		h.respondError(w, r, cerrors.WrapError(err, "serializing shell document"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Screen-State", state.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// AuditScreen handles GET /screens/{name}/assets. The origin query
// parameter names the base to probe references against; it defaults to this
// server, which turns the audit into a self-check of the configured asset
// directory.
func (h *ScreenHandler) AuditScreen(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	sc, ok := config.FindScreen(h.screens, name)
	if !ok {
		h.respondError(w, r, &cerrors.NotFoundError{Resource: "screen", ID: name})
		return
	}

	if h.auditSvc == nil {
		h.respondError(w, r, &cerrors.EnvironmentUnavailableError{Capability: "asset audit"})
		return
	}

	src, err := h.source(sc)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	acquirer := acquire.NewService(h.deps)
	acquirer.SetCacheTTL(h.documentCacheTTL())

	raw, err := acquirer.Acquire(r.Context(), src)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	rewritten := rewrite.NewRewriter(h.rewriteConfig(sc)).Rewrite(raw)

	origin := r.URL.Query().Get("origin")
	if origin == "" {
		origin = selfOrigin(r)
	}

	report, err := h.auditSvc.Audit(r.Context(), rewritten, origin)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mappers.ToAssetAuditResponse(sc.Name, report))
}

// source builds the acquisition source for a configured screen.
func (h *ScreenHandler) source(sc config.Screen) (domain.Source, error) {
	if sc.Embedded {
		doc, err := assets.Document(sc.Name)
		if err != nil {
			return domain.Source{}, &cerrors.NotFoundError{Resource: "embedded design document", ID: sc.Name}
		}
		return domain.EmbeddedSource(doc), nil
	}
	return domain.RemoteSource(sc.URL), nil
}

// screenOptions maps a screen's manifest entry onto controller options.
func (h *ScreenHandler) screenOptions(sc config.Screen, shell interfaces.HostDocument) []screen.Option {
	opts := []screen.Option{
		screen.WithHostDocument(shell),
		screen.WithAssetRoot(h.engine.AssetRoot),
		screen.WithCacheTTL(h.documentCacheTTL()),
		screen.WithContainerID(sc.Container),
		screen.WithImageDir(sc.ImageDir),
	}

	if len(sc.Stylesheets) > 0 {
		opts = append(opts, screen.WithStylesheets(sc.Stylesheets...))
	}
	if len(sc.Scripts) > 0 {
		opts = append(opts, screen.WithScripts(sc.Scripts...))
	}
	if h.infoSvc != nil {
		opts = append(opts, screen.WithDocumentInfo(h.infoSvc))
	}

	return opts
}

// rewriteConfig maps a screen's manifest entry onto the asset namespace the
// audit rewrites against. Zero fields take the engine defaults.
func (h *ScreenHandler) rewriteConfig(sc config.Screen) rewrite.Config {
	return rewrite.Config{
		AssetRoot:   h.engine.AssetRoot,
		ImageDir:    sc.ImageDir,
		Stylesheets: sc.Stylesheets,
		Scripts:     sc.Scripts,
	}
}

func (h *ScreenHandler) documentCacheTTL() time.Duration {
	return time.Duration(h.engine.DocumentCacheTTL) * time.Second
}

// describe summarizes a document for the index. Failures drop the info
// rather than the entry.
func (h *ScreenHandler) describe(ctx context.Context, markup, sourceURL string) *responses.DocumentInfoResponse {
	if h.infoSvc == nil {
		return nil
	}

	info, err := h.infoSvc.Describe(ctx, markup, sourceURL)
	if err != nil {
		return nil
	}

	return mappers.ToDocumentInfoResponse(info)
}

// respondError logs the error with the request id and writes the mapped
// HTTP response.
func (h *ScreenHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if h.deps.Logger != nil {
		h.deps.Logger.Error("Request error", map[string]interface{}{
			"request_id": middleware.RequestID(r.Context()),
			"path":       r.URL.Path,
			"error":      err.Error(),
		})
	}
	writeError(w, err)
}

func screenKind(sc config.Screen) string {
	if sc.Embedded {
		return "embedded"
	}
	return "remote"
}

func containerID(sc config.Screen) string {
	if sc.Container != "" {
		return sc.Container
	}
	return screen.DefaultContainerID
}

// selfOrigin is the scheme and host this request arrived on.
func selfOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
