// ABOUTME: Path rewriter maps the design export's relative asset references onto the asset root
// ABOUTME: Pure string transformation, idempotent, tolerant of malformed references

package rewrite

import (
	"regexp"
	"strings"

	"designmount/core/markup"
)

// Config names the asset namespace the design export was authored against.
// The companion stylesheet and script filenames are configuration constants,
// not discovered at runtime.
type Config struct {
	// AssetRoot is the absolute path prefix the hosting application serves
	// companion assets under. Must start and end with "/".
	AssetRoot string

	// ImageDir is the export's image sub-directory name.
	ImageDir string

	// Stylesheets are the companion stylesheet filenames.
	Stylesheets []string

	// Scripts are the companion script filenames.
	Scripts []string
}

// DefaultConfig returns the asset namespace of a stock design export.
func DefaultConfig() Config {
	return Config{
		AssetRoot:   "/assets/",
		ImageDir:    "figmaimages",
		Stylesheets: []string{"common.css", "screen.css"},
		Scripts:     []string{"screen.js"},
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.AssetRoot == "" {
		c.AssetRoot = def.AssetRoot
	}
	if c.ImageDir == "" {
		c.ImageDir = def.ImageDir
	}
	if c.Stylesheets == nil {
		c.Stylesheets = def.Stylesheets
	}
	if c.Scripts == nil {
		c.Scripts = def.Scripts
	}
	return c
}

// companion is one filename rewrite rule compiled from the config.
type companion struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rewriter maps relative asset references in design markup to absolute
// references under the asset root. The recognition patterns are bounded by
// quote or parenthesis delimiters so a second application finds nothing left
// to rewrite, and unrelated absolute URLs, fragment links, and references to
// other domains are never altered.
type Rewriter struct {
	cfg Config

	// Recognition rules in precedence order: image directory references,
	// companion filenames, then malformed asset-root references.
	imagePattern  *regexp.Regexp
	companions    []companion
	repairPattern *regexp.Regexp

	linkPattern *regexp.Regexp
	refPattern  *regexp.Regexp
}

// NewRewriter compiles a rewriter for the given asset namespace. Zero config
// fields take their defaults.
func NewRewriter(cfg Config) *Rewriter {
	cfg = cfg.withDefaults()

	rootName := strings.Trim(cfg.AssetRoot, "/")

	r := &Rewriter{
		cfg: cfg,
		imagePattern: regexp.MustCompile(
			`(["'(])(?:\./)?` + regexp.QuoteMeta(cfg.ImageDir) + `/`),
		repairPattern: regexp.MustCompile(
			`(["'(])` + regexp.QuoteMeta(rootName) + `/`),
		linkPattern: regexp.MustCompile(
			`(?i)<link\b[^>]*rel=["']stylesheet["'][^>]*>`),
		refPattern: regexp.MustCompile(
			`["'(](` + regexp.QuoteMeta(cfg.AssetRoot) + `[^"'()\s]+)`),
	}

	for _, name := range append(append([]string{}, cfg.Stylesheets...), cfg.Scripts...) {
		r.companions = append(r.companions, companion{
			pattern:     regexp.MustCompile(`\./` + regexp.QuoteMeta(name)),
			replacement: cfg.AssetRoot + name,
		})
	}

	return r
}

// Config returns the asset namespace the rewriter was compiled for.
func (r *Rewriter) Config() Config {
	return r.cfg
}

// Rewrite returns the markup with every recognized relative reference
// replaced by an absolute reference under the asset root, and with
// stylesheet links and script elements stripped: those resources are the
// resource loader's exclusive concern, which is what guarantees they are
// injected exactly once.
func (r *Rewriter) Rewrite(m string) string {
	m = r.imagePattern.ReplaceAllString(m, `${1}`+r.cfg.AssetRoot+r.cfg.ImageDir+`/`)

	for _, c := range r.companions {
		m = c.pattern.ReplaceAllLiteralString(m, c.replacement)
	}

	m = r.repairPattern.ReplaceAllString(m, `${1}`+r.cfg.AssetRoot)

	m = r.linkPattern.ReplaceAllString(m, "")
	m = markup.StripScripts(m)

	return m
}

// References returns the distinct asset-root references present in the
// markup, in order of first appearance. Run it on rewritten markup to learn
// which assets the hosting application must serve.
func (r *Rewriter) References(m string) []string {
	var refs []string
	seen := make(map[string]bool)

	for _, match := range r.refPattern.FindAllStringSubmatch(m, -1) {
		ref := match[1]
		if seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}

	return refs
}

// CompanionReferences returns the asset-root references of the configured
// companion stylesheets and scripts. These never appear in rewritten markup
// (the rewriter strips them) but the hosting application must serve them for
// the resource loader's injected elements to resolve.
func (r *Rewriter) CompanionReferences() []string {
	refs := make([]string, 0, len(r.cfg.Stylesheets)+len(r.cfg.Scripts))
	for _, name := range r.cfg.Stylesheets {
		refs = append(refs, r.cfg.AssetRoot+name)
	}
	for _, name := range r.cfg.Scripts {
		refs = append(refs, r.cfg.AssetRoot+name)
	}
	return refs
}
