package markup

import (
	"strings"
	"testing"
)

func TestExtractBody_ReturnsInnerContent(t *testing.T) {
	doc := `<!DOCTYPE html><html><head><title>Welcome</title></head><body><div id="app">hello</div></body></html>`

	got := ExtractBody(doc)

	if got != `<div id="app">hello</div>` {
		t.Errorf("ExtractBody = %v, want inner body content", got)
	}
}

func TestExtractBody_BodyWithAttributes(t *testing.T) {
	doc := `<html><body class="export" data-tool="figma"><p>content</p></body></html>`

	got := ExtractBody(doc)

	if got != "<p>content</p>" {
		t.Errorf("ExtractBody = %v, want <p>content</p>", got)
	}
}

func TestExtractBody_CaseInsensitive(t *testing.T) {
	doc := `<HTML><BODY><span>x</span></BODY></HTML>`

	got := ExtractBody(doc)

	if got != "<span>x</span>" {
		t.Errorf("ExtractBody = %v, want <span>x</span>", got)
	}
}

func TestExtractBody_NoBodyReturnsInputVerbatim(t *testing.T) {
	doc := `<div>fragment without body</div>`

	got := ExtractBody(doc)

	if got != doc {
		t.Errorf("ExtractBody = %v, want input unchanged", got)
	}
}

func TestExtractBody_MissingCloseReturnsInputVerbatim(t *testing.T) {
	doc := `<html><body><div>never closed</div>`

	got := ExtractBody(doc)

	if got != doc {
		t.Errorf("ExtractBody = %v, want input unchanged", got)
	}
}

func TestExtractBody_EmptyInput(t *testing.T) {
	if got := ExtractBody(""); got != "" {
		t.Errorf("ExtractBody(\"\") = %v, want empty string", got)
	}
}

func TestExtractBody_UsesFirstBodyRegion(t *testing.T) {
	doc := `<body>first</body><body>second</body>`

	got := ExtractBody(doc)

	if got != "first" {
		t.Errorf("ExtractBody = %v, want first", got)
	}
}

func TestStripScripts_RemovesPairedScript(t *testing.T) {
	in := `<div>before</div><script>alert(1)</script><div>after</div>`

	got := StripScripts(in)

	if got != "<div>before</div><div>after</div>" {
		t.Errorf("StripScripts = %v", got)
	}
}

func TestStripScripts_RemovesScriptWithAttributes(t *testing.T) {
	in := `<div></div><script type="text/javascript" src="./screen.js"></script>`

	got := StripScripts(in)

	if got != "<div></div>" {
		t.Errorf("StripScripts = %v", got)
	}
}

func TestStripScripts_MultilineAndCaseInsensitive(t *testing.T) {
	in := "<p>keep</p><SCRIPT>\nvar x = 1;\nconsole.log(x);\n</SCRIPT>"

	got := StripScripts(in)

	if got != "<p>keep</p>" {
		t.Errorf("StripScripts = %v", got)
	}
}

func TestStripScripts_NonGreedyAcrossMultipleScripts(t *testing.T) {
	in := `<script>one</script><p>keep</p><script>two</script>`

	got := StripScripts(in)

	if got != "<p>keep</p>" {
		t.Errorf("StripScripts = %v", got)
	}
}

func TestStripScripts_RemovesOrphanTags(t *testing.T) {
	in := `<div>a</div><script src="./screen.js"><p>b</p></script >`

	got := StripScripts(in)

	if strings.Contains(got, "<script") || strings.Contains(got, "</script") {
		t.Errorf("StripScripts left script tags behind: %v", got)
	}
	if !strings.Contains(got, "<div>a</div>") {
		t.Errorf("StripScripts removed unrelated content: %v", got)
	}
}

func TestStripScripts_OutputNeverContainsScript(t *testing.T) {
	inputs := []string{
		`<script></script>`,
		`<script>alert(1)</script>`,
		`<SCRIPT SRC="x.js"></SCRIPT>`,
		"<script>\nmultiline\n</script>",
		`<div><script>nested</script></div>`,
		`<script>`,
		`</script>`,
		`<script defer src="./a.js"></script><script>inline</script>`,
	}

	for _, in := range inputs {
		got := StripScripts(in)
		if strings.Contains(strings.ToLower(got), "<script") {
			t.Errorf("StripScripts(%q) output still contains a script element: %q", in, got)
		}
	}
}

func TestExtract_BodyAndScripts(t *testing.T) {
	doc := `<html><head><script src="./boot.js"></script></head>` +
		`<body><div id="app">content</div><script>init()</script></body></html>`

	got := Extract(doc)

	if got != `<div id="app">content</div>` {
		t.Errorf("Extract = %v", got)
	}
}

func TestExtract_NoBodyStillStripsScripts(t *testing.T) {
	doc := `<div>fragment</div><script>boot()</script>`

	got := Extract(doc)

	if got != "<div>fragment</div>" {
		t.Errorf("Extract = %v", got)
	}
}
