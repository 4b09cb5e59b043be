// ABOUTME: Built-in design documents and the host shell, embedded at compile time
// ABOUTME: Embedded screens mount without any network or filesystem dependency

package assets

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed design/*.html
var designFS embed.FS

//go:embed shell/preview.html
var shellHTML string

// WelcomeDocument is the built-in demo export. It is the document behind
// Document("welcome") and doubles as a ready-made source literal for
// embedding callers.
//
//go:embed design/welcome.html
var WelcomeDocument string

// shellContainerID is the container id the stock shell markup carries.
const shellContainerID = "design-root"

// Document returns the named built-in design document.
func Document(name string) (string, error) {
	data, err := designFS.ReadFile("design/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("no embedded design document %q", name)
	}
	return string(data), nil
}

// Names lists the built-in design documents in sorted order.
func Names() []string {
	entries, err := designFS.ReadDir("design")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".html"))
	}
	sort.Strings(names)

	return names
}

// ShellDocument returns the host shell screens are mounted into. An empty
// containerID keeps the stock container id; anything else renames it.
func ShellDocument(containerID string) string {
	if containerID == "" || containerID == shellContainerID {
		return shellHTML
	}
	return strings.ReplaceAll(shellHTML,
		`id="`+shellContainerID+`"`, `id="`+containerID+`"`)
}
