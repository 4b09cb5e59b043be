// ABOUTME: Screens manifest describing the design screens the preview server exposes
// ABOUTME: Loaded from a YAML file, with built-in screens when no manifest is configured

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Screen describes one design screen. A screen either points at a remote
// export URL or marks itself embedded, in which case the document ships
// compiled into the binary under the screen's name.
type Screen struct {
	// Name identifies the screen in URLs and lookups
	Name string `yaml:"name"`

	// URL is the remote export location. Empty for embedded screens.
	URL string `yaml:"url,omitempty"`

	// Embedded marks a screen whose document is compiled into the binary
	Embedded bool `yaml:"embedded,omitempty"`

	// Container overrides the host document element the screen renders into
	Container string `yaml:"container,omitempty"`

	// ImageDir overrides the export's image sub-directory name
	ImageDir string `yaml:"imageDir,omitempty"`

	// Stylesheets overrides the companion stylesheet filenames
	Stylesheets []string `yaml:"stylesheets,omitempty"`

	// Scripts overrides the companion script filenames
	Scripts []string `yaml:"scripts,omitempty"`
}

// screensManifest is the shape of the YAML manifest document
type screensManifest struct {
	Screens []Screen `yaml:"screens"`
}

// LoadScreens reads and validates a screens manifest
func LoadScreens(path string) ([]Screen, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read screens manifest: %w", err)
	}

	var manifest screensManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse screens manifest: %w", err)
	}

	if len(manifest.Screens) == 0 {
		return nil, errors.New("screens manifest names no screens")
	}

	seen := make(map[string]bool)
	for _, screen := range manifest.Screens {
		if screen.Name == "" {
			return nil, errors.New("every screen needs a name")
		}
		if seen[screen.Name] {
			return nil, fmt.Errorf("duplicate screen name %q", screen.Name)
		}
		seen[screen.Name] = true

		if screen.URL == "" && !screen.Embedded {
			return nil, fmt.Errorf("screen %q needs a url or embedded: true", screen.Name)
		}
		if screen.URL != "" && screen.Embedded {
			return nil, fmt.Errorf("screen %q cannot be both remote and embedded", screen.Name)
		}
	}

	return manifest.Screens, nil
}

// DefaultScreens returns the built-in screens served when no manifest is
// configured
func DefaultScreens() []Screen {
	return []Screen{
		{Name: "welcome", Embedded: true},
		{Name: "styleguide", Embedded: true},
	}
}

// FindScreen returns the screen with the given name
func FindScreen(screens []Screen, name string) (Screen, bool) {
	for _, screen := range screens {
		if screen.Name == name {
			return screen, true
		}
	}
	return Screen{}, false
}
