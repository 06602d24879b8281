// Package scene builds widgets from a YAML description and wires their
// click actions.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScene []byte

// Scene is the YAML form of a set of widgets.
type Scene struct {
	Widgets []WidgetSpec `yaml:"widgets"`
}

// WidgetSpec describes one widget.
type WidgetSpec struct {
	// ID names the widget for action targets. Generated when empty.
	ID       string     `yaml:"id"`
	Kind     string     `yaml:"kind"`
	Position [2]float64 `yaml:"position"`
	Size     [2]float64 `yaml:"size"`
	Layer    *int       `yaml:"layer"`
	// Style is a theme style name for buttons and toggles.
	Style string `yaml:"style"`
	// Text is the button or toggle label, or the panel title.
	Text    string `yaml:"text"`
	Texture string `yaml:"texture"`
	Hidden  bool   `yaml:"hidden"`
	// Disabled starts a button or toggle disabled.
	Disabled bool `yaml:"disabled"`
	// Detached widgets are built but not registered until an add action runs.
	Detached bool     `yaml:"detached"`
	Actions  []Action `yaml:"actions"`
}

// Action runs when the owning widget is clicked.
type Action struct {
	Do      string `yaml:"do"`
	Target  string `yaml:"target"`
	Message string `yaml:"message"`
	Sound   string `yaml:"sound"`
}

// Parse decodes a scene. Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &sc, nil
}

// Load reads and parses a scene file. An empty path loads Default.
func Load(path string) (*Scene, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Default returns the built-in demo scene.
func Default() (*Scene, error) {
	return Parse(defaultScene)
}
