package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"github.com/OpticalFlyer/hud/ui"
)

// DefaultStyle is the style used when a widget names none.
const DefaultStyle = "default"

// ErrUnknownStyle is returned for a style name the theme does not define.
var ErrUnknownStyle = errors.New("unknown style")

// Theme is a set of named button styles, read from a theme.toml file.
type Theme struct {
	Styles map[string]Style `toml:"styles"`
}

// Style is the TOML form of ui.ButtonSettings. Zero fields keep the
// built-in defaults.
type Style struct {
	Colors      StyleColors `toml:"colors"`
	Roundedness *float64    `toml:"roundedness"`
	FontSize    float64     `toml:"font_size"`
	FontSpacing *float64    `toml:"font_spacing"`
	Font        string      `toml:"font"`
	TextColor   string      `toml:"text_color"`
}

// StyleColors holds one color per interaction state. Colors are "#RRGGBB",
// "#RRGGBBAA" or an SVG color name.
type StyleColors struct {
	Normal   string `toml:"normal"`
	Hovered  string `toml:"hovered"`
	Selected string `toml:"selected"`
	Disabled string `toml:"disabled"`
}

// DefaultTheme has only the default style, which matches ui.DefaultButtonSettings.
func DefaultTheme() *Theme {
	return &Theme{Styles: map[string]Style{DefaultStyle: {}}}
}

// LoadTheme reads a theme file. A missing file yields DefaultTheme.
func LoadTheme(path string) (*Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultTheme(), nil
		}
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return ParseTheme(data)
}

// ParseTheme decodes theme TOML and validates every color.
func ParseTheme(data []byte) (*Theme, error) {
	var th Theme
	if err := toml.Unmarshal(data, &th); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if th.Styles == nil {
		th.Styles = make(map[string]Style)
	}
	if _, ok := th.Styles[DefaultStyle]; !ok {
		th.Styles[DefaultStyle] = Style{}
	}
	for name, st := range th.Styles {
		if _, err := st.settings(); err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
	}
	return &th, nil
}

// ButtonSettings builds settings for style name with the given label.
// An empty name selects DefaultStyle.
func (th *Theme) ButtonSettings(name, label string) (ui.ButtonSettings, error) {
	if name == "" {
		name = DefaultStyle
	}
	st, ok := th.Styles[name]
	if !ok {
		return ui.ButtonSettings{}, fmt.Errorf("%w %q", ErrUnknownStyle, name)
	}
	s, err := st.settings()
	if err != nil {
		return ui.ButtonSettings{}, err
	}
	if label != "" {
		s.Text = label
	}
	return s, nil
}

func (st Style) settings() (ui.ButtonSettings, error) {
	s := ui.DefaultButtonSettings()

	slots := []struct {
		spec string
		dst  *color.Color
	}{
		{st.Colors.Normal, &s.Colors.Normal},
		{st.Colors.Hovered, &s.Colors.Hovered},
		{st.Colors.Selected, &s.Colors.Selected},
		{st.Colors.Disabled, &s.Colors.Disabled},
		{st.TextColor, &s.TextColor},
	}
	for _, slot := range slots {
		if slot.spec == "" {
			continue
		}
		c, err := ParseColor(slot.spec)
		if err != nil {
			return ui.ButtonSettings{}, err
		}
		*slot.dst = c
	}

	if st.Roundedness != nil {
		s.Roundedness = *st.Roundedness
	}
	if st.FontSize > 0 {
		s.FontSize = st.FontSize
	}
	if st.FontSpacing != nil {
		s.FontSpacing = *st.FontSpacing
	}
	s.FontID = st.Font
	return s, nil
}

// ParseColor parses "#RRGGBB", "#RRGGBBAA" or an SVG color name.
func ParseColor(spec string) (color.Color, error) {
	spec = strings.TrimSpace(spec)
	if hex, ok := strings.CutPrefix(spec, "#"); ok {
		if len(hex) != 6 && len(hex) != 8 {
			return nil, fmt.Errorf("invalid color %q", spec)
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", spec, err)
		}
		// hex alpha is straight, not premultiplied
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	c, ok := colornames.Map[strings.ToLower(spec)]
	if !ok {
		return nil, fmt.Errorf("unknown color name %q", spec)
	}
	return c, nil
}
