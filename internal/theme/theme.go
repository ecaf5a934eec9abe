package theme

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"ui-engine/internal/ui"
)

// DefaultPath is the theme file path, relative to the process working
// directory.
const DefaultPath = "config/theme.yaml"

// Theme holds the colors and metrics the demo (and any host app) feeds
// into widget configs. Colors are hex strings (#RGB or #RRGGBB) so the
// file stays hand-editable; resolve them with the *Color accessors.
type Theme struct {
	Background   string `yaml:"background"`
	Panel        string `yaml:"panel"`
	Text         string `yaml:"text"`
	Accent       string `yaml:"accent"`
	Border       string `yaml:"border"`
	FontSize     int    `yaml:"font_size"`
	Padding      int    `yaml:"padding"`
	Gap          int    `yaml:"gap"`
	CornerRadius int    `yaml:"corner_radius"`
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{
		Background:   "#1e1e24",
		Panel:        "#2a2a32",
		Text:         "#ebebeb",
		Accent:       "#5aaa5a",
		Border:       "#46465a",
		FontSize:     20,
		Padding:      16,
		Gap:          10,
		CornerRadius: 6,
	}
}

// Load reads a theme from path. If the file is missing or invalid, returns
// Default() and does not create a file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Default(), nil
	}
	return t, nil
}

// Save writes the theme to path, creating the directory if needed.
func Save(path string, t Theme) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BackgroundColor resolves the background hex, falling back to the default
// theme's value on a parse error. The other accessors behave the same.
func (t Theme) BackgroundColor() ui.Color { return colorOr(t.Background, Default().Background) }

func (t Theme) PanelColor() ui.Color  { return colorOr(t.Panel, Default().Panel) }
func (t Theme) TextColor() ui.Color   { return colorOr(t.Text, Default().Text) }
func (t Theme) AccentColor() ui.Color { return colorOr(t.Accent, Default().Accent) }
func (t Theme) BorderColor() ui.Color { return colorOr(t.Border, Default().Border) }

func colorOr(hex, fallback string) ui.Color {
	if c, ok := ui.ParseHexColor(hex); ok {
		return c
	}
	c, _ := ui.ParseHexColor(fallback)
	return c
}
