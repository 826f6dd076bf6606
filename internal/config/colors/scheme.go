package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for borders, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - success messages
	Edit   string `yaml:"edit"`   // Blue - edit prompts
	Delete string `yaml:"delete"` // Red - errors

	// Table colors
	TableBorder string `yaml:"table_border"`
	TableHeader string `yaml:"table_header"`
	TableCell   string `yaml:"table_cell"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.merge(preset, false)
}

// MergeFrom overrides values with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	c.merge(&other, true)
}

func (c *ColorScheme) merge(other *ColorScheme, override bool) {
	pick := func(dst *string, src string) {
		if src == "" {
			return
		}
		if override || *dst == "" {
			*dst = src
		}
	}

	pick(&c.Preset, other.Preset)
	pick(&c.Accent, other.Accent)
	pick(&c.Create, other.Create)
	pick(&c.Edit, other.Edit)
	pick(&c.Delete, other.Delete)
	pick(&c.TableBorder, other.TableBorder)
	pick(&c.TableHeader, other.TableHeader)
	pick(&c.TableCell, other.TableCell)
	pick(&c.Title, other.Title)
	pick(&c.Subtle, other.Subtle)
	pick(&c.Normal, other.Normal)
	pick(&c.InfoFg, other.InfoFg)
	pick(&c.InfoBg, other.InfoBg)
	pick(&c.WarningFg, other.WarningFg)
	pick(&c.WarningBg, other.WarningBg)
	pick(&c.ErrorFg, other.ErrorFg)
	pick(&c.ErrorBg, other.ErrorBg)
}
