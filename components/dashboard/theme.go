package dashboard

import (
	"sort"
	"strings"

	"github.com/ettle/strcase"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeSelection is the page-wide theme value handed to every region. The
// shell computes it from the dark mode flag; nothing mutates shared state.
type ThemeSelection struct {
	Name         string            `json:"name"`
	Dark         bool              `json:"dark"`
	RootClass    string            `json:"root_class"`
	SurfaceClass string            `json:"surface_class"`
	ToggleIcon   string            `json:"toggle_icon"`
	ChartTheme   string            `json:"chart_theme"`
	Tokens       map[string]string `json:"tokens,omitempty"`
}

// ThemeOptions chooses the echarts theme used for each mode.
type ThemeOptions struct {
	LightChartTheme string
	DarkChartTheme  string
}

func (o ThemeOptions) withDefaults() ThemeOptions {
	if o.LightChartTheme == "" {
		o.LightChartTheme = string(types.ThemeWesteros)
	}
	if o.DarkChartTheme == "" {
		o.DarkChartTheme = string(types.ThemeChalk)
	}
	return o
}

// ThemeFor resolves the theme for the dark mode flag.
func ThemeFor(dark bool, opts ThemeOptions) ThemeSelection {
	opts = opts.withDefaults()
	if dark {
		return ThemeSelection{
			Name:         ThemeDark,
			Dark:         true,
			RootClass:    "dark bg-gray-900 text-white",
			SurfaceClass: "bg-gray-800",
			ToggleIcon:   "sun",
			ChartTheme:   opts.DarkChartTheme,
			Tokens: map[string]string{
				"page-bg":    "#111827",
				"surface-bg": "#1f2937",
				"text":       "#ffffff",
				"muted":      "#9ca3af",
				"border":     "#374151",
			},
		}
	}
	return ThemeSelection{
		Name:         ThemeLight,
		RootClass:    "bg-gray-50",
		SurfaceClass: "bg-white",
		ToggleIcon:   "moon",
		ChartTheme:   opts.LightChartTheme,
		Tokens: map[string]string{
			"page-bg":    "#f9fafb",
			"surface-bg": "#ffffff",
			"text":       "#111827",
			"muted":      "#6b7280",
			"border":     "#e5e7eb",
		},
	}
}

// CSSVariables normalizes token keys into CSS variable names.
func (theme ThemeSelection) CSSVariables() map[string]string {
	if len(theme.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(theme.Tokens))
	for key, value := range theme.Tokens {
		name := normalizeCSSVariable(key)
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}

// CSSVariablesInline renders the CSS variable map as a style string with stable ordering.
func (theme ThemeSelection) CSSVariablesInline() string {
	vars := theme.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var builder strings.Builder
	for _, key := range keys {
		value := vars[key]
		if value == "" {
			continue
		}
		builder.WriteString(key)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

func normalizeCSSVariable(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--ed-" + strcase.ToKebab(name)
}
