package dashboard

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/stretchr/testify/assert"
)

func TestThemeForLight(t *testing.T) {
	theme := ThemeFor(false, ThemeOptions{})
	assert.Equal(t, ThemeLight, theme.Name)
	assert.False(t, theme.Dark)
	assert.Equal(t, "bg-gray-50", theme.RootClass)
	assert.Equal(t, "moon", theme.ToggleIcon)
	assert.Equal(t, string(types.ThemeWesteros), theme.ChartTheme)
}

func TestThemeForDark(t *testing.T) {
	theme := ThemeFor(true, ThemeOptions{DarkChartTheme: "dark"})
	assert.Equal(t, ThemeDark, theme.Name)
	assert.True(t, theme.Dark)
	assert.Contains(t, theme.RootClass, "dark")
	assert.Equal(t, "bg-gray-800", theme.SurfaceClass)
	assert.Equal(t, "sun", theme.ToggleIcon)
	assert.Equal(t, "dark", theme.ChartTheme)
}

func TestThemeCSSVariables(t *testing.T) {
	theme := ThemeSelection{Tokens: map[string]string{
		"text":     "#fff",
		"--custom": "1px",
		" ":        "ignored",
		"surface":  "",
	}}
	vars := theme.CSSVariables()
	assert.Equal(t, "#fff", vars["--ed-text"])
	assert.Equal(t, "1px", vars["--custom"])
	assert.Len(t, vars, 3)
	assert.Equal(t, "--custom: 1px; --ed-text: #fff;", theme.CSSVariablesInline())

	assert.Empty(t, ThemeSelection{}.CSSVariablesInline())

	camel := ThemeSelection{Tokens: map[string]string{"surfaceBg": "#000"}}
	assert.Equal(t, "#000", camel.CSSVariables()["--ed-surface-bg"])
}
