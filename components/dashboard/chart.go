package dashboard

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	defaultChartHeight = "320px"
	eventsSeriesName   = "events"
	revenueSeriesName  = "revenue"
	eventsSeriesColor  = "#8884d8"
	revenueSeriesColor = "#82ca9d"
)

var sharedChartCache = NewChartCache(5 * time.Minute)

// ChartPanel renders the dual-series statistics chart server-side.
type ChartPanel struct {
	points     []ChartPoint
	cache      RenderCache
	assetsHost string
	height     string
}

// ChartPanelOption customizes panel behavior.
type ChartPanelOption func(*ChartPanel)

// WithChartCache injects a render cache. A nil cache disables memoization.
func WithChartCache(cache RenderCache) ChartPanelOption {
	return func(p *ChartPanel) {
		p.cache = cache
	}
}

// WithChartAssetsHost rewrites the assets host so ECharts JS loads from a CDN.
func WithChartAssetsHost(host string) ChartPanelOption {
	return func(p *ChartPanel) {
		p.assetsHost = host
	}
}

// WithChartHeight overrides the chart height (CSS length).
func WithChartHeight(height string) ChartPanelOption {
	return func(p *ChartPanel) {
		if height != "" {
			p.height = height
		}
	}
}

// NewChartPanel builds a panel over the given points.
func NewChartPanel(points []ChartPoint, opts ...ChartPanelOption) *ChartPanel {
	p := &ChartPanel{
		points: points,
		cache:  sharedChartCache,
		height: defaultChartHeight,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Points returns the plotted dataset.
func (p *ChartPanel) Points() []ChartPoint {
	return p.points
}

// Prune evicts expired cache entries when the panel's cache supports it.
func (p *ChartPanel) Prune() int {
	pruner, ok := p.cache.(interface{ Prune() int })
	if !ok {
		return 0
	}
	return pruner.Prune()
}

// Render returns the chart HTML for the theme.
func (p *ChartPanel) Render(theme ThemeSelection) (string, error) {
	if len(p.points) == 0 {
		return "", fmt.Errorf("chart points are required")
	}
	renderFn := func() (string, error) {
		return p.render(theme.ChartTheme)
	}
	if p.cache == nil {
		return renderFn()
	}
	key := fmt.Sprintf("chart:%s:%s:%s", theme.ChartTheme, p.height, datasetKey(p.points))
	return p.cache.GetOrRender(key, renderFn)
}

func (p *ChartPanel) render(chartTheme string) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(p.globalChartOptions(chartTheme)...)
	line.SetXAxis(chartMonths(p.points))
	line.AddSeries(eventsSeriesName, eventsLineData(p.points),
		charts.WithLineStyleOpts(opts.LineStyle{Color: eventsSeriesColor}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: eventsSeriesColor}),
	)
	line.AddSeries(revenueSeriesName, revenueLineData(p.points),
		charts.WithLineStyleOpts(opts.LineStyle{Color: revenueSeriesColor}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: revenueSeriesColor}),
	)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))
	return renderChart(line)
}

func renderChart(renderable interface{ Render(io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := renderable.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *ChartPanel) globalChartOptions(chartTheme string) []charts.GlobalOpts {
	initOpts := opts.Initialization{
		Theme:  chartTheme,
		Width:  "100%",
		Height: p.height,
	}
	if p.assetsHost != "" {
		initOpts.AssetsHost = p.assetsHost
	}
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(initOpts),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Type: "dashed"},
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Type: "dashed"},
			},
		}),
	}
}

func chartMonths(points []ChartPoint) []string {
	months := make([]string, len(points))
	for i, point := range points {
		months[i] = point.Month
	}
	return months
}

func eventsLineData(points []ChartPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		data[i] = opts.LineData{Name: point.Month, Value: point.Events}
	}
	return data
}

func revenueLineData(points []ChartPoint) []opts.LineData {
	data := make([]opts.LineData, len(points))
	for i, point := range points {
		data[i] = opts.LineData{Name: point.Month, Value: point.Revenue}
	}
	return data
}
