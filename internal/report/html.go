package report

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders the report as a standalone page with one grouped
// bar chart, one bar per shirt color per year
func (r *Report) WriteHTML(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Portrait cohorts", Width: "900px", Height: "520px"}),
		charts.WithTitleOpts(opts.Title{Title: "Portrait cohorts by year", Subtitle: r.GeneratedAt.Format("2006-01-02 15:04")}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	var (
		years   []string
		green   []opts.BarData
		orange  []opts.BarData
		unknown []opts.BarData
	)
	for _, y := range r.Years {
		years = append(years, y.Year)
		green = append(green, opts.BarData{Value: y.Stats.GreenCount})
		orange = append(orange, opts.BarData{Value: y.Stats.OrangeCount})
		unknown = append(unknown, opts.BarData{Value: y.Stats.UnknownCount})
	}

	bar.SetXAxis(years).
		AddSeries("green", green, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#43a047"})).
		AddSeries("orange", orange, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#fb8c00"})).
		AddSeries("unknown", unknown, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#9e9e9e"}))

	page := components.NewPage()
	page.AddCharts(bar)
	return page.Render(w)
}
