package viz

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/pathplan/internal/geom"
)

// RenderHTML writes a standalone HTML scatter chart of the plan to w: the
// drawn path, the smoothed dense curve and the selected waypoints as three
// series over the drawing surface.
func RenderHTML(w io.Writer, view PlanView) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: view.Title,
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    view.Title,
			Subtitle: fmt.Sprintf("drawn=%d dense=%d waypoints=%d", len(view.Raw), len(view.Dense), len(view.Waypoints)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: view.Width, Name: "X (px)", NameLocation: "middle", NameGap: 25}),
		// Surface Y grows downward; flip the axis range to match the drawing.
		charts.WithYAxisOpts(opts.YAxis{Min: view.Height, Max: 0, Name: "Y (px)", NameLocation: "middle", NameGap: 30}),
	)

	scatter.AddSeries("drawn", scatterData(view.Raw),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 2}))
	scatter.AddSeries("smoothed", scatterData(view.Dense),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("waypoints", scatterData(view.Waypoints),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render plan chart: %w", err)
	}
	return nil
}

func scatterData(pts []geom.Point) []opts.ScatterData {
	data := make([]opts.ScatterData, 0, len(pts))
	for _, p := range pts {
		data = append(data, opts.ScatterData{Value: []interface{}{p.X, p.Y}})
	}
	return data
}
