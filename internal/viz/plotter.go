// Package viz renders planned paths for visual inspection: PNG plots via
// gonum/plot and standalone HTML charts via go-echarts. Everything here is
// presentation glue; the planner itself never depends on it.
package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/pathplan/internal/geom"
)

// PlanView is everything one rendering needs, all in surface units.
type PlanView struct {
	Title     string
	HexColor  string // robot color like "#FF3333"
	Raw       []geom.Point
	Dense     []geom.Point
	Waypoints []geom.Point
	Width     float64 // surface dimensions, used for axis ranges
	Height    float64
}

// RenderPNG writes a PNG plot of the drawn path, the smoothed dense curve
// and the selected waypoints to outPath.
func RenderPNG(outPath string, view PlanView) error {
	p := plot.New()
	p.Title.Text = view.Title
	p.X.Label.Text = "X (px)"
	p.Y.Label.Text = "Y (px)"
	p.X.Min, p.X.Max = 0, view.Width
	// Surface Y grows downward; invert the axis so plots match the drawing.
	p.Y.Min, p.Y.Max = view.Height, 0

	robotColor := parseHexColor(view.HexColor)

	if len(view.Raw) > 0 {
		rawLine, err := plotter.NewLine(toXYs(view.Raw))
		if err != nil {
			return fmt.Errorf("failed to build raw path line: %w", err)
		}
		rawLine.Width = vg.Points(1)
		rawLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
		p.Add(rawLine)
		p.Legend.Add("drawn", rawLine)
	}

	if len(view.Dense) > 0 {
		denseLine, err := plotter.NewLine(toXYs(view.Dense))
		if err != nil {
			return fmt.Errorf("failed to build dense curve line: %w", err)
		}
		denseLine.Width = vg.Points(2)
		denseLine.Color = robotColor
		p.Add(denseLine)
		p.Legend.Add("smoothed", denseLine)
	}

	if len(view.Waypoints) > 0 {
		wpScatter, err := plotter.NewScatter(toXYs(view.Waypoints))
		if err != nil {
			return fmt.Errorf("failed to build waypoint scatter: %w", err)
		}
		wpScatter.GlyphStyle.Radius = vg.Points(4)
		wpScatter.GlyphStyle.Color = color.RGBA{R: 20, G: 20, B: 20, A: 255}
		p.Add(wpScatter)
		p.Legend.Add("waypoints", wpScatter)
	}

	if err := p.Save(8*vg.Inch, 8*vg.Inch, outPath); err != nil {
		return fmt.Errorf("failed to save plan plot: %w", err)
	}
	return nil
}

func toXYs(pts []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

// parseHexColor converts "#RRGGBB" to a color, falling back to black on
// malformed input.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
