// Package plot renders prediction overlay charts and exports results.
package plot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Overlay draws the original series with the train and test prediction
// overlays on one chart and saves it to path (format from the extension,
// typically .png). The overlay slices are full-length alignment buffers; NaN
// positions are simply not drawn.
func Overlay(original, trainPred, testPred []float64, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time step"
	p.Y.Label.Text = "Passengers"
	p.Legend.Top = true

	series := []struct {
		name   string
		values []float64
		color  color.RGBA
	}{
		{"observed", original, color.RGBA{B: 255, A: 255}},
		{"train predictions", trainPred, color.RGBA{R: 230, G: 130, A: 255}},
		{"test predictions", testPred, color.RGBA{G: 160, A: 255}},
	}

	for _, s := range series {
		pts := points(s.values)
		if len(pts) == 0 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plot: building line %q: %w", s.name, err)
		}
		line.Color = s.color
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: saving %s: %w", path, err)
	}
	return nil
}

// points converts an alignment buffer into plottable XY pairs, dropping the
// NaN "no value" positions while keeping the original time index as X.
func points(values []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i), Y: v})
	}
	return pts
}
