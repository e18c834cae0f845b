// Package export draws charts with gonum/plot.
package export

import (
	"fmt"
	"image"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/accelplot/internal/chart"
)

// Default figure size, 8x6 inches.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
	DefaultDPI    = 96
)

var formats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true,
	"csv": true, "json": true,
}

// Plot converts a chart into a gonum plot.
func Plot(c *chart.Chart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true

	if c.Grid {
		p.Add(plotter.NewGrid())
	}

	for _, s := range c.Series {
		xys := finitePoints(s.X, s.Y)
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.Color = s.Color
		line.Width = vg.Points(chart.LineWidth)
		p.Add(line)
		if c.Legend && s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
	}
	return p, nil
}

// finitePoints drops points gonum cannot draw (NaN or Inf).
func finitePoints(x, y []float64) plotter.XYs {
	n := min(len(x), len(y))
	xys := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x[i], Y: y[i]})
	}
	return xys
}

// Image draws the chart into an in-memory raster of the given size.
func Image(c *chart.Chart, width, height vg.Length, dpi int) (image.Image, error) {
	p, err := Plot(c)
	if err != nil {
		return nil, err
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}

// ImagePixels draws the chart into a raster of exactly w x h pixels.
func ImagePixels(c *chart.Chart, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", w, h)
	}
	width := vg.Length(w) * vg.Inch / DefaultDPI
	height := vg.Length(h) * vg.Inch / DefaultDPI
	return Image(c, width, height, DefaultDPI)
}

// Format returns the image format implied by a file name.
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return "", fmt.Errorf("unsupported chart format %q (use .png, .svg, .csv or .json)", filepath.Ext(path))
	}
	return ext, nil
}

// Save writes the chart to path; the extension selects the format.
// csv and json write the series data instead of a picture.
func Save(c *chart.Chart, path string, width, height vg.Length) error {
	format, err := Format(path)
	if err != nil {
		return err
	}
	if format == "csv" || format == "json" {
		return saveData(c, path, format)
	}
	p, err := Plot(c)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}

// Write encodes the chart in the given format to w.
func Write(c *chart.Chart, w io.Writer, format string, width, height vg.Length) error {
	switch {
	case format == "csv":
		return WriteCSV(c, w)
	case format == "json":
		return WriteJSON(c, w)
	case !formats[format]:
		return fmt.Errorf("unsupported chart format %q", format)
	}
	p, err := Plot(c)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
