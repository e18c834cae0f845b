package viz

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/accelplot/internal/chart"
)

// Graph renders c as a terminal plot of the given size. Series are drawn
// against their sample index; the x range is reported in the caption.
func Graph(c *chart.Chart, width, height int, colored bool) string {
	minX, maxX, _, _, ok := c.Bounds()
	if !ok {
		return fmt.Sprintf("%s\n  (no samples)\n", c.Title)
	}

	data := make([][]float64, 0, len(c.Series))
	colors := make([]asciigraph.AnsiColor, 0, len(c.Series))
	names := make([]string, 0, len(c.Series))
	for _, s := range c.Series {
		if len(s.Y) == 0 {
			continue
		}
		data = append(data, sanitize(s.Y))
		colors = append(colors, ansiColor(s.Color))
		names = append(names, s.Name)
	}

	caption := fmt.Sprintf("%s   %s: %.4g .. %.4g", c.Title, c.XLabel, minX, maxX)
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	}
	if colored {
		opts = append(opts, asciigraph.SeriesColors(colors...))
	}
	if c.Legend {
		opts = append(opts, asciigraph.SeriesLegends(names...))
	}

	var b strings.Builder
	b.WriteString(c.YLabel)
	b.WriteString("\n")
	b.WriteString(asciigraph.PlotMany(data, opts...))
	b.WriteString("\n")
	return b.String()
}

// sanitize maps infinities to NaN, which asciigraph leaves as gaps.
func sanitize(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if math.IsInf(x, 0) {
			x = math.NaN()
		}
		out[i] = x
	}
	return out
}

func ansiColor(c color.RGBA) asciigraph.AnsiColor {
	switch c {
	case chart.ColorX:
		return asciigraph.Red
	case chart.ColorY:
		return asciigraph.Green
	case chart.ColorZ:
		return asciigraph.Blue
	case chart.ColorSpectrum:
		return asciigraph.SteelBlue
	}
	return asciigraph.Default
}
