// Package chart turns a recording into toolkit-neutral chart descriptions.
//
// Renderers are pure: they read a [recording.Recording] and return a
// [Chart] value. Drawing a Chart onto an image, a file or a terminal is
// left to the export and viz packages.
package chart

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Axis labels shared by the time-domain renderers.
const (
	TimeLabel         = "Time (s)"
	AccelerationLabel = "Acceleration (G)"
	FrequencyLabel    = "Frequency (Hz)"
	AmplitudeLabel    = "Amplitude"
)

// LineWidth is the stroke width of every series, in points.
const LineWidth = 1.5

// Trace colors.
var (
	ColorX = colornames.Red
	ColorY = colornames.Green
	ColorZ = colornames.Blue
	// ColorSpectrum is the default color of a single unnamed series.
	ColorSpectrum = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// Series is one line on a chart.
type Series struct {
	Name  string
	Color color.RGBA
	X     []float64
	Y     []float64
}

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Grid   bool
	Legend bool
	Series []Series
}

// Bounds returns the data range across all series. ok is false when no
// series has a finite point.
func (c *Chart) Bounds() (minX, maxX, minY, maxY float64, ok bool) {
	for _, s := range c.Series {
		for i := range s.X {
			x, y := s.X[i], s.Y[i]
			if !finite(x) || !finite(y) {
				continue
			}
			if !ok {
				minX, maxX, minY, maxY = x, x, y, y
				ok = true
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return minX, maxX, minY, maxY, ok
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
