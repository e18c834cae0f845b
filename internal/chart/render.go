package chart

import (
	"fmt"

	"github.com/san-kum/accelplot/internal/analysis"
	"github.com/san-kum/accelplot/internal/recording"
)

// Renderer builds one chart from a recording.
type Renderer func(rec *recording.Recording) (*Chart, error)

var renderers = [...]Renderer{
	KindX:    RenderX,
	KindY:    RenderY,
	KindZ:    RenderZ,
	KindAll:  RenderAll,
	KindFFTZ: RenderFFTZ,
}

// Render runs the renderer matching kind.
func Render(kind Kind, rec *recording.Recording) (*Chart, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown chart kind: %d", int(kind))
	}
	if rec == nil {
		return nil, fmt.Errorf("render %s: no recording loaded", kind)
	}
	return renderers[kind](rec)
}

func timeChart(title string, series ...Series) *Chart {
	return &Chart{
		Title:  title,
		XLabel: TimeLabel,
		YLabel: AccelerationLabel,
		Grid:   true,
		Series: series,
	}
}

func xSeries(rec *recording.Recording) Series {
	return Series{Name: "X-axis", Color: ColorX, X: rec.Time, Y: rec.X}
}

func ySeries(rec *recording.Recording) Series {
	return Series{Name: "Y-axis", Color: ColorY, X: rec.Time, Y: rec.Y}
}

func zSeries(rec *recording.Recording) Series {
	return Series{Name: "Z-axis", Color: ColorZ, X: rec.Time, Y: rec.Z}
}

func RenderX(rec *recording.Recording) (*Chart, error) {
	return timeChart("X-axis Acceleration", xSeries(rec)), nil
}

func RenderY(rec *recording.Recording) (*Chart, error) {
	return timeChart("Y-axis Acceleration", ySeries(rec)), nil
}

func RenderZ(rec *recording.Recording) (*Chart, error) {
	return timeChart("Z-axis Acceleration", zSeries(rec)), nil
}

// RenderAll overlays the three axes with a legend.
func RenderAll(rec *recording.Recording) (*Chart, error) {
	c := timeChart("All Axes Acceleration", xSeries(rec), ySeries(rec), zSeries(rec))
	c.Legend = true
	return c, nil
}

// RenderFFTZ plots the one-sided amplitude spectrum of the Z axis.
func RenderFFTZ(rec *recording.Recording) (*Chart, error) {
	spec, err := analysis.OneSided(rec.Time, rec.Z)
	if err != nil {
		return nil, fmt.Errorf("fft of z: %w", err)
	}
	return &Chart{
		Title:  "FFT of Z-axis Acceleration",
		XLabel: FrequencyLabel,
		YLabel: AmplitudeLabel,
		Grid:   true,
		Series: []Series{{
			Color: ColorSpectrum,
			X:     spec.Freq,
			Y:     spec.Amplitude,
		}},
	}, nil
}
