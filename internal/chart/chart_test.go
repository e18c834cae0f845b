package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/accelplot/internal/analysis"
	"github.com/san-kum/accelplot/internal/recording"
)

func testRecording(n int) *recording.Recording {
	rec := &recording.Recording{
		Time: make([]float64, n),
		X:    make([]float64, n),
		Y:    make([]float64, n),
		Z:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		rec.Time[i] = float64(i) * 0.01
		rec.X[i] = 0.1
		rec.Y[i] = -0.98
		rec.Z[i] = math.Sin(2 * math.Pi * 5 * rec.Time[i])
	}
	return rec
}

func TestSingleAxisRenderers(t *testing.T) {
	rec := testRecording(8)
	tests := []struct {
		kind  Kind
		title string
		color [3]uint8
		data  []float64
	}{
		{KindX, "X-axis Acceleration", [3]uint8{255, 0, 0}, rec.X},
		{KindY, "Y-axis Acceleration", [3]uint8{0, 128, 0}, rec.Y},
		{KindZ, "Z-axis Acceleration", [3]uint8{0, 0, 255}, rec.Z},
	}

	for _, tt := range tests {
		c, err := Render(tt.kind, rec)
		if err != nil {
			t.Fatalf("%s: %v", tt.kind, err)
		}
		if c.Title != tt.title {
			t.Errorf("%s: expected title %q, got %q", tt.kind, tt.title, c.Title)
		}
		if c.XLabel != TimeLabel || c.YLabel != AccelerationLabel {
			t.Errorf("%s: unexpected labels %q / %q", tt.kind, c.XLabel, c.YLabel)
		}
		if !c.Grid || c.Legend {
			t.Errorf("%s: expected grid without legend", tt.kind)
		}
		if len(c.Series) != 1 {
			t.Fatalf("%s: expected 1 series, got %d", tt.kind, len(c.Series))
		}
		s := c.Series[0]
		if got := [3]uint8{s.Color.R, s.Color.G, s.Color.B}; got != tt.color {
			t.Errorf("%s: expected color %v, got %v", tt.kind, tt.color, got)
		}
		if len(s.X) != 8 || len(s.Y) != 8 {
			t.Errorf("%s: expected 8 points, got %d/%d", tt.kind, len(s.X), len(s.Y))
		}
		if &s.Y[0] != &tt.data[0] {
			t.Errorf("%s: series does not plot its own axis", tt.kind)
		}
	}
}

func TestRenderAll(t *testing.T) {
	c, err := RenderAll(testRecording(10))
	if err != nil {
		t.Fatal(err)
	}
	if !c.Legend {
		t.Error("expected legend")
	}
	want := []string{"X-axis", "Y-axis", "Z-axis"}
	if len(c.Series) != len(want) {
		t.Fatalf("expected %d series, got %d", len(want), len(c.Series))
	}
	for i, name := range want {
		if c.Series[i].Name != name {
			t.Errorf("series %d: expected %s, got %s", i, name, c.Series[i].Name)
		}
	}
	if c.Series[0].Color != ColorX || c.Series[1].Color != ColorY || c.Series[2].Color != ColorZ {
		t.Error("unexpected series colors")
	}
}

func TestRenderFFTZ(t *testing.T) {
	rec := testRecording(100)
	c, err := RenderFFTZ(rec)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "FFT of Z-axis Acceleration" || c.XLabel != FrequencyLabel || c.YLabel != AmplitudeLabel {
		t.Errorf("unexpected chart text: %+v", c)
	}
	s := c.Series[0]
	if len(s.X) != 51 || len(s.Y) != 51 {
		t.Fatalf("expected 51 bins, got %d", len(s.X))
	}
	if math.Abs(s.Y[5]-1) > 1e-6 {
		t.Errorf("expected unit amplitude at 5 Hz, got %f", s.Y[5])
	}
}

func TestRenderFFTZTooShort(t *testing.T) {
	_, err := Render(KindFFTZ, testRecording(1))
	if !errors.Is(err, analysis.ErrTooFewSamples) {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
}

func TestRenderInvalid(t *testing.T) {
	if _, err := Render(Kind(42), testRecording(4)); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := Render(KindX, nil); err == nil {
		t.Error("expected error for nil recording")
	}
}

func TestBounds(t *testing.T) {
	c := &Chart{Series: []Series{
		{X: []float64{0, 1, 2}, Y: []float64{1, math.NaN(), -3}},
		{X: []float64{5}, Y: []float64{2}},
	}}
	minX, maxX, minY, maxY, ok := c.Bounds()
	if !ok || minX != 0 || maxX != 5 || minY != -3 || maxY != 2 {
		t.Errorf("unexpected bounds %v %v %v %v %v", minX, maxX, minY, maxY, ok)
	}

	if _, _, _, _, ok := (&Chart{}).Bounds(); ok {
		t.Error("expected no bounds for empty chart")
	}
}
