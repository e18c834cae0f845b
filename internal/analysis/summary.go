package analysis

import (
	"math"

	"github.com/san-kum/accelplot/internal/recording"
)

// AxisStats summarizes one acceleration component.
type AxisStats struct {
	Min, Max, Mean, RMS float64
}

// Summary describes a loaded recording.
type Summary struct {
	Samples    int
	Dropped    int
	Duration   float64
	SampleRate float64
	X, Y, Z    AxisStats
	// PeakFreq and PeakAmp locate the largest non-DC bin of the Z spectrum.
	PeakFreq float64
	PeakAmp  float64
}

// Summarize computes a Summary. Values that need at least two samples
// are left at zero for shorter recordings.
func Summarize(rec *recording.Recording) Summary {
	s := Summary{
		Samples:  rec.Len(),
		Dropped:  rec.Dropped,
		Duration: rec.Duration(),
		X:        axisStats(rec.X),
		Y:        axisStats(rec.Y),
		Z:        axisStats(rec.Z),
	}

	if fs, err := SampleRate(rec.Time); err == nil {
		s.SampleRate = fs
	}
	if spec, err := OneSided(rec.Time, rec.Z); err == nil {
		s.PeakFreq, s.PeakAmp = spec.Peak()
	}
	return s
}

func axisStats(v []float64) AxisStats {
	if len(v) == 0 {
		return AxisStats{}
	}
	st := AxisStats{Min: v[0], Max: v[0]}
	sum, sq := 0.0, 0.0
	for _, x := range v {
		st.Min = math.Min(st.Min, x)
		st.Max = math.Max(st.Max, x)
		sum += x
		sq += x * x
	}
	n := float64(len(v))
	st.Mean = sum / n
	st.RMS = math.Sqrt(sq / n)
	return st
}
