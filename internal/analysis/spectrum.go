package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var (
	// ErrTooFewSamples indicates a spectrum was requested for fewer than two samples.
	ErrTooFewSamples = errors.New("analysis: at least 2 samples are required")

	// ErrSampleRate indicates the time axis does not yield a positive sampling rate.
	ErrSampleRate = errors.New("analysis: time axis has no positive sampling rate")
)

// Spectrum is a one-sided amplitude spectrum.
type Spectrum struct {
	Freq       []float64
	Amplitude  []float64
	SampleRate float64
	N          int
}

// SampleRate returns 1 / mean(diff(t)).
func SampleRate(t []float64) (float64, error) {
	if len(t) < 2 {
		return 0, ErrTooFewSamples
	}
	sum := 0.0
	for i := 1; i < len(t); i++ {
		sum += t[i] - t[i-1]
	}
	mean := sum / float64(len(t)-1)
	if !(mean > 0) || math.IsInf(mean, 0) {
		return 0, ErrSampleRate
	}
	return 1 / mean, nil
}

// OneSided computes the single-sided amplitude spectrum of x sampled at
// times t. Magnitudes are normalized by N, bins 0..N/2 are kept and every
// bin except the first and the last is doubled.
func OneSided(t, x []float64) (*Spectrum, error) {
	n := len(x)
	if n < 2 || len(t) < 2 {
		return nil, ErrTooFewSamples
	}
	fs, err := SampleRate(t)
	if err != nil {
		return nil, err
	}

	spec := fft.FFTReal(x)

	half := n/2 + 1
	s := &Spectrum{
		Freq:       make([]float64, half),
		Amplitude:  make([]float64, half),
		SampleRate: fs,
		N:          n,
	}
	for k := 0; k < half; k++ {
		s.Amplitude[k] = cmplx.Abs(spec[k]) / float64(n)
		if k > 0 && k < half-1 {
			s.Amplitude[k] *= 2
		}
		s.Freq[k] = float64(k) * fs / float64(n)
	}
	return s, nil
}

// Peak returns the frequency and amplitude of the largest non-DC bin.
func (s *Spectrum) Peak() (freq, amp float64) {
	for k := 1; k < len(s.Amplitude); k++ {
		if s.Amplitude[k] > amp {
			freq, amp = s.Freq[k], s.Amplitude[k]
		}
	}
	return freq, amp
}
