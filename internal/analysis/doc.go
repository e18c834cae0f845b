// Package analysis provides frequency and summary tools for recordings.
//
//   - [OneSided]: single-sided amplitude spectrum, normalized by N
//   - [SampleRate]: sampling rate from a relative time axis
//   - [Summarize]: per-axis statistics and the dominant Z frequency
//
// # Spectrum
//
// The spectrum keeps N/2+1 bins and doubles the interior ones so that
// the energy of the discarded negative frequencies is preserved:
//
//	s, err := analysis.OneSided(rec.Time, rec.Z)
//	if err != nil {
//	    return err
//	}
//	freq, amp := s.Peak()
package analysis
