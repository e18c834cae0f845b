package recording

import "time"

// Recording is one loaded logger export. All four sequences have the
// same length and are never modified after Load returns.
type Recording struct {
	Source  string
	Columns []string
	Start   time.Time
	Dropped int

	// Time is seconds relative to the first sample.
	Time []float64
	// X, Y and Z are accelerations in G.
	X []float64
	Y []float64
	Z []float64
}

func (r *Recording) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Time)
}

// Duration is the time span covered by the samples, in seconds.
func (r *Recording) Duration() float64 {
	if r.Len() < 2 {
		return 0
	}
	return r.Time[len(r.Time)-1] - r.Time[0]
}

// Axis returns the acceleration sequence for "x", "y" or "z".
func (r *Recording) Axis(name string) []float64 {
	switch name {
	case "x", "X":
		return r.X
	case "y", "Y":
		return r.Y
	case "z", "Z":
		return r.Z
	}
	return nil
}
