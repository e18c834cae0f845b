package chart

import (
	"fmt"
	"strings"
)

// Kind identifies one of the five renderers.
type Kind int

const (
	KindX Kind = iota
	KindY
	KindZ
	KindAll
	KindFFTZ
)

var kindNames = [...]string{"x", "y", "z", "all", "fft-z"}

var kindLabels = [...]string{
	"X-axis Acc",
	"Y-axis Acc",
	"Z-axis Acc",
	"All Axes Acc",
	"FFT of Z-axis",
}

// Kinds returns every kind in button order.
func Kinds() []Kind {
	return []Kind{KindX, KindY, KindZ, KindAll, KindFFTZ}
}

func (k Kind) Valid() bool {
	return k >= KindX && k <= KindFFTZ
}

// String returns the short command-line name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Label returns the button text of the kind.
func (k Kind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return kindLabels[k]
}

// ParseKind accepts a short name ("x", "fft-z") or a button label.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindNames[k]) || strings.EqualFold(s, kindLabels[k]) {
			return k, nil
		}
	}
	switch strings.ToLower(s) {
	case "fft", "fftz":
		return KindFFTZ, nil
	case "xyz", "combined":
		return KindAll, nil
	}
	return 0, fmt.Errorf("unknown chart kind: %s (available: %s)", s, strings.Join(kindNames[:], ", "))
}
