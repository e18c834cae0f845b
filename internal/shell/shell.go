// Package shell is the toolkit-neutral core of the five-button chart
// window: it owns the loaded recording, lays out one row of buttons and
// turns a click into a rendered chart.
package shell

import (
	"errors"
	"log/slog"
	"time"

	"github.com/san-kum/accelplot/internal/chart"
	"github.com/san-kum/accelplot/internal/logging"
	"github.com/san-kum/accelplot/internal/recording"
)

// Layout constants, in pixels.
const (
	TopMargin     = 10
	ButtonSpacing = 5
	ButtonPadding = 8
	ButtonHeight  = 28
)

// ErrNoRecording is returned by Click when the shell holds no data.
var ErrNoRecording = errors.New("shell: no recording loaded")

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Button struct {
	Kind   chart.Kind
	Label  string
	Bounds Rect
}

// Shell holds the recording for its whole lifetime; it is never reloaded.
type Shell struct {
	rec     *recording.Recording
	ctx     *chart.Context
	buttons []Button
	log     *slog.Logger
}

func New(rec *recording.Recording) *Shell {
	kinds := chart.Kinds()
	s := &Shell{
		rec:     rec,
		ctx:     chart.NewContext(kinds[0]),
		buttons: make([]Button, len(kinds)),
		log:     logging.L(),
	}
	for i, k := range kinds {
		s.buttons[i] = Button{Kind: k, Label: k.Label()}
	}
	return s
}

// Recording is the data loaded at startup, or nil.
func (s *Shell) Recording() *recording.Recording {
	return s.rec
}

// Buttons returns the buttons in window order.
func (s *Shell) Buttons() []Button {
	out := make([]Button, len(s.buttons))
	copy(out, s.buttons)
	return out
}

// Layout places the buttons left to right in one row. textWidth reports
// the rendered width of a label.
func (s *Shell) Layout(textWidth func(label string) float64) {
	x := float64(ButtonSpacing)
	for i := range s.buttons {
		w := textWidth(s.buttons[i].Label) + 2*ButtonPadding
		s.buttons[i].Bounds = Rect{X: x, Y: TopMargin, W: w, H: ButtonHeight}
		x += w + ButtonSpacing
	}
}

// RowWidth is the width taken by the laid out button row.
func (s *Shell) RowWidth() float64 {
	if len(s.buttons) == 0 {
		return 0
	}
	last := s.buttons[len(s.buttons)-1].Bounds
	return last.X + last.W + ButtonSpacing
}

// ChartArea is the region below the button row of a width x height window.
func (s *Shell) ChartArea(width, height float64) Rect {
	top := float64(TopMargin + ButtonHeight + TopMargin)
	return Rect{X: 0, Y: top, W: width, H: max(height-top, 0)}
}

// HitTest reports the button under (x, y).
func (s *Shell) HitTest(x, y float64) (chart.Kind, bool) {
	for _, b := range s.buttons {
		if b.Bounds.Contains(x, y) {
			return b.Kind, true
		}
	}
	return 0, false
}

// Click selects the renderer for kind and plots the held recording.
func (s *Shell) Click(kind chart.Kind) (*chart.Chart, error) {
	if s.rec == nil {
		return nil, ErrNoRecording
	}
	start := time.Now()
	s.ctx.Select(kind)
	c, err := s.ctx.Plot(s.rec)
	if err != nil {
		s.log.Warn("render failed", "kind", kind.String(), "error", err)
		return nil, err
	}
	s.log.Debug("rendered chart", "kind", kind.String(), "series", len(c.Series), "elapsed", time.Since(start))
	return c, nil
}
