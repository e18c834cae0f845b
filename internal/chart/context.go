package chart

import "github.com/san-kum/accelplot/internal/recording"

// Context holds the currently selected renderer and forwards plot calls
// to it. Surfaces select a kind immediately before each Plot.
type Context struct {
	selected Kind
}

func NewContext(kind Kind) *Context {
	return &Context{selected: kind}
}

func (c *Context) Select(kind Kind) {
	c.selected = kind
}

func (c *Context) Selected() Kind {
	return c.selected
}

// Plot renders rec with the selected renderer.
func (c *Context) Plot(rec *recording.Recording) (*Chart, error) {
	return Render(c.selected, rec)
}
