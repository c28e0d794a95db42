// Package bootlog mirrors start-up log lines onto the panel until the clock
// face takes over, so a unit without a serial cable still shows why it
// failed to come up.
package bootlog

import (
	"deskclock/hal"
	"deskclock/internal/glyph"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Font metrics of the terminal.
const (
	fontHeight = 10
	fontOffset = 7
)

// Console is a hal.Logger that writes to the serial log and, until
// Detach, to a terminal on the panel.
type Console struct {
	log  hal.Logger
	s    hal.Surface
	term *tinyterm.Terminal
}

// New clears s and starts a terminal on it. Either argument may be nil.
// The terminal draws straight onto s; once every row is used it wraps to
// the top and clears each row before reusing it.
func New(log hal.Logger, s hal.Surface) *Console {
	c := &Console{log: log, s: s}
	if s == nil {
		return c
	}
	glyph.Fill(s, 0, 0, s.Width(), s.Height(), 0)
	c.term = tinyterm.NewTerminal(glyph.SurfaceDisplayer{S: s})
	c.term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: fontHeight,
		FontOffset: fontOffset,
	})
	return c
}

// Attached reports whether lines still reach the panel.
func (c *Console) Attached() bool { return c.term != nil }

// Detach stops drawing on the panel. Later lines go to the serial log
// only.
func (c *Console) Detach() { c.term = nil }

func (c *Console) WriteLineString(s string) {
	c.WriteLineBytes([]byte(s))
}

func (c *Console) WriteLineBytes(b []byte) {
	if c.log != nil {
		c.log.WriteLineBytes(b)
	}
	if c.term == nil {
		return
	}
	_, _ = c.term.Write(b)
	_, _ = c.term.Write([]byte("\r\n"))
}
