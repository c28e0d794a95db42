package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"deskclock/hal"
	"deskclock/internal/glyph"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var panicFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// showPanic logs v with the stack and paints it white on red, wrapped to
// the panel width.
func showPanic(h hal.HAL, v any) {
	lines := []string{"Clock panic:", fmt.Sprintf("%v", v)}
	if stack := debug.Stack(); len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, strings.TrimSpace(line))
			}
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	d := h.Display()
	if d == nil {
		return
	}
	s := d.Surface()
	glyph.Fill(s, 0, 0, s.Width(), s.Height(), hal.RGB(0x80, 0, 0))

	_, charW := tinyfont.LineWidth(panicFont, "0")
	lineH := int(panicFont.GetYAdvance())
	if charW == 0 || lineH <= 0 {
		_ = d.Present()
		return
	}
	cols := s.Width() / int(charW)
	if cols <= 0 {
		cols = 1
	}

	y := 0
	white := hal.RGB(0xFF, 0xFF, 0xFF)
	for _, line := range lines {
		for len(line) > 0 && y+lineH <= s.Height() {
			chunk, rest := takeRunes(line, cols)
			glyph.WriteText(s, panicFont, 0, y, chunk, white)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = d.Present()
}

// takeRunes splits s after n runes.
func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i], s[i:]
		}
		count++
	}
	return s, ""
}
