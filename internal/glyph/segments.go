package glyph

import "deskclock/hal"

// Seven segment bits:
//
//	  A
//	F   B
//	  G
//	E   C
//	  D
const (
	SegA uint16 = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

// Fourteen segment bits, A..G shared with the seven segment layout:
//
//	    --A--
//	|F \H |I /J |B
//	  -G1- -G2-
//	|E /K |L \M |C
//	    --D--
const (
	Seg14A uint16 = 1 << iota
	Seg14B
	Seg14C
	Seg14D
	Seg14E
	Seg14F
	Seg14G1
	Seg14G2
	Seg14H
	Seg14I
	Seg14J
	Seg14K
	Seg14L
	Seg14M
)

var sevenSegDigits = [10]uint16{
	0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F,
}

var fourteenSegLetters = [26]uint16{
	0x00F7, 0x128F, 0x0039, 0x120F, 0x00F9, 0x00F1, 0x00BD, 0x00F6, 0x1209,
	0x001E, 0x2470, 0x0038, 0x0536, 0x2136, 0x003F, 0x00F3, 0x203F, 0x20F3,
	0x00ED, 0x1201, 0x003E, 0x0C30, 0x2836, 0x2D00, 0x1500, 0x0C09,
}

var fourteenSegDigits = [10]uint16{
	0x003F, 0x0006, 0x00DB, 0x00CF, 0x00E6, 0x00ED, 0x00FD, 0x0007, 0x00FF, 0x00EF,
}

// Custom marks a seven segment character whose low 7 bits are the segments
// to light, for symbols the digit table lacks.
const Custom = 0x80

// LargeDigitPattern maps '0'..'9'; anything else is blank.
func LargeDigitPattern(ch byte) uint16 {
	if ch >= '0' && ch <= '9' {
		return sevenSegDigits[ch-'0']
	}
	return 0
}

// SmallDigitPattern adds '-' and Custom characters to the digit table.
func SmallDigitPattern(ch byte) uint16 {
	switch {
	case ch >= '0' && ch <= '9':
		return sevenSegDigits[ch-'0']
	case ch == '-':
		return SegG
	case ch&Custom != 0:
		return uint16(ch & 0x7F)
	}
	return 0
}

// CharPattern maps 'A'..'Z' and '0'..'9' onto fourteen segments.
func CharPattern(ch byte) uint16 {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return fourteenSegLetters[ch-'A']
	case ch >= '0' && ch <= '9':
		return fourteenSegDigits[ch-'0']
	}
	return 0
}

// VerySmallCharPattern is CharPattern plus '/'.
func VerySmallCharPattern(ch byte) uint16 {
	if ch == '/' {
		return Seg14J | Seg14K
	}
	return CharPattern(ch)
}

// Set is an ordered list of regions forming one glyph cell; bit i of a
// pattern selects the colour of region i.
type Set struct {
	W, H    int
	Regions []Region
}

// Paint draws every region of the set in on or off colour.
func (g *Set) Paint(s hal.Surface, x, y int, pattern uint16, on, off hal.Color) {
	for i, r := range g.Regions {
		c := off
		if pattern&(1<<i) != 0 {
			c = on
		}
		Paint(s, x, y, r, c, true)
	}
}
