package render

// Visibility selects, glyph by glyph, whether a formatted field is painted
// in the on colour or the off colour. It has one entry per character of the
// rendered text; separators such as ':' and '.' count as glyphs.
type Visibility []bool

// All returns an n glyph visibility with every entry set to on.
func All(n int, on bool) Visibility {
	v := make(Visibility, n)
	if on {
		for i := range v {
			v[i] = true
		}
	}
	return v
}

// FromBits converts a width bit mask whose most significant bit is glyph
// 0, as used by the fixed banner texts.
func FromBits(mask uint32, width, n int) Visibility {
	v := make(Visibility, n)
	for i := range v {
		if i < width {
			v[i] = mask&(1<<uint(width-1-i)) != 0
		}
	}
	return v
}

// On reports entry i; glyphs past the end are off.
func (v Visibility) On(i int) bool {
	return i >= 0 && i < len(v) && v[i]
}

// Without returns a copy with glyphs from..to-1 turned off.
func (v Visibility) Without(from, to int) Visibility {
	out := append(Visibility(nil), v...)
	for i := max(from, 0); i < to && i < len(out); i++ {
		out[i] = false
	}
	return out
}

// Any reports whether some glyph is on.
func (v Visibility) Any() bool {
	for _, on := range v {
		if on {
			return true
		}
	}
	return false
}
