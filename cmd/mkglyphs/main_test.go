package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"deskclock/hal"
	"deskclock/internal/glyph"
)

func TestSplitByColour(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 10))
	red := color.RGBA{R: 0xFF, A: 0xFF}
	blue := color.RGBA{B: 0xFF, A: 0xFF}
	for y := 1; y < 4; y++ {
		for x := 2; x < 9; x++ {
			img.Set(x, y, red)
		}
	}
	for y := 6; y < 9; y++ {
		img.Set(5, y, blue)
	}

	regions, err := split(img, 0x80, true)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}

	s := hal.NewBufferSurface(12, 10)
	glyph.Paint(s, 0, 0, regions[0], hal.RGB(0xFF, 0xFF, 0xFF), true)
	for y := 0; y < 10; y++ {
		for x := 0; x < 12; x++ {
			want := x >= 2 && x < 9 && y >= 1 && y < 4
			if got := s.At(x, y) != 0; got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSplitEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if _, err := split(img, 0x80, true); !errors.Is(err, glyph.ErrEmpty) {
		t.Fatalf("split of a blank image = %v, want ErrEmpty", err)
	}
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	regions := []glyph.Region{{0x01, 0x02, 0x00}}
	if err := emit(&buf, "icons", "Bell", "bell.png", 16, 16, regions); err != nil {
		t.Fatalf("emit: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"// Code generated by mkglyphs from bell.png; DO NOT EDIT.",
		"package icons",
		`import "deskclock/internal/glyph"`,
		"var Bell = glyph.Set{",
		"{0x01, 0x02, 0x00},",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
