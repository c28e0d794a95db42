//go:build !tinygo

// Command mkglyphs converts a PNG drawing into run-length glyph regions and
// prints them as Go source. Every distinct opaque colour in the drawing
// becomes one region, in order of first appearance.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"

	"deskclock/internal/glyph"
)

func main() {
	var inPath, outPath, pkg, name string
	var bulk bool
	var alpha uint
	flag.StringVar(&inPath, "in", "", "Source PNG.")
	flag.StringVar(&outPath, "out", "", "Output Go file (default stdout).")
	flag.StringVar(&pkg, "pkg", "glyph", "Package name of the output.")
	flag.StringVar(&name, "name", "", "Variable name of the output.")
	flag.BoolVar(&bulk, "bulk", true, "Emit the largest solid rectangle as a bulk fill.")
	flag.UintVar(&alpha, "alpha", 0x80, "Minimum alpha (0..255) of a set pixel.")
	flag.Parse()

	if inPath == "" || name == "" {
		fmt.Fprintln(os.Stderr, "error: -in and -name are required")
		os.Exit(2)
	}

	f, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	img, _, err := image.Decode(f)
	_ = f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: decode %q: %v\n", inPath, err)
		os.Exit(1)
	}

	regions, err := split(img, uint8(alpha), bulk)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %q: %v\n", inPath, err)
		os.Exit(1)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		out, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		defer out.Close()
		w = out
	}
	b := img.Bounds()
	if err := emit(w, pkg, name, inPath, b.Dx(), b.Dy(), regions); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// split draws each colour onto its own canvas and encodes it.
func split(img image.Image, minAlpha uint8, bulk bool) ([]glyph.Region, error) {
	b := img.Bounds()
	var order []color.RGBA
	canvases := map[color.RGBA]*glyph.Canvas{}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c.A < minAlpha {
				continue
			}
			c.A = 0xFF
			cv, ok := canvases[c]
			if !ok {
				cv = glyph.NewCanvas(b.Dx(), b.Dy())
				canvases[c] = cv
				order = append(order, c)
			}
			cv.Set(x-b.Min.X, y-b.Min.Y, true)
		}
	}
	if len(order) == 0 {
		return nil, glyph.ErrEmpty
	}
	regions := make([]glyph.Region, 0, len(order))
	for _, c := range order {
		r, err := glyph.Encode(canvases[c], bulk)
		if err != nil {
			return nil, fmt.Errorf("colour #%02x%02x%02x: %w", c.R, c.G, c.B, err)
		}
		regions = append(regions, r)
	}
	return regions, nil
}

func emit(w io.Writer, pkg, name, src string, width, height int, regions []glyph.Region) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by mkglyphs from %s; DO NOT EDIT.\n\n", src)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	if pkg != "glyph" {
		fmt.Fprintf(&buf, "import \"deskclock/internal/glyph\"\n\n")
	}
	typ := "glyph.Set"
	rtyp := "glyph.Region"
	if pkg == "glyph" {
		typ, rtyp = "Set", "Region"
	}
	fmt.Fprintf(&buf, "var %s = %s{\nW: %d,\nH: %d,\nRegions: []%s{\n", name, typ, width, height, rtyp)
	for _, r := range regions {
		buf.WriteString("{")
		for i, v := range r {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "0x%02X", v)
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("},\n}\n")

	src2, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	_, err = w.Write(src2)
	return err
}
