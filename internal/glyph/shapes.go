package glyph

import (
	"fmt"
	"math"

	"deskclock/hal"
)

// segmentSet encodes one region per canvas. Each canvas loses the pixels of
// the canvases before it so regions never overlap.
func segmentSet(w, h int, shapes []*Canvas) (Set, error) {
	set := Set{W: w, H: h, Regions: make([]Region, len(shapes))}
	taken := NewCanvas(w, h)
	for i, c := range shapes {
		c.Subtract(taken)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if c.At(x, y) {
					taken.Set(x, y, true)
				}
			}
		}
		if c.Empty() {
			set.Regions[i] = Region{0, 0, 0, 0}
			continue
		}
		r, err := Encode(c, true)
		if err != nil {
			return Set{}, fmt.Errorf("segment %d: %w", i, err)
		}
		set.Regions[i] = r
	}
	return set, nil
}

func polygon(w, h int, pts []Point) *Canvas {
	c := NewCanvas(w, h)
	c.FillPolygon(pts, true)
	return c
}

func hbar(x0, x1, yc, t float64) []Point {
	h := t / 2
	return []Point{
		{x0, yc}, {x0 + h, yc - h}, {x1 - h, yc - h},
		{x1, yc}, {x1 - h, yc + h}, {x0 + h, yc + h},
	}
}

func vbar(xc, y0, y1, t float64) []Point {
	h := t / 2
	return []Point{
		{xc, y0}, {xc + h, y0 + h}, {xc + h, y1 - h},
		{xc, y1}, {xc - h, y1 - h}, {xc - h, y0 + h},
	}
}

// SevenSegment builds a w x h seven segment digit.
func SevenSegment(w, h int) (Set, error) {
	W, H := float64(w), float64(h)
	t := math.Max(2, math.Round(W/5))
	g := math.Max(0.5, t/5)
	ht := t / 2
	mid := H / 2
	shapes := []*Canvas{
		polygon(w, h, hbar(ht+g, W-ht-g, ht, t)),    // A
		polygon(w, h, vbar(W-ht, ht+g, mid-g, t)),   // B
		polygon(w, h, vbar(W-ht, mid+g, H-ht-g, t)), // C
		polygon(w, h, hbar(ht+g, W-ht-g, H-ht, t)),  // D
		polygon(w, h, vbar(ht, mid+g, H-ht-g, t)),   // E
		polygon(w, h, vbar(ht, ht+g, mid-g, t)),     // F
		polygon(w, h, hbar(ht+g, W-ht-g, mid, t)),   // G
	}
	return segmentSet(w, h, shapes)
}

// FourteenSegment builds a w x h fourteen segment character.
func FourteenSegment(w, h int) (Set, error) {
	W, H := float64(w), float64(h)
	t := math.Max(2, math.Round(W/7))
	g := math.Max(0.5, t/5)
	ht := t / 2
	mid, cx := H/2, W/2
	d := math.Max(1.5, t*0.8)
	in := t + g + ht
	shapes := []*Canvas{
		polygon(w, h, hbar(ht+g, W-ht-g, ht, t)),                                             // A
		polygon(w, h, vbar(W-ht, ht+g, mid-g, t)),                                            // B
		polygon(w, h, vbar(W-ht, mid+g, H-ht-g, t)),                                          // C
		polygon(w, h, hbar(ht+g, W-ht-g, H-ht, t)),                                           // D
		polygon(w, h, vbar(ht, mid+g, H-ht-g, t)),                                            // E
		polygon(w, h, vbar(ht, ht+g, mid-g, t)),                                              // F
		polygon(w, h, hbar(ht+g, cx-g, mid, t)),                                              // G1
		polygon(w, h, hbar(cx+g, W-ht-g, mid, t)),                                            // G2
		polygon(w, h, ThickLine(Point{in, in}, Point{cx - ht - g, mid - ht - g}, d)),         // H
		polygon(w, h, vbar(cx, t+g, mid-ht-g, t)),                                            // I
		polygon(w, h, ThickLine(Point{W - in, in}, Point{cx + ht + g, mid - ht - g}, d)),     // J
		polygon(w, h, ThickLine(Point{in, H - in}, Point{cx - ht - g, mid + ht + g}, d)),     // K
		polygon(w, h, vbar(cx, mid+ht+g, H-t-g, t)),                                          // L
		polygon(w, h, ThickLine(Point{W - in, H - in}, Point{cx + ht + g, mid + ht + g}, d)), // M
	}
	return segmentSet(w, h, shapes)
}

// MoonPhase builds a d x d disc cut into four regions by elliptical
// terminators, region 0 leftmost.
func MoonPhase(d int) (Set, error) {
	r := float64(d) / 2
	const k, gap = 0.55, 0.6
	shapes := []*Canvas{NewCanvas(d, d), NewCanvas(d, d), NewCanvas(d, d), NewCanvas(d, d)}
	for y := 0; y < d; y++ {
		dy := float64(y) + 0.5 - r
		for x := 0; x < d; x++ {
			dx := float64(x) + 0.5 - r
			if dx*dx+dy*dy > r*r {
				continue
			}
			b := k * math.Sqrt(r*r-dy*dy)
			switch {
			case dx < -b-gap:
				shapes[0].Set(x, y, true)
			case dx > -b+gap && dx < -gap:
				shapes[1].Set(x, y, true)
			case dx > gap && dx < b-gap:
				shapes[2].Set(x, y, true)
			case dx > b+gap:
				shapes[3].Set(x, y, true)
			}
		}
	}
	return segmentSet(d, d, shapes)
}

// Degree symbol regions.
const (
	DegreesMain   = 0 // ring, top bar and upright shared by C and F
	DegreesMiddle = 1 // F only
	DegreesBottom = 2 // C only
)

// Degrees builds the unit symbol: a ring and a letter that reads F with the
// middle region lit and C with the bottom region lit.
func Degrees(w, h int) (Set, error) {
	W, H := float64(w), float64(h)
	t := math.Max(2, math.Round(W/7))
	lx := math.Round(W * 0.45)
	top := math.Round(H * 0.05)
	bot := math.Round(H * 0.6)

	ring := NewCanvas(w, h)
	ro := W * 0.2
	ring.FillEllipse(ro, top+ro, ro, ro, true)
	ring.FillEllipse(ro, top+ro, ro-t*0.8, ro-t*0.8, false)
	ring.FillRect(int(lx), int(top), w-int(lx), int(t), true)
	ring.FillRect(int(lx), int(top), int(t), int(bot-top), true)

	middle := NewCanvas(w, h)
	middle.FillRect(int(lx+t+1), int((top+bot)/2-t/2), int((W-lx)*0.7), int(t), true)

	bottom := NewCanvas(w, h)
	bottom.FillRect(int(lx+t+1), int(bot-t), w-int(lx+t+1), int(t), true)

	return segmentSet(w, h, []*Canvas{ring, middle, bottom})
}

// WeatherIcons holds the pieces composed into the five forecast icons.
type WeatherIcons struct {
	W, H      int
	SunDisc   Region // disc and left rays
	SunRays   Region // right rays, reused as the burst behind clouds
	CloudBody Region
	CloudBase Region
	Drops     Region
	Bolt      Region
	// Burst marks where SunRays go on the cloud icons; only its offset is used.
	Burst Region
}

// NumWeatherIcons is the number of forecast icons, sunny to stormy.
const NumWeatherIcons = 5

// Weather builds the w x h forecast icon pieces.
func Weather(w, h int) (WeatherIcons, error) {
	W, H := float64(w), float64(h)
	t := math.Max(2, math.Round(H/16))
	cx, cy := W/2, H/2
	r := H * 0.22

	disc := NewCanvas(w, h)
	disc.FillEllipse(cx, cy, r, r, true)
	rays := NewCanvas(w, h)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		ca, sa := math.Cos(a), math.Sin(a)
		seg := ThickLine(Point{cx + ca*r*1.35, cy - sa*r*1.35}, Point{cx + ca*r*1.9, cy - sa*r*1.9}, t)
		if ca > 0.1 {
			rays.FillPolygon(seg, true)
		} else {
			disc.FillPolygon(seg, true)
		}
	}

	body := NewCanvas(w, h)
	body.FillEllipse(W*0.34, H*0.56, W*0.16, H*0.2, true)
	body.FillEllipse(W*0.54, H*0.44, W*0.2, H*0.26, true)
	body.FillEllipse(W*0.72, H*0.58, W*0.14, H*0.17, true)
	body.FillRect(int(W*0.2), int(H*0.56), int(W*0.64), int(H*0.18), true)

	base := NewCanvas(w, h)
	base.FillRect(int(W*0.16), int(H*0.78), int(W*0.7), int(t), true)

	drops := NewCanvas(w, h)
	for _, x := range []float64{0.36, 0.5, 0.64} {
		drops.FillPolygon(ThickLine(Point{W * x, H * 0.8}, Point{W * (x - 0.05), H * 0.97}, t), true)
	}

	bolt := polygon(w, h, []Point{
		{W * 0.56, H * 0.74}, {W * 0.42, H * 0.88}, {W * 0.52, H * 0.88},
		{W * 0.46, H}, {W * 0.66, H * 0.83}, {W * 0.56, H * 0.83}, {W * 0.63, H * 0.74},
	})

	icons := WeatherIcons{W: w, H: h}
	var err error
	for _, p := range []struct {
		dst *Region
		c   *Canvas
	}{
		{&icons.SunDisc, disc}, {&icons.SunRays, rays}, {&icons.CloudBody, body},
		{&icons.CloudBase, base}, {&icons.Drops, drops}, {&icons.Bolt, bolt},
	} {
		if *p.dst, err = Encode(p.c, true); err != nil {
			return WeatherIcons{}, fmt.Errorf("weather icon: %w", err)
		}
	}
	icons.Burst = Region{byte(W * 0.74), 0, 0, 0}
	return icons, nil
}

// Paint draws forecast icon idx (0 sunny .. 4 stormy).
func (wi *WeatherIcons) Paint(s hal.Surface, x, y, idx int, c hal.Color) {
	burst := false
	switch idx {
	case 0:
		Paint(s, x, y, wi.SunDisc, c, true)
		Paint(s, x, y, wi.SunRays, c, true)
	case 1:
		Paint(s, x, y, wi.CloudBody, c, true)
		Paint(s, x, y, wi.CloudBase, c, true)
		burst = true
	case 2:
		Paint(s, x, y, wi.CloudBody, c, true)
		Paint(s, x, y, wi.CloudBase, c, true)
	case 3:
		Paint(s, x, y, wi.CloudBody, c, true)
		Paint(s, x, y, wi.Drops, c, true)
		burst = true
	case 4:
		Paint(s, x, y, wi.CloudBody, c, true)
		Paint(s, x, y, wi.Bolt, c, true)
	}
	if burst {
		dx, dy := Offset(wi.Burst)
		Paint(s, x+dx, y+dy, wi.SunRays, c, false)
	}
}

// Bell draws the alarm bell into an h x h canvas.
func Bell(h int) *Canvas {
	H := float64(h)
	c := NewCanvas(h, h)
	c.FillEllipse(H/2, H*0.42, H*0.3, H*0.34, true)
	c.FillRect(int(H*0.2), int(H*0.42), int(H*0.6)+1, int(H*0.3), true)
	c.FillRect(int(H*0.08), int(H*0.7), int(H*0.84)+1, int(math.Max(1, H*0.1)), true)
	c.FillEllipse(H/2, H*0.88, H*0.11, H*0.11, true)
	return c
}
