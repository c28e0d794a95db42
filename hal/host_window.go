//go:build !tinygo && cgo

package hal

import (
	"image"

	"deskclock/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Host  HostConfig
	Scale int
}

// RunWindow starts a desktop window that shows the panel and maps mouse and
// keyboard onto the touch overlay and buttons. It blocks until the window
// closes.
//
// Keys: S is SET, A is ADJ, L flips the alarm switch.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	h := newHost(cfg.Host, true)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Desk Clock (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.surface.Width()*cfg.Scale, h.surface.Height()*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	panel   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) poll() {
	g.h.buttons.set(ButtonSet, ebiten.IsKeyPressed(ebiten.KeyS))
	g.h.buttons.set(ButtonAdj, ebiten.IsKeyPressed(ebiten.KeyA))
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.h.buttons.toggle(ButtonAlarm)
	}
	x, y := ebiten.CursorPosition()
	g.h.touch.set(x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
}

func (g *hostGame) Update() error {
	g.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	s := g.h.surface
	w, h := s.Width(), s.Height()
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, w*h*2)
		g.panel = ebiten.NewImage(w, h)
	}

	s.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := colorFromBytes(src[i], src[i+1]).RGB888()
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.panel.WritePixels(g.img.Pix)
	screen.DrawImage(g.panel, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.surface.Width(), g.h.surface.Height()
}
