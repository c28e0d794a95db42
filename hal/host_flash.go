//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"os"
	"sync"
)

const (
	hostFlashDefaultPath      = "deskclock.flash"
	hostFlashDefaultSizeBytes = 64 * 1024

	// HostFlashEraseBlockBytes is the erase block of host flash images.
	HostFlashEraseBlockBytes = 4096
	hostFlashEraseBlockBytes = HostFlashEraseBlockBytes
)

var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

// hostFlash simulates a NOR part: erase sets bytes to 0xFF and writes can
// only clear bits. The image lives in memory and, when a path is set, is
// written through to that file after every change.
type hostFlash struct {
	mu   sync.Mutex
	img  []byte
	path string
}

// newHostFlash loads the image at path, or $DESKCLOCK_FLASH_PATH, or
// deskclock.flash. An unreadable or undersized file starts a blank image.
// Only the first erase block is used for settings, so the image is small.
func newHostFlash(path string) *hostFlash {
	if path == "" {
		path = os.Getenv("DESKCLOCK_FLASH_PATH")
	}
	if path == "" {
		path = hostFlashDefaultPath
	}
	f := &hostFlash{path: path}
	if b, err := loadImage(path); err == nil {
		f.img = b
		return f
	}
	f.img = blankImage(hostFlashDefaultSizeBytes)
	return f
}

// newMemFlash returns a blank image that is never persisted.
func newMemFlash(size uint32) *hostFlash {
	return &hostFlash{img: blankImage(size)}
}

// CreateFlashImage writes a blank (erased) image of size bytes to path and
// returns it as a Flash that writes every change through to the file.
func CreateFlashImage(path string, size uint32) (Flash, error) {
	if size == 0 || size%hostFlashEraseBlockBytes != 0 {
		return nil, fmt.Errorf("flash image %q: size %d not a multiple of %d: %w", path, size, hostFlashEraseBlockBytes, os.ErrInvalid)
	}
	f := &hostFlash{img: blankImage(size), path: path}
	if err := f.persist(); err != nil {
		return nil, err
	}
	return f, nil
}

// OpenFlashImage loads an existing image. Changes are written back to path.
func OpenFlashImage(path string) (Flash, error) {
	b, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return &hostFlash{img: b, path: path}, nil
}

func loadImage(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flash image: %w", err)
	}
	if len(b) < hostFlashEraseBlockBytes || len(b)%hostFlashEraseBlockBytes != 0 {
		return nil, fmt.Errorf("flash image %q: size %d not a multiple of %d: %w", path, len(b), hostFlashEraseBlockBytes, os.ErrInvalid)
	}
	return b, nil
}

func blankImage(size uint32) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = 0xFF
	}
	return b
}

func (f *hostFlash) SizeBytes() uint32       { return uint32(len(f.img)) }
func (f *hostFlash) EraseBlockBytes() uint32 { return hostFlashEraseBlockBytes }

func (f *hostFlash) span(off uint32, n int) (int, int, error) {
	if uint64(off) >= uint64(len(f.img)) {
		return 0, 0, fmt.Errorf("flash access at %d: %w", off, os.ErrInvalid)
	}
	end := int(off) + n
	if end > len(f.img) {
		end = len(f.img)
	}
	return int(off), end, nil
}

func (f *hostFlash) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	start, end, err := f.span(off, len(p))
	if err != nil {
		return 0, err
	}
	return copy(p, f.img[start:end]), nil
}

func (f *hostFlash) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	start, end, err := f.span(off, len(p))
	if err != nil {
		return 0, err
	}
	dst := f.img[start:end]
	for i := range dst {
		if dst[i]&p[i] != p[i] {
			return 0, fmt.Errorf("flash write at %d: %w", int(off)+i, ErrFlashWriteRequiresErase)
		}
	}
	n := copy(dst, p)
	return n, f.persist()
}

func (f *hostFlash) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if size == 0 {
		return nil
	}
	if off%hostFlashEraseBlockBytes != 0 || size%hostFlashEraseBlockBytes != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	if uint64(off)+uint64(size) > uint64(len(f.img)) {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	block := f.img[off : off+size]
	for i := range block {
		block[i] = 0xFF
	}
	return f.persist()
}

func (f *hostFlash) persist() error {
	if f.path == "" {
		return nil
	}
	if err := os.WriteFile(f.path, f.img, 0o644); err != nil {
		return fmt.Errorf("flash image %q: %w", f.path, err)
	}
	return nil
}
