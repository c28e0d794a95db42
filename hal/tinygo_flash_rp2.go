//go:build tinygo && baremetal && (rp2040 || rp2350)

package hal

import (
	"fmt"
	"machine"
)

// settingsBlocks is the number of erase blocks reserved at the top of flash
// for settings. The firmware image never reaches them.
const settingsBlocks = 1

// rp2Flash exposes the reserved blocks as a zero-based Flash.
type rp2Flash struct {
	base  int64
	block uint32
}

func newRP2Flash() Flash {
	bs := machine.Flash.EraseBlockSize()
	sz := machine.Flash.Size()
	if bs <= 0 || sz < bs*settingsBlocks {
		return rp2Flash{}
	}
	return rp2Flash{base: sz - bs*settingsBlocks, block: uint32(bs)}
}

func (f rp2Flash) SizeBytes() uint32       { return f.block * settingsBlocks }
func (f rp2Flash) EraseBlockBytes() uint32 { return f.block }

func (f rp2Flash) check(off uint32, n int) error {
	if f.block == 0 {
		return ErrNotImplemented
	}
	if uint64(off)+uint64(n) > uint64(f.SizeBytes()) {
		return fmt.Errorf("flash access off=%d len=%d beyond %d bytes", off, n, f.SizeBytes())
	}
	return nil
}

func (f rp2Flash) ReadAt(p []byte, off uint32) (int, error) {
	if err := f.check(off, len(p)); err != nil {
		return 0, err
	}
	n, err := machine.Flash.ReadAt(p, f.base+int64(off))
	if err != nil {
		return n, fmt.Errorf("flash read at %d: %w", off, err)
	}
	return n, nil
}

func (f rp2Flash) WriteAt(p []byte, off uint32) (int, error) {
	if err := f.check(off, len(p)); err != nil {
		return 0, err
	}
	n, err := machine.Flash.WriteAt(p, f.base+int64(off))
	if err != nil {
		return n, fmt.Errorf("flash write at %d: %w", off, err)
	}
	return n, nil
}

func (f rp2Flash) Erase(off, size uint32) error {
	if size == 0 {
		return nil
	}
	if err := f.check(off, int(size)); err != nil {
		return err
	}
	if off%f.block != 0 || size%f.block != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: unaligned", off, size)
	}
	first := (f.base + int64(off)) / int64(f.block)
	return machine.Flash.EraseBlocks(first, int64(size/f.block))
}
