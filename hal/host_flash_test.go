//go:build !tinygo

package hal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHostFlashNORSemantics(t *testing.T) {
	f := newMemFlash(2 * hostFlashEraseBlockBytes)

	b := make([]byte, 4)
	if _, err := f.ReadAt(b, 100); err != nil {
		t.Fatal(err)
	}
	for _, v := range b {
		if v != 0xFF {
			t.Fatalf("blank image reads %#x", v)
		}
	}

	if _, err := f.WriteAt([]byte{0x0F}, 100); err != nil {
		t.Fatalf("write to erased byte: %v", err)
	}
	if _, err := f.WriteAt([]byte{0xF0}, 100); !errors.Is(err, ErrFlashWriteRequiresErase) {
		t.Fatalf("setting bits without erase = %v, want ErrFlashWriteRequiresErase", err)
	}
	if err := f.Erase(0, hostFlashEraseBlockBytes); err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteAt([]byte{0xF0}, 100); err != nil {
		t.Fatalf("write after erase: %v", err)
	}

	if err := f.Erase(1, hostFlashEraseBlockBytes); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("unaligned erase = %v, want os.ErrInvalid", err)
	}
	if _, err := f.ReadAt(b, f.SizeBytes()); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("read past end = %v, want os.ErrInvalid", err)
	}
}

func TestHostFlashPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flash.bin")
	f := newHostFlash(path)
	if err := f.Erase(0, hostFlashEraseBlockBytes); err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteAt([]byte("C\x01"), 32); err != nil {
		t.Fatal(err)
	}

	g := newHostFlash(path)
	b := make([]byte, 2)
	if _, err := g.ReadAt(b, 32); err != nil {
		t.Fatal(err)
	}
	if string(b) != "C\x01" {
		t.Fatalf("reloaded image holds %q", b)
	}
}

func TestFlashImageFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flash.bin")
	if _, err := CreateFlashImage(path, 100); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("odd size = %v, want os.ErrInvalid", err)
	}

	f, err := CreateFlashImage(path, 2*HostFlashEraseBlockBytes)
	if err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() != 2*HostFlashEraseBlockBytes {
		t.Fatalf("blank image on disk: %v, %v", st, err)
	}
	if _, err := f.WriteAt([]byte{0x43}, 32); err != nil {
		t.Fatal(err)
	}

	g, err := OpenFlashImage(path)
	if err != nil {
		t.Fatal(err)
	}
	b := make([]byte, 2)
	if _, err := g.ReadAt(b, 32); err != nil {
		t.Fatal(err)
	}
	if b[0] != 0x43 || b[1] != 0xFF {
		t.Fatalf("reopened image holds %#v", b)
	}
	if _, err := g.WriteAt([]byte{0xFF}, 32); !errors.Is(err, ErrFlashWriteRequiresErase) {
		t.Fatalf("setting bits in a reopened image = %v", err)
	}

	if _, err := OpenFlashImage(filepath.Join(t.TempDir(), "missing.bin")); err == nil {
		t.Fatal("opened a missing image")
	}
}
