package placeholder

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNew_SizeAndTransparency(t *testing.T) {
	img := New(128, 256)
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 256 {
		t.Fatalf("size = %v, want 128x256", img.Bounds())
	}
	for _, pt := range [][2]int{{0, 0}, {127, 255}, {64, 128}} {
		if a := img.NRGBAAt(pt[0], pt[1]).A; a != 0 {
			t.Errorf("alpha at (%d,%d) = %d, want 0", pt[0], pt[1], a)
		}
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camping_04_2.png")
	if err := WriteFile(path, 128, 256, 96); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("pHYs")) {
		t.Error("placeholder png lacks resolution metadata")
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 256 {
		t.Errorf("decoded size = %v, want 128x256", img.Bounds())
	}
}
