package sheet

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writePNG writes a solid-color w×h png fixture and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompose(t *testing.T) {
	dir := t.TempDir()
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	slots := []Slot{
		{Path: writePNG(t, dir, "a_0.png", 128, 256, red)},
		{Placeholder: true},
		{Path: writePNG(t, dir, "a_2.png", 64, 128, blue)}, // half size, gets stretched
	}
	l := NewLayout(len(slots), 8, 128, 256)

	canvas, err := Compose(slots, l)
	if err != nil {
		t.Fatal(err)
	}

	if canvas.Bounds().Dx() != 384 || canvas.Bounds().Dy() != 256 {
		t.Fatalf("canvas = %v, want 384x256", canvas.Bounds())
	}

	if got := canvas.NRGBAAt(5, 5); got != red {
		t.Errorf("cell 0 pixel = %v, want %v", got, red)
	}
	if a := canvas.NRGBAAt(128+5, 5).A; a != 0 {
		t.Errorf("placeholder cell alpha = %d, want 0", a)
	}
	// The undersized tile is stretched to fill its whole 128x256 cell.
	for _, pt := range []image.Point{{256 + 1, 1}, {256 + 126, 254}} {
		if got := canvas.NRGBAAt(pt.X, pt.Y); got != blue {
			t.Errorf("stretched cell pixel at %v = %v, want %v", pt, got, blue)
		}
	}
}

func TestCompose_SecondRowPlacement(t *testing.T) {
	dir := t.TempDir()
	green := color.NRGBA{G: 255, A: 255}

	// Nine slots with maxColumns 8: item 8 lands at row 1, col 0.
	slots := make([]Slot, 9)
	for i := 0; i < 8; i++ {
		slots[i] = Slot{Placeholder: true}
	}
	slots[8] = Slot{Path: writePNG(t, dir, "a_8.png", 16, 32, green)}

	l := NewLayout(len(slots), 8, 16, 32)
	canvas, err := Compose(slots, l)
	if err != nil {
		t.Fatal(err)
	}

	if got := canvas.NRGBAAt(2, 32+2); got != green {
		t.Errorf("pixel in row-1 cell = %v, want %v", got, green)
	}
	if a := canvas.NRGBAAt(2, 2).A; a != 0 {
		t.Errorf("row-0 cell should stay transparent, alpha = %d", a)
	}
}

func TestCompose_MissingFile(t *testing.T) {
	slots := []Slot{{Path: filepath.Join(t.TempDir(), "gone.png")}}
	if _, err := Compose(slots, NewLayout(1, 8, 128, 256)); err == nil {
		t.Fatal("expected error for unreadable source file")
	}
}
