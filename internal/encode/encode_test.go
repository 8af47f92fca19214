package encode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func TestBytes_PNGCarriesPhysChunk(t *testing.T) {
	data, err := Bytes(testImage(4, 4), ".png", 96)
	if err != nil {
		t.Fatal(err)
	}

	idx := bytes.Index(data, []byte("pHYs"))
	if idx < 0 {
		t.Fatal("no pHYs chunk in encoded png")
	}
	ppmX := binary.BigEndian.Uint32(data[idx+4 : idx+8])
	ppmY := binary.BigEndian.Uint32(data[idx+8 : idx+12])
	if ppmX != 3780 || ppmY != 3780 {
		t.Errorf("pHYs = %dx%d pixels/metre, want 3780x3780 (96 dpi)", ppmX, ppmY)
	}
	if unit := data[idx+12]; unit != 1 {
		t.Errorf("pHYs unit = %d, want 1 (metre)", unit)
	}

	// The stream must still decode: png.Decode verifies the inserted CRC.
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode after pHYs injection: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("decoded size = %v", img.Bounds())
	}
}

func TestBytes_JPEGCarriesJFIFDensity(t *testing.T) {
	data, err := Bytes(testImage(4, 4), ".jpg", 96)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) < 20 || data[2] != 0xFF || data[3] != 0xE0 {
		t.Fatal("no APP0 segment after SOI")
	}
	if !bytes.Equal(data[6:11], []byte{'J', 'F', 'I', 'F', 0}) {
		t.Fatalf("APP0 identifier = % x", data[6:11])
	}
	if unit := data[13]; unit != 1 {
		t.Errorf("density unit = %d, want 1 (dpi)", unit)
	}
	xd := binary.BigEndian.Uint16(data[14:16])
	yd := binary.BigEndian.Uint16(data[16:18])
	if xd != 96 || yd != 96 {
		t.Errorf("density = %dx%d, want 96x96", xd, yd)
	}

	if _, err := jpeg.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode after APP0 injection: %v", err)
	}
}

func TestBytes_UppercaseExtension(t *testing.T) {
	if _, err := Bytes(testImage(2, 2), ".PNG", 96); err != nil {
		t.Errorf("uppercase extension rejected: %v", err)
	}
}

func TestBytes_UnsupportedFormat(t *testing.T) {
	_, err := Bytes(testImage(2, 2), ".bmp", 96)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSave_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	if err := Save(testImage(8, 8), path, 96); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("decoded size = %v, want 8x8", img.Bounds())
	}
}

func TestSave_UnwritablePathPropagates(t *testing.T) {
	err := Save(testImage(2, 2), filepath.Join(t.TempDir(), "missing", "tile.png"), 96)
	if err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
