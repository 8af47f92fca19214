// Package encode serializes raster images to disk in the format implied by
// the destination filename, stamping horizontal and vertical resolution
// (DPI) metadata on the way out. The DPI value is cosmetic with no effect
// on pixel content, but the target engine's asset tooling expects it.
//
// PNG gets a pHYs chunk inserted after IHDR; JPEG gets a JFIF APP0 segment
// with dots-per-inch density inserted after SOI. The base encoding is done
// by the imaging library, so the byte surgery here only ever touches the
// header region of a freshly encoded, well-formed stream.
package encode

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned when the destination extension is not
// one of .png, .jpg or .jpeg.
var ErrUnsupportedFormat = errors.New("unsupported output format (use .png, .jpg or .jpeg)")

// Save writes img to path in the format implied by the extension
// (case-insensitive), with dpi stamped as resolution metadata.
func Save(img image.Image, path string, dpi int) error {
	data, err := Bytes(img, filepath.Ext(path), dpi)
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// Bytes encodes img for the given filename extension with dpi metadata and
// returns the raw file contents. Split out from Save so tests can inspect
// the encoded stream without touching disk.
func Bytes(img image.Image, ext string, dpi int) ([]byte, error) {
	var buf bytes.Buffer
	switch strings.ToLower(ext) {
	case ".png":
		if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
			return nil, err
		}
		return injectPNGDensity(buf.Bytes(), dpi)
	case ".jpg", ".jpeg":
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
			return nil, err
		}
		return injectJPEGDensity(buf.Bytes(), dpi)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// pngHeaderLen is the fixed prefix of every PNG produced by the encoder:
// 8 signature bytes plus the 25-byte IHDR chunk (length, type, 13 data
// bytes, CRC). The pHYs chunk must come after IHDR and before IDAT.
const pngHeaderLen = 8 + 4 + 4 + 13 + 4

// injectPNGDensity inserts a pHYs chunk carrying dpi (converted to pixels
// per metre, unit byte 1) directly after the IHDR chunk.
func injectPNGDensity(data []byte, dpi int) ([]byte, error) {
	if len(data) < pngHeaderLen || string(data[12:16]) != "IHDR" {
		return nil, errors.New("malformed png stream")
	}

	ppm := uint32(math.Round(float64(dpi) / 0.0254))

	chunk := make([]byte, 0, 21)
	chunk = append(chunk, 0, 0, 0, 9) // data length
	chunk = append(chunk, 'p', 'H', 'Y', 's')
	chunk = binary.BigEndian.AppendUint32(chunk, ppm) // pixels per unit, X
	chunk = binary.BigEndian.AppendUint32(chunk, ppm) // pixels per unit, Y
	chunk = append(chunk, 1)                          // unit: metre
	crc := crc32.ChecksumIEEE(chunk[4:])              // CRC covers type + data
	chunk = binary.BigEndian.AppendUint32(chunk, crc)

	out := make([]byte, 0, len(data)+len(chunk))
	out = append(out, data[:pngHeaderLen]...)
	out = append(out, chunk...)
	out = append(out, data[pngHeaderLen:]...)
	return out, nil
}

// injectJPEGDensity inserts a JFIF APP0 segment with dots-per-inch density
// directly after the SOI marker. The stdlib encoder emits no APP0 of its
// own; if one is ever present the stream is returned unchanged rather than
// risking a duplicate.
func injectJPEGDensity(data []byte, dpi int) ([]byte, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, errors.New("malformed jpeg stream")
	}
	if len(data) >= 4 && data[2] == 0xFF && data[3] == 0xE0 {
		return data, nil
	}

	seg := make([]byte, 0, 20)
	seg = append(seg, 0xFF, 0xE0) // APP0 marker
	seg = append(seg, 0x00, 0x10) // segment length (16, marker excluded)
	seg = append(seg, 'J', 'F', 'I', 'F', 0x00)
	seg = append(seg, 0x01, 0x02) // JFIF version 1.02
	seg = append(seg, 0x01)       // density unit: dots per inch
	seg = binary.BigEndian.AppendUint16(seg, uint16(dpi))
	seg = binary.BigEndian.AppendUint16(seg, uint16(dpi))
	seg = append(seg, 0x00, 0x00) // no thumbnail

	out := make([]byte, 0, len(data)+len(seg))
	out = append(out, data[:2]...)
	out = append(out, seg...)
	out = append(out, data[2:]...)
	return out, nil
}
