package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"runtime"

	"github.com/ayoisaiah/pomo/internal/osutil"
)

const iconSize = 64

var (
	tomato = color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}
	stem   = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}
)

// LoadIcon reads the tray icon from path. Any failure is logged and the
// generated icon is returned instead.
func LoadIcon(path string) []byte {
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			return b
		}

		slog.Warn(
			"unable to load tray icon, using default",
			slog.String("path", path),
			slog.Any("error", err),
		)
	}

	b, err := DefaultIcon()
	if err != nil {
		slog.Error("unable to render tray icon", slog.Any("error", err))
		return nil
	}

	if runtime.GOOS == osutil.Windows {
		return wrapICO(b, iconSize)
	}

	return b
}

// DefaultIcon renders a tomato as a PNG.
func DefaultIcon() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))

	center := float64(iconSize) / 2
	radius := center - 4

	for y := range iconSize {
		for x := range iconSize {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center - 3

			switch {
			case dx*dx+dy*dy <= radius*radius:
				img.Set(x, y, tomato)
			case y < 10 && x >= iconSize/2-3 && x < iconSize/2+3:
				img.Set(x, y, stem)
			}
		}
	}

	var buf bytes.Buffer

	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// wrapICO embeds a PNG in a single image ICO container, which is what the
// Windows tray expects.
func wrapICO(pngData []byte, size int) []byte {
	var buf bytes.Buffer

	// ICONDIR: reserved, type (1 = icon), image count
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})

	dim := uint8(size)
	if size >= 256 {
		dim = 0
	}

	// ICONDIRENTRY
	buf.Write([]byte{dim, dim, 0, 0})
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint16{1, 32})
	_ = binary.Write(&buf, binary.LittleEndian, [2]uint32{
		uint32(len(pngData)),
		6 + 16,
	})

	buf.Write(pngData)

	return buf.Bytes()
}
