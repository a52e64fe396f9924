package ui

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"math"
)

const iconSize = 64

var (
	iconGreen = color.NRGBA{R: 37, G: 211, B: 102, A: 255}
	iconWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	iconRed   = color.NRGBA{R: 234, G: 67, B: 53, A: 255}
)

// DrawIcon renders the tray and window icon: a green disc holding a white
// speech bubble. With badge set a red dot marks unread activity.
func DrawIcon(size int, badge bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	c := s / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			fy := float64(y) + 0.5

			// Outer disc.
			alpha := coverage(math.Hypot(fx-c, fy-c), s*0.47)
			if alpha == 0 {
				continue
			}
			px := blend(color.NRGBA{}, iconGreen, alpha)

			// Bubble body and its tail towards the lower left.
			inner := coverage(math.Hypot(fx-c, fy-c*0.96), s*0.28)
			if inTriangle(fx, fy, s*0.24, s*0.8, s*0.32, s*0.6, s*0.48, s*0.72) {
				inner = 1
			}
			px = blend(px, iconWhite, inner)

			if badge {
				px = blend(px, iconRed, coverage(math.Hypot(fx-s*0.78, fy-s*0.22), s*0.2))
			}
			img.SetNRGBA(x, y, px)
		}
	}
	return img
}

// coverage is a one pixel antialiased edge for a disc of radius r.
func coverage(d, r float64) float64 {
	switch {
	case d <= r-0.5:
		return 1
	case d >= r+0.5:
		return 0
	default:
		return r + 0.5 - d
	}
}

func inTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	side := func(x1, y1, x2, y2 float64) float64 {
		return (px-x2)*(y1-y2) - (x1-x2)*(py-y2)
	}
	d1 := side(ax, ay, bx, by)
	d2 := side(bx, by, cx, cy)
	d3 := side(cx, cy, ax, ay)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func blend(dst, src color.NRGBA, alpha float64) color.NRGBA {
	if alpha <= 0 {
		return dst
	}
	if dst.A == 0 {
		src.A = uint8(math.Round(alpha * 255))
		return src
	}
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1-alpha) + float64(b)*alpha))
	}
	return color.NRGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: dst.A}
}

// IconPNG encodes DrawIcon as PNG.
func IconPNG(badge bool) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, DrawIcon(iconSize, badge)); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// trayIcon returns data in the format the platform tray expects. Windows
// loads .ico files, which may carry a PNG image directly.
func trayIcon(pngData []byte, goos string) []byte {
	if goos != "windows" {
		return pngData
	}
	var buf bytes.Buffer
	// ICONDIR followed by a single ICONDIRENTRY
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})
	_ = binary.Write(&buf, binary.LittleEndian, struct {
		Width, Height, Colors, Reserved uint8
		Planes, BitCount                uint16
		Size, Offset                    uint32
	}{iconSize, iconSize, 0, 0, 1, 32, uint32(len(pngData)), 22})
	buf.Write(pngData)
	return buf.Bytes()
}
