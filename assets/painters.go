package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sort"
)

// Builtin pieces are painted at startup rather than shipped as binary
// files. Each painter fills an NRGBA canvas with an irregular opaque
// silhouette on a transparent margin; the outline pipeline sees exactly
// what the player sees.
var builtins = []struct {
	id    string
	w, h  int
	paint func(*image.NRGBA)
}{
	{"crate", 96, 96, paintCrate},
	{"plank", 128, 44, paintPlank},
	{"gear", 104, 104, paintGear},
	{"flask", 84, 112, paintFlask},
	{"mug", 100, 88, paintMug},
	{"star", 112, 112, paintStar},
	{"arch", 112, 92, paintArch},
	{"boot", 96, 104, paintBoot},
}

func init() {
	registerBuiltins()
}

func registerBuiltins() {
	for _, b := range builtins {
		img := image.NewNRGBA(image.Rect(0, 0, b.w, b.h))
		b.paint(img)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			panic(fmt.Sprintf("encoding builtin piece %q: %v", b.id, err))
		}
		Register(b.id, buf.Bytes())
	}
}

var (
	woodLight   = color.NRGBA{R: 0xC8, G: 0x96, B: 0x5A, A: 0xFF}
	wood        = color.NRGBA{R: 0xA9, G: 0x74, B: 0x3F, A: 0xFF}
	woodDark    = color.NRGBA{R: 0x7B, G: 0x51, B: 0x2A, A: 0xFF}
	metalLight  = color.NRGBA{R: 0xB8, G: 0xC2, B: 0xCC, A: 0xFF}
	metal       = color.NRGBA{R: 0x8A, G: 0x94, B: 0xA0, A: 0xFF}
	metalDark   = color.NRGBA{R: 0x5A, G: 0x62, B: 0x6E, A: 0xFF}
	glass       = color.NRGBA{R: 0xA8, G: 0xD8, B: 0xE0, A: 0xFF}
	liquid      = color.NRGBA{R: 0x4A, G: 0xB8, B: 0x6A, A: 0xFF}
	ceramic     = color.NRGBA{R: 0xD8, G: 0x5A, B: 0x4A, A: 0xFF}
	ceramicDark = color.NRGBA{R: 0xA8, G: 0x3E, B: 0x32, A: 0xFF}
	gold        = color.NRGBA{R: 0xE8, G: 0xC0, B: 0x40, A: 0xFF}
	goldDark    = color.NRGBA{R: 0xB0, G: 0x8A, B: 0x20, A: 0xFF}
	stone       = color.NRGBA{R: 0x98, G: 0x94, B: 0x8C, A: 0xFF}
	stoneDark   = color.NRGBA{R: 0x6A, G: 0x66, B: 0x60, A: 0xFF}
	leather     = color.NRGBA{R: 0x8A, G: 0x4E, B: 0x2E, A: 0xFF}
	leatherDark = color.NRGBA{R: 0x5E, G: 0x34, B: 0x1E, A: 0xFF}
	sole        = color.NRGBA{R: 0x3A, G: 0x30, B: 0x28, A: 0xFF}
)

func paintCrate(img *image.NRGBA) {
	fillRect(img, 8, 8, 88, 88, wood)
	fillRect(img, 8, 8, 88, 16, woodDark)
	fillRect(img, 8, 80, 88, 88, woodDark)
	fillRect(img, 8, 8, 16, 88, woodDark)
	fillRect(img, 80, 8, 88, 88, woodDark)
	fillPolygon(img,
		[]float64{16, 26, 80, 70},
		[]float64{16, 16, 80, 80},
		woodDark)
	fillCircle(img, 12, 12, 2.5, woodLight)
	fillCircle(img, 84, 12, 2.5, woodLight)
	fillCircle(img, 12, 84, 2.5, woodLight)
	fillCircle(img, 84, 84, 2.5, woodLight)
}

func paintPlank(img *image.NRGBA) {
	fillRect(img, 16, 10, 112, 34, wood)
	fillCircle(img, 16, 22, 12, wood)
	fillCircle(img, 112, 22, 12, wood)
	fillRect(img, 24, 15, 104, 17, woodLight)
	fillRect(img, 24, 26, 104, 28, woodDark)
}

func paintGear(img *image.NRGBA) {
	// Teeth first, then the disc over them, so the rim reads as one
	// piece of metal with a wavy outline.
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		fillCircle(img, 52+38*math.Cos(a), 52+38*math.Sin(a), 11, metal)
	}
	fillCircle(img, 52, 52, 38, metal)
	fillCircle(img, 52, 52, 28, metalDark)
	fillCircle(img, 52, 52, 14, metalLight)
	clearCircle(img, 52, 52, 8)
}

func paintFlask(img *image.NRGBA) {
	fillRect(img, 30, 8, 54, 16, glass)
	fillRect(img, 34, 12, 50, 46, glass)
	fillPolygon(img,
		[]float64{34, 50, 72, 12},
		[]float64{40, 40, 96, 96},
		glass)
	fillRect(img, 12, 92, 72, 104, glass)
	fillPolygon(img,
		[]float64{25, 59, 66, 18},
		[]float64{70, 70, 96, 96},
		liquid)
	fillRect(img, 18, 92, 66, 100, liquid)
	fillCircle(img, 34, 82, 3, glass)
	fillCircle(img, 48, 90, 2.5, glass)
}

func paintMug(img *image.NRGBA) {
	fillRect(img, 12, 12, 68, 80, ceramic)
	fillRect(img, 12, 72, 68, 80, ceramicDark)
	fillRect(img, 12, 28, 68, 40, ceramicDark)
	fillCircle(img, 78, 46, 17, ceramic)
	clearCircle(img, 78, 46, 9)
}

func paintStar(img *image.NRGBA) {
	xs, ys := starPoints(56, 58, 48, 20, 5)
	fillPolygon(img, xs, ys, gold)
	fillCircle(img, 56, 58, 10, goldDark)
	fillCircle(img, 47, 46, 5, woodLight)
}

func paintArch(img *image.NRGBA) {
	fillRect(img, 10, 10, 102, 82, stone)
	fillRect(img, 10, 10, 102, 20, stoneDark)
	fillRect(img, 10, 34, 102, 36, stoneDark)
	fillRect(img, 10, 58, 102, 60, stoneDark)
	clearCircle(img, 56, 96, 34)
}

func paintBoot(img *image.NRGBA) {
	fillRect(img, 14, 8, 54, 72, leather)
	fillRect(img, 14, 56, 82, 96, leather)
	fillCircle(img, 74, 76, 18, leather)
	fillRect(img, 10, 88, 86, 100, sole)
	fillRect(img, 14, 8, 54, 20, leatherDark)
	fillCircle(img, 34, 30, 2.5, leatherDark)
	fillCircle(img, 34, 42, 2.5, leatherDark)
	fillCircle(img, 34, 54, 2.5, leatherDark)
}

// paintFallback draws the missing-artwork tile: a gray box with a bold
// cross, recognizable even stretched to arbitrary aspect ratios.
func paintFallback(img *image.NRGBA) {
	fillRect(img, 0, 0, 32, 32, metalDark)
	fillRect(img, 2, 2, 30, 30, metal)
	fillPolygon(img,
		[]float64{4, 10, 28, 22},
		[]float64{4, 4, 28, 28},
		metalDark)
	fillPolygon(img,
		[]float64{28, 22, 4, 10},
		[]float64{4, 4, 28, 28},
		metalDark)
}

func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func fillCircle(img *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	rr := r * r
	for y := int(cy - r); y <= int(cy+r)+1; y++ {
		for x := int(cx - r); x <= int(cx+r)+1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func clearCircle(img *image.NRGBA, cx, cy, r float64) {
	fillCircle(img, cx, cy, r, color.NRGBA{})
}

// fillPolygon rasterizes a simple polygon with even-odd scanline fill.
func fillPolygon(img *image.NRGBA, xs, ys []float64, c color.NRGBA) {
	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	hits := make([]float64, 0, len(xs))
	for y := int(minY); y <= int(maxY); y++ {
		fy := float64(y) + 0.5
		hits = hits[:0]
		for i := range xs {
			j := (i + 1) % len(xs)
			if (ys[i] <= fy) == (ys[j] <= fy) {
				continue
			}
			t := (fy - ys[i]) / (ys[j] - ys[i])
			hits = append(hits, xs[i]+t*(xs[j]-xs[i]))
		}
		sort.Float64s(hits)
		for k := 0; k+1 < len(hits); k += 2 {
			for x := int(hits[k] + 0.5); x < int(hits[k+1]+0.5); x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

func starPoints(cx, cy, outer, inner float64, spikes int) (xs, ys []float64) {
	for i := 0; i < spikes*2; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(spikes) - math.Pi/2
		xs = append(xs, cx+r*math.Cos(a))
		ys = append(ys, cy+r*math.Sin(a))
	}
	return xs, ys
}
