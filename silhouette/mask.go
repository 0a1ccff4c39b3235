package silhouette

import "image"

// mask classifies raster coordinates as solid or empty by alpha. It
// normalizes the image to a zero-origin coordinate space so callers can
// index [0,w)x[0,h) regardless of the image's Bounds offset. Anything
// outside that space is empty; the world ends at the image edge.
type mask struct {
	img       image.Image
	nrgba     *image.NRGBA
	rgba      *image.RGBA
	alpha     *image.Alpha
	w, h      int
	threshold uint8
}

func newMask(img image.Image, threshold uint8) *mask {
	m := &mask{
		img:       img,
		w:         img.Bounds().Dx(),
		h:         img.Bounds().Dy(),
		threshold: threshold,
	}
	switch im := img.(type) {
	case *image.NRGBA:
		m.nrgba = im
	case *image.RGBA:
		m.rgba = im
	case *image.Alpha:
		m.alpha = im
	}
	return m
}

// solid reports whether the sample at (x, y) is opaque enough to count.
// The common decoded-PNG layouts read the alpha byte straight out of the
// pixel buffer; anything else goes through the color interface.
func (m *mask) solid(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	var a uint8
	switch {
	case m.nrgba != nil:
		a = m.nrgba.Pix[y*m.nrgba.Stride+x*4+3]
	case m.rgba != nil:
		a = m.rgba.Pix[y*m.rgba.Stride+x*4+3]
	case m.alpha != nil:
		a = m.alpha.Pix[y*m.alpha.Stride+x]
	default:
		b := m.img.Bounds().Min
		_, _, _, a16 := m.img.At(b.X+x, b.Y+y).RGBA()
		a = uint8(a16 >> 8)
	}
	return a > m.threshold
}
