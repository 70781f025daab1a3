package gfx

import (
	"image"
	"image/draw"
)

// Pixels returns tightly packed texel data for img in the given format.
// FormatRed takes coverage from *image.Alpha and the red channel from
// anything else.
func Pixels(img image.Image, format TextureFormat) (pix []byte, w, h int) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()

	if format == FormatRed {
		if a, ok := img.(*image.Alpha); ok {
			return packRows(a.Pix, a.Stride, a.PixOffset(b.Min.X, b.Min.Y), w, h, 1), w, h
		}
		pix = make([]byte, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				pix[y*w+x] = byte(r >> 8)
			}
		}
		return pix, w, h
	}

	n, ok := img.(*image.NRGBA)
	if !ok {
		n = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(n, n.Rect, img, b.Min, draw.Src)
		b = n.Rect
	}
	return packRows(n.Pix, n.Stride, n.PixOffset(b.Min.X, b.Min.Y), w, h, 4), w, h
}

func packRows(src []byte, stride, off, w, h, bpp int) []byte {
	row := w * bpp
	if stride == row && off == 0 && len(src) == row*h {
		return src
	}
	dst := make([]byte, row*h)
	for y := 0; y < h; y++ {
		copy(dst[y*row:], src[off+y*stride:off+y*stride+row])
	}
	return dst
}
