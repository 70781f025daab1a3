// Package raster renders single glyphs to 8-bit coverage bitmaps.
//
// A [Bitmap] wraps any golang.org/x/image/font.Face, so the opentype and
// freetype backends of package typeface both work. Each glyph is drawn into
// its own tightly cropped *image.Alpha together with the metrics needed to
// place it on a baseline.
package raster
