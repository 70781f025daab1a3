// Package typeface loads TrueType and OpenType fonts and exposes what the
// glyph rasterizers need from them: sized faces and vector outlines.
//
// Faces can be produced by two backends. BackendOpenType uses
// golang.org/x/image/font/opentype and handles both TrueType and CFF
// outlines. BackendFreeType uses github.com/golang/freetype/truetype, a port
// of the FreeType rasterizer that only reads TrueType outlines.
package typeface
