// Package textrender loads glyph libraries onto a gfx.Device and draws
// strings with them.
//
// Two glyph sources exist side by side. [LoadBitmap] rasterizes every code
// into its own single-channel texture. [LoadMSDF] packs multi-channel
// signed distance fields into one atlas, exports it as PNG and uploads the
// reloaded file. A [Renderer] draws either kind; [Layout] is the pure
// placement step underneath it.
package textrender
