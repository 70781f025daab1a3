// Package glsandbox is a small OpenGL rendering sandbox.
//
// It opens a window, compiles a couple of shader programs, draws a tinted
// quad and renders text with either bitmap glyphs (one texture per glyph) or
// multi-channel signed distance field glyphs packed into a shared atlas.
//
// # Packages
//
//   - glyph: the glyph library, a keyed store of per-character metrics and
//     texture placement
//   - typeface: font parsing, faces and outline extraction
//   - raster: bitmap glyph rasterization
//   - msdf: MSDF generation and atlas packing
//   - gfx: window, graphics device and shader program boundaries, with a
//     GLFW/OpenGL implementation in gfx/glfwgl and a recording fake in gfx/gfxtest
//   - textrender: glyph loading, text layout and drawing
//   - app: the application and its render loop
//   - internal/config: TOML configuration
//   - internal/parallel: the worker pool used to build MSDF atlases
//
// # Logging
//
// glsandbox is silent by default. Enable logging with [SetLogger]:
//
//	glsandbox.SetLogger(slog.Default())
package glsandbox
