// Package msdf generates multi-channel signed distance fields for glyphs and
// packs them into a texture atlas.
//
// An MSDF stores, per pixel and per RGB channel, the distance to the nearest
// outline edge of that channel's color. Edges are colored so that the two
// edges meeting at a sharp corner never share all channels; the median of the
// three channels then reconstructs a distance field whose zero crossing keeps
// corners sharp at any magnification.
//
// # Pipeline
//
//  1. Convert a glyph outline into contours of linear, quadratic and cubic edges
//  2. Color edges at corners sharper than Config.AngleThreshold
//  3. For every pixel, take the closest edge of each channel
//  4. Encode distances as bytes, 128 meaning "on the edge"
//
// Fields are generated at the outline's own pixel scale, padded by
// Config.Range on every side, and packed by an [Atlas] with a shelf
// allocator.
//
// # Shader
//
//	float median(float r, float g, float b) {
//	    return max(min(r, g), min(max(r, g), b));
//	}
//
//	void main() {
//	    vec3 s = texture(msdf, uv).rgb;
//	    float sd = median(s.r, s.g, s.b) - 0.5;
//	    float alpha = clamp(sd * pxRange / fwidth(sd * pxRange) + 0.5, 0.0, 1.0);
//	    color = vec4(textColor, alpha);
//	}
package msdf
