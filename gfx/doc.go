// Package gfx defines the window, device and shader program boundaries the
// sandbox renders through.
//
// The interfaces are small on purpose: a [Window] pumps events and presents
// frames, a [Device] owns GPU objects (programs, textures, meshes) and a
// [Program] sets uniforms. Package glfwgl implements them with GLFW and
// OpenGL 3.3 core; package gfxtest records calls in memory for tests.
package gfx
