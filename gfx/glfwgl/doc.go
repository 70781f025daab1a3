// Package glfwgl implements the gfx boundaries with GLFW 3.3 and an
// OpenGL 3.3 core profile context.
//
// GLFW and GL calls must happen on the main OS thread; importing this
// package locks it. Call [Open] from main and keep every gfx call on the
// same goroutine.
package glfwgl
