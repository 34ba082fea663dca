// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

// Package glfw provides a window surface for artimate on GLFW 3.3 with an
// OpenGL 2.1 context.
//
// The surface registers itself under the name "glfw" with priority 50.
// Importing the package locks the main goroutine to the main OS thread,
// which GLFW requires:
//
//	import _ "github.com/artimate/artimate/backend/glfw"
//
// Do not import this package together with backend/ebiten. On Linux, the
// BSDs and macOS ebiten compiles its own copy of the GLFW C sources, and
// the two copies collide at link time.
package glfw
