// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

// Package ebiten provides a window surface for artimate on Ebitengine.
//
// Ticks run inside the game Update call at the default 60 ticks per
// second. Frames are written to an offscreen image with WritePixels and
// scaled to the window in Draw.
//
// The surface registers itself under the name "ebiten" with priority 40:
//
//	import _ "github.com/artimate/artimate/backend/ebiten"
//
// Do not import this package together with backend/glfw: ebiten bundles
// the GLFW C library on desktop platforms other than Windows, and the
// duplicate symbols fail to link.
package ebiten
