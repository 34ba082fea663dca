// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

// Package gogpu provides a GPU window surface for artimate using the
// gogpu/gogpu framework.
//
// Each frame buffer is uploaded into a GPU texture (created on the first
// frame, updated in place afterwards) and drawn at the window origin.
//
// The surface registers itself under the name "gogpu" with priority 100:
//
//	import _ "github.com/artimate/artimate/backend/gogpu"
//
// The window and GPU adapter are created when Run is called, so New only
// fails on bad options. Automatic selection therefore picks gogpu even on a
// machine without a usable adapter, and Run then fails with a startup
// error. Set Config.Backend to "glfw" or "ebiten" on such machines.
package gogpu
