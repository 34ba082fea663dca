// Copyright 2026 The Artimate Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Texture errors.
var (
	// ErrNoTextureCreator is returned when the draw context cannot create
	// textures.
	ErrNoTextureCreator = errors.New("gogpu: draw context has no texture creator")

	// ErrNotTexture is returned when the created texture cannot be drawn.
	ErrNotTexture = errors.New("gogpu: created value is not a gpucontext.Texture")

	// ErrPresenterClosed is returned after Close.
	ErrPresenterClosed = errors.New("gogpu: presenter closed")
)

// textureDestroyer matches the gogpu Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// presenter copies frame buffers to a GPU texture and draws it.
//
// The texture is created lazily on the first frame, when a texture creator
// is available, and updated in place on later frames.
//
// presenter is NOT safe for concurrent use.
type presenter struct {
	width   int
	height  int
	texture any
	closed  bool
}

func newPresenter(width, height int) *presenter {
	return &presenter{width: width, height: height}
}

// present uploads pix and draws it at the origin of dc.
func (p *presenter) present(dc gpucontext.TextureDrawer, pix []byte) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if want := p.width * p.height * 4; len(pix) != want {
		return fmt.Errorf("gogpu: buffer is %d bytes, want %d", len(pix), want)
	}

	if p.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		tex, err := creator.NewTextureFromRGBA(p.width, p.height, pix)
		if err != nil {
			return fmt.Errorf("gogpu: NewTextureFromRGBA failed: %w", err)
		}
		// Frames are straight alpha.
		if pt, ok := any(tex).(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(false)
		}
		p.texture = tex
	} else if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(pix); err != nil {
			return fmt.Errorf("gogpu: texture update failed: %w", err)
		}
	}

	gpuTex, ok := p.texture.(gpucontext.Texture)
	if !ok {
		return ErrNotTexture
	}
	return dc.DrawTexture(gpuTex, 0, 0)
}

// Close destroys the texture. Close is idempotent.
func (p *presenter) Close() {
	if p.closed {
		return
	}
	p.closed = true
	if d, ok := p.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	p.texture = nil
}
