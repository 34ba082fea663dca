package artimate

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/artimate/artimate/input"
)

// fileConfig mirrors Config for config files. Pointer fields distinguish
// "absent" from the zero value so absent fields keep their defaults.
type fileConfig struct {
	Width         *int    `yaml:"width" toml:"width"`
	Height        *int    `yaml:"height" toml:"height"`
	Title         *string `yaml:"title" toml:"title"`
	NoLoop        *bool   `yaml:"no_loop" toml:"no_loop"`
	Frames        *int    `yaml:"frames" toml:"frames"`
	FramesToSave  *int    `yaml:"frames_to_save" toml:"frames_to_save"`
	CursorVisible *bool   `yaml:"cursor_visible" toml:"cursor_visible"`
	OutputDir     *string `yaml:"output_dir" toml:"output_dir"`
	FramePrefix   *string `yaml:"frame_prefix" toml:"frame_prefix"`
	Backend       *string `yaml:"backend" toml:"backend"`
	Snapshot      *string `yaml:"snapshot" toml:"snapshot"`
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file and applies it
// over Defaults. Keys are snake_case versions of the Config fields, plus
// "snapshot" holding a shortcut such as "Super+S" or "" to disable it:
//
//	width: 800
//	height: 600
//	title: Blues
//	frames_to_save: 10
//	output_dir: ~/Pictures/blues
//
// The returned Builder is not validated; call Build.
func LoadConfig(path string) (Builder, error) {
	return Defaults().Load(path)
}

// Load is like LoadConfig but applies the file over b, so fields the file
// leaves out keep the values already set on b.
func (b Builder) Load(path string) (Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Builder{}, fmt.Errorf("artimate: load config: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return Builder{}, fmt.Errorf("artimate: parse %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return Builder{}, fmt.Errorf("artimate: parse %s: %w", path, err)
		}
	default:
		return Builder{}, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	return fc.apply(b)
}

func (fc fileConfig) apply(b Builder) (Builder, error) {
	c := &b.cfg
	setInt(&c.Width, fc.Width)
	setInt(&c.Height, fc.Height)
	setInt(&c.Frames, fc.Frames)
	setInt(&c.FramesToSave, fc.FramesToSave)
	if fc.Title != nil {
		c.Title = *fc.Title
	}
	if fc.NoLoop != nil {
		c.NoLoop = *fc.NoLoop
	}
	if fc.CursorVisible != nil {
		c.CursorVisible = *fc.CursorVisible
	}
	if fc.OutputDir != nil {
		c.OutputDir = *fc.OutputDir
	}
	if fc.FramePrefix != nil {
		c.FramePrefix = *fc.FramePrefix
	}
	if fc.Backend != nil {
		c.Backend = *fc.Backend
	}
	if fc.Snapshot != nil {
		key, mods, err := ParseShortcut(*fc.Snapshot)
		if err != nil {
			return Builder{}, err
		}
		c.SnapshotKey, c.SnapshotMods = key, mods
	}
	return b, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// ParseShortcut parses a shortcut such as "Super+S" or "Control+Shift+F5".
// The last element is the key; the others are modifier names (Shift,
// Control or Ctrl, Alt, Super or Cmd). An empty string returns KeyUnknown.
func ParseShortcut(s string) (input.Key, input.Mods, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return input.KeyUnknown, 0, nil
	}
	parts := strings.Split(s, "+")
	var mods input.Mods
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "shift":
			mods |= input.ModShift
		case "control", "ctrl":
			mods |= input.ModControl
		case "alt", "option":
			mods |= input.ModAlt
		case "super", "cmd", "meta":
			mods |= input.ModSuper
		default:
			return input.KeyUnknown, 0, fmt.Errorf("%w: unknown modifier %q in shortcut %q", ErrInvalidConfig, p, s)
		}
	}
	key, ok := input.ParseKey(strings.TrimSpace(parts[len(parts)-1]))
	if !ok {
		return input.KeyUnknown, 0, fmt.Errorf("%w: unknown key in shortcut %q", ErrInvalidConfig, s)
	}
	return key, mods, nil
}

// expandDir resolves a leading "~" in dir.
func expandDir(dir string) (string, error) {
	p, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("artimate: output dir %q: %w", dir, err)
	}
	return p, nil
}
