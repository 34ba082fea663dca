package artimate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// exporter writes frames as PNG files into the configured output
// directory, creating it on first use.
type exporter struct {
	dir    string
	prefix string
	w, h   int
	ready  bool
}

func newExporter(cfg Config) *exporter {
	prefix := cfg.FramePrefix
	if prefix == "" {
		prefix = DefaultFramePrefix
	}
	return &exporter{
		dir:    cfg.OutputDir,
		prefix: prefix,
		w:      cfg.Width,
		h:      cfg.Height,
	}
}

// FramePath returns the file a numbered frame is saved to:
// <dir>/<prefix>_0007.png.
func FramePath(dir, prefix string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%04d.png", prefix, frame))
}

// SnapshotPath returns the file a snapshot of frame taken at t is saved
// to: <dir>/<prefix>_snapshot_<unix seconds>_<frame>.png.
func SnapshotPath(dir, prefix string, t time.Time, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_snapshot_%d_%04d.png", prefix, t.Unix(), frame))
}

func (e *exporter) prepare() error {
	if e.ready {
		return nil
	}
	dir, err := expandDir(e.dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // output dir is meant to be shared
		return fmt.Errorf("artimate: create output dir: %w", err)
	}
	e.dir = dir
	e.ready = true
	return nil
}

func (e *exporter) saveFrame(pix []byte, frame int) (string, error) {
	if err := e.prepare(); err != nil {
		return "", err
	}
	return e.write(pix, FramePath(e.dir, e.prefix, frame))
}

func (e *exporter) saveSnapshot(pix []byte, t time.Time, frame int) (string, error) {
	if err := e.prepare(); err != nil {
		return "", err
	}
	return e.write(pix, SnapshotPath(e.dir, e.prefix, t, frame))
}

func (e *exporter) write(pix []byte, path string) (string, error) {
	f, err := FrameFromPix(e.w, e.h, pix)
	if err != nil {
		return "", err
	}
	if err := f.SavePNG(path); err != nil {
		return "", fmt.Errorf("artimate: save %s: %w", path, err)
	}
	return path, nil
}
