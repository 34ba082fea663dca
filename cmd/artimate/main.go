// Command artimate runs the bundled demo sketches.
//
//	artimate -sketch blues
//	artimate -sketch boxy -save 1 -out ~/Pictures/boxy
//	artimate -config sketch.yaml -sketch mover -backend ebiten
//	artimate -list
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/artimate/artimate"
	"github.com/artimate/artimate/internal/demo"
	"github.com/artimate/artimate/surface"

	// ebiten carries its own copy of the GLFW C library, so the glfw
	// backend cannot be linked into the same binary.
	_ "github.com/artimate/artimate/backend/ebiten"
	_ "github.com/artimate/artimate/backend/gogpu"
)

func main() {
	var (
		sketch   = flag.String("sketch", "gradient", "demo sketch to run")
		config   = flag.String("config", "", "YAML or TOML config file")
		backend  = flag.String("backend", "", "window backend (default: best available)")
		width    = flag.Int("width", 0, "canvas width")
		height   = flag.Int("height", 0, "canvas height")
		title    = flag.String("title", "", "window title")
		frames   = flag.Int("frames", 0, "stop after this many frames")
		save     = flag.Int("save", 0, "save the first N frames as PNG")
		out      = flag.String("out", "", "output directory for saved frames")
		snapshot = flag.String("snapshot", "", "snapshot shortcut, e.g. super+s")
		noLoop   = flag.Bool("no-loop", false, "draw a single frame")
		list     = flag.Bool("list", false, "list sketches and backends")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		artimate.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *list {
		printList()
		return
	}

	d, ok := demo.Lookup(*sketch)
	if !ok {
		log.Fatalf("unknown sketch %q (try -list)", *sketch)
	}

	b := d.Builder()
	if *config != "" {
		var err error
		if b, err = b.Load(*config); err != nil {
			log.Fatal(err)
		}
	}

	// Only flags given on the command line override the config.
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			b = b.SetBackend(*backend)
		case "width", "height":
			w, h := b.Config().Size()
			if *width > 0 {
				w = *width
			}
			if *height > 0 {
				h = *height
			}
			b = b.SetDims(w, h)
		case "title":
			b = b.SetTitle(*title)
		case "frames":
			b = b.SetFrames(*frames)
		case "save":
			b = b.SetFramesToSave(*save)
		case "out":
			b = b.SetOutputDir(*out)
		case "no-loop":
			if *noLoop {
				b = b.NoLoop()
			}
		case "snapshot":
			key, mods, perr := artimate.ParseShortcut(*snapshot)
			if perr != nil {
				err = perr
				return
			}
			b = b.SetSnapshotKey(key, mods)
		}
	})
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	if err := d.New(cfg).Run(); err != nil {
		log.Fatal(err)
	}
}

func printList() {
	fmt.Println("sketches:")
	for _, d := range demo.All() {
		fmt.Printf("  %-10s %s\n", d.Name, d.Description)
	}
	fmt.Println("backends:")
	available := surface.Available()
	for _, name := range surface.List() {
		state := "unavailable"
		if contains(available, name) {
			state = "available"
		}
		fmt.Printf("  %-10s %s\n", name, state)
	}
	if len(available) > 0 {
		fmt.Printf("default: %s\n", available[0])
	}
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
