// Package demo holds the sketches bundled with the artimate command.
package demo

import (
	"sort"

	"github.com/artimate/artimate"
)

// Runner is a sketch or app ready to run.
type Runner interface {
	Run() error
	Stats() artimate.Stats
}

// Demo describes a bundled sketch.
type Demo struct {
	// Name selects the demo on the command line.
	Name string

	// Description is shown by -list.
	Description string

	// Configure adjusts the default builder before flags and config files
	// are applied. Nil keeps the defaults.
	Configure func(b artimate.Builder) artimate.Builder

	// New creates the runner for cfg.
	New func(cfg artimate.Config, opts ...artimate.Option) Runner
}

var demos = map[string]Demo{}

func register(d Demo) {
	demos[d.Name] = d
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, bool) {
	d, ok := demos[name]
	return d, ok
}

// All returns every demo sorted by name.
func All() []Demo {
	out := make([]Demo, 0, len(demos))
	for _, d := range demos {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Builder returns the default builder for d.
func (d Demo) Builder() artimate.Builder {
	b := artimate.Defaults().SetTitle(d.Name)
	if d.Configure != nil {
		b = d.Configure(b)
	}
	return b
}
