package artimate

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats summarizes a finished run.
type Stats struct {
	// Frames is the number of completed ticks.
	Frames int

	// Elapsed is the wall time between the first tick and the stop.
	Elapsed time.Duration

	// FPS is Frames divided by Elapsed, or 0 when no time has passed.
	FPS float64
}

func newStats(frames int, elapsed time.Duration) Stats {
	s := Stats{Frames: frames, Elapsed: elapsed}
	if secs := elapsed.Seconds(); secs > 0 {
		s.FPS = float64(frames) / secs
	}
	return s
}

var summaryPrinter = message.NewPrinter(language.English)

// String returns the summary line, for example
// "frames: 1,234  elapsed: 20.57s  fps: 59.99".
func (s Stats) String() string {
	return summaryPrinter.Sprintf("frames: %d  elapsed: %.2fs  fps: %.2f",
		s.Frames, s.Elapsed.Seconds(), s.FPS)
}

func (s Stats) write(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.String())
	return err
}
