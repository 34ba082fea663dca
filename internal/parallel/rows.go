package parallel

import "sync"

// minBand is the smallest number of rows worth handing to a worker.
const minBand = 8

var (
	sharedOnce sync.Once
	shared     *Pool
)

// Shared returns the process-wide pool, starting it on first use.
func Shared() *Pool {
	sharedOnce.Do(func() { shared = NewPool(0) })
	return shared
}

// Rows calls fn over [0, height) split into contiguous bands, one or more
// per worker, and returns when every band is done. Bands never overlap.
func (p *Pool) Rows(height int, fn func(y0, y1 int)) {
	bands := Bands(height, p.workers)
	if len(bands) <= 1 {
		if height > 0 {
			fn(0, height)
		}
		return
	}
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b[0], b[1]) }
	}
	p.Run(work)
}

// Bands splits [0, height) into at most 2*workers half-open ranges of at
// least minBand rows each, except for a shorter final band.
func Bands(height, workers int) [][2]int {
	if height <= 0 {
		return nil
	}
	n := max(1, min(workers*2, height/minBand))
	size := (height + n - 1) / n
	out := make([][2]int, 0, n)
	for y := 0; y < height; y += size {
		out = append(out, [2]int{y, min(y+size, height)})
	}
	return out
}
