package marcher3d

import (
	"runtime"
	"strings"
	"sync"
)

// Frame is one rendered character grid. Row 0 is the top of the picture.
type Frame struct {
	Width, Height int
	Cells         []rune
	Intensity     []Real // light per cell, 0 for misses
	Hits          []bool
}

func newFrame(width, height int) *Frame {
	n := width * height
	return &Frame{
		Width:     width,
		Height:    height,
		Cells:     make([]rune, n),
		Intensity: make([]Real, n),
		Hits:      make([]bool, n),
	}
}

func (f *Frame) idx(x, y int) int { return y*f.Width + x }

// At returns the glyph in column x of row y (from the top).
func (f *Frame) At(x, y int) rune { return f.Cells[f.idx(x, y)] }

// Row returns row y (from the top) as a string.
func (f *Frame) Row(y int) string {
	return string(f.Cells[y*f.Width : (y+1)*f.Width])
}

func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.Width + 1) * f.Height)
	for y := 0; y < f.Height; y++ {
		sb.WriteString(f.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Coverage returns the fraction of cells whose primary ray hit a surface.
func (f *Frame) Coverage() Real {
	if len(f.Hits) == 0 {
		return 0
	}
	hits := 0
	for _, h := range f.Hits {
		if h {
			hits++
		}
	}
	return Real(hits) / Real(len(f.Hits))
}

// renderRow fills row y of the frame; j is the row counted from the bottom.
func renderRow(scene *Scene, cam Camera, ramp Ramp, f *Frame, y int) {
	j := f.Height - 1 - y
	for i := 0; i < f.Width; i++ {
		k := f.idx(i, y)
		dir := cam.Ray(i, j, f.Width, f.Height)
		info := March(scene, cam.Origin, dir)
		if !info.Hit() {
			f.Cells[k] = MissGlyph
			continue
		}
		p := cam.Origin.Add(dir.Mul(info.TotalDistance))
		dif := Light(scene, p)
		f.Hits[k] = true
		f.Intensity[k] = dif
		f.Cells[k] = ramp.Glyph(dif)
	}
}

// Render traces one frame. Rows are shared between workers goroutines
// (0 means runtime.NumCPU()); every cell is computed the same way regardless of the split.
func Render(scene *Scene, cam Camera, ramp Ramp, width, height, workers int) *Frame {
	if width <= 0 || height <= 0 {
		panic("frame resolution must be positive")
	}
	if len(ramp) == 0 {
		ramp = DefaultRamp()
	}
	f := newFrame(width, height)

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > height {
		workers = height
	}
	workers = imax(workers, 1)
	DebugLogOnce("Rendering with %d workers (NumCPU=%d)", workers, runtime.NumCPU())

	if workers == 1 {
		for y := 0; y < height; y++ {
			renderRow(scene, cam, ramp, f, y)
		}
	} else {
		rows := make(chan int, height)
		for y := 0; y < height; y++ {
			rows <- y
		}
		close(rows)

		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			// Each worker writes only to the rows it takes
			go func() {
				defer wg.Done()
				for y := range rows {
					renderRow(scene, cam, ramp, f, y)
				}
			}()
		}
		wg.Wait()
	}

	if Debug {
		DebugLog("Rendered %dx%d frame with %d workers, coverage %.3f", width, height, workers, f.Coverage())
		marchStats()
	}
	return f
}
