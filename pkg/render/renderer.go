package render

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/pathtracer/pkg/core"
	"github.com/df07/pathtracer/pkg/integrator"
	"github.com/df07/pathtracer/pkg/scene"
)

// DefaultLogger prints progress to stdout, matching the teacher's
// core.Logger wiring.
type DefaultLogger struct{}

// Printf implements core.Logger.
func (DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// Renderer owns one full render of a scene: it partitions the output
// image into disjoint scanline ranges, one per worker goroutine, each
// with its own independent Sampler so no RNG state is shared across
// goroutines. There is no task queue or channel on the sampling hot
// path — scanline ranges are a static, precomputed partition, since every
// pixel costs roughly the same amount of work and there is nothing to
// load-balance.
type Renderer struct {
	Scene      *scene.Scene
	Integrator integrator.Integrator
	Threads    int
	Logger     core.Logger
	Seed       int64
}

// NewRenderer creates a renderer for sc using pt, defaulting Threads to
// runtime.NumCPU() when threads <= 0.
func NewRenderer(sc *scene.Scene, pt integrator.Integrator, threads int) *Renderer {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &Renderer{Scene: sc, Integrator: pt, Threads: threads, Logger: DefaultLogger{}}
}

// scanlineRange is one worker's disjoint, contiguous set of image rows.
type scanlineRange struct {
	workerID   int
	yStart, yEnd int
}

func partitionScanlines(height, workers int) []scanlineRange {
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	rows := make([]scanlineRange, 0, workers)
	base := height / workers
	remainder := height % workers
	y := 0
	for w := 0; w < workers; w++ {
		rowCount := base
		if w < remainder {
			rowCount++
		}
		rows = append(rows, scanlineRange{workerID: w, yStart: y, yEnd: y + rowCount})
		y += rowCount
	}
	return rows
}

// Render produces the linear color buffer for the whole image; tone mapping
// happens afterwards, in Buffer.ToImage. Mesh/texture loading that can fail happens before this call, via
// pkg/loaders; the sampling loop itself never returns an error, per §7's
// numerical-degeneracy compensation rules, so the worker fan-out below only
// needs to wait for completion, not collect errors.
func (r *Renderer) Render() (*Buffer, error) {
	cfg := r.Scene.Config
	buffer := NewBuffer(cfg.Width, cfg.Height)

	ranges := partitionScanlines(cfg.Height, r.Threads)

	var completed int64
	var progressMu sync.Mutex
	totalRows := cfg.Height
	start := time.Now()

	var wg sync.WaitGroup
	for _, rng := range ranges {
		rng := rng
		wg.Add(1)
		go func() {
			defer wg.Done()
			sampler := core.NewSampler(r.Seed + int64(rng.workerID))
			for y := rng.yStart; y < rng.yEnd; y++ {
				for x := 0; x < cfg.Width; x++ {
					buffer.Set(x, y, r.samplePixel(x, y, sampler))
				}
				progressMu.Lock()
				completed++
				if r.Logger != nil && completed%32 == 0 {
					r.Logger.Printf("rendered %d/%d rows (%.1fs elapsed)\n", completed, totalRows, time.Since(start).Seconds())
				}
				progressMu.Unlock()
			}
		}()
	}
	wg.Wait()

	return buffer, nil
}

func (r *Renderer) samplePixel(x, y int, sampler *core.Sampler) core.Vec3 {
	cfg := r.Scene.Config
	sum := core.Vec3{}
	for s := 0; s < cfg.SamplesPerPixel; s++ {
		ray := r.Scene.Camera.GetRay(x, y, sampler)
		sum = sum.Add(r.Integrator.RayColor(ray, r.Scene, sampler))
	}
	return sum.Multiply(1.0 / float64(cfg.SamplesPerPixel))
}
