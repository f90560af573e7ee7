package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/nurusanwe/raytracingLearning-sub000/pkg/core"
)

// renderRows partitions image rows across a pool of workers. Every
// worker owns an independent random generator (seeded from the base
// seed and its worker ID) and a private stats accumulator, merged once
// all rows are done. With a single worker this degrades to the plain
// sequential top-to-bottom render loop.
func (rt *Raytracer) renderRows(fb *Framebuffer, seed int64) (int, core.TraceStats) {
	numWorkers := rt.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > rt.config.Height {
		numWorkers = rt.config.Height
	}

	rows := make(chan int, rt.config.Height)
	for y := 0; y < rt.config.Height; y++ {
		rows <- y
	}
	close(rows)

	var rowsDone atomic.Int64
	workerStats := make([]core.TraceStats, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(workerID)))
			stats := &workerStats[workerID]

			for y := range rows {
				rt.renderRow(y, fb, rng, stats)
				rt.reportProgress(int(rowsDone.Add(1)))
			}
		}(w)
	}
	wg.Wait()

	var total core.TraceStats
	for _, ws := range workerStats {
		total.Merge(ws)
	}
	return numWorkers, total
}

// reportProgress logs completion roughly every tenth of the image
func (rt *Raytracer) reportProgress(rowsDone int) {
	if rt.logger == nil {
		return
	}
	step := rt.config.Height / 10
	if step == 0 {
		step = 1
	}
	if rowsDone%step == 0 || rowsDone == rt.config.Height {
		rt.logger.Printf("rendered %d/%d rows (%.0f%%)",
			rowsDone, rt.config.Height, 100*float64(rowsDone)/float64(rt.config.Height))
	}
}
