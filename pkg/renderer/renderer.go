// Package renderer drives the camera over a world with a pool of row
// workers and collects the result into a canvas.
package renderer

import (
	"os"
	"strconv"
	"sync"

	"prism/pkg/camera"
	"prism/pkg/color"
	"prism/pkg/world"
)

// DefaultThreads is the worker count used when RENDER_THREADS is unset or
// unparsable.
const DefaultThreads = 8

// ThreadsEnv is the environment variable overriding the worker count.
const ThreadsEnv = "RENDER_THREADS"

// Renderer renders a world through a camera. The camera and world are
// shared read-only across workers; the canvas is the only mutable sink and
// each row is flushed into it under a single mutex.
type Renderer struct {
	Camera *camera.Camera
	World  *world.World

	// Threads is the worker pool size, from RENDER_THREADS by default.
	Threads int

	// OnPixel, when set, is called once per finished pixel. It must be
	// safe for concurrent use.
	OnPixel func()

	// OnRow, when set, is called with each finished row after it lands in
	// the canvas, under the canvas lock. The slice is reused by the worker;
	// copy it to retain it.
	OnRow func(y int, row []color.Color)
}

// New creates a renderer for the given camera and world.
func New(cam *camera.Camera, w *world.World) *Renderer {
	return &Renderer{
		Camera:  cam,
		World:   w,
		Threads: threadsFromEnv(),
	}
}

func threadsFromEnv() int {
	value, ok := os.LookupEnv(ThreadsEnv)
	if !ok {
		return DefaultThreads
	}

	threads, err := strconv.Atoi(value)
	if err != nil || threads < 1 {
		return DefaultThreads
	}
	return threads
}

// Render distributes rows across the worker pool and returns the finished
// canvas. Each worker shades a whole row into a local buffer before taking
// the canvas lock, so there is no per-pixel contention. The pool lives for
// the duration of one call.
func (r *Renderer) Render() *Canvas {
	image := NewCanvas(r.Camera.HSize, r.Camera.VSize)

	rows := make(chan int)
	var wg sync.WaitGroup
	var mu sync.Mutex

	threads := r.Threads
	if threads < 1 {
		threads = DefaultThreads
	}

	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			buffer := make([]color.Color, r.Camera.HSize)
			for y := range rows {
				for x := 0; x < r.Camera.HSize; x++ {
					ray := r.Camera.RayForPixel(x, y)
					buffer[x] = r.World.ColorAt(ray, world.RecursionDepth)

					if r.OnPixel != nil {
						r.OnPixel()
					}
				}

				mu.Lock()
				for x, pixel := range buffer {
					image.WritePixel(x, y, pixel)
				}
				if r.OnRow != nil {
					r.OnRow(y, buffer)
				}
				mu.Unlock()
			}
		}()
	}

	for y := 0; y < r.Camera.VSize; y++ {
		rows <- y
	}
	close(rows)

	wg.Wait()
	return image
}
