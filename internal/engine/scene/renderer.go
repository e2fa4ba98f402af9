package scene

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"golang.org/x/image/draw"

	"github.com/Faultbox/tianguis/pkg/math"
)

// bandHeight is the number of rows per render task.
const bandHeight = 8

// band is one render task: rows [y0,y1) of a frame.
type band struct {
	state *State
	img   *image.RGBA
	y0    int
	y1    int
	done  *sync.WaitGroup
}

// Renderer ray casts a State into an image using a pool of workers. Each
// band covers disjoint rows so workers never write the same pixel.
type Renderer struct {
	numWorkers int
	tasks      chan band
	wg         sync.WaitGroup
	closeOnce  sync.Once
}

// NewRenderer starts a renderer with the given worker count. Zero or
// negative selects runtime.NumCPU.
func NewRenderer(workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	r := &Renderer{
		numWorkers: workers,
		tasks:      make(chan band, workers*2),
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.run()
	}
	return r
}

// Workers returns the number of workers.
func (r *Renderer) Workers() int {
	return r.numWorkers
}

// Render shades every pixel of img from the state's camera. The state must
// not be mutated until Render returns.
func (r *Renderer) Render(s *State, img *image.RGBA) {
	h := img.Rect.Dy()
	var done sync.WaitGroup
	for y := 0; y < h; y += bandHeight {
		done.Add(1)
		r.tasks <- band{state: s, img: img, y0: y, y1: min(y+bandHeight, h), done: &done}
	}
	done.Wait()
}

// Close stops the workers. Render must not be called afterwards.
func (r *Renderer) Close() {
	r.closeOnce.Do(func() {
		close(r.tasks)
		r.wg.Wait()
	})
}

func (r *Renderer) run() {
	defer r.wg.Done()
	for b := range r.tasks {
		renderRows(b.state, b.img, b.y0, b.y1)
		b.done.Done()
	}
}

// renderRows shades rows [y0,y1) relative to img.Rect.Min.
func renderRows(s *State, img *image.RGBA, y0, y1 int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rays := s.Camera.Rays(float32(w) / float32(h))
	for y := y0; y < y1; y++ {
		ndcY := 1 - 2*(float32(y)+0.5)/float32(h)
		for x := 0; x < w; x++ {
			ndcX := 2*(float32(x)+0.5)/float32(w) - 1
			col := s.Trace(rays.Origin, rays.Dir(ndcX, ndcY))
			img.SetRGBA(img.Rect.Min.X+x, img.Rect.Min.Y+y, ToRGBA(col))
		}
	}
}

// RenderSerial shades img on the calling goroutine.
func RenderSerial(s *State, img *image.RGBA) {
	renderRows(s, img, 0, img.Rect.Dy())
}

// ToRGBA clamps a linear color to 8-bit.
func ToRGBA(c math.Vec3) color.RGBA {
	c = c.Clamp01()
	return color.RGBA{
		R: uint8(c.X*255 + 0.5),
		G: uint8(c.Y*255 + 0.5),
		B: uint8(c.Z*255 + 0.5),
		A: 255,
	}
}

// FrameSize returns the CPU frame size for a drawable size and render scale.
// Both sides are at least one pixel.
func FrameSize(width, height int, scale float32) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	w := int(float32(width)*scale + 0.5)
	h := int(float32(height)*scale + 0.5)
	return max(w, 1), max(h, 1)
}

// Upscale resizes src to fill dst.
func Upscale(dst *image.RGBA, src image.Image) {
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}
