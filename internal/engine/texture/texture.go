// Package texture loads ground albedo images and samples them with bilinear
// filtering and repeat wrapping.
package texture

import (
	"errors"
	"image"

	"golang.org/x/image/draw"

	"github.com/Faultbox/tianguis/pkg/math"
)

// ErrUnsupportedFormat is returned for image formats or variants that cannot
// be decoded.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Sampler is the Texture2D contract consumed by ground shading.
type Sampler interface {
	// Sample returns the RGB color at uv with repeat wrapping.
	Sample(uv math.Vec2) math.Vec3
}

// Texture2D is a decoded image held as linear float RGB for sampling.
type Texture2D struct {
	width, height int
	texels        []math.Vec3
}

// FromImage converts img into a Texture2D.
func FromImage(img image.Image) *Texture2D {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	t := &Texture2D{width: w, height: h, texels: make([]math.Vec3, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := rgba.PixOffset(x, y)
			t.texels[y*w+x] = math.Vec3{
				X: float32(rgba.Pix[i]) / 255,
				Y: float32(rgba.Pix[i+1]) / 255,
				Z: float32(rgba.Pix[i+2]) / 255,
			}
		}
	}
	return t
}

// Size returns the texture dimensions.
func (t *Texture2D) Size() (int, int) {
	return t.width, t.height
}

// At returns the texel at integer coordinates, wrapping out-of-range indices.
func (t *Texture2D) At(x, y int) math.Vec3 {
	x %= t.width
	if x < 0 {
		x += t.width
	}
	y %= t.height
	if y < 0 {
		y += t.height
	}
	return t.texels[y*t.width+x]
}

// Sample bilinearly filters at uv with repeat wrapping. Texel centers sit at
// half-integer coordinates as in GL.
func (t *Texture2D) Sample(uv math.Vec2) math.Vec3 {
	if len(t.texels) == 0 {
		return math.Vec3{}
	}
	uv = uv.Fract()
	fx := uv.X*float32(t.width) - 0.5
	fy := uv.Y*float32(t.height) - 0.5

	x0 := math.Floor(fx)
	y0 := math.Floor(fy)
	tx := fx - x0
	ty := fy - y0
	ix, iy := int(x0), int(y0)

	a := t.At(ix, iy)
	b := t.At(ix+1, iy)
	c := t.At(ix, iy+1)
	d := t.At(ix+1, iy+1)
	return a.Mix(b, tx).Mix(c.Mix(d, tx), ty)
}

// Solid is a single-color sampler, useful as a stand-in texture.
type Solid math.Vec3

// Sample returns the solid color.
func (s Solid) Sample(math.Vec2) math.Vec3 {
	return math.Vec3(s)
}
