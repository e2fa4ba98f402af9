package debug

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Status is the information shown by the overlay.
type Status struct {
	TimeOfDay  float64
	Visibility float32
	Fire       bool
	Paused     bool
	TimeScale  float64
	FPS        float64
}

// Lines formats the status for display.
func (s Status) Lines() []string {
	fire := "off"
	if s.Fire {
		fire = "on"
	}
	clock := fmt.Sprintf("time %.3f  x%g", s.TimeOfDay, s.TimeScale)
	if s.Paused {
		clock += "  paused"
	}
	return []string{
		clock,
		fmt.Sprintf("sun %.2f  fire %s", s.Visibility, fire),
		fmt.Sprintf("%.0f fps", s.FPS),
	}
}

var (
	panelColor = color.RGBA{0, 0, 0, 140}
	textColor  = color.RGBA{240, 235, 220, 255}
)

// DrawOverlay renders the status panel into the top-left corner of dst.
func DrawOverlay(dst draw.Image, s Status) {
	face := basicfont.Face7x13
	lines := s.Lines()

	lineHeight := face.Metrics().Height.Ceil()
	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(face, l).Ceil())
	}

	const pad = 4
	origin := dst.Bounds().Min
	panel := image.Rect(origin.X, origin.Y, origin.X+width+2*pad, origin.Y+len(lines)*lineHeight+2*pad).Intersect(dst.Bounds())
	draw.Draw(dst, panel, image.NewUniform(panelColor), image.Point{}, draw.Over)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	for i, l := range lines {
		d.Dot = fixed.P(origin.X+pad, origin.Y+pad+(i+1)*lineHeight-face.Metrics().Descent.Ceil())
		d.DrawString(l)
	}
}
