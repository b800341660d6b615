package systems

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/pthm-cable/glyphfield/state"
)

// Rasterizer draws text into an RGBA buffer the size of the canvas.
type Rasterizer interface {
	Rasterize(text string, opts state.Options, width, height int) *image.RGBA
}

// SampleGrid walks img on a grid with the given step and returns every grid
// point whose pixel alpha is non-zero, in row-major order.
// Each grid point is a single-pixel test, not an area average.
func SampleGrid(img *image.RGBA, density int) []image.Point {
	if img == nil || density <= 0 {
		return nil
	}

	b := img.Bounds()
	var points []image.Point
	for y := b.Min.Y; y < b.Max.Y; y += density {
		for x := b.Min.X; x < b.Max.X; x += density {
			// Alpha is the 4th byte of each RGBA sample
			if img.Pix[img.PixOffset(x, y)+3] > 0 {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// ColorPicker chooses a particle color at creation time.
type ColorPicker struct {
	def     color.RGBA
	palette []color.RGBA
	options *state.Options
	rng     *rand.Rand
}

// NewColorPicker creates a picker that reads options.RandomColor on every Pick.
func NewColorPicker(def color.RGBA, palette []color.RGBA, options *state.Options, rng *rand.Rand) *ColorPicker {
	return &ColorPicker{def: def, palette: palette, options: options, rng: rng}
}

// Pick returns a uniform palette entry when random color is on, else the default.
func (c *ColorPicker) Pick() color.RGBA {
	if c.options.RandomColor && len(c.palette) > 0 {
		return c.palette[c.rng.Intn(len(c.palette))]
	}
	return c.def
}

// Scatter gives freshly seeded particles an initial velocity.
// Direction comes from a Perlin noise field so neighbours move together.
type Scatter struct {
	speed float64
	scale float64
	noise *perlin.Perlin
}

// NewScatter creates a scatter source. speed 0 disables it.
func NewScatter(speed, scale float64, seed int64) *Scatter {
	return &Scatter{
		speed: speed,
		scale: scale,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// Velocity returns the initial speed and direction (radians) for a particle at (x, y).
func (s *Scatter) Velocity(x, y float64) (speed, direction float64) {
	if s.speed == 0 {
		return 0, 0
	}
	n := s.noise.Noise2D(x*s.scale, y*s.scale)
	return s.speed, (n + 1) / 2 * 2 * math.Pi
}
