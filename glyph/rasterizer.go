// Package glyph rasterizes words into RGBA buffers with the Go font family.
package glyph

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/pthm-cable/glyphfield/config"
	"github.com/pthm-cable/glyphfield/state"
)

var styleTTF = map[string][]byte{
	"regular":     goregular.TTF,
	"bold":        gobold.TTF,
	"italic":      goitalic.TTF,
	"bold italic": gobolditalic.TTF,
}

// Rasterizer draws centred black text on a transparent canvas.
type Rasterizer struct {
	size           float64
	baselineOffset float64

	fonts map[string]*sfnt.Font

	mu    sync.Mutex
	faces map[string]font.Face
}

// New parses the embedded fonts using the text settings from cfg.
func New(cfg *config.Config) (*Rasterizer, error) {
	r := &Rasterizer{
		size:           cfg.Text.FontSize,
		baselineOffset: cfg.Text.BaselineOffset,
		fonts:          make(map[string]*sfnt.Font, len(styleTTF)),
		faces:          make(map[string]font.Face, len(styleTTF)),
	}
	for style, ttf := range styleTTF {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("parsing %s font: %w", style, err)
		}
		r.fonts[style] = f
	}
	return r, nil
}

// face returns the cached face for a style, creating it on first use.
func (r *Rasterizer) face(style string) (font.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.faces[style]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.fonts[style], &opentype.FaceOptions{
		Size:    r.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s face: %w", style, err)
	}
	r.faces[style] = f
	return f, nil
}

// Rasterize returns a width x height buffer with text drawn in black.
// The text is centred horizontally; its baseline sits at the vertical centre
// plus the configured offset. Empty text yields a transparent buffer.
func (r *Rasterizer) Rasterize(text string, opts state.Options, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if text == "" {
		return img
	}

	face, err := r.face(opts.FontStyle())
	if err != nil {
		// Faces are built from embedded fonts, so this only fails on a bad size
		return img
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: face,
	}
	advance := d.MeasureString(text)
	x := fixed.I(width)/2 - advance/2
	y := fixed.Int26_6((float64(height)/2 + r.baselineOffset) * 64)
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)

	return img
}

// Close releases the cached faces.
func (r *Rasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for style, f := range r.faces {
		f.Close()
		delete(r.faces, style)
	}
	return nil
}
