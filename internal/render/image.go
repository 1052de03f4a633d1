package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce   sync.Once
	parsedFont *opentype.Font
	fontErr    error
)

func loadFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		parsedFont, fontErr = opentype.Parse(goregular.TTF)
	})
	return parsedFont, fontErr
}

// ImageCanvas rasterizes onto an RGBA image, used by the video export
// frame loop.
type ImageCanvas struct {
	img   *image.RGBA
	faces map[float64]font.Face
}

func NewImageCanvas(width, height int) (*ImageCanvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	if _, err := loadFont(); err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &ImageCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		faces: make(map[float64]font.Face),
	}, nil
}

// Image exposes the backing frame buffer.
func (c *ImageCanvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with a single color.
func (c *ImageCanvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *ImageCanvas) face(size float64) font.Face {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(parsedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		face = basicfont.Face7x13
	}
	c.faces[size] = face
	return face
}

func (c *ImageCanvas) MeasureText(text string, size float64) float64 {
	advance := font.MeasureString(c.face(size), text)
	return float64(advance) / 64
}

func (c *ImageCanvas) FillRoundedRect(x, y, w, h, radius float64, col color.Color) {
	rect := image.Rect(int(x), int(y), int(x+w), int(y+h))
	mask := roundedMask(rect.Dx(), rect.Dy(), radius)
	draw.DrawMask(c.img, rect, &image.Uniform{C: col}, image.Point{}, mask, image.Point{}, draw.Over)
}

func (c *ImageCanvas) FillText(text string, x, y, size float64, col color.Color, shadow *Shadow) {
	if shadow != nil {
		c.drawString(text, x+shadow.OffsetX, y+shadow.OffsetY, size, shadow.Color)
	}
	c.drawString(text, x, y, size, col)
}

func (c *ImageCanvas) StrokeText(text string, x, y, size float64, col color.Color, width float64) {
	if width <= 0 {
		width = 1
	}
	// outline approximated by offset passes around the glyphs
	for dx := -width; dx <= width; dx += width {
		for dy := -width; dy <= width; dy += width {
			if dx == 0 && dy == 0 {
				continue
			}
			c.drawString(text, x+dx, y+dy, size, col)
		}
	}
}

func (c *ImageCanvas) drawString(text string, x, y, size float64, col color.Color) {
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: col},
		Face: c.face(size),
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	drawer.DrawString(text)
}

// roundedMask builds an alpha mask for a w×h rounded rectangle.
func roundedMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r := radius
	if r > float64(w)/2 {
		r = float64(w) / 2
	}
	if r > float64(h)/2 {
		r = float64(h) / 2
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if insideRounded(float64(x), float64(y), float64(w), float64(h), r) {
				mask.SetAlpha(x, y, color.Alpha{A: 255})
			}
		}
	}
	return mask
}

func insideRounded(x, y, w, h, r float64) bool {
	cx := x
	if x < r {
		cx = r
	} else if x > w-r {
		cx = w - r
	}
	cy := y
	if y < r {
		cy = r
	} else if y > h-r {
		cy = h - r
	}
	if cx == x || cy == y {
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
