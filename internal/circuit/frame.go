package circuit

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// circleKappa places cubic control points for a quarter-circle arc.
const circleKappa = 0.5522847498

// Frame is a software RGBA surface. Shapes are rasterised with
// anti-aliasing into a scratch mask sized to their bounding box and
// composited with source-over; glow is added on top.
type Frame struct {
	img        *image.RGBA
	z          vector.Rasterizer
	background RGB

	glowOn   bool
	glowBlur float64
	glowCol  RGB
}

func NewFrame(width, height int) *Frame {
	f := &Frame{background: Palette.Background}
	f.Resize(width, height)
	return f
}

// Resize reallocates the pixel buffer. Negative sizes are treated as zero.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

func (f *Frame) Width() int  { return f.img.Rect.Dx() }
func (f *Frame) Height() int { return f.img.Rect.Dy() }

// Pix is the raw RGBA buffer, row-major from the top-left corner.
func (f *Frame) Pix() []byte { return f.img.Pix }

func (f *Frame) Image() *image.RGBA { return f.img }

func (f *Frame) SetBackground(c RGB) { f.background = c }

// Glow reports the current glow state.
func (f *Frame) Glow() (blur float64, col RGB, on bool) {
	return f.glowBlur, f.glowCol, f.glowOn
}

func (f *Frame) Clear() {
	bg := color.RGBA{R: f.background.R, G: f.background.G, B: f.background.B, A: 255}
	draw.Draw(f.img, f.img.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
}

func (f *Frame) SetGlow(blur float64, col RGB) {
	if blur <= 0 {
		f.ResetGlow()
		return
	}
	f.glowOn = true
	f.glowBlur = blur
	f.glowCol = col
}

func (f *Frame) ResetGlow() {
	f.glowOn = false
	f.glowBlur = 0
	f.glowCol = RGB{}
}

// StrokePolyline strokes pts with square caps. Each segment becomes a quad
// with the same winding so overlaps saturate instead of cancelling.
func (f *Frame) StrokePolyline(pts []Point, width float64, col RGB, alpha float64) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	hw := width / 2
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bb := pixelBounds(minX-hw, minY-hw, maxX+hw, maxY+hw)
	f.composite(bb, col, alpha, func(z *vector.Rasterizer, ox, oy float64) {
		for i := 0; i+1 < len(pts); i++ {
			a, b := pts[i], pts[i+1]
			dx, dy := b.X-a.X, b.Y-a.Y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			ux, uy := dx/l*hw, dy/l*hw
			ax, ay := a.X-ux-ox, a.Y-uy-oy
			bx, by := b.X+ux-ox, b.Y+uy-oy
			nx, ny := -uy, ux
			z.MoveTo(float32(ax+nx), float32(ay+ny))
			z.LineTo(float32(bx+nx), float32(by+ny))
			z.LineTo(float32(bx-nx), float32(by-ny))
			z.LineTo(float32(ax-nx), float32(ay-ny))
			z.ClosePath()
		}
	})
}

// FillCircle fills a disc. With glow active an additive halo of radius
// radius+blur is drawn underneath, scaled by the same alpha.
func (f *Frame) FillCircle(center Point, radius float64, col RGB, alpha float64) {
	if radius <= 0 {
		return
	}
	if f.glowOn {
		f.addGlow(center, radius+f.glowBlur, f.glowCol, alpha)
	}
	bb := pixelBounds(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
	f.composite(bb, col, alpha, func(z *vector.Rasterizer, ox, oy float64) {
		cx, cy := center.X-ox, center.Y-oy
		k := radius * circleKappa
		z.MoveTo(float32(cx+radius), float32(cy))
		z.CubeTo(float32(cx+radius), float32(cy+k), float32(cx+k), float32(cy+radius), float32(cx), float32(cy+radius))
		z.CubeTo(float32(cx-k), float32(cy+radius), float32(cx-radius), float32(cy+k), float32(cx-radius), float32(cy))
		z.CubeTo(float32(cx-radius), float32(cy-k), float32(cx-k), float32(cy-radius), float32(cx), float32(cy-radius))
		z.CubeTo(float32(cx+k), float32(cy-radius), float32(cx+radius), float32(cy-k), float32(cx+radius), float32(cy))
		z.ClosePath()
	})
}

// composite rasterises shape into a mask covering bb (clipped to the
// frame) and blends col over the frame through it. Alpha is clamped to
// [0, 1].
func (f *Frame) composite(bb image.Rectangle, col RGB, alpha float64, shape func(z *vector.Rasterizer, ox, oy float64)) {
	bb = bb.Intersect(f.img.Rect)
	if bb.Empty() {
		return
	}
	a := clampByte(clampF(alpha, 0, 1) * 255)
	if a == 0 {
		return
	}
	f.z.Reset(bb.Dx(), bb.Dy())
	shape(&f.z, float64(bb.Min.X), float64(bb.Min.Y))
	src := image.NewUniform(color.NRGBA{R: col.R, G: col.G, B: col.B, A: a})
	f.z.Draw(f.img, bb, src, image.Point{})
}

// addGlow adds a radial light with quadratic falloff, the same curve the
// GL glow sprite uses.
func (f *Frame) addGlow(center Point, radius float64, col RGB, alpha float64) {
	bb := pixelBounds(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius).Intersect(f.img.Rect)
	if bb.Empty() {
		return
	}
	strength := clampF(alpha, 0, 1)
	srcR := float64(col.R) * strength
	srcG := float64(col.G) * strength
	srcB := float64(col.B) * strength
	for py := bb.Min.Y; py < bb.Max.Y; py++ {
		dy := float64(py) + 0.5 - center.Y
		for px := bb.Min.X; px < bb.Max.X; px++ {
			dx := float64(px) + 0.5 - center.X
			falloff := clampF(1-math.Hypot(dx, dy)/radius, 0, 1)
			if falloff == 0 {
				continue
			}
			falloff *= falloff
			o := f.img.PixOffset(px, py)
			f.img.Pix[o+0] = clampByte(float64(f.img.Pix[o+0]) + srcR*falloff)
			f.img.Pix[o+1] = clampByte(float64(f.img.Pix[o+1]) + srcG*falloff)
			f.img.Pix[o+2] = clampByte(float64(f.img.Pix[o+2]) + srcB*falloff)
		}
	}
}

func pixelBounds(x0, y0, x1, y1 float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	)
}

var _ Surface = (*Frame)(nil)
