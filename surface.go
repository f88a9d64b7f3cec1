package limelight

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Surface is the display sink a Spotlight writes to during its per-frame
// layout step. Implementations are opaque to the engine: limelight only sets
// state, it never reads back anything except the caption's measured size.
//
// Enabled gates the whole surface (the overlay included); Visible gates only
// the cutout shape and caption, and is toggled when a focus target moves
// off-screen.
type Surface interface {
	SetEnabled(enabled bool)
	SetVisible(visible bool)
	SetOverlayAlpha(alpha float64)
	SetShape(shape Shape)
	// SetRoundness sets the corner-rounding fraction in [0, 1]; 1 rounds the
	// region into a circle (or capsule), 0 leaves sharp corners.
	SetRoundness(roundness float64)
	SetRegion(region Rect)
	SetCaption(text string)
	SetCaptionPosition(pos Vec2)
	// CaptionSize returns the measured size of the caption box for the
	// current caption text, or the zero vector when there is none.
	CaptionSize() Vec2
	// Dispose releases any display resources. The surface must not be used
	// afterwards.
	Dispose()
}

// whitePixel is a 1x1 white image used as the texture for vector fills.
// Created lazily so that importing limelight never touches the GPU.
var whitePixel *ebiten.Image

func getWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

const captionPad = 6.0

// CanvasSurface is the stock ebiten-backed Surface: a darkened full-screen
// overlay with the spotlight shape erased out of it, plus a caption panel.
// Call Draw from the host's Draw after updating the owning Spotlight.
type CanvasSurface struct {
	width, height int
	buf           *ebiten.Image

	enabled      bool
	visible      bool
	overlayAlpha float64
	shape        Shape
	roundness    float64
	region       Rect
	caption      string
	captionPos   Vec2

	face     font.Face
	disposed bool

	// scratch buffers reused across frames
	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvasSurface creates a surface covering a width x height screen,
// rendering captions with the basic 7x13 face.
func NewCanvasSurface(width, height int) *CanvasSurface {
	return &CanvasSurface{
		width:  width,
		height: height,
		face:   basicfont.Face7x13,
	}
}

// SetFace replaces the caption font face.
func (c *CanvasSurface) SetFace(face font.Face) {
	c.face = face
}

// SetEnabled implements Surface.
func (c *CanvasSurface) SetEnabled(enabled bool) { c.enabled = enabled }

// SetVisible implements Surface.
func (c *CanvasSurface) SetVisible(visible bool) { c.visible = visible }

// SetOverlayAlpha implements Surface.
func (c *CanvasSurface) SetOverlayAlpha(alpha float64) { c.overlayAlpha = alpha }

// SetShape implements Surface.
func (c *CanvasSurface) SetShape(shape Shape) { c.shape = shape }

// SetRoundness implements Surface.
func (c *CanvasSurface) SetRoundness(roundness float64) { c.roundness = roundness }

// SetRegion implements Surface.
func (c *CanvasSurface) SetRegion(region Rect) { c.region = region }

// SetCaption implements Surface.
func (c *CanvasSurface) SetCaption(t string) { c.caption = t }

// SetCaptionPosition implements Surface.
func (c *CanvasSurface) SetCaptionPosition(pos Vec2) { c.captionPos = pos }

// CaptionSize implements Surface.
func (c *CanvasSurface) CaptionSize() Vec2 {
	if c.caption == "" {
		return Vec2{}
	}
	b := text.BoundString(c.face, c.caption)
	return Vec2{
		X: float64(b.Dx()) + 2*captionPad,
		Y: float64(b.Dy()) + 2*captionPad,
	}
}

// Dispose implements Surface.
func (c *CanvasSurface) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	if c.buf != nil {
		c.buf.Deallocate()
		c.buf = nil
	}
	c.vertices = nil
	c.indices = nil
}

// Draw composites the overlay, cutout, and caption onto screen. No-op while
// the surface is disabled or after Dispose.
func (c *CanvasSurface) Draw(screen *ebiten.Image) {
	if c.disposed || !c.enabled || c.overlayAlpha <= 0 {
		return
	}
	if c.buf == nil {
		c.buf = ebiten.NewImage(c.width, c.height)
	}

	a := c.overlayAlpha
	c.buf.Fill(color.RGBA{0, 0, 0, uint8(math.Round(a * 255))})

	if c.visible && c.region.Width > 0 && c.region.Height > 0 {
		c.appendShapePath()
		c.fillPath(c.buf, ebiten.BlendClear, color.White)
	}

	screen.DrawImage(c.buf, nil)

	if c.visible && c.caption != "" {
		c.drawCaption(screen)
	}
}

// appendShapePath rebuilds the scratch path for the current shape and region.
func (c *CanvasSurface) appendShapePath() {
	c.path.Reset()
	r := c.region

	if c.shape == ShapeTriangle {
		c.path.MoveTo(float32(r.X+r.Width/2), float32(r.Y))
		c.path.LineTo(float32(r.X+r.Width), float32(r.Y+r.Height))
		c.path.LineTo(float32(r.X), float32(r.Y+r.Height))
		c.path.Close()
		return
	}

	rad := c.roundness * math.Min(r.Width, r.Height) / 2
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	rd := float32(rad)

	c.path.MoveTo(x+rd, y)
	c.path.LineTo(x+w-rd, y)
	c.path.ArcTo(x+w, y, x+w, y+rd, rd)
	c.path.LineTo(x+w, y+h-rd)
	c.path.ArcTo(x+w, y+h, x+w-rd, y+h, rd)
	c.path.LineTo(x+rd, y+h)
	c.path.ArcTo(x, y+h, x, y+h-rd, rd)
	c.path.LineTo(x, y+rd)
	c.path.ArcTo(x, y, x+rd, y, rd)
	c.path.Close()
}

// fillPath rasterizes the scratch path onto dst with the given blend.
func (c *CanvasSurface) fillPath(dst *ebiten.Image, blend ebiten.Blend, clr color.Color) {
	c.vertices, c.indices = c.path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])

	r, g, b, a := clr.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 0
		c.vertices[i].SrcY = 0
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{
		Blend:     blend,
		AntiAlias: true,
	}
	dst.DrawTriangles(c.vertices, c.indices, getWhitePixel(), op)
}

// drawCaption renders the caption panel and its text.
func (c *CanvasSurface) drawCaption(screen *ebiten.Image) {
	size := c.CaptionSize()
	px, py := float32(c.captionPos.X), float32(c.captionPos.Y)
	vector.DrawFilledRect(screen, px, py, float32(size.X), float32(size.Y),
		color.RGBA{0, 0, 0, 200}, false)

	ascent := c.face.Metrics().Ascent.Ceil()
	text.Draw(screen, c.caption, c.face,
		int(c.captionPos.X+captionPad),
		int(c.captionPos.Y+captionPad)+ascent,
		color.White)
}
