// Package annotate overlays element bounding boxes and ref labels onto a
// raw screenshot so an agent can relate its compact text listing to what is
// actually on screen.
package annotate

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/qontinui/ui-bridge-mcp/internal/model"
)

// Renderer annotates screenshot bytes. Implementations must degrade rather
// than fail: a rendering problem returns the original bytes unmodified.
type Renderer interface {
	Annotate(img []byte, elements []model.Element, reportedWidth, reportedHeight float64, refs *model.RefManager) []byte
}

// New returns the default renderer.
func New() Renderer {
	return &BoxRenderer{}
}

// Passthrough returns screenshots unmodified. Used where drawing is not
// wanted or not possible.
type Passthrough struct{}

func (Passthrough) Annotate(img []byte, _ []model.Element, _, _ float64, _ *model.RefManager) []byte {
	return img
}

// BoxRenderer decodes a PNG screenshot, draws a red outline around every
// visible element with a bounding box, places the element's ref label just
// above the box, and re-encodes as PNG.
type BoxRenderer struct{}

var (
	boxColor   = color.RGBA{R: 255, A: 255}
	labelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func (BoxRenderer) Annotate(imgBytes []byte, elements []model.Element, reportedWidth, reportedHeight float64, refs *model.RefManager) []byte {
	src, err := png.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		slog.Warn("annotate: cannot decode screenshot, returning original", "error", err)
		return imgBytes
	}

	bounds := src.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, src, bounds.Min, draw.Src)

	// The screenshot is physical pixels while rects are logical (CSS)
	// coordinates, so scale by the reported surface size.
	scaleX, scaleY := 1.0, 1.0
	if reportedWidth > 0 {
		scaleX = float64(bounds.Dx()) / reportedWidth
	}
	if reportedHeight > 0 {
		scaleY = float64(bounds.Dy()) / reportedHeight
	}

	for _, el := range elements {
		r := el.State.Rect
		if r == nil || r.Empty() || !el.State.Visible {
			continue
		}
		ref := refs.Assign(el.ID)

		x := int(r.X * scaleX)
		y := int(r.Y * scaleY)
		w := int(r.Width * scaleX)
		h := int(r.Height * scaleY)

		drawRectangle(rgba, x, y, x+w, y+h, boxColor)
		drawLabel(rgba, ref, x, y)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		slog.Warn("annotate: cannot encode annotated image, returning original", "error", err)
		return imgBytes
	}
	return buf.Bytes()
}

// Label geometry for basicfont.Face7x13.
const (
	glyphWidth  = 7
	glyphHeight = 13
	labelPad    = 2
)

// drawLabel paints a filled chip with the ref text just above (x, y),
// clamped so it never extends past the image's top edge.
func drawLabel(img *image.RGBA, text string, x, y int) {
	tw := len(text) * glyphWidth
	labelY := y - glyphHeight - 2*labelPad
	if labelY < img.Bounds().Min.Y {
		labelY = img.Bounds().Min.Y
	}

	chip := image.Rect(x, labelY, x+tw+2*labelPad, labelY+glyphHeight+2*labelPad)
	chip = chip.Intersect(img.Bounds())
	draw.Draw(img, chip, image.NewUniform(boxColor), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		// Dot is the text baseline, so offset by the ascent.
		Dot: fixed.Point26_6{
			X: fixed.I(x + labelPad),
			Y: fixed.I(labelY + labelPad + basicfont.Face7x13.Ascent),
		},
	}
	d.DrawString(text)
}

// drawRectangle draws a one-pixel outline clamped to the image bounds.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1; x < x2; x++ {
		img.Set(x, y1, c)
		img.Set(x, y2-1, c)
	}
	for y := y1; y < y2; y++ {
		img.Set(x1, y, c)
		img.Set(x2-1, y, c)
	}
}
