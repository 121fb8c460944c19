package output

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/xxxsen/drinkmap/internal/interaction"
	"github.com/xxxsen/drinkmap/internal/render"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	tooltipFontSize = 12
	tooltipPadding  = 10
	tooltipRadius   = 3
	tooltipOpacity  = 0.7
	tooltipLeading  = 1.5
)

var (
	fontOnce sync.Once
	fontData *opentype.Font
	fontErr  error
)

func tooltipFace(scale float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontData, fontErr = opentype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fmt.Errorf("parse tooltip font: %w", fontErr)
	}
	return opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    tooltipFontSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// PNGOptions controls raster output.
type PNGOptions struct {
	Scale   float64
	Now     time.Time
	Tooltip *interaction.Tooltip
}

// RenderPNG rasterizes the scene, and the tooltip when one is visible, and
// writes it as PNG.
func RenderPNG(w io.Writer, scene *render.Scene, canvas Canvas, opts PNGOptions) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ow, oh := canvas.OuterSize()
	dc := gg.NewContext(int(math.Ceil(ow*scale)), int(math.Ceil(oh*scale)))
	dc.SetColor(color.White)
	dc.Clear()

	dc.Scale(scale, scale)
	dc.Translate(canvas.Padding, canvas.Padding)
	dc.SetFillRuleEvenOdd()
	for _, sh := range scene.Shapes() {
		drawShape(dc, sh, sh.StyleAt(opts.Now), scale)
	}
	dc.Identity()

	if opts.Tooltip != nil && opts.Tooltip.Visible {
		if err := drawTooltip(dc, *opts.Tooltip, canvas, scale); err != nil {
			return err
		}
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawShape(dc *gg.Context, sh *render.Shape, st render.Style, scale float64) {
	empty := true
	for _, poly := range sh.Polygons {
		for _, ring := range poly.Rings {
			if len(ring) < 3 {
				continue
			}
			dc.NewSubPath()
			dc.MoveTo(ring[0].X, ring[0].Y)
			for _, v := range ring[1:] {
				dc.LineTo(v.X, v.Y)
			}
			dc.ClosePath()
			empty = false
		}
	}
	if empty {
		dc.ClearPath()
		return
	}
	alpha := uint8(math.Round(clamp01(st.Opacity) * 255))
	fill := sh.Fill.RGBA
	dc.SetColor(color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: alpha})
	dc.FillPreserve()
	dc.SetColor(color.NRGBA{R: st.Stroke.R, G: st.Stroke.G, B: st.Stroke.B, A: alpha})
	// line width is applied in device space
	dc.SetLineWidth(st.StrokeWidth * scale)
	dc.Stroke()
}

func drawTooltip(dc *gg.Context, tip interaction.Tooltip, canvas Canvas, scale float64) error {
	face, err := tooltipFace(scale)
	if err != nil {
		return err
	}
	defer face.Close()
	dc.SetFontFace(face)

	lines := tip.Content.Lines()
	lineHeight := dc.FontHeight() * tooltipLeading
	maxWidth := 0.0
	for _, l := range lines {
		if w, _ := dc.MeasureString(l); w > maxWidth {
			maxWidth = w
		}
	}
	pad := tooltipPadding * scale
	x := (tip.Position.X + canvas.Padding) * scale
	y := (tip.Position.Y + canvas.Padding) * scale
	bw := maxWidth + 2*pad
	bh := lineHeight*float64(len(lines)) + 2*pad

	dc.SetColor(color.NRGBA{A: uint8(math.Round(tooltipOpacity * 255))})
	dc.DrawRoundedRectangle(x, y, bw, bh, tooltipRadius*scale)
	dc.Fill()
	dc.SetColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(math.Round(tooltipOpacity * 255))})
	for i, l := range lines {
		dc.DrawString(l, x+pad, y+pad+lineHeight*float64(i)+dc.FontHeight())
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
