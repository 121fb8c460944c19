package output

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xxxsen/drinkmap/internal/encoder"
	"github.com/xxxsen/drinkmap/internal/geo"
	"github.com/xxxsen/drinkmap/internal/index"
	"github.com/xxxsen/drinkmap/internal/interaction"
	"github.com/xxxsen/drinkmap/internal/render"
	"github.com/xxxsen/drinkmap/internal/stats"
)

type identity struct{}

func (identity) Project(p geo.Point) (float64, float64) { return p.Lon, p.Lat }

func square(name string, x0, y0, size float64) geo.Feature {
	return geo.Feature{Name: name, Polygons: []geo.Polygon{{Rings: [][]geo.Point{{
		{Lon: x0, Lat: y0}, {Lon: x0 + size, Lat: y0}, {Lon: x0 + size, Lat: y0 + size}, {Lon: x0, Lat: y0 + size}, {Lon: x0, Lat: y0},
	}}}}}
}

func buildScene(t *testing.T) (*render.Scene, *index.Index) {
	t.Helper()
	idx := index.Build([]stats.Record{{Country: "Algeria", Beer: 25, Wine: 14, Litres: 0.7}})
	scene, err := render.Bind(context.Background(),
		[]geo.Feature{square("Algeria", 100, 100, 100), square("Won<der>land", 0, 0, 20)},
		encoder.New(idx.MaxLitres()), idx, identity{})
	require.NoError(t, err)
	return scene, idx
}

func titlesFrom(idx *index.Index) TitleFunc {
	return func(name string) []string {
		c := interaction.Content{Country: name}
		if a, ok := idx.Get(name); ok {
			c.Stats = &a
		}
		return c.Lines()
	}
}

func TestCanvasViewBox(t *testing.T) {
	c := Canvas{Width: 960, Height: 460, Padding: 20}
	require.Equal(t, "-20 -20 1000 500", c.ViewBox())
}

func TestWriteSVG(t *testing.T) {
	scene, idx := buildScene(t)
	var buf bytes.Buffer
	err := WriteSVG(&buf, scene, Canvas{Width: 300, Height: 300, Padding: 10}, time.Now(), titlesFrom(idx))
	require.NoError(t, err)
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "<svg "))
	require.Contains(t, out, `viewBox="-10 -10 320 320"`)
	require.Contains(t, out, `fill="#00441b"`)
	require.Contains(t, out, "stroke:#ffffff;stroke-width:0.5px;opacity:0.8")
	require.Contains(t, out, "Total litres pure alcohol: 0.7")
	require.Contains(t, out, "Won&lt;der&gt;land")
	require.Contains(t, out, interaction.NotAvailableMessage)
	require.Less(t, strings.Index(out, "Algeria"), strings.Index(out, "Won&lt;der&gt;land"), "draw order preserved")
	require.Equal(t, 2, strings.Count(out, "<path "))
}

func TestRenderPNG(t *testing.T) {
	scene, _ := buildScene(t)
	var buf bytes.Buffer
	canvas := Canvas{Width: 300, Height: 300, Padding: 10}
	err := RenderPNG(&buf, scene, canvas, PNGOptions{Scale: 1, Now: time.Now()})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 320, img.Bounds().Dx())
	require.Equal(t, 320, img.Bounds().Dy())

	// Algeria fill #00441b at 0.8 opacity over white
	r, g, b, _ := img.At(160, 160).RGBA()
	require.InDelta(t, 51, float64(r>>8), 3)
	require.InDelta(t, 105, float64(g>>8), 3)
	require.InDelta(t, 73, float64(b>>8), 3)

	r, g, b, _ = img.At(300, 20).RGBA()
	require.Equal(t, []uint32{255, 255, 255}, []uint32{r >> 8, g >> 8, b >> 8}, "background stays white")
}

func TestRenderPNGWithTooltip(t *testing.T) {
	scene, idx := buildScene(t)
	overlay := NewOverlay()
	m := interaction.NewMachine(scene, idx, interaction.WithSurface(overlay))
	m.PointerEnter("Algeria")
	m.PointerMove(20, 200)
	tip := overlay.Tooltip()
	require.True(t, tip.Visible)
	require.Equal(t, m.Tooltip(), tip)

	var plain, withTip bytes.Buffer
	canvas := Canvas{Width: 300, Height: 300, Padding: 10}
	require.NoError(t, RenderPNG(&plain, scene, canvas, PNGOptions{Scale: 2}))
	require.NoError(t, RenderPNG(&withTip, scene, canvas, PNGOptions{Scale: 2, Tooltip: &tip}))
	require.NotEqual(t, plain.Bytes(), withTip.Bytes())

	img, err := png.Decode(&withTip)
	require.NoError(t, err)
	require.Equal(t, 640, img.Bounds().Dx())
	// tooltip box corner sits at (pointer + 10 + padding) * scale, dark over white
	r, _, _, _ := img.At((30+10)*2+4, (210+10)*2+4).RGBA()
	require.Less(t, r>>8, uint32(128))

	m.PointerLeave("Algeria")
	require.False(t, overlay.Tooltip().Visible)
}
