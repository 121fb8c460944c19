package replay

import (
	"context"
	"errors"
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

func square(name string, x0 float64) geo.Feature {
	return geo.Feature{Name: name, Polygons: []geo.Polygon{{Rings: [][]geo.Point{{
		{Lon: x0, Lat: 0}, {Lon: x0 + 10, Lat: 0}, {Lon: x0 + 10, Lat: 10}, {Lon: x0, Lat: 10}, {Lon: x0, Lat: 0},
	}}}}}
}

func newDriver(t *testing.T) (*Driver, *render.Scene, *interaction.ManualClock) {
	t.Helper()
	idx := index.Build([]stats.Record{{Country: "A", Litres: 2}, {Country: "B", Litres: 4}})
	scene, err := render.Bind(context.Background(), []geo.Feature{square("A", 0), square("B", 20)},
		encoder.New(idx.MaxLitres()), idx, identity{})
	require.NoError(t, err)
	clock := interaction.NewManualClock(time.Unix(0, 0))
	m := interaction.NewMachine(scene, idx, interaction.WithClock(clock))
	return NewDriver(scene, m, clock), scene, clock
}

const script = `
events:
  - type: pointer
    x: 5
    y: 5
  - type: pointer
    x: 6
    y: 5
    after: 50ms
  - type: pointer
    x: 15
    y: 5
    after: 100ms
    snapshot: gap.png
  - type: pointer
    x: 25
    y: 5
  - type: out
    after: 1s
`

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(script))
	require.NoError(t, err)
	require.Len(t, s.Events, 5)
	require.Equal(t, 50*time.Millisecond, s.Events[1].After)
	require.Equal(t, "gap.png", s.Events[2].Snapshot)

	_, err = ParseScript([]byte("events:\n  - type: click\n"))
	require.Error(t, err)
	_, err = ParseScript([]byte("events:\n  - type: enter\n"))
	require.Error(t, err)
}

func TestRunPointerScript(t *testing.T) {
	d, scene, clock := newDriver(t)
	s, err := ParseScript([]byte(script))
	require.NoError(t, err)

	var snaps []Frame
	frames, err := d.Run(context.Background(), s, func(ctx context.Context, f Frame) error {
		snaps = append(snaps, f)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, frames, 5)

	require.Equal(t, interaction.State{Kind: interaction.Hovering, Shape: "A"}, frames[0].State)
	require.Equal(t, interaction.Position{X: 15, Y: 15}, frames[0].Tooltip.Position)
	require.Equal(t, interaction.Position{X: 16, Y: 15}, frames[1].Tooltip.Position)

	require.Equal(t, interaction.State{Kind: interaction.Idle}, frames[2].State)
	require.False(t, frames[2].Tooltip.Visible)
	require.Len(t, snaps, 1)
	require.Equal(t, 2, snaps[0].Seq)

	require.Equal(t, interaction.State{Kind: interaction.Hovering, Shape: "B"}, frames[3].State)
	require.Equal(t, "B", frames[3].Tooltip.Content.Country)
	require.Equal(t, interaction.State{Kind: interaction.Idle}, frames[4].State)

	a, _ := scene.Get("A")
	require.Equal(t, render.BaseStyle, a.StyleAt(clock.Now()))
	require.Equal(t, time.Unix(0, 0).Add(1150*time.Millisecond), clock.Now())
}

func TestRunDirectEvents(t *testing.T) {
	d, _, _ := newDriver(t)
	s := &Script{Events: []Event{
		{Type: EventEnter, Shape: "A"},
		{Type: EventMove, X: 1, Y: 2},
		{Type: EventLeave, Shape: "A"},
		{Type: EventEnter, Shape: "B"},
	}}
	frames, err := d.Run(context.Background(), s, nil)
	require.NoError(t, err)
	last := frames[len(frames)-1]
	require.Equal(t, interaction.State{Kind: interaction.Hovering, Shape: "B"}, last.State)
	require.Equal(t, "B", last.Tooltip.Content.Country)
}

func TestRunSnapshotError(t *testing.T) {
	d, _, _ := newDriver(t)
	s := &Script{Events: []Event{{Type: EventOut, Snapshot: "x.png"}}}
	_, err := d.Run(context.Background(), s, func(ctx context.Context, f Frame) error {
		return errors.New("disk full")
	})
	require.Error(t, err)
}

func TestRunEnterAt(t *testing.T) {
	d, _, _ := newDriver(t)
	s, err := ParseScript([]byte(`
events:
  - type: enter
    shape: A
  - type: move
    x: 7
    y: 7
  - type: leave
    shape: A
  - type: enter
    shape: B
    at: [21, 3]
    snapshot: b.png
`))
	require.NoError(t, err)
	var snap Frame
	_, err = d.Run(context.Background(), s, func(ctx context.Context, f Frame) error {
		snap = f
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "B", snap.Tooltip.Content.Country)
	require.Equal(t, interaction.Position{X: 31, Y: 13}, snap.Tooltip.Position)

	_, err = ParseScript([]byte("events:\n  - type: enter\n    shape: A\n    at: [1]\n"))
	require.Error(t, err)
}
