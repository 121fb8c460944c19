package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/drinkmap/internal/interaction"
	"github.com/xxxsen/drinkmap/internal/render"
	"go.uber.org/zap"
)

// Frame is the observable state right after one event.
type Frame struct {
	Seq     int
	Event   Event
	Time    time.Time
	State   interaction.State
	Tooltip interaction.Tooltip
}

// Snapshotter is called for events that request a snapshot.
type Snapshotter func(ctx context.Context, f Frame) error

// Driver feeds events into a machine, tracking which shape the pointer is
// over so that raw coordinates turn into enter/move/leave sequences.
type Driver struct {
	scene   *render.Scene
	machine *interaction.Machine
	clock   *interaction.ManualClock
	under   string
}

func NewDriver(scene *render.Scene, machine *interaction.Machine, clock *interaction.ManualClock) *Driver {
	return &Driver{scene: scene, machine: machine, clock: clock}
}

// Apply fires a single event.
func (d *Driver) Apply(ev Event) {
	d.clock.Advance(ev.After)
	switch ev.Type {
	case EventEnter:
		if len(ev.At) == 2 {
			d.machine.PointerEnterAt(ev.Shape, ev.At[0], ev.At[1])
		} else {
			d.machine.PointerEnter(ev.Shape)
		}
		d.under = ev.Shape
	case EventLeave:
		d.machine.PointerLeave(ev.Shape)
		if d.under == ev.Shape {
			d.under = ""
		}
	case EventMove:
		d.machine.PointerMove(ev.X, ev.Y)
	case EventPointer:
		target := ""
		if sh, ok := d.scene.HitTest(ev.X, ev.Y); ok {
			target = sh.Name
		}
		if !d.pointerTo(target, ev.X, ev.Y) && target != "" {
			d.machine.PointerMove(ev.X, ev.Y)
		}
	case EventOut:
		d.pointerTo("", 0, 0)
	}
}

// pointerTo moves the pointer onto target, reporting whether a shape was entered.
func (d *Driver) pointerTo(target string, x, y float64) bool {
	if target == d.under {
		return false
	}
	if d.under != "" {
		d.machine.PointerLeave(d.under)
	}
	d.under = target
	if target == "" {
		return false
	}
	d.machine.PointerEnterAt(target, x, y)
	return true
}

// Run replays the whole script and returns one frame per event.
func (d *Driver) Run(ctx context.Context, s *Script, snap Snapshotter) ([]Frame, error) {
	logger := logutil.GetLogger(ctx)
	frames := make([]Frame, 0, len(s.Events))
	for i, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		d.Apply(ev)
		f := Frame{
			Seq:     i,
			Event:   ev,
			Time:    d.clock.Now(),
			State:   d.machine.State(),
			Tooltip: d.machine.Tooltip(),
		}
		frames = append(frames, f)
		logger.Debug("replay event applied",
			zap.Int("seq", i),
			zap.String("type", ev.Type),
			zap.String("state", f.State.Kind.String()),
			zap.String("focus", f.State.Shape))
		if ev.Snapshot != "" && snap != nil {
			if err := snap(ctx, f); err != nil {
				return frames, fmt.Errorf("snapshot failed, seq:%d, file:%s, err:%w", i, ev.Snapshot, err)
			}
		}
	}
	return frames, nil
}
