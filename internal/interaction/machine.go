package interaction

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"github.com/xxxsen/drinkmap/internal/index"
	"github.com/xxxsen/drinkmap/internal/render"
	"go.uber.org/zap"
)

const (
	EnterDuration = 400 * time.Millisecond
	LeaveDuration = 500 * time.Millisecond

	defaultTooltipOffset = 10
)

type Kind int

const (
	Idle Kind = iota
	Hovering
)

func (k Kind) String() string {
	if k == Hovering {
		return "hovering"
	}
	return "idle"
}

// State is the hover focus. Shape is empty while Idle.
type State struct {
	Kind  Kind
	Shape string
}

// IScene is the part of the drawn scene the machine mutates.
type IScene interface {
	Get(name string) (*render.Shape, bool)
	Raise(name string) bool
}

// ILookup resolves tooltip statistics by country name.
type ILookup interface {
	Get(name string) (index.Attrs, bool)
}

type options struct {
	clock   Clock
	logger  *zap.Logger
	offset  float64
	surface ITooltipSurface
}

type Option func(*options)

func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithTooltipOffset sets the distance between pointer and tooltip corner.
func WithTooltipOffset(off float64) Option {
	return func(o *options) {
		o.offset = off
	}
}

// WithSurface mirrors every tooltip change onto s.
func WithSurface(s ITooltipSurface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// Machine owns the hover focus and tooltip. It expects events from a single
// goroutine, in arrival order. Every handler is total: events that do not
// apply to the current state are ignored.
type Machine struct {
	scene   IScene
	lookup  ILookup
	clock   Clock
	logger  *zap.Logger
	offset  float64
	surface ITooltipSurface

	state   State
	tooltip Tooltip
}

func NewMachine(scene IScene, lookup ILookup, opts ...Option) *Machine {
	o := &options{
		clock:  systemClock{},
		offset: defaultTooltipOffset,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logutil.GetLogger(context.Background())
	}
	return &Machine{
		scene:   scene,
		lookup:  lookup,
		clock:   o.clock,
		logger:  o.logger,
		offset:  o.offset,
		surface: o.surface,
	}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Tooltip() Tooltip {
	return m.tooltip
}

// PointerEnter focuses the named shape: it is raised, eased to the hover
// style and the tooltip shows its statistics. A shape still focused from a
// missed leave is released first. The tooltip keeps its last position until
// the next PointerMove; use PointerEnterAt when the pointer is known.
func (m *Machine) PointerEnter(name string) {
	m.enter(name, nil)
}

// PointerEnterAt is PointerEnter with the tooltip placed at the pointer
// before it is shown.
func (m *Machine) PointerEnterAt(name string, x, y float64) {
	m.enter(name, &Position{X: x + m.offset, Y: y + m.offset})
}

func (m *Machine) enter(name string, pos *Position) {
	sh, ok := m.scene.Get(name)
	if !ok {
		m.logger.Debug("pointer enter on unknown shape ignored", zap.String("shape", name))
		return
	}
	now := m.clock.Now()
	if m.state.Kind == Hovering && m.state.Shape != name {
		m.release(now)
	}
	m.scene.Raise(name)
	sh.State = render.StateHovered
	sh.Animate(render.HoverStyle, now, EnterDuration, render.EaseSqrt)

	m.state = State{Kind: Hovering, Shape: name}
	m.tooltip.Visible = true
	m.tooltip.Content = m.content(name)
	if pos != nil {
		m.tooltip.Position = *pos
	}
	if m.surface != nil {
		m.surface.Show(m.tooltip.Content, m.tooltip.Position)
	}
	m.logger.Debug("pointer enter", zap.String("shape", name), zap.Bool("available", m.tooltip.Content.Available()))
}

// PointerMove makes the tooltip follow the pointer, without easing.
func (m *Machine) PointerMove(x, y float64) {
	if m.state.Kind != Hovering {
		return
	}
	m.tooltip.Position = Position{X: x + m.offset, Y: y + m.offset}
	if m.surface != nil {
		m.surface.Show(m.tooltip.Content, m.tooltip.Position)
	}
}

// PointerLeave releases the focus if name is the focused shape.
func (m *Machine) PointerLeave(name string) {
	if m.state.Kind != Hovering || m.state.Shape != name {
		m.logger.Debug("pointer leave ignored", zap.String("shape", name), zap.String("focus", m.state.Shape))
		return
	}
	m.release(m.clock.Now())
	m.logger.Debug("pointer leave", zap.String("shape", name))
}

func (m *Machine) release(now time.Time) {
	if sh, ok := m.scene.Get(m.state.Shape); ok {
		sh.State = render.StateNormal
		sh.Animate(render.BaseStyle, now, LeaveDuration, render.EaseCubicInOut)
	}
	m.state = State{Kind: Idle}
	m.tooltip.Visible = false
	m.tooltip.Content = Content{}
	if m.surface != nil {
		m.surface.Hide()
	}
}

func (m *Machine) content(name string) Content {
	c := Content{Country: name}
	if m.lookup == nil {
		return c
	}
	if attrs, ok := m.lookup.Get(name); ok {
		c.Stats = &attrs
	}
	return c
}
