package output

import "github.com/xxxsen/drinkmap/internal/interaction"

// Overlay is an offscreen tooltip surface: it remembers what is shown so a
// frame renderer can paint it.
type Overlay struct {
	visible bool
	content interaction.Content
	pos     interaction.Position
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

func (o *Overlay) Show(content interaction.Content, pos interaction.Position) {
	o.visible = true
	o.content = content
	o.pos = pos
}

func (o *Overlay) Hide() {
	o.visible = false
	o.content = interaction.Content{}
}

// Tooltip returns the overlay state in the machine's representation.
func (o *Overlay) Tooltip() interaction.Tooltip {
	return interaction.Tooltip{Visible: o.visible, Content: o.content, Position: o.pos}
}

var _ interaction.ITooltipSurface = (*Overlay)(nil)
