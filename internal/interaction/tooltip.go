package interaction

import (
	"strconv"

	"github.com/xxxsen/drinkmap/internal/index"
)

const NotAvailableMessage = "Data not available."

// Position is a pointer or tooltip location in surface coordinates.
type Position struct {
	X float64
	Y float64
}

// Content is what the tooltip says about one country. Stats is nil when the
// country has no statistic record, never a zero-filled placeholder.
type Content struct {
	Country string
	Stats   *index.Attrs
}

func (c Content) Available() bool {
	return c.Stats != nil
}

// Lines renders the tooltip text, one entry per line.
func (c Content) Lines() []string {
	lines := []string{"Country: " + c.Country}
	if c.Stats == nil {
		return append(lines, NotAvailableMessage)
	}
	return append(lines,
		"Total litres pure alcohol: "+formatValue(c.Stats.Litres),
		"Beer servings: "+formatValue(c.Stats.Beer),
		"Wine servings: "+formatValue(c.Stats.Wine),
		"Spirit servings: "+formatValue(c.Stats.Spirit),
	)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Tooltip is the floating overlay state owned by the machine.
type Tooltip struct {
	Visible  bool
	Content  Content
	Position Position
}

// ITooltipSurface displays the tooltip somewhere.
type ITooltipSurface interface {
	Show(content Content, pos Position)
	Hide()
}
