package output

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xxxsen/drinkmap/internal/render"
)

// TitleFunc returns the tooltip lines of a shape; nil disables titles.
type TitleFunc func(name string) []string

// WriteSVG serializes the scene in draw order, styled as displayed at now.
// Each path carries a <title> so viewers show the tooltip natively.
func WriteSVG(w io.Writer, scene *render.Scene, canvas Canvas, now time.Time, titles TitleFunc) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="100%%" viewBox="%s">`+"\n", canvas.ViewBox())
	bw.WriteString("<g>\n")
	for _, sh := range scene.Shapes() {
		st := sh.StyleAt(now)
		fmt.Fprintf(bw, `<path data-name="%s" d="%s" fill="%s" style="stroke:%s;stroke-width:%spx;opacity:%s">`,
			escape(sh.Name), sh.Path, sh.Fill.Hex(), st.StrokeHex(), num(st.StrokeWidth), num(st.Opacity))
		if titles != nil {
			if lines := titles(sh.Name); len(lines) > 0 {
				bw.WriteString("<title>")
				bw.WriteString(escape(strings.Join(lines, "\n")))
				bw.WriteString("</title>")
			}
		}
		bw.WriteString("</path>\n")
	}
	bw.WriteString("</g>\n</svg>\n")
	return bw.Flush()
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
