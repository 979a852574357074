package html

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// KPI is one summary card.
type KPI struct {
	Title string
	Value string
	Note  string
	// Color picks the icon tint: blue, green, purple, orange or red.
	Color string
	Icon  string
}

// KPIGrid renders cards in a responsive grid.
func KPIGrid(cards []KPI) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<div class="kpi-grid">`); err != nil {
			return err
		}
		for _, c := range cards {
			if err := writeAll(w,
				`<div class="kpi-card"><span class="kpi-icon kpi-`, esc(c.Color), `">`, esc(c.Icon), `</span>`,
				`<div><p class="kpi-title">`, esc(c.Title), `</p><p class="kpi-value">`, esc(c.Value), `</p>`,
			); err != nil {
				return err
			}
			if c.Note != "" {
				if err := writeAll(w, `<p class="kpi-note">`, esc(c.Note), `</p>`); err != nil {
					return err
				}
			}
			if err := writeAll(w, `</div></div>`); err != nil {
				return err
			}
		}
		return writeAll(w, `</div>`)
	})
}

// PaddedCount renders a count with at least two digits, e.g. 08.
func PaddedCount(n int) string {
	return fmt.Sprintf("%02d", n)
}
