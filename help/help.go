// Package help renders the key bindings of a key map as a one-line hint bar
// or as aligned columns.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/smiles"
	"github.com/xqrs/smiles/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

type Help struct {
	*smiles.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            smiles.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// Height returns the number of rows the help needs at the given width.
func (h *Help) Height(width int) int {
	if h.keyMap == nil {
		return 0
	}
	if h.showAll {
		return max(len(h.fullLines(width)), 1)
	}
	return 1
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines []smiles.Line
	if h.showAll {
		lines = h.fullLines(width)
	} else {
		lines = []smiles.Line{h.shortLine(width)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		cursor, remaining := x, width
		for _, s := range lines[row] {
			if s.Text == "" || remaining <= 0 {
				continue
			}
			_, printed := smiles.PrintWithStyle(screen, s.Text, cursor, y+row, remaining, smiles.AlignmentLeft, s.Style)
			cursor += printed
			remaining -= printed
		}
	}
}

// shortLine joins the enabled bindings until the next one would not fit,
// then appends the ellipsis if there is room for it.
func (h *Help) shortLine(maxWidth int) smiles.Line {
	var out smiles.Line
	for _, kb := range h.keyMap.ShortHelp() {
		item := h.item(kb)
		if len(item) == 0 {
			continue
		}
		candidate := append(smiles.Line(nil), out...)
		if len(out) > 0 {
			candidate = append(candidate, smiles.Segment{Text: h.shortSeparator, Style: h.Styles.ShortSeparatorStyle})
		}
		candidate = append(candidate, item...)
		if maxWidth > 0 && lineWidth(candidate) > maxWidth {
			return append(out, h.tail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) item(kb keybind.Keybind) smiles.Line {
	if !kb.Enabled() {
		return nil
	}
	help := kb.Help()
	var line smiles.Line
	if help.Key != "" {
		line = append(line, smiles.Segment{Text: help.Key, Style: h.Styles.ShortKeyStyle})
	}
	if help.Key != "" && help.Desc != "" {
		line = append(line, smiles.Segment{Text: " ", Style: h.Styles.ShortDescStyle})
	}
	if help.Desc != "" {
		line = append(line, smiles.Segment{Text: help.Desc, Style: h.Styles.ShortDescStyle})
	}
	return line
}

// fullLines lays the groups out as columns of "key desc" rows, dropping
// columns that do not fit.
func (h *Help) fullLines(maxWidth int) []smiles.Line {
	type column struct {
		helps      []keybind.Help
		keyW, colW int
	}

	var columns []column
	for _, group := range h.keyMap.FullHelp() {
		var col column
		for _, kb := range group {
			if hp := kb.Help(); kb.Enabled() && (hp.Key != "" || hp.Desc != "") {
				col.helps = append(col.helps, hp)
				col.keyW = max(col.keyW, smiles.StringWidth(hp.Key))
			}
		}
		for _, hp := range col.helps {
			col.colW = max(col.colW, col.keyW+1+smiles.StringWidth(hp.Desc))
		}
		if len(col.helps) > 0 {
			columns = append(columns, col)
		}
	}

	sepW := smiles.StringWidth(h.fullSeparator)
	var included, total, rows int
	for i, col := range columns {
		next := col.colW
		if i > 0 {
			next += sepW
		}
		if maxWidth > 0 && total+next > maxWidth {
			break
		}
		included++
		total += next
		rows = max(rows, len(col.helps))
	}
	if included == 0 {
		if len(columns) == 0 {
			return nil
		}
		return []smiles.Line{{{Text: h.ellipsis, Style: h.Styles.EllipsisStyle}}}
	}

	lines := make([]smiles.Line, rows)
	for row := range rows {
		for c := range included {
			col := columns[c]
			if c > 0 {
				lines[row] = append(lines[row], smiles.Segment{Text: h.fullSeparator, Style: h.Styles.FullSeparatorStyle})
			}
			if row >= len(col.helps) {
				lines[row] = append(lines[row], smiles.Segment{Text: strings.Repeat(" ", col.colW), Style: h.Styles.FullDescStyle})
				continue
			}
			hp := col.helps[row]
			key := hp.Key + strings.Repeat(" ", col.keyW-smiles.StringWidth(hp.Key)+1)
			desc := hp.Desc
			if c < included-1 {
				desc += strings.Repeat(" ", max(col.colW-col.keyW-1-smiles.StringWidth(hp.Desc), 0))
			}
			lines[row] = append(lines[row],
				smiles.Segment{Text: key, Style: h.Styles.FullKeyStyle},
				smiles.Segment{Text: desc, Style: h.Styles.FullDescStyle})
		}
	}
	if included < len(columns) {
		lines[0] = append(lines[0], h.tail(lines[0], maxWidth)...)
	}
	return lines
}

// tail returns the ellipsis marker if it fully fits after current.
func (h *Help) tail(current smiles.Line, maxWidth int) smiles.Line {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := smiles.Line{{Text: " " + h.ellipsis, Style: h.Styles.EllipsisStyle}}
	if lineWidth(current)+lineWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func lineWidth(line smiles.Line) int {
	return smiles.StringWidth(line.Text())
}
