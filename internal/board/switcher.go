package board

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/smiles"
	"github.com/xqrs/smiles/internal/i18n"
)

// switcher is the language toggle in the header row.
type switcher struct {
	*smiles.Box

	current i18n.Language
	changed func(i18n.Language)

	// Label columns as last drawn.
	spans []languageSpan
}

type languageSpan struct {
	lang  i18n.Language
	x, to int
}

func newSwitcher(current i18n.Language, changed func(i18n.Language)) *switcher {
	return &switcher{Box: smiles.NewBox(), current: current, changed: changed}
}

// width returns the columns the switcher needs.
func (s *switcher) width() int {
	w := 0
	for i, lang := range i18n.Languages {
		if i > 0 {
			w += 3
		}
		w += smiles.StringWidth(lang.Name()) + 2
	}
	return w
}

func (s *switcher) set(lang i18n.Language) {
	if lang == s.current {
		return
	}
	s.current = lang
	if s.changed != nil {
		s.changed(lang)
	}
}

// cycle selects the language delta places away in switcher order.
func (s *switcher) cycle(delta int) {
	n := len(i18n.Languages)
	for i, lang := range i18n.Languages {
		if lang == s.current {
			s.set(i18n.Languages[((i+delta)%n+n)%n])
			return
		}
	}
	s.set(i18n.Languages[0])
}

func (s *switcher) Draw(screen tcell.Screen) {
	s.DrawForSubclass(screen, s)
	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	s.spans = s.spans[:0]
	right := x + width
	col := max(x, right-s.width())
	for i, lang := range i18n.Languages {
		if i > 0 {
			_, w := smiles.Print(screen, " | ", col, y, right-col, smiles.AlignmentLeft, smiles.Styles.BorderColor)
			col += w
		}
		style := tcell.StyleDefault.Foreground(smiles.Styles.SecondaryTextColor)
		if lang == s.current {
			style = tcell.StyleDefault.Foreground(smiles.Styles.InverseTextColor).Background(smiles.Styles.PrimaryTextColor).Bold(true)
		}
		if s.HasFocus() && lang == s.current {
			style = style.Underline(true)
		}
		_, w := smiles.PrintWithStyle(screen, " "+lang.Name()+" ", col, y, right-col, smiles.AlignmentLeft, style)
		s.spans = append(s.spans, languageSpan{lang: lang, x: col, to: col + w})
		col += w
	}
}

func (s *switcher) InputHandler(event *tcell.EventKey) smiles.Command {
	switch event.Key() {
	case tcell.KeyLeft:
		s.cycle(-1)
	case tcell.KeyRight, tcell.KeyEnter:
		s.cycle(1)
	case tcell.KeyRune:
		if event.Str() != " " {
			return nil
		}
		s.cycle(1)
	default:
		return nil
	}
	return smiles.RedrawCommand{}
}

func (s *switcher) MouseHandler(action smiles.MouseAction, event *tcell.EventMouse) (smiles.Primitive, smiles.Command) {
	x, y := event.Position()
	if !s.InRect(x, y) || action != smiles.MouseLeftDown {
		return nil, nil
	}
	for _, span := range s.spans {
		if x >= span.x && x < span.to {
			s.set(span.lang)
			break
		}
	}
	return nil, smiles.AppendCommand(smiles.SetFocusCommand{Target: s}, smiles.RedrawCommand{})
}
