package help

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/smiles"
)

// Styles holds the styles of the help bar and the full key list.
type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives the styles from the global theme, so keys stand out
// from their descriptions in the board's colors.
func DefaultStyles() Styles {
	key := tcell.StyleDefault.Foreground(smiles.Styles.SecondaryTextColor).Bold(true)
	desc := tcell.StyleDefault.Foreground(smiles.Styles.TertiaryTextColor)
	separator := tcell.StyleDefault.Foreground(smiles.Styles.BorderColor)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: separator,
		FullKeyStyle:        key,
		FullDescStyle:       tcell.StyleDefault.Foreground(smiles.Styles.PrimaryTextColor),
		FullSeparatorStyle:  separator,
		EllipsisStyle:       separator,
	}
}
