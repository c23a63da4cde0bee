package smiles

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// InputField is a one-line box into which the user can enter text.
//
// Editing keys:
//
//   - Left, Right, Home, End (or Ctrl-A, Ctrl-E): Move the cursor.
//   - Backspace, Delete: Remove a character.
//   - Ctrl-U: Clear the field.
//   - Tab, Backtab, Enter, Escape: Finish editing.
//
// Pasted newlines and tabs become spaces.
type InputField struct {
	*Box

	// The text, one grapheme cluster per element.
	clusters []string
	// Cursor position as a cluster index.
	cursor int
	// Index of the first visible cluster.
	scroll int

	label       string
	labelWidth  int
	placeholder string

	// Maximum number of clusters; 0 means unlimited.
	maxLength int

	disabled bool

	labelStyle       tcell.Style
	fieldStyle       tcell.Style
	placeholderStyle tcell.Style

	changed func(text string)
	// Set by the form; called with the key that left the field.
	finished func(tcell.Key) Command
}

// NewInputField returns a new input field.
func NewInputField() *InputField {
	return &InputField{
		Box:              NewBox(),
		labelStyle:       tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
		fieldStyle:       tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.PrimaryTextColor),
		placeholderStyle: tcell.StyleDefault.Background(Styles.ContrastBackgroundColor).Foreground(Styles.ContrastSecondaryTextColor),
	}
}

// SetText replaces the text, cut to the maximum length, and puts the cursor
// at its end.
func (i *InputField) SetText(text string) *InputField {
	if i.GetText() == text {
		return i
	}
	i.clusters = splitClusters(text)
	if i.maxLength > 0 && len(i.clusters) > i.maxLength {
		i.clusters = i.clusters[:i.maxLength]
	}
	i.cursor = len(i.clusters)
	i.scroll = 0
	i.textChanged()
	return i
}

func (i *InputField) GetText() string {
	return strings.Join(i.clusters, "")
}

// SetLabel sets the text left of the field.
func (i *InputField) SetLabel(label string) *InputField {
	i.label = label
	return i
}

func (i *InputField) GetLabel() string {
	return i.label
}

// SetLabelWidth reserves width cells for the label; 0 fits the label.
func (i *InputField) SetLabelWidth(width int) FormItem {
	i.labelWidth = width
	return i
}

// SetPlaceholder sets the hint shown while the field is empty.
func (i *InputField) SetPlaceholder(text string) *InputField {
	i.placeholder = text
	return i
}

// SetMaxLength limits the text to length grapheme clusters; 0 is no limit.
func (i *InputField) SetMaxLength(length int) *InputField {
	i.maxLength = max(length, 0)
	return i
}

func (i *InputField) GetFieldHeight() int {
	return 1
}

// SetDisabled makes the field read-only and dims it.
func (i *InputField) SetDisabled(disabled bool) FormItem {
	i.disabled = disabled
	return i
}

func (i *InputField) GetDisabled() bool {
	return i.disabled
}

// SetChangedFunc sets a function called with the text after every edit.
func (i *InputField) SetChangedFunc(handler func(text string)) *InputField {
	i.changed = handler
	return i
}

func (i *InputField) SetFinishedFunc(handler func(key tcell.Key) Command) FormItem {
	i.finished = handler
	return i
}

func (i *InputField) textChanged() {
	if i.changed != nil {
		i.changed(i.GetText())
	}
}

func (i *InputField) insert(text string) {
	added := splitClusters(text)
	if i.maxLength > 0 {
		room := i.maxLength - len(i.clusters)
		if room <= 0 {
			return
		}
		if len(added) > room {
			added = added[:room]
		}
	}
	if len(added) == 0 {
		return
	}
	clusters := make([]string, 0, len(i.clusters)+len(added))
	clusters = append(clusters, i.clusters[:i.cursor]...)
	clusters = append(clusters, added...)
	clusters = append(clusters, i.clusters[i.cursor:]...)
	i.clusters = clusters
	i.cursor += len(added)
	i.textChanged()
}

func (i *InputField) remove(from, to int) {
	if from < 0 || to > len(i.clusters) || from >= to {
		return
	}
	i.clusters = append(i.clusters[:from], i.clusters[to:]...)
	i.cursor = from
	i.textChanged()
}

// Draw draws the label and the field, scrolled so the cursor stays visible.
func (i *InputField) Draw(screen tcell.Screen) {
	i.DrawForSubclass(screen, i)

	x, y, width, height := i.GetInnerRect()
	if height < 1 || width < 1 {
		return
	}

	labelWidth := i.labelWidth
	if labelWidth == 0 && i.label != "" {
		labelWidth = StringWidth(i.label) + 1
	}
	labelWidth = min(labelWidth, width)
	PrintWithStyle(screen, i.label, x, y, labelWidth, AlignmentLeft, i.labelStyle)

	fieldX := x + labelWidth
	fieldWidth := width - labelWidth
	if fieldWidth <= 0 {
		return
	}
	fieldStyle := i.fieldStyle
	if i.disabled {
		fieldStyle = i.placeholderStyle
	}
	fill(screen, fieldX, y, fieldWidth, " ", fieldStyle)

	if len(i.clusters) == 0 {
		if i.placeholder != "" {
			PrintWithStyle(screen, i.placeholder, fieldX, y, fieldWidth, AlignmentLeft, i.placeholderStyle)
		}
		if i.HasFocus() {
			screen.ShowCursor(fieldX, y)
		}
		return
	}

	// Keep the cursor inside the field, leaving one cell for it at the end.
	i.scroll = min(i.scroll, i.cursor)
	for i.scroll < i.cursor && clustersWidth(i.clusters[i.scroll:i.cursor]) >= fieldWidth {
		i.scroll++
	}

	cx := fieldX
	cursorX := -1
	for index := i.scroll; index < len(i.clusters); index++ {
		if index == i.cursor {
			cursorX = cx
		}
		w := uniseg.StringWidth(i.clusters[index])
		if cx+w > fieldX+fieldWidth {
			break
		}
		if w > 0 {
			screen.Put(cx, y, i.clusters[index], fieldStyle)
		}
		cx += w
	}
	if cursorX < 0 {
		cursorX = cx
	}
	if i.HasFocus() {
		screen.ShowCursor(min(cursorX, fieldX+fieldWidth-1), y)
	}
}

// InputHandler edits the text at the cursor.
func (i *InputField) InputHandler(event *tcell.EventKey) Command {
	if i.disabled {
		return nil
	}

	switch key := event.Key(); key {
	case tcell.KeyEnter, tcell.KeyEscape, tcell.KeyTab, tcell.KeyBacktab:
		if i.finished != nil {
			return AppendCommand(RedrawCommand{}, i.finished(key))
		}
		return RedrawCommand{}
	case tcell.KeyRune:
		i.insert(event.Str())
	case tcell.KeyLeft:
		i.cursor = max(i.cursor-1, 0)
	case tcell.KeyRight:
		i.cursor = min(i.cursor+1, len(i.clusters))
	case tcell.KeyHome, tcell.KeyCtrlA:
		i.cursor = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		i.cursor = len(i.clusters)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		i.remove(i.cursor-1, i.cursor)
	case tcell.KeyDelete:
		i.remove(i.cursor, i.cursor+1)
	case tcell.KeyCtrlU:
		i.remove(0, len(i.clusters))
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler focuses the field on press.
func (i *InputField) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if i.disabled || !i.InRect(event.Position()) {
		return nil, nil
	}
	if action == MouseLeftDown {
		return nil, SetFocusCommand{Target: i}
	}
	return nil, nil
}

// PasteHandler inserts pasted text at the cursor.
func (i *InputField) PasteHandler(text string) Command {
	if i.disabled {
		return nil
	}
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, text)
	i.insert(text)
	return RedrawCommand{}
}

func splitClusters(text string) []string {
	var clusters []string
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

func clustersWidth(clusters []string) int {
	var width int
	for _, c := range clusters {
		width += uniseg.StringWidth(c)
	}
	return width
}

var _ FormItem = &InputField{}
