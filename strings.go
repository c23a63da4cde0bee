package smiles

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Segment is a styled piece of text.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is a list of styled segments.
type Line []Segment

// Text returns the line's text without styles.
func (l Line) Text() string {
	var b strings.Builder
	for _, segment := range l {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// LineBuilder assembles styled lines from writes. Consecutive writes in the
// same style share a segment.
type LineBuilder struct {
	lines   []Line
	current Line
}

// NewLineBuilder returns a new line builder.
func NewLineBuilder() *LineBuilder {
	return &LineBuilder{}
}

// Write appends text in style. Newlines in text end the current line.
func (b *LineBuilder) Write(text string, style tcell.Style) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			b.NewLine()
		}
		if part == "" {
			continue
		}
		if n := len(b.current); n > 0 && b.current[n-1].Style == style {
			b.current[n-1].Text += part
		} else {
			b.current = append(b.current, Segment{Text: part, Style: style})
		}
	}
}

// NewLine ends the current line.
func (b *LineBuilder) NewLine() {
	b.lines = append(b.lines, b.current)
	b.current = nil
}

// Finish ends the current line unless it is empty and returns all lines. The
// result has at least one line.
func (b *LineBuilder) Finish() []Line {
	if len(b.current) > 0 || len(b.lines) == 0 {
		b.NewLine()
	}
	return b.lines
}

// cluster is one grapheme cluster with its screen width and the line break
// rule that applies after it.
type cluster struct {
	text      string
	width     int
	lineBreak int
}

// nextCluster splits the first grapheme cluster off str. state is the uniseg
// parser state, -1 for the start of a string.
func nextCluster(str string, state int) (c cluster, rest string, newState int) {
	var boundaries int
	c.text, rest, boundaries, newState = uniseg.StepString(str, state)
	c.width = boundaries >> uniseg.ShiftWidth
	c.lineBreak = boundaries & uniseg.MaskLine
	// The end of the text is no break opportunity unless it ends in a newline.
	if rest == "" && !uniseg.HasTrailingLineBreakInString(c.text) {
		c.lineBreak = uniseg.LineDontBreak
	}
	return c, rest, newState
}

// StringWidth returns the number of cells text takes on screen.
func StringWidth(text string) int {
	return uniseg.StringWidth(text)
}

// WordWrap splits text into lines no wider than width, breaking at the last
// break opportunity before the limit, or inside a word that is longer than a
// line. Joined together, the lines give back text without its hard line
// breaks.
func WordWrap(text string, width int) (lines []string) {
	if width <= 0 {
		return nil
	}

	var (
		state     = -1
		lineStart int // byte offset of the current line
		pos       int // byte offset of the next cluster
		lineWidth int
		// The last break opportunity on the current line and the line's
		// width up to it. breakAt == lineStart means there is none.
		breakAt, breakWidth int
	)
	for str := text; str != ""; {
		var c cluster
		c, str, state = nextCluster(str, state)

		if lineWidth+c.width > width {
			if breakAt > lineStart {
				lines = append(lines, text[lineStart:breakAt])
				lineStart = breakAt
				lineWidth -= breakWidth
			} else {
				lines = append(lines, text[lineStart:pos])
				lineStart, lineWidth = pos, 0
			}
			breakAt = lineStart
		}

		pos += len(c.text)
		lineWidth += c.width
		switch c.lineBreak {
		case uniseg.LineCanBreak:
			breakAt, breakWidth = pos, lineWidth
		case uniseg.LineMustBreak:
			lines = append(lines, strings.TrimRight(text[lineStart:pos], "\n\r"))
			lineStart, lineWidth, breakAt = pos, 0, pos
		}
	}
	return append(lines, text[lineStart:])
}

// wrapLine word-wraps a styled line (which must not contain newlines) to the
// given width, keeping each segment's style on the pieces it is split into.
func wrapLine(line Line, width int) []Line {
	text := line.Text()
	if text == "" || width <= 0 {
		return []Line{nil}
	}
	pieces := WordWrap(text, width)
	out := make([]Line, 0, len(pieces))
	segIndex, segOffset := 0, 0
	for _, piece := range pieces {
		var wrapped Line
		remaining := len(piece)
		for remaining > 0 && segIndex < len(line) {
			segment := line[segIndex]
			take := min(len(segment.Text)-segOffset, remaining)
			wrapped = append(wrapped, Segment{Text: segment.Text[segOffset : segOffset+take], Style: segment.Style})
			remaining -= take
			segOffset += take
			if segOffset == len(segment.Text) {
				segIndex++
				segOffset = 0
			}
		}
		out = append(out, wrapped)
	}
	return out
}
