package smiles

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintAlignment(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		width     int
		alignment Alignment
		want      string
		printed   int
	}{
		{"left clips", "hello", 3, AlignmentLeft, "hel    ", 3},
		{"right keeps the end", "hello", 3, AlignmentRight, "llo    ", 3},
		{"center pads", "abc", 7, AlignmentCenter, "  abc  ", 3},
		{"center clips both sides", "abcdef", 4, AlignmentCenter, "bcde   ", 4},
		{"wide clusters", "📚a", 7, AlignmentLeft, "📚 a    ", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(7, 1)
			printed, _ := Print(screen, tt.text, 0, 0, tt.width, tt.alignment, color.White)
			assert.Equal(t, tt.printed, printed)
			assert.Equal(t, tt.want, screen.row(0))
		})
	}
}

func TestPrintKeepsBackground(t *testing.T) {
	screen := newTestScreen(4, 1)
	screen.Put(0, 0, " ", tcell.StyleDefault.Background(color.Red))

	Print(screen, "ab", 0, 0, 4, AlignmentLeft, color.Green)
	assert.Equal(t, color.Red, screen.cells[[2]int{0, 0}].style.GetBackground())
	assert.Equal(t, color.Green, screen.cells[[2]int{0, 0}].style.GetForeground())

	PrintWithStyle(screen, "ab", 0, 0, 4, AlignmentLeft, tcell.StyleDefault.Background(color.Blue))
	assert.Equal(t, color.Blue, screen.cells[[2]int{0, 0}].style.GetBackground())
}

func TestPrintOutsideScreen(t *testing.T) {
	screen := newTestScreen(4, 1)
	printed, width := Print(screen, "ab", 0, 3, 4, AlignmentLeft, color.White)
	assert.Zero(t, printed)
	assert.Zero(t, width)
	assert.Empty(t, screen.cells)
}
