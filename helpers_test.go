package smiles

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// testScreen records the cells drawn onto it. Methods the primitives do not
// call panic through the nil embedded screen.
type testScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]testCell
	cursorX       int
	cursorY       int
}

type testCell struct {
	str   string
	style tcell.Style
}

func newTestScreen(width, height int) *testScreen {
	return &testScreen{width: width, height: height, cells: map[[2]int]testCell{}, cursorX: -1, cursorY: -1}
}

func (s *testScreen) Size() (int, int) { return s.width, s.height }

func (s *testScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	cluster, rest, boundaries, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if x >= 0 && y >= 0 && x < s.width && y < s.height {
		s.cells[[2]int{x, y}] = testCell{str: cluster, style: style}
	}
	return rest, boundaries >> uniseg.ShiftWidth
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	cell := s.cells[[2]int{x, y}]
	return cell.str, cell.style, 1
}

func (s *testScreen) ShowCursor(x, y int) { s.cursorX, s.cursorY = x, y }
func (s *testScreen) HideCursor()         { s.cursorX, s.cursorY = -1, -1 }
func (s *testScreen) Clear()              { s.cells = map[[2]int]testCell{} }
func (s *testScreen) Show()               {}
func (s *testScreen) Fini()               {}

// row returns the text of row y with unset cells as spaces.
func (s *testScreen) row(y int) string {
	var b strings.Builder
	for x := range s.width {
		if cell, ok := s.cells[[2]int{x, y}]; ok && cell.str != "" {
			b.WriteString(cell.str)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (s *testScreen) text() string {
	rows := make([]string, s.height)
	for y := range s.height {
		rows[y] = s.row(y)
	}
	return strings.Join(rows, "\n")
}

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (t *fakeTimer) pending() bool {
	return !t.stopped && !t.fired
}

// fakeScheduler runs deferred work only when a test asks for it.
type fakeScheduler struct {
	timers []*fakeTimer
	frames []func()
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) NextFrame(f func()) {
	s.frames = append(s.frames, f)
}

// pending returns the number of timers with duration d still waiting.
func (s *fakeScheduler) pending(d time.Duration) int {
	n := 0
	for _, t := range s.timers {
		if t.d == d && t.pending() {
			n++
		}
	}
	return n
}

// fire runs the timers with duration d that are waiting right now.
func (s *fakeScheduler) fire(d time.Duration) {
	timers := append([]*fakeTimer(nil), s.timers...)
	for _, t := range timers {
		if t.d == d && t.pending() {
			t.fired = true
			t.f()
		}
	}
}

// flushFrames runs the queued frame callbacks.
func (s *fakeScheduler) flushFrames() {
	frames := s.frames
	s.frames = nil
	for _, f := range frames {
		f()
	}
}

// settleMotion ticks animation frames until no frame timer is left.
func (s *fakeScheduler) settleMotion() {
	frame := time.Second / motionFPS
	for range 10000 {
		if s.pending(frame) == 0 {
			return
		}
		s.fire(frame)
	}
	panic("motion did not come to rest")
}

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, "", tcell.ModNone)
}

func runeEvent(s string) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, s, tcell.ModNone)
}

func mouseEvent(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}
