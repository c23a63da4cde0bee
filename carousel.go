package smiles

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/smiles/keybind"
)

// Default carousel timings.
const (
	// DefaultSettleDelay is how long a navigation animates before the
	// carousel teleports onto the middle copy.
	DefaultSettleDelay = 520 * time.Millisecond
	// DefaultCenterWindow is how long snapping stays off after a recenter.
	DefaultCenterWindow = 560 * time.Millisecond
	// DefaultScrollDebounce is the quiet period after wheel scrolling before
	// the nearest item is selected.
	DefaultScrollDebounce = 120 * time.Millisecond
)

// Default carousel geometry, in cells.
const (
	DefaultCarouselItemWidth   = 16
	DefaultCarouselActiveWidth = 24
	DefaultCarouselGap         = 2
	DefaultCarouselPadding     = 1
)

const (
	// Cells moved per wheel notch while snapping is off.
	carouselWheelCells = 3
	// Spring used for programmatic scrolling.
	carouselSpringFrequency = 12.0
	carouselSpringDamping   = 1.0
)

// Picture is an image prepared for half-block rendering. Every terminal cell
// shows two vertically stacked pixels.
type Picture interface {
	// Size returns the width and height in pixels.
	Size() (width, height int)
	// ColorAt returns the color of the pixel at (x, y).
	ColorAt(x, y int) tcell.Color
}

// CarouselItem is one entry of a carousel.
type CarouselItem struct {
	Title   string
	Caption string
	Picture Picture
}

// CarouselState describes what drives the carousel's position right now.
type CarouselState int

const (
	// CarouselIdle means the carousel rests on the middle copy.
	CarouselIdle CarouselState = iota
	// CarouselDragging means the mouse is dragging the strip.
	CarouselDragging
	// CarouselSettling means a navigation is in flight and will teleport
	// onto the middle copy when it settles.
	CarouselSettling
)

func (s CarouselState) String() string {
	switch s {
	case CarouselIdle:
		return "idle"
	case CarouselDragging:
		return "dragging"
	case CarouselSettling:
		return "settling"
	}
	return fmt.Sprintf("CarouselState(%d)", int(s))
}

// CarouselTimings configures the timers of a carousel.
type CarouselTimings struct {
	Settle         time.Duration
	CenterWindow   time.Duration
	ScrollDebounce time.Duration
}

// DefaultCarouselTimings returns the default timings.
func DefaultCarouselTimings() CarouselTimings {
	return CarouselTimings{
		Settle:         DefaultSettleDelay,
		CenterWindow:   DefaultCenterWindow,
		ScrollDebounce: DefaultScrollDebounce,
	}
}

// CarouselKeyMap holds the key bindings of a carousel.
type CarouselKeyMap struct {
	Prev keybind.Keybind
	Next keybind.Keybind
}

// DefaultCarouselKeyMap returns the default bindings.
func DefaultCarouselKeyMap() CarouselKeyMap {
	return CarouselKeyMap{
		Prev: keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "previous")),
		Next: keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "next")),
	}
}

// ShortHelp implements help.KeyMap.
func (k CarouselKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Prev, k.Next}
}

// FullHelp implements help.KeyMap.
func (k CarouselKeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{k.ShortHelp()}
}

type carouselDrag struct {
	active      bool
	startX      int
	startOffset float64
}

// cellRange is a horizontal run of cells on one row.
type cellRange struct {
	x, y, width int
}

func (r cellRange) contains(x, y int) bool {
	return r.width > 0 && y == r.y && x >= r.x && x < r.x+r.width
}

// Carousel shows a horizontally scrolling strip of items which wraps around in
// both directions. The strip lays out three copies of the items and always
// comes to rest on the middle one, so there is a full copy to scroll into on
// either side.
//
// The carousel moves in response to the prev/next keys, the prev/next buttons
// and the dot row under the strip, mouse drags, and the mouse wheel. All of
// them funnel into [Carousel.GoToLogicalIndex].
//
// Timers and animations run through the [Scheduler] set with
// [Carousel.SetScheduler]. Without one, every move is instant.
type Carousel struct {
	*Box

	items []CarouselItem
	ring  Ring

	// The render index of the active item.
	index int
	// Horizontal scroll position of the strip, in cells.
	offset float64
	// Whether wheel scrolling is free rather than item by item.
	suppressSnap bool
	drag         carouselDrag

	scheduler Scheduler
	smooth    bool
	timings   CarouselTimings
	motion    *springMotion

	// Pending teleport onto the middle copy.
	settle Timer
	// Pending re-enabling of snapping after a recenter.
	snapRestore Timer
	// Pending resolution of wheel scrolling.
	debounce Timer
	// Incremented on every navigation so stale frame callbacks do nothing.
	generation uint64

	itemWidth, activeWidth, gap, padding int

	// Whether SetRect was called, whether the strip has been positioned, and
	// the width it was positioned for.
	sized     bool
	laidOut   bool
	lastWidth int

	keyMap    CarouselKeyMap
	prevLabel string
	nextLabel string
	emptyText string

	// Controls, as last drawn.
	prevButton cellRange
	nextButton cellRange
	dots       cellRange

	changed func(logical int)
}

// NewCarousel returns a new carousel showing items.
func NewCarousel(items ...CarouselItem) *Carousel {
	c := &Carousel{
		Box:         NewBox(),
		smooth:      true,
		timings:     DefaultCarouselTimings(),
		itemWidth:   DefaultCarouselItemWidth,
		activeWidth: DefaultCarouselActiveWidth,
		gap:         DefaultCarouselGap,
		padding:     DefaultCarouselPadding,
		keyMap:      DefaultCarouselKeyMap(),
		prevLabel:   "Prev",
		nextLabel:   "Next",
	}
	c.motion = newSpringMotion(carouselSpringFrequency, carouselSpringDamping,
		func() float64 { return c.offset },
		func(v float64) { c.offset = v })
	c.SetItems(items)
	return c
}

// SetItems replaces the items and puts the first one in front. Pending timers
// are dropped.
func (c *Carousel) SetItems(items []CarouselItem) *Carousel {
	c.cancelAll()
	c.items = append([]CarouselItem(nil), items...)
	c.ring = NewRing(len(c.items))
	c.index = c.ring.Middle(0)
	c.offset = 0
	c.suppressSnap = false
	c.drag = carouselDrag{}
	c.laidOut = false
	c.layout()
	return c
}

// Items returns the logical items.
func (c *Carousel) Items() []CarouselItem {
	return c.items
}

// SetScheduler sets the scheduler used for animations and timers, typically
// the [Application].
func (c *Carousel) SetScheduler(scheduler Scheduler) *Carousel {
	c.scheduler = scheduler
	return c
}

// SetSmoothScrolling sets whether programmatic scrolling is animated.
func (c *Carousel) SetSmoothScrolling(smooth bool) *Carousel {
	c.smooth = smooth
	return c
}

// SetTimings sets the carousel's timers. Zero fields keep their defaults.
func (c *Carousel) SetTimings(timings CarouselTimings) *Carousel {
	defaults := DefaultCarouselTimings()
	if timings.Settle <= 0 {
		timings.Settle = defaults.Settle
	}
	if timings.CenterWindow <= 0 {
		timings.CenterWindow = defaults.CenterWindow
	}
	if timings.ScrollDebounce <= 0 {
		timings.ScrollDebounce = defaults.ScrollDebounce
	}
	c.timings = timings
	return c
}

// SetItemWidths sets the width of regular items, the width of the active
// item, and the gap between items, in cells.
func (c *Carousel) SetItemWidths(item, active, gap int) *Carousel {
	c.itemWidth = max(item, 3)
	c.activeWidth = max(active, c.itemWidth)
	c.gap = max(gap, 0)
	c.laidOut = false
	c.layout()
	return c
}

// SetLabels sets the labels of the prev and next buttons.
func (c *Carousel) SetLabels(prev, next string) *Carousel {
	c.prevLabel, c.nextLabel = prev, next
	c.keyMap.Prev.SetHelp(c.keyMap.Prev.Help().Key, prev)
	c.keyMap.Next.SetHelp(c.keyMap.Next.Help().Key, next)
	return c
}

// SetEmptyText sets the text shown when there are no items.
func (c *Carousel) SetEmptyText(text string) *Carousel {
	c.emptyText = text
	return c
}

// SetKeyMap sets the key bindings.
func (c *Carousel) SetKeyMap(keyMap CarouselKeyMap) *Carousel {
	c.keyMap = keyMap
	return c
}

// KeyMap returns the key bindings, for use with the help primitive.
func (c *Carousel) KeyMap() CarouselKeyMap {
	return c.keyMap
}

// SetChangedFunc sets a function called with the logical index whenever the
// active item changes.
func (c *Carousel) SetChangedFunc(handler func(logical int)) *Carousel {
	c.changed = handler
	return c
}

// RenderIndex returns the render index of the active item.
func (c *Carousel) RenderIndex() int {
	return c.index
}

// LogicalIndex returns the position of the active item in the items.
func (c *Carousel) LogicalIndex() int {
	return c.ring.Logical(c.index)
}

// Offset returns the horizontal scroll position of the strip.
func (c *Carousel) Offset() float64 {
	return c.offset
}

// Snapping reports whether wheel scrolling snaps to items.
func (c *Carousel) Snapping() bool {
	return !c.suppressSnap
}

// State returns the current input state.
func (c *Carousel) State() CarouselState {
	switch {
	case c.drag.active:
		return CarouselDragging
	case c.settle != nil:
		return CarouselSettling
	}
	return CarouselIdle
}

// Close stops all timers and animations. The carousel stays usable.
func (c *Carousel) Close() {
	c.cancelAll()
	c.drag = carouselDrag{}
}

func (c *Carousel) cancelAll() {
	c.generation++
	if c.motion != nil {
		c.motion.stop()
	}
	c.settle = stopTimer(c.settle)
	c.snapRestore = stopTimer(c.snapRestore)
	c.debounce = stopTimer(c.debounce)
}

// Advance moves the active item delta steps, wrapping around at both ends.
func (c *Carousel) Advance(delta int) {
	if c.ring.Len() == 0 {
		return
	}
	c.GoToLogicalIndex(c.ring.Step(c.LogicalIndex(), delta))
}

// GoToLogicalIndex makes the item at position target active. Of the three
// copies of the item, the one nearest to the current render index becomes
// active right away and the strip scrolls to it. Once the scroll settles, the
// carousel teleports onto the middle copy, which looks identical.
func (c *Carousel) GoToLogicalIndex(target int) {
	if c.ring.Len() == 0 {
		return
	}
	target = c.ring.Normalize(target)
	best := c.ring.Nearest(c.index, target)

	previous := c.LogicalIndex()
	c.index = best
	c.suppressSnap = true
	c.generation++
	c.snapRestore = stopTimer(c.snapRestore)

	switch {
	case c.scheduler == nil || !c.smooth:
		c.motion.jump(c.centeredOffset(best))
	default:
		generation := c.generation
		// The active item is wider, so measure once the new layout is drawn.
		c.scheduler.NextFrame(func() {
			if generation != c.generation {
				return
			}
			c.motion.start(c.scheduler, c.centeredOffset(best))
		})
	}

	c.settle = stopTimer(c.settle)
	if c.scheduler == nil {
		c.settleOn(target)
	} else {
		c.settle = c.scheduler.AfterFunc(c.timings.Settle, func() {
			c.settle = nil
			c.settleOn(target)
		})
	}

	if c.changed != nil && previous != target {
		c.changed(target)
	}
}

// settleOn teleports onto the middle copy of the logical item.
func (c *Carousel) settleOn(logical int) {
	c.settle = nil
	c.index = c.ring.Middle(logical)
	c.motion.jump(c.centeredOffset(c.index))
	c.suppressSnap = false
}

// CenterViewport scrolls so that the item at the render index sits in the
// middle of the viewport, without changing the active item. Snapping is off
// while the scroll runs.
func (c *Carousel) CenterViewport(index int) {
	if c.ring.Len() == 0 || index < 0 || index >= c.ring.RenderLen() {
		return
	}
	_, _, width, _ := c.GetInnerRect()
	if width <= 0 {
		return
	}

	c.suppressSnap = true
	target := c.centeredOffset(index)
	if c.smooth {
		c.motion.start(c.scheduler, target)
	} else {
		c.motion.jump(target)
	}

	c.snapRestore = stopTimer(c.snapRestore)
	if c.settle != nil {
		// The pending settle re-enables snapping.
		return
	}
	if c.scheduler == nil {
		c.suppressSnap = false
		return
	}
	c.snapRestore = c.scheduler.AfterFunc(c.timings.CenterWindow, func() {
		c.snapRestore = nil
		// Releasing the drag resolves it and its settle turns snapping on.
		if c.drag.active {
			return
		}
		c.suppressSnap = false
	})
}

// FindNearestRenderIndex returns the render index of the item whose center is
// closest to the center of the viewport. Ties go to the lower index.
func (c *Carousel) FindNearestRenderIndex() int {
	_, _, width, _ := c.GetInnerRect()
	if c.ring.Len() == 0 || width <= 0 {
		return c.index
	}
	center := c.offset + float64(width)/2
	best, bestDist := 0, math.Inf(1)
	for i := 0; i < c.ring.RenderLen(); i++ {
		d := math.Abs(c.itemCenter(i) - center)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// itemLeft returns the distance of the item's left edge from the strip start.
func (c *Carousel) itemLeft(i int) int {
	left := c.padding + i*(c.itemWidth+c.gap)
	if i > c.index {
		left += c.activeWidth - c.itemWidth
	}
	return left
}

func (c *Carousel) itemWidthAt(i int) int {
	if i == c.index {
		return c.activeWidth
	}
	return c.itemWidth
}

func (c *Carousel) itemCenter(i int) float64 {
	return float64(c.itemLeft(i)) + float64(c.itemWidthAt(i))/2
}

// trackWidth returns the width of the whole strip.
func (c *Carousel) trackWidth() int {
	n := c.ring.RenderLen()
	if n == 0 {
		return 0
	}
	return 2*c.padding + n*c.itemWidth + (n-1)*c.gap + (c.activeWidth - c.itemWidth)
}

func (c *Carousel) maxOffset() float64 {
	_, _, width, _ := c.GetInnerRect()
	return math.Max(0, float64(c.trackWidth()-width))
}

func (c *Carousel) clampOffset(offset float64) float64 {
	return math.Min(math.Max(offset, 0), c.maxOffset())
}

// centeredOffset returns the scroll position that centers item i.
func (c *Carousel) centeredOffset(i int) float64 {
	_, _, width, _ := c.GetInnerRect()
	return c.clampOffset(c.itemCenter(i) - float64(width)/2)
}

// SetRect implements Primitive.
func (c *Carousel) SetRect(x, y, width, height int) {
	c.Box.SetRect(x, y, width, height)
	c.sized = true
	c.layout()
}

// layout positions the strip the first time it has a size and recenters it
// when the width changes.
func (c *Carousel) layout() {
	_, _, width, _ := c.GetInnerRect()
	if !c.sized || c.ring.Len() == 0 || width <= 0 {
		return
	}
	if !c.laidOut {
		c.laidOut = true
		c.lastWidth = width
		c.offset = c.centeredOffset(c.index)
		return
	}
	if width != c.lastWidth {
		c.lastWidth = width
		c.CenterViewport(c.index)
	}
}

// InputHandler implements Primitive.
func (c *Carousel) InputHandler(event *tcell.EventKey) Command {
	switch {
	case keybind.Matches(event, c.keyMap.Prev):
		c.Advance(-1)
	case keybind.Matches(event, c.keyMap.Next):
		c.Advance(1)
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler implements Primitive.
func (c *Carousel) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()

	if c.drag.active {
		switch action {
		case MouseMove:
			c.offset = c.clampOffset(c.drag.startOffset - float64(x-c.drag.startX))
			return c, RedrawCommand{}
		case MouseLeftUp:
			c.drag.active = false
			c.GoToLogicalIndex(c.ring.Logical(c.FindNearestRenderIndex()))
			return nil, RedrawCommand{}
		}
		return c, nil
	}

	if !c.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		focus := SetFocusCommand{Target: c}
		if c.ring.Len() == 0 {
			return nil, focus
		}
		switch {
		case c.prevButton.contains(x, y):
			c.Advance(-1)
			return nil, AppendCommand(focus, RedrawCommand{})
		case c.nextButton.contains(x, y):
			c.Advance(1)
			return nil, AppendCommand(focus, RedrawCommand{})
		case c.dots.contains(x, y):
			if logical, ok := c.dotAt(x); ok {
				c.GoToLogicalIndex(logical)
			}
			return nil, AppendCommand(focus, RedrawCommand{})
		case c.InInnerRect(x, y):
			c.startDrag(x)
			return c, AppendCommand(focus, RedrawCommand{})
		}
		return nil, focus
	case MouseScrollLeft, MouseScrollUp:
		c.wheel(-1)
		return nil, RedrawCommand{}
	case MouseScrollRight, MouseScrollDown:
		c.wheel(1)
		return nil, RedrawCommand{}
	}
	return nil, nil
}

func (c *Carousel) startDrag(x int) {
	c.settle = stopTimer(c.settle)
	c.debounce = stopTimer(c.debounce)
	c.snapRestore = stopTimer(c.snapRestore)
	c.motion.stop()
	c.generation++
	c.drag = carouselDrag{active: true, startX: x, startOffset: c.offset}
	c.suppressSnap = true
}

// wheel scrolls the strip one notch. With snapping on, a notch moves to the
// neighbouring item; otherwise it moves a few cells. The nearest item becomes
// active once the wheel has been quiet for a moment.
func (c *Carousel) wheel(direction int) {
	if c.ring.Len() == 0 {
		return
	}
	// The wheel takes over from a pending navigation; resolving it settles
	// again.
	c.settle = stopTimer(c.settle)
	c.generation++
	c.motion.stop()
	if c.suppressSnap {
		c.offset = c.clampOffset(c.offset + float64(direction*carouselWheelCells))
	} else {
		next := min(max(c.FindNearestRenderIndex()+direction, 0), c.ring.RenderLen()-1)
		c.offset = c.centeredOffset(next)
	}

	c.debounce = stopTimer(c.debounce)
	resolve := func() {
		c.debounce = nil
		if c.drag.active {
			return
		}
		c.GoToLogicalIndex(c.ring.Logical(c.FindNearestRenderIndex()))
	}
	if c.scheduler == nil {
		resolve()
		return
	}
	c.debounce = c.scheduler.AfterFunc(c.timings.ScrollDebounce, resolve)
}

// dotAt returns the logical index of the dot at column x.
func (c *Carousel) dotAt(x int) (int, bool) {
	if c.dots.width != 2*c.ring.Len()-1 {
		return 0, false
	}
	rel := x - c.dots.x
	if rel%2 != 0 {
		return 0, false
	}
	return rel / 2, true
}

// Draw implements Primitive.
func (c *Carousel) Draw(screen tcell.Screen) {
	c.DrawForSubclass(screen, c)
	c.layout()

	x, y, width, height := c.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	if c.ring.Len() == 0 {
		c.prevButton, c.nextButton, c.dots = cellRange{}, cellRange{}, cellRange{}
		Print(screen, c.emptyText, x, y+height/2, width, AlignmentCenter, Styles.TertiaryTextColor)
		return
	}

	stripHeight := height
	if height >= 2 {
		stripHeight--
		c.drawControls(screen, x, y+height-1, width)
	}

	clipped := newClippedScreen(screen, x, y, width, stripHeight)
	offset := int(math.Round(c.offset))
	for i := 0; i < c.ring.RenderLen(); i++ {
		left := x + c.itemLeft(i) - offset
		w := c.itemWidthAt(i)
		if left+w <= x || left >= x+width {
			continue
		}
		c.drawItem(clipped, i, left, y, w, stripHeight)
	}
}

func (c *Carousel) drawItem(screen tcell.Screen, i, x, y, width, height int) {
	item := c.items[i%c.ring.Len()]
	active := i == c.index

	borderColor := Styles.BorderColor
	borderSet := BorderSetPlain()
	if active {
		borderColor = Styles.ActiveItemColor
		borderSet = BorderSetRound()
		if c.HasFocus() {
			borderSet = BorderSetThick()
		}
	} else if height >= 5 {
		y++
		height -= 2
	}
	if height < 3 {
		Print(screen, item.Title, x, y, width, AlignmentCenter, Styles.PrimaryTextColor)
		return
	}

	border := tcell.StyleDefault.Foreground(borderColor).Background(Styles.PrimitiveBackgroundColor)
	bottom := y + height - 1
	right := x + width - 1
	fill(screen, x+1, y, width-2, borderSet.Top, border)
	fill(screen, x+1, bottom, width-2, borderSet.Bottom, border)
	for row := y + 1; row < bottom; row++ {
		screen.Put(x, row, borderSet.Left, border)
		screen.Put(right, row, borderSet.Right, border)
		fill(screen, x+1, row, width-2, " ", tcell.StyleDefault.Background(Styles.ContrastBackgroundColor))
	}
	screen.Put(x, y, borderSet.TopLeft, border)
	screen.Put(right, y, borderSet.TopRight, border)
	screen.Put(x, bottom, borderSet.BottomLeft, border)
	screen.Put(right, bottom, borderSet.BottomRight, border)

	innerX, innerY, innerW, innerH := x+1, y+1, width-2, height-2
	textStyle := tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.ContrastBackgroundColor)
	if active {
		textStyle = textStyle.Bold(true)
	}
	PrintWithStyle(screen, item.Title, innerX, innerY+innerH-1, innerW, AlignmentCenter, textStyle)
	innerH--
	if active && item.Caption != "" && innerH >= 2 {
		captionStyle := tcell.StyleDefault.Foreground(Styles.ContrastSecondaryTextColor).Background(Styles.ContrastBackgroundColor)
		PrintWithStyle(screen, item.Caption, innerX, innerY+innerH-1, innerW, AlignmentCenter, captionStyle)
		innerH--
	}
	if innerH > 0 && item.Picture != nil {
		drawPicture(screen, item.Picture, innerX, innerY, innerW, innerH)
	}
}

// drawPicture scales p into the cell rectangle with nearest-neighbour sampling
// and draws it with upper half blocks.
func drawPicture(screen tcell.Screen, p Picture, x, y, width, height int) {
	pw, ph := p.Size()
	if pw <= 0 || ph <= 0 || width <= 0 || height <= 0 {
		return
	}
	rows := height * 2
	for cy := 0; cy < height; cy++ {
		top := (2*cy*ph + ph/2) / rows
		bottom := ((2*cy+1)*ph + ph/2) / rows
		for cx := 0; cx < width; cx++ {
			sx := (cx*pw + pw/2) / width
			style := tcell.StyleDefault.Foreground(p.ColorAt(sx, top)).Background(p.ColorAt(sx, bottom))
			screen.Put(x+cx, y+cy, BlockUpperHalfBlock, style)
		}
	}
}

// drawControls draws the prev button, the dot row, and the next button on one
// row and remembers where they are for mouse handling.
func (c *Carousel) drawControls(screen tcell.Screen, x, y, width int) {
	buttonStyle := tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.ContrastBackgroundColor)
	prev := BlackMediumLeftPointingTriangle + " " + c.prevLabel
	next := c.nextLabel + " " + BlackMediumRightPointingTriangle
	if StringWidth(prev)+StringWidth(next)+4 > width {
		prev, next = BlackMediumLeftPointingTriangle, BlackMediumRightPointingTriangle
	}

	_, prevWidth := PrintWithStyle(screen, " "+prev+" ", x, y, width, AlignmentLeft, buttonStyle)
	c.prevButton = cellRange{x: x, y: y, width: prevWidth}
	nextWidth := StringWidth(next) + 2
	_, nextWidth = PrintWithStyle(screen, " "+next+" ", x+width-nextWidth, y, nextWidth, AlignmentLeft, buttonStyle)
	c.nextButton = cellRange{x: x + width - nextWidth, y: y, width: nextWidth}

	// The dots go between the buttons, or a counter when they don't fit.
	room := width - prevWidth - nextWidth - 2
	n := c.ring.Len()
	active := c.LogicalIndex()
	c.dots = cellRange{}
	if 2*n-1 <= room {
		start := x + prevWidth + 1 + (room-(2*n-1))/2
		for i := 0; i < n; i++ {
			dot, color := WhiteCircle, Styles.BorderColor
			if i == active {
				dot, color = BlackCircle, Styles.PrimaryTextColor
			}
			screen.Put(start+2*i, y, dot, tcell.StyleDefault.Foreground(color).Background(Styles.PrimitiveBackgroundColor))
		}
		c.dots = cellRange{x: start, y: y, width: 2*n - 1}
		return
	}
	counter := fmt.Sprintf("%d / %d", active+1, n)
	Print(screen, counter, x+prevWidth+1, y, max(room, 0), AlignmentCenter, Styles.SecondaryTextColor)
}

var _ Primitive = &Carousel{}
