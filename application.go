package smiles

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// The minimum time between two redraws caused by resizing.
	redrawPause = 50 * time.Millisecond
)

// MouseAction is what the mouse is logically doing. The event loop derives
// actions from raw tcell mouse events.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var wheelActions = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// queuedUpdate is a function waiting to run on the event loop. If done is not
// nil, it receives one element after f has run.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// mouseState tracks the pointer between events.
type mouseState struct {
	// Receives every mouse event until its handler returns a nil capture.
	capture      Primitive
	lastX, lastY int
	downX, downY int
	buttons      tcell.ButtonMask
}

// pasteBuffer collects the key events that arrive between the start and the
// end of a bracketed paste.
type pasteBuffer struct {
	active bool
	text   strings.Builder
}

func (p *pasteBuffer) begin() {
	p.active = true
	p.text.Reset()
}

func (p *pasteBuffer) add(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		p.text.WriteString(event.Str())
	case tcell.KeyEnter:
		p.text.WriteByte('\n')
	case tcell.KeyTab:
		p.text.WriteByte('\t')
	}
}

func (p *pasteBuffer) end() string {
	p.active = false
	return p.text.String()
}

// Application owns the terminal and runs the event loop. Key, paste, and
// mouse events go to the root primitive, and the commands they return are
// executed on the loop. Work from other goroutines enters the loop through
// [Application.QueueUpdate]. The application is also the [Scheduler] for
// timers and animations.
//
//	if err := smiles.NewApplication().SetRoot(board).Run(); err != nil {
//	    return err
//	}
type Application struct {
	sync.RWMutex

	// Set to nil by Stop.
	screen tcell.Screen
	focus  Primitive
	root   Primitive

	events  chan tcell.Event
	updates chan queuedUpdate

	mouse mouseState

	// Requests a full clear before the next frame.
	forceRedraw bool

	// Functions registered through NextFrame, run after the next draw.
	frameQueue []func()

	enableMouse, enablePaste bool

	// Closed when Run returns so that timers firing late do not block.
	done     chan struct{}
	doneOnce sync.Once
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updatesQueueSize),
		done:    make(chan struct{}),
	}
}

// EnableMouse sets whether the terminal reports mouse events. It must be
// called before Run.
func (a *Application) EnableMouse(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enableMouse = enable
	return a
}

// EnablePaste sets whether bracketed paste is enabled. It must be called
// before Run.
func (a *Application) EnablePaste(enable bool) *Application {
	a.Lock()
	defer a.Unlock()
	a.enablePaste = enable
	return a
}

// SetScreen sets the screen Run uses instead of creating one. It has no
// effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// start creates the screen unless one was set and turns on the requested
// terminal features.
func (a *Application) start() error {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		a.screen = screen
	}
	if a.enableMouse {
		a.screen.EnableMouse()
	}
	if a.enablePaste {
		a.screen.EnablePaste()
	}
	a.events = a.screen.EventQ()
	return nil
}

// Run starts the event loop and returns once [Application.Stop] was called
// or the terminal reported an error.
//
// While an application is running it fully claims stdin, stdout, and stderr.
// Log to a file instead.
func (a *Application) Run() error {
	if err := a.start(); err != nil {
		return err
	}
	defer a.doneOnce.Do(func() { close(a.done) })

	// Panics would leave the terminal unusable.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	var (
		runErr      error
		paste       pasteBuffer
		lastResize  time.Time
		redrawTimer *time.Timer
	)
	for {
		select {
		case event := <-a.events:
			if event == nil {
				return runErr
			}
			switch event := event.(type) {
			case *tcell.EventKey:
				if paste.active {
					paste.add(event)
					break
				}
				a.dispatch(func(root Primitive) Command { return root.InputHandler(event) })
			case *tcell.EventPaste:
				if event.Start() {
					paste.begin()
				} else if event.End() {
					if text := paste.end(); text != "" {
						a.dispatch(func(root Primitive) Command { return root.PasteHandler(text) })
					}
				}
			case *tcell.EventResize:
				// Terminal state may change even when the size does not.
				a.Lock()
				a.forceRedraw = true
				a.Unlock()
				if time.Since(lastResize) < redrawPause {
					if redrawTimer != nil {
						redrawTimer.Stop()
					}
					redrawTimer = time.AfterFunc(redrawPause, func() {
						a.events <- event
					})
				}
				lastResize = time.Now()
				a.draw()
			case *tcell.EventMouse:
				if a.handleMouse(event) {
					a.draw()
				}
			case *tcell.EventError:
				runErr = event
				a.Stop()
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

// dispatch hands a key or paste event to the root while it has focus and
// redraws when the returned command asks for it.
func (a *Application) dispatch(handle func(root Primitive) Command) {
	a.RLock()
	root := a.root
	a.RUnlock()
	if root == nil || !root.HasFocus() {
		return
	}
	if a.executeCommand(handle(root)) {
		a.draw()
	}
}

// handleMouse derives mouse actions from event and sends them to the
// capturing primitive or the root. Actions of one event stay with the
// primitive that held the capture when the first of them fired. It reports
// whether a redraw is due.
func (a *Application) handleMouse(event *tcell.EventMouse) (redraw bool) {
	m := &a.mouse
	var target Primitive
	fire := func(action MouseAction) {
		receiver := target
		if m.capture != nil {
			receiver, target = m.capture, m.capture
		}
		if receiver == nil {
			a.RLock()
			receiver = a.root
			a.RUnlock()
		}
		if receiver == nil {
			return
		}
		capture, cmd := receiver.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			redraw = true
		}
		m.capture = capture
	}

	x, y := event.Position()
	buttons := event.Buttons()
	if x != m.lastX || y != m.lastY {
		fire(MouseMove)
		m.lastX, m.lastY = x, y
	}
	if (buttons^m.buttons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			fire(MouseLeftDown)
			m.downX, m.downY = x, y
		} else {
			fire(MouseLeftUp)
			if x == m.downX && y == m.downY {
				fire(MouseLeftClick)
			}
		}
	}
	m.buttons = buttons
	for _, wheel := range wheelActions {
		if buttons&wheel.button != 0 {
			fire(wheel.action)
		}
	}
	return redraw
}

// Stop finalizes the screen, which makes Run return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Draw queues a redraw on the event loop and waits for it. Calling it from the
// event loop deadlocks; use [Application.ForceDraw] there.
func (a *Application) Draw() *Application {
	return a.QueueUpdate(func() {
		a.draw()
	})
}

// ForceDraw redraws right away. It must only be called from the event loop.
func (a *Application) ForceDraw() *Application {
	return a.draw()
}

// draw renders a frame. Functions registered through NextFrame run once the
// frame is on screen, followed by one more frame that shows their effect.
// Functions they register in turn wait for the next draw, which is queued on
// the loop so animations keep running without input.
func (a *Application) draw() *Application {
	a.drawFrame()

	a.Lock()
	queue := a.frameQueue
	a.frameQueue = nil
	a.Unlock()
	if len(queue) == 0 {
		return a
	}
	for _, f := range queue {
		f()
	}
	a.drawFrame()

	a.RLock()
	pending := len(a.frameQueue) > 0
	a.RUnlock()
	if pending {
		select {
		case a.updates <- queuedUpdate{f: func() { a.draw() }}:
		default:
		}
	}
	return a
}

// drawFrame lays the root out over the whole screen and draws it once.
func (a *Application) drawFrame() {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()
	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell only sends cells that changed, so regular frames skip the clear.
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the primitive that covers the screen and focuses it. Nothing is
// displayed until a root is set.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	return a.SetFocus(root)
}

// SetFocus blurs the focused primitive and focuses p. Containers may pass the
// focus on to a child.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the focused primitive, or nil.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and waits for it. It is how goroutines
// such as the campaign watcher touch primitives. The screen is not redrawn
// afterwards; see [Application.QueueUpdateDraw].
//
// Once the application has stopped, QueueUpdate returns without running f.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{}, 1)
	select {
	case a.updates <- queuedUpdate{f: f, done: done}:
	case <-a.done:
		return a
	}
	select {
	case <-done:
	case <-a.done:
	}
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws after f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// AfterFunc implements [Scheduler]. f runs on the event loop, followed by a
// redraw, once d has elapsed and unless the returned timer was stopped first.
func (a *Application) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		a.QueueUpdateDraw(func() {
			t.run(f)
		})
	})
	return t
}

// NextFrame implements [Scheduler]. It must be called from the event loop.
func (a *Application) NextFrame(f func()) {
	a.Lock()
	a.frameQueue = append(a.frameQueue, f)
	a.Unlock()
}

// executeCommand carries out cmd and reports whether the screen needs a
// redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		changed := a.GetFocus() != c.Target
		a.SetFocus(c.Target)
		return changed
	case SetTitleCommand:
		a.RLock()
		screen := a.screen
		a.RUnlock()
		if screen != nil {
			screen.SetTitle(string(c))
		}
	}
	return false
}

var _ Scheduler = &Application{}
