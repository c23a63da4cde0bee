package smiles

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	motionFPS = 60
	// Distance and velocity below which a motion snaps onto its target.
	motionRestDelta    = 0.25
	motionRestVelocity = 0.25
)

// springMotion eases a single value toward a target, one spring step per
// frame, with the frames ticked through a Scheduler.
type springMotion struct {
	spring   harmonica.Spring
	frame    time.Duration
	velocity float64
	target   float64
	timer    Timer

	get func() float64
	set func(float64)
}

func newSpringMotion(frequency, damping float64, get func() float64, set func(float64)) *springMotion {
	return &springMotion{
		spring: harmonica.NewSpring(harmonica.FPS(motionFPS), frequency, damping),
		frame:  time.Second / motionFPS,
		get:    get,
		set:    set,
	}
}

// start moves toward target. Without a scheduler the value jumps.
func (m *springMotion) start(scheduler Scheduler, target float64) {
	m.target = target
	if scheduler == nil {
		m.jump(target)
		return
	}
	if m.timer != nil {
		// Already ticking; the next frame picks up the new target.
		return
	}
	m.timer = scheduler.AfterFunc(m.frame, func() {
		m.timer = nil
		m.tick(scheduler)
	})
}

func (m *springMotion) tick(scheduler Scheduler) {
	pos, vel := m.spring.Update(m.get(), m.velocity, m.target)
	if math.Abs(pos-m.target) < motionRestDelta && math.Abs(vel) < motionRestVelocity {
		m.jump(m.target)
		return
	}
	m.set(pos)
	m.velocity = vel
	m.start(scheduler, m.target)
}

// jump stops the motion and places the value on v.
func (m *springMotion) jump(v float64) {
	m.stop()
	m.set(v)
}

// stop halts the motion where it is.
func (m *springMotion) stop() {
	m.timer = stopTimer(m.timer)
	m.velocity = 0
}

func (m *springMotion) running() bool {
	return m.timer != nil
}

// tween moves a value linearly onto a target over a fixed duration, one step
// per frame, with the frames ticked through a Scheduler.
type tween struct {
	frame    time.Duration
	duration time.Duration

	from, target float64
	step, steps  int
	timer        Timer

	get func() float64
	set func(float64)
}

func newTween(duration time.Duration, get func() float64, set func(float64)) *tween {
	return &tween{
		frame:    time.Second / motionFPS,
		duration: duration,
		get:      get,
		set:      set,
	}
}

// start moves from the current value to target. A running tween restarts
// from where it is. Without a scheduler the value jumps.
func (t *tween) start(scheduler Scheduler, target float64) {
	if scheduler == nil || t.duration <= 0 {
		t.jump(target)
		return
	}
	t.timer = stopTimer(t.timer)
	t.from, t.target = t.get(), target
	t.step = 0
	t.steps = max(int(math.Round(float64(t.duration)/float64(t.frame))), 1)
	t.schedule(scheduler)
}

func (t *tween) schedule(scheduler Scheduler) {
	t.timer = scheduler.AfterFunc(t.frame, func() {
		t.timer = nil
		t.step++
		if t.step >= t.steps {
			t.set(t.target)
			return
		}
		t.set(t.from + (t.target-t.from)*float64(t.step)/float64(t.steps))
		t.schedule(scheduler)
	})
}

// jump stops the tween and places the value on v.
func (t *tween) jump(v float64) {
	t.stop()
	t.set(v)
}

func (t *tween) stop() {
	t.timer = stopTimer(t.timer)
}
