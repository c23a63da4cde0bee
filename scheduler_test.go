package smiles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoopTimerStopBeforeRun(t *testing.T) {
	timer := &loopTimer{}
	ran := false

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing to stop")
	timer.run(func() { ran = true })
	assert.False(t, ran)
}

func TestLoopTimerStopAfterRun(t *testing.T) {
	timer := &loopTimer{}
	ran := false

	timer.run(func() { ran = true })
	assert.True(t, ran)
	assert.False(t, timer.Stop())
}

func TestLoopTimerStopsUnderlyingTimer(t *testing.T) {
	timer := &loopTimer{}
	timer.timer = time.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
	assert.False(t, timer.timer.Stop(), "underlying timer already stopped")
}

func TestStopTimer(t *testing.T) {
	assert.Nil(t, stopTimer(nil))

	timer := &fakeTimer{}
	assert.Nil(t, stopTimer(timer))
	assert.True(t, timer.stopped)
}

func TestSpringMotionWithoutScheduler(t *testing.T) {
	var value float64
	m := newSpringMotion(10, 1, func() float64 { return value }, func(v float64) { value = v })

	m.start(nil, 42)
	assert.Equal(t, 42.0, value)
	assert.False(t, m.running())
}

func TestSpringMotionRetargets(t *testing.T) {
	scheduler := &fakeScheduler{}
	var value float64
	m := newSpringMotion(10, 1, func() float64 { return value }, func(v float64) { value = v })

	m.start(scheduler, 100)
	m.start(scheduler, 50)
	assert.Equal(t, 1, scheduler.pending(m.frame), "one frame timer at a time")

	scheduler.fire(m.frame)
	assert.Greater(t, value, 0.0)
	assert.Less(t, value, 50.0)

	scheduler.settleMotion()
	assert.Equal(t, 50.0, value)
	assert.False(t, m.running())
}
