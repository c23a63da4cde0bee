package smiles

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v3"
)

// ProgressCountDuration is how long the displayed count takes to reach a new
// value.
const ProgressCountDuration = 600 * time.Millisecond

// ProgressPercent returns current as a whole percentage of goal, capped at 100.
// A goal of zero or less yields 0.
func ProgressPercent(current, goal int) int {
	if goal <= 0 {
		return 0
	}
	return min(100, int(math.Round(float64(current)/float64(goal)*100)))
}

// MilestonePercent returns the position of a milestone on a bar toward goal,
// clamped to [0, 100].
func MilestonePercent(milestone, goal int) int {
	if goal <= 0 {
		return 0
	}
	return min(100, max(0, int(math.Round(float64(milestone)/float64(goal)*100))))
}

// ProgressBar shows progress toward a goal: a heading with the count and the
// percentage, the bar itself, and an optional milestone marker below it. When
// the count changes the displayed number counts up to it.
type ProgressBar struct {
	*Box

	current   int
	goal      int
	milestone int
	// Displayed count while counting up.
	shown float64
	// Whether SetProgress was called before.
	started bool

	heading        string
	unit           string
	milestoneLabel string

	scheduler Scheduler
	count     *tween
}

// NewProgressBar returns a new progress bar.
func NewProgressBar() *ProgressBar {
	p := &ProgressBar{
		Box: NewBox(),
	}
	p.count = newTween(ProgressCountDuration,
		func() float64 { return p.shown },
		func(v float64) { p.shown = v })
	return p
}

// SetScheduler sets the scheduler that drives the count-up.
func (p *ProgressBar) SetScheduler(scheduler Scheduler) *ProgressBar {
	p.scheduler = scheduler
	return p
}

// SetProgress sets the current count and the goal. A milestone of zero or
// less hides the marker. The first call shows the count right away; later
// calls count up (or down) to it, linearly over ProgressCountDuration.
func (p *ProgressBar) SetProgress(current, goal, milestone int) *ProgressBar {
	if p.started && p.current == current && p.goal == goal && p.milestone == milestone {
		return p
	}
	p.current, p.goal, p.milestone = current, goal, milestone
	if p.started {
		p.count.start(p.scheduler, float64(current))
	} else {
		p.started = true
		p.count.jump(float64(current))
	}
	return p
}

// SetLabels sets the heading, the unit shown after the count, and the label
// of the milestone marker. The milestone label may contain a %d verb for the
// milestone value.
func (p *ProgressBar) SetLabels(heading, unit, milestone string) *ProgressBar {
	p.heading, p.unit, p.milestoneLabel = heading, unit, milestone
	return p
}

// Percent returns the progress in percent.
func (p *ProgressBar) Percent() int {
	return ProgressPercent(p.current, p.goal)
}

// Displayed returns the count currently shown.
func (p *ProgressBar) Displayed() int {
	return int(math.Round(p.shown))
}

// Close stops the count-up and shows the final value.
func (p *ProgressBar) Close() {
	p.count.jump(float64(p.current))
}

// Draw implements Primitive.
func (p *ProgressBar) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)
	x, y, width, height := p.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	percent := fmt.Sprintf("%d%%", p.Percent())
	count := fmt.Sprintf("%d / %d %s", p.Displayed(), p.goal, p.unit)
	headingStyle := tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Bold(true)
	var used int
	if p.heading != "" {
		_, used = PrintWithStyle(screen, p.heading, x, y, width, AlignmentLeft, headingStyle)
		used++
	}
	Print(screen, count, x+used, y, width-used-len(percent)-1, AlignmentLeft, Styles.SecondaryTextColor)
	Print(screen, percent, x, y, width, AlignmentRight, Styles.PrimaryTextColor)
	if height < 2 {
		return
	}

	barY := y + 1
	filled := width * p.Percent() / 100
	fill(screen, x, barY, filled, BlockFullBlock, tcell.StyleDefault.Foreground(Styles.ProgressColor))
	fill(screen, x+filled, barY, width-filled, BlockLightShade, tcell.StyleDefault.Foreground(Styles.BorderColor))

	if p.milestone <= 0 || p.goal <= 0 {
		return
	}
	markerX := x + min(width-1, width*MilestonePercent(p.milestone, p.goal)/100)
	screen.Put(markerX, barY, BoxDrawingsHeavyVertical, tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.ContrastBackgroundColor))
	if height < 3 || p.milestoneLabel == "" {
		return
	}
	label := p.milestoneLabel
	if strings.Contains(label, "%d") {
		label = fmt.Sprintf(label, p.milestone)
	}
	labelWidth := StringWidth(label)
	labelX := min(max(markerX-labelWidth/2, x), x+width-labelWidth)
	Print(screen, label, max(labelX, x), barY+1, width, AlignmentLeft, Styles.ContrastSecondaryTextColor)
}

var _ Primitive = &ProgressBar{}
