package board

import (
	"github.com/gdamore/tcell/v3"
	"go.uber.org/zap"

	"github.com/xqrs/smiles"
	"github.com/xqrs/smiles/internal/campaign"
	"github.com/xqrs/smiles/internal/i18n"
	"github.com/xqrs/smiles/keybind"
)

// Overlay shows nothing but the progress bar and its update time, centered,
// for capturing into a live stream.
type Overlay struct {
	*smiles.Flex

	lang      i18n.Language
	milestone int
	progress  *smiles.ProgressBar
	queue     func(f func())
	logger    *zap.Logger
	keys      KeyMap
}

// NewOverlay returns an overlay. Of the options it uses the language, the
// milestone, the scheduler, the queue, and the logger.
func NewOverlay(opts Options) *Overlay {
	o := &Overlay{
		Flex:      smiles.NewFlex(),
		lang:      opts.Language,
		milestone: opts.Milestone,
		progress:  smiles.NewProgressBar().SetScheduler(opts.Scheduler),
		queue:     opts.Queue,
		logger:    opts.Logger,
		keys:      DefaultKeyMap(),
	}
	if o.lang == "" {
		o.lang = i18n.English
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	o.progress.SetBorders(smiles.BordersAll)
	o.progress.SetBorderSet(smiles.BorderSetRound())
	o.progress.SetBorderPadding(0, 0, 2, 2)
	o.progress.SetLabels(o.lang.T("hero.goal"), o.lang.T("hero.bags"), o.lang.T("hero.milestone"))

	o.AddItem(nil, 0, 1).
		AddItem(o.progress, 5, 0).
		AddItem(nil, 0, 1)
	o.SetCampaign(campaign.Default())
	return o
}

// SetCampaign shows c. It must be called on the event loop.
func (o *Overlay) SetCampaign(c campaign.Campaign) {
	milestone := c.Milestone
	if milestone == 0 {
		milestone = o.milestone
	}
	o.progress.SetProgress(c.CurrentBags, c.Goal, milestone)
	o.progress.SetFooter(o.lang.T("hero.lastUpdated") + " " + lastUpdated(c))
}

// UpdateCampaign is a campaign.UpdateFunc, like Board.UpdateCampaign.
func (o *Overlay) UpdateCampaign(c campaign.Campaign, err error) {
	apply := func() {
		if err != nil {
			o.logger.Warn("keeping previous campaign", zap.Error(err))
			return
		}
		o.SetCampaign(c)
	}
	if o.queue == nil {
		apply()
		return
	}
	o.queue(apply)
}

// ProgressBar returns the progress bar.
func (o *Overlay) ProgressBar() *smiles.ProgressBar {
	return o.progress
}

// Close stops the count-up.
func (o *Overlay) Close() {
	o.progress.Close()
}

// InputHandler quits on q and ctrl+c.
func (o *Overlay) InputHandler(event *tcell.EventKey) smiles.Command {
	if keybind.Matches(event, o.keys.Quit, o.keys.ForceQuit) {
		return smiles.QuitCommand{}
	}
	return nil
}

// Focus keeps the focus on the overlay itself.
func (o *Overlay) Focus(delegate func(p smiles.Primitive)) {
	o.Box.Focus(delegate)
}
