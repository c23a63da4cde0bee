// Package board assembles the campaign page: the progress hero, the
// activities carousel, the donor message board, and the help bar.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v3"
	"go.uber.org/zap"

	"github.com/xqrs/smiles"
	"github.com/xqrs/smiles/help"
	"github.com/xqrs/smiles/internal/campaign"
	"github.com/xqrs/smiles/internal/i18n"
	"github.com/xqrs/smiles/internal/messages"
	"github.com/xqrs/smiles/keybind"
	"github.com/xqrs/smiles/layers"
)

const (
	pageLayer  = "page"
	keysLayer  = "keys"
	toastLayer = "toast"

	keysPanelWidth = 72

	toastDuration = 3 * time.Second
	storeTimeout  = 5 * time.Second

	// Organizers named in the footer when the campaign names no school.
	defaultOrganizers = "CADT · Makerspace · Student Association"
)

var donationIcons = []string{"👕", "🍪", "📚", "✏️", "🧸"}

// MessageStore is the part of the message store the board uses.
type MessageStore interface {
	Create(ctx context.Context, name, message string) (messages.Message, error)
	List(ctx context.Context, status string, limit int) ([]messages.Message, error)
}

// Options configures a Board.
type Options struct {
	Language i18n.Language
	// Milestone marker used when the campaign sets none; 0 hides it.
	Milestone int

	Store MessageStore
	// Status filter and size of the message list.
	Status string
	Limit  int

	Items   []smiles.CarouselItem
	Timings smiles.CarouselTimings
	Smooth  bool

	// Scheduler drives animations and the toast timeout, typically the
	// application.
	Scheduler smiles.Scheduler
	// Queue runs f on the event loop and redraws. Campaign updates arrive
	// through it. Without it they are applied directly.
	Queue func(f func())
	// LanguageChanged is called after the user switches the language.
	LanguageChanged func(i18n.Language)

	Logger *zap.Logger
}

type toastKind int

const (
	toastSuccess toastKind = iota
	toastWarning
	toastError
)

// Board is the root primitive of the campaign page.
type Board struct {
	*layers.Layers

	lang      i18n.Language
	campaign  campaign.Campaign
	milestone int

	store    MessageStore
	status   string
	limit    int
	messages []messages.Message
	views    []*smiles.TextView
	empty    *smiles.TextView

	scheduler smiles.Scheduler
	queue     func(f func())
	logger    *zap.Logger

	// Called after the language changes.
	languageChanged func(i18n.Language)

	page      *smiles.Flex
	header    *smiles.Flex
	title     *smiles.TextView
	switcher  *switcher
	progress  *smiles.ProgressBar
	about     *smiles.TextView
	donations *smiles.TextView
	carousel  *smiles.Carousel
	bottom    *smiles.Flex
	location  *smiles.TextView
	form      *smiles.Form
	name      *smiles.InputField
	message   *smiles.InputField
	send      *smiles.Button
	list      *smiles.List
	footer    *smiles.TextView
	help      *help.Help
	// All key bindings, shown over the dimmed page.
	keysPanel *help.Help

	toast      *smiles.TextView
	toastText  string
	toastTimer smiles.Timer

	keys KeyMap
	// Focus order for Tab and Backtab.
	focusRing []smiles.Primitive
}

// New builds the board. It shows the default campaign until SetCampaign or
// UpdateCampaign is called.
func New(opts Options) *Board {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := opts.Language
	if lang == "" {
		lang = i18n.English
	}

	b := &Board{
		Layers:    layers.New(),
		lang:      lang,
		campaign:  campaign.Default(),
		milestone: opts.Milestone,
		store:     opts.Store,
		status:    opts.Status,
		limit:     opts.Limit,
		scheduler: opts.Scheduler,
		queue:     opts.Queue,
		logger:    logger,
		keys:      DefaultKeyMap(),

		languageChanged: opts.LanguageChanged,
	}

	b.title = smiles.NewTextView().SetWrap(false)
	b.switcher = newSwitcher(lang, b.SetLanguage)
	b.header = smiles.NewFlex().SetDirection(smiles.FlexColumn).
		AddItem(b.title, 0, 1).
		AddItem(b.switcher, b.switcher.width(), 0)

	b.progress = smiles.NewProgressBar().SetScheduler(opts.Scheduler)
	b.progress.SetBorders(smiles.BordersAll)
	b.progress.SetBorderPadding(0, 0, 1, 1)

	b.about = smiles.NewTextView()
	b.about.SetBorders(smiles.BordersAll)
	b.about.SetBorderPadding(0, 0, 1, 1)
	b.donations = smiles.NewTextView()
	b.donations.SetBorders(smiles.BordersAll)
	b.donations.SetBorderPadding(0, 0, 1, 1)
	info := smiles.NewFlex().SetDirection(smiles.FlexColumn).
		AddItem(b.about, 0, 3).
		AddItem(b.donations, 0, 2)

	b.carousel = smiles.NewCarousel(opts.Items...).
		SetScheduler(opts.Scheduler).
		SetTimings(opts.Timings).
		SetSmoothScrolling(opts.Smooth)
	b.carousel.SetBorders(smiles.BordersAll)

	b.location = smiles.NewTextView()
	b.location.SetBorders(smiles.BordersAll)
	b.location.SetBorderPadding(0, 0, 1, 1)
	b.name = smiles.NewInputField()
	b.message = smiles.NewInputField().SetMaxLength(500)
	b.send = smiles.NewButton("").SetSelectedFunc(b.submit)
	b.form = smiles.NewForm().
		AddFormItem(b.name).
		AddFormItem(b.message).
		AddButtonItem(b.send)
	b.form.SetBorders(smiles.BordersAll)
	b.list = smiles.NewList().SetBuilder(b.buildMessage).SetGap(1)
	b.list.SetBorders(smiles.BordersAll)
	b.list.SetBorderPadding(0, 0, 1, 0)
	b.empty = smiles.NewTextView()
	b.bottom = smiles.NewFlex().SetDirection(smiles.FlexColumn).
		AddItem(b.location, 0, 1).
		AddItem(b.form, 0, 1).
		AddItem(b.list, 0, 1)

	b.footer = smiles.NewTextView().SetWrap(false).SetTextAlign(smiles.AlignmentCenter)
	b.help = help.New()

	b.page = smiles.NewFlex().
		AddItem(b.header, 1, 0).
		AddItem(b.progress, 5, 0).
		AddItem(info, 0, 2).
		AddItem(b.carousel, 0, 3).
		AddItem(b.bottom, b.form.Height(), 0).
		AddItem(b.footer, 1, 0).
		AddItem(b.help, 1, 0)

	b.keysPanel = help.New().SetShowAll(true)
	b.keysPanel.SetBorders(smiles.BordersAll)
	b.keysPanel.SetBorderSet(smiles.BorderSetRound())
	b.keysPanel.SetBorderPadding(0, 0, 1, 1)

	b.toast = smiles.NewTextView().SetWrap(false).SetTextAlign(smiles.AlignmentCenter)
	b.toast.SetBorders(smiles.BordersAll)
	b.toast.SetBorderSet(smiles.BorderSetRound())

	b.SetBackgroundLayerStyle(tcell.StyleDefault.Dim(true))
	b.AddLayer(b.page, layers.WithName(pageLayer), layers.WithResize(true))
	b.AddLayer(b.keysPanel, layers.WithName(keysLayer), layers.WithResize(false),
		layers.WithVisible(false), layers.WithOverlay())
	b.AddLayer(b.toast, layers.WithName(toastLayer), layers.WithResize(false),
		layers.WithVisible(false), layers.WithEnabled(false))

	b.focusRing = []smiles.Primitive{b.carousel, b.name, b.message, b.send, b.list, b.switcher}

	b.applyLanguage()
	b.applyCampaign()
	return b
}

// Language returns the current language.
func (b *Board) Language() i18n.Language {
	return b.lang
}

// SetLanguage switches every text on the board to lang and reports the
// change to Options.LanguageChanged.
func (b *Board) SetLanguage(lang i18n.Language) {
	if lang == b.lang {
		return
	}
	b.logger.Debug("language changed", zap.String("language", string(lang)))
	b.lang = lang
	b.switcher.current = lang
	b.applyLanguage()
	b.applyCampaign()
	if b.languageChanged != nil {
		b.languageChanged(lang)
	}
}

// Campaign returns the campaign shown.
func (b *Board) Campaign() campaign.Campaign {
	return b.campaign
}

// SetCampaign shows c. It must be called on the event loop.
func (b *Board) SetCampaign(c campaign.Campaign) {
	b.campaign = c
	b.applyCampaign()
}

// UpdateCampaign is a campaign.UpdateFunc. It may be called from any
// goroutine; the update is applied on the event loop. Failed reads keep the
// campaign shown.
func (b *Board) UpdateCampaign(c campaign.Campaign, err error) {
	apply := func() {
		if err != nil {
			b.logger.Warn("keeping previous campaign", zap.Error(err))
			return
		}
		b.SetCampaign(c)
	}
	if b.queue == nil {
		apply()
		return
	}
	b.queue(apply)
}

// SetItems replaces the activity pictures.
func (b *Board) SetItems(items []smiles.CarouselItem) {
	b.carousel.SetItems(items)
}

// Carousel returns the activities carousel.
func (b *Board) Carousel() *smiles.Carousel {
	return b.carousel
}

// ProgressBar returns the hero progress bar.
func (b *Board) ProgressBar() *smiles.ProgressBar {
	return b.progress
}

// Messages returns the messages listed.
func (b *Board) Messages() []messages.Message {
	return b.messages
}

// ReloadMessages reads the message list from the store.
func (b *Board) ReloadMessages(ctx context.Context) error {
	if b.store == nil {
		return nil
	}
	list, err := b.store.List(ctx, b.status, b.limit)
	if err != nil {
		return fmt.Errorf("reloading messages: %w", err)
	}
	b.messages = list
	b.views = make([]*smiles.TextView, len(list))
	for i, m := range list {
		b.views[i] = messageView(m)
	}
	b.list.SetCursor(-1)
	b.list.ScrollToStart()
	return nil
}

// Close stops the timers and animations of the board.
func (b *Board) Close() {
	if b.toastTimer != nil {
		b.toastTimer.Stop()
		b.toastTimer = nil
	}
	b.carousel.Close()
	b.progress.Close()
}

// applyLanguage sets every translated text.
func (b *Board) applyLanguage() {
	t := b.lang.T

	b.progress.SetLabels(t("hero.goal"), t("hero.bags"), t("hero.milestone"))

	b.about.SetTitle(t("about.title"))
	b.about.SetText(t("about.description"))
	b.donations.SetTitle(t("donationItems.title"))

	b.carousel.SetTitle(t("activities"))
	b.carousel.SetLabels(t("activities.prev"), t("activities.next"))
	b.carousel.SetEmptyText(t("activities.none"))

	b.form.SetTitle(t("message.title"))
	b.name.SetLabel(t("message.yourName")).SetPlaceholder(t("message.yourNamePlaceholder"))
	b.message.SetLabel(t("message.messageToKids")).SetPlaceholder(t("message.messagePlaceholder"))
	b.send.SetLabel(t("message.sendButton"))
	b.list.SetTitle(t("message.fromDonors"))

	lines := []string{t("message.noMessages")}
	if b.lang == i18n.Khmer {
		lines = append(lines, t("message.noMessagesEn"))
	}
	b.empty.SetTextStyle(tcell.StyleDefault.Foreground(smiles.Styles.TertiaryTextColor))
	b.empty.SetText(strings.Join(lines, "\n"))

	b.keys.Carousel = b.carousel.KeyMap()
	b.help.SetKeyMap(b.keys)
	b.keysPanel.SetKeyMap(b.keys)
	b.keysPanel.SetTitle(" " + b.keys.Help.Help().Key + " ")
}

// applyCampaign shows the campaign figures and the texts derived from them.
func (b *Board) applyCampaign() {
	t := b.lang.T
	c := b.campaign

	title := c.Title
	if title == "" {
		title = t("hero.title.prefix") + " " + t("hero.title.number") + " " + t("hero.title.suffix")
	}
	prefix, numeral, rest := campaign.SplitTitle(title)
	header := smiles.NewLineBuilder()
	header.Write(prefix, tcell.StyleDefault.Foreground(smiles.Styles.TertiaryTextColor).Bold(true))
	if numeral != "" {
		header.Write(" "+numeral+" ", tcell.StyleDefault.Foreground(smiles.Styles.PrimaryTextColor).Bold(true))
	}
	header.Write(rest, tcell.StyleDefault.Foreground(smiles.Styles.PrimaryTextColor))
	if c.Subtitle != "" {
		header.Write("  "+c.Subtitle, tcell.StyleDefault.Foreground(smiles.Styles.SecondaryTextColor))
	}
	b.title.SetLines(header.Finish())

	milestone := c.Milestone
	if milestone == 0 {
		milestone = b.milestone
	}
	b.progress.SetProgress(c.CurrentBags, c.Goal, milestone)
	b.progress.SetFooter(t("hero.lastUpdated") + " " + lastUpdated(c))

	items := c.DonationItems
	if len(items) == 0 {
		for _, key := range i18n.DonationItemKeys {
			items = append(items, t(key))
		}
	}
	donations := smiles.NewLineBuilder()
	for i, item := range items {
		donations.Write(donationIcons[i%len(donationIcons)]+" ", tcell.StyleDefault)
		donations.Write(item, tcell.StyleDefault.Foreground(smiles.Styles.PrimaryTextColor).Bold(true))
		donations.NewLine()
	}
	b.donations.SetLines(donations.Finish())

	location := smiles.NewLineBuilder()
	heading := tcell.StyleDefault.Foreground(smiles.Styles.SecondaryTextColor).Bold(true)
	plain := tcell.StyleDefault.Foreground(smiles.Styles.PrimaryTextColor)
	location.Write(t("location.title"), heading)
	location.NewLine()
	location.Write("Makerspace, ", plain.Bold(true))
	location.Write(t("location.makerspace"), plain)
	location.NewLine()
	location.Write(t("location.publicService"), plain)
	location.NewLine()
	if c.LocationURL != "" {
		location.Write(t("location.directions")+": ", heading)
		location.Write(c.LocationURL, plain.Underline(true))
		location.NewLine()
	}
	location.Write(t("qr.title.prefix")+" QR "+t("qr.title.suffix"), heading)
	if c.QRURL != "" {
		location.NewLine()
		location.Write(c.QRURL, plain.Underline(true))
	}
	b.location.SetLines(location.Finish())

	school := c.SchoolName
	if school == "" {
		school = defaultOrganizers
	}
	b.footer.SetText(t("footer.organizedBy") + " " + school)
}

// lastUpdated formats the campaign's update time, or a dash when unknown.
func lastUpdated(c campaign.Campaign) string {
	if updated, ok := c.Updated(); ok {
		return updated.Local().Format("2006-01-02 15:04")
	}
	if c.LastUpdated != "" {
		return c.LastUpdated
	}
	return "—"
}

func messageView(m messages.Message) *smiles.TextView {
	lines := smiles.NewLineBuilder()
	lines.Write(m.Name, tcell.StyleDefault.Foreground(smiles.Styles.SecondaryTextColor).Bold(true))
	lines.Write("  "+m.CreatedAt.Local().Format("2006-01-02 15:04"), tcell.StyleDefault.Foreground(smiles.Styles.TertiaryTextColor))
	lines.NewLine()
	lines.Write(m.Message, tcell.StyleDefault.Foreground(smiles.Styles.PrimaryTextColor))
	return smiles.NewTextView().SetLines(lines.Finish())
}

func (b *Board) buildMessage(index, cursor int) smiles.ListItem {
	if len(b.views) == 0 {
		if index == 0 {
			return b.empty
		}
		return nil
	}
	if index < 0 || index >= len(b.views) {
		return nil
	}
	view := b.views[index]
	if index == cursor {
		view.SetBackgroundColor(smiles.Styles.ContrastBackgroundColor)
	} else {
		view.SetBackgroundColor(smiles.Styles.PrimitiveBackgroundColor)
	}
	return view
}

// submit stores the message typed into the form.
func (b *Board) submit() smiles.Command {
	t := b.lang.T
	name, text := b.name.GetText(), b.message.GetText()
	if strings.TrimSpace(name) == "" || strings.TrimSpace(text) == "" {
		return b.notify(t("notification.fillForm"), toastWarning)
	}
	if b.store == nil {
		return b.notify(t("notification.failed"), toastError)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if _, err := b.store.Create(ctx, name, text); err != nil {
		if errors.Is(err, messages.ErrNameRequired) || errors.Is(err, messages.ErrMessageRequired) {
			return b.notify(t("notification.fillForm"), toastWarning)
		}
		b.logger.Error("failed to save message", zap.Error(err))
		return b.notify(t("notification.failed"), toastError)
	}
	b.logger.Info("message saved", zap.String("name", strings.TrimSpace(name)))

	b.name.SetText("")
	b.message.SetText("")
	if err := b.ReloadMessages(ctx); err != nil {
		b.logger.Error("failed to reload messages", zap.Error(err))
	}
	return smiles.AppendCommand(b.notify(t("notification.success"), toastSuccess), smiles.SetFocusCommand{Target: b.name})
}

// notify shows text in the toast layer for a few seconds.
func (b *Board) notify(text string, kind toastKind) smiles.Command {
	color := smiles.Styles.ProgressColor
	switch kind {
	case toastWarning:
		color = smiles.Styles.SecondaryTextColor
	case toastError:
		color = smiles.Styles.ActiveItemColor
	}
	b.toastText = text
	b.toast.SetLines([]smiles.Line{{{Text: text, Style: tcell.StyleDefault.Foreground(color).Bold(true)}}})
	b.toast.SetBorderStyle(tcell.StyleDefault.Foreground(color).Background(smiles.Styles.PrimitiveBackgroundColor))
	b.ShowLayer(toastLayer)

	if b.toastTimer != nil {
		b.toastTimer.Stop()
		b.toastTimer = nil
	}
	if b.scheduler != nil {
		b.toastTimer = b.scheduler.AfterFunc(toastDuration, func() {
			b.toastTimer = nil
			b.HideLayer(toastLayer)
		})
	}
	return smiles.RedrawCommand{}
}

// Toast returns the text of the visible toast, or "" when none is shown.
func (b *Board) Toast() string {
	if !b.GetVisible(toastLayer) {
		return ""
	}
	return b.toastText
}

// KeysShown reports whether the list of all key bindings is open.
func (b *Board) KeysShown() bool {
	return b.GetVisible(keysLayer)
}

// typing reports whether a text field holds the focus.
func (b *Board) typing() bool {
	return b.name.HasFocus() || b.message.HasFocus()
}

func (b *Board) cycleFocus(delta int) smiles.Command {
	n := len(b.focusRing)
	current := -1
	for i, p := range b.focusRing {
		if p.HasFocus() {
			current = i
			break
		}
	}
	var next int
	switch {
	case current >= 0:
		next = ((current+delta)%n + n) % n
	case delta < 0:
		next = n - 1
	}
	return smiles.SetFocusCommand{Target: b.focusRing[next]}
}

// Focus gives the focus to the carousel.
func (b *Board) Focus(delegate func(p smiles.Primitive)) {
	delegate(b.focusRing[0])
}

// InputHandler handles the global keys and passes the rest to the focused
// section.
func (b *Board) InputHandler(event *tcell.EventKey) smiles.Command {
	switch {
	case keybind.Matches(event, b.keys.ForceQuit):
		return smiles.QuitCommand{}
	case b.KeysShown():
		// Any other key dismisses the key list.
		b.HideLayer(keysLayer)
		return smiles.RedrawCommand{}
	case keybind.Matches(event, b.keys.NextSection):
		return b.cycleFocus(1)
	case keybind.Matches(event, b.keys.PrevSection):
		return b.cycleFocus(-1)
	}
	if !b.typing() {
		switch {
		case keybind.Matches(event, b.keys.Quit):
			return smiles.QuitCommand{}
		case keybind.Matches(event, b.keys.Help):
			b.ShowLayer(keysLayer)
			return smiles.RedrawCommand{}
		}
	}
	return b.Layers.InputHandler(event)
}

// Draw implements smiles.Primitive.
func (b *Board) Draw(screen tcell.Screen) {
	x, y, width, height := b.GetInnerRect()
	b.page.ResizeItem(b.bottom, b.form.Height(), 0)

	if b.KeysShown() {
		panelWidth := min(keysPanelWidth, width)
		panelHeight := min(b.keysPanel.Height(panelWidth-4)+2, height)
		b.keysPanel.SetRect(x+(width-panelWidth)/2, y+(height-panelHeight)/2, panelWidth, panelHeight)
	}

	if b.GetVisible(toastLayer) {
		toastWidth := min(smiles.StringWidth(b.toastText)+4, width)
		b.toast.SetRect(x+width-toastWidth, y+min(1, max(height-3, 0)), toastWidth, min(3, height))
	}
	b.Layers.Draw(screen)
}

var _ smiles.Primitive = &Board{}
