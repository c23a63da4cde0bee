package board

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xqrs/smiles"
	"github.com/xqrs/smiles/internal/campaign"
	"github.com/xqrs/smiles/internal/i18n"
	"github.com/xqrs/smiles/internal/messages"
)

// testScreen records what is drawn. Methods the board does not use panic
// through the nil embedded screen.
type testScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]string
}

func newTestScreen(width, height int) *testScreen {
	return &testScreen{width: width, height: height, cells: map[[2]int]string{}}
}

func (s *testScreen) Size() (int, int) { return s.width, s.height }

func (s *testScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	cluster, rest, boundaries, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if x >= 0 && y >= 0 && x < s.width && y < s.height {
		s.cells[[2]int{x, y}] = cluster
	}
	return rest, boundaries >> uniseg.ShiftWidth
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	return s.cells[[2]int{x, y}], tcell.StyleDefault, 1
}

func (s *testScreen) ShowCursor(x, y int) {}
func (s *testScreen) HideCursor()         {}

func (s *testScreen) text() string {
	var b strings.Builder
	for y := range s.height {
		for x := range s.width {
			if cell, ok := s.cells[[2]int{x, y}]; ok && cell != "" {
				b.WriteString(cell)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
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

type fakeScheduler struct {
	timers []*fakeTimer
	frames []func()
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) smiles.Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) NextFrame(f func()) {
	s.frames = append(s.frames, f)
}

// fire runs the pending timers with duration d.
func (s *fakeScheduler) fire(d time.Duration) {
	for _, t := range s.timers {
		if t.d == d && !t.stopped && !t.fired {
			t.fired = true
			t.f()
		}
	}
}

type failingStore struct{}

func (failingStore) Create(context.Context, string, string) (messages.Message, error) {
	return messages.Message{}, errors.New("disk full")
}

func (failingStore) List(context.Context, string, int) ([]messages.Message, error) {
	return nil, errors.New("disk full")
}

// focusTracker plays the application's part in moving the focus.
type focusTracker struct {
	focused smiles.Primitive
}

func (f *focusTracker) set(p smiles.Primitive) {
	if f.focused != nil {
		f.focused.Blur()
	}
	f.focused = p
	p.Focus(f.set)
}

func (f *focusTracker) run(cmd smiles.Command) (quit bool) {
	switch c := cmd.(type) {
	case smiles.BatchCommand:
		for _, item := range c {
			quit = f.run(item) || quit
		}
	case smiles.SetFocusCommand:
		f.set(c.Target)
	case smiles.QuitCommand:
		return true
	}
	return quit
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, "", tcell.ModNone)
}

func runeKey(s string) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, s, tcell.ModNone)
}

func newMemoryStore(t *testing.T) *messages.Store {
	t.Helper()
	store, err := messages.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNewShowsDefaults(t *testing.T) {
	b := New(Options{Milestone: 1000})
	defer b.Close()

	assert.Equal(t, i18n.English, b.Language())
	assert.Equal(t, campaign.DefaultGoal, b.Campaign().Goal)
	assert.Equal(t, 0, b.ProgressBar().Displayed())

	screen := newTestScreen(120, 50)
	b.SetRect(0, 0, 120, 50)
	b.Draw(screen)
	text := screen.text()
	assert.Contains(t, text, "Foundation of")
	assert.Contains(t, text, "Bags Delivered to Kids")
	assert.Contains(t, text, "Last updated: —")
	assert.Contains(t, text, "Organized by: "+defaultOrganizers)
	assert.Contains(t, text, "No pictures yet")
}

func TestSetCampaign(t *testing.T) {
	b := New(Options{})
	defer b.Close()

	b.SetCampaign(campaign.Campaign{
		Title:         "Campaign 300 Smiles",
		CurrentBags:   150,
		Goal:          300,
		DonationItems: []string{"Pencils", "Rice"},
		SchoolName:    "Hope School",
		LastUpdated:   "2025-01-02",
	})

	assert.Equal(t, 50, b.ProgressBar().Percent())
	assert.Equal(t, 150, b.ProgressBar().Displayed())
	assert.Equal(t, "👕 Pencils\n🍪 Rice", b.donations.GetText())
	assert.Equal(t, "Organized by: Hope School", b.footer.GetText())
	assert.Equal(t, "Campaign 300 Smiles", b.title.GetText())
}

func TestDefaultDonationItems(t *testing.T) {
	b := New(Options{})
	lines := strings.Split(b.donations.GetText(), "\n")
	require.Len(t, lines, len(i18n.DonationItemKeys))
	assert.Equal(t, "👕 Clothes and various apparel", lines[0])
	assert.Equal(t, "🧸 Toys and playthings", lines[4])
}

func TestLastUpdated(t *testing.T) {
	assert.Equal(t, "—", lastUpdated(campaign.Campaign{}))
	assert.Equal(t, "yesterday", lastUpdated(campaign.Campaign{LastUpdated: "yesterday"}))

	at := time.Date(2025, 3, 4, 5, 6, 0, 0, time.UTC)
	assert.Equal(t, at.Local().Format("2006-01-02 15:04"),
		lastUpdated(campaign.Campaign{LastUpdated: at.Format(time.RFC3339)}))
}

func TestUpdateCampaignThroughQueue(t *testing.T) {
	var queued []func()
	b := New(Options{Queue: func(f func()) { queued = append(queued, f) }})

	b.UpdateCampaign(campaign.Campaign{CurrentBags: 10, Goal: 100}, nil)
	assert.Equal(t, 0, b.Campaign().CurrentBags, "applied before the loop ran it")
	require.Len(t, queued, 1)
	queued[0]()
	assert.Equal(t, 10, b.Campaign().CurrentBags)

	b.UpdateCampaign(campaign.Campaign{}, errors.New("broken file"))
	require.Len(t, queued, 2)
	queued[1]()
	assert.Equal(t, 10, b.Campaign().CurrentBags)
}

func TestSwitchLanguage(t *testing.T) {
	b := New(Options{Language: i18n.Khmer})
	assert.Equal(t, "បញ្ជូនសារ (Send Message)", b.send.GetLabel())
	assert.Contains(t, b.empty.GetText(), "(No messages yet.")

	b.SetLanguage(i18n.English)
	assert.Equal(t, "Send Message", b.send.GetLabel())
	assert.NotContains(t, b.empty.GetText(), "\n")
	assert.Equal(t, "Our Activities", b.carousel.GetTitle())

	b.switcher.cycle(1)
	assert.Equal(t, i18n.Khmer, b.Language())
}

func TestSwitchLanguageReportsChange(t *testing.T) {
	var saved []i18n.Language
	b := New(Options{Language: i18n.English, LanguageChanged: func(lang i18n.Language) {
		saved = append(saved, lang)
	}})

	b.SetLanguage(i18n.English)
	assert.Empty(t, saved, "same language")

	b.switcher.cycle(1)
	b.SetLanguage(i18n.English)
	assert.Equal(t, []i18n.Language{i18n.Khmer, i18n.English}, saved)
}

func TestSubmitRequiresNameAndMessage(t *testing.T) {
	store := newMemoryStore(t)
	b := New(Options{Store: store})

	b.name.SetText("Dara")
	b.submit()
	assert.Equal(t, "Please fill in your name and message", b.Toast())

	list, err := store.List(context.Background(), messages.StatusAll, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitStoresMessage(t *testing.T) {
	store := newMemoryStore(t)
	scheduler := &fakeScheduler{}
	b := New(Options{Store: store, Scheduler: scheduler})
	defer b.Close()

	b.name.SetText("  Dara ")
	b.message.SetText("Study hard!")
	tracker := &focusTracker{}
	tracker.run(b.submit())

	assert.Equal(t, "Message sent successfully!", b.Toast())
	assert.Empty(t, b.name.GetText())
	assert.Empty(t, b.message.GetText())
	require.Len(t, b.Messages(), 1)
	assert.Equal(t, "Dara", b.Messages()[0].Name)
	assert.Same(t, smiles.Primitive(b.name), tracker.focused)

	scheduler.fire(toastDuration)
	assert.Empty(t, b.Toast())
}

func TestSubmitStoreFailure(t *testing.T) {
	b := New(Options{Store: failingStore{}})
	b.name.SetText("Dara")
	b.message.SetText("Hello")
	b.submit()
	assert.Equal(t, "Failed to send message", b.Toast())
	assert.Equal(t, "Dara", b.name.GetText(), "form kept for another try")

	assert.Error(t, b.ReloadMessages(context.Background()))
}

func TestMessageListBuilder(t *testing.T) {
	store := newMemoryStore(t)
	b := New(Options{Store: store})

	assert.Same(t, smiles.ListItem(b.empty), b.buildMessage(0, -1))
	assert.Nil(t, b.buildMessage(1, -1))

	_, err := store.Create(context.Background(), "Sok", "Good luck")
	require.NoError(t, err)
	require.NoError(t, b.ReloadMessages(context.Background()))

	item := b.buildMessage(0, -1)
	require.NotNil(t, item)
	assert.Contains(t, item.(*smiles.TextView).GetText(), "Good luck")
	assert.Nil(t, b.buildMessage(1, -1))
}

func TestFocusCycle(t *testing.T) {
	b := New(Options{})
	tracker := &focusTracker{}
	tracker.set(b)
	assert.Same(t, smiles.Primitive(b.carousel), tracker.focused)
	assert.True(t, b.HasFocus())

	for _, want := range []smiles.Primitive{b.name, b.message, b.send, b.list, b.switcher, b.carousel} {
		tracker.run(b.InputHandler(key(tcell.KeyTab)))
		assert.Same(t, want, tracker.focused)
	}

	tracker.run(b.InputHandler(key(tcell.KeyBacktab)))
	assert.Same(t, smiles.Primitive(b.switcher), tracker.focused)
}

func TestQuitAndHelpKeys(t *testing.T) {
	b := New(Options{})
	tracker := &focusTracker{}
	tracker.set(b)

	assert.False(t, b.KeysShown())
	b.InputHandler(runeKey("?"))
	assert.True(t, b.KeysShown())

	screen := newTestScreen(120, 50)
	b.SetRect(0, 0, 120, 50)
	b.Draw(screen)
	assert.Contains(t, screen.text(), "previous section")

	// The first key only closes the list.
	assert.False(t, tracker.run(b.InputHandler(runeKey("q"))))
	assert.False(t, b.KeysShown())
	assert.True(t, tracker.run(b.InputHandler(runeKey("q"))))

	// While typing, q and ? are text.
	tracker.set(b.name)
	assert.False(t, tracker.run(b.InputHandler(runeKey("q"))))
	b.InputHandler(runeKey("?"))
	assert.Equal(t, "q?", b.name.GetText())
	assert.False(t, b.KeysShown())
}

func TestCarouselKeysReachCarousel(t *testing.T) {
	b := New(Options{Items: []smiles.CarouselItem{{Title: "a"}, {Title: "b"}, {Title: "c"}}})
	tracker := &focusTracker{}
	tracker.set(b)
	b.SetRect(0, 0, 100, 40)
	b.Draw(newTestScreen(100, 40))

	b.InputHandler(key(tcell.KeyRight))
	assert.Equal(t, 1, b.Carousel().LogicalIndex())
	b.InputHandler(key(tcell.KeyLeft))
	b.InputHandler(key(tcell.KeyLeft))
	assert.Equal(t, 2, b.Carousel().LogicalIndex())
}

func TestOverlay(t *testing.T) {
	o := NewOverlay(Options{Milestone: 1000})
	defer o.Close()
	o.SetCampaign(campaign.Campaign{CurrentBags: 2500, Goal: 5000, LastUpdated: "soon"})
	assert.Equal(t, 50, o.ProgressBar().Percent())

	screen := newTestScreen(80, 20)
	o.SetRect(0, 0, 80, 20)
	o.Draw(screen)
	assert.Contains(t, screen.text(), "Last updated: soon")

	tracker := &focusTracker{}
	tracker.set(o)
	assert.True(t, o.HasFocus())
	assert.True(t, tracker.run(o.InputHandler(runeKey("q"))))
}
