package ui

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burrow/internal/domain"
	"burrow/internal/gopher"
	inputtypes "burrow/internal/ui/input/types"
)

type fakeNav struct {
	calls     []string
	activated []domain.DirectoryEntry
	submitted []string
	openErr   error
	stopped   bool
	doc       []string
}

func (f *fakeNav) Activate(entry domain.DirectoryEntry) {
	f.calls = append(f.calls, "activate")
	f.activated = append(f.activated, entry)
}

func (f *fakeNav) OpenURL(raw string) error {
	f.calls = append(f.calls, "open:"+raw)
	return f.openErr
}

func (f *fakeNav) SubmitQuery(text string) bool {
	f.calls = append(f.calls, "query")
	f.submitted = append(f.submitted, text)
	return true
}

func (f *fakeNav) CancelQuery() { f.calls = append(f.calls, "cancel-query") }
func (f *fakeNav) GoBack() { f.calls = append(f.calls, "back") }
func (f *fakeNav) GoHome() { f.calls = append(f.calls, "home") }
func (f *fakeNav) Reload() { f.calls = append(f.calls, "reload") }

func (f *fakeNav) Stop() bool {
	f.calls = append(f.calls, "stop")
	return f.stopped
}

func (f *fakeNav) NextPage() bool {
	f.calls = append(f.calls, "next")
	return true
}

func (f *fakeNav) PrevPage() bool {
	f.calls = append(f.calls, "prev")
	return true
}

func (f *fakeNav) Document() (domain.DirectoryEntry, []string) {
	return domain.DirectoryEntry{}, f.doc
}

func newTestModel() (*Model, *fakeNav) {
	nav := &fakeNav{}
	m := NewModel(nav, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, nav
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func keys(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func listing(entries ...domain.DirectoryEntry) EventMsg {
	return EventMsg{Event: domain.ListingReadyEvent{
		Entries: entries,
		Page:    domain.PageInfo{Title: "sdf.org", Number: 1, Count: 1, Total: len(entries)},
	}}
}

var (
	infoRow = domain.DirectoryEntry{Type: domain.TypeInfo, DisplayText: "Welcome"}
	dirRow  = domain.DirectoryEntry{Type: domain.TypeDirectory, DisplayText: "Phlogs", Selector: "/phlogs", Hostname: "sdf.org", Port: 70}
	textRow = domain.DirectoryEntry{Type: domain.TypeText, DisplayText: "About", Selector: "/about.txt", Hostname: "sdf.org", Port: 70}
)

func TestListingRendersAndCursorSkipsInfoRows(t *testing.T) {
	m, nav := newTestModel()
	send(m, listing(infoRow, dirRow, textRow))

	view := m.View()
	assert.Contains(t, view, "Welcome")
	assert.Contains(t, view, "[DIR]")
	assert.Contains(t, view, "Page 1 of 1")
	assert.Equal(t, 1, m.rows.GetCursor(), "info row is not selectable")

	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, nav.activated, 1)
	assert.Equal(t, textRow, nav.activated[0])
}

func TestLoadingAndFailure(t *testing.T) {
	m, _ := newTestModel()
	send(m, listing(dirRow))

	_, cmd := m.Update(EventMsg{Event: domain.LoadingEvent{Target: dirRow}})
	assert.NotNil(t, cmd, "spinner starts ticking")
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Loading")

	err := &gopher.FetchError{Addr: "sdf.org:70", Kind: gopher.NetworkFailure, Err: errors.New("connection refused")}
	send(m, EventMsg{Event: domain.FailureEvent{Target: dirRow, Err: err}})
	assert.False(t, m.loading)
	assert.True(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "connection refused")
}

func TestCancelledFetchIsNotAnError(t *testing.T) {
	m, _ := newTestModel()
	send(m, EventMsg{Event: domain.LoadingEvent{Target: dirRow}})

	err := &gopher.FetchError{Addr: "sdf.org:70", Kind: gopher.Cancelled, Err: gopher.ErrCancelled}
	send(m, EventMsg{Event: domain.FailureEvent{Target: dirRow, Err: err}})
	assert.False(t, m.statusIsError)
	assert.Contains(t, m.statusMessage, "Stopped")
}

func TestEscStopsWhileLoading(t *testing.T) {
	m, nav := newTestModel()
	nav.stopped = true
	send(m, listing(dirRow), EventMsg{Event: domain.LoadingEvent{Target: dirRow}})

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"stop"}, nav.calls)

	send(m, EventMsg{Event: domain.ListingReadyEvent{Entries: []domain.DirectoryEntry{dirRow}}})
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"stop", "back"}, nav.calls)
}

func TestKeyBindings(t *testing.T) {
	m, nav := newTestModel()
	send(m, listing(dirRow))

	send(m, keys("nprHb")...)
	assert.Equal(t, []string{"next", "prev", "reload", "home", "back"}, nav.calls)

	nav.calls = nil
	send(m, keys("s")...)
	assert.Equal(t, []string{"stop"}, nav.calls)
	assert.Equal(t, "Nothing to stop", m.statusMessage)
}

func TestGoToAddress(t *testing.T) {
	m, nav := newTestModel()
	send(m, keys("g")...)
	assert.Equal(t, "Go to: ", m.inputHandler.Prompt())

	send(m, keys("sdf.org")...)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"open:sdf.org"}, nav.calls)
	assert.Empty(t, m.inputHandler.Prompt())

	nav.openErr = &gopher.URLError{URL: "http://x", Reason: "unsupported scheme"}
	send(m, keys("g")...)
	send(m, keys("http://x")...)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.statusIsError)
}

func TestAddressForm(t *testing.T) {
	m, nav := newTestModel()
	send(m, keys("G")...)
	assert.Equal(t, inputtypes.ModeForm, m.inputHandler.CurrentMode())
	assert.Contains(t, m.View(), "Go to address")

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.statusIsError)
	assert.Equal(t, "host is required", m.statusMessage)
	assert.Empty(t, nav.calls)

	send(m, keys("sdf.org")...)
	send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	send(m, keys("/users")...)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, nav.activated, 1)
	assert.Equal(t, domain.DirectoryEntry{Type: domain.TypeDirectory, Hostname: "sdf.org", Port: 70, Selector: "/users"}, nav.activated[0])
	assert.False(t, m.statusIsError)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.NotContains(t, m.View(), "Go to address")
}

func TestGoToTabOpensForm(t *testing.T) {
	m, nav := newTestModel()
	send(m, keys("g")...)
	send(m, keys("sdf.org:7070/0/about.txt")...)
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, inputtypes.ModeForm, m.inputHandler.CurrentMode())
	assert.Empty(t, m.inputHandler.Prompt())

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, nav.activated, 1)
	assert.Equal(t, domain.DirectoryEntry{Type: domain.TypeText, Hostname: "sdf.org", Port: 7070, Selector: "/about.txt"}, nav.activated[0])

	// esc leaves the form without fetching
	send(m, keys("G")...)
	send(m, keys("example.org")...)
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	assert.Len(t, nav.activated, 1)
}

func TestQueryPrompt(t *testing.T) {
	m, nav := newTestModel()
	search := domain.DirectoryEntry{Type: domain.TypeQuery, DisplayText: "Search Veronica", Selector: "/v2/vs", Hostname: "gopher.floodgap.com", Port: 70}

	send(m, EventMsg{Event: domain.QueryRequestedEvent{Entry: search}})
	assert.Equal(t, "Search: ", m.inputHandler.Prompt())
	assert.Contains(t, m.View(), "Search Veronica")

	send(m, keys("gopher")...)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"gopher"}, nav.submitted)

	send(m, EventMsg{Event: domain.QueryRequestedEvent{Entry: search}})
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"query", "cancel-query"}, nav.calls)
	assert.Empty(t, m.inputHandler.Prompt())
}

func TestDocumentScreen(t *testing.T) {
	m, nav := newTestModel()
	send(m, EventMsg{Event: domain.TextReadyEvent{
		Lines: []string{"first line", "second\tline"},
		Page:  domain.PageInfo{Title: "About", Number: 1, Count: 2, Total: 30},
	}})

	view := m.View()
	assert.Contains(t, view, "first line")
	assert.Contains(t, view, "Page 1 of 2")

	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"next", "prev"}, nav.calls, "enter does nothing in a document")
}

func TestImageScreen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	m, _ := newTestModel()
	entry := domain.DirectoryEntry{Type: domain.TypeImage, DisplayText: "logo", Selector: "/logo.png", Hostname: "sdf.org", Port: 70}
	send(m, EventMsg{Event: domain.ImageReadyEvent{Entry: entry, Data: buf.Bytes()}})

	assert.Contains(t, m.View(), "png image, 3×2 pixels")

	send(m, EventMsg{Event: domain.ImageReadyEvent{Entry: entry, Data: []byte("not an image")}})
	assert.Contains(t, m.View(), "Unrecognized image data (12 bytes)")
}

func TestHistoryPopup(t *testing.T) {
	m, nav := newTestModel()
	send(m, EventMsg{Event: domain.HistoryChangedEvent{Items: []domain.HistoryItem{
		{Home: true},
		{Entry: dirRow},
		{Entry: textRow},
	}}})

	send(m, keys("h")...)
	require.True(t, m.showHistory)
	assert.Equal(t, 2, m.historyCursor.GetCursor(), "popup opens on the newest frame")
	assert.Contains(t, m.View(), "History")

	send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showHistory)
	require.Len(t, nav.activated, 1)
	assert.Equal(t, dirRow, nav.activated[0])

	send(m, keys("h")...)
	send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "home", nav.calls[len(nav.calls)-1])
}

func TestNotices(t *testing.T) {
	m, _ := newTestModel()
	send(m, EventMsg{Event: domain.NoticeEvent{Kind: domain.NoticeUnsupported, Message: "Binary files are not supported"}})
	assert.False(t, m.statusIsError)
	assert.Equal(t, "Binary files are not supported", m.statusMessage)

	send(m, EventMsg{Event: domain.NoticeEvent{Kind: domain.NoticeNoHandler, Message: "No program to open web links"}})
	assert.True(t, m.statusIsError)
}

func TestHelpPopup(t *testing.T) {
	m, nav := newTestModel()
	send(m, keys("?")...)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "go to url")

	send(m, keys("n")...)
	assert.Empty(t, nav.calls, "keys are swallowed while help is open")

	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
}

func TestPagerNeedsDocument(t *testing.T) {
	m, _ := newTestModel()
	send(m, EventMsg{Event: domain.TextReadyEvent{Lines: []string{"x"}, Page: domain.PageInfo{Number: 1, Count: 1}}})

	send(m, keys("v")...)
	assert.Equal(t, "No document to page", m.statusMessage)
}

func TestQuitStopsFetch(t *testing.T) {
	m, nav := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"stop"}, nav.calls)
}

func TestForwarderKeepsOrder(t *testing.T) {
	f := NewForwarder()
	p := f.Presenter()
	for i := range 100 {
		p.OnLoading(domain.DirectoryEntry{Port: i})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan tea.Msg, 100)
	go f.Run(ctx, func(msg tea.Msg) { got <- msg })

	for i := range 100 {
		select {
		case msg := <-got:
			loading, ok := msg.(EventMsg).Event.(domain.LoadingEvent)
			require.True(t, ok)
			require.Equal(t, i, loading.Target.Port)
		case <-time.After(time.Second):
			t.Fatalf("event %d not forwarded", i)
		}
	}
}
