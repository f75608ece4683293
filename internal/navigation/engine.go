package navigation

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"burrow/internal/domain"
	"burrow/internal/external"
	"burrow/internal/gopher"
)

const (
	// DefaultPageSize is the number of rows per page when none is configured
	DefaultPageSize = 25
	// DefaultCachedListings is how many history frames keep their listing
	DefaultCachedListings = 32
)

// Fetcher performs one Gopher transaction. *gopher.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, req gopher.Request) (gopher.Response, error)
}

// Options wires an engine to its collaborators
type Options struct {
	Fetcher        Fetcher
	Presenter      Presenter
	Opener         external.Opener
	Home           domain.Listing
	PageSize       int
	CachedListings int
	Logger         *slog.Logger
}

type intent int

const (
	intentOpenDirectory intent = iota
	intentBack
	intentReload
	intentDocument
	intentImage
)

// inflight is the one fetch the engine is waiting for
type inflight struct {
	token  uint64
	cancel context.CancelFunc
	target domain.DirectoryEntry
	intent intent
	frame  int // history index to reveal, for intentBack
}

// fetchOutcome is what a fetch goroutine hands back; it never touches State itself
type fetchOutcome struct {
	token    uint64
	response gopher.Response
	err      error
}

// Engine drives navigation: it owns the State, starts fetches and applies their results.
// All methods are safe to call from any goroutine.
type Engine struct {
	mu     sync.Mutex
	emitMu sync.Mutex
	state  State

	fetcher   Fetcher
	presenter Presenter
	opener    external.Opener
	home      domain.Listing
	logger    *slog.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	tokens  atomic.Uint64 // generation of the pending fetch; bumped on start and on cancel
	pending *inflight
	wg      sync.WaitGroup
}

// New creates an engine. Nothing is shown until Start is called.
func New(ctx context.Context, opts Options) *Engine {
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	if opts.CachedListings < 1 {
		opts.CachedListings = DefaultCachedListings
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Opener == nil {
		opts.Opener = external.NewPlatformOpener()
	}
	if opts.Home == nil {
		opts.Home, _ = LoadHome("")
	}
	engineCtx, cancel := context.WithCancel(ctx)
	return &Engine{
		state:     newState(opts.PageSize, opts.CachedListings),
		fetcher:   opts.Fetcher,
		presenter: opts.Presenter,
		opener:    opts.Opener,
		home:      opts.Home,
		logger:    opts.Logger,
		ctx:       engineCtx,
		cancel:    cancel,
	}
}

// lock takes the state lock and returns an outbox to fill while it is held
func (e *Engine) lock() *outbox {
	e.mu.Lock()
	return &outbox{}
}

// unlock releases the state lock and delivers the outbox. emitMu is taken before mu is
// released so that deliveries happen in the order state changed.
func (e *Engine) unlock(out *outbox) {
	e.emitMu.Lock()
	e.mu.Unlock()
	defer e.emitMu.Unlock()
	if e.presenter == nil {
		return
	}
	for _, event := range *out {
		deliver(e.presenter, event)
	}
}

// Start shows the home listing with a history of just the home frame
func (e *Engine) Start() {
	out := e.lock()
	e.showHome(out)
	out.add(domain.HistoryChangedEvent{Items: e.state.history.snapshot()})
	e.unlock(out)
}

// Close cancels any fetch and waits for its goroutine to finish
func (e *Engine) Close() {
	e.cancel()
	e.wg.Wait()
}

// GoHome shows the home listing and records it as a history checkpoint
func (e *Engine) GoHome() {
	out := e.lock()
	e.cancelPending(out)
	e.state.query = nil
	e.state.history.pushHome()
	e.showHome(out)
	out.add(domain.HistoryChangedEvent{Items: e.state.history.snapshot()})
	e.unlock(out)
}

// Activate does whatever the entry's item type calls for
func (e *Engine) Activate(entry domain.DirectoryEntry) {
	out := e.lock()
	defer e.unlock(out)
	e.activate(out, entry)
}

// OpenURL parses a typed address and activates it. Malformed addresses are rejected
// before any network activity.
func (e *Engine) OpenURL(raw string) error {
	entry, err := gopher.ParseURL(raw)
	if err != nil {
		return err
	}
	e.Activate(entry)
	return nil
}

func (e *Engine) activate(out *outbox, entry domain.DirectoryEntry) {
	e.cancelPending(out)
	e.cancelQuery()

	info := gopher.Classify(entry.Type)
	e.logger.Info("activate", "type", entry.Type.String(), "host", entry.Hostname, "port", entry.Port, "selector", entry.Selector)

	switch info.Action {
	case gopher.ActionFetchListing:
		e.startFetch(out, entry, gopher.KindText, intentOpenDirectory, 0)
	case gopher.ActionFetchText:
		e.startFetch(out, entry, gopher.KindText, intentDocument, 0)
	case gopher.ActionFetchImage:
		e.startFetch(out, entry, gopher.KindBinary, intentImage, 0)
	case gopher.ActionQuery:
		q := entry
		e.state.query = &q
		e.state.queryReturn = e.state.view
		e.state.view = ViewAwaitingQuery
		out.add(domain.QueryRequestedEvent{Entry: q})
	case gopher.ActionOpenExternal:
		if err := e.opener.Open(entry.Selector); err != nil {
			e.logger.Warn("external open failed", "url", entry.Selector, "error", err)
			out.add(domain.NoticeEvent{Kind: domain.NoticeNoHandler, Entry: entry, Message: err.Error()})
		}
	case gopher.ActionNone:
		out.add(domain.NoticeEvent{Kind: domain.NoticeNotNavigable, Entry: entry, Message: info.Name + " entries cannot be opened"})
	default:
		out.add(domain.NoticeEvent{Kind: domain.NoticeUnsupported, Entry: entry, Message: "Unsupported item type " + info.Label})
	}
}

// SubmitQuery sends the pending query with the user's search terms. It reports false
// when no query is waiting.
func (e *Engine) SubmitQuery(text string) bool {
	out := e.lock()
	defer e.unlock(out)
	if e.state.view != ViewAwaitingQuery || e.state.query == nil {
		return false
	}
	entry := e.state.query.WithQuery(text)
	e.state.query = nil
	e.state.view = e.state.queryReturn
	e.startFetch(out, entry, gopher.KindText, intentOpenDirectory, 0)
	return true
}

// CancelQuery abandons a pending query
func (e *Engine) CancelQuery() {
	out := e.lock()
	defer e.unlock(out)
	e.cancelQuery()
}

func (e *Engine) cancelQuery() {
	if e.state.view != ViewAwaitingQuery {
		return
	}
	e.state.query = nil
	e.state.view = e.state.queryReturn
}

// GoBack closes a document, image or query prompt, or else returns to the previous
// directory in history. With only the bottom frame left it does nothing.
func (e *Engine) GoBack() {
	out := e.lock()
	defer e.unlock(out)

	switch e.state.view {
	case ViewAwaitingQuery:
		e.cancelQuery()
		return
	case ViewDocument, ViewImage:
		e.cancelPending(out)
		e.state.view = e.state.returnView
		e.state.text = nil
		e.state.image = nil
		out.add(e.state.listingEvent())
		return
	}

	h := e.state.history
	if h.Len() <= 1 {
		return
	}
	e.cancelPending(out)

	idx := h.Len() - 2
	revealed := h.at(idx)
	switch {
	case revealed.home:
		h.pop()
		e.showHome(out)
	case revealed.cached():
		h.pop()
		e.showListing(out, revealed.entry, revealed.listing)
	default:
		// evicted: history stays as it is until the re-fetch succeeds
		e.startFetch(out, revealed.entry, gopher.KindText, intentBack, idx)
		return
	}
	out.add(domain.HistoryChangedEvent{Items: h.snapshot()})
}

// Reload fetches what is on screen again without touching history
func (e *Engine) Reload() {
	out := e.lock()
	defer e.unlock(out)

	switch e.state.view {
	case ViewListing:
		e.cancelPending(out)
		e.startFetch(out, e.state.history.top().entry, gopher.KindText, intentReload, 0)
	case ViewDocument:
		e.cancelPending(out)
		e.startFetch(out, e.state.document, gopher.KindText, intentDocument, 0)
	case ViewImage:
		e.cancelPending(out)
		e.startFetch(out, e.state.document, gopher.KindBinary, intentImage, 0)
	case ViewHome:
		e.showHome(out)
	}
}

// Stop cancels the outstanding fetch, if any
func (e *Engine) Stop() bool {
	out := e.lock()
	defer e.unlock(out)
	if e.pending == nil {
		return false
	}
	e.cancelPending(out)
	return true
}

// NextPage moves the visible view one page forward
func (e *Engine) NextPage() bool {
	return e.turnPage(true)
}

// PrevPage moves the visible view one page back
func (e *Engine) PrevPage() bool {
	return e.turnPage(false)
}

func (e *Engine) turnPage(forward bool) bool {
	out := e.lock()
	defer e.unlock(out)

	switch {
	case e.state.onListing():
		c := &e.state.listingPage
		moved := c.Prev()
		if forward {
			moved = c.Next(len(e.state.listing))
		}
		if moved {
			out.add(e.state.listingEvent())
		}
		return moved
	case e.state.view == ViewDocument:
		c := &e.state.textPage
		moved := c.Prev()
		if forward {
			moved = c.Next(len(e.state.text))
		}
		if moved {
			out.add(e.state.textEvent())
		}
		return moved
	}
	return false
}

// History returns the history stack, bottom first
func (e *Engine) History() []domain.HistoryItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.history.snapshot()
}

// Snapshot returns a copy of the navigation state
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := Snapshot{
		View:        e.state.view,
		Navigating:  e.pending != nil,
		HistoryLen:  e.state.history.Len(),
		ListingPage: e.state.listingPageInfo(),
		TextPage:    e.state.textPageInfo(),
	}
	if e.state.query != nil {
		q := *e.state.query
		s.Query = &q
	}
	return s
}

// Document returns every line of the open document
func (e *Engine) Document() (domain.DirectoryEntry, []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.document, append([]string(nil), e.state.text...)
}

func (e *Engine) showHome(out *outbox) {
	e.state.view = ViewHome
	e.state.returnView = ViewHome
	e.state.listing = e.home
	e.state.listingTitle = HomeTitle
	e.state.listingPage.Reset()
	e.state.textPage.Reset()
	out.add(e.state.listingEvent())
}

func (e *Engine) showListing(out *outbox, entry domain.DirectoryEntry, listing domain.Listing) {
	e.state.view = ViewListing
	e.state.returnView = ViewListing
	e.state.listing = listing
	e.state.listingTitle = entry.Title()
	e.state.listingPage.Reset()
	out.add(e.state.listingEvent())
}

func (e *Engine) startFetch(out *outbox, target domain.DirectoryEntry, kind gopher.ContentKind, in intent, frame int) {
	e.cancelPending(out)
	if e.fetcher == nil {
		out.add(domain.FailureEvent{Target: target, Err: &gopher.FetchError{Kind: gopher.NetworkFailure, Addr: target.Address()}})
		return
	}

	token := e.tokens.Inc()
	ctx, cancel := context.WithCancel(e.ctx)
	e.pending = &inflight{token: token, cancel: cancel, target: target, intent: in, frame: frame}
	out.add(domain.LoadingEvent{Target: target})

	req := gopher.RequestFor(target, kind)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		resp, err := e.fetcher.Fetch(ctx, req)
		e.complete(fetchOutcome{token: token, response: resp, err: err})
	}()
}

// cancelPending aborts the outstanding fetch. The aborted fetch gets its one terminal
// notice here; its outcome will be discarded when it arrives.
func (e *Engine) cancelPending(out *outbox) {
	p := e.pending
	if p == nil {
		return
	}
	e.pending = nil
	// Retire the token so the outcome is dropped before it takes the lock
	e.tokens.Inc()
	p.cancel()
	e.logger.Debug("fetch cancelled", "token", p.token, "addr", p.target.Address())
	out.add(domain.FailureEvent{
		Target: p.target,
		Err:    &gopher.FetchError{Kind: gopher.Cancelled, Addr: p.target.Address(), Err: gopher.ErrCancelled},
	})
}

// complete applies a fetch outcome if it is still the one being waited for
func (e *Engine) complete(o fetchOutcome) {
	// tokens only moves forward, so an older token can never become current again
	if o.token != e.tokens.Load() {
		e.logger.Debug("discarding superseded fetch", "token", o.token)
		return
	}

	out := e.lock()
	defer e.unlock(out)

	p := e.pending
	if p == nil || p.token != o.token {
		e.logger.Debug("discarding superseded fetch", "token", o.token)
		return
	}
	e.pending = nil
	p.cancel()

	if o.err != nil {
		e.logger.Warn("fetch failed", "addr", p.target.Address(), "selector", p.target.Selector, "error", o.err)
		out.add(domain.FailureEvent{Target: p.target, Err: o.err})
		return
	}

	h := e.state.history
	switch p.intent {
	case intentOpenDirectory:
		listing := gopher.ParseListing(o.response.Text)
		h.push(frame{entry: p.target, listing: listing})
		e.showListing(out, p.target, listing)
		out.add(domain.HistoryChangedEvent{Items: h.snapshot()})
	case intentBack:
		listing := gopher.ParseListing(o.response.Text)
		h.revealAt(p.frame, listing)
		e.showListing(out, p.target, listing)
		out.add(domain.HistoryChangedEvent{Items: h.snapshot()})
	case intentReload:
		listing := gopher.ParseListing(o.response.Text)
		h.setTopListing(listing)
		e.showListing(out, p.target, listing)
	case intentDocument:
		if e.state.onListing() {
			e.state.returnView = e.state.view
		}
		e.state.view = ViewDocument
		e.state.document = p.target
		e.state.text = gopher.SplitLines(o.response.Text)
		e.state.textPage.Reset()
		out.add(e.state.textEvent())
	case intentImage:
		if e.state.onListing() {
			e.state.returnView = e.state.view
		}
		e.state.view = ViewImage
		e.state.document = p.target
		e.state.image = o.response.Data
		out.add(domain.ImageReadyEvent{Entry: p.target, Data: o.response.Data})
	}
}
