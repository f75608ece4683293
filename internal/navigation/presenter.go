package navigation

import "burrow/internal/domain"

// Presenter receives everything the engine wants shown. Calls arrive in order, one at a
// time, and never while the engine's state lock is held. A presenter must not call back
// into the engine synchronously from inside a callback.
type Presenter interface {
	OnLoading(target domain.DirectoryEntry)
	OnListingReady(entries []domain.DirectoryEntry, page domain.PageInfo)
	OnTextReady(lines []string, page domain.PageInfo)
	OnImageReady(entry domain.DirectoryEntry, data []byte)
	OnFailure(target domain.DirectoryEntry, err error)
	OnHistoryChanged(items []domain.HistoryItem)
	OnQueryRequested(entry domain.DirectoryEntry)
	OnNotice(notice domain.NoticeEvent)
}

// EventPresenter adapts a single event callback to Presenter
type EventPresenter func(domain.DomainEvent)

func (f EventPresenter) OnLoading(target domain.DirectoryEntry) {
	f(domain.LoadingEvent{Target: target})
}

func (f EventPresenter) OnListingReady(entries []domain.DirectoryEntry, page domain.PageInfo) {
	f(domain.ListingReadyEvent{Entries: entries, Page: page})
}

func (f EventPresenter) OnTextReady(lines []string, page domain.PageInfo) {
	f(domain.TextReadyEvent{Lines: lines, Page: page})
}

func (f EventPresenter) OnImageReady(entry domain.DirectoryEntry, data []byte) {
	f(domain.ImageReadyEvent{Entry: entry, Data: data})
}

func (f EventPresenter) OnFailure(target domain.DirectoryEntry, err error) {
	f(domain.FailureEvent{Target: target, Err: err})
}

func (f EventPresenter) OnHistoryChanged(items []domain.HistoryItem) {
	f(domain.HistoryChangedEvent{Items: items})
}

func (f EventPresenter) OnQueryRequested(entry domain.DirectoryEntry) {
	f(domain.QueryRequestedEvent{Entry: entry})
}

func (f EventPresenter) OnNotice(notice domain.NoticeEvent) {
	f(notice)
}

// deliver routes an event to the matching Presenter method
func deliver(p Presenter, event domain.DomainEvent) {
	switch e := event.(type) {
	case domain.LoadingEvent:
		p.OnLoading(e.Target)
	case domain.ListingReadyEvent:
		p.OnListingReady(e.Entries, e.Page)
	case domain.TextReadyEvent:
		p.OnTextReady(e.Lines, e.Page)
	case domain.ImageReadyEvent:
		p.OnImageReady(e.Entry, e.Data)
	case domain.FailureEvent:
		p.OnFailure(e.Target, e.Err)
	case domain.HistoryChangedEvent:
		p.OnHistoryChanged(e.Items)
	case domain.QueryRequestedEvent:
		p.OnQueryRequested(e.Entry)
	case domain.NoticeEvent:
		p.OnNotice(e)
	}
}

// outbox collects events while the state lock is held
type outbox []domain.DomainEvent

func (o *outbox) add(e domain.DomainEvent) {
	*o = append(*o, e)
}
