package navigation

import (
	"burrow/internal/domain"
	"burrow/internal/paging"
)

// View is what the engine is currently showing
type View int

const (
	ViewHome View = iota
	ViewListing
	ViewDocument
	ViewImage
	ViewAwaitingQuery
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewListing:
		return "listing"
	case ViewDocument:
		return "document"
	case ViewImage:
		return "image"
	case ViewAwaitingQuery:
		return "awaiting query"
	default:
		return "unknown"
	}
}

// State is the single navigation state of a session. Only the engine mutates it.
type State struct {
	history *history

	view       View
	returnView View // where closing a document or image goes back to

	listing      domain.Listing
	listingTitle string
	listingPage  paging.Cursor

	document domain.DirectoryEntry
	text     []string
	textPage paging.Cursor

	image []byte

	query       *domain.DirectoryEntry
	queryReturn View
}

func newState(pageSize, cachedListings int) State {
	return State{
		history:     newHistory(cachedListings),
		view:        ViewHome,
		returnView:  ViewHome,
		listingPage: paging.NewCursor(pageSize),
		textPage:    paging.NewCursor(pageSize),
	}
}

// Snapshot is a read-only copy of the parts of State a consumer may inspect
type Snapshot struct {
	View        View
	Navigating  bool
	HistoryLen  int
	ListingPage domain.PageInfo
	TextPage    domain.PageInfo
	Query       *domain.DirectoryEntry
}

func (s *State) listingPageInfo() domain.PageInfo {
	p := paging.Paginate(s.listing, s.listingPage.Size, s.listingPage.Number)
	return domain.PageInfo{Title: s.listingTitle, Number: p.Number, Count: p.Count, Total: p.Total}
}

func (s *State) textPageInfo() domain.PageInfo {
	p := paging.Paginate(s.text, s.textPage.Size, s.textPage.Number)
	return domain.PageInfo{Title: s.document.Title(), Number: p.Number, Count: p.Count, Total: p.Total}
}

func (s *State) listingEvent() domain.ListingReadyEvent {
	p := paging.Paginate(s.listing, s.listingPage.Size, s.listingPage.Number)
	s.listingPage.Number = p.Number
	return domain.ListingReadyEvent{
		Entries: p.Items,
		Page:    domain.PageInfo{Title: s.listingTitle, Number: p.Number, Count: p.Count, Total: p.Total},
	}
}

func (s *State) textEvent() domain.TextReadyEvent {
	p := paging.Paginate(s.text, s.textPage.Size, s.textPage.Number)
	s.textPage.Number = p.Number
	return domain.TextReadyEvent{
		Lines: p.Items,
		Page:  domain.PageInfo{Title: s.document.Title(), Number: p.Number, Count: p.Count, Total: p.Total},
	}
}

func (s *State) onListing() bool {
	return s.view == ViewHome || s.view == ViewListing
}
