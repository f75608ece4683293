package domain

// EventType represents the type of presentation event
type EventType string

// Event types
const (
	EventLoading        EventType = "Loading"
	EventListingReady   EventType = "ListingReady"
	EventTextReady      EventType = "TextReady"
	EventImageReady     EventType = "ImageReady"
	EventFailure        EventType = "Failure"
	EventHistoryChanged EventType = "HistoryChanged"
	EventQueryRequested EventType = "QueryRequested"
	EventNotice         EventType = "Notice"
)

// DomainEvent is the interface for all events the navigation core emits
type DomainEvent interface {
	Type() EventType
}

// LoadingEvent is emitted when a fetch starts
type LoadingEvent struct {
	Target DirectoryEntry
}

func (e LoadingEvent) Type() EventType { return EventLoading }

// ListingReadyEvent carries one page of the current listing
type ListingReadyEvent struct {
	Entries []DirectoryEntry
	Page    PageInfo
}

func (e ListingReadyEvent) Type() EventType { return EventListingReady }

// TextReadyEvent carries one page of the current document
type TextReadyEvent struct {
	Lines []string
	Page  PageInfo
}

func (e TextReadyEvent) Type() EventType { return EventTextReady }

// ImageReadyEvent carries raw image bytes; decoding is up to the consumer
type ImageReadyEvent struct {
	Entry DirectoryEntry
	Data  []byte
}

func (e ImageReadyEvent) Type() EventType { return EventImageReady }

// FailureEvent is the single terminal notice of a failed or cancelled fetch
type FailureEvent struct {
	Target DirectoryEntry
	Err    error
}

func (e FailureEvent) Type() EventType { return EventFailure }

// HistoryChangedEvent carries a snapshot of the history stack, bottom first
type HistoryChangedEvent struct {
	Items []HistoryItem
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChanged }

// QueryRequestedEvent asks the consumer for search terms
type QueryRequestedEvent struct {
	Entry DirectoryEntry
}

func (e QueryRequestedEvent) Type() EventType { return EventQueryRequested }

// NoticeKind classifies informational notices
type NoticeKind int

const (
	NoticeUnsupported NoticeKind = iota
	NoticeNotNavigable
	NoticeNoHandler
)

// NoticeEvent is a user-visible message that is not a fetch failure
type NoticeEvent struct {
	Kind    NoticeKind
	Entry   DirectoryEntry
	Message string
}

func (e NoticeEvent) Type() EventType { return EventNotice }
