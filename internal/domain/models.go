package domain

import "fmt"

// DefaultPort is the Gopher port used when none is given or it cannot be parsed
const DefaultPort = 70

// ItemType is the single character code that classifies a menu entry
type ItemType rune

// Known item types
const (
	TypeText      ItemType = '0'
	TypeDirectory ItemType = '1'
	TypeError     ItemType = '3'
	TypeArchive   ItemType = '5'
	TypeQuery     ItemType = '7'
	TypeBinary    ItemType = '9'
	TypeGIF       ItemType = 'g'
	TypeWebLink   ItemType = 'h'
	TypeInfo      ItemType = 'i'
	TypeImage     ItemType = 'I'
)

func (t ItemType) String() string { return string(rune(t)) }

// DirectoryEntry is a reference to a remote resource
type DirectoryEntry struct {
	Type        ItemType
	DisplayText string
	Selector    string // sent verbatim; empty means root
	Hostname    string // empty for informational rows
	Port        int
}

// Address returns host:port for dialing
func (e DirectoryEntry) Address() string {
	return fmt.Sprintf("%s:%d", e.Hostname, e.Port)
}

// Title is the "host port selector" caption shown above a fetched resource
func (e DirectoryEntry) Title() string {
	return fmt.Sprintf("%s %d %s", e.Hostname, e.Port, e.Selector)
}

// WithQuery returns a copy whose selector carries the search terms
func (e DirectoryEntry) WithQuery(query string) DirectoryEntry {
	q := e
	q.Selector = e.Selector + "\t" + query
	return q
}

// Listing is one parsed menu, in server order
type Listing []DirectoryEntry

// PageInfo describes which slice of a longer sequence is being shown
type PageInfo struct {
	Title  string
	Number int
	Count  int
	Total  int
}

// String renders the "Page N of M" caption
func (p PageInfo) String() string {
	return fmt.Sprintf("Page %d of %d", p.Number, p.Count)
}

// HistoryItem is a read-only view of one history frame
type HistoryItem struct {
	Home  bool
	Entry DirectoryEntry
}

// Label is how the session history view names a frame
func (h HistoryItem) Label() string {
	if h.Home {
		return "Home"
	}
	if h.Entry.DisplayText != "" {
		return h.Entry.DisplayText
	}
	return h.Entry.Title()
}
