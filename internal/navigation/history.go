package navigation

import "burrow/internal/domain"

// frame is one history checkpoint. Directory frames keep the listing they showed
// until they fall too deep in the stack; then going back to them re-fetches.
type frame struct {
	home    bool
	entry   domain.DirectoryEntry
	listing domain.Listing
}

func (f frame) cached() bool {
	return f.home || f.listing != nil
}

// history is the stack of visited directories. The bottom frame is always home.
type history struct {
	frames []frame
	keep   int
}

func newHistory(keep int) *history {
	if keep < 1 {
		keep = 1
	}
	return &history{
		frames: []frame{{home: true}},
		keep:   keep,
	}
}

func (h *history) Len() int {
	return len(h.frames)
}

func (h *history) push(f frame) {
	h.frames = append(h.frames, f)
	h.evict()
}

func (h *history) pushHome() {
	h.push(frame{home: true})
}

// pop removes the top frame; the last remaining frame is never popped
func (h *history) pop() bool {
	if len(h.frames) <= 1 {
		return false
	}
	h.frames = h.frames[:len(h.frames)-1]
	return true
}

func (h *history) top() frame {
	return h.frames[len(h.frames)-1]
}

func (h *history) at(i int) frame {
	return h.frames[i]
}

// revealAt drops every frame above i and stores listing on frame i
func (h *history) revealAt(i int, listing domain.Listing) {
	h.frames = h.frames[:i+1]
	if !h.frames[i].home {
		h.frames[i].listing = listing
	}
}

func (h *history) setTopListing(listing domain.Listing) {
	top := len(h.frames) - 1
	if !h.frames[top].home {
		h.frames[top].listing = listing
	}
}

// evict drops listings of frames deeper than keep
func (h *history) evict() {
	for i := 0; i < len(h.frames)-h.keep; i++ {
		h.frames[i].listing = nil
	}
}

func (h *history) snapshot() []domain.HistoryItem {
	items := make([]domain.HistoryItem, len(h.frames))
	for i, f := range h.frames {
		items[i] = domain.HistoryItem{Home: f.home, Entry: f.entry}
	}
	return items
}
