package cursor

// Service moves a cursor over the rows of the current page. Rows that cannot be
// activated can be skipped with a selectable predicate.
type Service struct {
	state      State
	selectable func(index int) bool
}

// NewService creates a new cursor service
func NewService() *Service {
	return &Service{
		state: State{
			ViewportHeight: 20, // Default, will be updated
		},
	}
}

// State returns a copy of the cursor state
func (s *Service) State() State {
	return s.state
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// SetViewportHeight updates the number of rows that fit on screen
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Reset points the cursor at a new list of total rows. The cursor lands on the first
// selectable row, or row 0 if none is.
func (s *Service) Reset(total int, selectable func(index int) bool) {
	s.state.MaxIndex = max(total-1, 0)
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
	s.selectable = selectable
	if first, ok := s.scan(0, 1); ok {
		s.state.Cursor = first
	}
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		if i, ok := s.scan(s.state.Cursor-1, -1); ok {
			s.state.Cursor = i
		}
	case DirectionDown:
		if i, ok := s.scan(s.state.Cursor+1, 1); ok {
			s.state.Cursor = i
		}
	case DirectionHome:
		if i, ok := s.scan(0, 1); ok {
			s.state.Cursor = i
		}
		s.state.ViewportOffset = 0
	case DirectionEnd:
		if i, ok := s.scan(s.state.MaxIndex, -1); ok {
			s.state.Cursor = i
		}
	}
	s.ensureVisible()
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

// scan walks from index in step direction to the first selectable row
func (s *Service) scan(index, step int) (int, bool) {
	for i := index; i >= 0 && i <= s.state.MaxIndex; i += step {
		if s.selectable == nil || s.selectable(i) {
			return i, true
		}
	}
	return 0, false
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
