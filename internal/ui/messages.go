package ui

import (
	"time"

	"burrow/internal/domain"
)

// EventMsg wraps a navigation event for the UI
type EventMsg struct {
	Event domain.DomainEvent
}

// tickMsg is sent on a timer for the loading spinner
type tickMsg time.Time

// pagerDoneMsg reports that the external pager has exited
type pagerDoneMsg struct {
	err error
}
