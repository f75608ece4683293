package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"burrow/internal/domain"
	"burrow/internal/navigation"
)

// Forwarder queues navigation events and hands them to the Bubble Tea program in order.
// The engine may emit from inside Update, so pushing never blocks.
type Forwarder struct {
	mu    sync.Mutex
	queue []domain.DomainEvent
	wake  chan struct{}
}

// NewForwarder creates an empty forwarder
func NewForwarder() *Forwarder {
	return &Forwarder{wake: make(chan struct{}, 1)}
}

// Presenter returns the presenter to give the navigation engine
func (f *Forwarder) Presenter() navigation.Presenter {
	return navigation.EventPresenter(f.push)
}

func (f *Forwarder) push(event domain.DomainEvent) {
	f.mu.Lock()
	f.queue = append(f.queue, event)
	f.mu.Unlock()

	select {
	case f.wake <- struct{}{}:
	default:
	}
}

func (f *Forwarder) take() []domain.DomainEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.queue
	f.queue = nil
	return events
}

// Run delivers queued events to send until ctx is done
func (f *Forwarder) Run(ctx context.Context, send func(tea.Msg)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-f.wake:
			for _, event := range f.take() {
				send(EventMsg{Event: event})
			}
		}
	}
}
