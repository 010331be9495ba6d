package registration

import (
	"sync"
	"time"
)

// EventBroker fans out wizard session events to websocket subscribers. A slow
// subscriber never blocks the wizard: events are dropped when its buffer is
// full.
type EventBroker struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan SessionEvent]struct{}
}

func NewEventBroker() *EventBroker {
	return &EventBroker{
		subscribers: make(map[string]map[chan SessionEvent]struct{}),
	}
}

func (b *EventBroker) Subscribe(sessionID string) chan SessionEvent {
	ch := make(chan SessionEvent, 16)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subscribers[sessionID]; !ok {
		b.subscribers[sessionID] = make(map[chan SessionEvent]struct{})
	}
	b.subscribers[sessionID][ch] = struct{}{}

	return ch
}

func (b *EventBroker) Unsubscribe(sessionID string, ch chan SessionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subs, ok := b.subscribers[sessionID]; ok {
		if _, ok := subs[ch]; ok {
			delete(subs, ch)
			close(ch)
		}
		if len(subs) == 0 {
			delete(b.subscribers, sessionID)
		}
	}
}

func (b *EventBroker) Publish(event SessionEvent) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers[event.SessionID] {
		select {
		case ch <- event:
		default:
		}
	}
}
