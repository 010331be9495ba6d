package registration

import (
	"testing"
	"time"
)

func TestEventBrokerDeliversToSubscribers(t *testing.T) {
	broker := NewEventBroker()

	ch := broker.Subscribe("session-1")
	defer broker.Unsubscribe("session-1", ch)

	broker.Publish(SessionEvent{Type: EventSessionStarted, SessionID: "session-1"})

	select {
	case event := <-ch:
		if event.Type != EventSessionStarted {
			t.Errorf("event type = %s, want %s", event.Type, EventSessionStarted)
		}
		if event.At.IsZero() {
			t.Error("publish should stamp the event time")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestEventBrokerScopesBySession(t *testing.T) {
	broker := NewEventBroker()

	ch := broker.Subscribe("session-1")
	defer broker.Unsubscribe("session-1", ch)

	broker.Publish(SessionEvent{Type: EventAnswerAccepted, SessionID: "session-2"})

	select {
	case event := <-ch:
		t.Errorf("received event %s for another session", event.Type)
	default:
	}
}

func TestEventBrokerUnsubscribeClosesChannel(t *testing.T) {
	broker := NewEventBroker()

	ch := broker.Subscribe("session-1")
	broker.Unsubscribe("session-1", ch)

	if _, ok := <-ch; ok {
		t.Error("expected channel to be closed after unsubscribe")
	}

	// Publishing after the last subscriber left must not panic or block.
	broker.Publish(SessionEvent{Type: EventAnswerAccepted, SessionID: "session-1"})
}

func TestEventBrokerDropsWhenSubscriberIsSlow(t *testing.T) {
	broker := NewEventBroker()

	ch := broker.Subscribe("session-1")
	defer broker.Unsubscribe("session-1", ch)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			broker.Publish(SessionEvent{Type: EventAnswerAccepted, SessionID: "session-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
