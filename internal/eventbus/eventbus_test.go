package eventbus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/domain"
	"atlas/internal/eventbus"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	defer bus.Close()

	received := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventFetchStarted, func(e eventbus.DomainEvent) {
		received <- e
	})

	bus.Publish(eventbus.FetchStartedEvent{URL: "http://example.test"})

	select {
	case e := <-received:
		event, ok := e.(eventbus.FetchStartedEvent)
		require.True(t, ok)
		assert.Equal(t, "http://example.test", event.URL)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	defer bus.Close()

	started := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventFetchStarted, func(e eventbus.DomainEvent) {
		started <- e
	})

	bus.Publish(eventbus.DatasetFailedEvent{})
	bus.Publish(eventbus.FetchStartedEvent{URL: "u"})

	select {
	case e := <-started:
		assert.Equal(t, domain.EventFetchStarted, e.Type())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}

	select {
	case e := <-started:
		t.Fatalf("unexpected extra event: %v", e.Type())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEventsDeliveredInOrder(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	defer bus.Close()

	received := make(chan string, 10)
	bus.Subscribe(eventbus.EventFetchStarted, func(e eventbus.DomainEvent) {
		event := e.(eventbus.FetchStartedEvent)
		received <- event.URL
	})

	urls := []string{"a", "b", "c", "d"}
	for _, u := range urls {
		bus.Publish(eventbus.FetchStartedEvent{URL: u})
	}

	for _, want := range urls {
		select {
		case got := <-received:
			require.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
		}
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	defer bus.Close()

	received := make(chan eventbus.DomainEvent, 2)
	unsubscribe := bus.Subscribe(eventbus.EventFetchStarted, func(e eventbus.DomainEvent) {
		received <- e
	})

	bus.Publish(eventbus.FetchStartedEvent{URL: "first"})
	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first event")
	}

	unsubscribe()
	bus.Publish(eventbus.FetchStartedEvent{URL: "second"})

	select {
	case e := <-received:
		t.Fatalf("received event after unsubscribe: %v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishAfterCloseNotDelivered(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()

	received := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventFetchStarted, func(e eventbus.DomainEvent) {
		received <- e
	})

	bus.Close()
	bus.Publish(eventbus.FetchStartedEvent{URL: "u"})

	select {
	case e := <-received:
		t.Fatalf("received event after close: %v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPanickingHandlerDoesNotKillDispatch(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	defer bus.Close()

	received := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventFetchStarted, func(e eventbus.DomainEvent) {
		panic("boom")
	})
	bus.Subscribe(eventbus.EventFetchStarted, func(e eventbus.DomainEvent) {
		received <- e
	})

	bus.Publish(eventbus.FetchStartedEvent{URL: "u"})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event after handler panic")
	}
}
