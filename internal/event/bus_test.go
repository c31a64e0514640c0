package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	got := make(chan Event, 2)

	bus.Subscribe(EventGameAction, func(e Event) { got <- e })
	bus.Subscribe(EventGameAction, func(e Event) { got <- e })
	bus.Publish(Event{Name: EventGameAction, Code: "AAAAA", Payload: 42})

	for i := 0; i < 2; i++ {
		select {
		case e := <-got:
			assert.Equal(t, "AAAAA", e.Code)
			assert.Equal(t, 42, e.Payload)
		case <-time.After(time.Second):
			require.Fail(t, "handler not invoked")
		}
	}
}

func TestPublishWithoutSubscribersIsSafe(t *testing.T) {
	bus := NewBus()
	bus.Publish(Event{Name: EventHandEnded, Code: "AAAAA"})
}
