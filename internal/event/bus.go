package event

import "sync"

// Event carries the game code so consumers can route per-table fanout
// (websocket rooms, cache keys) without inspecting the payload.
type Event struct {
	Name    string
	Code    string
	Payload interface{}
}

type Handler func(e Event)

type Bus struct {
	handlers map[string][]Handler
	mu       sync.RWMutex
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]Handler),
	}
}

func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if hs, ok := b.handlers[e.Name]; ok {
		for _, h := range hs {
			go h(e)
		}
	}
}
