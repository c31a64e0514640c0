package service

import (
	"encoding/json"

	"chipledger/internal/cache"
	"chipledger/internal/event"
	"chipledger/internal/game"
	"chipledger/internal/ws"
)

// RegisterConsumers fans every updated session out to the table's websocket
// room and refreshes the polling cache.
func RegisterConsumers(bus *event.Bus, hub *ws.Hub) {

	fanout := func(e event.Event) {
		sess, ok := e.Payload.(*game.Session)
		if !ok {
			return
		}
		data, err := json.Marshal(sess)
		if err != nil {
			return
		}

		if cache.Enabled() {
			cache.SetGame(e.Code, string(data))
		}
		hub.Broadcast(e.Code, data)
	}

	bus.Subscribe(event.EventGameCreated, fanout)
	bus.Subscribe(event.EventGameJoined, fanout)
	bus.Subscribe(event.EventGameAction, fanout)
}
