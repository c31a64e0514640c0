package event

const (
	EventGameCreated = "game.created"
	EventGameJoined  = "game.joined"
	EventGameAction  = "game.action"
	EventHandEnded   = "hand.ended"
	EventPotAwarded  = "pot.awarded"
)
