package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxSeats bounds the stored document; the original table game never
	// needs more than a home game's worth of players.
	MaxSeats = 10

	// MaxHistory is the cap on the activity log, newest first.
	MaxHistory = 60

	// DefaultChips is the buy-in used when game creation omits one.
	DefaultChips = 2000

	// Showdown is the last street index (0=Pre-flop .. 4=Showdown).
	Showdown = 4
)

var roundNames = [5]string{"Pre-flop", "Flop", "Turn", "River", "Showdown"}

var roundMessages = [5]string{
	"",
	"🃏 Deal 3 community cards face up",
	"🃏 Deal the 4th community card",
	"🃏 Deal the 5th and final card",
	"🏆 Reveal hands — award the pot!",
}

// Debt is an IOU held on the borrower, keyed by lender name.
// At most one entry per lender; repeated loans accumulate.
type Debt struct {
	From   string `json:"from"`
	Amount int    `json:"amount"`
}

type HistoryEntry struct {
	Time   string `json:"time"`
	Text   string `json:"text"`
	Amount *int   `json:"amount"`
}

type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Chips    int    `json:"chips"`
	Bet      int    `json:"bet"`
	Folded   bool   `json:"folded"`
	HasActed bool   `json:"hasActed"`
	Debts    []Debt `json:"debts"`
}

// Session is the full game document, one per code. It is read, mutated by
// the engine and written back whole on every request.
type Session struct {
	Code          string         `json:"code"`
	HostName      string         `json:"hostName"`
	StartingChips int            `json:"startingChips"`
	StartingBid   int            `json:"startingBid"`
	Pot           int            `json:"pot"`
	CallAmount    int            `json:"callAmount"`
	RoundIdx      int            `json:"roundIdx"`
	HandNum       int            `json:"handNum"`
	DealerIdx     int            `json:"dealerIdx"`
	CurrentIdx    int            `json:"currentIdx"`
	FreeTurn      bool           `json:"freeTurn"`
	RoundMessage  string         `json:"roundMessage"`
	Players       []*Player      `json:"players"`
	History       []HistoryEntry `json:"history"`
	CreatedAt     int64          `json:"createdAt"`
	UpdatedAt     int64          `json:"updatedAt"`
}

func NewPlayer(name string, chips int) *Player {
	return &Player{
		ID:    uuid.New().String(),
		Name:  name,
		Chips: chips,
		Debts: []Debt{},
	}
}

// NewSession seats the host and derives the starting bid from the buy-in.
func NewSession(code, hostName string, chips int, freeTurn bool) *Session {
	if chips <= 0 {
		chips = DefaultChips
	}
	now := time.Now().Unix()
	s := &Session{
		Code:          code,
		HostName:      hostName,
		StartingChips: chips,
		StartingBid:   (chips + 20) / 40,
		HandNum:       1,
		FreeTurn:      freeTurn,
		Players:       []*Player{NewPlayer(hostName, chips)},
		History:       []HistoryEntry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.Log(hostName + " created the game")
	return s
}

// Log prepends an entry to the activity log, dropping the oldest past the cap.
func (s *Session) Log(text string) {
	s.logEntry(HistoryEntry{Time: clockNow(), Text: text})
}

func (s *Session) LogAmount(text string, amount int) {
	a := amount
	s.logEntry(HistoryEntry{Time: clockNow(), Text: text, Amount: &a})
}

func (s *Session) logEntry(e HistoryEntry) {
	s.History = append([]HistoryEntry{e}, s.History...)
	if len(s.History) > MaxHistory {
		s.History = s.History[:MaxHistory]
	}
}

func clockNow() string {
	return time.Now().Format("3:04 PM")
}

// FindPlayer resolves a name case-insensitively. Returns nil, -1 when absent.
func (s *Session) FindPlayer(name string) (*Player, int) {
	for i, p := range s.Players {
		if strings.EqualFold(p.Name, name) {
			return p, i
		}
	}
	return nil, -1
}

// ActiveCount is the number of players still in the hand.
func (s *Session) ActiveCount() int {
	n := 0
	for _, p := range s.Players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// MaxBet is the largest total committed this street by a player still in
// the hand. Folded players' dead bets do not set the bar.
func (s *Session) MaxBet() int {
	max := 0
	for _, p := range s.Players {
		if !p.Folded && p.Bet > max {
			max = p.Bet
		}
	}
	return max
}

// nextActiveIdx walks seats after from, returning the first player who is
// neither folded nor out of chips. Returns from when no such player exists.
func (s *Session) nextActiveIdx(from int) int {
	n := len(s.Players)
	if n == 0 {
		return from
	}
	for step := 1; step <= n; step++ {
		i := (from + step) % n
		p := s.Players[i]
		if !p.Folded && p.Chips > 0 {
			return i
		}
	}
	return from
}
