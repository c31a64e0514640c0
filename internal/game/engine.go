package game

import (
	"fmt"
	"strings"
)

const (
	ActionFold         = "fold"
	ActionCall         = "call"
	ActionRaise        = "raise"
	ActionAdvanceRound = "advance-round"
	ActionResetCall    = "reset-call"
	ActionAwardPot     = "award-pot"
	ActionNewHand      = "new-hand"
	ActionTakeFromPot  = "take-from-pot"
	ActionLoan         = "loan"
	ActionCollectDebt  = "collect-debt"
)

type Action struct {
	Kind       string `json:"action"`
	PlayerName string `json:"playerName"`
	Amount     int    `json:"amount"`
	TargetName string `json:"targetName"`
}

// Apply runs one action against the session. All validation happens before
// any mutation, so a returned error means the session is untouched.
func Apply(s *Session, a Action) error {
	switch a.Kind {
	case ActionFold:
		return s.fold(a.PlayerName)
	case ActionCall:
		return s.call(a.PlayerName)
	case ActionRaise:
		return s.raise(a.PlayerName, a.Amount)
	case ActionAdvanceRound:
		s.advanceRoundManual()
		return nil
	case ActionResetCall:
		s.resetCall(a.Amount)
		return nil
	case ActionAwardPot:
		return s.awardPot(a.TargetName)
	case ActionNewHand:
		s.newHand()
		return nil
	case ActionTakeFromPot:
		return s.takeFromPot(a.TargetName, a.Amount)
	case ActionLoan:
		return s.loan(a.PlayerName, a.TargetName, a.Amount)
	case ActionCollectDebt:
		return s.collectDebt(a.PlayerName, a.TargetName)
	default:
		return ErrUnknownAction
	}
}

// Join seats a new player, or re-identifies an existing one by name.
// The second player joining an untouched game kicks play off by posting
// the starting bid.
func Join(s *Session, name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return -1, ErrNameRequired
	}
	if _, idx := s.FindPlayer(name); idx >= 0 {
		return idx, nil
	}
	if len(s.Players) >= MaxSeats {
		return -1, ErrTableFull
	}

	s.Players = append(s.Players, NewPlayer(name, s.StartingChips))
	s.Log(name + " joined the table")

	if len(s.Players) == 2 && s.Pot == 0 {
		s.postStartingBid()
	}
	return len(s.Players) - 1, nil
}

// checkTurn is the turn-enforcement precondition. It is a read-time check
// against stored state, never a queued ordering guarantee.
func (s *Session) checkTurn(idx int) error {
	if s.FreeTurn || len(s.Players) < 2 {
		return nil
	}
	if idx != s.CurrentIdx {
		return ErrNotYourTurn
	}
	return nil
}

func (s *Session) fold(name string) error {
	p, idx := s.FindPlayer(name)
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.Folded {
		return nil
	}
	if err := s.checkTurn(idx); err != nil {
		return err
	}

	p.Folded = true
	s.Log(p.Name + " folds")

	// Last player standing takes the pot and the hand is over.
	if s.ActiveCount() == 1 {
		for _, w := range s.Players {
			if !w.Folded {
				w.Chips += s.Pot
				s.LogAmount(w.Name+" wins (last standing)", s.Pot)
				break
			}
		}
		s.Pot = 0
		s.newHand()
		return nil
	}

	if !s.FreeTurn {
		s.CurrentIdx = s.nextActiveIdx(idx)
		s.maybeAdvanceStreet()
	}
	return nil
}

func (s *Session) call(name string) error {
	p, idx := s.FindPlayer(name)
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.Folded {
		return nil
	}
	if err := s.checkTurn(idx); err != nil {
		return err
	}

	// Turn-enforced games recompute what is owed from the live max bet
	// rather than trusting a possibly stale callAmount.
	owed := s.CallAmount - p.Bet
	if !s.FreeTurn {
		owed = s.MaxBet() - p.Bet
	}

	if owed <= 0 {
		p.HasActed = true
		s.Log(p.Name + " checks")
	} else {
		pay := owed
		if pay > p.Chips {
			pay = p.Chips
		}
		p.Chips -= pay
		p.Bet += pay
		s.Pot += pay
		p.HasActed = true
		s.LogAmount(p.Name+" calls", pay)
	}

	if !s.FreeTurn {
		s.CurrentIdx = s.nextActiveIdx(idx)
		s.maybeAdvanceStreet()
	}
	return nil
}

func (s *Session) raise(name string, amount int) error {
	p, idx := s.FindPlayer(name)
	if p == nil {
		return ErrPlayerNotFound
	}
	if p.Folded {
		return nil
	}
	if err := s.checkTurn(idx); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	// Over-large raises are capped at the stack, never rejected.
	if amount > p.Chips {
		amount = p.Chips
	}
	p.Chips -= amount
	p.Bet += amount
	s.Pot += amount
	if p.Bet > s.CallAmount {
		s.CallAmount = p.Bet
	}

	if !s.FreeTurn {
		// A raise re-opens the action: everyone else with chips must
		// respond to the new bet before the street can close.
		for _, other := range s.Players {
			if other != p && !other.Folded && other.Chips > 0 {
				other.HasActed = false
			}
		}
		p.HasActed = true
		s.CurrentIdx = s.nextActiveIdx(idx)
	}

	if p.Chips == 0 {
		s.LogAmount(p.Name+" ALL IN 🔥", amount)
	} else {
		s.LogAmount(p.Name+" raises", amount)
	}
	return nil
}

// advanceRoundManual is the host-driven street change used by free-turn
// games. The call amount stays flat across the street: players must still
// match it.
func (s *Session) advanceRoundManual() {
	if s.RoundIdx >= Showdown {
		return
	}
	s.RoundIdx++
	for _, p := range s.Players {
		p.Bet = 0
		p.HasActed = false
	}
	s.RoundMessage = roundMessages[s.RoundIdx]
	s.Log("→ " + roundNames[s.RoundIdx])
	if !s.FreeTurn {
		s.CurrentIdx = s.nextActiveIdx(s.DealerIdx)
	}
}

// roundComplete reports whether every player who can still put chips in has
// matched the table bet and acted. All-in players can never match again and
// are exempt.
func (s *Session) roundComplete() bool {
	if s.ActiveCount() <= 1 {
		return true
	}
	max := s.MaxBet()
	for _, p := range s.Players {
		if p.Folded || p.Chips == 0 {
			continue
		}
		if p.Bet != max || !p.HasActed {
			return false
		}
	}
	return true
}

// maybeAdvanceStreet closes the betting round after a fold, call or check.
// At Showdown nothing advances: awarding the pot is an explicit action.
func (s *Session) maybeAdvanceStreet() {
	if !s.roundComplete() || s.RoundIdx >= Showdown {
		return
	}
	s.RoundIdx++
	for _, p := range s.Players {
		p.Bet = 0
		p.HasActed = false
	}
	s.CallAmount = 0
	s.RoundMessage = roundMessages[s.RoundIdx]
	s.Log("→ " + roundNames[s.RoundIdx])
	s.CurrentIdx = s.nextActiveIdx(s.DealerIdx)
}

// resetCall is a host override for correcting mistakes; it bypasses all
// betting logic.
func (s *Session) resetCall(amount int) {
	if amount < 0 {
		amount = 0
	}
	s.CallAmount = amount
	s.Log(fmt.Sprintf("Call set to %d", amount))
}

func (s *Session) awardPot(target string) error {
	w, _ := s.FindPlayer(target)
	if w == nil {
		return ErrPlayerNotFound
	}
	w.Chips += s.Pot
	s.LogAmount("🏆 "+w.Name+" wins the pot!", s.Pot)
	s.Pot = 0
	s.newHand()
	return nil
}

func (s *Session) newHand() {
	s.HandNum++
	s.RoundIdx = 0
	s.Pot = 0
	s.CallAmount = 0
	s.RoundMessage = ""
	for _, p := range s.Players {
		p.Bet = 0
		p.Folded = false
		p.HasActed = false
	}

	n := len(s.Players)
	if n > 0 {
		s.DealerIdx = (s.DealerIdx + 1) % n
	}
	if n >= 2 {
		s.postStartingBid()
	}
	s.Log(fmt.Sprintf("— Hand %d —", s.HandNum))
}

// postStartingBid takes the forced opening bet from the seat left of the
// dealer. Going all-in on the forced bid is legal, so it caps at the stack.
func (s *Session) postStartingBid() {
	i := (s.DealerIdx + 1) % len(s.Players)
	p := s.Players[i]
	bid := s.StartingBid
	if bid > p.Chips {
		bid = p.Chips
	}
	p.Chips -= bid
	p.Bet = bid
	s.Pot = bid
	s.CallAmount = bid
	s.LogAmount(p.Name+" posts starting bid", bid)
	if !s.FreeTurn {
		s.CurrentIdx = s.nextActiveIdx(i)
	}
}

func (s *Session) takeFromPot(target string, amount int) error {
	t, _ := s.FindPlayer(target)
	if t == nil {
		return ErrPlayerNotFound
	}
	take := amount
	if take > s.Pot {
		take = s.Pot
	}
	if take <= 0 {
		return nil
	}
	s.Pot -= take
	t.Chips += take
	s.LogAmount(fmt.Sprintf("↩ %d returned to %s", take, t.Name), take)
	return nil
}

func (s *Session) loan(lender, borrower string, amount int) error {
	l, li := s.FindPlayer(lender)
	if l == nil {
		return ErrPlayerNotFound
	}
	b, bi := s.FindPlayer(borrower)
	if b == nil {
		return ErrPlayerNotFound
	}
	if li == bi {
		return ErrSelfLoan
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > l.Chips {
		return ErrInsufficientChips
	}

	// A loan moves real chips immediately; the debt entry only records it.
	l.Chips -= amount
	b.Chips += amount

	merged := false
	for i := range b.Debts {
		if strings.EqualFold(b.Debts[i].From, l.Name) {
			b.Debts[i].Amount += amount
			merged = true
			break
		}
	}
	if !merged {
		b.Debts = append(b.Debts, Debt{From: l.Name, Amount: amount})
	}

	s.LogAmount(l.Name+" loaned "+b.Name, amount)
	return nil
}

// collectDebt settles a debt in full or not at all; there is no partial
// collection state.
func (s *Session) collectDebt(collector, debtor string) error {
	c, _ := s.FindPlayer(collector)
	if c == nil {
		return ErrPlayerNotFound
	}
	d, _ := s.FindPlayer(debtor)
	if d == nil {
		return ErrPlayerNotFound
	}

	di := -1
	for i := range d.Debts {
		if strings.EqualFold(d.Debts[i].From, c.Name) {
			di = i
			break
		}
	}
	if di < 0 {
		return ErrNoDebt
	}
	debt := d.Debts[di]
	if d.Chips < debt.Amount {
		return ErrInsufficientChips
	}

	d.Chips -= debt.Amount
	c.Chips += debt.Amount
	d.Debts = append(d.Debts[:di], d.Debts[di+1:]...)
	s.LogAmount(c.Name+" collected debt from "+d.Name, debt.Amount)
	return nil
}
