package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"chipledger/internal/audit"
	"chipledger/internal/cache"
	"chipledger/internal/event"
	"chipledger/internal/game"
	"chipledger/internal/logger"
	"chipledger/internal/monitoring"
	"chipledger/internal/store"
)

// Service runs the read-apply-write cycle around the engine. The engine is
// a pure transition; everything stateful (document versioning, audit rows,
// event fanout) lives here.
type Service struct {
	store store.Store
	audit *audit.Service
	bus   *event.Bus
}

func New(st store.Store, aud *audit.Service, bus *event.Bus) *Service {
	return &Service{store: st, audit: aud, bus: bus}
}

func (s *Service) Create(hostName string, chips int, freeTurn bool) (*game.Session, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return nil, game.ErrNameRequired
	}

	// Code collisions are rare; just redraw.
	for attempt := 0; attempt < 5; attempt++ {
		sess := game.NewSession(game.NewCode(), hostName, chips, freeTurn)
		err := s.store.Create(sess)
		if errors.Is(err, store.ErrDuplicate) {
			continue
		}
		if err != nil {
			return nil, err
		}

		monitoring.GamesCreated.Inc()
		s.bus.Publish(event.Event{Name: event.EventGameCreated, Code: sess.Code, Payload: sess})
		logger.Log.Info("game created",
			zap.String("code", sess.Code),
			zap.String("host", hostName),
			zap.Int("chips", sess.StartingChips),
		)
		return sess, nil
	}
	return nil, store.ErrDuplicate
}

func (s *Service) Join(code, name string) (*game.Session, int, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var sess *game.Session
	var idx int
	err := s.mutate(code, func(g *game.Session) error {
		var err error
		idx, err = game.Join(g, name)
		sess = g
		return err
	})
	if err != nil {
		return nil, -1, err
	}

	s.bus.Publish(event.Event{Name: event.EventGameJoined, Code: code, Payload: sess})
	logger.Log.Info("player joined", zap.String("code", code), zap.String("name", name))
	return sess, idx, nil
}

func (s *Service) Get(code string) (*game.Session, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	if cache.Enabled() {
		if doc, err := cache.GetGame(code); err == nil {
			if sess, ok := decodeSession(doc); ok {
				return sess, nil
			}
		}
	}

	sess, _, err := s.store.Get(code)
	return sess, err
}

// Act applies one action against the stored document. A lost CAS race is
// retried once against the fresh document, then surfaced to the caller.
func (s *Service) Act(code string, a game.Action) (*game.Session, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var sess *game.Session
	var before int
	err := s.mutate(code, func(g *game.Session) error {
		before = g.HandNum
		sess = g
		return game.Apply(g, a)
	})
	if err != nil {
		monitoring.ActionRejections.WithLabelValues(reason(err)).Inc()
		return nil, err
	}

	monitoring.Actions.WithLabelValues(a.Kind).Inc()
	s.audit.Log(code, actorID(sess, a.PlayerName), a.Kind, a.Amount)

	s.bus.Publish(event.Event{Name: event.EventGameAction, Code: code, Payload: sess})
	if sess.HandNum > before {
		s.bus.Publish(event.Event{Name: event.EventHandEnded, Code: code, Payload: sess})
	}
	if a.Kind == game.ActionAwardPot {
		s.bus.Publish(event.Event{Name: event.EventPotAwarded, Code: code, Payload: sess})
	}

	logger.Log.Info("action applied",
		zap.String("code", code),
		zap.String("action", a.Kind),
		zap.String("player", a.PlayerName),
		zap.Int("amount", a.Amount),
	)
	return sess, nil
}

// Purge removes games untouched for longer than maxAge; used by the admin
// endpoint, the sweeper job calls the store directly.
func (s *Service) Purge(maxAge time.Duration) (int64, error) {
	return s.store.PurgeStale(maxAge)
}

// mutate is one optimistic read-modify-write cycle, retried once on a
// version conflict. The transition runs on the freshly loaded document, so
// a failed apply never leaves partial state behind.
func (s *Service) mutate(code string, fn func(*game.Session) error) error {
	for attempt := 0; attempt < 2; attempt++ {
		sess, version, err := s.store.Get(code)
		if err != nil {
			return err
		}
		if err := fn(sess); err != nil {
			return err
		}

		err = s.store.Update(code, sess, version)
		if errors.Is(err, store.ErrConflict) && attempt == 0 {
			continue
		}
		return err
	}
	return store.ErrConflict
}

func decodeSession(doc string) (*game.Session, bool) {
	var sess game.Session
	if err := json.Unmarshal([]byte(doc), &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

func actorID(sess *game.Session, name string) string {
	if p, _ := sess.FindPlayer(name); p != nil {
		return p.ID
	}
	return ""
}

func reason(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "game_not_found"
	case errors.Is(err, game.ErrPlayerNotFound):
		return "player_not_found"
	case errors.Is(err, game.ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, game.ErrInsufficientChips):
		return "insufficient_chips"
	case errors.Is(err, game.ErrInvalidAmount), errors.Is(err, game.ErrUnknownAction),
		errors.Is(err, game.ErrNoDebt), errors.Is(err, game.ErrSelfLoan):
		return "bad_request"
	case errors.Is(err, store.ErrConflict):
		return "conflict"
	default:
		return "fault"
	}
}
