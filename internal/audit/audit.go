package audit

import (
	"database/sql"
	"time"
)

// Service appends one row per applied action. The in-document history is
// what players see; this table is the operator's trail.
type Service struct {
	db *sql.DB
}

func New(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Log(code, playerID, action string, amount int) {

	s.db.Exec(`
	INSERT INTO audit_logs(code, player_id, action, amount, created_at)
	VALUES (?, ?, ?, ?, ?)
	`, code, playerID, action, amount, time.Now().Unix())
}
