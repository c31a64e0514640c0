package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"chipledger/internal/game"
)

var _ Store = (*Games)(nil)

type Games struct {
	db *sql.DB
}

func New(db *sql.DB) *Games {
	return &Games{db: db}
}

func (g *Games) Create(s *game.Session) error {
	s.UpdatedAt = time.Now().Unix()
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}

	_, err = g.db.Exec(`
	INSERT INTO games(code, doc, version, updated_at)
	VALUES (?, ?, 1, ?)
	`, s.Code, string(doc), s.UpdatedAt)

	var se sqlite3.Error
	if errors.As(err, &se) && se.Code == sqlite3.ErrConstraint {
		return ErrDuplicate
	}
	return err
}

func (g *Games) Get(code string) (*game.Session, int64, error) {
	var doc string
	var version int64

	err := g.db.QueryRow(`
	SELECT doc, version FROM games WHERE code = ?
	`, code).Scan(&doc, &version)
	if err == sql.ErrNoRows {
		return nil, 0, ErrNotFound
	}
	if err != nil {
		return nil, 0, err
	}

	var s game.Session
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		return nil, 0, fmt.Errorf("unmarshal game %s: %w", code, err)
	}
	return &s, version, nil
}

func (g *Games) Update(code string, s *game.Session, version int64) error {
	s.UpdatedAt = time.Now().Unix()
	doc, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}

	res, err := g.db.Exec(`
	UPDATE games SET doc = ?, version = version + 1, updated_at = ?
	WHERE code = ? AND version = ?
	`, string(doc), s.UpdatedAt, code, version)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		var exists int
		if err := g.db.QueryRow(`SELECT 1 FROM games WHERE code = ?`, code).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		}
		return ErrConflict
	}
	return nil
}

func (g *Games) Delete(code string) error {
	_, err := g.db.Exec(`DELETE FROM games WHERE code = ?`, code)
	return err
}

func (g *Games) PurgeStale(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()

	res, err := g.db.Exec(`DELETE FROM games WHERE updated_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
