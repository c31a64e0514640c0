package audit

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipledger/internal/db"
)

func TestLogWritesRow(t *testing.T) {
	database := db.Init(filepath.Join(t.TempDir(), "test.db"))
	defer database.Close()

	svc := New(database)
	svc.Log("AAAAA", "player-1", "raise", 200)

	var code, playerID, action string
	var amount int
	err := database.QueryRow(`
	SELECT code, player_id, action, amount FROM audit_logs
	`).Scan(&code, &playerID, &action, &amount)
	require.NoError(t, err)
	assert.Equal(t, "AAAAA", code)
	assert.Equal(t, "player-1", playerID)
	assert.Equal(t, "raise", action)
	assert.Equal(t, 200, amount)
}
