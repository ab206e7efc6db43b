package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/config"
)

func TestDSNUsesMatchedRowsSemantics(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     3306,
		User:     "app",
		Password: "secret",
		DBName:   "teamtegrate",
	}

	got := dsn(cfg)

	assert.Equal(t, "app:secret@tcp(db.internal:3306)/teamtegrate?parseTime=true&clientFoundRows=true", got)
	// Without clientFoundRows the driver reports changed rows, and an update
	// that rewrites identical values within the same second would look like a
	// missing row. Idempotent unassigns depend on matched-rows semantics.
	assert.Contains(t, got, "clientFoundRows=true")
}
