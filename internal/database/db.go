package database

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/config"
)

// DB is the shared database handle, set by Init.
var DB *sqlx.DB

// dsn builds the connection string. clientFoundRows switches UPDATE results
// to matched-rows semantics: a statement that rewrites identical values still
// reports the row, which the repositories rely on when they use RowsAffected
// to tell "row missing" apart from "nothing changed".
func dsn(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&clientFoundRows=true",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
	)
}

// Init opens and verifies the MySQL connection.
func Init(cfg config.DatabaseConfig) error {
	db, err := sqlx.Connect("mysql", dsn(cfg))
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	DB = db
	return nil
}
