package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type sqlStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) Get(key string, dest any) (bool, error) {
	var raw string
	query := `SELECT value FROM store WHERE key = $1`

	err := s.db.Get(&raw, query, key)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	err = json.Unmarshal([]byte(raw), dest)
	if err != nil {
		return false, fmt.Errorf("failed to decode key %q: %w", key, err)
	}

	return true, nil
}

func (s *sqlStore) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}

	query := `INSERT INTO store (key, value, updated_at) VALUES ($1, $2, $3)
	          ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err = s.db.Exec(query, key, string(raw), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	return nil
}
