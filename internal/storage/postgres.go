package storage

import (
	"database/sql"
	"fmt"
)

// PostgresStore keeps each slot as a row in storage_slots. Writes are
// whole-value upserts, matching the last-write-wins contract of Store.
type PostgresStore struct{ db *sql.DB }

// NewPostgresStore ensures the slot table exists.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS storage_slots (
			key        TEXT PRIMARY KEY,
			data       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return nil, fmt.Errorf("ensure storage_slots: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Load(key string) ([]byte, error) {
	var data []byte
	err := p.db.QueryRow(`SELECT data FROM storage_slots WHERE key = $1`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %s: %w", key, err)
	}
	return data, nil
}

func (p *PostgresStore) Save(key string, data []byte) error {
	_, err := p.db.Exec(`
		INSERT INTO storage_slots (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		key, data)
	if err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}
