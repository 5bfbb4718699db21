// Package storage implements the document store: the whole prompt library
// lives in one logical document, read and written atomically as a unit.
//
// The backing table is a plain key/value map with one row per top-level
// document field. GetAll decodes each present row and defaults each missing
// one independently, so partially written documents from older layouts stay
// readable. SetAll replaces every row in a single transaction. There is no
// field-level write API: every mutation is a full get-all → mutate →
// set-all cycle, and that cycle is deliberately not serialized across
// callers (last write wins, single-writer usage assumed).
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"github.com/codamon/immersive-prompt/internal/client/models"
	"github.com/codamon/immersive-prompt/internal/client/storage/migrations"
	"github.com/codamon/immersive-prompt/internal/dbx"
)

// Store is the persistence boundary for the prompt document. No component
// touches the underlying database directly; all access goes through
// GetAll/SetAll.
type Store interface {
	// GetAll returns the full document. An empty database yields the
	// first-run document; missing individual fields are defaulted.
	GetAll(ctx context.Context) (*models.Document, error)

	// SetAll persists the full document, replacing prior content for every
	// top-level key. Durability is guaranteed once it returns nil.
	SetAll(ctx context.Context, doc *models.Document) error
}

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the document database at dsn and applies
// migrations. The caller owns the returned store and must Close it.
func Open(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening document database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating document database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an already-open database handle. The schema must be
// in place; tests use this with in-memory databases.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetAll reads every stored top-level field and assembles the document,
// defaulting fields that are absent.
func (s *SQLiteStore) GetAll(ctx context.Context) (*models.Document, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM document`)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		fields[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := models.DecodeDocument(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// SetAll writes every top-level field in one transaction. A document row is
// upserted per key, so the stored document is structurally complete after
// any successful write.
func (s *SQLiteStore) SetAll(ctx context.Context, doc *models.Document) error {
	fields, err := models.EncodeDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range models.DocumentKeys {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO document (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, string(fields[key]))
			if err != nil {
				return fmt.Errorf("failed to write document[%s]: %w", key, err)
			}
		}
		return nil
	})
}
