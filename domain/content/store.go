package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// The document lives in a single row under this key; the table's CHECK
// constraint guarantees there is never a second row.
const singletonID = 1

// Store persists the site content document.
type Store interface {
	// Get returns the document, lazily creating and persisting the
	// default one on first access.
	Get(ctx context.Context) (*SiteContent, error)
	// Replace upserts the whole document, refreshing UpdatedAt.
	Replace(ctx context.Context, doc *SiteContent) error
}

type SQLStore struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context) (*SiteContent, error) {
	var row struct {
		Data      []byte    `db:"data"`
		UpdatedAt time.Time `db:"updated_at"`
	}

	err := s.db.GetContext(ctx, &row, `
		SELECT data, updated_at FROM site_content WHERE id = $1
	`, singletonID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			doc := DefaultSiteContent()
			if err := s.Replace(ctx, doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, err
	}

	var doc SiteContent
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		return nil, err
	}
	doc.UpdatedAt = row.UpdatedAt

	return &doc, nil
}

func (s *SQLStore) Replace(ctx context.Context, doc *SiteContent) error {
	doc.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO site_content (id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, singletonID, data, doc.UpdatedAt)

	return err
}
