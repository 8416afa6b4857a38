package ebook

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("ebook not found")

type Store interface {
	List(ctx context.Context) ([]Ebook, error)
	Get(ctx context.Context, id string) (*Ebook, error)
	Create(ctx context.Context, e *Ebook) error
	Update(ctx context.Context, e *Ebook) error
	Delete(ctx context.Context, id string) error
}

type SQLStore struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) List(ctx context.Context) ([]Ebook, error) {
	var rows [][]byte
	err := s.db.SelectContext(ctx, &rows, `
		SELECT data FROM ebooks ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}

	ebooks := []Ebook{}
	for _, raw := range rows {
		var e Ebook
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, err
		}
		ebooks = append(ebooks, e)
	}
	return ebooks, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Ebook, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `
		SELECT data FROM ebooks WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var e Ebook
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLStore) Create(ctx context.Context, e *Ebook) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ebooks (id, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, e.ID, data, e.CreatedAt, e.UpdatedAt)
	return err
}

func (s *SQLStore) Update(ctx context.Context, e *Ebook) error {
	e.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE ebooks SET data = $2, updated_at = $3 WHERE id = $1
	`, e.ID, data, e.UpdatedAt)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM ebooks WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
