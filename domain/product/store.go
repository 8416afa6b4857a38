package product

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("product not found")

type Store interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	// Deactivate is the soft delete: the row stays, is_active drops.
	Deactivate(ctx context.Context, id string) error
}

type SQLStore struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) List(ctx context.Context) ([]Product, error) {
	var rows [][]byte
	err := s.db.SelectContext(ctx, &rows, `
		SELECT data FROM products WHERE is_active = TRUE ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}

	products := []Product{}
	for _, raw := range rows {
		var p Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (*Product, error) {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, `
		SELECT data FROM products WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var p Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLStore) Create(ctx context.Context, p *Product) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.IsActive = true

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO products (id, data, is_active, created_at, updated_at)
		VALUES ($1, $2, TRUE, $3, $4)
	`, p.ID, data, p.CreatedAt, p.UpdatedAt)
	return err
}

func (s *SQLStore) Update(ctx context.Context, p *Product) error {
	p.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE products SET data = $2, is_active = $3, updated_at = $4 WHERE id = $1
	`, p.ID, data, p.IsActive, p.UpdatedAt)
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

func (s *SQLStore) Deactivate(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET is_active = FALSE,
		    data = jsonb_set(data, '{is_active}', 'false'::jsonb),
		    updated_at = NOW()
		WHERE id = $1
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
