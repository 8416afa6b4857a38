package auth

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("username already taken")
)

// Store persists user records. Users are created once and never updated
// or deleted.
type Store interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	AdminExists(ctx context.Context) (bool, error)
}

type SQLStore struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) GetByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, `
		SELECT id, username, email, password, is_admin, created_at
		FROM users
		WHERE username = $1
	`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) Create(ctx context.Context, user *User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Username, user.Email, user.Password, user.IsAdmin, user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *SQLStore) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `
		SELECT EXISTS(SELECT 1 FROM users WHERE is_admin = TRUE)
	`)
	return exists, err
}
