package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"blogapi/internal/models"
)

type tokenRepository struct {
	db *sqlx.DB
}

func NewTokenRepository(db *sqlx.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// GetOrCreate returns the user's active token, creating one on first use.
// The key is opaque: a random value with no structure the client can read.
func (r *tokenRepository) GetOrCreate(ctx context.Context, userID int64) (*models.Token, error) {
	var token models.Token

	query := `SELECT * FROM auth_tokens WHERE user_id = $1`

	err := r.db.GetContext(ctx, &token, query, userID)
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	key := strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")

	// ON CONFLICT DO NOTHING: two concurrent first logins both land here,
	// one insert wins, and the reselect returns the surviving token
	insert := `
		INSERT INTO auth_tokens (key, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err = r.db.ExecContext(ctx, insert, key, userID); err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	err = r.db.GetContext(ctx, &token, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload token: %w", err)
	}

	return &token, nil
}

func (r *tokenRepository) GetUserByKey(ctx context.Context, key string) (*models.User, error) {
	var user models.User

	query := `
		SELECT u.id, u.username, u.email, u.password_hash
		FROM users u
		JOIN auth_tokens t ON t.user_id = u.id
		WHERE t.key = $1
	`

	err := r.db.GetContext(ctx, &user, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return &user, nil
}
