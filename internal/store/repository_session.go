package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okulikov/campushub/internal/logger"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Save(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, saveSession, token)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Msg("failed to persist session token")
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	return nil
}

func (r *sessionRepository) Token(ctx context.Context) (string, error) {
	var token string

	row := r.DB.QueryRowContext(ctx, getSession)
	if err := row.Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSessionNotFound
		}

		r.logger.Err(err).
			Str("func", "sessionRepository.Token").
			Msg("failed to read session token")
		return "", fmt.Errorf("failed to read session token: %w", err)
	}

	if token == "" {
		return "", ErrSessionNotFound
	}

	return token, nil
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, deleteSession)
	if err != nil {
		r.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Msg("failed to delete session token")
		return fmt.Errorf("failed to delete session token: %w", err)
	}

	return nil
}
