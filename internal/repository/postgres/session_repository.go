package postgres

import (
	"context"
	"errors"
	"fmt"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.SessionRepository = (*SessionRepositoryImpl)(nil)

// SessionRepositoryImpl is the PostgreSQL implementation of SessionRepository
type SessionRepositoryImpl struct {
	*TransactionManager
}

func NewSessionRepository(pool *pgxpool.Pool) repository.SessionRepository {
	return &SessionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// GetUserByToken resolves a non-expired bearer token to its user
func (r *SessionRepositoryImpl) GetUserByToken(ctx context.Context, token string) (*model.User, error) {
	query := `
        SELECT u.id, u.name, u.role, u.created_at
        FROM sessions s
        JOIN users u ON u.id = s.user_id
        WHERE s.token = $1 AND s.expires_at > NOW()`

	u := &model.User{}
	err := r.pool.QueryRow(ctx, query, token).Scan(&u.ID, &u.Name, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve session token: %w", err)
	}
	return u, nil
}
