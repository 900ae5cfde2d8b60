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
var _ repository.InfluencerRepository = (*InfluencerRepositoryImpl)(nil)

// InfluencerRepositoryImpl is the PostgreSQL implementation of InfluencerRepository
type InfluencerRepositoryImpl struct {
	*TransactionManager
}

func NewInfluencerRepository(pool *pgxpool.Pool) repository.InfluencerRepository {
	return &InfluencerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *InfluencerRepositoryImpl) Get(ctx context.Context, influencerID int64, tx ...pgx.Tx) (*model.Influencer, error) {
	query := `SELECT id, user_id, commission_rate, created_at FROM influencers WHERE id = $1`

	inf := &model.Influencer{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, influencerID).
		Scan(&inf.ID, &inf.UserID, &inf.CommissionRate, &inf.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrInfluencerNotFound
		}
		return nil, fmt.Errorf("failed to get influencer: %w", err)
	}
	return inf, nil
}
