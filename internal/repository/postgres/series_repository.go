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

// Ensure implementations satisfy interfaces at compile time
var (
	_ repository.SeriesRepository = (*SeriesRepositoryImpl)(nil)
	_ repository.MatchRepository  = (*MatchRepositoryImpl)(nil)
)

// MatchRepositoryImpl is the PostgreSQL implementation of MatchRepository
type MatchRepositoryImpl struct {
	*TransactionManager
}

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &MatchRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *MatchRepositoryImpl) Insert(ctx context.Context, m *model.Match, tx pgx.Tx) error {
	query := `
        INSERT INTO matches (player1_id, player2_id, total_series, scheduled_at, influencer_id, commission_override)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, m.Player1ID, m.Player2ID, m.TotalSeries, m.ScheduledAt, m.InfluencerID, m.CommissionOverride).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (r *MatchRepositoryImpl) Get(ctx context.Context, matchID int64, tx ...pgx.Tx) (*model.Match, error) {
	query := `
        SELECT id, player1_id, player2_id, total_series, scheduled_at, influencer_id, commission_override, created_at
        FROM matches WHERE id = $1`

	m := &model.Match{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, matchID).
		Scan(&m.ID, &m.Player1ID, &m.Player2ID, &m.TotalSeries, &m.ScheduledAt, &m.InfluencerID, &m.CommissionOverride, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

// SeriesRepositoryImpl is the PostgreSQL implementation of SeriesRepository
type SeriesRepositoryImpl struct {
	*TransactionManager
}

func NewSeriesRepository(pool *pgxpool.Pool) repository.SeriesRepository {
	return &SeriesRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertForMatch creates the numbered series rows for a new match, all pending
func (r *SeriesRepositoryImpl) InsertForMatch(ctx context.Context, matchID int64, total int, tx pgx.Tx) error {
	query := `
        INSERT INTO series (match_id, number, state)
        SELECT $1, n, 'pending' FROM generate_series(1, $2) AS n`

	if _, err := tx.Exec(ctx, query, matchID, total); err != nil {
		return fmt.Errorf("failed to insert series for match: %w", err)
	}
	return nil
}

const seriesColumns = `id, match_id, number, state, player1_score, player2_score, winner_player_id, created_at, updated_at`

func scanSeries(row pgx.Row) (*model.Series, error) {
	s := &model.Series{}
	err := row.Scan(&s.ID, &s.MatchID, &s.Number, &s.State, &s.Player1Score, &s.Player2Score, &s.WinnerPlayerID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSeriesNotFound
		}
		return nil, fmt.Errorf("failed to scan series: %w", err)
	}
	return s, nil
}

func (r *SeriesRepositoryImpl) Get(ctx context.Context, seriesID int64, tx ...pgx.Tx) (*model.Series, error) {
	query := `SELECT ` + seriesColumns + ` FROM series WHERE id = $1`
	executor := r.getExecutor(tx...)
	return scanSeries(executor.QueryRow(ctx, query, seriesID))
}

// GetForUpdate locks the series row. Every placement, finish and cancel goes
// through this lock, which serializes all matching work per series.
func (r *SeriesRepositoryImpl) GetForUpdate(ctx context.Context, seriesID int64, tx pgx.Tx) (*model.Series, error) {
	query := `SELECT ` + seriesColumns + ` FROM series WHERE id = $1 FOR UPDATE`
	return scanSeries(tx.QueryRow(ctx, query, seriesID))
}

func (r *SeriesRepositoryImpl) UpdateState(ctx context.Context, seriesID int64, state model.SeriesState, tx pgx.Tx) error {
	query := `UPDATE series SET state = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, state, seriesID)
	if err != nil {
		return fmt.Errorf("failed to update series state: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrSeriesNotFound
	}
	return nil
}

// Settle writes winner and scores together with the terminal state so a settled
// series always carries its result.
func (r *SeriesRepositoryImpl) Settle(ctx context.Context, seriesID, winnerPlayerID int64, p1Score, p2Score int, tx pgx.Tx) error {
	query := `
        UPDATE series
        SET state = 'settled', winner_player_id = $1, player1_score = $2, player2_score = $3, updated_at = NOW()
        WHERE id = $4`

	commandTag, err := tx.Exec(ctx, query, winnerPlayerID, p1Score, p2Score, seriesID)
	if err != nil {
		return fmt.Errorf("failed to settle series: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrSeriesNotFound
	}
	return nil
}

func (r *SeriesRepositoryImpl) CountInProgressByMatch(ctx context.Context, matchID int64, tx pgx.Tx) (int, error) {
	query := `SELECT COUNT(*) FROM series WHERE match_id = $1 AND state = 'in_progress'`

	var count int
	if err := tx.QueryRow(ctx, query, matchID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count in-progress series: %w", err)
	}
	return count, nil
}
