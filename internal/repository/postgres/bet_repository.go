package postgres

import (
	"context"
	"fmt"

	"betpool/internal/model"
	"betpool/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BetRepository = (*BetRepositoryImpl)(nil)

// BetRepositoryImpl is the PostgreSQL implementation of BetRepository
type BetRepositoryImpl struct {
	*TransactionManager
}

func NewBetRepository(pool *pgxpool.Pool) repository.BetRepository {
	return &BetRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const betColumns = `id, series_id, user_id, chosen_player_id, amount, matched_amount, status, created_at, updated_at`

func scanBetRows(rows pgx.Rows) ([]*model.Bet, error) {
	defer rows.Close()

	var bets []*model.Bet
	for rows.Next() {
		b := &model.Bet{}
		if err := rows.Scan(&b.ID, &b.SeriesID, &b.UserID, &b.ChosenPlayerID, &b.Amount, &b.MatchedAmount, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, b)
	}
	return bets, rows.Err()
}

func (r *BetRepositoryImpl) Insert(ctx context.Context, bet *model.Bet, tx pgx.Tx) error {
	query := `
        INSERT INTO bets (series_id, user_id, chosen_player_id, amount, matched_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	err := tx.QueryRow(ctx, query, bet.SeriesID, bet.UserID, bet.ChosenPlayerID, bet.Amount, bet.MatchedAmount, bet.Status).
		Scan(&bet.ID, &bet.CreatedAt, &bet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

// ListOpenBySide returns the FIFO matching queue for one side of a series:
// bets backing chosenPlayerID that still have unmatched remainder, oldest first.
// Callers hold the series row lock, which keeps this queue stable.
func (r *BetRepositoryImpl) ListOpenBySide(ctx context.Context, seriesID, chosenPlayerID int64, tx pgx.Tx) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets
        WHERE series_id = $1
          AND chosen_player_id = $2
          AND status IN ('pending', 'partially_matched')
          AND matched_amount < amount
        ORDER BY created_at, id`

	rows, err := tx.Query(ctx, query, seriesID, chosenPlayerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query open bets: %w", err)
	}
	return scanBetRows(rows)
}

// UpdateFill persists a new fill level and its derived status
func (r *BetRepositoryImpl) UpdateFill(ctx context.Context, betID, matchedAmount int64, status model.BetStatus, tx pgx.Tx) error {
	query := `
        UPDATE bets
        SET matched_amount = $1, status = $2, updated_at = NOW()
        WHERE id = $3`

	commandTag, err := tx.Exec(ctx, query, matchedAmount, status, betID)
	if err != nil {
		return fmt.Errorf("failed to update bet fill: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrBetNotFound
	}
	return nil
}

func (r *BetRepositoryImpl) UpdateStatus(ctx context.Context, betID int64, status model.BetStatus, tx pgx.Tx) error {
	query := `UPDATE bets SET status = $1, updated_at = NOW() WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, status, betID)
	if err != nil {
		return fmt.Errorf("failed to update bet status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrBetNotFound
	}
	return nil
}

func (r *BetRepositoryImpl) ListBySeries(ctx context.Context, seriesID int64, tx ...pgx.Tx) ([]*model.Bet, error) {
	query := `
        SELECT ` + betColumns + `
        FROM bets WHERE series_id = $1
        ORDER BY created_at, id`

	executor := r.getExecutor(tx...)
	rows, err := executor.Query(ctx, query, seriesID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bets by series: %w", err)
	}
	return scanBetRows(rows)
}
