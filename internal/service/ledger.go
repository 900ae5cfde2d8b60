package service

import (
	"time"

	"betpool/internal/model"

	"github.com/google/uuid"
)

// completedEntry builds a ledger row for a balance movement applied in the same
// database transaction. Completed entries are immutable once written.
func completedEntry(userID int64, typ model.TransactionType, amount int64, seriesID, betID *int64) *model.Transaction {
	now := time.Now()
	return &model.Transaction{
		PublicID:    uuid.New().String(),
		UserID:      userID,
		Type:        typ,
		Status:      model.TxCompleted,
		Amount:      amount,
		SeriesID:    seriesID,
		BetID:       betID,
		CompletedAt: &now,
	}
}
