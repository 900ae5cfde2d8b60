package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// All monetary amounts are int64 minor currency units (centavos). Floating point
// never represents money anywhere in this service.

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Wallet holds a user's spendable and bet-committed funds. The pair of balances
// is only ever mutated under a row lock inside a database transaction.
type Wallet struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	AvailableBalance int64     `json:"available_balance"`
	BlockedBalance   int64     `json:"blocked_balance"`
	Version          int       `json:"version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Match is a contest between two players composed of a fixed number of series.
type Match struct {
	ID                 int64            `json:"id"`
	Player1ID          int64            `json:"player1_id"`
	Player2ID          int64            `json:"player2_id"`
	TotalSeries        int              `json:"total_series"`
	ScheduledAt        time.Time        `json:"scheduled_at"`
	InfluencerID       *int64           `json:"influencer_id,omitempty"`
	CommissionOverride *decimal.Decimal `json:"commission_override,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

// OpponentOf returns the other player of the match, or 0 if playerID is not part of it.
func (m *Match) OpponentOf(playerID int64) int64 {
	switch playerID {
	case m.Player1ID:
		return m.Player2ID
	case m.Player2ID:
		return m.Player1ID
	}
	return 0
}

// HasPlayer reports whether playerID is one of the match's two players.
func (m *Match) HasPlayer(playerID int64) bool {
	return playerID == m.Player1ID || playerID == m.Player2ID
}

// Series is one leg of a match, the unit that opens for betting and settles
// independently. WinnerPlayerID and the scores are set only once settled.
type Series struct {
	ID             int64       `json:"id"`
	MatchID        int64       `json:"match_id"`
	Number         int         `json:"number"`
	State          SeriesState `json:"state"`
	Player1Score   *int        `json:"player1_score,omitempty"`
	Player2Score   *int        `json:"player2_score,omitempty"`
	WinnerPlayerID *int64      `json:"winner_player_id,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Bet is a wager on one side of a series. MatchedAmount grows as the bet is
// paired against opposing bets; it never exceeds Amount.
type Bet struct {
	ID             int64     `json:"id"`
	SeriesID       int64     `json:"series_id"`
	UserID         int64     `json:"user_id"`
	ChosenPlayerID int64     `json:"chosen_player_id"`
	Amount         int64     `json:"amount"`
	MatchedAmount  int64     `json:"matched_amount"`
	Status         BetStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// RemainingAmount is the open, still-unmatched part of the stake. Derived, never stored.
func (b *Bet) RemainingAmount() int64 {
	return b.Amount - b.MatchedAmount
}

// MatchPercentage is the matched share of the stake in percent. Derived, never stored.
func (b *Bet) MatchPercentage() decimal.Decimal {
	if b.Amount == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(b.MatchedAmount).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(b.Amount))
}

// Transaction is an append-only wallet ledger entry. PublicID is the identifier
// exposed to clients and payment providers.
type Transaction struct {
	ID          int64             `json:"-"`
	PublicID    string            `json:"transaction_id"`
	UserID      int64             `json:"user_id"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Amount      int64             `json:"amount"`
	SeriesID    *int64            `json:"series_id,omitempty"`
	BetID       *int64            `json:"bet_id,omitempty"`
	ExpiresAt   *time.Time        `json:"expires_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Expired reports whether a pending deposit's confirmation window has passed.
func (t *Transaction) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}

// Influencer promotes matches and earns a commission on matched betting volume.
// CommissionRate is a percentage, e.g. 5.5 means 5.5% of matched volume.
type Influencer struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
}
