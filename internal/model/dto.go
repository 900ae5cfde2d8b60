package model

import "time"

type PlaceBetRequest struct {
	SeriesID       int64 `json:"series_id" binding:"required" example:"12"`
	ChosenPlayerID int64 `json:"chosen_player_id" binding:"required" example:"3"`
	Amount         int64 `json:"amount" binding:"required" example:"3000"`
}

type BetResponse struct {
	ID              int64     `json:"id"`
	SeriesID        int64     `json:"series_id"`
	ChosenPlayerID  int64     `json:"chosen_player_id"`
	Amount          int64     `json:"amount"`
	MatchedAmount   int64     `json:"matched_amount"`
	RemainingAmount int64     `json:"remaining_amount"`
	MatchPercentage string    `json:"match_percentage"`
	Status          BetStatus `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewBetResponse carries the derived fill fields so they are always computed
// from amount and matched_amount, never stored.
func NewBetResponse(b *Bet) *BetResponse {
	return &BetResponse{
		ID:              b.ID,
		SeriesID:        b.SeriesID,
		ChosenPlayerID:  b.ChosenPlayerID,
		Amount:          b.Amount,
		MatchedAmount:   b.MatchedAmount,
		RemainingAmount: b.RemainingAmount(),
		MatchPercentage: b.MatchPercentage().StringFixed(2),
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}
}

// SeriesBetsResponse groups a series' bets by the player they back.
type SeriesBetsResponse struct {
	SeriesID    int64          `json:"series_id"`
	State       SeriesState    `json:"state"`
	Player1ID   int64          `json:"player1_id"`
	Player2ID   int64          `json:"player2_id"`
	Player1Bets []*BetResponse `json:"player1_bets"`
	Player2Bets []*BetResponse `json:"player2_bets"`
}

type CreateMatchRequest struct {
	Player1ID          int64     `json:"player1_id" binding:"required"`
	Player2ID          int64     `json:"player2_id" binding:"required"`
	TotalSeries        int       `json:"total_series" binding:"required,min=1"`
	ScheduledAt        time.Time `json:"scheduled_at" binding:"required"`
	InfluencerID       *int64    `json:"influencer_id,omitempty"`
	CommissionOverride *string   `json:"commission_override,omitempty" example:"7.5"`
}

type FinishSeriesRequest struct {
	WinnerPlayerID int64 `json:"winner_player_id" binding:"required"`
	Player1Score   int   `json:"player1_score" binding:"min=0"`
	Player2Score   int   `json:"player2_score" binding:"min=0"`
}

type CreateDepositRequest struct {
	Amount int64 `json:"amount" binding:"required" example:"5000"`
}

type DepositResponse struct {
	TransactionID string            `json:"transaction_id"`
	Amount        int64             `json:"amount"`
	Status        TransactionStatus `json:"status"`
	QRCode        string            `json:"qr_code"`
	ExpiresAt     time.Time         `json:"expires_at"`
}

type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required" example:"2500"`
}

// PaymentWebhookRequest is the minimal provider notification contract: the
// provider echoes our transaction id with its final payment status.
type PaymentWebhookRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,uuid"`
	Status        string `json:"status" binding:"required" example:"paid"`
}

type BalanceResponse struct {
	UserID           int64 `json:"user_id"`
	AvailableBalance int64 `json:"available_balance"`
	BlockedBalance   int64 `json:"blocked_balance"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient balance"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_BALANCE"`
	Details string `json:"details,omitempty"`
}
