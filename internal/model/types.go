package model

// SeriesState is the lifecycle state of a single series within a match.
type SeriesState string

const (
	SeriesPending    SeriesState = "pending"
	SeriesReleased   SeriesState = "released"
	SeriesInProgress SeriesState = "in_progress"
	SeriesSettled    SeriesState = "settled"
	SeriesCancelled  SeriesState = "cancelled"
)

// seriesTransitions maps each state to the states reachable from it.
var seriesTransitions = map[SeriesState][]SeriesState{
	SeriesPending:    {SeriesReleased, SeriesCancelled},
	SeriesReleased:   {SeriesInProgress, SeriesCancelled},
	SeriesInProgress: {SeriesSettled, SeriesCancelled},
	SeriesSettled:    {},
	SeriesCancelled:  {},
}

// CanTransition reports whether the series may move from its current state to target.
func (s SeriesState) CanTransition(target SeriesState) bool {
	for _, next := range seriesTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s SeriesState) String() string {
	return string(s)
}

// BetStatus is the lifecycle state of a bet.
type BetStatus string

const (
	BetPending          BetStatus = "pending"
	BetPartiallyMatched BetStatus = "partially_matched"
	BetMatched          BetStatus = "matched"
	BetWon              BetStatus = "won"
	BetLost             BetStatus = "lost"
	BetCancelled        BetStatus = "cancelled"
)

func (s BetStatus) String() string {
	return string(s)
}

// MatchStatusFor derives the pre-settlement status of a bet from its fill level.
// pending <=> nothing matched, matched <=> fully matched.
func MatchStatusFor(amount, matchedAmount int64) BetStatus {
	switch {
	case matchedAmount == 0:
		return BetPending
	case matchedAmount == amount:
		return BetMatched
	default:
		return BetPartiallyMatched
	}
}

// TransactionType is the ledger entry type.
type TransactionType string

const (
	TypeDeposit   TransactionType = "deposit"
	TypeWithdraw  TransactionType = "withdraw"
	TypeBet       TransactionType = "bet"
	TypeBetWin    TransactionType = "bet_win"
	TypeBetRefund TransactionType = "bet_refund"
	TypeFee       TransactionType = "fee"
)

func (t TransactionType) String() string {
	return string(t)
}

// TransactionStatus is the ledger entry status. Completed entries are immutable;
// a pending entry moves to completed, failed or cancelled exactly once.
type TransactionStatus string

const (
	TxPending   TransactionStatus = "pending"
	TxCompleted TransactionStatus = "completed"
	TxFailed    TransactionStatus = "failed"
	TxCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// Role gates access to the administrative series lifecycle endpoints.
type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleInfluencer Role = "influencer"
)
