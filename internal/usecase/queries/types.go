package queries

import (
	"time"

	"premium-reconciler/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultRecentOrders = 5
	MaxListLimit        = 50
)

// OrderView represents read-optimized order data
type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	Owner       int64           `json:"owner"`
	Code        string          `json:"code"`
	AmountTON   decimal.Decimal `json:"amount_ton"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	ConfirmedAt *time.Time      `json:"confirmed_at,omitempty"`
}

// UserView represents read-optimized user data
type UserView struct {
	Owner        int64      `json:"owner"`
	Username     string     `json:"username"`
	FirstName    string     `json:"first_name"`
	JoinedAt     time.Time  `json:"joined_at"`
	PremiumUntil *time.Time `json:"premium_until,omitempty"`
	Points       int64      `json:"points"`
}

type LeaderboardEntry struct {
	Rank      int    `json:"rank"`
	Owner     int64  `json:"owner"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	Points    int64  `json:"points"`
}

type ClaimStatusView struct {
	Owner        int64  `json:"owner"`
	TotalClaims  int64  `json:"total_claims"`
	ClaimedToday bool   `json:"claimed_today"`
	Day          string `json:"day"`
}

// PaymentInstructions is everything a payer needs to settle one order.
type PaymentInstructions struct {
	OrderID     uuid.UUID       `json:"order_id"`
	Code        string          `json:"code"`
	AmountTON   decimal.Decimal `json:"amount_ton"`
	Destination string          `json:"destination"`
	Links       payment.Links   `json:"links"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentOrders
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
