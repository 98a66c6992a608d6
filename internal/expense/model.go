package expense

import (
	"time"

	"github.com/mhbutzke/half-trip/internal/currency"
)

// Expense represents an expense registered on a trip. Amount is in the
// expense's own currency; BaseAmount is the same value converted into the
// trip's base currency via ExchangeRate at creation time.
type Expense struct {
	ID           int64         `json:"id"`
	TripID       int64         `json:"trip_id"`
	PayerID      int64         `json:"payer_id"`
	Description  string        `json:"description"`
	Amount       float64       `json:"amount"`
	Currency     currency.Code `json:"currency"`
	ExchangeRate float64       `json:"exchange_rate"`
	BaseAmount   float64       `json:"base_amount"`
	SplitType    string        `json:"split_type"` // equal, by_amount, by_percentage
	ExpenseDate  time.Time     `json:"expense_date"`
	CreatedAt    time.Time     `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
}

// Split represents one participant's share of an expense
type Split struct {
	ID         int64   `json:"id"`
	ExpenseID  int64   `json:"expense_id"`
	UserID     int64   `json:"user_id"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`

	// Populated via JOIN
	UserName string `json:"user_name,omitempty"`
}

// ExpenseWithSplits combines an expense with its calculated splits
type ExpenseWithSplits struct {
	Expense *Expense
	Splits  []*Split
}
