package expense

// CreateExpenseRequest represents the request to create an expense. Amount,
// ExchangeRate, and the per-participant custom values are the strings the
// user typed, in the expense currency's decimal notation; parsing them is
// the split engine's job, not the transport's. The custom maps are keyed by
// user id.
type CreateExpenseRequest struct {
	TripID            int64             `json:"trip_id" validate:"required"`
	Description       string            `json:"description" validate:"required,min=1,max=255"`
	Amount            string            `json:"amount" validate:"required"`
	Currency          string            `json:"currency" validate:"required,len=3"`
	ExchangeRate      string            `json:"exchange_rate,omitempty"`
	SplitType         string            `json:"split_type" validate:"required,oneof=equal by_amount by_percentage"`
	ParticipantIDs    []int64           `json:"participant_ids" validate:"required,min=1"`
	CustomAmounts     map[string]string `json:"custom_amounts,omitempty"`
	CustomPercentages map[string]string `json:"custom_percentages,omitempty"`
	ExpenseDate       *string           `json:"expense_date,omitempty"` // YYYY-MM-DD, defaults to today
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID           int64            `json:"id"`
	TripID       int64            `json:"trip_id"`
	PayerID      int64            `json:"payer_id"`
	PayerName    string           `json:"payer_name,omitempty"`
	Description  string           `json:"description"`
	Amount       float64          `json:"amount"`
	Currency     string           `json:"currency"`
	ExchangeRate float64          `json:"exchange_rate"`
	BaseAmount   float64          `json:"base_amount"`
	SplitType    string           `json:"split_type"`
	ExpenseDate  string           `json:"expense_date"`
	CreatedAt    string           `json:"created_at"`
	Splits       []*SplitResponse `json:"splits,omitempty"`
}

// SplitResponse represents the response for a split
type SplitResponse struct {
	ID         int64   `json:"id"`
	ExpenseID  int64   `json:"expense_id"`
	UserID     int64   `json:"user_id"`
	UserName   string  `json:"user_name,omitempty"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// PreviewResponse carries a computed split before anything is saved
type PreviewResponse struct {
	Amount       float64          `json:"amount"`
	ExchangeRate float64          `json:"exchange_rate"`
	BaseAmount   float64          `json:"base_amount"`
	Splits       []*SplitResponse `json:"splits"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:           e.ID,
		TripID:       e.TripID,
		PayerID:      e.PayerID,
		PayerName:    e.PayerName,
		Description:  e.Description,
		Amount:       e.Amount,
		Currency:     string(e.Currency),
		ExchangeRate: e.ExchangeRate,
		BaseAmount:   e.BaseAmount,
		SplitType:    e.SplitType,
		ExpenseDate:  e.ExpenseDate.Format("2006-01-02"),
		CreatedAt:    e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Split model to a SplitResponse DTO
func (s *Split) ToResponse() *SplitResponse {
	return &SplitResponse{
		ID:         s.ID,
		ExpenseID:  s.ExpenseID,
		UserID:     s.UserID,
		UserName:   s.UserName,
		Amount:     s.Amount,
		Percentage: s.Percentage,
	}
}
