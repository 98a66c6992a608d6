package expense

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/mhbutzke/half-trip/internal/currency"
	"github.com/mhbutzke/half-trip/internal/expense/split"
	"github.com/mhbutzke/half-trip/internal/notification"
	"github.com/mhbutzke/half-trip/internal/trip"
)

// Common errors
var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrNotPayer            = errors.New("only the payer can delete the expense")
	ErrNotTripMember       = errors.New("all split participants must be trip members")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidDate         = errors.New("expense date must be in YYYY-MM-DD format")
)

// Service handles expense business logic
type Service struct {
	repo          *Repository
	trips         *trip.Repository
	builder       *split.Builder
	notifications *notification.Service
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, trips *trip.Repository, builder *split.Builder, notifications *notification.Service) *Service {
	return &Service{
		repo:          repo,
		trips:         trips,
		builder:       builder,
		notifications: notifications,
	}
}

// CreateExpense runs the split engine over the form input and, when the
// split reconciles, persists the expense together with one split row per
// participant. Any engine rejection comes back verbatim as the error.
func (s *Service) CreateExpense(ctx context.Context, payerID int64, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	result, expenseDate, err := s.compute(ctx, req)
	if err != nil {
		return nil, err
	}

	baseAmount := math.Round(result.Amount*result.ExchangeRate*100) / 100

	expense, err := s.repo.CreateExpense(ctx, payerID, req, result.Amount, result.ExchangeRate, baseAmount, expenseDate)
	if err != nil {
		return nil, err
	}

	splits := make([]*Split, len(result.Splits))
	for i, allocation := range result.Splits {
		userID, err := strconv.ParseInt(allocation.ParticipantID, 10, 64)
		if err != nil {
			return nil, err
		}
		created, err := s.repo.CreateSplit(ctx, expense.ID, userID, allocation.Amount, allocation.Percentage)
		if err != nil {
			// TODO: Should rollback expense creation in a transaction
			return nil, err
		}
		splits[i] = created

		if userID != payerID {
			// Best effort; a lost notification should not fail the save.
			s.notifications.NotifyExpenseAdded(ctx, userID, expense.Description, expense.ID)
		}
	}

	return &ExpenseWithSplits{
		Expense: expense,
		Splits:  splits,
	}, nil
}

// PreviewSplits runs the split engine without persisting anything, so the
// form can show live allocations while the user edits
func (s *Service) PreviewSplits(ctx context.Context, req *CreateExpenseRequest) (*split.BuildResult, error) {
	result, _, err := s.compute(ctx, req)
	return result, err
}

// compute resolves the trip, checks membership, and runs the split engine
func (s *Service) compute(ctx context.Context, req *CreateExpenseRequest) (*split.BuildResult, time.Time, error) {
	t, err := s.trips.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, time.Time{}, err
	}
	if t == nil {
		return nil, time.Time{}, trip.ErrTripNotFound
	}

	code := currency.Code(req.Currency)
	if !currency.IsSupported(code) {
		return nil, time.Time{}, ErrUnsupportedCurrency
	}

	members, err := s.trips.GetMembers(ctx, req.TripID)
	if err != nil {
		return nil, time.Time{}, err
	}
	memberIDs := make(map[int64]bool, len(members))
	for _, m := range members {
		memberIDs[m.UserID] = true
	}

	participantIDs := make([]string, len(req.ParticipantIDs))
	for i, id := range req.ParticipantIDs {
		if !memberIDs[id] {
			return nil, time.Time{}, ErrNotTripMember
		}
		participantIDs[i] = strconv.FormatInt(id, 10)
	}

	expenseDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.ExpenseDate != nil && *req.ExpenseDate != "" {
		expenseDate, err = time.Parse("2006-01-02", *req.ExpenseDate)
		if err != nil {
			return nil, time.Time{}, ErrInvalidDate
		}
	}

	result, err := s.builder.Build(split.BuildInput{
		Amount:            req.Amount,
		Currency:          code,
		ExchangeRate:      req.ExchangeRate,
		SplitType:         split.SplitType(req.SplitType),
		ParticipantIDs:    participantIDs,
		CustomAmounts:     req.CustomAmounts,
		CustomPercentages: req.CustomPercentages,
	}, t.BaseCurrency)
	if err != nil {
		return nil, time.Time{}, err
	}

	return result, expenseDate, nil
}

// GetExpenseByID retrieves an expense with its splits
func (s *Service) GetExpenseByID(ctx context.Context, id int64) (*ExpenseWithSplits, error) {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	splits, err := s.repo.GetSplitsByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{
		Expense: expense,
		Splits:  splits,
	}, nil
}

// ListExpensesByTripID retrieves expenses for a trip with pagination
func (s *Service) ListExpensesByTripID(ctx context.Context, tripID int64, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListExpensesByTripID(ctx, tripID, perPage, offset)
}

// DeleteExpense deletes an expense; only the payer may do this
func (s *Service) DeleteExpense(ctx context.Context, id, userID int64) error {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	if expense.PayerID != userID {
		return ErrNotPayer
	}

	return s.repo.DeleteExpense(ctx, id)
}
