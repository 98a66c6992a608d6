package expense

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles expense and split data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpense inserts a new expense into the database
func (r *Repository) CreateExpense(ctx context.Context, payerID int64, req *CreateExpenseRequest, amount, exchangeRate, baseAmount float64, expenseDate time.Time) (*Expense, error) {
	query := `
		INSERT INTO expenses (trip_id, payer_id, description, amount, currency, exchange_rate, base_amount, split_type, expense_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, trip_id, payer_id, description, amount, currency, exchange_rate, base_amount, split_type, expense_date, created_at
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query,
		req.TripID,
		payerID,
		req.Description,
		amount,
		req.Currency,
		exchangeRate,
		baseAmount,
		req.SplitType,
		expenseDate,
	).Scan(
		&expense.ID,
		&expense.TripID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.Currency,
		&expense.ExchangeRate,
		&expense.BaseAmount,
		&expense.SplitType,
		&expense.ExpenseDate,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// CreateSplit inserts a new split into the database
func (r *Repository) CreateSplit(ctx context.Context, expenseID, userID int64, amount, percentage float64) (*Split, error) {
	query := `
		INSERT INTO expense_splits (expense_id, user_id, amount, percentage)
		VALUES ($1, $2, $3, $4)
		RETURNING id, expense_id, user_id, amount, percentage
	`

	split := &Split{}
	err := r.db.QueryRowContext(ctx, query, expenseID, userID, amount, percentage).Scan(
		&split.ID,
		&split.ExpenseID,
		&split.UserID,
		&split.Amount,
		&split.Percentage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create split: %w", err)
	}

	return split, nil
}

// GetExpenseByID retrieves an expense by its ID
func (r *Repository) GetExpenseByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.payer_id, e.description, e.amount, e.currency, e.exchange_rate, e.base_amount, e.split_type, e.expense_date, e.created_at, u.name
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.TripID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.Currency,
		&expense.ExchangeRate,
		&expense.BaseAmount,
		&expense.SplitType,
		&expense.ExpenseDate,
		&expense.CreatedAt,
		&expense.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetSplitsByExpenseID retrieves all splits for an expense
func (r *Repository) GetSplitsByExpenseID(ctx context.Context, expenseID int64) ([]*Split, error) {
	query := `
		SELECT s.id, s.expense_id, s.user_id, s.amount, s.percentage, u.name
		FROM expense_splits s
		JOIN users u ON s.user_id = u.id
		WHERE s.expense_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		split := &Split{}
		if err := rows.Scan(
			&split.ID,
			&split.ExpenseID,
			&split.UserID,
			&split.Amount,
			&split.Percentage,
			&split.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}

	return splits, nil
}

// ListExpensesByTripID retrieves expenses for a trip, newest first
func (r *Repository) ListExpensesByTripID(ctx context.Context, tripID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE trip_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, tripID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.trip_id, e.payer_id, e.description, e.amount, e.currency, e.exchange_rate, e.base_amount, e.split_type, e.expense_date, e.created_at, u.name
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.trip_id = $1
		ORDER BY e.expense_date DESC, e.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, tripID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.TripID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.Currency,
			&expense.ExchangeRate,
			&expense.BaseAmount,
			&expense.SplitType,
			&expense.ExpenseDate,
			&expense.CreatedAt,
			&expense.PayerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, nil
}

// DeleteExpense deletes an expense and its splits
func (r *Repository) DeleteExpense(ctx context.Context, id int64) error {
	// Delete splits first (foreign key constraint)
	if _, err := r.db.ExecContext(ctx, `DELETE FROM expense_splits WHERE expense_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete splits: %w", err)
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("expense not found")
	}

	return nil
}
