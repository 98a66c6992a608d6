package trip

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles trip and membership data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new trip repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new trip into the database
func (r *Repository) Create(ctx context.Context, req *CreateTripRequest, startDate, endDate *time.Time) (*Trip, error) {
	query := `
		INSERT INTO trips (name, description, base_currency, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, description, base_currency, start_date, end_date, created_at
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query,
		req.Name,
		req.Description,
		req.BaseCurrency,
		startDate,
		endDate,
	).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Description,
		&trip.BaseCurrency,
		&trip.StartDate,
		&trip.EndDate,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return trip, nil
}

// GetByID retrieves a trip by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Trip, error) {
	query := `
		SELECT id, name, description, base_currency, start_date, end_date, created_at
		FROM trips
		WHERE id = $1
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Description,
		&trip.BaseCurrency,
		&trip.StartDate,
		&trip.EndDate,
		&trip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// ListByUserID retrieves all trips a user belongs to
func (r *Repository) ListByUserID(ctx context.Context, userID int64) ([]*Trip, error) {
	query := `
		SELECT t.id, t.name, t.description, t.base_currency, t.start_date, t.end_date, t.created_at
		FROM trips t
		JOIN trip_members m ON m.trip_id = t.id
		WHERE m.user_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		trip := &Trip{}
		if err := rows.Scan(
			&trip.ID,
			&trip.Name,
			&trip.Description,
			&trip.BaseCurrency,
			&trip.StartDate,
			&trip.EndDate,
			&trip.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	return trips, nil
}

// Update modifies a trip's editable fields. The base currency is fixed at
// creation; changing it would silently re-denominate every stored expense.
func (r *Repository) Update(ctx context.Context, id int64, name, description *string, startDate, endDate *time.Time) (*Trip, error) {
	query := `
		UPDATE trips
		SET name = COALESCE($2, name),
		    description = COALESCE($3, description),
		    start_date = COALESCE($4, start_date),
		    end_date = COALESCE($5, end_date)
		WHERE id = $1
		RETURNING id, name, description, base_currency, start_date, end_date, created_at
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id, name, description, startDate, endDate).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Description,
		&trip.BaseCurrency,
		&trip.StartDate,
		&trip.EndDate,
		&trip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// AddMember inserts a membership row for a trip
func (r *Repository) AddMember(ctx context.Context, tripID, userID int64, status MemberStatus, role MemberRole) (*TripMember, error) {
	query := `
		INSERT INTO trip_members (trip_id, user_id, status, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, trip_id, user_id, status, role, joined_at
	`

	member := &TripMember{}
	err := r.db.QueryRowContext(ctx, query, tripID, userID, status, role).Scan(
		&member.ID,
		&member.TripID,
		&member.UserID,
		&member.Status,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// GetMember retrieves a single membership row
func (r *Repository) GetMember(ctx context.Context, tripID, userID int64) (*TripMember, error) {
	query := `
		SELECT id, trip_id, user_id, status, role, joined_at
		FROM trip_members
		WHERE trip_id = $1 AND user_id = $2
	`

	member := &TripMember{}
	err := r.db.QueryRowContext(ctx, query, tripID, userID).Scan(
		&member.ID,
		&member.TripID,
		&member.UserID,
		&member.Status,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// GetMembers retrieves all members of a trip with their user details
func (r *Repository) GetMembers(ctx context.Context, tripID int64) ([]*TripMember, error) {
	query := `
		SELECT m.id, m.trip_id, m.user_id, m.status, m.role, m.joined_at, u.name, u.email
		FROM trip_members m
		JOIN users u ON m.user_id = u.id
		WHERE m.trip_id = $1
		ORDER BY m.id
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*TripMember
	for rows.Next() {
		member := &TripMember{}
		if err := rows.Scan(
			&member.ID,
			&member.TripID,
			&member.UserID,
			&member.Status,
			&member.Role,
			&member.JoinedAt,
			&member.Name,
			&member.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// UpdateMemberStatus changes a member's status (e.g. accepting an invite)
func (r *Repository) UpdateMemberStatus(ctx context.Context, tripID, userID int64, status MemberStatus) (*TripMember, error) {
	query := `
		UPDATE trip_members
		SET status = $3, joined_at = NOW()
		WHERE trip_id = $1 AND user_id = $2
		RETURNING id, trip_id, user_id, status, role, joined_at
	`

	member := &TripMember{}
	err := r.db.QueryRowContext(ctx, query, tripID, userID, status).Scan(
		&member.ID,
		&member.TripID,
		&member.UserID,
		&member.Status,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	return member, nil
}

// RemoveMember deletes a membership row
func (r *Repository) RemoveMember(ctx context.Context, tripID, userID int64) error {
	query := `DELETE FROM trip_members WHERE trip_id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, tripID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("member not found")
	}

	return nil
}
