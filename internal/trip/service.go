package trip

import (
	"context"
	"errors"
	"time"

	"github.com/mhbutzke/half-trip/internal/currency"
	"github.com/mhbutzke/half-trip/internal/notification"
)

// Common errors
var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("user is already a member of this trip")
	ErrNotOwner            = errors.New("only the trip owner can perform this action")
	ErrNotInvited          = errors.New("no pending invitation for this trip")
	ErrUnsupportedCurrency = errors.New("unsupported base currency")
	ErrInvalidDate         = errors.New("dates must be in YYYY-MM-DD format")
)

// Service handles trip business logic
type Service struct {
	repo          *Repository
	notifications *notification.Service
}

// NewService creates a new trip service with dependencies injected
func NewService(repo *Repository, notifications *notification.Service) *Service {
	return &Service{
		repo:          repo,
		notifications: notifications,
	}
}

// Create creates a new trip and adds the creator as a joined owner
func (s *Service) Create(ctx context.Context, creatorID int64, req *CreateTripRequest) (*Trip, error) {
	if !currency.IsSupported(currency.Code(req.BaseCurrency)) {
		return nil, ErrUnsupportedCurrency
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	trip, err := s.repo.Create(ctx, req, startDate, endDate)
	if err != nil {
		return nil, err
	}

	// The creator joins immediately as owner.
	if _, err := s.repo.AddMember(ctx, trip.ID, creatorID, MemberStatusJoined, MemberRoleOwner); err != nil {
		// TODO: Should rollback trip creation in a transaction
		return nil, err
	}

	return trip, nil
}

// GetByID retrieves a trip by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// GetByIDWithMembers retrieves a trip with all its members
func (s *Service) GetByIDWithMembers(ctx context.Context, id int64) (*Trip, []*TripMember, error) {
	trip, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return trip, members, nil
}

// ListByUser retrieves all trips the user belongs to
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*Trip, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// Update modifies a trip; only the owner may do this
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateTripRequest) (*Trip, error) {
	if err := s.requireOwner(ctx, id, userID); err != nil {
		return nil, err
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	trip, err := s.repo.Update(ctx, id, req.Name, req.Description, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// InviteMember invites a user to a trip and notifies them
func (s *Service) InviteMember(ctx context.Context, tripID, inviterID, userID int64) (*TripMember, error) {
	trip, err := s.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwner(ctx, tripID, inviterID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetMember(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	member, err := s.repo.AddMember(ctx, tripID, userID, MemberStatusInvited, MemberRoleMember)
	if err != nil {
		return nil, err
	}

	if _, err := s.notifications.NotifyTripInvite(ctx, userID, trip.Name, tripID); err != nil {
		// A lost notification should not fail the invite itself.
		return member, nil
	}

	return member, nil
}

// AcceptInvite marks the caller's pending invitation as joined
func (s *Service) AcceptInvite(ctx context.Context, tripID, userID int64) (*TripMember, error) {
	member, err := s.repo.GetMember(ctx, tripID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.Status != MemberStatusInvited {
		return nil, ErrNotInvited
	}

	return s.repo.UpdateMemberStatus(ctx, tripID, userID, MemberStatusJoined)
}

// RemoveMember removes a member from a trip; only the owner may do this
func (s *Service) RemoveMember(ctx context.Context, tripID, ownerID, userID int64) error {
	if err := s.requireOwner(ctx, tripID, ownerID); err != nil {
		return err
	}
	if ownerID == userID {
		return ErrNotOwner
	}
	return s.repo.RemoveMember(ctx, tripID, userID)
}

// requireOwner checks that the user is the trip's owner
func (s *Service) requireOwner(ctx context.Context, tripID, userID int64) error {
	member, err := s.repo.GetMember(ctx, tripID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}
	if member.Role != MemberRoleOwner {
		return ErrNotOwner
	}
	return nil
}

// parseDate parses an optional YYYY-MM-DD string
func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
