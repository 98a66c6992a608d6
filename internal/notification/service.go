package notification

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not the recipient of this notification")
)

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListByRecipient retrieves notifications for a user with pagination
func (s *Service) ListByRecipient(ctx context.Context, recipientID int64, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByRecipientID(ctx, recipientID, perPage, offset, unreadOnly)
}

// MarkAsRead marks a notification as read, checking ownership
func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notification == nil {
		return ErrNotificationNotFound
	}
	if notification.RecipientID != userID {
		return ErrNotRecipient
	}

	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user
func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

// GetUnreadCount returns the count of unread notifications
func (s *Service) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// NotifyTripInvite creates a notification for a trip invitation
func (s *Service) NotifyTripInvite(ctx context.Context, recipientID int64, tripName string, tripID int64) (*Notification, error) {
	message := "You have been invited to join trip: " + tripName
	entityType := "TRIP"
	return s.repo.Create(ctx, recipientID, message, &entityType, &tripID)
}

// NotifyExpenseAdded creates a notification for a new expense split
func (s *Service) NotifyExpenseAdded(ctx context.Context, recipientID int64, description string, expenseID int64) (*Notification, error) {
	message := fmt.Sprintf("You were included in the expense %q", description)
	entityType := "EXPENSE"
	return s.repo.Create(ctx, recipientID, message, &entityType, &expenseID)
}
