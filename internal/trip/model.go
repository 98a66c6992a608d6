package trip

import (
	"time"

	"github.com/mhbutzke/half-trip/internal/currency"
)

// MemberStatus represents the status of a trip member
type MemberStatus string

const (
	MemberStatusInvited MemberStatus = "INVITED"
	MemberStatusJoined  MemberStatus = "JOINED"
)

// MemberRole represents the role of a trip member
type MemberRole string

const (
	MemberRoleOwner  MemberRole = "OWNER"
	MemberRoleMember MemberRole = "MEMBER"
)

// Trip represents a trip in the system. BaseCurrency is the reference
// currency every foreign-currency expense is converted into.
type Trip struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	BaseCurrency currency.Code `json:"base_currency"`
	StartDate    *time.Time    `json:"start_date,omitempty"`
	EndDate      *time.Time    `json:"end_date,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// TripMember represents a user's membership in a trip
type TripMember struct {
	ID       int64        `json:"id"`
	TripID   int64        `json:"trip_id"`
	UserID   int64        `json:"user_id"`
	Status   MemberStatus `json:"status"`
	Role     MemberRole   `json:"role"`
	JoinedAt time.Time    `json:"joined_at"`

	// Populated from JOIN
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
