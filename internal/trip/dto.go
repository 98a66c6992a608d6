package trip

// CreateTripRequest represents the request to create a trip
type CreateTripRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Description  *string `json:"description,omitempty"`
	BaseCurrency string  `json:"base_currency" validate:"required,len=3"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

// UpdateTripRequest represents the request to update a trip
type UpdateTripRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// InviteMemberRequest represents the request to invite a user to a trip
type InviteMemberRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// TripResponse represents the response for a trip
type TripResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Description  *string           `json:"description,omitempty"`
	BaseCurrency string            `json:"base_currency"`
	StartDate    *string           `json:"start_date,omitempty"`
	EndDate      *string           `json:"end_date,omitempty"`
	CreatedAt    string            `json:"created_at"`
	Members      []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents the response for a trip member
type MemberResponse struct {
	UserID   int64  `json:"user_id"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Status   string `json:"status"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

// ToResponse converts a Trip model to a TripResponse DTO
func (t *Trip) ToResponse() *TripResponse {
	resp := &TripResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		BaseCurrency: string(t.BaseCurrency),
		CreatedAt:    t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if t.StartDate != nil {
		s := t.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if t.EndDate != nil {
		s := t.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}

// ToResponse converts a TripMember model to a MemberResponse DTO
func (m *TripMember) ToResponse() *MemberResponse {
	return &MemberResponse{
		UserID:   m.UserID,
		Name:     m.Name,
		Email:    m.Email,
		Status:   string(m.Status),
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt.Format("2006-01-02T15:04:05Z"),
	}
}
