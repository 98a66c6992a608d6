package trip

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mhbutzke/half-trip/pkg/middleware"
	"github.com/mhbutzke/half-trip/pkg/response"
)

// Handler handles HTTP requests for trip operations
type Handler struct {
	service *Service
}

// NewHandler creates a new trip handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for trip endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)

	// Membership
	r.Post("/{id}/members", h.InviteMember)
	r.Get("/{id}/members", h.GetMembers)
	r.Post("/{id}/accept", h.AcceptInvite)
	r.Delete("/{id}/members/{userId}", h.RemoveMember)

	return r
}

// Create handles POST /trips
// @Summary      Create a new trip
// @Description  Create a trip with a base currency; the creator becomes the owner
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        request body CreateTripRequest true "Trip creation request"
// @Success      201 {object} response.APIResponse{data=TripResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /trips [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Name == "" {
		response.BadRequest(w, "Trip name is required")
		return
	}

	trip, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrUnsupportedCurrency) || errors.Is(err, ErrInvalidDate) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create trip")
		return
	}

	response.JSON(w, http.StatusCreated, trip.ToResponse())
}

// List handles GET /trips
// @Summary      List the caller's trips
// @Tags         trips
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]TripResponse}
// @Router       /trips [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	trips, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list trips")
		return
	}

	tripResponses := make([]*TripResponse, len(trips))
	for i, t := range trips {
		tripResponses[i] = t.ToResponse()
	}

	response.JSON(w, http.StatusOK, tripResponses)
}

// GetByID handles GET /trips/{id}
// @Summary      Get trip by ID
// @Description  Get a trip with all its members
// @Tags         trips
// @Produce      json
// @Param        id path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=TripResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	trip, members, err := h.service.GetByIDWithMembers(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get trip")
		return
	}

	tripResp := trip.ToResponse()
	tripResp.Members = make([]*MemberResponse, len(members))
	for i, m := range members {
		tripResp.Members[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, tripResp)
}

// Update handles PUT /trips/{id}
// @Summary      Update a trip
// @Description  Update name, description, or dates (owner only; base currency is immutable)
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path int true "Trip ID"
// @Param        request body UpdateTripRequest true "Trip update request"
// @Success      200 {object} response.APIResponse{data=TripResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /trips/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	var req UpdateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	trip, err := h.service.Update(r.Context(), id, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotOwner), errors.Is(err, ErrMemberNotFound):
			response.Forbidden(w, ErrNotOwner.Error())
		case errors.Is(err, ErrInvalidDate):
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w, "Failed to update trip")
		}
		return
	}

	response.JSON(w, http.StatusOK, trip.ToResponse())
}

// InviteMember handles POST /trips/{id}/members
// @Summary      Invite a user to a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        id path int true "Trip ID"
// @Param        request body InviteMemberRequest true "User to invite"
// @Success      201 {object} response.APIResponse{data=MemberResponse}
// @Failure      403 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /trips/{id}/members [post]
func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	inviterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		inviterID = 1
	}

	var req InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	member, err := h.service.InviteMember(r.Context(), tripID, inviterID, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrTripNotFound):
			response.NotFound(w, err.Error())
		case errors.Is(err, ErrNotOwner), errors.Is(err, ErrMemberNotFound):
			response.Forbidden(w, ErrNotOwner.Error())
		case errors.Is(err, ErrMemberAlreadyExists):
			response.Conflict(w, err.Error())
		default:
			response.InternalError(w, "Failed to invite member")
		}
		return
	}

	response.JSON(w, http.StatusCreated, member.ToResponse())
}

// GetMembers handles GET /trips/{id}/members
// @Summary      List trip members
// @Tags         trips
// @Produce      json
// @Param        id path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=[]MemberResponse}
// @Router       /trips/{id}/members [get]
func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	_, members, err := h.service.GetByIDWithMembers(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get members")
		return
	}

	memberResponses := make([]*MemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = m.ToResponse()
	}

	response.JSON(w, http.StatusOK, memberResponses)
}

// AcceptInvite handles POST /trips/{id}/accept
// @Summary      Accept a trip invitation
// @Tags         trips
// @Produce      json
// @Param        id path int true "Trip ID"
// @Success      200 {object} response.APIResponse{data=MemberResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /trips/{id}/accept [post]
func (h *Handler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	member, err := h.service.AcceptInvite(r.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, ErrNotInvited) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to accept invitation")
		return
	}

	response.JSON(w, http.StatusOK, member.ToResponse())
}

// RemoveMember handles DELETE /trips/{id}/members/{userId}
// @Summary      Remove a member from a trip
// @Tags         trips
// @Produce      json
// @Param        id path int true "Trip ID"
// @Param        userId path int true "User ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /trips/{id}/members/{userId} [delete]
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	targetID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid user ID")
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		ownerID = 1
	}

	if err := h.service.RemoveMember(r.Context(), tripID, ownerID, targetID); err != nil {
		switch {
		case errors.Is(err, ErrNotOwner), errors.Is(err, ErrMemberNotFound):
			response.Forbidden(w, ErrNotOwner.Error())
		default:
			response.InternalError(w, "Failed to remove member")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Member removed successfully"})
}
