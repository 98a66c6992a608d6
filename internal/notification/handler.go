package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mhbutzke/half-trip/pkg/middleware"
	"github.com/mhbutzke/half-trip/pkg/response"
)

// Handler handles HTTP requests for notification operations
type Handler struct {
	service *Service
}

// NewHandler creates a new notification handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for notification endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/unread-count", h.GetUnreadCount)
	r.Post("/{id}/read", h.MarkAsRead)
	r.Post("/read-all", h.MarkAllAsRead)

	return r
}

// List handles GET /notifications
// @Summary      List notifications
// @Description  Get the caller's notifications, newest first
// @Tags         notifications
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Param        unread query bool false "Only unread notifications"
// @Success      200 {object} response.APIResponse{data=[]Notification}
// @Router       /notifications [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	unreadOnly := r.URL.Query().Get("unread") == "true"

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	notifications, total, err := h.service.ListByRecipient(r.Context(), userID, page, perPage, unreadOnly)
	if err != nil {
		response.InternalError(w, "Failed to list notifications")
		return
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, notifications, meta)
}

// GetUnreadCount handles GET /notifications/unread-count
// @Summary      Get unread notification count
// @Tags         notifications
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Router       /notifications/unread-count [get]
func (h *Handler) GetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	count, err := h.service.GetUnreadCount(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to count notifications")
		return
	}

	response.JSON(w, http.StatusOK, map[string]int{"unread_count": count})
}

// MarkAsRead handles POST /notifications/{id}/read
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id path int true "Notification ID"
// @Success      200 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /notifications/{id}/read [post]
func (h *Handler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid notification ID")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	if err := h.service.MarkAsRead(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrNotRecipient) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to mark notification as read")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// MarkAllAsRead handles POST /notifications/read-all
// @Summary      Mark all notifications as read
// @Tags         notifications
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Router       /notifications/read-all [post]
func (h *Handler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	if err := h.service.MarkAllAsRead(r.Context(), userID); err != nil {
		response.InternalError(w, "Failed to mark notifications as read")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "All notifications marked as read"})
}
