package expense

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mhbutzke/half-trip/internal/trip"
	"github.com/mhbutzke/half-trip/pkg/middleware"
	"github.com/mhbutzke/half-trip/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Post("/preview", h.Preview)
	r.Get("/{id}", h.GetByID)
	r.Delete("/{id}", h.Delete)

	// Trip-based listing
	r.Get("/trip/{tripId}", h.ListByTrip)

	return r
}

// Create handles POST /expenses
// @Summary      Create a new expense
// @Description  Create an expense from form-string input with automatic split calculation (equal, by_amount, or by_percentage)
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		payerID = 1
	}

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	validTypes := map[string]bool{"equal": true, "by_amount": true, "by_percentage": true}
	if !validTypes[req.SplitType] {
		response.BadRequest(w, "Invalid split type. Must be equal, by_amount, or by_percentage")
		return
	}

	result, err := h.service.CreateExpense(r.Context(), payerID, &req)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		// Engine rejections carry the user-facing message.
		response.BadRequest(w, err.Error())
		return
	}

	expenseResp := result.Expense.ToResponse()
	expenseResp.Splits = make([]*SplitResponse, len(result.Splits))
	for i, s := range result.Splits {
		expenseResp.Splits[i] = s.ToResponse()
	}

	response.JSON(w, http.StatusCreated, expenseResp)
}

// Preview handles POST /expenses/preview
// @Summary      Preview an expense split
// @Description  Run the split calculation over form input without saving anything
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense form input"
// @Success      200 {object} response.APIResponse{data=PreviewResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses/preview [post]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.service.PreviewSplits(r.Context(), &req)
	if err != nil {
		if errors.Is(err, trip.ErrTripNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.BadRequest(w, err.Error())
		return
	}

	preview := &PreviewResponse{
		Amount:       result.Amount,
		ExchangeRate: result.ExchangeRate,
		BaseAmount:   math.Round(result.Amount*result.ExchangeRate*100) / 100,
		Splits:       make([]*SplitResponse, len(result.Splits)),
	}
	for i, a := range result.Splits {
		userID, _ := strconv.ParseInt(a.ParticipantID, 10, 64)
		preview.Splits[i] = &SplitResponse{
			UserID:     userID,
			Amount:     a.Amount,
			Percentage: a.Percentage,
		}
	}

	response.JSON(w, http.StatusOK, preview)
}

// GetByID handles GET /expenses/{id}
// @Summary      Get expense by ID
// @Description  Get an expense with all its splits
// @Tags         expenses
// @Produce      json
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	result, err := h.service.GetExpenseByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get expense")
		return
	}

	expenseResp := result.Expense.ToResponse()
	expenseResp.Splits = make([]*SplitResponse, len(result.Splits))
	for i, s := range result.Splits {
		expenseResp.Splits[i] = s.ToResponse()
	}

	response.JSON(w, http.StatusOK, expenseResp)
}

// ListByTrip handles GET /expenses/trip/{tripId}
// @Summary      List expenses by trip
// @Description  Get a paginated list of expenses for a trip
// @Tags         expenses
// @Produce      json
// @Param        tripId path int true "Trip ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Router       /expenses/trip/{tripId} [get]
func (h *Handler) ListByTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := strconv.ParseInt(chi.URLParam(r, "tripId"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid trip ID")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	expenses, total, err := h.service.ListExpensesByTripID(r.Context(), tripID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	expenseResponses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		expenseResponses[i] = e.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, expenseResponses, meta)
}

// Delete handles DELETE /expenses/{id}
// @Summary      Delete an expense
// @Description  Delete an expense and its splits (payer only)
// @Tags         expenses
// @Produce      json
// @Param        id path int true "Expense ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /expenses/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		userID = 1
	}

	if err := h.service.DeleteExpense(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrExpenseNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrNotPayer) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to delete expense")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Expense deleted successfully"})
}
