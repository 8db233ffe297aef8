package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain"
	"travelmate/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterProtectedRoutes mounts the traveller-facing booking endpoints.
// Complete and payment marking are owner-or-staff, checked in the service.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.ListMine)
	rg.GET("/bookings/:id", h.Get)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/complete", h.Complete)
	rg.PUT("/bookings/:id/payment-status", h.UpdatePaymentStatus)
}

// RegisterStaffRoutes mounts booking confirmation behind the staff gate.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/:id/confirm", h.Confirm)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be in YYYY-MM-DD format")
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Check-out must be after check-in")
		case errors.Is(err, ErrTooManyGuests):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Guest count exceeds accommodation capacity")
		case errors.Is(err, ErrUnavailable):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Accommodation is not available")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": created})
}

func (h *Handler) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.ListForUser(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	booking, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), isStaff(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	booking, err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"), isStaff(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) Confirm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	booking, err := h.service.Confirm(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to confirm booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	booking, err := h.service.Complete(c.Request.Context(), c.GetInt64("user_id"), isStaff(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to complete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	booking, err := h.service.MarkPayment(c.Request.Context(), c.GetInt64("user_id"), isStaff(c), id, req.PaymentStatus)
	if err != nil {
		h.writeError(c, err, "Failed to update payment status")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
	case errors.Is(err, ErrNotCancellable):
		response.Error(c, http.StatusConflict, "CONFLICT", "Booking can no longer be cancelled")
	case errors.Is(err, ErrBadStatusChange):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status transition")
	case errors.Is(err, ErrBadPaymentStatus):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment status")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func isStaff(c *gin.Context) bool {
	return c.GetString("role") == string(domain.RoleStaff)
}
