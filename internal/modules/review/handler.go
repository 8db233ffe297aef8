package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain"
	"travelmate/internal/pkg/response"
	"travelmate/internal/pkg/uploads"
)

type Handler struct {
	service *Service
	store   *uploads.Store
}

func NewHandler(service *Service, store *uploads.Store) *Handler {
	return &Handler{service: service, store: store}
}

// RegisterPublicRoutes mounts approved-review listings.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/destinations/:id/reviews", h.ListDestinationReviews)
	rg.GET("/accommodations/:id/reviews", h.ListAccommodationReviews)
	rg.GET("/guides/:id/reviews", h.ListGuideReviews)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/destinations/:id/reviews", h.CreateDestinationReview)
	rg.POST("/accommodations/:id/reviews", h.CreateAccommodationReview)
	rg.POST("/guides/:id/reviews", h.CreateGuideReview)
	rg.DELETE("/reviews/destination/:id", h.DeleteDestinationReview)
	rg.DELETE("/reviews/accommodation/:id", h.DeleteAccommodationReview)
	rg.DELETE("/reviews/guide/:id", h.DeleteGuideReview)
	rg.POST("/reviews/:subject/:id/photos", h.AddPhoto)
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

func (h *Handler) ListDestinationReviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	reviews, err := h.service.GetDestinationReviews(c.Request.Context(), id, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) ListAccommodationReviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	reviews, err := h.service.GetAccommodationReviews(c.Request.Context(), id, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) ListGuideReviews(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	limit, offset := pagination(c)

	reviews, err := h.service.GetGuideReviews(c.Request.Context(), id, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) CreateDestinationReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.CreateDestinationReview(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to create review")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": rv, "title": rv.Title()})
}

func (h *Handler) CreateAccommodationReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.CreateAccommodationReview(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to create review")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": rv, "title": rv.Title()})
}

func (h *Handler) CreateGuideReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.CreateGuideReview(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to create review")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"review": rv, "title": rv.Title()})
}

func (h *Handler) DeleteDestinationReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteDestinationReview(c.Request.Context(), c.GetInt64("user_id"), isStaff(c), id); err != nil {
		h.writeError(c, err, "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *Handler) DeleteAccommodationReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAccommodationReview(c.Request.Context(), c.GetInt64("user_id"), isStaff(c), id); err != nil {
		h.writeError(c, err, "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *Handler) DeleteGuideReview(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteGuideReview(c.Request.Context(), c.GetInt64("user_id"), isStaff(c), id); err != nil {
		h.writeError(c, err, "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *Handler) AddPhoto(c *gin.Context) {
	subject := domain.ReviewSubject(c.Param("subject"))
	switch subject {
	case domain.SubjectDestination, domain.SubjectAccommodation, domain.SubjectGuide:
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review subject")
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing photo file")
		return
	}

	url, err := h.store.Save(uploads.ReviewPhotos, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrEmptyFile),
			errors.Is(err, uploads.ErrFileTooLarge),
			errors.Is(err, uploads.ErrUnsupportedType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store photo")
		}
		return
	}

	photo, err := h.service.AddPhoto(c.Request.Context(), c.GetInt64("user_id"), subject, id, url, c.PostForm("caption"))
	if err != nil {
		h.writeError(c, err, "Failed to add photo")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"photo": photo})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot modify this review")
	case errors.Is(err, ErrAlreadyReviewed):
		response.Error(c, http.StatusConflict, "CONFLICT", "You have already reviewed this")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid review data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func isStaff(c *gin.Context) bool {
	return c.GetString("role") == string(domain.RoleStaff)
}
