package guide

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

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

// RegisterPublicRoutes mounts the guide listing and detail. Detail sits behind
// OptionalAuth so the response can say whether the viewer already reviewed.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/guides", h.List)
	rg.GET("/guides/:id", h.Get)
}

// RegisterStaffRoutes mounts guide administration behind the staff gate.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/guides", h.Create)
	rg.PUT("/guides/:id", h.Update)
	rg.DELETE("/guides/:id", h.Delete)
	rg.POST("/guides/:id/photo", h.UploadPhoto)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	guides, total, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load guides")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"guides": guides,
		"total":  total,
	})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guide ID")
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guide not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load guide")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guide data")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "Username or email already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create guide")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"guide": created})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guide ID")
		return
	}

	var req UpdateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guide not found")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "Username or email already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update guide")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guide": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guide ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guide not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete guide")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Guide deleted"})
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guide ID")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing photo file")
		return
	}

	url, err := h.store.Save(uploads.GuidePhotos, fileHeader)
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

	updated, err := h.service.SetPhoto(c.Request.Context(), id, url)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guide not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update guide")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"guide": updated})
}
