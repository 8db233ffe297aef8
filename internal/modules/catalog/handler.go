package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelmate/internal/domain"
	"travelmate/internal/pkg/response"
	"travelmate/internal/pkg/uploads"
	"travelmate/internal/repository"
)

type Handler struct {
	service *Service
	store   *uploads.Store
}

func NewHandler(service *Service, store *uploads.Store) *Handler {
	return &Handler{service: service, store: store}
}

// RegisterPublicRoutes mounts catalog browsing. These sit behind OptionalAuth
// so detail pages can report whether the viewer already left a review.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/destinations", h.ListDestinations)
	rg.GET("/destinations/:id", h.GetDestination)
	rg.GET("/accommodations", h.ListAccommodations)
	rg.GET("/accommodations/:id", h.GetAccommodation)
}

// RegisterProtectedRoutes mounts destination contribution endpoints. Any
// signed-in traveller can add destinations; edits are owner-or-staff, checked
// in the service.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/destinations", h.CreateDestination)
	rg.PUT("/destinations/:id", h.UpdateDestination)
	rg.DELETE("/destinations/:id", h.DeleteDestination)
	rg.POST("/destinations/:id/photos", h.AddDestinationPhoto)
	rg.PUT("/destinations/:id/photos/:photoID/primary", h.SetPrimaryPhoto)
	rg.DELETE("/destinations/:id/photos/:photoID", h.DeleteDestinationPhoto)
	rg.POST("/destinations/:id/features", h.AddDestinationFeature)
	rg.DELETE("/destinations/:id/features/:featureID", h.DeleteDestinationFeature)
}

// RegisterStaffRoutes mounts accommodation management behind the staff gate.
func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/accommodations", h.CreateAccommodation)
	rg.PUT("/accommodations/:id", h.UpdateAccommodation)
	rg.DELETE("/accommodations/:id", h.DeleteAccommodation)
	rg.POST("/accommodations/:id/image", h.UploadAccommodationImage)
}

func actor(c *gin.Context) (int64, bool) {
	return c.GetInt64("user_id"), c.GetString("role") == string(domain.RoleStaff)
}

func (h *Handler) ListDestinations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filters := repository.DestinationFilters{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Featured: c.Query("featured") == "true",
		Limit:    limit,
		Offset:   offset,
	}

	destinations, total, err := h.service.ListDestinations(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load destinations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"destinations": destinations,
		"total":        total,
	})
}

func (h *Handler) GetDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination ID")
		return
	}

	detail, err := h.service.GetDestination(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load destination")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateDestination(c *gin.Context) {
	var req CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.CreateDestination(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create destination")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"destination": created})
}

func (h *Handler) UpdateDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination ID")
		return
	}

	var req UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actorID, isStaff := actor(c)
	updated, err := h.service.UpdateDestination(c.Request.Context(), actorID, isStaff, id, req)
	if err != nil {
		h.writeDestinationError(c, err, "Failed to update destination")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"destination": updated})
}

func (h *Handler) DeleteDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination ID")
		return
	}

	actorID, isStaff := actor(c)
	if err := h.service.DeleteDestination(c.Request.Context(), actorID, isStaff, id); err != nil {
		h.writeDestinationError(c, err, "Failed to delete destination")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Destination deleted"})
}

func (h *Handler) AddDestinationPhoto(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination ID")
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing photo file")
		return
	}

	url, err := h.store.Save(uploads.DestinationPhotos, fileHeader)
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

	actorID, isStaff := actor(c)
	photo, err := h.service.AddDestinationPhoto(
		c.Request.Context(),
		actorID,
		isStaff,
		id,
		url,
		c.PostForm("caption"),
		c.PostForm("is_primary") == "true",
	)
	if err != nil {
		h.writeDestinationError(c, err, "Failed to add photo")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"photo": photo})
}

func (h *Handler) SetPrimaryPhoto(c *gin.Context) {
	id, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	photoID, err2 := strconv.ParseInt(c.Param("photoID"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return
	}

	actorID, isStaff := actor(c)
	if err := h.service.SetPrimaryDestinationPhoto(c.Request.Context(), actorID, isStaff, id, photoID); err != nil {
		h.writeDestinationError(c, err, "Failed to update photo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Primary photo updated"})
}

func (h *Handler) DeleteDestinationPhoto(c *gin.Context) {
	id, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	photoID, err2 := strconv.ParseInt(c.Param("photoID"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return
	}

	actorID, isStaff := actor(c)
	if err := h.service.DeleteDestinationPhoto(c.Request.Context(), actorID, isStaff, id, photoID); err != nil {
		h.writeDestinationError(c, err, "Failed to delete photo")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Photo deleted"})
}

func (h *Handler) AddDestinationFeature(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination ID")
		return
	}

	var req AddFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	actorID, isStaff := actor(c)
	feature, err := h.service.AddDestinationFeature(c.Request.Context(), actorID, isStaff, id, req)
	if err != nil {
		h.writeDestinationError(c, err, "Failed to add feature")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"feature": feature})
}

func (h *Handler) DeleteDestinationFeature(c *gin.Context) {
	id, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	featureID, err2 := strconv.ParseInt(c.Param("featureID"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return
	}

	actorID, isStaff := actor(c)
	if err := h.service.DeleteDestinationFeature(c.Request.Context(), actorID, isStaff, id, featureID); err != nil {
		h.writeDestinationError(c, err, "Failed to delete feature")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Feature deleted"})
}

func (h *Handler) ListAccommodations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	destinationID, _ := strconv.ParseInt(c.Query("destination_id"), 10, 64)

	filters := repository.AccommodationFilters{
		Search:        c.Query("search"),
		Type:          c.Query("type"),
		DestinationID: destinationID,
		Limit:         limit,
		Offset:        offset,
	}

	accommodations, total, err := h.service.ListAccommodations(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load accommodations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"accommodations": accommodations,
		"total":          total,
	})
}

func (h *Handler) GetAccommodation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	detail, err := h.service.GetAccommodation(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load accommodation")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateAccommodation(c *gin.Context) {
	var req CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.CreateAccommodation(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation data")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create accommodation")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"accommodation": created})
}

func (h *Handler) UpdateAccommodation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	var req UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.UpdateAccommodation(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update accommodation")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodation": updated})
}

func (h *Handler) DeleteAccommodation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	if err := h.service.DeleteAccommodation(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete accommodation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Accommodation deleted"})
}

func (h *Handler) UploadAccommodationImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid accommodation ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing image file")
		return
	}

	url, err := h.store.Save(uploads.AccommodationImgs, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrEmptyFile),
			errors.Is(err, uploads.ErrFileTooLarge),
			errors.Is(err, uploads.ErrUnsupportedType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store image")
		}
		return
	}

	updated, err := h.service.SetAccommodationImage(c.Request.Context(), id, url)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Accommodation not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update accommodation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"accommodation": updated})
}

func (h *Handler) writeDestinationError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Destination not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to modify this destination")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid destination data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
