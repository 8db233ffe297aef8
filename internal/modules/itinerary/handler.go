package itinerary

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

// RegisterPublicRoutes mounts shared-itinerary browsing. The listing lives
// under /public to keep the segment free of the /itineraries/:id wildcard;
// the detail route sits here so anonymous readers can open a public
// itinerary, with the service deciding owner/staff/public access.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/itineraries", h.ListPublic)
	rg.GET("/itineraries/:id", h.Get)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/itineraries", h.Create)
	rg.GET("/itineraries", h.ListMine)
	rg.PUT("/itineraries/:id", h.Update)
	rg.DELETE("/itineraries/:id", h.Delete)
	rg.POST("/itineraries/:id/items", h.AddItem)
	rg.PUT("/itineraries/:id/items/:itemID", h.UpdateItem)
	rg.DELETE("/itineraries/:id/items/:itemID", h.DeleteItem)
	rg.POST("/itineraries/:id/collaborators", h.AddCollaborator)
	rg.DELETE("/itineraries/:id/collaborators/:userID", h.RemoveCollaborator)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create itinerary")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"itinerary": created})
}

func (h *Handler) ListMine(c *gin.Context) {
	itineraries, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load itineraries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"itineraries": itineraries})
}

func (h *Handler) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	itineraries, err := h.service.ListPublic(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load itineraries")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"itineraries": itineraries})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid itinerary ID")
		return
	}

	isStaff := c.GetString("role") == string(domain.RoleStaff)
	detail, err := h.service.Get(c.Request.Context(), c.GetInt64("user_id"), isStaff, id)
	if err != nil {
		h.writeError(c, err, "Failed to load itinerary")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid itinerary ID")
		return
	}

	var req UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update itinerary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"itinerary": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid itinerary ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id); err != nil {
		h.writeError(c, err, "Failed to delete itinerary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Itinerary deleted"})
}

func (h *Handler) AddItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid itinerary ID")
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to add item")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"item": item})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	id, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	itemID, err2 := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), c.GetInt64("user_id"), id, itemID, req)
	if err != nil {
		h.writeError(c, err, "Failed to update item")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"item": item})
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	itemID, err2 := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), c.GetInt64("user_id"), id, itemID); err != nil {
		h.writeError(c, err, "Failed to delete item")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Item deleted"})
}

func (h *Handler) AddCollaborator(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid itinerary ID")
		return
	}

	var req AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	collaborator, err := h.service.AddCollaborator(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			response.Error(c, http.StatusConflict, "CONFLICT", "User is already a collaborator")
			return
		}
		h.writeError(c, err, "Failed to add collaborator")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"collaborator": collaborator})
}

func (h *Handler) RemoveCollaborator(c *gin.Context) {
	id, err1 := strconv.ParseInt(c.Param("id"), 10, 64)
	userID, err2 := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return
	}

	if err := h.service.RemoveCollaborator(c.Request.Context(), c.GetInt64("user_id"), id, userID); err != nil {
		h.writeError(c, err, "Failed to remove collaborator")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Collaborator removed"})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the itinerary owner can do this")
	case errors.Is(err, ErrInvalidDates):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "End date must not be before start date")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid itinerary data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
