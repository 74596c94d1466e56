package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workshop-portal/stats-api/internal/models"
	"github.com/workshop-portal/stats-api/pkg/response"
)

type workshopTypeService interface {
	List(ctx context.Context) ([]models.WorkshopType, error)
	Get(ctx context.Context, id string) (*models.WorkshopType, error)
}

// WorkshopTypeHandler serves the filter choice lists.
type WorkshopTypeHandler struct {
	service workshopTypeService
}

// NewWorkshopTypeHandler builds a new handler.
func NewWorkshopTypeHandler(service workshopTypeService) *WorkshopTypeHandler {
	return &WorkshopTypeHandler{service: service}
}

// List godoc
// @Summary List workshop types
// @Tags Workshop Types
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /workshop-types [get]
func (h *WorkshopTypeHandler) List(c *gin.Context) {
	types, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, types, nil)
}

// Get godoc
// @Summary Get a workshop type with its terms and conditions
// @Tags Workshop Types
// @Produce json
// @Param id path string true "Workshop type ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /workshop-types/{id} [get]
func (h *WorkshopTypeHandler) Get(c *gin.Context) {
	workshopType, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, workshopType, nil)
}

// States godoc
// @Summary List state codes
// @Tags Workshop Types
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /states [get]
func (h *WorkshopTypeHandler) States(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.States, nil)
}
