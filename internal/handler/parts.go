package handler

import (
	"errors"
	"net/http"

	"partsdesk/internal/apierror"
	"partsdesk/internal/dto"
	"partsdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartsHandler struct {
	svc       service.PartService
	inventory service.InventoryService
}

func NewPartsHandler(svc service.PartService, inventory service.InventoryService) *PartsHandler {
	return &PartsHandler{svc: svc, inventory: inventory}
}

func (h *PartsHandler) Create(c *gin.Context) {
	var req dto.CreatePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not create part"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PartsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not load parts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Part not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdatePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Part not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Could not update part"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Part not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Could not delete part"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary godoc
// @Summary Inventory dashboard figures
// @Tags parts
// @Produce json
// @Success 200 {object} dto.InventorySummary
// @Router /api/parts/summary [get]
func (h *PartsHandler) Summary(c *gin.Context) {
	resp, err := h.inventory.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not compute summary"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Lookup serves price autofill for the billing form, by GSM number.
func (h *PartsHandler) Lookup(c *gin.Context) {
	resp, err := h.svc.Lookup(c.Request.Context(), c.Param("gsm"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Part not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
