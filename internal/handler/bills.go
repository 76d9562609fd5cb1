package handler

import (
	"errors"
	"fmt"
	"net/http"

	"partsdesk/internal/apierror"
	"partsdesk/internal/dto"
	"partsdesk/internal/infra"
	"partsdesk/internal/repository"
	"partsdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BillsHandler struct {
	svc  service.BillService
	repo repository.BillRepository
}

func NewBillsHandler(svc service.BillService, repo repository.BillRepository) *BillsHandler {
	return &BillsHandler{svc: svc, repo: repo}
}

func (h *BillsHandler) Create(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Could not save bill"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BillsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not load bills"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Bill not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillsHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Bill not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update bill"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillsHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not delete bill"))
		return
	}
	c.Status(http.StatusNoContent)
}

// PDF streams a printable invoice for the bill.
func (h *BillsHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	bill, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Bill not found"))
		return
	}
	data, err := infra.GenerateBillPDF(bill)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not generate PDF"))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=bill_%s.pdf", bill.BillNumber))
	c.Data(http.StatusOK, "application/pdf", data)
}
