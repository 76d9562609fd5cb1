package handler

import (
	"net/http"

	"partsdesk/internal/apierror"
	"partsdesk/internal/dto"
	"partsdesk/internal/service"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct{ svc service.LedgerService }

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// Ledger godoc
// @Summary Profit ledger over the filtered inventory snapshot
// @Tags ledger
// @Produce json
// @Param category query string false "Exact category filter"
// @Param gsm query string false "Exact GSM number filter"
// @Success 200 {object} dto.LedgerResponse
// @Router /api/ledger [get]
func (h *LedgerHandler) Ledger(c *gin.Context) {
	var filter dto.LedgerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid filter"))
		return
	}
	resp, err := h.svc.Ledger(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not load ledger"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
