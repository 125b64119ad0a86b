package handler

import (
	"net/http"

	"github.com/Cdo9608/sistema-consumibles/internal/apierror"
	"github.com/Cdo9608/sistema-consumibles/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// Calcular returns the catalog-driven stock reconciliation: one row per
// catalog product with movement sums and derived metrics.
func (h *StockHandler) Calcular(c *gin.Context) {
	rows, err := h.svc.CalcularStock(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular stock"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Resumen returns the ledger-driven summary: one row per product code seen in
// either ledger, with a three-tier estado label.
func (h *StockHandler) Resumen(c *gin.Context) {
	rows, err := h.svc.ResumenLedger(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular resumen"))
		return
	}
	c.JSON(http.StatusOK, rows)
}
