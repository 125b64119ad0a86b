package handler

import (
	"net/http"
	"strconv"

	"github.com/Cdo9608/sistema-consumibles/internal/apierror"
	"github.com/Cdo9608/sistema-consumibles/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Resumen(c *gin.Context) {
	resumen, err := h.svc.Resumen(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular resumen general"))
		return
	}
	c.JSON(http.StatusOK, resumen)
}

func (h *DashboardHandler) TopStock(c *gin.Context) {
	rows, err := h.svc.TopStock(c.Request.Context(), limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular top stock"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) TopSalidas(c *gin.Context) {
	rows, err := h.svc.TopSalidas(c.Request.Context(), limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular top salidas"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) TopRotacion(c *gin.Context) {
	rows, err := h.svc.TopRotacion(c.Request.Context(), limitParam(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular top rotacion"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) StockCritico(c *gin.Context) {
	rows, err := h.svc.StockCritico(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular stock critico"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *DashboardHandler) PorSistema(c *gin.Context) {
	rows, err := h.svc.PorSistema(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular distribucion"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// limitParam reads ?limit=N, defaulting to 10.
func limitParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || n < 1 {
		return 10
	}
	return n
}
