package handler

import (
	"net/http"
	"strconv"

	"github.com/Cdo9608/sistema-consumibles/internal/apierror"
	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/middleware"
	"github.com/Cdo9608/sistema-consumibles/internal/service"

	"github.com/gin-gonic/gin"
)

type SalidasHandler struct{ svc service.MovimientoService }

func NewSalidasHandler(svc service.MovimientoService) *SalidasHandler {
	return &SalidasHandler{svc: svc}
}

// Registrar appends an outbound movement to the ledger.
func (h *SalidasHandler) Registrar(c *gin.Context) {
	var req dto.CrearSalidaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearSalida(c.Request.Context(), req, middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar salida"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar returns the salidas ledger newest-first.
func (h *SalidasHandler) Listar(c *gin.Context) {
	rows, err := h.svc.ListarSalidas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar salidas"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Eliminar removes one row by id.
func (h *SalidasHandler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.EliminarSalida(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar salida"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
