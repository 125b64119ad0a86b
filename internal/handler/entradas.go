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

type EntradasHandler struct{ svc service.MovimientoService }

func NewEntradasHandler(svc service.MovimientoService) *EntradasHandler {
	return &EntradasHandler{svc: svc}
}

// Registrar appends an inbound movement to the ledger.
func (h *EntradasHandler) Registrar(c *gin.Context) {
	var req dto.CrearEntradaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearEntrada(c.Request.Context(), req, middleware.Username(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al registrar entrada"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar returns the entradas ledger newest-first.
func (h *EntradasHandler) Listar(c *gin.Context) {
	rows, err := h.svc.ListarEntradas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar entradas"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Eliminar removes one row by id. Deleting an absent id succeeds: the ledger
// end state is the same.
func (h *EntradasHandler) Eliminar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.EliminarEntrada(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al eliminar entrada"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
