package handler

import (
	"context"
	"net/http"

	"github.com/Cdo9608/sistema-consumibles/internal/dto"

	"github.com/gin-gonic/gin"
)

// Exportador triggers an immediate xlsx export outside the periodic cadence.
// Implemented by persist.Sincronizador.
type Exportador interface {
	Exportar(ctx context.Context) []dto.PasoSync
}

type ExportHandler struct{ exp Exportador }

func NewExportHandler(exp Exportador) *ExportHandler { return &ExportHandler{exp: exp} }

// Generar runs the export pipeline on demand and reports each step.
func (h *ExportHandler) Generar(c *gin.Context) {
	pasos := h.exp.Exportar(c.Request.Context())
	ok := true
	for _, p := range pasos {
		if !p.OK {
			ok = false
			break
		}
	}
	status := http.StatusOK
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"ok": ok, "pasos": pasos})
}
