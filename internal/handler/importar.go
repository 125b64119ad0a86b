package handler

import (
	"net/http"

	"github.com/Cdo9608/sistema-consumibles/internal/apierror"
	"github.com/Cdo9608/sistema-consumibles/internal/service"

	"github.com/gin-gonic/gin"
)

type ImportHandler struct{ svc service.ImportService }

func NewImportHandler(svc service.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// Importar receives a multipart workbook ("archivo" field) with Entradas and
// Salidas sheets and appends its rows to the ledgers.
func (h *ImportHandler) Importar(c *gin.Context) {
	fh, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo xlsx requerido (campo 'archivo')"))
		return
	}
	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer file.Close()

	res, err := h.svc.ImportarExcel(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo invalido: "+err.Error()))
		return
	}
	c.JSON(http.StatusOK, res)
}
