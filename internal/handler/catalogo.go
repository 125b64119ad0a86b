package handler

import (
	"net/http"

	"github.com/Cdo9608/sistema-consumibles/internal/apierror"
	"github.com/Cdo9608/sistema-consumibles/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct{ cat *catalog.Catalogo }

func NewCatalogoHandler(cat *catalog.Catalogo) *CatalogoHandler {
	return &CatalogoHandler{cat: cat}
}

func (h *CatalogoHandler) Productos(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.Productos)
}

func (h *CatalogoHandler) Sitios(c *gin.Context) {
	c.JSON(http.StatusOK, h.cat.Sitios)
}

// Producto resolves a product by code or name (case-insensitive).
func (h *CatalogoHandler) Producto(c *gin.Context) {
	p, ok := h.cat.BuscarProducto(c.Param("codigo"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// Sitio resolves a site by code or name (case-insensitive).
func (h *CatalogoHandler) Sitio(c *gin.Context) {
	s, ok := h.cat.BuscarSitio(c.Param("codigo"))
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Sitio no encontrado"))
		return
	}
	c.JSON(http.StatusOK, s)
}
