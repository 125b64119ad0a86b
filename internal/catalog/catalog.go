// Package catalog loads the read-only reference tables (productos and sites)
// from their spreadsheets at process start. A missing or unreadable file
// degrades the affected catalog to empty — reconciliation then produces an
// empty result rather than an error.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Cdo9608/sistema-consumibles/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SitesSheet is the expected sheet name in SITES.xlsx; when absent the first
// sheet is used instead, matching how the workbook is curated by hand.
const SitesSheet = "Site POP"

// Catalogo is the in-memory reference data, built once and passed explicitly
// to every consumer — no ambient/global session state.
type Catalogo struct {
	Productos []model.Producto
	Sitios    []model.Sitio

	prodIdx  map[string]int // upper(codigo) and upper(nombre) → index
	sitioIdx map[string]int
}

// Nuevo builds a catalog from already-loaded rows.
func Nuevo(productos []model.Producto, sitios []model.Sitio) *Catalogo {
	c := &Catalogo{Productos: productos, Sitios: sitios}
	c.indexar()
	return c
}

// Cargar reads both spreadsheets. Each file failure is logged and leaves that
// catalog empty; Cargar itself never fails.
func Cargar(stockFile, sitesFile string) *Catalogo {
	c := &Catalogo{}

	productos, err := CargarProductos(stockFile)
	if err != nil {
		log.Warn().Err(err).Str("archivo", stockFile).Msg("no se pudo cargar el catálogo de productos")
	}
	c.Productos = productos

	sitios, err := CargarSitios(sitesFile)
	if err != nil {
		log.Warn().Err(err).Str("archivo", sitesFile).Msg("no se pudo cargar el catálogo de sites")
	}
	c.Sitios = sitios

	c.indexar()
	log.Info().Int("productos", len(c.Productos)).Int("sitios", len(c.Sitios)).Msg("catálogos cargados")
	return c
}

func (c *Catalogo) indexar() {
	c.prodIdx = make(map[string]int, len(c.Productos)*2)
	for i, p := range c.Productos {
		c.prodIdx[strings.ToUpper(p.Codigo)] = i
		c.prodIdx[strings.ToUpper(p.Nombre)] = i
	}
	c.sitioIdx = make(map[string]int, len(c.Sitios)*2)
	for i, s := range c.Sitios {
		c.sitioIdx[strings.ToUpper(s.Codigo)] = i
		c.sitioIdx[strings.ToUpper(s.Nombre)] = i
	}
}

// BuscarProducto resolves a product by codigo or nombre, case-insensitive.
func (c *Catalogo) BuscarProducto(clave string) (model.Producto, bool) {
	i, ok := c.prodIdx[strings.ToUpper(strings.TrimSpace(clave))]
	if !ok {
		return model.Producto{}, false
	}
	return c.Productos[i], true
}

// BuscarSitio resolves a site by código or nombre, case-insensitive.
func (c *Catalogo) BuscarSitio(clave string) (model.Sitio, bool) {
	i, ok := c.sitioIdx[strings.ToUpper(strings.TrimSpace(clave))]
	if !ok {
		return model.Sitio{}, false
	}
	return c.Sitios[i], true
}

// CargarProductos reads the product catalog (columns: Codigo, Producto, UM,
// SISTEMA, Stock inicial). Header matching is case-insensitive; missing cells
// default to empty / zero instead of failing the row.
func CargarProductos(path string) ([]model.Producto, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s no contiene hojas", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := columnIndex(rows[0])
	var productos []model.Producto
	for _, row := range rows[1:] {
		codigo := strings.TrimSpace(cell(row, firstIdx(cols, "CODIGO")))
		if codigo == "" {
			continue
		}
		stockInicial, err := decimal.NewFromString(strings.TrimSpace(cell(row, firstIdx(cols, "STOCK INICIAL"))))
		if err != nil {
			// absent or malformed initial stock is treated as zero
			stockInicial = decimal.Zero
		}
		productos = append(productos, model.Producto{
			Codigo:       codigo,
			Nombre:       strings.TrimSpace(cell(row, firstIdx(cols, "PRODUCTO"))),
			UM:           strings.TrimSpace(cell(row, firstIdx(cols, "UM"))),
			Sistema:      strings.TrimSpace(cell(row, firstIdx(cols, "SISTEMA"))),
			StockInicial: stockInicial,
		})
	}
	return productos, nil
}

// CargarSitios reads the site catalog from the "Site POP" sheet, falling back
// to the first sheet when that name is absent.
func CargarSitios(path string) ([]model.Sitio, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := SitesSheet
	if idx, _ := f.GetSheetIndex(SitesSheet); idx < 0 {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s no contiene hojas", path)
		}
		sheet = sheets[0]
		log.Warn().Str("archivo", path).Str("hoja", sheet).
			Msgf("no se encontró la hoja %q, se usa la primera", SitesSheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := columnIndex(rows[0])
	var sitios []model.Sitio
	for _, row := range rows[1:] {
		codigo := strings.TrimSpace(cell(row, firstIdx(cols, "CÓDIGO", "CODIGO")))
		nombre := strings.TrimSpace(cell(row, firstIdx(cols, "NOMBRE")))
		if codigo == "" && nombre == "" {
			continue
		}
		sitios = append(sitios, model.Sitio{
			Codigo:       codigo,
			Nombre:       nombre,
			Departamento: strings.TrimSpace(cell(row, firstIdx(cols, "DEPARTAMENTO"))),
		})
	}
	return sitios, nil
}

// columnIndex maps upper-cased header names to their column position.
func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToUpper(strings.TrimSpace(h))] = i
	}
	return cols
}

func firstIdx(cols map[string]int, names ...string) int {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
