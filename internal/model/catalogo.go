package model

import "github.com/shopspring/decimal"

// Producto is a reference-catalog row loaded from Stock.xlsx at startup.
// The catalog is read-only: normal operation never mutates it.
type Producto struct {
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"producto"`
	UM           string          `json:"um"`
	Sistema      string          `json:"sistema"`
	StockInicial decimal.Decimal `json:"stock_inicial"`
}

// Sitio is a reference-catalog row loaded from SITES.xlsx (sheet "Site POP").
type Sitio struct {
	Codigo       string `json:"cod_sitio"`
	Nombre       string `json:"sitio"`
	Departamento string `json:"departamento"`
}
