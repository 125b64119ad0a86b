package model

import "github.com/shopspring/decimal"

// Salida registra un movimiento de egreso de stock hacia un site (append-only).
// CodSitio/Codigo are denormalized copies of the catalog values at creation
// time; the ledger does not enforce referential integrity against the catalog.
type Salida struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	NroGuia       string          `json:"nro_guia"`
	NroTarea      string          `json:"nro_tarea"`
	Fecha         string          `json:"fecha"`
	CodSitio      string          `json:"cod_sitio"`
	Sitio         string          `json:"sitio"`
	Departamento  string          `json:"departamento"`
	Codigo        string          `gorm:"index" json:"codigo"`
	Producto      string          `json:"producto"`
	CodeIndra     string          `json:"code_indra"`
	Descripcion   string          `json:"descripcion"`
	Cantidad      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cantidad"`
	UM            string          `json:"um"`
	Sistema       string          `json:"sistema"`
	CreadoPor     string          `json:"creado_por"`
	FechaCreacion string          `json:"fecha_creacion"`
}

func (Salida) TableName() string { return "salidas" }
