package model

import "github.com/shopspring/decimal"

// Entrada registra un movimiento de ingreso de stock (append-only).
// Rows are created once and may be deleted by id; there are no in-place edits.
// Fecha columns are stored as TEXT exactly as the user supplied them — the
// ledger keeps provenance, it does not normalize calendars.
type Entrada struct {
	ID                   uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrdenCompra          string          `json:"orden_compra"`
	Fecha                string          `json:"fecha"`
	Codigo               string          `gorm:"index" json:"codigo"`
	Producto             string          `json:"producto"`
	Cantidad             decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"cantidad"`
	UM                   string          `json:"um"`
	Sistema              string          `json:"sistema"`
	AlmacenSalida        string          `json:"almacen_salida"`
	FechaEnvio           string          `json:"fecha_envio"`
	ResponsableEnvio     string          `json:"responsable_envio"`
	AlmacenRecepcion     string          `json:"almacen_recepcion"`
	FechaRecepcion       string          `json:"fecha_recepcion"`
	ResponsableRecepcion string          `json:"responsable_recepcion"`
	CreadoPor            string          `json:"creado_por"`
	FechaCreacion        string          `json:"fecha_creacion"`
}

func (Entrada) TableName() string { return "entradas" }
