package dto

import "github.com/shopspring/decimal"

// MontoResponse cotización de una cantidad de horas de servicio.
type MontoResponse struct {
	CantHoras decimal.Decimal `json:"cant_horas"`
	TipoHoras string          `json:"tipo_horas"`
	Monto     decimal.Decimal `json:"monto"`
}
