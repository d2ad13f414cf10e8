package entity

import "github.com/shopspring/decimal"

// Configuracion registro único con las tarifas de facturación.
// De solo lectura para este sistema.
type Configuracion struct {
	ID                  int64
	ValorHoraPaquete    decimal.Decimal
	ValorHoraIndividual decimal.Decimal
	Comision            decimal.Decimal // recargo fraccional, ej. 0.1 = 10%
}
