package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearMultaRequest struct {
	ConductorID  string          `json:"conductor_id"  validate:"required,uuid"`
	NumeroViaje  int             `json:"numero_viaje"  validate:"required,min=1"`
	Motivo       string          `json:"motivo"        validate:"required"`
	FechaEmision time.Time       `json:"fecha_emision" validate:"required"`
	MontoEmitido decimal.Decimal `json:"monto_emitido" validate:"required"`
}

type ActualizarMultaRequest struct {
	Motivo       *string          `json:"motivo"`
	FechaEmision *time.Time       `json:"fecha_emision"`
	MontoEmitido *decimal.Decimal `json:"monto_emitido"`
	EstadoPago   *string          `json:"estado_pago" validate:"omitempty,oneof=pagado pendiente parcial vencido"`
}

// PagarMultaRequest registers a (possibly partial) payment against a fine.
type PagarMultaRequest struct {
	Monto decimal.Decimal `json:"monto" validate:"required"`
}

type MultaResponse struct {
	ID           string          `json:"id"`
	ConductorID  string          `json:"conductor_id"`
	NumeroViaje  int             `json:"numero_viaje"`
	Motivo       string          `json:"motivo"`
	FechaEmision time.Time       `json:"fecha_emision"`
	MontoEmitido decimal.Decimal `json:"monto_emitido"`
	MontoPagado  decimal.Decimal `json:"monto_pagado"`
	EstadoPago   string          `json:"estado_pago"`

	// Derivados del saldo
	SaldoPendiente   decimal.Decimal `json:"saldo_pendiente"`
	PorcentajePagado decimal.Decimal `json:"porcentaje_pagado"`
}

type MultaListResponse struct {
	Data  []MultaResponse `json:"data"`
	Total int             `json:"total"`
}
