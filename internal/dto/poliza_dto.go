package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearPolizaRequest struct {
	NumeroPoliza  string `json:"numero_poliza"  validate:"required"`
	PlacaVehiculo string `json:"placa_vehiculo" validate:"required"`
	Aseguradora   string `json:"aseguradora"    validate:"required"`

	FechaInicio      time.Time       `json:"fecha_inicio"      validate:"required"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento" validate:"required"`
	FechaPago        *time.Time      `json:"fecha_pago"`
	MontoPagado      decimal.Decimal `json:"monto_pagado"      validate:"required"`
}

type ActualizarPolizaRequest struct {
	Aseguradora      *string          `json:"aseguradora"`
	FechaInicio      *time.Time       `json:"fecha_inicio"`
	FechaVencimiento *time.Time       `json:"fecha_vencimiento"`
	FechaPago        *time.Time       `json:"fecha_pago"`
	MontoPagado      *decimal.Decimal `json:"monto_pagado"`
}

type PolizaResponse struct {
	ID            string `json:"id"`
	NumeroPoliza  string `json:"numero_poliza"`
	PlacaVehiculo string `json:"placa_vehiculo"`
	Aseguradora   string `json:"aseguradora"`

	FechaInicio      time.Time       `json:"fecha_inicio"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
	FechaPago        *time.Time      `json:"fecha_pago"`
	MontoPagado      decimal.Decimal `json:"monto_pagado"`
	Cancelada        bool            `json:"cancelada"`

	// Derivados de la vista
	DiasRestantes int    `json:"dias_restantes"`
	Estado        string `json:"estado"`
	NivelAlerta   string `json:"nivel_alerta"`
}

type PolizaListResponse struct {
	Data  []PolizaResponse `json:"data"`
	Total int              `json:"total"`
}
