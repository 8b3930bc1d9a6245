package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PolizaSeguro is an insurance policy, linked to a vehicle by plate (the
// original schema keys policies by placa, not by vehicle id). Vigencia state
// is derived from FechaVencimiento except for the explicit stored cancelled
// flag, which wins over dates.
type PolizaSeguro struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroPoliza  string    `gorm:"uniqueIndex;not null"`
	PlacaVehiculo string    `gorm:"index;not null"`
	Aseguradora   string    `gorm:"not null"`

	FechaInicio      time.Time `gorm:"not null"`
	FechaVencimiento time.Time `gorm:"not null"`
	FechaPago        *time.Time
	MontoPagado      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	// Cancelada is an explicit state, not derived from dates.
	Cancelada bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PolizaSeguro) TableName() string { return "polizas_seguros" }

// PolizaVista adds the derived vigencia columns computed by the view.
type PolizaVista struct {
	ID            uuid.UUID `json:"id"`
	NumeroPoliza  string    `json:"numero_poliza"`
	PlacaVehiculo string    `json:"placa_vehiculo"`
	Aseguradora   string    `json:"aseguradora"`

	FechaInicio      time.Time       `json:"fecha_inicio"`
	FechaVencimiento time.Time       `json:"fecha_vencimiento"`
	FechaPago        *time.Time      `json:"fecha_pago"`
	MontoPagado      decimal.Decimal `json:"monto_pagado"`
	Cancelada        bool            `json:"cancelada"`

	// Derived in the view
	DiasRestantes int    `json:"dias_restantes"`
	Estado        string `json:"estado"` // vigente | por_vencer | vencida | cancelada

	CreatedAt time.Time `json:"created_at"`
}

func (PolizaVista) TableName() string { return "vista_polizas" }
