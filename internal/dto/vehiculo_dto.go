package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearVehiculoRequest struct {
	Tipo        string          `json:"tipo"         validate:"required"`
	Marca       string          `json:"marca"        validate:"required,min=2,max=60"`
	Modelo      string          `json:"modelo"       validate:"required,min=1,max=60"`
	Placa       string          `json:"placa"        validate:"required,min=5,max=10"`
	NumeroSerie string          `json:"numero_serie" validate:"omitempty,max=40"`
	Color       string          `json:"color"        validate:"omitempty,max=30"`
	Anio        int             `json:"anio"         validate:"omitempty,min=1950,max=2100"`
	CargaMaxima decimal.Decimal `json:"carga_maxima"`

	CicloMantenimientoKm int `json:"ciclo_mantenimiento_km" validate:"required,min=1"`
	KilometrajeInicial   int `json:"kilometraje_inicial"    validate:"min=0"`
}

type ActualizarVehiculoRequest struct {
	Tipo        *string          `json:"tipo"`
	Marca       *string          `json:"marca"        validate:"omitempty,min=2,max=60"`
	Modelo      *string          `json:"modelo"       validate:"omitempty,min=1,max=60"`
	Color       *string          `json:"color"        validate:"omitempty,max=30"`
	Anio        *int             `json:"anio"         validate:"omitempty,min=1950,max=2100"`
	CargaMaxima *decimal.Decimal `json:"carga_maxima"`

	CicloMantenimientoKm *int `json:"ciclo_mantenimiento_km" validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// VehiculoResponse carries raw columns plus the maintenance-status fields.
// KmRestante may be negative (overdue); the display clamp is the client's.
type VehiculoResponse struct {
	ID          string          `json:"id"`
	Tipo        string          `json:"tipo"`
	Marca       string          `json:"marca"`
	Modelo      string          `json:"modelo"`
	Placa       string          `json:"placa"`
	NumeroSerie string          `json:"numero_serie"`
	Color       string          `json:"color"`
	Anio        int             `json:"anio"`
	CargaMaxima decimal.Decimal `json:"carga_maxima"`

	CicloMantenimientoKm        int `json:"ciclo_mantenimiento_km"`
	KilometrajeInicial          int `json:"kilometraje_inicial"`
	KilometrajeUltimoPreventivo int `json:"kilometraje_ultimo_preventivo"`
	KilometrajeActual           int `json:"kilometraje_actual"`

	KmRestanteMantenimiento int    `json:"km_restante_mantenimiento"`
	EstadoMantenimiento     string `json:"estado_mantenimiento"`
	CicloInvalido           bool   `json:"ciclo_invalido,omitempty"`

	Activo bool `json:"activo"`
}

type VehiculoListResponse struct {
	Data  []VehiculoResponse `json:"data"`
	Total int                `json:"total"`
}
