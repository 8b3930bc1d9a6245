package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearMantenimientoRequest struct {
	VehiculoID string `json:"vehiculo_id" validate:"required,uuid"`
	TallerID   string `json:"taller_id"   validate:"required,uuid"`

	Tipo        string `json:"tipo" validate:"required,oneof=Preventivo Correctivo"`
	Descripcion string `json:"descripcion"`

	FechaEntrada        time.Time       `json:"fecha_entrada" validate:"required"`
	Costo               decimal.Decimal `json:"costo"         validate:"required"`
	KilometrajeServicio int             `json:"kilometraje_servicio" validate:"min=0"`
}

type ActualizarMantenimientoRequest struct {
	Descripcion         *string          `json:"descripcion"`
	Costo               *decimal.Decimal `json:"costo"`
	KilometrajeServicio *int             `json:"kilometraje_servicio" validate:"omitempty,min=0"`
}

// FinalizarMantenimientoRequest closes the shop visit. For a Preventivo the
// service also advances the vehicle's last-preventive odometer.
type FinalizarMantenimientoRequest struct {
	FechaSalida time.Time `json:"fecha_salida" validate:"required"`
}

type PagarMantenimientoRequest struct {
	FechaPago time.Time `json:"fecha_pago" validate:"required"`
}

type MantenimientoResponse struct {
	ID         string `json:"id"`
	VehiculoID string `json:"vehiculo_id"`
	TallerID   string `json:"taller_id"`

	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`

	FechaEntrada time.Time  `json:"fecha_entrada"`
	FechaSalida  *time.Time `json:"fecha_salida"`
	FechaPago    *time.Time `json:"fecha_pago"`

	Costo               decimal.Decimal `json:"costo"`
	KilometrajeServicio int             `json:"kilometraje_servicio"`

	// Derivado de las fechas de salida y pago.
	Estado string `json:"estado"`
}

type MantenimientoListResponse struct {
	Data  []MantenimientoResponse `json:"data"`
	Total int                     `json:"total"`
}
