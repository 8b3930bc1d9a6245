package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearImpuestoRequest struct {
	VehiculoID string          `json:"vehiculo_id" validate:"required,uuid"`
	Tipo       string          `json:"tipo"        validate:"required"`
	Anio       int             `json:"anio"        validate:"required,min=2000"`
	Monto      decimal.Decimal `json:"monto"       validate:"required"`
}

type ActualizarImpuestoRequest struct {
	Tipo       *string          `json:"tipo"`
	Anio       *int             `json:"anio" validate:"omitempty,min=2000"`
	Monto      *decimal.Decimal `json:"monto"`
	EstadoPago *string          `json:"estado_pago" validate:"omitempty,oneof=pagado pendiente vencido"`
}

type PagarImpuestoRequest struct {
	FechaPago time.Time `json:"fecha_pago" validate:"required"`
}

type ImpuestoResponse struct {
	ID         string          `json:"id"`
	VehiculoID string          `json:"vehiculo_id"`
	Tipo       string          `json:"tipo"`
	Anio       int             `json:"anio"`
	Monto      decimal.Decimal `json:"monto"`
	FechaPago  *time.Time      `json:"fecha_pago"`
	EstadoPago string          `json:"estado_pago"`
}

type ImpuestoListResponse struct {
	Data  []ImpuestoResponse `json:"data"`
	Total int                `json:"total"`
}
