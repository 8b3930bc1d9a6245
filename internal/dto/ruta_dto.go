package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearRutaRequest deliberately has NO fields for the derived economics:
// distancia, ingreso, ganancia y rendimiento se recalculan siempre en el
// servidor y cualquier valor enviado por el cliente se ignora.
type CrearRutaRequest struct {
	VehiculoID  string `json:"vehiculo_id"  validate:"required,uuid"`
	ConductorID string `json:"conductor_id" validate:"required,uuid"`

	Origen       string    `json:"origen"        validate:"required"`
	Destino      string    `json:"destino"       validate:"required"`
	FechaSalida  time.Time `json:"fecha_salida"  validate:"required"`
	FechaLlegada time.Time `json:"fecha_llegada" validate:"required"`

	KilometrajeInicio int `json:"kilometraje_inicio" validate:"min=0"`
	KilometrajeFin    int `json:"kilometraje_fin"    validate:"min=0"`

	PesoCargaKg decimal.Decimal `json:"peso_carga_kg" validate:"required"`
	TarifaPorKg decimal.Decimal `json:"tarifa_por_kg" validate:"required"`

	EstacionServicio string          `json:"estacion_servicio"`
	TipoCombustible  string          `json:"tipo_combustible"`
	PrecioGalon      decimal.Decimal `json:"precio_galon"`
	GalonesCargados  decimal.Decimal `json:"galones_cargados"`
	CostoCombustible decimal.Decimal `json:"costo_combustible"`

	Peajes  decimal.Decimal `json:"peajes"`
	Comidas decimal.Decimal `json:"comidas"`
	Otros   decimal.Decimal `json:"otros"`
}

type ActualizarRutaRequest struct {
	Origen       *string    `json:"origen"`
	Destino      *string    `json:"destino"`
	FechaSalida  *time.Time `json:"fecha_salida"`
	FechaLlegada *time.Time `json:"fecha_llegada"`

	KilometrajeInicio *int `json:"kilometraje_inicio" validate:"omitempty,min=0"`
	KilometrajeFin    *int `json:"kilometraje_fin"    validate:"omitempty,min=0"`

	PesoCargaKg *decimal.Decimal `json:"peso_carga_kg"`
	TarifaPorKg *decimal.Decimal `json:"tarifa_por_kg"`

	EstacionServicio *string          `json:"estacion_servicio"`
	TipoCombustible  *string          `json:"tipo_combustible"`
	PrecioGalon      *decimal.Decimal `json:"precio_galon"`
	GalonesCargados  *decimal.Decimal `json:"galones_cargados"`
	CostoCombustible *decimal.Decimal `json:"costo_combustible"`

	Peajes  *decimal.Decimal `json:"peajes"`
	Comidas *decimal.Decimal `json:"comidas"`
	Otros   *decimal.Decimal `json:"otros"`
}

type RutaResponse struct {
	ID          string `json:"id"`
	NumeroViaje int    `json:"numero_viaje"`
	VehiculoID  string `json:"vehiculo_id"`
	ConductorID string `json:"conductor_id"`

	Origen       string    `json:"origen"`
	Destino      string    `json:"destino"`
	FechaSalida  time.Time `json:"fecha_salida"`
	FechaLlegada time.Time `json:"fecha_llegada"`

	KilometrajeInicio int `json:"kilometraje_inicio"`
	KilometrajeFin    int `json:"kilometraje_fin"`

	PesoCargaKg decimal.Decimal `json:"peso_carga_kg"`
	TarifaPorKg decimal.Decimal `json:"tarifa_por_kg"`

	EstacionServicio string          `json:"estacion_servicio"`
	TipoCombustible  string          `json:"tipo_combustible"`
	PrecioGalon      decimal.Decimal `json:"precio_galon"`
	GalonesCargados  decimal.Decimal `json:"galones_cargados"`
	CostoCombustible decimal.Decimal `json:"costo_combustible"`

	Peajes  decimal.Decimal `json:"peajes"`
	Comidas decimal.Decimal `json:"comidas"`
	Otros   decimal.Decimal `json:"otros"`

	// Derivados — siempre salida del resolver o de la vista, nunca eco del request.
	DistanciaKm            int             `json:"distancia_km"`
	Ingreso                decimal.Decimal `json:"ingreso"`
	GastoTotal             decimal.Decimal `json:"gasto_total"`
	GananciaNeta           decimal.Decimal `json:"ganancia_neta"`
	RendimientoCombustible decimal.Decimal `json:"rendimiento_combustible"`
	IngresoPorKm           decimal.Decimal `json:"ingreso_por_km"`

	PlacaVehiculo  string `json:"placa_vehiculo"`
	EstadoVehiculo string `json:"estado_vehiculo"`
}

type RutaListResponse struct {
	Data  []RutaResponse `json:"data"`
	Total int            `json:"total"`
}

// ReporteRutasRequest enqueues the profitability report job.
type ReporteRutasRequest struct {
	Desde *time.Time `json:"desde"`
	Hasta *time.Time `json:"hasta"`
	Email string     `json:"email" validate:"omitempty,email"`
}
