package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RutaViaje is a trip: one vehicle, one driver, odometer window, cargo and
// fuel detail, incidental expenses. Economic fields (distancia, ingreso,
// ganancia, rendimiento) are derived and live only in RutaVista — the base
// table never stores them and client-supplied values are ignored.
type RutaViaje struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroViaje int       `gorm:"uniqueIndex;not null"`
	VehiculoID  uuid.UUID `gorm:"type:uuid;index;not null"`
	ConductorID uuid.UUID `gorm:"type:uuid;index;not null"`

	Origen       string `gorm:"not null"`
	Destino      string `gorm:"not null"`
	FechaSalida  time.Time
	FechaLlegada time.Time

	KilometrajeInicio int `gorm:"not null"`
	KilometrajeFin    int `gorm:"not null"`

	PesoCargaKg decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TarifaPorKg decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Detalle de compra de combustible
	EstacionServicio string
	TipoCombustible  string
	PrecioGalon      decimal.Decimal `gorm:"type:decimal(10,2)"`
	GalonesCargados  decimal.Decimal `gorm:"type:decimal(10,2)"`
	CostoCombustible decimal.Decimal `gorm:"type:decimal(12,2)"`

	// Gastos incidentales
	Peajes  decimal.Decimal `gorm:"type:decimal(12,2)"`
	Comidas decimal.Decimal `gorm:"type:decimal(12,2)"`
	Otros   decimal.Decimal `gorm:"type:decimal(12,2)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Vehiculo  *Vehiculo  `gorm:"foreignKey:VehiculoID"`
	Conductor *Conductor `gorm:"foreignKey:ConductorID"`
}

func (RutaViaje) TableName() string { return "rutas_viajes" }

// RutaVista is the calculated view over rutas_viaje: raw columns plus the
// economics the DB derives, plus the vehicle's current maintenance state as
// a read-only join (estado_vehiculo is owned by the vehicle, not the route).
type RutaVista struct {
	ID          uuid.UUID `json:"id"`
	NumeroViaje int       `json:"numero_viaje"`
	VehiculoID  uuid.UUID `json:"vehiculo_id"`
	ConductorID uuid.UUID `json:"conductor_id"`

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

	// Derived in the view
	DistanciaKm            int             `json:"distancia_km"`
	Ingreso                decimal.Decimal `json:"ingreso"`
	GastoTotal             decimal.Decimal `json:"gasto_total"`
	GananciaNeta           decimal.Decimal `json:"ganancia_neta"`
	RendimientoCombustible decimal.Decimal `json:"rendimiento_combustible"` // km/galón
	IngresoPorKm           decimal.Decimal `json:"ingreso_por_km"`

	// Read-only join from vista_vehiculos
	PlacaVehiculo  string `json:"placa_vehiculo"`
	EstadoVehiculo string `json:"estado_vehiculo"`

	CreatedAt time.Time `json:"created_at"`
}

func (RutaVista) TableName() string { return "vista_rutas" }
