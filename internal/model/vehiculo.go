package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vehiculo is the writable base-table entity. Maintenance-status columns are
// NOT here on purpose: they live only in VehiculoVista (the calculated view)
// and are never written back to storage.
type Vehiculo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string    `gorm:"not null"` // camión | tracto | camioneta | furgón
	Marca       string    `gorm:"index;not null"`
	Modelo      string    `gorm:"not null"`
	Placa       string    `gorm:"uniqueIndex;not null"`
	NumeroSerie string    `gorm:"uniqueIndex"`
	// Color is stored as free text from the form; it is sanitized on write
	// (hex code or known name) — never rendered verbatim.
	Color       string
	Anio        int
	CargaMaxima decimal.Decimal `gorm:"type:decimal(10,2)"` // kg

	// Plan de mantenimiento preventivo
	CicloMantenimientoKm int `gorm:"not null;default:5000"`
	KilometrajeInicial   int `gorm:"not null;default:0"`
	// KilometrajeUltimoPreventivo advances when a Preventivo maintenance
	// record closes; KilometrajeActual advances when a route closes.
	KilometrajeUltimoPreventivo int `gorm:"not null;default:0"`
	KilometrajeActual           int `gorm:"not null;default:0"`

	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Vehiculo) TableName() string { return "vehiculos" }

// VehiculoVista is the read-only calculated view over vehiculos: the raw
// columns plus the maintenance-status columns the DB derives with the same
// formula as derived.ResolverMantenimiento. Reads come from here; writes go
// to the base table.
type VehiculoVista struct {
	ID          uuid.UUID       `json:"id"`
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

	// Derived in the view; recomputed client-side for cross-checking.
	KmRestanteMantenimiento int    `json:"km_restante_mantenimiento"`
	EstadoMantenimiento     string `json:"estado_mantenimiento"`

	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VehiculoVista) TableName() string { return "vista_vehiculos" }
