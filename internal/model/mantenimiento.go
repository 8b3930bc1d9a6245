package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegistroMantenimiento is one shop visit for a vehicle. Estado is derived
// from the exit/payment dates (En Proceso / Pendiente Pago / Completado) and
// never stored; the original schema computed it in a trigger.
type RegistroMantenimiento struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID uuid.UUID `gorm:"type:uuid;index;not null"`
	TallerID   uuid.UUID `gorm:"type:uuid;index;not null"`

	// Tipo: Preventivo | Correctivo
	Tipo        string `gorm:"type:varchar(20);not null"`
	Descripcion string

	FechaEntrada time.Time `gorm:"not null"`
	FechaSalida  *time.Time
	FechaPago    *time.Time

	Costo decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Odómetro del vehículo al entrar al taller; al cerrar un Preventivo
	// pasa a ser el nuevo kilometraje_ultimo_preventivo del vehículo.
	KilometrajeServicio int `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Vehiculo *Vehiculo `gorm:"foreignKey:VehiculoID"`
	Taller   *Taller   `gorm:"foreignKey:TallerID"`
}

func (RegistroMantenimiento) TableName() string { return "registros_mantenimiento" }
