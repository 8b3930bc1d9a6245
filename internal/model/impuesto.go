package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ImpuestoVehicular is a yearly vehicle tax obligation.
type ImpuestoVehicular struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID uuid.UUID `gorm:"type:uuid;index;not null"`

	Tipo      string          `gorm:"not null"` // rodaje | propiedad | revisión técnica
	Anio      int             `gorm:"not null"`
	Monto     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaPago *time.Time

	// EstadoPago: pagado | pendiente | vencido
	EstadoPago string `gorm:"type:varchar(20);not null;default:'pendiente'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Vehiculo *Vehiculo `gorm:"foreignKey:VehiculoID"`
}

func (ImpuestoVehicular) TableName() string { return "impuestos_vehiculares" }
