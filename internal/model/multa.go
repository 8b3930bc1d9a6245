package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MultaConductor is a traffic fine against a driver, referencing the trip by
// its number. EstadoPago is an explicit stored state; the outstanding amount
// and percent paid are derived on read.
type MultaConductor struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConductorID uuid.UUID `gorm:"type:uuid;index;not null"`
	NumeroViaje int       `gorm:"index;not null"`

	Motivo       string          `gorm:"not null"`
	FechaEmision time.Time       `gorm:"not null"`
	MontoEmitido decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MontoPagado  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	// EstadoPago: pagado | pendiente | parcial | vencido
	EstadoPago string `gorm:"type:varchar(20);not null;default:'pendiente'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Conductor *Conductor `gorm:"foreignKey:ConductorID"`
}

func (MultaConductor) TableName() string { return "multas_conductores" }
