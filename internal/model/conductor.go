package model

import (
	"time"

	"github.com/google/uuid"
)

// Conductor is a driver. EstadoLicencia is derived from VencimientoLicencia
// with the same three-bucket rule as insurance policies — it is never stored.
type Conductor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre         string    `gorm:"not null"`
	Apellido       string    `gorm:"not null"`
	Documento      string    `gorm:"uniqueIndex;not null"`
	Telefono       string
	Email          string
	NumeroLicencia string    `gorm:"uniqueIndex;not null"`
	CategoriaLicencia string
	VencimientoLicencia time.Time `gorm:"not null"`
	// Calificacion: 0–5 estrellas
	Calificacion int  `gorm:"not null;default:0"`
	Activo       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Conductor) TableName() string { return "conductores" }
