package model

import (
	"time"

	"github.com/google/uuid"
)

// Taller is a workshop directory entry referenced by maintenance records.
type Taller struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"index;not null"`
	Direccion string
	Telefono  string
	Email     string
	Horario   string
	// Calificacion: 0–5 estrellas
	Calificacion int  `gorm:"not null;default:0"`
	Activo       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Taller) TableName() string { return "talleres" }
