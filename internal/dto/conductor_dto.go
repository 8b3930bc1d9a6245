package dto

import "time"

type CrearConductorRequest struct {
	Nombre              string    `json:"nombre"               validate:"required"`
	Apellido            string    `json:"apellido"             validate:"required"`
	Documento           string    `json:"documento"            validate:"required"`
	Telefono            string    `json:"telefono"`
	Email               string    `json:"email"                validate:"omitempty,email"`
	NumeroLicencia      string    `json:"numero_licencia"      validate:"required"`
	CategoriaLicencia   string    `json:"categoria_licencia"`
	VencimientoLicencia time.Time `json:"vencimiento_licencia" validate:"required"`
	Calificacion        int       `json:"calificacion"         validate:"min=0,max=5"`
}

type ActualizarConductorRequest struct {
	Nombre              *string    `json:"nombre"`
	Apellido            *string    `json:"apellido"`
	Telefono            *string    `json:"telefono"`
	Email               *string    `json:"email" validate:"omitempty,email"`
	NumeroLicencia      *string    `json:"numero_licencia"`
	CategoriaLicencia   *string    `json:"categoria_licencia"`
	VencimientoLicencia *time.Time `json:"vencimiento_licencia"`
	Calificacion        *int       `json:"calificacion" validate:"omitempty,min=0,max=5"`
	Activo              *bool      `json:"activo"`
}

type ConductorResponse struct {
	ID                  string    `json:"id"`
	Nombre              string    `json:"nombre"`
	Apellido            string    `json:"apellido"`
	Documento           string    `json:"documento"`
	Telefono            string    `json:"telefono"`
	Email               string    `json:"email"`
	NumeroLicencia      string    `json:"numero_licencia"`
	CategoriaLicencia   string    `json:"categoria_licencia"`
	VencimientoLicencia time.Time `json:"vencimiento_licencia"`
	Calificacion        int       `json:"calificacion"`
	Activo              bool      `json:"activo"`

	// Derivados de la fecha de vencimiento, nunca almacenados.
	DiasRestantesLicencia int    `json:"dias_restantes_licencia"`
	EstadoLicencia        string `json:"estado_licencia"`
	NivelAlerta           string `json:"nivel_alerta"`
}

type ConductorListResponse struct {
	Data  []ConductorResponse `json:"data"`
	Total int                 `json:"total"`
}
