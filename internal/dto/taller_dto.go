package dto

type CrearTallerRequest struct {
	Nombre       string `json:"nombre" validate:"required"`
	Direccion    string `json:"direccion"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email" validate:"omitempty,email"`
	Horario      string `json:"horario"`
	Calificacion int    `json:"calificacion" validate:"min=0,max=5"`
}

type ActualizarTallerRequest struct {
	Nombre       *string `json:"nombre"`
	Direccion    *string `json:"direccion"`
	Telefono     *string `json:"telefono"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Horario      *string `json:"horario"`
	Calificacion *int    `json:"calificacion" validate:"omitempty,min=0,max=5"`
	Activo       *bool   `json:"activo"`
}

type TallerResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Direccion    string `json:"direccion"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email"`
	Horario      string `json:"horario"`
	Calificacion int    `json:"calificacion"`
	Activo       bool   `json:"activo"`
}

type TallerListResponse struct {
	Data  []TallerResponse `json:"data"`
	Total int              `json:"total"`
}
