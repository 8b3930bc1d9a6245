package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

type ConductorService interface {
	Crear(ctx context.Context, req dto.CrearConductorRequest) (*dto.ConductorResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ConductorResponse, error)
	Listar(ctx context.Context, filtro query.FiltroConductores) (*dto.ConductorListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarConductorRequest) (*dto.ConductorResponse, error)
	DarDeBaja(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type conductorService struct {
	repo  repository.ConductorRepository
	ahora func() time.Time
}

func NewConductorService(repo repository.ConductorRepository) ConductorService {
	return &conductorService{repo: repo, ahora: time.Now}
}

func (s *conductorService) Crear(ctx context.Context, req dto.CrearConductorRequest) (*dto.ConductorResponse, error) {
	c := &model.Conductor{
		Nombre:              req.Nombre,
		Apellido:            req.Apellido,
		Documento:           req.Documento,
		Telefono:            req.Telefono,
		Email:               req.Email,
		NumeroLicencia:      req.NumeroLicencia,
		CategoriaLicencia:   req.CategoriaLicencia,
		VencimientoLicencia: req.VencimientoLicencia,
		Calificacion:        req.Calificacion,
		Activo:              true,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.toResponse(c), nil
}

func (s *conductorService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ConductorResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(c), nil
}

func (s *conductorService) Listar(ctx context.Context, filtro query.FiltroConductores) (*dto.ConductorListResponse, error) {
	if err := filtro.Validar(); err != nil {
		return nil, err
	}

	plan := filtro.Plan()
	var (
		conductores []model.Conductor
		err         error
	)
	if plan.EsBusqueda() {
		conductores, err = s.repo.Search(ctx, plan.Termino, plan.CamposBusqueda)
	} else {
		conductores, err = s.repo.List(ctx, plan.Igualdades)
	}
	if err != nil {
		return nil, err
	}

	conductores = query.Aplicar(conductores, filtro.Predicados())

	out := make([]dto.ConductorResponse, 0, len(conductores))
	for i := range conductores {
		out = append(out, *s.toResponse(&conductores[i]))
	}
	return &dto.ConductorListResponse{Data: out, Total: len(out)}, nil
}

func (s *conductorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarConductorRequest) (*dto.ConductorResponse, error) {
	campos := map[string]any{}
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.Apellido != nil {
		campos["apellido"] = *req.Apellido
	}
	if req.Telefono != nil {
		campos["telefono"] = *req.Telefono
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}
	if req.NumeroLicencia != nil {
		campos["numero_licencia"] = *req.NumeroLicencia
	}
	if req.CategoriaLicencia != nil {
		campos["categoria_licencia"] = *req.CategoriaLicencia
	}
	if req.VencimientoLicencia != nil {
		campos["vencimiento_licencia"] = *req.VencimientoLicencia
	}
	if req.Calificacion != nil {
		campos["calificacion"] = *req.Calificacion
	}
	if req.Activo != nil {
		campos["activo"] = *req.Activo
	}
	if len(campos) == 0 {
		return s.ObtenerPorID(ctx, id)
	}

	c, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return s.toResponse(c), nil
}

func (s *conductorService) DarDeBaja(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *conductorService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

func (s *conductorService) toResponse(c *model.Conductor) *dto.ConductorResponse {
	vig := derived.ResolverVigencia(c.VencimientoLicencia, s.ahora(), false)
	return &dto.ConductorResponse{
		ID:                  c.ID.String(),
		Nombre:              c.Nombre,
		Apellido:            c.Apellido,
		Documento:           c.Documento,
		Telefono:            c.Telefono,
		Email:               c.Email,
		NumeroLicencia:      c.NumeroLicencia,
		CategoriaLicencia:   c.CategoriaLicencia,
		VencimientoLicencia: c.VencimientoLicencia,
		Calificacion:        c.Calificacion,
		Activo:              c.Activo,

		DiasRestantesLicencia: vig.DiasRestantes,
		EstadoLicencia:        vig.Estado,
		NivelAlerta:           vig.Nivel,
	}
}
