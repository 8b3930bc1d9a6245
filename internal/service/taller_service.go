package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

type TallerService interface {
	Crear(ctx context.Context, req dto.CrearTallerRequest) (*dto.TallerResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TallerResponse, error)
	Listar(ctx context.Context, termino string) (*dto.TallerListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTallerRequest) (*dto.TallerResponse, error)
	DarDeBaja(ctx context.Context, id uuid.UUID) error
}

type tallerService struct {
	repo repository.TallerRepository
}

func NewTallerService(repo repository.TallerRepository) TallerService {
	return &tallerService{repo: repo}
}

func (s *tallerService) Crear(ctx context.Context, req dto.CrearTallerRequest) (*dto.TallerResponse, error) {
	t := &model.Taller{
		Nombre:       req.Nombre,
		Direccion:    req.Direccion,
		Telefono:     req.Telefono,
		Email:        req.Email,
		Horario:      req.Horario,
		Calificacion: req.Calificacion,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return tallerToResponse(t), nil
}

func (s *tallerService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.TallerResponse, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tallerToResponse(t), nil
}

func (s *tallerService) Listar(ctx context.Context, termino string) (*dto.TallerListResponse, error) {
	var (
		talleres []model.Taller
		err      error
	)
	if termino != "" {
		talleres, err = s.repo.Search(ctx, termino, []string{"nombre", "direccion"})
	} else {
		talleres, err = s.repo.List(ctx, map[string]any{"activo": true})
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.TallerResponse, 0, len(talleres))
	for i := range talleres {
		out = append(out, *tallerToResponse(&talleres[i]))
	}
	return &dto.TallerListResponse{Data: out, Total: len(out)}, nil
}

func (s *tallerService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTallerRequest) (*dto.TallerResponse, error) {
	campos := map[string]any{}
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.Direccion != nil {
		campos["direccion"] = *req.Direccion
	}
	if req.Telefono != nil {
		campos["telefono"] = *req.Telefono
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}
	if req.Horario != nil {
		campos["horario"] = *req.Horario
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

	t, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return tallerToResponse(t), nil
}

func (s *tallerService) DarDeBaja(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func tallerToResponse(t *model.Taller) *dto.TallerResponse {
	return &dto.TallerResponse{
		ID:           t.ID.String(),
		Nombre:       t.Nombre,
		Direccion:    t.Direccion,
		Telefono:     t.Telefono,
		Email:        t.Email,
		Horario:      t.Horario,
		Calificacion: t.Calificacion,
		Activo:       t.Activo,
	}
}
