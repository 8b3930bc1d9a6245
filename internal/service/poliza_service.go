package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

type PolizaService interface {
	Crear(ctx context.Context, req dto.CrearPolizaRequest) (*dto.PolizaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PolizaResponse, error)
	Listar(ctx context.Context, filtro query.FiltroPolizas) (*dto.PolizaListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPolizaRequest) (*dto.PolizaResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) (*dto.PolizaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type polizaService struct {
	repo         repository.PolizaRepository
	vehiculoRepo repository.VehiculoRepository
	ahora        func() time.Time
}

func NewPolizaService(repo repository.PolizaRepository, vehiculoRepo repository.VehiculoRepository) PolizaService {
	return &polizaService{repo: repo, vehiculoRepo: vehiculoRepo, ahora: time.Now}
}

func (s *polizaService) Crear(ctx context.Context, req dto.CrearPolizaRequest) (*dto.PolizaResponse, error) {
	if !req.FechaVencimiento.After(req.FechaInicio) {
		return nil, apierror.Validation("fecha_vencimiento debe ser posterior a fecha_inicio")
	}
	if req.MontoPagado.IsNegative() {
		return nil, apierror.Validation("monto_pagado no puede ser negativo")
	}

	// La póliza referencia al vehículo por placa; validamos que exista.
	if _, err := s.vehiculoRepo.FindByPlaca(ctx, req.PlacaVehiculo); err != nil {
		return nil, err
	}

	p := &model.PolizaSeguro{
		NumeroPoliza:     req.NumeroPoliza,
		PlacaVehiculo:    req.PlacaVehiculo,
		Aseguradora:      req.Aseguradora,
		FechaInicio:      req.FechaInicio,
		FechaVencimiento: req.FechaVencimiento,
		FechaPago:        req.FechaPago,
		MontoPagado:      req.MontoPagado,
	}

	vista, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.toResponse(vista), nil
}

func (s *polizaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.PolizaResponse, error) {
	vista, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(vista), nil
}

func (s *polizaService) Listar(ctx context.Context, filtro query.FiltroPolizas) (*dto.PolizaListResponse, error) {
	if err := filtro.Validar(); err != nil {
		return nil, err
	}

	plan := filtro.Plan()
	var (
		vistas []model.PolizaVista
		err    error
	)
	if plan.EsBusqueda() {
		vistas, err = s.repo.Search(ctx, plan.Termino, plan.CamposBusqueda)
	} else {
		vistas, err = s.repo.List(ctx, plan.Igualdades)
	}
	if err != nil {
		return nil, err
	}

	vistas = query.Aplicar(vistas, filtro.Predicados())

	out := make([]dto.PolizaResponse, 0, len(vistas))
	for i := range vistas {
		out = append(out, *s.toResponse(&vistas[i]))
	}
	return &dto.PolizaListResponse{Data: out, Total: len(out)}, nil
}

func (s *polizaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPolizaRequest) (*dto.PolizaResponse, error) {
	actual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual.Cancelada {
		return nil, apierror.Conflict("la póliza " + actual.NumeroPoliza + " está cancelada")
	}

	campos := map[string]any{}
	if req.Aseguradora != nil {
		campos["aseguradora"] = *req.Aseguradora
	}
	if req.FechaInicio != nil {
		campos["fecha_inicio"] = *req.FechaInicio
	}
	if req.FechaVencimiento != nil {
		campos["fecha_vencimiento"] = *req.FechaVencimiento
	}
	if req.FechaPago != nil {
		campos["fecha_pago"] = *req.FechaPago
	}
	if req.MontoPagado != nil {
		if req.MontoPagado.IsNegative() {
			return nil, apierror.Validation("monto_pagado no puede ser negativo")
		}
		campos["monto_pagado"] = *req.MontoPagado
	}
	if len(campos) == 0 {
		return s.toResponse(actual), nil
	}

	vista, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return s.toResponse(vista), nil
}

// Cancelar is the only transition into the cancelled state; it is terminal
// and wins over any date-derived vigencia from then on.
func (s *polizaService) Cancelar(ctx context.Context, id uuid.UUID) (*dto.PolizaResponse, error) {
	actual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual.Cancelada {
		return nil, apierror.Conflict("la póliza " + actual.NumeroPoliza + " ya está cancelada")
	}

	vista, err := s.repo.Update(ctx, id, map[string]any{"cancelada": true})
	if err != nil {
		return nil, err
	}
	return s.toResponse(vista), nil
}

func (s *polizaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *polizaService) toResponse(p *model.PolizaVista) *dto.PolizaResponse {
	vig := derived.ResolverVigencia(p.FechaVencimiento, s.ahora(), p.Cancelada)
	return &dto.PolizaResponse{
		ID:            p.ID.String(),
		NumeroPoliza:  p.NumeroPoliza,
		PlacaVehiculo: p.PlacaVehiculo,
		Aseguradora:   p.Aseguradora,

		FechaInicio:      p.FechaInicio,
		FechaVencimiento: p.FechaVencimiento,
		FechaPago:        p.FechaPago,
		MontoPagado:      p.MontoPagado,
		Cancelada:        p.Cancelada,

		DiasRestantes: vig.DiasRestantes,
		Estado:        vig.Estado,
		NivelAlerta:   vig.Nivel,
	}
}
