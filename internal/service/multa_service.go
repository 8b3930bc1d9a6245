package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

type MultaService interface {
	Crear(ctx context.Context, req dto.CrearMultaRequest) (*dto.MultaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MultaResponse, error)
	Listar(ctx context.Context, filtro query.FiltroMultas) (*dto.MultaListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMultaRequest) (*dto.MultaResponse, error)
	RegistrarPago(ctx context.Context, id uuid.UUID, req dto.PagarMultaRequest) (*dto.MultaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type multaService struct {
	repo          repository.MultaRepository
	conductorRepo repository.ConductorRepository
}

func NewMultaService(repo repository.MultaRepository, conductorRepo repository.ConductorRepository) MultaService {
	return &multaService{repo: repo, conductorRepo: conductorRepo}
}

func (s *multaService) Crear(ctx context.Context, req dto.CrearMultaRequest) (*dto.MultaResponse, error) {
	conductorID, err := uuid.Parse(req.ConductorID)
	if err != nil {
		return nil, apierror.Validation("conductor_id inválido")
	}
	if req.MontoEmitido.IsNegative() {
		return nil, apierror.Validation("monto_emitido no puede ser negativo")
	}
	if _, err := s.conductorRepo.FindByID(ctx, conductorID); err != nil {
		return nil, err
	}

	m := &model.MultaConductor{
		ConductorID:  conductorID,
		NumeroViaje:  req.NumeroViaje,
		Motivo:       req.Motivo,
		FechaEmision: req.FechaEmision,
		MontoEmitido: req.MontoEmitido,
		MontoPagado:  decimal.Zero,
		EstadoPago:   "pendiente",
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return multaToResponse(m)
}

func (s *multaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MultaResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return multaToResponse(m)
}

func (s *multaService) Listar(ctx context.Context, filtro query.FiltroMultas) (*dto.MultaListResponse, error) {
	if err := filtro.Validar(); err != nil {
		return nil, err
	}

	plan := filtro.Plan()
	var (
		multas []model.MultaConductor
		err    error
	)
	if plan.EsBusqueda() {
		multas, err = s.repo.Search(ctx, plan.Termino, plan.CamposBusqueda)
	} else {
		multas, err = s.repo.List(ctx, plan.Igualdades)
	}
	if err != nil {
		return nil, err
	}

	multas = query.Aplicar(multas, filtro.Predicados())

	out := make([]dto.MultaResponse, 0, len(multas))
	for i := range multas {
		resp, err := multaToResponse(&multas[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return &dto.MultaListResponse{Data: out, Total: len(out)}, nil
}

func (s *multaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMultaRequest) (*dto.MultaResponse, error) {
	campos := map[string]any{}
	if req.Motivo != nil {
		campos["motivo"] = *req.Motivo
	}
	if req.FechaEmision != nil {
		campos["fecha_emision"] = *req.FechaEmision
	}
	if req.MontoEmitido != nil {
		if req.MontoEmitido.IsNegative() {
			return nil, apierror.Validation("monto_emitido no puede ser negativo")
		}
		campos["monto_emitido"] = *req.MontoEmitido
	}
	if req.EstadoPago != nil {
		campos["estado_pago"] = *req.EstadoPago
	}
	if len(campos) == 0 {
		return s.ObtenerPorID(ctx, id)
	}

	m, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return multaToResponse(m)
}

// RegistrarPago accumulates a payment and moves the stored state: full
// coverage → pagado, anything in between → parcial. Overpaying is rejected.
func (s *multaService) RegistrarPago(ctx context.Context, id uuid.UUID, req dto.PagarMultaRequest) (*dto.MultaResponse, error) {
	if !req.Monto.IsPositive() {
		return nil, apierror.Validation("el monto del pago debe ser positivo")
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.EstadoPago == "pagado" {
		return nil, apierror.Conflict("la multa ya está pagada")
	}

	nuevoPagado := m.MontoPagado.Add(req.Monto)
	if nuevoPagado.GreaterThan(m.MontoEmitido) {
		return nil, apierror.Validation("el pago excede el saldo pendiente")
	}

	estado := "parcial"
	if nuevoPagado.Equal(m.MontoEmitido) {
		estado = "pagado"
	}

	actualizado, err := s.repo.Update(ctx, id, map[string]any{
		"monto_pagado": nuevoPagado,
		"estado_pago":  estado,
	})
	if err != nil {
		return nil, err
	}
	return multaToResponse(actualizado)
}

func (s *multaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func multaToResponse(m *model.MultaConductor) (*dto.MultaResponse, error) {
	saldo, err := derived.ResolverSaldoMulta(m.MontoEmitido, m.MontoPagado)
	if err != nil {
		return nil, err
	}
	return &dto.MultaResponse{
		ID:           m.ID.String(),
		ConductorID:  m.ConductorID.String(),
		NumeroViaje:  m.NumeroViaje,
		Motivo:       m.Motivo,
		FechaEmision: m.FechaEmision,
		MontoEmitido: m.MontoEmitido,
		MontoPagado:  m.MontoPagado,
		EstadoPago:   m.EstadoPago,

		SaldoPendiente:   saldo.MontoPendiente,
		PorcentajePagado: saldo.PorcentajePagado,
	}, nil
}
