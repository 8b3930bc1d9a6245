package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

type ImpuestoService interface {
	Crear(ctx context.Context, req dto.CrearImpuestoRequest) (*dto.ImpuestoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ImpuestoResponse, error)
	Listar(ctx context.Context, filtro query.FiltroImpuestos) (*dto.ImpuestoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarImpuestoRequest) (*dto.ImpuestoResponse, error)
	RegistrarPago(ctx context.Context, id uuid.UUID, req dto.PagarImpuestoRequest) (*dto.ImpuestoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type impuestoService struct {
	repo         repository.ImpuestoRepository
	vehiculoRepo repository.VehiculoRepository
}

func NewImpuestoService(repo repository.ImpuestoRepository, vehiculoRepo repository.VehiculoRepository) ImpuestoService {
	return &impuestoService{repo: repo, vehiculoRepo: vehiculoRepo}
}

func (s *impuestoService) Crear(ctx context.Context, req dto.CrearImpuestoRequest) (*dto.ImpuestoResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.Validation("vehiculo_id inválido")
	}
	if req.Monto.IsNegative() {
		return nil, apierror.Validation("monto no puede ser negativo")
	}
	if _, err := s.vehiculoRepo.FindByID(ctx, vehiculoID); err != nil {
		return nil, err
	}

	i := &model.ImpuestoVehicular{
		VehiculoID: vehiculoID,
		Tipo:       req.Tipo,
		Anio:       req.Anio,
		Monto:      req.Monto,
		EstadoPago: "pendiente",
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return impuestoToResponse(i), nil
}

func (s *impuestoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.ImpuestoResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return impuestoToResponse(i), nil
}

func (s *impuestoService) Listar(ctx context.Context, filtro query.FiltroImpuestos) (*dto.ImpuestoListResponse, error) {
	if err := filtro.Validar(); err != nil {
		return nil, err
	}

	plan := filtro.Plan()
	impuestos, err := s.repo.List(ctx, plan.Igualdades)
	if err != nil {
		return nil, err
	}

	impuestos = query.Aplicar(impuestos, filtro.Predicados())

	out := make([]dto.ImpuestoResponse, 0, len(impuestos))
	for i := range impuestos {
		out = append(out, *impuestoToResponse(&impuestos[i]))
	}
	return &dto.ImpuestoListResponse{Data: out, Total: len(out)}, nil
}

func (s *impuestoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarImpuestoRequest) (*dto.ImpuestoResponse, error) {
	campos := map[string]any{}
	if req.Tipo != nil {
		campos["tipo"] = *req.Tipo
	}
	if req.Anio != nil {
		campos["anio"] = *req.Anio
	}
	if req.Monto != nil {
		if req.Monto.IsNegative() {
			return nil, apierror.Validation("monto no puede ser negativo")
		}
		campos["monto"] = *req.Monto
	}
	if req.EstadoPago != nil {
		campos["estado_pago"] = *req.EstadoPago
	}
	if len(campos) == 0 {
		return s.ObtenerPorID(ctx, id)
	}

	i, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return impuestoToResponse(i), nil
}

func (s *impuestoService) RegistrarPago(ctx context.Context, id uuid.UUID, req dto.PagarImpuestoRequest) (*dto.ImpuestoResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if i.EstadoPago == "pagado" {
		return nil, apierror.Conflict("el impuesto ya está pagado")
	}

	actualizado, err := s.repo.Update(ctx, id, map[string]any{
		"fecha_pago":  req.FechaPago,
		"estado_pago": "pagado",
	})
	if err != nil {
		return nil, err
	}
	return impuestoToResponse(actualizado), nil
}

func (s *impuestoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func impuestoToResponse(i *model.ImpuestoVehicular) *dto.ImpuestoResponse {
	return &dto.ImpuestoResponse{
		ID:         i.ID.String(),
		VehiculoID: i.VehiculoID.String(),
		Tipo:       i.Tipo,
		Anio:       i.Anio,
		Monto:      i.Monto,
		FechaPago:  i.FechaPago,
		EstadoPago: i.EstadoPago,
	}
}
