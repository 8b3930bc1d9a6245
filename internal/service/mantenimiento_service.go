package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

type MantenimientoService interface {
	Crear(ctx context.Context, req dto.CrearMantenimientoRequest) (*dto.MantenimientoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MantenimientoResponse, error)
	Listar(ctx context.Context, filtro query.FiltroMantenimientos) (*dto.MantenimientoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMantenimientoRequest) (*dto.MantenimientoResponse, error)
	Finalizar(ctx context.Context, id uuid.UUID, req dto.FinalizarMantenimientoRequest) (*dto.MantenimientoResponse, error)
	RegistrarPago(ctx context.Context, id uuid.UUID, req dto.PagarMantenimientoRequest) (*dto.MantenimientoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type mantenimientoService struct {
	repo         repository.MantenimientoRepository
	vehiculoRepo repository.VehiculoRepository
	tallerRepo   repository.TallerRepository
}

func NewMantenimientoService(
	repo repository.MantenimientoRepository,
	vehiculoRepo repository.VehiculoRepository,
	tallerRepo repository.TallerRepository,
) MantenimientoService {
	return &mantenimientoService{repo: repo, vehiculoRepo: vehiculoRepo, tallerRepo: tallerRepo}
}

func (s *mantenimientoService) Crear(ctx context.Context, req dto.CrearMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.Validation("vehiculo_id inválido")
	}
	tallerID, err := uuid.Parse(req.TallerID)
	if err != nil {
		return nil, apierror.Validation("taller_id inválido")
	}
	if req.Costo.IsNegative() {
		return nil, apierror.Validation("costo no puede ser negativo")
	}
	if _, err := s.vehiculoRepo.FindByID(ctx, vehiculoID); err != nil {
		return nil, err
	}
	if _, err := s.tallerRepo.FindByID(ctx, tallerID); err != nil {
		return nil, err
	}

	m := &model.RegistroMantenimiento{
		VehiculoID:          vehiculoID,
		TallerID:            tallerID,
		Tipo:                req.Tipo,
		Descripcion:         req.Descripcion,
		FechaEntrada:        req.FechaEntrada,
		Costo:               req.Costo,
		KilometrajeServicio: req.KilometrajeServicio,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return mantenimientoToResponse(m), nil
}

func (s *mantenimientoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.MantenimientoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mantenimientoToResponse(m), nil
}

func (s *mantenimientoService) Listar(ctx context.Context, filtro query.FiltroMantenimientos) (*dto.MantenimientoListResponse, error) {
	if err := filtro.Validar(); err != nil {
		return nil, err
	}

	// El estado derivado se filtra sólo del lado cliente: no es columna de
	// ninguna tabla ni vista, así que el plan nunca lo empuja al servidor.
	plan := filtro.Plan()
	registros, err := s.repo.List(ctx, plan.Igualdades)
	if err != nil {
		return nil, err
	}

	registros = query.Aplicar(registros, filtro.Predicados())

	out := make([]dto.MantenimientoResponse, 0, len(registros))
	for i := range registros {
		out = append(out, *mantenimientoToResponse(&registros[i]))
	}
	return &dto.MantenimientoListResponse{Data: out, Total: len(out)}, nil
}

func (s *mantenimientoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	campos := map[string]any{}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}
	if req.Costo != nil {
		if req.Costo.IsNegative() {
			return nil, apierror.Validation("costo no puede ser negativo")
		}
		campos["costo"] = *req.Costo
	}
	if req.KilometrajeServicio != nil {
		campos["kilometraje_servicio"] = *req.KilometrajeServicio
	}
	if len(campos) == 0 {
		return s.ObtenerPorID(ctx, id)
	}

	m, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return mantenimientoToResponse(m), nil
}

// Finalizar closes the shop visit. Closing a Preventivo advances the
// vehicle's last-preventive odometer to the service reading, which resets
// the maintenance countdown on the vehicle view.
func (s *mantenimientoService) Finalizar(ctx context.Context, id uuid.UUID, req dto.FinalizarMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.FechaSalida != nil {
		return nil, apierror.Conflict("el registro ya fue finalizado")
	}
	if req.FechaSalida.Before(m.FechaEntrada) {
		return nil, apierror.Validation("fecha_salida es anterior a fecha_entrada")
	}

	actualizado, err := s.repo.Update(ctx, id, map[string]any{"fecha_salida": req.FechaSalida})
	if err != nil {
		return nil, err
	}

	if m.Tipo == "Preventivo" {
		if err := s.vehiculoRepo.MarcarPreventivo(ctx, m.VehiculoID, m.KilometrajeServicio); err != nil {
			log.Warn().Err(err).
				Str("vehiculo_id", m.VehiculoID.String()).
				Msg("no se pudo actualizar el último preventivo del vehículo")
		}
	}

	return mantenimientoToResponse(actualizado), nil
}

// RegistrarPago only applies to a closed visit: the derived state machine
// has no path from En Proceso straight to Completado.
func (s *mantenimientoService) RegistrarPago(ctx context.Context, id uuid.UUID, req dto.PagarMantenimientoRequest) (*dto.MantenimientoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.FechaSalida == nil {
		return nil, apierror.Conflict("no se puede pagar un registro en proceso")
	}
	if m.FechaPago != nil {
		return nil, apierror.Conflict("el registro ya fue pagado")
	}

	actualizado, err := s.repo.Update(ctx, id, map[string]any{"fecha_pago": req.FechaPago})
	if err != nil {
		return nil, err
	}
	return mantenimientoToResponse(actualizado), nil
}

func (s *mantenimientoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func mantenimientoToResponse(m *model.RegistroMantenimiento) *dto.MantenimientoResponse {
	return &dto.MantenimientoResponse{
		ID:         m.ID.String(),
		VehiculoID: m.VehiculoID.String(),
		TallerID:   m.TallerID.String(),

		Tipo:        m.Tipo,
		Descripcion: m.Descripcion,

		FechaEntrada: m.FechaEntrada,
		FechaSalida:  m.FechaSalida,
		FechaPago:    m.FechaPago,

		Costo:               m.Costo,
		KilometrajeServicio: m.KilometrajeServicio,

		Estado: derived.ResolverEstadoRegistro(m.FechaEntrada, m.FechaSalida, m.FechaPago),
	}
}
