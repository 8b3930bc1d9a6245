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
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/worker"
)

type RutaService interface {
	Crear(ctx context.Context, req dto.CrearRutaRequest) (*dto.RutaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.RutaResponse, error)
	Listar(ctx context.Context, filtro query.FiltroRutas) (*dto.RutaListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRutaRequest) (*dto.RutaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	SolicitarReporte(ctx context.Context, req dto.ReporteRutasRequest) error
}

type rutaService struct {
	repo          repository.RutaRepository
	vehiculoRepo  repository.VehiculoRepository
	conductorRepo repository.ConductorRepository
	dispatcher    *worker.Dispatcher
}

func NewRutaService(
	repo repository.RutaRepository,
	vehiculoRepo repository.VehiculoRepository,
	conductorRepo repository.ConductorRepository,
	dispatcher *worker.Dispatcher,
) RutaService {
	return &rutaService{
		repo:          repo,
		vehiculoRepo:  vehiculoRepo,
		conductorRepo: conductorRepo,
		dispatcher:    dispatcher,
	}
}

// Crear validates the trip through the economics resolver BEFORE touching
// storage (any derived value the client sent is simply not part of the
// request type), allocates the next trip number and advances the vehicle
// odometer to the trip's closing reading.
func (s *rutaService) Crear(ctx context.Context, req dto.CrearRutaRequest) (*dto.RutaResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, apierror.Validation("vehiculo_id inválido")
	}
	conductorID, err := uuid.Parse(req.ConductorID)
	if err != nil {
		return nil, apierror.Validation("conductor_id inválido")
	}

	if req.FechaLlegada.Before(req.FechaSalida) {
		return nil, apierror.Validation("fecha_llegada es anterior a fecha_salida")
	}

	vehiculo, err := s.vehiculoRepo.FindByID(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}
	if !vehiculo.Activo {
		return nil, apierror.Conflict("el vehículo " + vehiculo.Placa + " está dado de baja")
	}
	conductor, err := s.conductorRepo.FindByID(ctx, conductorID)
	if err != nil {
		return nil, err
	}
	if !conductor.Activo {
		return nil, apierror.Conflict("el conductor " + conductor.NumeroLicencia + " está dado de baja")
	}

	// El resolver rechaza regresión de odómetro y montos negativos.
	if _, err := derived.ResolverEconomiaRuta(economiaDesdeCrear(req)); err != nil {
		return nil, err
	}
	if req.KilometrajeInicio < vehiculo.KilometrajeActual {
		return nil, apierror.Validation("kilometraje_inicio retrocede el odómetro del vehículo")
	}

	numero, err := s.repo.SiguienteNumeroViaje(ctx)
	if err != nil {
		return nil, err
	}

	ruta := &model.RutaViaje{
		NumeroViaje: numero,
		VehiculoID:  vehiculoID,
		ConductorID: conductorID,

		Origen:       req.Origen,
		Destino:      req.Destino,
		FechaSalida:  req.FechaSalida,
		FechaLlegada: req.FechaLlegada,

		KilometrajeInicio: req.KilometrajeInicio,
		KilometrajeFin:    req.KilometrajeFin,

		PesoCargaKg: req.PesoCargaKg,
		TarifaPorKg: req.TarifaPorKg,

		EstacionServicio: req.EstacionServicio,
		TipoCombustible:  req.TipoCombustible,
		PrecioGalon:      req.PrecioGalon,
		GalonesCargados:  req.GalonesCargados,
		CostoCombustible: req.CostoCombustible,

		Peajes:  req.Peajes,
		Comidas: req.Comidas,
		Otros:   req.Otros,
	}

	vista, err := s.repo.Create(ctx, ruta)
	if err != nil {
		return nil, err
	}

	if err := s.vehiculoRepo.AvanzarKilometraje(ctx, vehiculoID, req.KilometrajeFin); err != nil {
		log.Warn().Err(err).
			Str("vehiculo_id", vehiculoID.String()).
			Int("numero_viaje", numero).
			Msg("no se pudo avanzar el odómetro del vehículo")
	}

	return rutaToResponse(vista), nil
}

func (s *rutaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.RutaResponse, error) {
	vista, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rutaToResponse(vista), nil
}

func (s *rutaService) Listar(ctx context.Context, filtro query.FiltroRutas) (*dto.RutaListResponse, error) {
	if err := filtro.Validar(); err != nil {
		return nil, err
	}

	plan := filtro.Plan()
	var (
		vistas []model.RutaVista
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

	out := make([]dto.RutaResponse, 0, len(vistas))
	for i := range vistas {
		out = append(out, *rutaToResponse(&vistas[i]))
	}
	return &dto.RutaListResponse{Data: out, Total: len(out)}, nil
}

// Actualizar merges the patch over the stored row and re-validates the whole
// trip through the resolver, so a partial update can never leave the route
// economically inconsistent.
func (s *rutaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRutaRequest) (*dto.RutaResponse, error) {
	actual, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entrada := economiaDesdeVista(actual)
	campos := map[string]any{}

	if req.Origen != nil {
		campos["origen"] = *req.Origen
	}
	if req.Destino != nil {
		campos["destino"] = *req.Destino
	}
	if req.FechaSalida != nil {
		campos["fecha_salida"] = *req.FechaSalida
	}
	if req.FechaLlegada != nil {
		campos["fecha_llegada"] = *req.FechaLlegada
	}
	if req.KilometrajeInicio != nil {
		campos["kilometraje_inicio"] = *req.KilometrajeInicio
		entrada.KilometrajeInicio = *req.KilometrajeInicio
	}
	if req.KilometrajeFin != nil {
		campos["kilometraje_fin"] = *req.KilometrajeFin
		entrada.KilometrajeFin = *req.KilometrajeFin
	}
	if req.PesoCargaKg != nil {
		campos["peso_carga_kg"] = *req.PesoCargaKg
		entrada.PesoCargaKg = *req.PesoCargaKg
	}
	if req.TarifaPorKg != nil {
		campos["tarifa_por_kg"] = *req.TarifaPorKg
		entrada.TarifaPorKg = *req.TarifaPorKg
	}
	if req.EstacionServicio != nil {
		campos["estacion_servicio"] = *req.EstacionServicio
	}
	if req.TipoCombustible != nil {
		campos["tipo_combustible"] = *req.TipoCombustible
	}
	if req.PrecioGalon != nil {
		campos["precio_galon"] = *req.PrecioGalon
		entrada.PrecioGalon = *req.PrecioGalon
	}
	if req.GalonesCargados != nil {
		campos["galones_cargados"] = *req.GalonesCargados
		entrada.GalonesCargados = *req.GalonesCargados
	}
	if req.CostoCombustible != nil {
		campos["costo_combustible"] = *req.CostoCombustible
		entrada.CostoCombustible = *req.CostoCombustible
	}
	if req.Peajes != nil {
		campos["peajes"] = *req.Peajes
		entrada.Peajes = *req.Peajes
	}
	if req.Comidas != nil {
		campos["comidas"] = *req.Comidas
		entrada.Comidas = *req.Comidas
	}
	if req.Otros != nil {
		campos["otros"] = *req.Otros
		entrada.Otros = *req.Otros
	}
	if len(campos) == 0 {
		return rutaToResponse(actual), nil
	}

	if _, err := derived.ResolverEconomiaRuta(entrada); err != nil {
		return nil, err
	}

	vista, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return rutaToResponse(vista), nil
}

func (s *rutaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// SolicitarReporte enqueues the PDF profitability report; generation is
// asynchronous and the download surfaces later under /reportes.
func (s *rutaService) SolicitarReporte(ctx context.Context, req dto.ReporteRutasRequest) error {
	return s.dispatcher.EnqueueReporte(ctx, worker.ReporteJobPayload{
		Desde: req.Desde,
		Hasta: req.Hasta,
		Email: req.Email,
	})
}

func economiaDesdeCrear(req dto.CrearRutaRequest) derived.EntradaEconomia {
	return derived.EntradaEconomia{
		KilometrajeInicio: req.KilometrajeInicio,
		KilometrajeFin:    req.KilometrajeFin,
		PesoCargaKg:       req.PesoCargaKg,
		TarifaPorKg:       req.TarifaPorKg,
		CostoCombustible:  req.CostoCombustible,
		GalonesCargados:   req.GalonesCargados,
		PrecioGalon:       req.PrecioGalon,
		Peajes:            req.Peajes,
		Comidas:           req.Comidas,
		Otros:             req.Otros,
	}
}

func economiaDesdeVista(v *model.RutaVista) derived.EntradaEconomia {
	return derived.EntradaEconomia{
		KilometrajeInicio: v.KilometrajeInicio,
		KilometrajeFin:    v.KilometrajeFin,
		PesoCargaKg:       v.PesoCargaKg,
		TarifaPorKg:       v.TarifaPorKg,
		CostoCombustible:  v.CostoCombustible,
		GalonesCargados:   v.GalonesCargados,
		PrecioGalon:       v.PrecioGalon,
		Peajes:            v.Peajes,
		Comidas:           v.Comidas,
		Otros:             v.Otros,
	}
}

// rutaToResponse prefers the view's derived columns and falls back to the
// resolver when the row predates the view (derived columns zeroed).
func rutaToResponse(v *model.RutaVista) *dto.RutaResponse {
	resp := &dto.RutaResponse{
		ID:          v.ID.String(),
		NumeroViaje: v.NumeroViaje,
		VehiculoID:  v.VehiculoID.String(),
		ConductorID: v.ConductorID.String(),

		Origen:       v.Origen,
		Destino:      v.Destino,
		FechaSalida:  v.FechaSalida,
		FechaLlegada: v.FechaLlegada,

		KilometrajeInicio: v.KilometrajeInicio,
		KilometrajeFin:    v.KilometrajeFin,

		PesoCargaKg: v.PesoCargaKg,
		TarifaPorKg: v.TarifaPorKg,

		EstacionServicio: v.EstacionServicio,
		TipoCombustible:  v.TipoCombustible,
		PrecioGalon:      v.PrecioGalon,
		GalonesCargados:  v.GalonesCargados,
		CostoCombustible: v.CostoCombustible,

		Peajes:  v.Peajes,
		Comidas: v.Comidas,
		Otros:   v.Otros,

		DistanciaKm:            v.DistanciaKm,
		Ingreso:                v.Ingreso,
		GastoTotal:             v.GastoTotal,
		GananciaNeta:           v.GananciaNeta,
		RendimientoCombustible: v.RendimientoCombustible,
		IngresoPorKm:           v.IngresoPorKm,

		PlacaVehiculo:  v.PlacaVehiculo,
		EstadoVehiculo: v.EstadoVehiculo,
	}

	if v.DistanciaKm == 0 {
		if eco, err := derived.ResolverEconomiaRuta(economiaDesdeVista(v)); err == nil {
			resp.DistanciaKm = eco.DistanciaKm
			resp.Ingreso = eco.Ingreso
			resp.GastoTotal = eco.GastoTotal
			resp.GananciaNeta = eco.GananciaNeta
			resp.RendimientoCombustible = eco.RendimientoCombustible
			resp.IngresoPorKm = eco.IngresoPorKm
		}
	}
	return resp
}
