package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

// VehiculoService defines the business logic contract for vehicles.
type VehiculoService interface {
	Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error)
	Listar(ctx context.Context, filtro query.FiltroVehiculos) (*dto.VehiculoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error)
	DarDeBaja(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type vehiculoService struct {
	repo repository.VehiculoRepository
}

func NewVehiculoService(repo repository.VehiculoRepository) VehiculoService {
	return &vehiculoService{repo: repo}
}

var (
	hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	coloresConocidos = map[string]bool{
		"blanco": true, "negro": true, "gris": true, "plata": true,
		"rojo": true, "azul": true, "verde": true, "amarillo": true,
		"naranja": true, "café": true, "beige": true, "vino": true,
	}
)

// sanitizarColor accepts a hex code or a known color name; anything else
// (markup, scripts, typos) collapses to empty rather than being stored.
func sanitizarColor(color string) string {
	c := strings.TrimSpace(color)
	if c == "" {
		return ""
	}
	if hexColor.MatchString(c) {
		return strings.ToLower(c)
	}
	if coloresConocidos[strings.ToLower(c)] {
		return strings.ToLower(c)
	}
	return ""
}

func (s *vehiculoService) Crear(ctx context.Context, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	v := &model.Vehiculo{
		Tipo:                 req.Tipo,
		Marca:                req.Marca,
		Modelo:               req.Modelo,
		Placa:                strings.ToUpper(strings.TrimSpace(req.Placa)),
		NumeroSerie:          req.NumeroSerie,
		Color:                sanitizarColor(req.Color),
		Anio:                 req.Anio,
		CargaMaxima:          req.CargaMaxima,
		CicloMantenimientoKm: req.CicloMantenimientoKm,
		KilometrajeInicial:   req.KilometrajeInicial,
		// Un vehículo nuevo arranca con ambos odómetros en el inicial.
		KilometrajeUltimoPreventivo: req.KilometrajeInicial,
		KilometrajeActual:           req.KilometrajeInicial,
		Activo:                      true,
	}

	vista, err := s.repo.Create(ctx, v)
	if err != nil {
		return nil, err
	}
	return vehiculoToResponse(vista), nil
}

func (s *vehiculoService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.VehiculoResponse, error) {
	vista, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vehiculoToResponse(vista), nil
}

func (s *vehiculoService) Listar(ctx context.Context, filtro query.FiltroVehiculos) (*dto.VehiculoListResponse, error) {
	if err := filtro.Validar(); err != nil {
		return nil, err
	}

	plan := filtro.Plan()
	var (
		vistas []model.VehiculoVista
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

	out := make([]dto.VehiculoResponse, 0, len(vistas))
	for i := range vistas {
		out = append(out, *vehiculoToResponse(&vistas[i]))
	}
	return &dto.VehiculoListResponse{Data: out, Total: len(out)}, nil
}

func (s *vehiculoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error) {
	campos := map[string]any{}
	if req.Tipo != nil {
		campos["tipo"] = *req.Tipo
	}
	if req.Marca != nil {
		campos["marca"] = *req.Marca
	}
	if req.Modelo != nil {
		campos["modelo"] = *req.Modelo
	}
	if req.Color != nil {
		campos["color"] = sanitizarColor(*req.Color)
	}
	if req.Anio != nil {
		campos["anio"] = *req.Anio
	}
	if req.CargaMaxima != nil {
		campos["carga_maxima"] = *req.CargaMaxima
	}
	if req.CicloMantenimientoKm != nil {
		if *req.CicloMantenimientoKm <= 0 {
			return nil, apierror.Validation("ciclo_mantenimiento_km debe ser positivo")
		}
		campos["ciclo_mantenimiento_km"] = *req.CicloMantenimientoKm
	}
	if len(campos) == 0 {
		return s.ObtenerPorID(ctx, id)
	}

	vista, err := s.repo.Update(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	return vehiculoToResponse(vista), nil
}

func (s *vehiculoService) DarDeBaja(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *vehiculoService) Reactivar(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivar(ctx, id)
}

// vehiculoToResponse cross-checks the view's derived columns against the
// resolver; the resolver wins when the plan is inconsistent (ciclo <= 0),
// since the view cannot signal that case.
func vehiculoToResponse(v *model.VehiculoVista) *dto.VehiculoResponse {
	resp := &dto.VehiculoResponse{
		ID:          v.ID.String(),
		Tipo:        v.Tipo,
		Marca:       v.Marca,
		Modelo:      v.Modelo,
		Placa:       v.Placa,
		NumeroSerie: v.NumeroSerie,
		Color:       v.Color,
		Anio:        v.Anio,
		CargaMaxima: v.CargaMaxima,

		CicloMantenimientoKm:        v.CicloMantenimientoKm,
		KilometrajeInicial:          v.KilometrajeInicial,
		KilometrajeUltimoPreventivo: v.KilometrajeUltimoPreventivo,
		KilometrajeActual:           v.KilometrajeActual,

		KmRestanteMantenimiento: v.KmRestanteMantenimiento,
		EstadoMantenimiento:     v.EstadoMantenimiento,

		Activo: v.Activo,
	}

	res, err := derived.ResolverMantenimiento(derived.PlanMantenimiento{
		CicloKm:            v.CicloMantenimientoKm,
		KmUltimoPreventivo: v.KilometrajeUltimoPreventivo,
		KmActual:           v.KilometrajeActual,
	})
	if err == nil {
		resp.KmRestanteMantenimiento = res.KmRestante
		resp.EstadoMantenimiento = res.Estado
		resp.CicloInvalido = res.CicloInvalido
	}
	return resp
}
