package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/sincro"
)

const (
	statsCacheKey = "stats:flota"
	statsCacheTTL = 30 * time.Second
)

// StatsFlota is the dashboard aggregate over every collection.
type StatsFlota struct {
	Vehiculos      sincro.StatsVehiculos      `json:"vehiculos"`
	Rutas          sincro.StatsRutas          `json:"rutas"`
	Polizas        sincro.StatsPolizas        `json:"polizas"`
	Conductores    sincro.StatsConductores    `json:"conductores"`
	Multas         sincro.StatsMultas         `json:"multas"`
	Mantenimientos sincro.StatsMantenimientos `json:"mantenimientos"`
	Impuestos      sincro.StatsImpuestos      `json:"impuestos"`
	GeneradoEn     time.Time                  `json:"generado_en"`
}

type StatsService interface {
	Obtener(ctx context.Context) (*StatsFlota, error)
}

type statsService struct {
	vehiculos      repository.VehiculoRepository
	rutas          repository.RutaRepository
	polizas        repository.PolizaRepository
	conductores    repository.ConductorRepository
	multas         repository.MultaRepository
	mantenimientos repository.MantenimientoRepository
	impuestos      repository.ImpuestoRepository

	rdb   *redis.Client
	ahora func() time.Time
}

func NewStatsService(
	vehiculos repository.VehiculoRepository,
	rutas repository.RutaRepository,
	polizas repository.PolizaRepository,
	conductores repository.ConductorRepository,
	multas repository.MultaRepository,
	mantenimientos repository.MantenimientoRepository,
	impuestos repository.ImpuestoRepository,
	rdb *redis.Client,
) StatsService {
	return &statsService{
		vehiculos:      vehiculos,
		rutas:          rutas,
		polizas:        polizas,
		conductores:    conductores,
		multas:         multas,
		mantenimientos: mantenimientos,
		impuestos:      impuestos,
		rdb:            rdb,
		ahora:          time.Now,
	}
}

// Obtener serves the dashboard aggregate from Redis when fresh and
// recomputes it from the repositories otherwise. A cache failure only
// costs the recomputation, never the request.
func (s *statsService) Obtener(ctx context.Context) (*StatsFlota, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var cached StatsFlota
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.recalcular(ctx)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear stats de flota")
			}
		}
	}
	return stats, nil
}

func (s *statsService) recalcular(ctx context.Context) (*StatsFlota, error) {
	vehiculos, err := s.vehiculos.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	rutas, err := s.rutas.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	polizas, err := s.polizas.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	conductores, err := s.conductores.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	multas, err := s.multas.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	mantenimientos, err := s.mantenimientos.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	impuestos, err := s.impuestos.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	agregarConductores := sincro.AgregadorConductores(s.ahora)
	return &StatsFlota{
		Vehiculos:      sincro.AgregarVehiculos(vehiculos),
		Rutas:          sincro.AgregarRutas(rutas),
		Polizas:        sincro.AgregarPolizas(polizas),
		Conductores:    agregarConductores(conductores),
		Multas:         sincro.AgregarMultas(multas),
		Mantenimientos: sincro.AgregarMantenimientos(mantenimientos),
		Impuestos:      sincro.AgregarImpuestos(impuestos),
		GeneradoEn:     s.ahora(),
	}, nil
}
