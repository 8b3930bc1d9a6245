package worker

// vencimientos_cron.go
// Background goroutine that periodically scans for insurance policies and
// driver licenses close to expiry and enqueues a digest alert email.
// Skips the tick while the SMTP circuit breaker is open — there is no
// point queueing mail that will fast-fail downstream.

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/infra"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

// Policies and licenses within this many days count as "por vencer".
const vencimientoVentanaDias = 30

// VencimientosCronConfig holds all dependencies for the expiry scanner.
type VencimientosCronConfig struct {
	PolizaRepo    repository.PolizaRepository
	ConductorRepo repository.ConductorRepository
	Dispatcher    *Dispatcher
	CB            *infra.CircuitBreaker
	Intervalo     time.Duration
	Destino       string // alert mailbox
}

// StartVencimientosCron launches a goroutine that ticks on cfg.Intervalo,
// collects upcoming expirations and enqueues one digest email per tick.
// It respects the context for graceful shutdown.
func StartVencimientosCron(ctx context.Context, cfg VencimientosCronConfig) {
	go func() {
		ticker := time.NewTicker(cfg.Intervalo)
		defer ticker.Stop()

		log.Info().Dur("intervalo", cfg.Intervalo).Msg("vencimientos_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("vencimientos_cron: shutting down")
				return
			case <-ticker.C:
				processVencimientos(ctx, cfg)
			}
		}
	}()
}

func processVencimientos(ctx context.Context, cfg VencimientosCronConfig) {
	if cfg.Destino == "" {
		return
	}
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("vencimientos_cron: circuit breaker is open, skipping tick")
		return
	}

	ahora := time.Now().UTC()
	var lineas []string

	polizas, err := cfg.PolizaRepo.PorVencer(ctx, vencimientoVentanaDias)
	if err != nil {
		log.Error().Err(err).Msg("vencimientos_cron: failed to query polizas")
	} else {
		for _, p := range polizas {
			lineas = append(lineas, fmt.Sprintf(
				"Póliza %s (%s, %s): vence en %d días (%s)",
				p.NumeroPoliza, p.PlacaVehiculo, p.Aseguradora, p.DiasRestantes, p.Estado))
		}
	}

	hasta := ahora.AddDate(0, 0, vencimientoVentanaDias)
	conductores, err := cfg.ConductorRepo.LicenciasPorVencer(ctx, hasta)
	if err != nil {
		log.Error().Err(err).Msg("vencimientos_cron: failed to query licencias")
	} else {
		for _, c := range conductores {
			vig := derived.ResolverVigencia(c.VencimientoLicencia, ahora, false)
			lineas = append(lineas, fmt.Sprintf(
				"Licencia %s de %s %s: vence en %d días (%s)",
				c.NumeroLicencia, c.Nombre, c.Apellido, vig.DiasRestantes, vig.Nivel))
		}
	}

	if len(lineas) == 0 {
		return
	}

	alerta := AlertaJobPayload{
		ToEmail: cfg.Destino,
		Subject: fmt.Sprintf("Vencimientos próximos — %d elementos", len(lineas)),
		Body: fmt.Sprintf("Los siguientes documentos vencen dentro de %d días:\n\n%s\n",
			vencimientoVentanaDias, strings.Join(lineas, "\n")),
	}
	if err := cfg.Dispatcher.EnqueueAlerta(ctx, alerta); err != nil {
		log.Error().Err(err).Msg("vencimientos_cron: failed to enqueue alerta")
		return
	}
	log.Info().Int("elementos", len(lineas)).Msg("vencimientos_cron: digest enqueued")
}
