package worker

// reporte_worker.go
// Processes profitability-report jobs from QueueReportes: pulls the
// calculated route view, filters by the requested window, renders the
// PDF and (optionally) mails it to the requester via QueueAlertas.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/infra"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/repository"
)

// ReporteJobPayload is the job envelope sent to QueueReportes.
// Desde/Hasta bound fecha_salida; nil means unbounded on that side.
type ReporteJobPayload struct {
	Desde *time.Time `json:"desde,omitempty"`
	Hasta *time.Time `json:"hasta,omitempty"`
	Email string     `json:"email,omitempty"`
}

// ReporteWorker generates route profitability PDFs.
type ReporteWorker struct {
	rutaRepo    repository.RutaRepository
	dispatcher  *Dispatcher
	rdb         *redis.Client
	storagePath string
}

func NewReporteWorker(rutaRepo repository.RutaRepository, dispatcher *Dispatcher, rdb *redis.Client, storagePath string) *ReporteWorker {
	return &ReporteWorker{rutaRepo: rutaRepo, dispatcher: dispatcher, rdb: rdb, storagePath: storagePath}
}

// Process handles a single report job:
//  1. Parse ReporteJobPayload from the job envelope
//  2. Load the route view, retrying transient DB errors
//  3. Keep trips whose fecha_salida falls inside [Desde, Hasta]
//  4. Render the PDF to storagePath
//  5. If Email was given, enqueue an alert job with the file attached
func (w *ReporteWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReporteJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("reporte_worker: invalid payload")
		return
	}

	var rutas []model.RutaVista
	err := withRetry(ctx, 3, func(attempt int) error {
		listadas, listErr := w.rutaRepo.List(ctx, nil)
		if listErr != nil {
			log.Warn().
				Err(listErr).
				Int("attempt", attempt+1).
				Msg("reporte_worker: route query failed, retrying")
			return listErr
		}
		rutas = listadas
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("reporte_worker: route query failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueReportes, "reporte_rutas", raw, err.Error(), 3)
		return
	}

	filtradas := rutas[:0:0]
	for _, r := range rutas {
		if payload.Desde != nil && r.FechaSalida.Before(*payload.Desde) {
			continue
		}
		if payload.Hasta != nil && r.FechaSalida.After(*payload.Hasta) {
			continue
		}
		filtradas = append(filtradas, r)
	}

	pdfPath, err := infra.GenerateReporteRutasPDF(filtradas, payload.Desde, payload.Hasta, w.storagePath)
	if err != nil {
		log.Error().Err(err).Msg("reporte_worker: PDF generation failed")
		SendToDLQ(ctx, w.rdb, QueueReportes, "reporte_rutas", raw, err.Error(), 1)
		return
	}
	log.Info().Str("pdf", pdfPath).Int("viajes", len(filtradas)).Msg("reporte_worker: reporte generado")

	if payload.Email == "" {
		return
	}
	alerta := AlertaJobPayload{
		ToEmail:    payload.Email,
		Subject:    "Reporte de rentabilidad de rutas",
		Body:       fmt.Sprintf("Adjunto el reporte de rentabilidad solicitado (%d viajes).", len(filtradas)),
		AttachPath: pdfPath,
	}
	if err := w.dispatcher.EnqueueAlerta(ctx, alerta); err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("reporte_worker: failed to enqueue alerta")
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
