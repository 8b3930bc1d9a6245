package worker

// alerta_worker.go
// Processes alert-email jobs from QueueAlertas: expiry warnings and
// finished profitability reports. All SMTP traffic goes through the
// circuit breaker so a downed relay fast-fails instead of piling up.

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/infra"
)

// AlertaJobPayload is the job envelope sent to QueueAlertas.
type AlertaJobPayload struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	AttachPath string `json:"attach_path,omitempty"`
}

// AlertaWorker sends alert emails via SMTP behind the circuit breaker.
type AlertaWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
	rdb    *redis.Client
}

func NewAlertaWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, rdb *redis.Client) *AlertaWorker {
	return &AlertaWorker{mailer: mailer, cb: cb, rdb: rdb}
}

// Process sends one alert email, retrying with backoff before giving up
// to the DLQ.
func (w *AlertaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload AlertaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alerta_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("alerta_worker: empty to_email — skipping")
		return
	}

	err := withRetry(ctx, 3, func(attempt int) error {
		sendErr := w.cb.Execute(func() error {
			return w.mailer.SendAlerta(payload.ToEmail, payload.Subject, payload.Body, payload.AttachPath)
		})
		if sendErr != nil {
			log.Warn().
				Err(sendErr).
				Int("attempt", attempt+1).
				Str("to", payload.ToEmail).
				Msg("alerta_worker: send attempt failed, retrying")
		}
		return sendErr
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("alerta_worker: failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueAlertas, "alerta_email", raw, err.Error(), 3)
		return
	}
	log.Info().Str("to", payload.ToEmail).Msg("alerta_worker: alerta enviada")
}
