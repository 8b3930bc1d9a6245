package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueReportes = "jobs:reportes"
	QueueAlertas  = "jobs:alertas"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueReporte pushes a profitability-report job to Redis.
func (d *Dispatcher) EnqueueReporte(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueReportes, "reporte_rutas", payload)
}

// EnqueueAlerta pushes an alert-email job to Redis.
func (d *Dispatcher) EnqueueAlerta(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueAlertas, "alerta_email", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// Handlers routes dequeued jobs to their processors.
type Handlers struct {
	Reporte *ReporteWorker
	Alerta  *AlertaWorker
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, handlers Handlers) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, handlers)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, handlers Handlers) {
	queues := []string{QueueReportes, QueueAlertas}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, result[0], result[1], handlers)
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, queue, raw string, handlers Handlers) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	log.Info().Str("type", job.Type).Str("queue", queue).Msg("processing job")

	switch job.Type {
	case "reporte_rutas":
		if handlers.Reporte != nil {
			handlers.Reporte.Process(ctx, job.Payload)
			return
		}
	case "alerta_email":
		if handlers.Alerta != nil {
			handlers.Alerta.Process(ctx, job.Payload)
			return
		}
	}

	SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, "no handler registered", 0)
}
