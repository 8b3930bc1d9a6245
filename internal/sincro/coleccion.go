// Package sincro keeps a per-session in-memory mirror of each entity
// collection: load state machine, optimistic mutations, aggregate stats
// recomputed on every change, and a stale-response guard for superseded
// fetches.
//
// The mirror is session-local — nothing here is shared across sessions, and
// concurrent edits from two sessions remain last-write-wins at the database
// (no conflict tokens). That limitation is inherited from the original
// system and documented, not silently fixed.
package sincro

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
)

// Estado of one collection's load cycle.
type Estado int

const (
	EstadoInactivo Estado = iota
	EstadoCargando
	EstadoCargado
	EstadoConError
)

func (e Estado) String() string {
	switch e {
	case EstadoInactivo:
		return "inactivo"
	case EstadoCargando:
		return "cargando"
	case EstadoCargado:
		return "cargado"
	case EstadoConError:
		return "con_error"
	default:
		return "desconocido"
	}
}

// TimeoutRepositorio bounds every persistence call issued through the
// mirror; a slow backend surfaces a distinguishable timeout error instead
// of hanging the session.
const TimeoutRepositorio = 30 * time.Second

// Agregador recomputes the aggregate stats from the full mirror. It runs on
// every mutation — O(n), acceptable for fleets of tens to low thousands.
type Agregador[T any, S any] func([]T) S

// Coleccion mirrors one entity collection for one session.
//
// On a failed confirmation the optimistic mutation is rolled back and the
// error surfaced: the mirror is never left half-mutated. (The original
// system kept the optimistic state on failure; rollback was the deliberate
// choice here.)
type Coleccion[T any, S any] struct {
	mu        sync.Mutex
	estado    Estado
	registros []T
	stats     S
	ultimoErr error

	// Monotonic fetch bookkeeping for the stale-response guard: a result is
	// applied only if no later fetch has already settled.
	emitida  uint64
	aplicada uint64

	id      func(T) uuid.UUID
	agregar Agregador[T, S]
	timeout time.Duration
}

// NewColeccion builds an empty mirror. id extracts a record's identity;
// agregar recomputes the stats.
func NewColeccion[T any, S any](id func(T) uuid.UUID, agregar Agregador[T, S]) *Coleccion[T, S] {
	c := &Coleccion[T, S]{
		id:      id,
		agregar: agregar,
		timeout: TimeoutRepositorio,
	}
	c.stats = agregar(nil)
	return c
}

// Cargar fetches the collection and replaces the mirror. On failure the
// previous mirror is retained and the error stored as the collection state.
// A result that resolves after a newer fetch already settled is discarded.
func (c *Coleccion[T, S]) Cargar(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	c.mu.Lock()
	c.emitida++
	seq := c.emitida
	c.estado = EstadoCargando
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	regs, err := fetch(ctx)
	err = traducirTimeout(err)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.aplicada {
		// Superseded: a newer fetch already settled. Discard silently.
		return nil
	}
	c.aplicada = seq

	if err != nil {
		c.estado = EstadoConError
		c.ultimoErr = err
		return err
	}
	c.estado = EstadoCargado
	c.ultimoErr = nil
	c.registros = regs
	c.stats = c.agregar(c.registros)
	return nil
}

// SetRegistros replaces the mirror directly (already-fetched data).
func (c *Coleccion[T, S]) SetRegistros(regs []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registros = regs
	c.estado = EstadoCargado
	c.ultimoErr = nil
	c.stats = c.agregar(c.registros)
}

// Crear inserts the record at the head of the mirror, then confirms against
// the repository. The caller must pre-assign a provisional ID. On success
// the confirmed record (server-assigned columns included) replaces the
// optimistic one; on failure the insert is rolled back.
func (c *Coleccion[T, S]) Crear(ctx context.Context, optimista T, confirmar func(context.Context) (T, error)) (T, error) {
	provisional := c.id(optimista)

	c.mu.Lock()
	c.registros = append([]T{optimista}, c.registros...)
	c.stats = c.agregar(c.registros)
	c.mu.Unlock()

	confirmado, err := c.conConfirmacion(ctx, confirmar)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.quitar(provisional)
		c.stats = c.agregar(c.registros)
		c.ultimoErr = err
		var cero T
		return cero, err
	}
	c.reemplazar(provisional, confirmado)
	c.stats = c.agregar(c.registros)
	return confirmado, nil
}

// Actualizar replaces the record by ID in the mirror, then confirms. On
// failure the previous version is restored.
func (c *Coleccion[T, S]) Actualizar(ctx context.Context, reg T, confirmar func(context.Context) (T, error)) (T, error) {
	id := c.id(reg)

	c.mu.Lock()
	previo, idx := c.buscar(id)
	if idx < 0 {
		c.mu.Unlock()
		var cero T
		return cero, apierror.NotFound("registro no está en el espejo local")
	}
	c.registros[idx] = reg
	c.stats = c.agregar(c.registros)
	c.mu.Unlock()

	confirmado, err := c.conConfirmacion(ctx, confirmar)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.reemplazar(id, previo)
		c.stats = c.agregar(c.registros)
		c.ultimoErr = err
		var cero T
		return cero, err
	}
	c.reemplazar(id, confirmado)
	c.stats = c.agregar(c.registros)
	return confirmado, nil
}

// Eliminar filters the record out of the mirror, then confirms. On failure
// the record returns to its original position.
func (c *Coleccion[T, S]) Eliminar(ctx context.Context, id uuid.UUID, confirmar func(context.Context) error) error {
	c.mu.Lock()
	previo, idx := c.buscar(id)
	if idx < 0 {
		c.mu.Unlock()
		return apierror.NotFound("registro no está en el espejo local")
	}
	c.registros = append(c.registros[:idx], c.registros[idx+1:]...)
	c.stats = c.agregar(c.registros)
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	err := traducirTimeout(confirmar(ctx))

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// Rollback: reinsert where it was.
		if idx > len(c.registros) {
			idx = len(c.registros)
		}
		c.registros = append(c.registros[:idx], append([]T{previo}, c.registros[idx:]...)...)
		c.stats = c.agregar(c.registros)
		c.ultimoErr = err
		return err
	}
	return nil
}

// Filtrados applies every predicate as a logical AND over a copy of the
// mirror.
func (c *Coleccion[T, S]) Filtrados(preds []query.Predicado[T]) []T {
	return query.Aplicar(c.Registros(), preds)
}

// Registros returns a copy of the current mirror.
func (c *Coleccion[T, S]) Registros() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.registros))
	copy(out, c.registros)
	return out
}

// Stats returns the aggregate recomputed at the last mutation.
func (c *Coleccion[T, S]) Stats() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

func (c *Coleccion[T, S]) Estado() Estado {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.estado
}

// Err returns the last surfaced persistence error, if any.
func (c *Coleccion[T, S]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ultimoErr
}

// ── internal ────────────────────────────────────────────────────────────────

func (c *Coleccion[T, S]) conConfirmacion(ctx context.Context, confirmar func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	reg, err := confirmar(ctx)
	return reg, traducirTimeout(err)
}

// buscar returns the record and index for an ID, or (zero, -1).
func (c *Coleccion[T, S]) buscar(id uuid.UUID) (T, int) {
	for i, r := range c.registros {
		if c.id(r) == id {
			return r, i
		}
	}
	var cero T
	return cero, -1
}

func (c *Coleccion[T, S]) reemplazar(id uuid.UUID, reg T) {
	for i, r := range c.registros {
		if c.id(r) == id {
			c.registros[i] = reg
			return
		}
	}
}

func (c *Coleccion[T, S]) quitar(id uuid.UUID) {
	for i, r := range c.registros {
		if c.id(r) == id {
			c.registros = append(c.registros[:i], c.registros[i+1:]...)
			return
		}
	}
}

func traducirTimeout(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apierror.Transient("tiempo de espera agotado contra el repositorio", err)
	}
	return err
}
