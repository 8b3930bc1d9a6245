// Package repository implements the persistence collaborator: six generic
// operations (getAll, getById, create, update, delete, search) against named
// tables and calculated views, plus per-entity repositories built on them.
//
// The view/table split is load-bearing: entities with derived columns read
// through their calculated view (vista_*) and write to the base table, which
// does not accept derived columns. Derived values are NEVER written back.
package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
)

// Tabla is the generic repository over one entity. W is the writable
// base-table model; R is the read model (the calculated view where one
// exists, otherwise W again). GORM resolves each model's table name, so
// reads and writes land on the right surface automatically.
type Tabla[W any, R any] struct {
	db *gorm.DB
}

func NewTabla[W any, R any](db *gorm.DB) *Tabla[W, R] {
	return &Tabla[W, R]{db: db}
}

// GetAll lists records, optionally narrowed by field=value equality filters.
func (t *Tabla[W, R]) GetAll(ctx context.Context, filtros map[string]any) ([]R, error) {
	var regs []R
	q := t.db.WithContext(ctx).Model(new(R))
	if len(filtros) > 0 {
		q = q.Where(filtros)
	}
	if err := q.Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, traducir(err)
	}
	return regs, nil
}

func (t *Tabla[W, R]) GetByID(ctx context.Context, id uuid.UUID) (*R, error) {
	var reg R
	if err := t.db.WithContext(ctx).Model(new(R)).Where("id = ?", id).First(&reg).Error; err != nil {
		return nil, traducir(err)
	}
	return &reg, nil
}

func (t *Tabla[W, R]) Create(ctx context.Context, reg *W) error {
	return traducir(t.db.WithContext(ctx).Create(reg).Error)
}

// Update applies a partial record. Callers pass only writable base-table
// columns — derived columns must never appear here.
func (t *Tabla[W, R]) Update(ctx context.Context, id uuid.UUID, campos map[string]any) error {
	res := t.db.WithContext(ctx).Model(new(W)).Where("id = ?", id).Updates(campos)
	if res.Error != nil {
		return traducir(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound("registro no encontrado")
	}
	return nil
}

func (t *Tabla[W, R]) Delete(ctx context.Context, id uuid.UUID) error {
	res := t.db.WithContext(ctx).Delete(new(W), "id = ?", id)
	if res.Error != nil {
		return traducir(res.Error)
	}
	if res.RowsAffected == 0 {
		return apierror.NotFound("registro no encontrado")
	}
	return nil
}

// Search runs a case-insensitive substring match across the given text
// columns (OR between columns). Discrete filters are deliberately NOT
// composable here — that asymmetry belongs to the query composer.
func (t *Tabla[W, R]) Search(ctx context.Context, termino string, campos []string) ([]R, error) {
	if termino == "" || len(campos) == 0 {
		return t.GetAll(ctx, nil)
	}
	conds := make([]string, len(campos))
	args := make([]any, len(campos))
	for i, c := range campos {
		conds[i] = c + " ILIKE ?"
		args[i] = "%" + termino + "%"
	}
	var regs []R
	err := t.db.WithContext(ctx).Model(new(R)).
		Where(strings.Join(conds, " OR "), args...).
		Order("created_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, traducir(err)
	}
	return regs, nil
}

// DB exposes the underlying *gorm.DB so repositories can run queries the
// generic surface does not cover.
func (t *Tabla[W, R]) DB() *gorm.DB { return t.db }

// traducir maps driver errors into the domain taxonomy. Unknown errors pass
// through untyped and surface as 500s.
func traducir(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NotFound("registro no encontrado")
	case errors.Is(err, context.DeadlineExceeded):
		return apierror.Transient("tiempo de espera agotado en la base de datos", err)
	case strings.Contains(err.Error(), "SQLSTATE 23505"),
		strings.Contains(err.Error(), "duplicate key"):
		return apierror.Conflict("registro duplicado")
	default:
		return err
	}
}
