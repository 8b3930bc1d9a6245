package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// ConductorRepository — drivers have no calculated view; license vigencia is
// derived client-side from vencimiento_licencia.
type ConductorRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.Conductor, error)
	Search(ctx context.Context, termino string, campos []string) ([]model.Conductor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Conductor, error)
	Create(ctx context.Context, c *model.Conductor) error
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.Conductor, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// LicenciasPorVencer lists active drivers whose license expires within
	// the window. Feeds the expiry-alert worker.
	LicenciasPorVencer(ctx context.Context, hasta time.Time) ([]model.Conductor, error)
}

type conductorRepo struct {
	tabla *Tabla[model.Conductor, model.Conductor]
}

func NewConductorRepository(db *gorm.DB) ConductorRepository {
	return &conductorRepo{tabla: NewTabla[model.Conductor, model.Conductor](db)}
}

func (r *conductorRepo) List(ctx context.Context, filtros map[string]any) ([]model.Conductor, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *conductorRepo) Search(ctx context.Context, termino string, campos []string) ([]model.Conductor, error) {
	return r.tabla.Search(ctx, termino, campos)
}

func (r *conductorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Conductor, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *conductorRepo) Create(ctx context.Context, c *model.Conductor) error {
	return r.tabla.Create(ctx, c)
}

func (r *conductorRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.Conductor, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *conductorRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Update(ctx, id, map[string]any{"activo": false})
}

func (r *conductorRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Update(ctx, id, map[string]any{"activo": true})
}

func (r *conductorRepo) LicenciasPorVencer(ctx context.Context, hasta time.Time) ([]model.Conductor, error) {
	var regs []model.Conductor
	err := r.tabla.DB().WithContext(ctx).
		Where("activo = true AND vencimiento_licencia <= ?", hasta).
		Order("vencimiento_licencia ASC").
		Find(&regs).Error
	if err != nil {
		return nil, traducir(err)
	}
	return regs, nil
}
