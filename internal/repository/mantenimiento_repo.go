package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// MantenimientoRepository — the record status is derived from dates, so the
// base table is also the read surface.
type MantenimientoRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.RegistroMantenimiento, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.RegistroMantenimiento, error)
	Create(ctx context.Context, m *model.RegistroMantenimiento) error
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.RegistroMantenimiento, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type mantenimientoRepo struct {
	tabla *Tabla[model.RegistroMantenimiento, model.RegistroMantenimiento]
}

func NewMantenimientoRepository(db *gorm.DB) MantenimientoRepository {
	return &mantenimientoRepo{tabla: NewTabla[model.RegistroMantenimiento, model.RegistroMantenimiento](db)}
}

func (r *mantenimientoRepo) List(ctx context.Context, filtros map[string]any) ([]model.RegistroMantenimiento, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *mantenimientoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RegistroMantenimiento, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *mantenimientoRepo) Create(ctx context.Context, m *model.RegistroMantenimiento) error {
	return r.tabla.Create(ctx, m)
}

func (r *mantenimientoRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.RegistroMantenimiento, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *mantenimientoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Delete(ctx, id)
}
