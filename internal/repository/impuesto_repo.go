package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// ImpuestoRepository — vehicle taxes.
type ImpuestoRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.ImpuestoVehicular, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ImpuestoVehicular, error)
	Create(ctx context.Context, i *model.ImpuestoVehicular) error
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.ImpuestoVehicular, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type impuestoRepo struct {
	tabla *Tabla[model.ImpuestoVehicular, model.ImpuestoVehicular]
}

func NewImpuestoRepository(db *gorm.DB) ImpuestoRepository {
	return &impuestoRepo{tabla: NewTabla[model.ImpuestoVehicular, model.ImpuestoVehicular](db)}
}

func (r *impuestoRepo) List(ctx context.Context, filtros map[string]any) ([]model.ImpuestoVehicular, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *impuestoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ImpuestoVehicular, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *impuestoRepo) Create(ctx context.Context, i *model.ImpuestoVehicular) error {
	return r.tabla.Create(ctx, i)
}

func (r *impuestoRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.ImpuestoVehicular, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *impuestoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Delete(ctx, id)
}
