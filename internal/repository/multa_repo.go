package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// MultaRepository — fines store their payment state explicitly; the balance
// is derived on read and never persisted.
type MultaRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.MultaConductor, error)
	Search(ctx context.Context, termino string, campos []string) ([]model.MultaConductor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.MultaConductor, error)
	Create(ctx context.Context, m *model.MultaConductor) error
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.MultaConductor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type multaRepo struct {
	tabla *Tabla[model.MultaConductor, model.MultaConductor]
}

func NewMultaRepository(db *gorm.DB) MultaRepository {
	return &multaRepo{tabla: NewTabla[model.MultaConductor, model.MultaConductor](db)}
}

func (r *multaRepo) List(ctx context.Context, filtros map[string]any) ([]model.MultaConductor, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *multaRepo) Search(ctx context.Context, termino string, campos []string) ([]model.MultaConductor, error) {
	return r.tabla.Search(ctx, termino, campos)
}

func (r *multaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MultaConductor, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *multaRepo) Create(ctx context.Context, m *model.MultaConductor) error {
	return r.tabla.Create(ctx, m)
}

func (r *multaRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.MultaConductor, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *multaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Delete(ctx, id)
}
