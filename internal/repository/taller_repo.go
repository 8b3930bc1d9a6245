package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// TallerRepository — plain directory entity.
type TallerRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.Taller, error)
	Search(ctx context.Context, termino string, campos []string) ([]model.Taller, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Taller, error)
	Create(ctx context.Context, t *model.Taller) error
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.Taller, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type tallerRepo struct {
	tabla *Tabla[model.Taller, model.Taller]
}

func NewTallerRepository(db *gorm.DB) TallerRepository {
	return &tallerRepo{tabla: NewTabla[model.Taller, model.Taller](db)}
}

func (r *tallerRepo) List(ctx context.Context, filtros map[string]any) ([]model.Taller, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *tallerRepo) Search(ctx context.Context, termino string, campos []string) ([]model.Taller, error) {
	return r.tabla.Search(ctx, termino, campos)
}

func (r *tallerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Taller, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *tallerRepo) Create(ctx context.Context, t *model.Taller) error {
	return r.tabla.Create(ctx, t)
}

func (r *tallerRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.Taller, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *tallerRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Update(ctx, id, map[string]any{"activo": false})
}
