package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// PolizaRepository reads through vista_polizas and writes to polizas_seguro.
type PolizaRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.PolizaVista, error)
	Search(ctx context.Context, termino string, campos []string) ([]model.PolizaVista, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.PolizaVista, error)
	Create(ctx context.Context, p *model.PolizaSeguro) (*model.PolizaVista, error)
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.PolizaVista, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// PorVencer lists active, non-cancelled policies expiring within the
	// window (days). Feeds the expiry-alert worker.
	PorVencer(ctx context.Context, dias int) ([]model.PolizaVista, error)
}

type polizaRepo struct {
	tabla *Tabla[model.PolizaSeguro, model.PolizaVista]
}

func NewPolizaRepository(db *gorm.DB) PolizaRepository {
	return &polizaRepo{tabla: NewTabla[model.PolizaSeguro, model.PolizaVista](db)}
}

func (r *polizaRepo) List(ctx context.Context, filtros map[string]any) ([]model.PolizaVista, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *polizaRepo) Search(ctx context.Context, termino string, campos []string) ([]model.PolizaVista, error) {
	return r.tabla.Search(ctx, termino, campos)
}

func (r *polizaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PolizaVista, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *polizaRepo) Create(ctx context.Context, p *model.PolizaSeguro) (*model.PolizaVista, error) {
	if err := r.tabla.Create(ctx, p); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, p.ID)
}

func (r *polizaRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.PolizaVista, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *polizaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Delete(ctx, id)
}

func (r *polizaRepo) PorVencer(ctx context.Context, dias int) ([]model.PolizaVista, error) {
	var regs []model.PolizaVista
	err := r.tabla.DB().WithContext(ctx).
		Model(&model.PolizaVista{}).
		Where("cancelada = false AND dias_restantes > 0 AND dias_restantes <= ?", dias).
		Order("dias_restantes ASC").
		Find(&regs).Error
	if err != nil {
		return nil, traducir(err)
	}
	return regs, nil
}
