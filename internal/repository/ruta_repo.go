package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// RutaRepository reads through vista_rutas (economics + estado_vehiculo
// computed server-side) and writes to rutas_viaje.
type RutaRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.RutaVista, error)
	Search(ctx context.Context, termino string, campos []string) ([]model.RutaVista, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.RutaVista, error)
	Create(ctx context.Context, r *model.RutaViaje) (*model.RutaVista, error)
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.RutaVista, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SiguienteNumeroViaje allocates the next trip number (max + 1).
	SiguienteNumeroViaje(ctx context.Context) (int, error)
}

type rutaRepo struct {
	tabla *Tabla[model.RutaViaje, model.RutaVista]
}

func NewRutaRepository(db *gorm.DB) RutaRepository {
	return &rutaRepo{tabla: NewTabla[model.RutaViaje, model.RutaVista](db)}
}

func (r *rutaRepo) List(ctx context.Context, filtros map[string]any) ([]model.RutaVista, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *rutaRepo) Search(ctx context.Context, termino string, campos []string) ([]model.RutaVista, error) {
	return r.tabla.Search(ctx, termino, campos)
}

func (r *rutaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RutaVista, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *rutaRepo) Create(ctx context.Context, ruta *model.RutaViaje) (*model.RutaVista, error) {
	if err := r.tabla.Create(ctx, ruta); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, ruta.ID)
}

func (r *rutaRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.RutaVista, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *rutaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Delete(ctx, id)
}

func (r *rutaRepo) SiguienteNumeroViaje(ctx context.Context) (int, error) {
	var max *int
	err := r.tabla.DB().WithContext(ctx).
		Model(&model.RutaViaje{}).
		Select("MAX(numero_viaje)").
		Scan(&max).Error
	if err != nil {
		return 0, traducir(err)
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}
