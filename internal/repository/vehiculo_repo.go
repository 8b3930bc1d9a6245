package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// VehiculoRepository reads through vista_vehiculos (maintenance status
// computed server-side) and writes to the vehiculos base table. Services
// depend on this interface, not on the GORM implementation.
type VehiculoRepository interface {
	List(ctx context.Context, filtros map[string]any) ([]model.VehiculoVista, error)
	Search(ctx context.Context, termino string, campos []string) ([]model.VehiculoVista, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.VehiculoVista, error)
	FindByPlaca(ctx context.Context, placa string) (*model.VehiculoVista, error)
	Create(ctx context.Context, v *model.Vehiculo) (*model.VehiculoVista, error)
	Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.VehiculoVista, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error

	// AvanzarKilometraje moves kilometraje_actual forward when a route
	// closes; it never moves backwards.
	AvanzarKilometraje(ctx context.Context, id uuid.UUID, km int) error
	// MarcarPreventivo records the odometer of a closed Preventivo service.
	MarcarPreventivo(ctx context.Context, id uuid.UUID, km int) error
}

type vehiculoRepo struct {
	tabla *Tabla[model.Vehiculo, model.VehiculoVista]
}

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository {
	return &vehiculoRepo{tabla: NewTabla[model.Vehiculo, model.VehiculoVista](db)}
}

func (r *vehiculoRepo) List(ctx context.Context, filtros map[string]any) ([]model.VehiculoVista, error) {
	return r.tabla.GetAll(ctx, filtros)
}

func (r *vehiculoRepo) Search(ctx context.Context, termino string, campos []string) ([]model.VehiculoVista, error) {
	return r.tabla.Search(ctx, termino, campos)
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.VehiculoVista, error) {
	return r.tabla.GetByID(ctx, id)
}

func (r *vehiculoRepo) FindByPlaca(ctx context.Context, placa string) (*model.VehiculoVista, error) {
	var v model.VehiculoVista
	err := r.tabla.DB().WithContext(ctx).
		Model(&model.VehiculoVista{}).
		Where("placa = ?", placa).
		First(&v).Error
	if err != nil {
		return nil, traducir(err)
	}
	return &v, nil
}

// Create writes the base row and re-reads the view so the caller gets the
// derived columns without ever writing them.
func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) (*model.VehiculoVista, error) {
	if err := r.tabla.Create(ctx, v); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, v.ID)
}

func (r *vehiculoRepo) Update(ctx context.Context, id uuid.UUID, campos map[string]any) (*model.VehiculoVista, error) {
	if err := r.tabla.Update(ctx, id, campos); err != nil {
		return nil, err
	}
	return r.tabla.GetByID(ctx, id)
}

func (r *vehiculoRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Update(ctx, id, map[string]any{"activo": false})
}

func (r *vehiculoRepo) Reactivar(ctx context.Context, id uuid.UUID) error {
	return r.tabla.Update(ctx, id, map[string]any{"activo": true})
}

func (r *vehiculoRepo) AvanzarKilometraje(ctx context.Context, id uuid.UUID, km int) error {
	return traducir(r.tabla.DB().WithContext(ctx).
		Model(&model.Vehiculo{}).
		Where("id = ?", id).
		Update("kilometraje_actual", gorm.Expr("GREATEST(kilometraje_actual, ?)", km)).Error)
}

func (r *vehiculoRepo) MarcarPreventivo(ctx context.Context, id uuid.UUID, km int) error {
	return traducir(r.tabla.DB().WithContext(ctx).
		Model(&model.Vehiculo{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"kilometraje_ultimo_preventivo": km,
			"kilometraje_actual":            gorm.Expr("GREATEST(kilometraje_actual, ?)", km),
		}).Error)
}
