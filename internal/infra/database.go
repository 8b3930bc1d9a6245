package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update the base tables, then applies the idempotent SQL patches
// GORM cannot express — above all the three calculated views that derive
// maintenance status, route economics and policy vigencia on read.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Vehiculo{},
		&model.Conductor{},
		&model.RutaViaje{},
		&model.PolizaSeguro{},
		&model.MultaConductor{},
		&model.Taller{},
		&model.RegistroMantenimiento{},
		&model.ImpuestoVehicular{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches creates the calculated views. The CASE formulas are the
// SQL mirror of the resolvers in internal/derived; keep both in sync. A ciclo
// <= 0 reports Al día so a misconfigured vehicle never blocks operation — the
// service layer flags the configuration error separately.
//
// Every statement is CREATE OR REPLACE, so re-running on an already-patched
// schema is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		{"vista_vehiculos", `
CREATE OR REPLACE VIEW vista_vehiculos AS
SELECT
  v.*,
  CASE
    WHEN v.ciclo_mantenimiento_km <= 0 THEN 0
    ELSE v.ciclo_mantenimiento_km - (v.kilometraje_actual - v.kilometraje_ultimo_preventivo)
  END AS km_restante_mantenimiento,
  CASE
    WHEN v.ciclo_mantenimiento_km <= 0 THEN 'Al día'
    WHEN v.ciclo_mantenimiento_km - (v.kilometraje_actual - v.kilometraje_ultimo_preventivo) > 1000 THEN 'Al día'
    WHEN v.ciclo_mantenimiento_km - (v.kilometraje_actual - v.kilometraje_ultimo_preventivo) > 500  THEN 'Próximo'
    WHEN v.ciclo_mantenimiento_km - (v.kilometraje_actual - v.kilometraje_ultimo_preventivo) > 0    THEN 'Urgente'
    ELSE 'Vencido'
  END AS estado_mantenimiento
FROM vehiculos v`},

		{"vista_rutas", `
CREATE OR REPLACE VIEW vista_rutas AS
SELECT
  r.*,
  (r.kilometraje_fin - r.kilometraje_inicio) AS distancia_km,
  (r.peso_carga_kg * r.tarifa_por_kg) AS ingreso,
  (r.costo_combustible + r.peajes + r.comidas + r.otros) AS gasto_total,
  (r.peso_carga_kg * r.tarifa_por_kg) - (r.costo_combustible + r.peajes + r.comidas + r.otros) AS ganancia_neta,
  CASE
    WHEN r.galones_cargados = 0 THEN 0
    ELSE (r.kilometraje_fin - r.kilometraje_inicio) / r.galones_cargados
  END AS rendimiento_combustible,
  CASE
    WHEN (r.kilometraje_fin - r.kilometraje_inicio) = 0 THEN 0
    ELSE (r.peso_carga_kg * r.tarifa_por_kg) / (r.kilometraje_fin - r.kilometraje_inicio)
  END AS ingreso_por_km,
  vv.placa AS placa_vehiculo,
  vv.estado_mantenimiento AS estado_vehiculo
FROM rutas_viajes r
JOIN vista_vehiculos vv ON vv.id = r.vehiculo_id`},

		{"vista_polizas", `
CREATE OR REPLACE VIEW vista_polizas AS
SELECT
  p.*,
  (p.fecha_vencimiento::date - CURRENT_DATE) AS dias_restantes,
  CASE
    WHEN p.cancelada THEN 'cancelada'
    WHEN (p.fecha_vencimiento::date - CURRENT_DATE) > 30 THEN 'vigente'
    WHEN (p.fecha_vencimiento::date - CURRENT_DATE) > 0  THEN 'por_vencer'
    ELSE 'vencida'
  END AS estado
FROM polizas_seguros p`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("%s: %w", p.descr, err)
		}
	}
	return nil
}
