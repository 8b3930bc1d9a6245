package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

func containsFold(campo, termino string) bool {
	return strings.Contains(strings.ToLower(campo), strings.ToLower(termino))
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	if err != nil {
		t.Fatalf("uuid inválido %q: %v", s, err)
	}
	return id
}

// In-memory repository fakes. The vehicle and route fakes recompute the
// derived view columns with the same resolvers the database views mirror, so
// a service round-trip exercises the full read path.

// ── VehiculoRepository fake ─────────────────────────────────────────────────

type fakeVehiculoRepo struct {
	vehiculos map[uuid.UUID]*model.Vehiculo
}

func newFakeVehiculoRepo() *fakeVehiculoRepo {
	return &fakeVehiculoRepo{vehiculos: make(map[uuid.UUID]*model.Vehiculo)}
}

func (r *fakeVehiculoRepo) vista(v *model.Vehiculo) *model.VehiculoVista {
	vista := &model.VehiculoVista{
		ID:          v.ID,
		Tipo:        v.Tipo,
		Marca:       v.Marca,
		Modelo:      v.Modelo,
		Placa:       v.Placa,
		NumeroSerie: v.NumeroSerie,
		Color:       v.Color,
		Anio:        v.Anio,
		CargaMaxima: v.CargaMaxima,

		CicloMantenimientoKm:        v.CicloMantenimientoKm,
		KilometrajeInicial:          v.KilometrajeInicial,
		KilometrajeUltimoPreventivo: v.KilometrajeUltimoPreventivo,
		KilometrajeActual:           v.KilometrajeActual,

		Activo: v.Activo,
	}
	if res, err := derived.ResolverMantenimiento(derived.PlanMantenimiento{
		CicloKm:            v.CicloMantenimientoKm,
		KmUltimoPreventivo: v.KilometrajeUltimoPreventivo,
		KmActual:           v.KilometrajeActual,
	}); err == nil {
		vista.KmRestanteMantenimiento = res.KmRestante
		vista.EstadoMantenimiento = res.Estado
	}
	return vista
}

func (r *fakeVehiculoRepo) List(_ context.Context, filtros map[string]any) ([]model.VehiculoVista, error) {
	var out []model.VehiculoVista
	for _, v := range r.vehiculos {
		vista := r.vista(v)
		if activo, ok := filtros["activo"].(bool); ok && vista.Activo != activo {
			continue
		}
		if tipo, ok := filtros["tipo"].(string); ok && vista.Tipo != tipo {
			continue
		}
		if estado, ok := filtros["estado_mantenimiento"].(string); ok && vista.EstadoMantenimiento != estado {
			continue
		}
		out = append(out, *vista)
	}
	return out, nil
}

func (r *fakeVehiculoRepo) Search(ctx context.Context, termino string, _ []string) ([]model.VehiculoVista, error) {
	var out []model.VehiculoVista
	for _, v := range r.vehiculos {
		if containsFold(v.Placa, termino) || containsFold(v.Marca, termino) || containsFold(v.Modelo, termino) {
			out = append(out, *r.vista(v))
		}
	}
	return out, nil
}

func (r *fakeVehiculoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.VehiculoVista, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, apierror.NotFound("vehículo no encontrado")
	}
	return r.vista(v), nil
}

func (r *fakeVehiculoRepo) FindByPlaca(_ context.Context, placa string) (*model.VehiculoVista, error) {
	for _, v := range r.vehiculos {
		if v.Placa == placa {
			return r.vista(v), nil
		}
	}
	return nil, apierror.NotFound("vehículo no encontrado")
}

func (r *fakeVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) (*model.VehiculoVista, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	cloned := *v
	r.vehiculos[v.ID] = &cloned
	return r.vista(&cloned), nil
}

func (r *fakeVehiculoRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.VehiculoVista, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, apierror.NotFound("vehículo no encontrado")
	}
	for k, val := range campos {
		switch k {
		case "tipo":
			v.Tipo = val.(string)
		case "marca":
			v.Marca = val.(string)
		case "modelo":
			v.Modelo = val.(string)
		case "color":
			v.Color = val.(string)
		case "anio":
			v.Anio = val.(int)
		case "carga_maxima":
			v.CargaMaxima = val.(decimal.Decimal)
		case "ciclo_mantenimiento_km":
			v.CicloMantenimientoKm = val.(int)
		case "activo":
			v.Activo = val.(bool)
		}
	}
	return r.vista(v), nil
}

func (r *fakeVehiculoRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	_, err := r.Update(context.Background(), id, map[string]any{"activo": false})
	return err
}

func (r *fakeVehiculoRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	_, err := r.Update(context.Background(), id, map[string]any{"activo": true})
	return err
}

func (r *fakeVehiculoRepo) AvanzarKilometraje(_ context.Context, id uuid.UUID, km int) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return apierror.NotFound("vehículo no encontrado")
	}
	if km > v.KilometrajeActual {
		v.KilometrajeActual = km
	}
	return nil
}

func (r *fakeVehiculoRepo) MarcarPreventivo(_ context.Context, id uuid.UUID, km int) error {
	v, ok := r.vehiculos[id]
	if !ok {
		return apierror.NotFound("vehículo no encontrado")
	}
	v.KilometrajeUltimoPreventivo = km
	if km > v.KilometrajeActual {
		v.KilometrajeActual = km
	}
	return nil
}

// ── ConductorRepository fake ────────────────────────────────────────────────

type fakeConductorRepo struct {
	conductores map[uuid.UUID]*model.Conductor
}

func newFakeConductorRepo() *fakeConductorRepo {
	return &fakeConductorRepo{conductores: make(map[uuid.UUID]*model.Conductor)}
}

func (r *fakeConductorRepo) List(_ context.Context, filtros map[string]any) ([]model.Conductor, error) {
	var out []model.Conductor
	for _, c := range r.conductores {
		if activo, ok := filtros["activo"].(bool); ok && c.Activo != activo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeConductorRepo) Search(_ context.Context, termino string, _ []string) ([]model.Conductor, error) {
	var out []model.Conductor
	for _, c := range r.conductores {
		if containsFold(c.Nombre, termino) || containsFold(c.Apellido, termino) || containsFold(c.NumeroLicencia, termino) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeConductorRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Conductor, error) {
	c, ok := r.conductores[id]
	if !ok {
		return nil, apierror.NotFound("conductor no encontrado")
	}
	cloned := *c
	return &cloned, nil
}

func (r *fakeConductorRepo) Create(_ context.Context, c *model.Conductor) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cloned := *c
	r.conductores[c.ID] = &cloned
	return nil
}

func (r *fakeConductorRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.Conductor, error) {
	c, ok := r.conductores[id]
	if !ok {
		return nil, apierror.NotFound("conductor no encontrado")
	}
	for k, val := range campos {
		switch k {
		case "nombre":
			c.Nombre = val.(string)
		case "telefono":
			c.Telefono = val.(string)
		case "vencimiento_licencia":
			c.VencimientoLicencia = val.(time.Time)
		case "calificacion":
			c.Calificacion = val.(int)
		case "activo":
			c.Activo = val.(bool)
		}
	}
	cloned := *c
	return &cloned, nil
}

func (r *fakeConductorRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	_, err := r.Update(context.Background(), id, map[string]any{"activo": false})
	return err
}

func (r *fakeConductorRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	_, err := r.Update(context.Background(), id, map[string]any{"activo": true})
	return err
}

func (r *fakeConductorRepo) LicenciasPorVencer(_ context.Context, hasta time.Time) ([]model.Conductor, error) {
	var out []model.Conductor
	for _, c := range r.conductores {
		if c.Activo && !c.VencimientoLicencia.After(hasta) {
			out = append(out, *c)
		}
	}
	return out, nil
}

// ── RutaRepository fake ─────────────────────────────────────────────────────

type fakeRutaRepo struct {
	rutas     map[uuid.UUID]*model.RutaViaje
	vehiculos *fakeVehiculoRepo
}

func newFakeRutaRepo(vehiculos *fakeVehiculoRepo) *fakeRutaRepo {
	return &fakeRutaRepo{rutas: make(map[uuid.UUID]*model.RutaViaje), vehiculos: vehiculos}
}

func (r *fakeRutaRepo) vista(ruta *model.RutaViaje) *model.RutaVista {
	vista := &model.RutaVista{
		ID:          ruta.ID,
		NumeroViaje: ruta.NumeroViaje,
		VehiculoID:  ruta.VehiculoID,
		ConductorID: ruta.ConductorID,

		Origen:       ruta.Origen,
		Destino:      ruta.Destino,
		FechaSalida:  ruta.FechaSalida,
		FechaLlegada: ruta.FechaLlegada,

		KilometrajeInicio: ruta.KilometrajeInicio,
		KilometrajeFin:    ruta.KilometrajeFin,

		PesoCargaKg: ruta.PesoCargaKg,
		TarifaPorKg: ruta.TarifaPorKg,

		EstacionServicio: ruta.EstacionServicio,
		TipoCombustible:  ruta.TipoCombustible,
		PrecioGalon:      ruta.PrecioGalon,
		GalonesCargados:  ruta.GalonesCargados,
		CostoCombustible: ruta.CostoCombustible,

		Peajes:  ruta.Peajes,
		Comidas: ruta.Comidas,
		Otros:   ruta.Otros,
	}
	if eco, err := derived.ResolverEconomiaRuta(derived.EntradaEconomia{
		KilometrajeInicio: ruta.KilometrajeInicio,
		KilometrajeFin:    ruta.KilometrajeFin,
		PesoCargaKg:       ruta.PesoCargaKg,
		TarifaPorKg:       ruta.TarifaPorKg,
		CostoCombustible:  ruta.CostoCombustible,
		GalonesCargados:   ruta.GalonesCargados,
		PrecioGalon:       ruta.PrecioGalon,
		Peajes:            ruta.Peajes,
		Comidas:           ruta.Comidas,
		Otros:             ruta.Otros,
	}); err == nil {
		vista.DistanciaKm = eco.DistanciaKm
		vista.Ingreso = eco.Ingreso
		vista.GastoTotal = eco.GastoTotal
		vista.GananciaNeta = eco.GananciaNeta
		vista.RendimientoCombustible = eco.RendimientoCombustible
		vista.IngresoPorKm = eco.IngresoPorKm
	}
	if r.vehiculos != nil {
		if v, err := r.vehiculos.FindByID(context.Background(), ruta.VehiculoID); err == nil {
			vista.PlacaVehiculo = v.Placa
			vista.EstadoVehiculo = v.EstadoMantenimiento
		}
	}
	return vista
}

func (r *fakeRutaRepo) List(_ context.Context, _ map[string]any) ([]model.RutaVista, error) {
	var out []model.RutaVista
	for _, ruta := range r.rutas {
		out = append(out, *r.vista(ruta))
	}
	return out, nil
}

func (r *fakeRutaRepo) Search(_ context.Context, termino string, _ []string) ([]model.RutaVista, error) {
	var out []model.RutaVista
	for _, ruta := range r.rutas {
		if containsFold(ruta.Origen, termino) || containsFold(ruta.Destino, termino) {
			out = append(out, *r.vista(ruta))
		}
	}
	return out, nil
}

func (r *fakeRutaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RutaVista, error) {
	ruta, ok := r.rutas[id]
	if !ok {
		return nil, apierror.NotFound("ruta no encontrada")
	}
	return r.vista(ruta), nil
}

func (r *fakeRutaRepo) Create(_ context.Context, ruta *model.RutaViaje) (*model.RutaVista, error) {
	if ruta.ID == uuid.Nil {
		ruta.ID = uuid.New()
	}
	cloned := *ruta
	r.rutas[ruta.ID] = &cloned
	return r.vista(&cloned), nil
}

func (r *fakeRutaRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.RutaVista, error) {
	ruta, ok := r.rutas[id]
	if !ok {
		return nil, apierror.NotFound("ruta no encontrada")
	}
	for k, val := range campos {
		switch k {
		case "origen":
			ruta.Origen = val.(string)
		case "destino":
			ruta.Destino = val.(string)
		case "kilometraje_inicio":
			ruta.KilometrajeInicio = val.(int)
		case "kilometraje_fin":
			ruta.KilometrajeFin = val.(int)
		case "peso_carga_kg":
			ruta.PesoCargaKg = val.(decimal.Decimal)
		case "tarifa_por_kg":
			ruta.TarifaPorKg = val.(decimal.Decimal)
		case "costo_combustible":
			ruta.CostoCombustible = val.(decimal.Decimal)
		case "galones_cargados":
			ruta.GalonesCargados = val.(decimal.Decimal)
		case "peajes":
			ruta.Peajes = val.(decimal.Decimal)
		}
	}
	return r.vista(ruta), nil
}

func (r *fakeRutaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rutas[id]; !ok {
		return apierror.NotFound("ruta no encontrada")
	}
	delete(r.rutas, id)
	return nil
}

func (r *fakeRutaRepo) SiguienteNumeroViaje(_ context.Context) (int, error) {
	max := 0
	for _, ruta := range r.rutas {
		if ruta.NumeroViaje > max {
			max = ruta.NumeroViaje
		}
	}
	return max + 1, nil
}

// ── MantenimientoRepository fake ────────────────────────────────────────────

type fakeMantenimientoRepo struct {
	registros map[uuid.UUID]*model.RegistroMantenimiento
}

func newFakeMantenimientoRepo() *fakeMantenimientoRepo {
	return &fakeMantenimientoRepo{registros: make(map[uuid.UUID]*model.RegistroMantenimiento)}
}

func (r *fakeMantenimientoRepo) List(_ context.Context, filtros map[string]any) ([]model.RegistroMantenimiento, error) {
	var out []model.RegistroMantenimiento
	for _, m := range r.registros {
		if tipo, ok := filtros["tipo"].(string); ok && m.Tipo != tipo {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMantenimientoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RegistroMantenimiento, error) {
	m, ok := r.registros[id]
	if !ok {
		return nil, apierror.NotFound("registro no encontrado")
	}
	cloned := *m
	return &cloned, nil
}

func (r *fakeMantenimientoRepo) Create(_ context.Context, m *model.RegistroMantenimiento) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cloned := *m
	r.registros[m.ID] = &cloned
	return nil
}

func (r *fakeMantenimientoRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.RegistroMantenimiento, error) {
	m, ok := r.registros[id]
	if !ok {
		return nil, apierror.NotFound("registro no encontrado")
	}
	for k, val := range campos {
		switch k {
		case "descripcion":
			m.Descripcion = val.(string)
		case "costo":
			m.Costo = val.(decimal.Decimal)
		case "fecha_salida":
			t := val.(time.Time)
			m.FechaSalida = &t
		case "fecha_pago":
			t := val.(time.Time)
			m.FechaPago = &t
		}
	}
	cloned := *m
	return &cloned, nil
}

func (r *fakeMantenimientoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.registros[id]; !ok {
		return apierror.NotFound("registro no encontrado")
	}
	delete(r.registros, id)
	return nil
}

// ── MultaRepository fake ────────────────────────────────────────────────────

type fakeMultaRepo struct {
	multas map[uuid.UUID]*model.MultaConductor
}

func newFakeMultaRepo() *fakeMultaRepo {
	return &fakeMultaRepo{multas: make(map[uuid.UUID]*model.MultaConductor)}
}

func (r *fakeMultaRepo) List(_ context.Context, filtros map[string]any) ([]model.MultaConductor, error) {
	var out []model.MultaConductor
	for _, m := range r.multas {
		if estado, ok := filtros["estado_pago"].(string); ok && m.EstadoPago != estado {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMultaRepo) Search(_ context.Context, termino string, _ []string) ([]model.MultaConductor, error) {
	var out []model.MultaConductor
	for _, m := range r.multas {
		if containsFold(m.Motivo, termino) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMultaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.MultaConductor, error) {
	m, ok := r.multas[id]
	if !ok {
		return nil, apierror.NotFound("multa no encontrada")
	}
	cloned := *m
	return &cloned, nil
}

func (r *fakeMultaRepo) Create(_ context.Context, m *model.MultaConductor) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cloned := *m
	r.multas[m.ID] = &cloned
	return nil
}

func (r *fakeMultaRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.MultaConductor, error) {
	m, ok := r.multas[id]
	if !ok {
		return nil, apierror.NotFound("multa no encontrada")
	}
	for k, val := range campos {
		switch k {
		case "motivo":
			m.Motivo = val.(string)
		case "monto_emitido":
			m.MontoEmitido = val.(decimal.Decimal)
		case "monto_pagado":
			m.MontoPagado = val.(decimal.Decimal)
		case "estado_pago":
			m.EstadoPago = val.(string)
		}
	}
	cloned := *m
	return &cloned, nil
}

func (r *fakeMultaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.multas[id]; !ok {
		return apierror.NotFound("multa no encontrada")
	}
	delete(r.multas, id)
	return nil
}

// ── PolizaRepository fake ───────────────────────────────────────────────────

type fakePolizaRepo struct {
	polizas map[uuid.UUID]*model.PolizaSeguro
	ahora   func() time.Time
}

func newFakePolizaRepo(ahora func() time.Time) *fakePolizaRepo {
	return &fakePolizaRepo{polizas: make(map[uuid.UUID]*model.PolizaSeguro), ahora: ahora}
}

func (r *fakePolizaRepo) vista(p *model.PolizaSeguro) *model.PolizaVista {
	vig := derived.ResolverVigencia(p.FechaVencimiento, r.ahora(), p.Cancelada)
	return &model.PolizaVista{
		ID:            p.ID,
		NumeroPoliza:  p.NumeroPoliza,
		PlacaVehiculo: p.PlacaVehiculo,
		Aseguradora:   p.Aseguradora,

		FechaInicio:      p.FechaInicio,
		FechaVencimiento: p.FechaVencimiento,
		FechaPago:        p.FechaPago,
		MontoPagado:      p.MontoPagado,
		Cancelada:        p.Cancelada,

		DiasRestantes: vig.DiasRestantes,
		Estado:        vig.Estado,
	}
}

func (r *fakePolizaRepo) List(_ context.Context, _ map[string]any) ([]model.PolizaVista, error) {
	var out []model.PolizaVista
	for _, p := range r.polizas {
		out = append(out, *r.vista(p))
	}
	return out, nil
}

func (r *fakePolizaRepo) Search(_ context.Context, termino string, _ []string) ([]model.PolizaVista, error) {
	var out []model.PolizaVista
	for _, p := range r.polizas {
		if containsFold(p.NumeroPoliza, termino) || containsFold(p.Aseguradora, termino) || containsFold(p.PlacaVehiculo, termino) {
			out = append(out, *r.vista(p))
		}
	}
	return out, nil
}

func (r *fakePolizaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PolizaVista, error) {
	p, ok := r.polizas[id]
	if !ok {
		return nil, apierror.NotFound("póliza no encontrada")
	}
	return r.vista(p), nil
}

func (r *fakePolizaRepo) Create(_ context.Context, p *model.PolizaSeguro) (*model.PolizaVista, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cloned := *p
	r.polizas[p.ID] = &cloned
	return r.vista(&cloned), nil
}

func (r *fakePolizaRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.PolizaVista, error) {
	p, ok := r.polizas[id]
	if !ok {
		return nil, apierror.NotFound("póliza no encontrada")
	}
	for k, val := range campos {
		switch k {
		case "aseguradora":
			p.Aseguradora = val.(string)
		case "fecha_vencimiento":
			p.FechaVencimiento = val.(time.Time)
		case "monto_pagado":
			p.MontoPagado = val.(decimal.Decimal)
		case "cancelada":
			p.Cancelada = val.(bool)
		}
	}
	return r.vista(p), nil
}

func (r *fakePolizaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.polizas[id]; !ok {
		return apierror.NotFound("póliza no encontrada")
	}
	delete(r.polizas, id)
	return nil
}

func (r *fakePolizaRepo) PorVencer(_ context.Context, dias int) ([]model.PolizaVista, error) {
	var out []model.PolizaVista
	for _, p := range r.polizas {
		v := r.vista(p)
		if !v.Cancelada && v.DiasRestantes >= 0 && v.DiasRestantes <= dias {
			out = append(out, *v)
		}
	}
	return out, nil
}

// ── TallerRepository fake ───────────────────────────────────────────────────

type fakeTallerRepo struct {
	talleres map[uuid.UUID]*model.Taller
}

func newFakeTallerRepo() *fakeTallerRepo {
	return &fakeTallerRepo{talleres: make(map[uuid.UUID]*model.Taller)}
}

func (r *fakeTallerRepo) List(_ context.Context, _ map[string]any) ([]model.Taller, error) {
	var out []model.Taller
	for _, t := range r.talleres {
		if t.Activo {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTallerRepo) Search(_ context.Context, termino string, _ []string) ([]model.Taller, error) {
	var out []model.Taller
	for _, t := range r.talleres {
		if containsFold(t.Nombre, termino) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTallerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Taller, error) {
	t, ok := r.talleres[id]
	if !ok {
		return nil, apierror.NotFound("taller no encontrado")
	}
	cloned := *t
	return &cloned, nil
}

func (r *fakeTallerRepo) Create(_ context.Context, t *model.Taller) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cloned := *t
	r.talleres[t.ID] = &cloned
	return nil
}

func (r *fakeTallerRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.Taller, error) {
	t, ok := r.talleres[id]
	if !ok {
		return nil, apierror.NotFound("taller no encontrado")
	}
	for k, val := range campos {
		switch k {
		case "nombre":
			t.Nombre = val.(string)
		case "calificacion":
			t.Calificacion = val.(int)
		case "activo":
			t.Activo = val.(bool)
		}
	}
	cloned := *t
	return &cloned, nil
}

func (r *fakeTallerRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	_, err := r.Update(context.Background(), id, map[string]any{"activo": false})
	return err
}

// ── ImpuestoRepository fake ─────────────────────────────────────────────────

type fakeImpuestoRepo struct {
	impuestos map[uuid.UUID]*model.ImpuestoVehicular
}

func newFakeImpuestoRepo() *fakeImpuestoRepo {
	return &fakeImpuestoRepo{impuestos: make(map[uuid.UUID]*model.ImpuestoVehicular)}
}

func (r *fakeImpuestoRepo) List(_ context.Context, filtros map[string]any) ([]model.ImpuestoVehicular, error) {
	var out []model.ImpuestoVehicular
	for _, i := range r.impuestos {
		if estado, ok := filtros["estado_pago"].(string); ok && i.EstadoPago != estado {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

func (r *fakeImpuestoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ImpuestoVehicular, error) {
	i, ok := r.impuestos[id]
	if !ok {
		return nil, apierror.NotFound("impuesto no encontrado")
	}
	cloned := *i
	return &cloned, nil
}

func (r *fakeImpuestoRepo) Create(_ context.Context, i *model.ImpuestoVehicular) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	cloned := *i
	r.impuestos[i.ID] = &cloned
	return nil
}

func (r *fakeImpuestoRepo) Update(_ context.Context, id uuid.UUID, campos map[string]any) (*model.ImpuestoVehicular, error) {
	i, ok := r.impuestos[id]
	if !ok {
		return nil, apierror.NotFound("impuesto no encontrado")
	}
	for k, val := range campos {
		switch k {
		case "monto":
			i.Monto = val.(decimal.Decimal)
		case "estado_pago":
			i.EstadoPago = val.(string)
		case "fecha_pago":
			t := val.(time.Time)
			i.FechaPago = &t
		}
	}
	cloned := *i
	return &cloned, nil
}

func (r *fakeImpuestoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.impuestos[id]; !ok {
		return apierror.NotFound("impuesto no encontrado")
	}
	delete(r.impuestos, id)
	return nil
}
