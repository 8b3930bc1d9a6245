package sincro

import (
	"time"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// Sesion is the explicitly constructed state container for one client
// session: one mirror per entity collection. It is created at login (or app
// start) and torn down with Close at logout — never a package-level
// singleton.
type Sesion struct {
	Vehiculos      *Coleccion[model.VehiculoVista, StatsVehiculos]
	Rutas          *Coleccion[model.RutaVista, StatsRutas]
	Polizas        *Coleccion[model.PolizaVista, StatsPolizas]
	Multas         *Coleccion[model.MultaConductor, StatsMultas]
	Mantenimientos *Coleccion[model.RegistroMantenimiento, StatsMantenimientos]
	Impuestos      *Coleccion[model.ImpuestoVehicular, StatsImpuestos]
	Conductores    *Coleccion[model.Conductor, StatsConductores]
}

// NewSesion builds the per-session container with empty mirrors.
func NewSesion() *Sesion {
	return &Sesion{
		Vehiculos: NewColeccion(func(v model.VehiculoVista) uuid.UUID { return v.ID }, AgregarVehiculos),
		Rutas:     NewColeccion(func(r model.RutaVista) uuid.UUID { return r.ID }, AgregarRutas),
		Polizas:   NewColeccion(func(p model.PolizaVista) uuid.UUID { return p.ID }, AgregarPolizas),
		Multas:    NewColeccion(func(m model.MultaConductor) uuid.UUID { return m.ID }, AgregarMultas),
		Mantenimientos: NewColeccion(
			func(r model.RegistroMantenimiento) uuid.UUID { return r.ID }, AgregarMantenimientos),
		Impuestos: NewColeccion(func(i model.ImpuestoVehicular) uuid.UUID { return i.ID }, AgregarImpuestos),
		Conductores: NewColeccion(
			func(c model.Conductor) uuid.UUID { return c.ID }, AgregadorConductores(time.Now)),
	}
}

// Close drops every mirror. The zero-value collections keep working if
// touched after Close, but the session must not be reused.
func (s *Sesion) Close() {
	s.Vehiculos.SetRegistros(nil)
	s.Rutas.SetRegistros(nil)
	s.Polizas.SetRegistros(nil)
	s.Multas.SetRegistros(nil)
	s.Mantenimientos.SetRegistros(nil)
	s.Impuestos.SetRegistros(nil)
	s.Conductores.SetRegistros(nil)
}
