package query

import (
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// camposBusquedaVehiculos are the text columns the server searches.
var camposBusquedaVehiculos = []string{"placa", "marca", "modelo", "numero_serie"}

var estadosMantenimiento = map[string]bool{
	derived.MantenimientoAlDia:   true,
	derived.MantenimientoProximo: true,
	derived.MantenimientoUrgente: true,
	derived.MantenimientoVencido: true,
}

// FiltroVehiculos is the filter spec for the vehicle list. Empty fields mean
// "no constraint". EstadoMantenimiento is a view column, so it may push down
// as an equality predicate when there is no search term.
type FiltroVehiculos struct {
	Termino             string `form:"q"`
	Tipo                string `form:"tipo"`
	EstadoMantenimiento string `form:"estado_mantenimiento"`
	// SoloActivos defaults to true; pass activo=all to include bajas.
	Activo string `form:"activo"`
}

func (f FiltroVehiculos) Validar() error {
	if f.EstadoMantenimiento != "" && !estadosMantenimiento[f.EstadoMantenimiento] {
		return apierror.Validation("estado_mantenimiento desconocido: " + f.EstadoMantenimiento)
	}
	return nil
}

func (f FiltroVehiculos) Plan() Plan {
	if f.Termino != "" {
		return Plan{Termino: f.Termino, CamposBusqueda: camposBusquedaVehiculos}
	}
	ig := map[string]any{}
	if f.Tipo != "" {
		ig["tipo"] = f.Tipo
	}
	if f.EstadoMantenimiento != "" {
		ig["estado_mantenimiento"] = f.EstadoMantenimiento
	}
	if f.Activo != "all" {
		ig["activo"] = true
	}
	return Plan{Igualdades: ig}
}

// Predicados re-applies every active constraint client-side.
func (f FiltroVehiculos) Predicados() []Predicado[model.VehiculoVista] {
	var preds []Predicado[model.VehiculoVista]
	if f.Termino != "" {
		t := f.Termino
		preds = append(preds, func(v model.VehiculoVista) bool {
			return contieneAlguno(t, v.Placa, v.Marca, v.Modelo, v.NumeroSerie)
		})
	}
	if f.Tipo != "" {
		tipo := f.Tipo
		preds = append(preds, func(v model.VehiculoVista) bool { return v.Tipo == tipo })
	}
	if f.EstadoMantenimiento != "" {
		estado := f.EstadoMantenimiento
		preds = append(preds, func(v model.VehiculoVista) bool { return v.EstadoMantenimiento == estado })
	}
	if f.Activo != "all" {
		preds = append(preds, func(v model.VehiculoVista) bool { return v.Activo })
	}
	return preds
}
