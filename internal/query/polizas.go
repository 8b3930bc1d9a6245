package query

import (
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

var camposBusquedaPolizas = []string{"numero_poliza", "placa_vehiculo", "aseguradora"}

var estadosVigencia = map[string]bool{
	derived.VigenciaVigente:   true,
	derived.VigenciaPorVencer: true,
	derived.VigenciaVencida:   true,
	derived.VigenciaCancelada: true,
}

// FiltroPolizas filters the insurance-policy list. Estado is a view column
// (derived), so without a search term it pushes down like any other equality.
type FiltroPolizas struct {
	Termino string `form:"q"`
	Estado  string `form:"estado"`
	Placa   string `form:"placa"`
}

func (f FiltroPolizas) Validar() error {
	if f.Estado != "" && !estadosVigencia[f.Estado] {
		return apierror.Validation("estado de vigencia desconocido: " + f.Estado)
	}
	return nil
}

func (f FiltroPolizas) Plan() Plan {
	if f.Termino != "" {
		return Plan{Termino: f.Termino, CamposBusqueda: camposBusquedaPolizas}
	}
	ig := map[string]any{}
	if f.Estado != "" {
		ig["estado"] = f.Estado
	}
	if f.Placa != "" {
		ig["placa_vehiculo"] = f.Placa
	}
	return Plan{Igualdades: ig}
}

func (f FiltroPolizas) Predicados() []Predicado[model.PolizaVista] {
	var preds []Predicado[model.PolizaVista]
	if f.Termino != "" {
		t := f.Termino
		preds = append(preds, func(p model.PolizaVista) bool {
			return contieneAlguno(t, p.NumeroPoliza, p.PlacaVehiculo, p.Aseguradora)
		})
	}
	if f.Estado != "" {
		estado := f.Estado
		preds = append(preds, func(p model.PolizaVista) bool { return p.Estado == estado })
	}
	if f.Placa != "" {
		placa := f.Placa
		preds = append(preds, func(p model.PolizaVista) bool { return p.PlacaVehiculo == placa })
	}
	return preds
}

// FiltroConductores filters the drivers directory.
type FiltroConductores struct {
	Termino string `form:"q"`
	Activo  string `form:"activo"`
}

var camposBusquedaConductores = []string{"nombre", "apellido", "documento", "numero_licencia"}

func (f FiltroConductores) Validar() error { return nil }

func (f FiltroConductores) Plan() Plan {
	if f.Termino != "" {
		return Plan{Termino: f.Termino, CamposBusqueda: camposBusquedaConductores}
	}
	ig := map[string]any{}
	if f.Activo != "all" {
		ig["activo"] = true
	}
	return Plan{Igualdades: ig}
}

func (f FiltroConductores) Predicados() []Predicado[model.Conductor] {
	var preds []Predicado[model.Conductor]
	if f.Termino != "" {
		t := f.Termino
		preds = append(preds, func(c model.Conductor) bool {
			return contieneAlguno(t, c.Nombre, c.Apellido, c.Documento, c.NumeroLicencia)
		})
	}
	if f.Activo != "all" {
		preds = append(preds, func(c model.Conductor) bool { return c.Activo })
	}
	return preds
}
