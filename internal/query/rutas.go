package query

import (
	"time"

	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

var camposBusquedaRutas = []string{"origen", "destino", "placa_vehiculo", "estacion_servicio"}

// FiltroRutas filters the trip list. The date range is a client-side
// predicate in both modes (the generic repository only pushes equalities).
type FiltroRutas struct {
	Termino     string     `form:"q"`
	VehiculoID  string     `form:"vehiculo_id"`
	ConductorID string     `form:"conductor_id"`
	Desde       *time.Time `form:"desde" time_format:"2006-01-02"`
	Hasta       *time.Time `form:"hasta" time_format:"2006-01-02"`
}

func (f FiltroRutas) Validar() error {
	if f.VehiculoID != "" {
		if _, err := uuid.Parse(f.VehiculoID); err != nil {
			return apierror.Validation("vehiculo_id inválido")
		}
	}
	if f.ConductorID != "" {
		if _, err := uuid.Parse(f.ConductorID); err != nil {
			return apierror.Validation("conductor_id inválido")
		}
	}
	if f.Desde != nil && f.Hasta != nil && f.Hasta.Before(*f.Desde) {
		return apierror.Validation("rango de fechas invertido")
	}
	return nil
}

func (f FiltroRutas) Plan() Plan {
	if f.Termino != "" {
		return Plan{Termino: f.Termino, CamposBusqueda: camposBusquedaRutas}
	}
	ig := map[string]any{}
	if f.VehiculoID != "" {
		ig["vehiculo_id"] = f.VehiculoID
	}
	if f.ConductorID != "" {
		ig["conductor_id"] = f.ConductorID
	}
	return Plan{Igualdades: ig}
}

func (f FiltroRutas) Predicados() []Predicado[model.RutaVista] {
	var preds []Predicado[model.RutaVista]
	if f.Termino != "" {
		t := f.Termino
		preds = append(preds, func(r model.RutaVista) bool {
			return contieneAlguno(t, r.Origen, r.Destino, r.PlacaVehiculo, r.EstacionServicio)
		})
	}
	if f.VehiculoID != "" {
		if id, err := uuid.Parse(f.VehiculoID); err == nil {
			preds = append(preds, func(r model.RutaVista) bool { return r.VehiculoID == id })
		}
	}
	if f.ConductorID != "" {
		if id, err := uuid.Parse(f.ConductorID); err == nil {
			preds = append(preds, func(r model.RutaVista) bool { return r.ConductorID == id })
		}
	}
	if f.Desde != nil {
		desde := *f.Desde
		preds = append(preds, func(r model.RutaVista) bool { return !r.FechaSalida.Before(desde) })
	}
	if f.Hasta != nil {
		hasta := *f.Hasta
		preds = append(preds, func(r model.RutaVista) bool { return !r.FechaSalida.After(hasta) })
	}
	return preds
}

// FiltroMantenimientos filters maintenance records. Estado is derived from
// dates and not stored in the base table, so it is always client-side.
type FiltroMantenimientos struct {
	Tipo       string `form:"tipo"`
	Estado     string `form:"estado"`
	VehiculoID string `form:"vehiculo_id"`
	TallerID   string `form:"taller_id"`
}

var estadosRegistro = map[string]bool{
	derived.RegistroEnProceso:     true,
	derived.RegistroPendientePago: true,
	derived.RegistroCompletado:    true,
}

func (f FiltroMantenimientos) Validar() error {
	if f.Tipo != "" && f.Tipo != "Preventivo" && f.Tipo != "Correctivo" {
		return apierror.Validation("tipo de mantenimiento desconocido: " + f.Tipo)
	}
	if f.Estado != "" && !estadosRegistro[f.Estado] {
		return apierror.Validation("estado de registro desconocido: " + f.Estado)
	}
	if f.VehiculoID != "" {
		if _, err := uuid.Parse(f.VehiculoID); err != nil {
			return apierror.Validation("vehiculo_id inválido")
		}
	}
	if f.TallerID != "" {
		if _, err := uuid.Parse(f.TallerID); err != nil {
			return apierror.Validation("taller_id inválido")
		}
	}
	return nil
}

func (f FiltroMantenimientos) Plan() Plan {
	ig := map[string]any{}
	if f.Tipo != "" {
		ig["tipo"] = f.Tipo
	}
	if f.VehiculoID != "" {
		ig["vehiculo_id"] = f.VehiculoID
	}
	if f.TallerID != "" {
		ig["taller_id"] = f.TallerID
	}
	return Plan{Igualdades: ig}
}

func (f FiltroMantenimientos) Predicados() []Predicado[model.RegistroMantenimiento] {
	var preds []Predicado[model.RegistroMantenimiento]
	if f.Tipo != "" {
		tipo := f.Tipo
		preds = append(preds, func(r model.RegistroMantenimiento) bool { return r.Tipo == tipo })
	}
	if f.Estado != "" {
		estado := f.Estado
		preds = append(preds, func(r model.RegistroMantenimiento) bool {
			return derived.ResolverEstadoRegistro(r.FechaEntrada, r.FechaSalida, r.FechaPago) == estado
		})
	}
	if f.VehiculoID != "" {
		if id, err := uuid.Parse(f.VehiculoID); err == nil {
			preds = append(preds, func(r model.RegistroMantenimiento) bool { return r.VehiculoID == id })
		}
	}
	if f.TallerID != "" {
		if id, err := uuid.Parse(f.TallerID); err == nil {
			preds = append(preds, func(r model.RegistroMantenimiento) bool { return r.TallerID == id })
		}
	}
	return preds
}
