package query

import (
	"github.com/google/uuid"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

var camposBusquedaMultas = []string{"motivo"}

var estadosPagoMulta = map[string]bool{
	"pagado":    true,
	"pendiente": true,
	"parcial":   true,
	"vencido":   true,
}

// FiltroMultas filters the fines list. EstadoPago and ConductorID are
// discrete filters; with a search term present they apply only client-side.
type FiltroMultas struct {
	Termino     string `form:"q"`
	EstadoPago  string `form:"estado_pago"`
	ConductorID string `form:"conductor_id"`
}

func (f FiltroMultas) Validar() error {
	if f.EstadoPago != "" && !estadosPagoMulta[f.EstadoPago] {
		return apierror.Validation("estado_pago desconocido: " + f.EstadoPago)
	}
	if f.ConductorID != "" {
		if _, err := uuid.Parse(f.ConductorID); err != nil {
			return apierror.Validation("conductor_id inválido")
		}
	}
	return nil
}

func (f FiltroMultas) Plan() Plan {
	if f.Termino != "" {
		return Plan{Termino: f.Termino, CamposBusqueda: camposBusquedaMultas}
	}
	ig := map[string]any{}
	if f.EstadoPago != "" {
		ig["estado_pago"] = f.EstadoPago
	}
	if f.ConductorID != "" {
		ig["conductor_id"] = f.ConductorID
	}
	return Plan{Igualdades: ig}
}

func (f FiltroMultas) Predicados() []Predicado[model.MultaConductor] {
	var preds []Predicado[model.MultaConductor]
	if f.Termino != "" {
		t := f.Termino
		preds = append(preds, func(m model.MultaConductor) bool { return Contiene(m.Motivo, t) })
	}
	if f.EstadoPago != "" {
		estado := f.EstadoPago
		preds = append(preds, func(m model.MultaConductor) bool { return m.EstadoPago == estado })
	}
	if f.ConductorID != "" {
		id, err := uuid.Parse(f.ConductorID)
		if err == nil {
			preds = append(preds, func(m model.MultaConductor) bool { return m.ConductorID == id })
		}
	}
	return preds
}

// FiltroImpuestos filters vehicle taxes by payment state, year, and vehicle.
type FiltroImpuestos struct {
	EstadoPago string `form:"estado_pago"`
	Anio       int    `form:"anio"`
	VehiculoID string `form:"vehiculo_id"`
}

var estadosPagoImpuesto = map[string]bool{
	"pagado":    true,
	"pendiente": true,
	"vencido":   true,
}

func (f FiltroImpuestos) Validar() error {
	if f.EstadoPago != "" && !estadosPagoImpuesto[f.EstadoPago] {
		return apierror.Validation("estado_pago desconocido: " + f.EstadoPago)
	}
	if f.VehiculoID != "" {
		if _, err := uuid.Parse(f.VehiculoID); err != nil {
			return apierror.Validation("vehiculo_id inválido")
		}
	}
	return nil
}

func (f FiltroImpuestos) Plan() Plan {
	ig := map[string]any{}
	if f.EstadoPago != "" {
		ig["estado_pago"] = f.EstadoPago
	}
	if f.Anio != 0 {
		ig["anio"] = f.Anio
	}
	if f.VehiculoID != "" {
		ig["vehiculo_id"] = f.VehiculoID
	}
	return Plan{Igualdades: ig}
}

func (f FiltroImpuestos) Predicados() []Predicado[model.ImpuestoVehicular] {
	var preds []Predicado[model.ImpuestoVehicular]
	if f.EstadoPago != "" {
		estado := f.EstadoPago
		preds = append(preds, func(i model.ImpuestoVehicular) bool { return i.EstadoPago == estado })
	}
	if f.Anio != 0 {
		anio := f.Anio
		preds = append(preds, func(i model.ImpuestoVehicular) bool { return i.Anio == anio })
	}
	if f.VehiculoID != "" {
		id, err := uuid.Parse(f.VehiculoID)
		if err == nil {
			preds = append(preds, func(i model.ImpuestoVehicular) bool { return i.VehiculoID == id })
		}
	}
	return preds
}
