// Package derived computes every display field that is a pure function of
// stored fields plus "now": maintenance status, vigencia of pólizas and
// licencias, route economics, maintenance-record status, and fine balances.
// The DB views compute the same formulas server-side; this package is the
// client-side counterpart — the two must always agree, so all rules live
// here and the view SQL mirrors them.
//
// No function here performs I/O. Business edge cases (zero denominators)
// return a documented sentinel, never an error; structurally invalid input
// (odometer regression, negative money) returns a ValidationError because it
// signals corrupted upstream data that must not be masked.
package derived

import (
	"fmt"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
)

// Estados de mantenimiento, in increasing urgency.
const (
	MantenimientoAlDia   = "Al día"
	MantenimientoProximo = "Próximo"
	MantenimientoUrgente = "Urgente"
	MantenimientoVencido = "Vencido"
)

// Umbrales sobre el kilometraje restante (km).
const (
	umbralProximo = 1000 // restante > 1000 → Al día; 501–1000 → Próximo
	umbralUrgente = 500  // 1–500 → Urgente; <= 0 → Vencido
)

// PlanMantenimiento is the slice of a vehicle the resolver needs.
type PlanMantenimiento struct {
	CicloKm            int
	KmUltimoPreventivo int
	KmActual           int
}

type ResultadoMantenimiento struct {
	KmRestante int
	Estado     string
	// CicloInvalido marks a configuration error (ciclo <= 0). The vehicle is
	// reported Al día so it never blocks operation, but callers should flag it.
	CicloInvalido bool
}

// ResolverMantenimiento computes the remaining preventive-maintenance
// distance and its status bucket:
//
//	restante = ciclo − (kmActual − kmUltimoPreventivo)
//
// The raw value may go negative to signal overdue; clamping at zero is a
// display concern, not done here.
func ResolverMantenimiento(p PlanMantenimiento) (ResultadoMantenimiento, error) {
	if p.KmActual < 0 || p.KmUltimoPreventivo < 0 {
		return ResultadoMantenimiento{}, apierror.Validation(
			fmt.Sprintf("kilometraje negativo: actual=%d, último preventivo=%d", p.KmActual, p.KmUltimoPreventivo))
	}
	if p.KmActual < p.KmUltimoPreventivo {
		return ResultadoMantenimiento{}, apierror.Validation(
			fmt.Sprintf("kilometraje actual (%d) menor al último preventivo (%d)", p.KmActual, p.KmUltimoPreventivo))
	}
	if p.CicloKm <= 0 {
		// Configuration error, not data corruption: report Al día with a flag.
		return ResultadoMantenimiento{
			KmRestante:    0,
			Estado:        MantenimientoAlDia,
			CicloInvalido: true,
		}, nil
	}

	restante := p.CicloKm - (p.KmActual - p.KmUltimoPreventivo)
	return ResultadoMantenimiento{
		KmRestante: restante,
		Estado:     estadoPorKmRestante(restante),
	}, nil
}

func estadoPorKmRestante(restante int) string {
	switch {
	case restante > umbralProximo:
		return MantenimientoAlDia
	case restante > umbralUrgente:
		return MantenimientoProximo
	case restante > 0:
		return MantenimientoUrgente
	default:
		return MantenimientoVencido
	}
}
