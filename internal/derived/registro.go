package derived

import "time"

// Estados de un registro de mantenimiento. Computed by a trigger in the
// original schema; reproduced here with the same precedence so the status
// can be filtered on consistently.
const (
	RegistroEnProceso     = "En Proceso"
	RegistroPendientePago = "Pendiente Pago"
	RegistroCompletado    = "Completado"
)

// ResolverEstadoRegistro applies the precedence:
//
//	sin fecha de salida                → En Proceso
//	con salida, sin fecha de pago      → Pendiente Pago
//	con salida y pago                  → Completado
//
// The entry date does not participate in the precedence but is part of the
// record's identity; it is accepted to keep the contract explicit.
func ResolverEstadoRegistro(entrada time.Time, salida, pago *time.Time) string {
	_ = entrada
	switch {
	case salida == nil:
		return RegistroEnProceso
	case pago == nil:
		return RegistroPendientePago
	default:
		return RegistroCompletado
	}
}
