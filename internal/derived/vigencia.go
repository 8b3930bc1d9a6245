package derived

import "time"

// Estados de vigencia, shared by pólizas de seguro and licencias de conducir.
const (
	VigenciaVigente   = "vigente"
	VigenciaPorVencer = "por_vencer"
	VigenciaVencida   = "vencida"
	VigenciaCancelada = "cancelada"
)

// Niveles de alerta para despliegue.
const (
	NivelNormal      = "normal"      // > 30 días
	NivelAdvertencia = "advertencia" // 8–30 días
	NivelCritico     = "critico"     // 1–7 días
	NivelVencido     = "vencido"     // <= 0 días
)

type ResultadoVigencia struct {
	DiasRestantes int
	Estado        string
	Nivel         string
}

// ResolverVigencia computes expiry state from the expiry date and "now",
// with calendar-day truncation (a policy expiring later today counts as 0
// days remaining, never fractional). The explicit cancelled flag wins over
// dates unconditionally.
func ResolverVigencia(vencimiento, ahora time.Time, cancelada bool) ResultadoVigencia {
	dias := diasCalendario(ahora, vencimiento)

	if cancelada {
		return ResultadoVigencia{DiasRestantes: dias, Estado: VigenciaCancelada, Nivel: NivelNormal}
	}

	switch {
	case dias > 30:
		return ResultadoVigencia{DiasRestantes: dias, Estado: VigenciaVigente, Nivel: NivelNormal}
	case dias > 7:
		return ResultadoVigencia{DiasRestantes: dias, Estado: VigenciaPorVencer, Nivel: NivelAdvertencia}
	case dias > 0:
		return ResultadoVigencia{DiasRestantes: dias, Estado: VigenciaPorVencer, Nivel: NivelCritico}
	default:
		return ResultadoVigencia{DiasRestantes: dias, Estado: VigenciaVencida, Nivel: NivelVencido}
	}
}

// diasCalendario truncates both instants to their calendar date and returns
// the whole-day difference (negative when hasta is in the past).
func diasCalendario(desde, hasta time.Time) int {
	d := fecha(desde)
	h := fecha(hasta)
	return int(h.Sub(d).Hours() / 24)
}

func fecha(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
