package sincro

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/derived"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// Aggregate stats per collection. Each Agregar* function recomputes from the
// full mirror; none of these values is ever persisted.

type StatsVehiculos struct {
	Total           int            `json:"total"`
	PorEstado       map[string]int `json:"por_estado"`
	CiclosInvalidos int            `json:"ciclos_invalidos"`
}

func AgregarVehiculos(regs []model.VehiculoVista) StatsVehiculos {
	s := StatsVehiculos{PorEstado: map[string]int{}}
	for _, v := range regs {
		s.Total++
		s.PorEstado[v.EstadoMantenimiento]++
		if v.CicloMantenimientoKm <= 0 {
			s.CiclosInvalidos++
		}
	}
	return s
}

type StatsRutas struct {
	Total        int             `json:"total"`
	IngresoTotal decimal.Decimal `json:"ingreso_total"`
	GastoTotal   decimal.Decimal `json:"gasto_total"`
	GananciaNeta decimal.Decimal `json:"ganancia_neta"`
	KmRecorridos int             `json:"km_recorridos"`
}

func AgregarRutas(regs []model.RutaVista) StatsRutas {
	s := StatsRutas{
		IngresoTotal: decimal.Zero,
		GastoTotal:   decimal.Zero,
		GananciaNeta: decimal.Zero,
	}
	for _, r := range regs {
		s.Total++
		s.IngresoTotal = s.IngresoTotal.Add(r.Ingreso)
		s.GastoTotal = s.GastoTotal.Add(r.GastoTotal)
		s.GananciaNeta = s.GananciaNeta.Add(r.GananciaNeta)
		s.KmRecorridos += r.DistanciaKm
	}
	return s
}

type StatsPolizas struct {
	Total       int             `json:"total"`
	PorEstado   map[string]int  `json:"por_estado"`
	MontoPagado decimal.Decimal `json:"monto_pagado"`
}

func AgregarPolizas(regs []model.PolizaVista) StatsPolizas {
	s := StatsPolizas{PorEstado: map[string]int{}, MontoPagado: decimal.Zero}
	for _, p := range regs {
		s.Total++
		s.PorEstado[p.Estado]++
		s.MontoPagado = s.MontoPagado.Add(p.MontoPagado)
	}
	return s
}

type StatsMultas struct {
	Total          int             `json:"total"`
	PorEstadoPago  map[string]int  `json:"por_estado_pago"`
	MontoPendiente decimal.Decimal `json:"monto_pendiente"`
}

func AgregarMultas(regs []model.MultaConductor) StatsMultas {
	s := StatsMultas{PorEstadoPago: map[string]int{}, MontoPendiente: decimal.Zero}
	for _, m := range regs {
		s.Total++
		s.PorEstadoPago[m.EstadoPago]++
		if saldo, err := derived.ResolverSaldoMulta(m.MontoEmitido, m.MontoPagado); err == nil {
			s.MontoPendiente = s.MontoPendiente.Add(saldo.MontoPendiente)
		}
	}
	return s
}

type StatsMantenimientos struct {
	Total      int             `json:"total"`
	PorEstado  map[string]int  `json:"por_estado"`
	CostoTotal decimal.Decimal `json:"costo_total"`
}

func AgregarMantenimientos(regs []model.RegistroMantenimiento) StatsMantenimientos {
	s := StatsMantenimientos{PorEstado: map[string]int{}, CostoTotal: decimal.Zero}
	for _, r := range regs {
		s.Total++
		s.PorEstado[derived.ResolverEstadoRegistro(r.FechaEntrada, r.FechaSalida, r.FechaPago)]++
		s.CostoTotal = s.CostoTotal.Add(r.Costo)
	}
	return s
}

type StatsImpuestos struct {
	Total          int             `json:"total"`
	PorEstadoPago  map[string]int  `json:"por_estado_pago"`
	MontoPendiente decimal.Decimal `json:"monto_pendiente"`
}

func AgregarImpuestos(regs []model.ImpuestoVehicular) StatsImpuestos {
	s := StatsImpuestos{PorEstadoPago: map[string]int{}, MontoPendiente: decimal.Zero}
	for _, i := range regs {
		s.Total++
		s.PorEstadoPago[i.EstadoPago]++
		if i.EstadoPago != "pagado" {
			s.MontoPendiente = s.MontoPendiente.Add(i.Monto)
		}
	}
	return s
}

type StatsConductores struct {
	Total       int            `json:"total"`
	Activos     int            `json:"activos"`
	PorLicencia map[string]int `json:"por_licencia"`
}

// AgregadorConductores needs "now" for the license vigencia buckets, so the
// clock is injected instead of read inside the aggregator.
func AgregadorConductores(ahora func() time.Time) Agregador[model.Conductor, StatsConductores] {
	return func(regs []model.Conductor) StatsConductores {
		s := StatsConductores{PorLicencia: map[string]int{}}
		now := ahora()
		for _, c := range regs {
			s.Total++
			if c.Activo {
				s.Activos++
			}
			v := derived.ResolverVigencia(c.VencimientoLicencia, now, false)
			s.PorLicencia[v.Estado]++
		}
		return s
	}
}
