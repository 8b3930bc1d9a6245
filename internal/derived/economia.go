package derived

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
)

// EntradaEconomia carries the stored route fields the resolver consumes.
// Any derived value the client sent alongside these is ignored upstream.
type EntradaEconomia struct {
	KilometrajeInicio int
	KilometrajeFin    int

	PesoCargaKg decimal.Decimal
	TarifaPorKg decimal.Decimal

	CostoCombustible decimal.Decimal
	GalonesCargados  decimal.Decimal
	PrecioGalon      decimal.Decimal

	Peajes  decimal.Decimal
	Comidas decimal.Decimal
	Otros   decimal.Decimal
}

// EconomiaRuta is the full derived-economics set. All values are exact
// decimals; rounding happens only at display time.
type EconomiaRuta struct {
	DistanciaKm            int
	Ingreso                decimal.Decimal
	GastoTotal             decimal.Decimal
	GananciaNeta           decimal.Decimal
	RendimientoCombustible decimal.Decimal // km por galón; 0 si no hubo carga
	IngresoPorKm           decimal.Decimal // 0 si distancia es 0
}

// ResolverEconomiaRuta derives the economics of one trip:
//
//	distancia   = kmFin − kmInicio          (debe ser > 0)
//	ingreso     = pesoCarga × tarifaPorKg
//	gastoTotal  = combustible + peajes + comidas + otros
//	ganancia    = ingreso − gastoTotal
//	rendimiento = distancia / galones       (0 si galones = 0)
//	ingreso/km  = ingreso / distancia       (0 si distancia = 0)
//
// Odometer regression and negative monetary/fuel fields are structural
// corruption and return a ValidationError.
func ResolverEconomiaRuta(e EntradaEconomia) (EconomiaRuta, error) {
	if e.KilometrajeFin <= e.KilometrajeInicio {
		return EconomiaRuta{}, apierror.Validation(
			fmt.Sprintf("kilometraje final (%d) debe ser mayor al inicial (%d)", e.KilometrajeFin, e.KilometrajeInicio))
	}
	if e.GalonesCargados.IsNegative() || e.PrecioGalon.IsNegative() {
		return EconomiaRuta{}, apierror.Validation("volumen o precio de combustible negativo")
	}
	for _, m := range []struct {
		nombre string
		monto  decimal.Decimal
	}{
		{"peso de carga", e.PesoCargaKg},
		{"tarifa por kg", e.TarifaPorKg},
		{"costo de combustible", e.CostoCombustible},
		{"peajes", e.Peajes},
		{"comidas", e.Comidas},
		{"otros gastos", e.Otros},
	} {
		if m.monto.IsNegative() {
			return EconomiaRuta{}, apierror.Validation(m.nombre + " negativo")
		}
	}

	distancia := e.KilometrajeFin - e.KilometrajeInicio
	distanciaDec := decimal.NewFromInt(int64(distancia))

	ingreso := e.PesoCargaKg.Mul(e.TarifaPorKg)
	gastoTotal := e.CostoCombustible.Add(e.Peajes).Add(e.Comidas).Add(e.Otros)

	rendimiento := decimal.Zero
	if !e.GalonesCargados.IsZero() {
		rendimiento = distanciaDec.Div(e.GalonesCargados)
	}

	// distancia > 0 ya está garantizado, pero el guard queda por simetría
	// con la vista SQL (NULLIF en el divisor).
	ingresoPorKm := decimal.Zero
	if distancia > 0 {
		ingresoPorKm = ingreso.Div(distanciaDec)
	}

	return EconomiaRuta{
		DistanciaKm:            distancia,
		Ingreso:                ingreso,
		GastoTotal:             gastoTotal,
		GananciaNeta:           ingreso.Sub(gastoTotal),
		RendimientoCombustible: rendimiento,
		IngresoPorKm:           ingresoPorKm,
	}, nil
}
