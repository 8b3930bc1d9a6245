package derived

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestResolverEconomiaRuta_EscenarioCompleto(t *testing.T) {
	// km 1000→1500, 2000kg × 5/kg, combustible 300 + 50 + 40 + 10, 20 gal
	eco, err := ResolverEconomiaRuta(EntradaEconomia{
		KilometrajeInicio: 1000,
		KilometrajeFin:    1500,
		PesoCargaKg:       d("2000"),
		TarifaPorKg:       d("5"),
		CostoCombustible:  d("300"),
		GalonesCargados:   d("20"),
		PrecioGalon:       d("15"),
		Peajes:            d("50"),
		Comidas:           d("40"),
		Otros:             d("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, 500, eco.DistanciaKm)
	assert.True(t, eco.Ingreso.Equal(d("10000")), "ingreso = %s", eco.Ingreso)
	assert.True(t, eco.GastoTotal.Equal(d("400")), "gasto = %s", eco.GastoTotal)
	assert.True(t, eco.GananciaNeta.Equal(d("9600")), "ganancia = %s", eco.GananciaNeta)
	assert.True(t, eco.RendimientoCombustible.Equal(d("25")), "rendimiento = %s", eco.RendimientoCombustible)
	assert.True(t, eco.IngresoPorKm.Equal(d("20")), "ingreso/km = %s", eco.IngresoPorKm)
}

func TestResolverEconomiaRuta_SinCombustible(t *testing.T) {
	// galones = 0 → rendimiento 0, nunca división por cero
	eco, err := ResolverEconomiaRuta(EntradaEconomia{
		KilometrajeInicio: 100,
		KilometrajeFin:    200,
		PesoCargaKg:       d("500"),
		TarifaPorKg:       d("2"),
	})
	require.NoError(t, err)
	assert.True(t, eco.RendimientoCombustible.IsZero())
	assert.True(t, eco.GananciaNeta.Equal(d("1000")))
}

func TestResolverEconomiaRuta_RetrocesoOdometro(t *testing.T) {
	for _, fin := range []int{1000, 999} {
		_, err := ResolverEconomiaRuta(EntradaEconomia{
			KilometrajeInicio: 1000,
			KilometrajeFin:    fin,
			PesoCargaKg:       d("1"),
			TarifaPorKg:       d("1"),
		})
		require.Error(t, err, "fin=%d", fin)
		assert.True(t, apierror.IsValidation(err))
	}
}

func TestResolverEconomiaRuta_MontosNegativos(t *testing.T) {
	base := EntradaEconomia{
		KilometrajeInicio: 0,
		KilometrajeFin:    100,
		PesoCargaKg:       d("100"),
		TarifaPorKg:       d("3"),
	}

	casos := []func(*EntradaEconomia){
		func(e *EntradaEconomia) { e.GalonesCargados = d("-1") },
		func(e *EntradaEconomia) { e.PrecioGalon = d("-0.01") },
		func(e *EntradaEconomia) { e.Peajes = d("-5") },
		func(e *EntradaEconomia) { e.TarifaPorKg = d("-3") },
	}
	for i, mutar := range casos {
		e := base
		mutar(&e)
		_, err := ResolverEconomiaRuta(e)
		require.Error(t, err, "caso %d", i)
		assert.True(t, apierror.IsValidation(err))
	}
}

func TestResolverEstadoRegistro_Precedencia(t *testing.T) {
	entrada := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	salida := entrada.AddDate(0, 0, 3)
	pago := salida.AddDate(0, 0, 15)

	// Escenario D: la misma orden avanza por los tres estados.
	assert.Equal(t, RegistroEnProceso, ResolverEstadoRegistro(entrada, nil, nil))
	assert.Equal(t, RegistroPendientePago, ResolverEstadoRegistro(entrada, &salida, nil))
	assert.Equal(t, RegistroCompletado, ResolverEstadoRegistro(entrada, &salida, &pago))

	// Pago sin salida no ocurre en el esquema, pero la precedencia manda:
	// sin salida siempre es En Proceso.
	assert.Equal(t, RegistroEnProceso, ResolverEstadoRegistro(entrada, nil, &pago))
}

func TestResolverSaldoMulta(t *testing.T) {
	s, err := ResolverSaldoMulta(d("800"), d("200"))
	require.NoError(t, err)
	assert.True(t, s.MontoPendiente.Equal(d("600")))
	assert.True(t, s.PorcentajePagado.Equal(d("25")))

	// monto emitido 0 → 0%, sin error
	s, err = ResolverSaldoMulta(decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, s.PorcentajePagado.IsZero())

	_, err = ResolverSaldoMulta(d("-10"), decimal.Zero)
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
}
