package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
)

func setupRutaService(t *testing.T) (RutaService, *fakeRutaRepo, *fakeVehiculoRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	vehiculos := newFakeVehiculoRepo()
	conductores := newFakeConductorRepo()
	rutas := newFakeRutaRepo(vehiculos)

	vehiculo := &model.Vehiculo{
		Tipo:                 "camión",
		Marca:                "Volvo",
		Modelo:               "FH16",
		Placa:                "ABC-123",
		CicloMantenimientoKm: 5000,
		KilometrajeInicial:   10000,
		KilometrajeUltimoPreventivo: 10000,
		KilometrajeActual:           10000,
		Activo:                      true,
	}
	_, err := vehiculos.Create(context.Background(), vehiculo)
	require.NoError(t, err)

	conductor := &model.Conductor{
		Nombre:              "Pedro",
		Apellido:            "Gómez",
		Documento:           "12345678",
		NumeroLicencia:      "L-9001",
		VencimientoLicencia: time.Now().AddDate(1, 0, 0),
		Activo:              true,
	}
	require.NoError(t, conductores.Create(context.Background(), conductor))

	svc := NewRutaService(rutas, vehiculos, conductores, nil)
	return svc, rutas, vehiculos, vehiculo.ID, conductor.ID
}

func crearRutaReq(vehiculoID, conductorID uuid.UUID) dto.CrearRutaRequest {
	salida := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	return dto.CrearRutaRequest{
		VehiculoID:  vehiculoID.String(),
		ConductorID: conductorID.String(),

		Origen:       "Lima",
		Destino:      "Arequipa",
		FechaSalida:  salida,
		FechaLlegada: salida.Add(18 * time.Hour),

		KilometrajeInicio: 10000,
		KilometrajeFin:    11000,

		PesoCargaKg: decimal.NewFromInt(8000),
		TarifaPorKg: decimal.RequireFromString("2.50"),

		PrecioGalon:      decimal.RequireFromString("15.00"),
		GalonesCargados:  decimal.NewFromInt(40),
		CostoCombustible: decimal.NewFromInt(600),

		Peajes:  decimal.NewFromInt(120),
		Comidas: decimal.NewFromInt(80),
		Otros:   decimal.NewFromInt(50),
	}
}

func TestCrearRuta_DerivaEconomiaEnServidor(t *testing.T) {
	svc, _, _, vehiculoID, conductorID := setupRutaService(t)

	resp, err := svc.Crear(context.Background(), crearRutaReq(vehiculoID, conductorID))
	require.NoError(t, err)

	assert.Equal(t, 1, resp.NumeroViaje)
	assert.Equal(t, 1000, resp.DistanciaKm)
	// ingreso = 8000 × 2.50
	assert.True(t, resp.Ingreso.Equal(decimal.NewFromInt(20000)), "ingreso = %s", resp.Ingreso)
	// gasto = 600 + 120 + 80 + 50
	assert.True(t, resp.GastoTotal.Equal(decimal.NewFromInt(850)), "gasto = %s", resp.GastoTotal)
	assert.True(t, resp.GananciaNeta.Equal(decimal.NewFromInt(19150)))
	// rendimiento = 1000 / 40
	assert.True(t, resp.RendimientoCombustible.Equal(decimal.NewFromInt(25)))
	// ingreso/km = 20000 / 1000
	assert.True(t, resp.IngresoPorKm.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "ABC-123", resp.PlacaVehiculo)
}

func TestCrearRuta_AvanzaOdometroDelVehiculo(t *testing.T) {
	svc, _, vehiculos, vehiculoID, conductorID := setupRutaService(t)

	_, err := svc.Crear(context.Background(), crearRutaReq(vehiculoID, conductorID))
	require.NoError(t, err)

	v, err := vehiculos.FindByID(context.Background(), vehiculoID)
	require.NoError(t, err)
	assert.Equal(t, 11000, v.KilometrajeActual)
	// 5000 − (11000 − 10000) = 4000 restante
	assert.Equal(t, 4000, v.KmRestanteMantenimiento)
}

func TestCrearRuta_NumeroViajeConsecutivo(t *testing.T) {
	svc, _, _, vehiculoID, conductorID := setupRutaService(t)

	primero, err := svc.Crear(context.Background(), crearRutaReq(vehiculoID, conductorID))
	require.NoError(t, err)

	req := crearRutaReq(vehiculoID, conductorID)
	req.KilometrajeInicio = 11000
	req.KilometrajeFin = 11500
	segundo, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, primero.NumeroViaje+1, segundo.NumeroViaje)
}

func TestCrearRuta_RechazaRegresionDeOdometro(t *testing.T) {
	svc, rutas, _, vehiculoID, conductorID := setupRutaService(t)

	req := crearRutaReq(vehiculoID, conductorID)
	req.KilometrajeInicio = 11000
	req.KilometrajeFin = 10500

	_, err := svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.Empty(t, rutas.rutas, "una ruta inválida nunca llega a almacenarse")
}

func TestCrearRuta_RechazaInicioBajoOdometroActual(t *testing.T) {
	svc, _, _, vehiculoID, conductorID := setupRutaService(t)

	req := crearRutaReq(vehiculoID, conductorID)
	req.KilometrajeInicio = 9000
	req.KilometrajeFin = 9500

	_, err := svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
}

func TestCrearRuta_VehiculoInactivoEsConflicto(t *testing.T) {
	svc, _, vehiculos, vehiculoID, conductorID := setupRutaService(t)
	require.NoError(t, vehiculos.SoftDelete(context.Background(), vehiculoID))

	_, err := svc.Crear(context.Background(), crearRutaReq(vehiculoID, conductorID))
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))
}

func TestActualizarRuta_RevalidaEconomiaCompleta(t *testing.T) {
	svc, _, _, vehiculoID, conductorID := setupRutaService(t)

	resp, err := svc.Crear(context.Background(), crearRutaReq(vehiculoID, conductorID))
	require.NoError(t, err)
	id := uuid.MustParse(resp.ID)

	// Un parche que sólo toca el fin no puede dejar la ruta con regresión.
	fin := 9000
	_, err = svc.Actualizar(context.Background(), id, dto.ActualizarRutaRequest{KilometrajeFin: &fin})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))

	// Un parche válido recalcula los derivados.
	fin = 12000
	actualizado, err := svc.Actualizar(context.Background(), id, dto.ActualizarRutaRequest{KilometrajeFin: &fin})
	require.NoError(t, err)
	assert.Equal(t, 2000, actualizado.DistanciaKm)
	assert.True(t, actualizado.IngresoPorKm.Equal(decimal.NewFromInt(10)))
}

func TestListarRutas_TerminoGanaSobreFiltros(t *testing.T) {
	svc, _, _, vehiculoID, conductorID := setupRutaService(t)

	_, err := svc.Crear(context.Background(), crearRutaReq(vehiculoID, conductorID))
	require.NoError(t, err)

	req := crearRutaReq(vehiculoID, conductorID)
	req.KilometrajeInicio = 11000
	req.KilometrajeFin = 11800
	req.Destino = "Trujillo"
	_, err = svc.Crear(context.Background(), req)
	require.NoError(t, err)

	lista, err := svc.Listar(context.Background(), query.FiltroRutas{Termino: "arequipa"})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, "Arequipa", lista.Data[0].Destino)
}
