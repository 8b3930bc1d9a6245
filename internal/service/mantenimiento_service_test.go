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

func setupMantenimientoService(t *testing.T) (MantenimientoService, *fakeVehiculoRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	vehiculos := newFakeVehiculoRepo()
	talleres := newFakeTallerRepo()
	registros := newFakeMantenimientoRepo()

	vehiculo := &model.Vehiculo{
		Tipo:                 "camión",
		Marca:                "Scania",
		Modelo:               "R450",
		Placa:                "MNT-001",
		CicloMantenimientoKm: 5000,
		KilometrajeUltimoPreventivo: 10000,
		KilometrajeActual:           14600,
		Activo:                      true,
	}
	_, err := vehiculos.Create(context.Background(), vehiculo)
	require.NoError(t, err)

	taller := &model.Taller{Nombre: "Taller Central", Activo: true}
	require.NoError(t, talleres.Create(context.Background(), taller))

	svc := NewMantenimientoService(registros, vehiculos, talleres)
	return svc, vehiculos, vehiculo.ID, taller.ID
}

func crearMantenimientoReq(vehiculoID, tallerID uuid.UUID, tipo string) dto.CrearMantenimientoRequest {
	return dto.CrearMantenimientoRequest{
		VehiculoID:          vehiculoID.String(),
		TallerID:            tallerID.String(),
		Tipo:                tipo,
		Descripcion:         "cambio de aceite y frenos",
		FechaEntrada:        time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Costo:               decimal.NewFromInt(950),
		KilometrajeServicio: 14600,
	}
}

func TestMantenimiento_EstadoDerivadoPorFechas(t *testing.T) {
	svc, _, vehiculoID, tallerID := setupMantenimientoService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, crearMantenimientoReq(vehiculoID, tallerID, "Correctivo"))
	require.NoError(t, err)
	assert.Equal(t, "En Proceso", resp.Estado)
	id := mustUUID(t, resp.ID)

	resp, err = svc.Finalizar(ctx, id, dto.FinalizarMantenimientoRequest{
		FechaSalida: time.Date(2026, 4, 3, 17, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Pendiente Pago", resp.Estado)

	resp, err = svc.RegistrarPago(ctx, id, dto.PagarMantenimientoRequest{
		FechaPago: time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Completado", resp.Estado)
}

func TestMantenimiento_PagoSinSalidaEsConflicto(t *testing.T) {
	svc, _, vehiculoID, tallerID := setupMantenimientoService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, crearMantenimientoReq(vehiculoID, tallerID, "Correctivo"))
	require.NoError(t, err)

	_, err = svc.RegistrarPago(ctx, mustUUID(t, resp.ID), dto.PagarMantenimientoRequest{FechaPago: time.Now()})
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))
}

func TestMantenimiento_FinalizarPreventivoReiniciaContador(t *testing.T) {
	svc, vehiculos, vehiculoID, tallerID := setupMantenimientoService(t)
	ctx := context.Background()

	// Antes del preventivo: restante = 5000 − (14600 − 10000) = 400 → Urgente.
	antes, err := vehiculos.FindByID(ctx, vehiculoID)
	require.NoError(t, err)
	assert.Equal(t, "Urgente", antes.EstadoMantenimiento)

	resp, err := svc.Crear(ctx, crearMantenimientoReq(vehiculoID, tallerID, "Preventivo"))
	require.NoError(t, err)

	_, err = svc.Finalizar(ctx, mustUUID(t, resp.ID), dto.FinalizarMantenimientoRequest{
		FechaSalida: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	despues, err := vehiculos.FindByID(ctx, vehiculoID)
	require.NoError(t, err)
	assert.Equal(t, 14600, despues.KilometrajeUltimoPreventivo)
	assert.Equal(t, 5000, despues.KmRestanteMantenimiento)
	assert.Equal(t, "Al día", despues.EstadoMantenimiento)
}

func TestMantenimiento_FinalizarDosVecesEsConflicto(t *testing.T) {
	svc, _, vehiculoID, tallerID := setupMantenimientoService(t)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, crearMantenimientoReq(vehiculoID, tallerID, "Correctivo"))
	require.NoError(t, err)
	id := mustUUID(t, resp.ID)

	salida := dto.FinalizarMantenimientoRequest{FechaSalida: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)}
	_, err = svc.Finalizar(ctx, id, salida)
	require.NoError(t, err)

	_, err = svc.Finalizar(ctx, id, salida)
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))
}

func TestListarMantenimientos_EstadoDerivadoSoloClientSide(t *testing.T) {
	svc, _, vehiculoID, tallerID := setupMantenimientoService(t)
	ctx := context.Background()

	abierto, err := svc.Crear(ctx, crearMantenimientoReq(vehiculoID, tallerID, "Correctivo"))
	require.NoError(t, err)

	cerrado, err := svc.Crear(ctx, crearMantenimientoReq(vehiculoID, tallerID, "Correctivo"))
	require.NoError(t, err)
	_, err = svc.Finalizar(ctx, mustUUID(t, cerrado.ID), dto.FinalizarMantenimientoRequest{
		FechaSalida: time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	lista, err := svc.Listar(ctx, query.FiltroMantenimientos{Estado: "En Proceso"})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, abierto.ID, lista.Data[0].ID)
}
