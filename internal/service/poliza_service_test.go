package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
)

var ahoraPoliza = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func setupPolizaService(t *testing.T) (PolizaService, *fakePolizaRepo) {
	t.Helper()

	vehiculos := newFakeVehiculoRepo()
	_, err := vehiculos.Create(context.Background(), &model.Vehiculo{
		Tipo: "camión", Marca: "Volvo", Modelo: "FH16", Placa: "POL-777",
		CicloMantenimientoKm: 5000, Activo: true,
	})
	require.NoError(t, err)

	repo := newFakePolizaRepo(func() time.Time { return ahoraPoliza })
	svc := NewPolizaService(repo, vehiculos).(*polizaService)
	svc.ahora = func() time.Time { return ahoraPoliza }
	return svc, repo
}

func crearPolizaReq(numero string, vencimiento time.Time) dto.CrearPolizaRequest {
	return dto.CrearPolizaRequest{
		NumeroPoliza:     numero,
		PlacaVehiculo:    "POL-777",
		Aseguradora:      "Rímac",
		FechaInicio:      vencimiento.AddDate(-1, 0, 0),
		FechaVencimiento: vencimiento,
		MontoPagado:      decimal.NewFromInt(1200),
	}
}

func TestCrearPoliza_DerivaVigencia(t *testing.T) {
	svc, _ := setupPolizaService(t)

	// Vence en 5 días calendario → por_vencer, nivel crítico.
	resp, err := svc.Crear(context.Background(), crearPolizaReq("P-001", ahoraPoliza.AddDate(0, 0, 5)))
	require.NoError(t, err)

	assert.Equal(t, 5, resp.DiasRestantes)
	assert.Equal(t, "por_vencer", resp.Estado)
	assert.Equal(t, "critico", resp.NivelAlerta)
}

func TestCrearPoliza_PlacaInexistenteEsNotFound(t *testing.T) {
	svc, _ := setupPolizaService(t)

	req := crearPolizaReq("P-002", ahoraPoliza.AddDate(1, 0, 0))
	req.PlacaVehiculo = "NO-EXISTE"
	_, err := svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apierror.IsNotFound(err))
}

func TestCancelarPoliza_EsTerminalYGanaALasFechas(t *testing.T) {
	svc, _ := setupPolizaService(t)
	ctx := context.Background()

	// Vigente por un año entero.
	resp, err := svc.Crear(ctx, crearPolizaReq("P-003", ahoraPoliza.AddDate(1, 0, 0)))
	require.NoError(t, err)
	assert.Equal(t, "vigente", resp.Estado)
	id := mustUUID(t, resp.ID)

	cancelada, err := svc.Cancelar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cancelada", cancelada.Estado)
	assert.Equal(t, "vencido", cancelada.NivelAlerta)

	// Cancelar dos veces es conflicto; actualizar una cancelada también.
	_, err = svc.Cancelar(ctx, id)
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))

	aseg := "Pacífico"
	_, err = svc.Actualizar(ctx, id, dto.ActualizarPolizaRequest{Aseguradora: &aseg})
	require.Error(t, err)
	assert.True(t, apierror.IsConflict(err))
}

func TestListarPolizas_FiltroPorEstadoDerivado(t *testing.T) {
	svc, _ := setupPolizaService(t)
	ctx := context.Background()

	_, err := svc.Crear(ctx, crearPolizaReq("P-010", ahoraPoliza.AddDate(1, 0, 0)))
	require.NoError(t, err)
	_, err = svc.Crear(ctx, crearPolizaReq("P-011", ahoraPoliza.AddDate(0, 0, -3)))
	require.NoError(t, err)

	vencidas, err := svc.Listar(ctx, query.FiltroPolizas{Estado: "vencida"})
	require.NoError(t, err)
	require.Equal(t, 1, vencidas.Total)
	assert.Equal(t, "P-011", vencidas.Data[0].NumeroPoliza)
}
