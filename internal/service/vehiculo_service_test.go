package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/dto"
	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/query"
)

func crearVehiculoReq(placa string) dto.CrearVehiculoRequest {
	return dto.CrearVehiculoRequest{
		Tipo:                 "camión",
		Marca:                "Kenworth",
		Modelo:               "T680",
		Placa:                placa,
		Color:                "rojo",
		CicloMantenimientoKm: 10000,
		KilometrajeInicial:   14600,
	}
}

func TestCrearVehiculo_DerivaEstadoMantenimiento(t *testing.T) {
	svc := NewVehiculoService(newFakeVehiculoRepo())

	resp, err := svc.Crear(context.Background(), crearVehiculoReq("XYZ-987"))
	require.NoError(t, err)

	// Recién creado: último preventivo = actual, ciclo completo por delante.
	assert.Equal(t, 10000, resp.KmRestanteMantenimiento)
	assert.Equal(t, "Al día", resp.EstadoMantenimiento)
	assert.False(t, resp.CicloInvalido)
}

func TestCrearVehiculo_NormalizaPlacaYColor(t *testing.T) {
	svc := NewVehiculoService(newFakeVehiculoRepo())

	req := crearVehiculoReq("  abc-123 ")
	req.Color = "<script>alert(1)</script>"
	resp, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "ABC-123", resp.Placa)
	assert.Empty(t, resp.Color, "un color no reconocido se descarta")

	req2 := crearVehiculoReq("DEF-456")
	req2.Color = "#FF0000"
	resp2, err := svc.Crear(context.Background(), req2)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", resp2.Color)
}

func TestListarVehiculos_FiltroPorEstadoDerivado(t *testing.T) {
	repo := newFakeVehiculoRepo()
	svc := NewVehiculoService(repo)
	ctx := context.Background()

	alDia := crearVehiculoReq("AAA-111")
	_, err := svc.Crear(ctx, alDia)
	require.NoError(t, err)

	urgente := crearVehiculoReq("BBB-222")
	urgente.CicloMantenimientoKm = 400
	_, err = svc.Crear(ctx, urgente)
	require.NoError(t, err)

	// 400 km de ciclo recién cumplido → restante 400 → Urgente.
	lista, err := svc.Listar(ctx, query.FiltroVehiculos{EstadoMantenimiento: "Urgente"})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, "BBB-222", lista.Data[0].Placa)
}

func TestListarVehiculos_TerminoIgnoraFiltrosEnServidor(t *testing.T) {
	repo := newFakeVehiculoRepo()
	svc := NewVehiculoService(repo)
	ctx := context.Background()

	_, err := svc.Crear(ctx, crearVehiculoReq("AAA-111"))
	require.NoError(t, err)
	otro := crearVehiculoReq("BBB-222")
	otro.Marca = "Freightliner"
	_, err = svc.Crear(ctx, otro)
	require.NoError(t, err)

	// Con término, el filtro discreto se aplica sólo del lado cliente.
	lista, err := svc.Listar(ctx, query.FiltroVehiculos{
		Termino:             "kenworth",
		EstadoMantenimiento: "Al día",
	})
	require.NoError(t, err)
	require.Equal(t, 1, lista.Total)
	assert.Equal(t, "AAA-111", lista.Data[0].Placa)
}

func TestListarVehiculos_FiltroDesconocidoEsValidacion(t *testing.T) {
	svc := NewVehiculoService(newFakeVehiculoRepo())

	_, err := svc.Listar(context.Background(), query.FiltroVehiculos{EstadoMantenimiento: "Quemado"})
	require.Error(t, err)
}

func TestActualizarVehiculo_CicloInvalidoRechazado(t *testing.T) {
	svc := NewVehiculoService(newFakeVehiculoRepo())
	ctx := context.Background()

	resp, err := svc.Crear(ctx, crearVehiculoReq("CCC-333"))
	require.NoError(t, err)

	cero := 0
	_, err = svc.Actualizar(ctx, mustUUID(t, resp.ID), dto.ActualizarVehiculoRequest{CicloMantenimientoKm: &cero})
	require.Error(t, err)
}

func TestDarDeBajaYReactivar(t *testing.T) {
	repo := newFakeVehiculoRepo()
	svc := NewVehiculoService(repo)
	ctx := context.Background()

	resp, err := svc.Crear(ctx, crearVehiculoReq("DDD-444"))
	require.NoError(t, err)
	id := mustUUID(t, resp.ID)

	require.NoError(t, svc.DarDeBaja(ctx, id))
	lista, err := svc.Listar(ctx, query.FiltroVehiculos{})
	require.NoError(t, err)
	assert.Zero(t, lista.Total, "el listado por defecto excluye bajas")

	require.NoError(t, svc.Reactivar(ctx, id))
	lista, err = svc.Listar(ctx, query.FiltroVehiculos{})
	require.NoError(t, err)
	assert.Equal(t, 1, lista.Total)
}
