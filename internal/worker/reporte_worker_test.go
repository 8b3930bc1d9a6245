package worker

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

type stubRutaRepo struct {
	rutas []model.RutaVista
	err   error
	calls int
}

func (s *stubRutaRepo) List(_ context.Context, _ map[string]any) ([]model.RutaVista, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rutas, nil
}

func (s *stubRutaRepo) Search(_ context.Context, _ string, _ []string) ([]model.RutaVista, error) {
	return s.rutas, nil
}

func (s *stubRutaRepo) FindByID(_ context.Context, _ uuid.UUID) (*model.RutaVista, error) {
	return nil, nil
}

func (s *stubRutaRepo) Create(_ context.Context, _ *model.RutaViaje) (*model.RutaVista, error) {
	return nil, nil
}

func (s *stubRutaRepo) Update(_ context.Context, _ uuid.UUID, _ map[string]any) (*model.RutaVista, error) {
	return nil, nil
}

func (s *stubRutaRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (s *stubRutaRepo) SiguienteNumeroViaje(_ context.Context) (int, error) {
	return len(s.rutas) + 1, nil
}

func vistaDePrueba(numero int, salida time.Time) model.RutaVista {
	return model.RutaVista{
		ID:                     uuid.New(),
		NumeroViaje:            numero,
		Origen:                 "Lima",
		Destino:                "Arequipa",
		FechaSalida:            salida,
		DistanciaKm:            1000,
		Ingreso:                decimal.NewFromInt(20000),
		GastoTotal:             decimal.NewFromInt(850),
		GananciaNeta:           decimal.NewFromInt(19150),
		RendimientoCombustible: decimal.NewFromInt(25),
		IngresoPorKm:           decimal.NewFromInt(20),
		PlacaVehiculo:          "ABC-123",
	}
}

func TestReporteWorkerGeneraPDF(t *testing.T) {
	dir := t.TempDir()
	repo := &stubRutaRepo{rutas: []model.RutaVista{
		vistaDePrueba(1, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)),
		vistaDePrueba(2, time.Date(2026, 4, 20, 8, 0, 0, 0, time.UTC)),
	}}
	w := NewReporteWorker(repo, nil, nil, dir)

	raw, err := json.Marshal(ReporteJobPayload{})
	require.NoError(t, err)
	w.Process(context.Background(), raw)

	entradas, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	info, err := entradas[0].Info()
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Equal(t, 1, repo.calls)
}

func TestReporteWorkerFiltraPorVentana(t *testing.T) {
	dir := t.TempDir()
	repo := &stubRutaRepo{rutas: []model.RutaVista{
		vistaDePrueba(1, time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)),
		vistaDePrueba(2, time.Date(2026, 4, 20, 8, 0, 0, 0, time.UTC)),
	}}
	w := NewReporteWorker(repo, nil, nil, dir)

	desde := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(ReporteJobPayload{Desde: &desde})
	require.NoError(t, err)
	w.Process(context.Background(), raw)

	// The window excludes the March trip but the PDF still renders.
	entradas, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
}
