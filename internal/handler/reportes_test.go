package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReportesRouter(t *testing.T) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	r := gin.New()
	r.GET("/v1/rutas/reporte/:archivo", NewReportesHandler(dir).Descargar)
	return r, dir
}

func TestDescargarReporteExistente(t *testing.T) {
	r, dir := setupReportesRouter(t)
	contenido := []byte("%PDF-1.4 contenido de prueba")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reporte_rutas_20260301_000000.pdf"), contenido, 0644))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/rutas/reporte/reporte_rutas_20260301_000000.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contenido, w.Body.Bytes())
}

func TestDescargarReporteInexistente(t *testing.T) {
	r, _ := setupReportesRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/rutas/reporte/no_existe.pdf", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDescargarReporteRechazaNombreInvalido(t *testing.T) {
	r, _ := setupReportesRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/rutas/reporte/notas.txt", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDescargarReporteNoEscapaDelDirectorio(t *testing.T) {
	r, dir := setupReportesRouter(t)
	// Archivo fuera del directorio de reportes: un nombre con ../ no debe
	// poder alcanzarlo.
	fuera := filepath.Join(filepath.Dir(dir), "fuera.pdf")
	require.NoError(t, os.WriteFile(fuera, []byte("secreto"), 0644))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/rutas/reporte/..%2Ffuera.pdf", nil)
	r.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secreto")
}
