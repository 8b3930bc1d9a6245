package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
)

// ReportesHandler serves generated profitability reports from disk.
type ReportesHandler struct {
	storagePath string
}

func NewReportesHandler(storagePath string) *ReportesHandler {
	return &ReportesHandler{storagePath: storagePath}
}

// Descargar streams a generated PDF by file name. The name is reduced to
// its base component so a crafted path cannot escape the storage dir.
func (h *ReportesHandler) Descargar(c *gin.Context) {
	nombre := filepath.Base(c.Param("archivo"))
	if !strings.HasSuffix(nombre, ".pdf") {
		c.JSON(http.StatusBadRequest, apierror.New("nombre de archivo inválido"))
		return
	}
	ruta := filepath.Join(h.storagePath, nombre)
	if _, err := os.Stat(ruta); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("reporte no encontrado"))
		return
	}
	c.FileAttachment(ruta, nombre)
}
