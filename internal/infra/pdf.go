package infra

// pdf.go — route profitability report generation using go-pdf/fpdf.
// Renders an A4 landscape table with one row per trip (origen/destino,
// distancia, ingreso, gasto, ganancia, rendimiento) and an aggregate
// footer. The output file is saved to storagePath/reporte_rutas_{ts}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/model"
)

// GenerateReporteRutasPDF writes a profitability report for the given trips.
// desde/hasta are only used for the header; filtering happens upstream.
// Returns the absolute path to the generated file.
func GenerateReporteRutasPDF(rutas []model.RutaVista, desde, hasta *time.Time, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_rutas_%s.pdf", time.Now().UTC().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Reporte de Rentabilidad de Rutas", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	periodo := "Periodo: todos los viajes"
	if desde != nil && hasta != nil {
		periodo = fmt.Sprintf("Periodo: %s a %s", desde.Format("02/01/2006"), hasta.Format("02/01/2006"))
	} else if desde != nil {
		periodo = fmt.Sprintf("Periodo: desde %s", desde.Format("02/01/2006"))
	} else if hasta != nil {
		periodo = fmt.Sprintf("Periodo: hasta %s", hasta.Format("02/01/2006"))
	}
	pdf.CellFormat(contentW, 5, periodo, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Generado: %s", time.Now().UTC().Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ─────────────────────────────────────────────────────────
	cols := []struct {
		w     float64
		title string
		align string
	}{
		{0.06, "Viaje", "C"},
		{0.10, "Placa", "L"},
		{0.22, "Ruta", "L"},
		{0.09, "Dist. km", "R"},
		{0.12, "Ingreso", "R"},
		{0.12, "Gasto", "R"},
		{0.12, "Ganancia", "R"},
		{0.09, "km/gal", "R"},
		{0.08, "$/km", "R"},
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for i, c := range cols {
		last := 0
		if i == len(cols)-1 {
			last = 1
		}
		pdf.CellFormat(contentW*c.w, 6, c.title, "B", last, c.align, true, 0, "")
	}

	// ── Rows ─────────────────────────────────────────────────────────────────
	var (
		totalDistancia int
		totalIngreso   decimal.Decimal
		totalGasto     decimal.Decimal
		totalGanancia  decimal.Decimal
	)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range rutas {
		trayecto := recortar(fmt.Sprintf("%s - %s", r.Origen, r.Destino), 40)
		row := []string{
			fmt.Sprintf("%d", r.NumeroViaje),
			r.PlacaVehiculo,
			trayecto,
			fmt.Sprintf("%d", r.DistanciaKm),
			"$" + r.Ingreso.StringFixed(2),
			"$" + r.GastoTotal.StringFixed(2),
			"$" + r.GananciaNeta.StringFixed(2),
			r.RendimientoCombustible.StringFixed(2),
			r.IngresoPorKm.StringFixed(2),
		}
		for i, c := range cols {
			last := 0
			if i == len(cols)-1 {
				last = 1
			}
			pdf.CellFormat(contentW*c.w, 5, row[i], "", last, c.align, false, 0, "")
		}

		totalDistancia += r.DistanciaKm
		totalIngreso = totalIngreso.Add(r.Ingreso)
		totalGasto = totalGasto.Add(r.GastoTotal)
		totalGanancia = totalGanancia.Add(r.GananciaNeta)
	}

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.Ln(1)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(1)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*(cols[0].w+cols[1].w+cols[2].w), 6, fmt.Sprintf("TOTAL (%d viajes)", len(rutas)), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*cols[3].w, 6, fmt.Sprintf("%d", totalDistancia), "", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*cols[4].w, 6, "$"+totalIngreso.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*cols[5].w, 6, "$"+totalGasto.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*cols[6].w, 6, "$"+totalGanancia.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write report: %w", err)
	}
	return filePath, nil
}

// recortar limits s to max runes, replacing the tail with an ellipsis.
// Byte slicing would cut accented place names mid-rune.
func recortar(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
