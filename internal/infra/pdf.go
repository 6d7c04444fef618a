package infra

// pdf.go — weaning report rendering with go-pdf/fpdf. A4 portrait with a
// header, period line, one table row per weaning and a totals footer. The
// output file is saved to storagePath/desmames_{inicio}_{fim}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"suinotrack/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GerarRelatorioDesmamePDF writes the weaning report and returns the absolute
// path of the generated file. storagePath is created if needed.
func GerarRelatorioDesmamePDF(rel *dto.RelatorioDesmameResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("desmames_%s_%s.pdf", rel.Inicio, rel.Fim)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, "SuinoTrack", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Relatório de Desmames", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Período: %s a %s", rel.Inicio, rel.Fim), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Table header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.20 // sow
	col2 := contentW * 0.16 // date
	col3 := contentW * 0.14 // weaned count
	col4 := contentW * 0.16 // mean weight
	col5 := contentW * 0.16 // daily gain
	col6 := contentW * 0.18 // destination

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Matriz", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Data", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Desmamados", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Peso médio", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "GMD (g/dia)", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col6, 6, "Destino", "B", 1, "L", false, 0, "")

	// ── Rows ──────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range rel.Itens {
		pdf.CellFormat(col1, 6, item.Matriz, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, item.Data, "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("%d", item.TotalDesmamados), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, item.PesoMedio.StringFixed(3)+" kg", "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, item.GanhoMedioDiario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col6, 6, item.DestinoLeitoes, "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, 7, "Total desmamados:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 7, fmt.Sprintf("%d", rel.TotalDesmamados), "", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 7, "Peso médio geral:", "", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 7, rel.PesoMedioGeral.StringFixed(3)+" kg", "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
