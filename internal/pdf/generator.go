package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/tpc/ocean/internal/model"
)

const (
	pageWidth   = 297.0
	margin      = 12.0
	rowHeight   = 7.0
	maxCellRune = 40
)

// Generator renders tables with the built-in Helvetica font; text is
// translated to cp1252 so Portuguese accents survive.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(table model.Table) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetFillColor(230, 230, 230)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, tr(table.Title), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 9)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Gerado em %s  |  %d registros", formatDateTime(table), len(table.Rows))), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	widths := columnWidths(len(table.Headers))
	drawRow(pdf, g.fontName, tr, table.Headers, widths, true)
	for _, row := range table.Rows {
		if pdf.GetY()+rowHeight > 210-margin {
			pdf.AddPage()
			drawRow(pdf, g.fontName, tr, table.Headers, widths, true)
		}
		drawRow(pdf, g.fontName, tr, row, widths, false)
	}

	if len(table.Rows) == 0 {
		pdf.Ln(2)
		pdf.SetFont(g.fontName, "I", 10)
		pdf.CellFormat(0, 6, tr("Nenhum registro."), "", 1, "L", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// columnWidths gives the identity column a narrow fixed width and splits
// the rest evenly.
func columnWidths(n int) []float64 {
	if n == 0 {
		return nil
	}
	usable := pageWidth - 2*margin
	widths := make([]float64, n)
	if n == 1 {
		widths[0] = usable
		return widths
	}
	widths[0] = 15
	rest := (usable - widths[0]) / float64(n-1)
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	return widths
}

func drawRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 9)
	for i, width := range widths {
		value := ""
		if i < len(cols) {
			value = truncate(cols[i])
		}
		align := "L"
		if i == 0 {
			align = "R"
		}
		pdf.CellFormat(width, rowHeight, tr(value), "1", 0, align, header, 0, "")
	}
	pdf.Ln(-1)
}

func truncate(value string) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if len(runes) <= maxCellRune {
		return value
	}
	return string(runes[:maxCellRune-3]) + "..."
}

func formatDateTime(table model.Table) string {
	if table.GeneratedAt.IsZero() {
		return "-"
	}
	return table.GeneratedAt.Format("02.01.2006 15:04")
}
