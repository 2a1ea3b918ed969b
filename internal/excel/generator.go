package excel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/tpc/ocean/internal/model"
)

const (
	maxSheetName = 31
	headerRow    = 4
	minColWidth  = 10
	maxColWidth  = 60
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(table model.Table) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	sheet := sanitizeSheetName(table.Title)
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := g.writeTable(file, sheet, table); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeTable(file *excelize.File, sheet string, table model.Table) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Relatório")
	set("B1", table.Title)
	set("A2", "Gerado em")
	set("B2", formatDateTime(table))

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	widths := make([]int, len(table.Headers))
	for i, header := range table.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		set(cell, header)
		widths[i] = utf8.RuneCountInString(header)
	}
	if len(table.Headers) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(table.Headers), headerRow)
		_ = file.SetCellStyle(sheet, fmt.Sprintf("A%d", headerRow), last, bold)
	}

	for r, row := range table.Rows {
		for i, value := range row {
			if i >= len(widths) {
				break
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, headerRow+1+r)
			set(cell, value)
			if n := utf8.RuneCountInString(value); n > widths[i] {
				widths[i] = n
			}
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = file.SetColWidth(sheet, col, col, clampWidth(width))
	}
	return nil
}

func clampWidth(chars int) float64 {
	w := chars + 2
	if w < minColWidth {
		w = minColWidth
	}
	if w > maxColWidth {
		w = maxColWidth
	}
	return float64(w)
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Planilha"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Planilha"
	}
	if utf8.RuneCountInString(value) > maxSheetName {
		value = string([]rune(value)[:maxSheetName])
	}
	return value
}

func formatDateTime(table model.Table) string {
	if table.GeneratedAt.IsZero() {
		return ""
	}
	return table.GeneratedAt.Format("2006-01-02 15:04:05")
}
