package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tpc/ocean/internal/model"
)

type ExportFormat string

const (
	ExportXLSX ExportFormat = "xlsx"
	ExportPDF  ExportFormat = "pdf"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportXLSX:
		return ExportXLSX, nil
	case ExportPDF:
		return ExportPDF, nil
	default:
		return "", fmt.Errorf("%w: format must be xlsx or pdf", ErrInvalidInput)
	}
}

// TableSource yields the full listing of one kind.
type TableSource interface {
	Table(ctx context.Context) (model.Table, error)
}

type TableGenerator interface {
	Generate(table model.Table) ([]byte, error)
}

type ExportService struct {
	excel TableGenerator
	pdf   TableGenerator
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

func NewExportService(excel, pdf TableGenerator) *ExportService {
	return &ExportService{excel: excel, pdf: pdf}
}

func (s *ExportService) Export(ctx context.Context, source TableSource, format ExportFormat) (*ExportResult, error) {
	var (
		generator   TableGenerator
		contentType string
	)
	switch format {
	case ExportXLSX:
		generator, contentType = s.excel, ContentTypeXLSX
	case ExportPDF:
		generator, contentType = s.pdf, ContentTypePDF
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, format)
	}

	table, err := source.Table(ctx)
	if err != nil {
		return nil, err
	}

	content, err := generator.Generate(table)
	if err != nil {
		return nil, fmt.Errorf("render %s export: %w", format, err)
	}

	return &ExportResult{
		FileName:    buildFileName(table, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func buildFileName(table model.Table, format ExportFormat) string {
	kind := sanitizeFileName(table.Kind)
	if kind == "" {
		kind = "export"
	}
	generated := table.GeneratedAt
	if generated.IsZero() {
		generated = time.Now().UTC()
	}
	return fmt.Sprintf("%s-%s.%s", kind, generated.Format("20060102"), format)
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
