package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"nishan.dev/models"

	"github.com/jung-kurt/gofpdf"
)

type ExportServiceError string

func (e ExportServiceError) Error() string { return string(e) }

const (
	ErrExportFailed ExportServiceError = "export could not be generated"
)

// ExportRow is the fixed projection every export carries per record:
// identifier, display name, creation date and active status.
type ExportRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Active    bool
}

var exportHeaders = []string{"ID", "Name", "Created At", "Status"}

type IExportService interface {
	ProjectsPDF(ctx context.Context) ([]byte, error)
	ProjectsCSV(ctx context.Context) ([]byte, error)
}

type ExportService struct {
	projects IProjectService
	now      func() time.Time
}

func NewExportService() IExportService {
	return &ExportService{projects: NewProjectService(), now: time.Now}
}

func NewExportServiceWithProjects(projects IProjectService) IExportService {
	return &ExportService{projects: projects, now: time.Now}
}

// ProjectsPDF renders every active project as a tabular PDF report.
func (s *ExportService) ProjectsPDF(ctx context.Context) ([]byte, error) {
	projects, err := s.projects.AllActiveProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.generatePDFReport(projectExportRows(projects), "Projects Portfolio")
}

// ProjectsCSV renders the same projection as delimited text.
func (s *ExportService) ProjectsCSV(ctx context.Context) ([]byte, error) {
	projects, err := s.projects.AllActiveProjects(ctx)
	if err != nil {
		return nil, err
	}
	return writeCSV(projectExportRows(projects))
}

func projectExportRows(projects []models.Project) []ExportRow {
	rows := make([]ExportRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, ExportRow{
			ID:        p.ID.String(),
			Name:      p.Title,
			CreatedAt: p.CreatedAt,
			Active:    p.IsActive,
		})
	}
	return rows
}

// generatePDFReport lays out a titled A4 table over the fixed
// projection, with a generated-on footer.
func (s *ExportService) generatePDFReport(rows []ExportRow, title string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 14, title, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	colWidths := []float64{28, 76, 34, 22}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(45, 55, 72)
	pdf.SetTextColor(245, 245, 245)
	for i, header := range exportHeaders {
		pdf.CellFormat(colWidths[i], 9, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(247, 250, 252)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		cells := row.cells()
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 8, cell, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 5, "Generated on "+s.now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ErrExportFailed
	}
	return buf.Bytes(), nil
}

func writeCSV(rows []ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, ErrExportFailed
	}
	for _, row := range rows {
		if err := writer.Write(row.cells()); err != nil {
			return nil, ErrExportFailed
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, ErrExportFailed
	}
	return buf.Bytes(), nil
}

// cells projects the row into display form: 8-char ID prefix, name
// capped at 50 characters, date and status label. Truncation counts
// runes so multibyte names stay valid UTF-8.
func (r ExportRow) cells() []string {
	status := "Inactive"
	if r.Active {
		status = "Active"
	}
	return []string{
		truncate(r.ID, 8),
		truncate(r.Name, 50),
		r.CreatedAt.Format("2006-01-02"),
		status,
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

var _ IExportService = (*ExportService)(nil)
