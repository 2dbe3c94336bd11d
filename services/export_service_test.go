package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"nishan.dev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func exportFixtures() []models.Project {
	created := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	p := models.Project{Title: "Portfolio Site", IsActive: true}
	p.CreatedAt = created
	return []models.Project{p}
}

func TestProjectsCSVLayout(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("FindAllActive", mock.Anything).Return(exportFixtures(), nil)
	service := NewExportServiceWithProjects(NewProjectServiceWithRepo(repo))

	data, err := service.ProjectsCSV(context.Background())
	assert.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, []string{"ID", "Name", "Created At", "Status"}, records[0])
	assert.Equal(t, "Portfolio Site", records[1][1])
	assert.Equal(t, "2025-03-14", records[1][2])
	assert.Equal(t, "Active", records[1][3])
}

func TestProjectsPDFProducesDocument(t *testing.T) {
	repo := new(mockProjectRepository)
	repo.On("FindAllActive", mock.Anything).Return(exportFixtures(), nil)
	service := NewExportServiceWithProjects(NewProjectServiceWithRepo(repo))

	data, err := service.ProjectsPDF(context.Background())

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportRowCellsTruncate(t *testing.T) {
	row := ExportRow{
		ID:        "0f47ac10-58cc-4372-a567-0e02b2c3d479",
		Name:      strings.Repeat("x", 80),
		CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Active:    false,
	}

	cells := row.cells()

	assert.Equal(t, "0f47ac10", cells[0])
	assert.Len(t, cells[1], 50)
	assert.Equal(t, "2025-01-02", cells[2])
	assert.Equal(t, "Inactive", cells[3])
}

func TestExportRowCellsTruncateOnRunes(t *testing.T) {
	// 60 two-byte runes; a byte cut would split one in half.
	row := ExportRow{
		ID:        "0f47ac10-58cc-4372-a567-0e02b2c3d479",
		Name:      strings.Repeat("ü", 60),
		CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	cells := row.cells()

	assert.True(t, utf8.ValidString(cells[1]))
	assert.Equal(t, 50, utf8.RuneCountInString(cells[1]))
	assert.Equal(t, strings.Repeat("ü", 50), cells[1])
}
