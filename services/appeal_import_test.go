package services

import (
	"bytes"
	"testing"

	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func buildTestWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", appealSheetName)

	headers := []string{"File Number", "Issue Type", "Status", "Stage", "Description", "Primary Staff", "Secondary Staff", "Contact Date", "Closed Date"}
	for col, h := range headers {
		cellRef, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(appealSheetName, cellRef, h)
	}
	for r, row := range rows {
		for col, v := range row {
			cellRef, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(appealSheetName, cellRef, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to build workbook: %v", err)
	}
	return buf
}

func TestImportAppealsWorkbook(t *testing.T) {
	db := setupTestDB(t)

	wb := buildTestWorkbook(t, [][]string{
		{"03-0001-24", "Land", "Closed", "5", "Boundary dispute", "Test Staff", "", "2024-02-01", "2024-09-15"},
		{"03-0002-24", "Membership", "Active", "2a", "Membership appeal", "Test Staff", "Second Staff", "2024-03-10", ""},
		{"05-0001-24", "Land", "Active", "Information Gathering", "Legacy stage record", "Test Staff", "", "", ""},
	})

	result, err := ImportAppealsWorkbook(db, wb, "legacy.xlsx", "import_tool")
	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 0, result.FailedCount)

	var appeal models.Appeal
	assert.NoError(t, db.First(&appeal, "file_number = ?", "03-0001-24").Error)
	assert.Equal(t, models.StatusClosed, appeal.Status)
	assert.NotNil(t, appeal.ContactDate)
	assert.NotNil(t, appeal.ClosedDate)

	// Counters continue past the imported maxima
	next, err := NextFileNumber(db, 3, 2024)
	assert.NoError(t, err)
	assert.Equal(t, "03-0003-24", next)

	var history models.ImportHistory
	assert.NoError(t, db.First(&history, "file_name = ?", "legacy.xlsx").Error)
	assert.Equal(t, "Success", history.Status)
	assert.Equal(t, 3, history.RecordsImported)
}

func TestImportAppealsWorkbookBadRowsSkipped(t *testing.T) {
	db := setupTestDB(t)

	wb := buildTestWorkbook(t, [][]string{
		{"03-0001-24", "Land", "Active", "1", "Good row", "Test Staff", "", "", ""},
		{"", "Land", "Active", "1", "Missing file number", "Test Staff", "", "", ""},
		{"03-0003-24", "Land", "Galactic", "1", "Unknown status", "Test Staff", "", "", ""},
		{"03-0001-24", "Land", "Active", "1", "Duplicate file number", "Test Staff", "", "", ""},
	})

	result, err := ImportAppealsWorkbook(db, wb, "legacy.xlsx", "import_tool")
	assert.NoError(t, err)
	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 3, result.FailedCount)
	assert.Len(t, result.Errors, 3)

	var history models.ImportHistory
	assert.NoError(t, db.First(&history).Error)
	assert.Equal(t, "Partial", history.Status)
	assert.NotNil(t, history.ErrorMessage)
}

func TestImportAppealsWorkbookMissingSheet(t *testing.T) {
	db := setupTestDB(t)

	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	f.Close()

	_, err = ImportAppealsWorkbook(db, buf, "empty.xlsx", "import_tool")
	assert.Error(t, err)
}
