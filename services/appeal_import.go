package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ImportResult summarizes one workbook import run.
type ImportResult struct {
	TotalProcessed int
	SuccessCount   int
	FailedCount    int
	Errors         []string
}

// appealSheetColumns maps the legacy workbook's header row. Column order
// follows the spreadsheet the tribunal kept before this system.
const (
	colFileNumber = iota
	colIssueType
	colStatus
	colStage
	colDescription
	colPrimaryStaff
	colSecondaryStaff
	colContactDate
	colClosedDate
)

const appealSheetName = "Appeals"

// ImportAppealsWorkbook loads legacy appeals from an Excel workbook. Rows
// import independently: a bad row is reported and skipped, the rest
// proceed. After the rows land, the file number counters are advanced past
// the highest imported sequence per settlement and year so new filings
// never collide with imported ones. An ImportHistory record captures the
// run either way.
func ImportAppealsWorkbook(db *gorm.DB, reader io.Reader, fileName, importedBy string) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, apperr.Validation("cannot read workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(appealSheetName)
	if err != nil {
		return nil, apperr.Validation("workbook has no %q sheet", appealSheetName)
	}
	if len(rows) < 2 {
		return nil, apperr.Validation("%q sheet has no data rows", appealSheetName)
	}

	result := &ImportResult{}
	// Highest sequence seen per settlement order and two-digit year.
	maxSeq := map[[2]int]int{}

	for i, row := range rows[1:] {
		rowNum := i + 2
		result.TotalProcessed++

		if err := importAppealRow(db, row); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.SuccessCount++

		settlementOrder, seq, year, err := ParseFileNumber(cell(row, colFileNumber))
		if err == nil {
			k := [2]int{settlementOrder, expandYear(year)}
			if seq > maxSeq[k] {
				maxSeq[k] = seq
			}
		}
	}

	for k, seq := range maxSeq {
		if err := SeedFileNumberCounter(db, k[0], k[1], seq); err != nil {
			return nil, err
		}
	}

	history := models.ImportHistory{
		FileName:        fileName,
		RecordsImported: result.SuccessCount,
		RecordsFailed:   result.FailedCount,
		Status:          "Success",
		ImportedBy:      importedBy,
	}
	if result.FailedCount > 0 {
		history.Status = "Partial"
		msg := strings.Join(result.Errors, "; ")
		history.ErrorMessage = &msg
	}
	if err := db.Create(&history).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func importAppealRow(db *gorm.DB, row []string) error {
	fileNumber := cell(row, colFileNumber)
	if fileNumber == "" {
		return fmt.Errorf("missing file number")
	}
	if _, _, _, err := ParseFileNumber(fileNumber); err != nil {
		return err
	}

	issueType := cell(row, colIssueType)
	if issueType == "" {
		return fmt.Errorf("missing issue type")
	}

	description := cell(row, colDescription)
	if description == "" {
		description = "Imported from legacy records"
	}

	primaryStaff := cell(row, colPrimaryStaff)
	if primaryStaff == "" {
		primaryStaff = "Unassigned"
	}

	status := cell(row, colStatus)
	if status == "" {
		status = models.StatusActive
	}
	if ok, err := StatusExists(db, status); err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("unknown status %q", status)
	}

	// Legacy records carry free-text stage names; unknown values import
	// as-is so the original data survives.
	stage := cell(row, colStage)
	if stage == "" {
		stage = models.Stage1
	}

	appeal := models.Appeal{
		FileNumber:     fileNumber,
		IssueType:      issueType,
		Description:    description,
		Status:         status,
		Stage:          stage,
		PrimaryStaff:   primaryStaff,
		SecondaryStaff: ptrIfNotEmpty(cell(row, colSecondaryStaff)),
		ContactDate:    parseImportDate(cell(row, colContactDate)),
		ClosedDate:     parseImportDate(cell(row, colClosedDate)),
	}

	if err := db.Create(&appeal).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("file number %s already exists", fileNumber)
		}
		return err
	}
	return nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// expandYear turns the file number's two-digit year into a counter key.
// The tribunal's records start in the 1990s, so 70-99 map to 19xx and
// everything below to 20xx.
func expandYear(yy int) int {
	if yy >= 70 {
		return 1900 + yy
	}
	return 2000 + yy
}

// parseImportDate accepts the formats found in the legacy workbook.
func parseImportDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", "01/02/2006", "1/2/2006", "2-Jan-06", "Jan 2, 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
