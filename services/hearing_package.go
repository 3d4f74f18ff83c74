package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// hearingPackageTemplate renders the cover summary bound into a hearing
// package: file details, parties, panel, schedule, and orders to date.
var hearingPackageTemplate = template.Must(template.New("hearing_package").Parse(`
<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Georgia, "Times New Roman", serif; font-size: 12pt; color: #111; }
  h1 { font-size: 16pt; text-align: center; text-transform: uppercase; }
  h2 { font-size: 13pt; border-bottom: 1px solid #333; padding-bottom: 4px; margin-top: 24px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th, td { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ccc; vertical-align: top; }
  .meta td:first-child { font-weight: bold; width: 35%; }
</style>
</head>
<body>
<h1>Metis Settlements Appeal Tribunal<br>Hearing Package</h1>

<h2>Appeal {{.Appeal.FileNumber}}</h2>
<table class="meta">
  <tr><td>Issue Type</td><td>{{.Appeal.IssueType}}</td></tr>
  <tr><td>Status</td><td>{{.Appeal.Status}}</td></tr>
  <tr><td>Stage</td><td>{{.Appeal.Stage}}</td></tr>
  <tr><td>Primary Staff</td><td>{{.Appeal.PrimaryStaff}}</td></tr>
  <tr><td>Prepared</td><td>{{.Prepared}}</td></tr>
</table>

<h2>Parties</h2>
<table>
  <tr><th>Name</th><th>Role</th></tr>
  {{range .Parties}}<tr><td>{{.Name}}</td><td>{{.Role}}</td></tr>{{end}}
</table>

{{if .Panel}}
<h2>Panel</h2>
<table class="meta">
  <tr><td>Chair</td><td>{{.Panel.PanelChair}}</td></tr>
  <tr><td>Member</td><td>{{.Panel.PanelMember2}}</td></tr>
  {{if .Panel.PanelMember3}}<tr><td>Member</td><td>{{.Panel.PanelMember3}}</td></tr>{{end}}
  {{if .Panel.Mediator}}<tr><td>Mediator</td><td>{{.Panel.Mediator}}</td></tr>{{end}}
</table>
{{end}}

{{if .Schedule}}
<h2>Schedule</h2>
<table>
  <tr><th>Type</th><th>Date</th><th>Location</th><th>Outcome</th></tr>
  {{range .Schedule}}<tr><td>{{.EntryType}}</td><td>{{.Date.Format "January 2, 2006"}}</td><td>{{if .Location}}{{.Location}}{{end}}</td><td>{{if .Outcome}}{{.Outcome}}{{end}}</td></tr>{{end}}
</table>
{{end}}

{{if .Orders}}
<h2>Orders</h2>
<table>
  <tr><th>No.</th><th>Issued</th><th>Keyword</th></tr>
  {{range .Orders}}<tr><td>{{.OrderNumber}}</td><td>{{.IssueDate.Format "January 2, 2006"}}</td><td>{{if .Keyword}}{{.Keyword}}{{end}}</td></tr>{{end}}
</table>
{{end}}

</body>
</html>
`))

type hearingPackageParty struct {
	Name string
	Role string
}

type hearingPackageData struct {
	Appeal   *models.Appeal
	Prepared string
	Parties  []hearingPackageParty
	Panel    *models.PanelComposition
	Schedule []models.ScheduleEntry
	Orders   []models.Order
}

// RenderHearingPackageHTML builds the HTML summary for an appeal.
func RenderHearingPackageHTML(db *gorm.DB, appealID string) (string, error) {
	appeal, err := GetAppeal(db, appealID)
	if err != nil {
		return "", err
	}

	data := hearingPackageData{
		Appeal:   appeal,
		Prepared: time.Now().Format("January 2, 2006"),
		Schedule: appeal.Schedule,
		Orders:   appeal.Orders,
	}
	for i := range appeal.Parties {
		p := &appeal.Parties[i]
		data.Parties = append(data.Parties, hearingPackageParty{
			Name: p.DisplayName(),
			Role: p.PartyType,
		})
	}
	if len(appeal.Panels) > 0 {
		data.Panel = &appeal.Panels[len(appeal.Panels)-1]
	}

	var buf bytes.Buffer
	if err := hearingPackageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render hearing package: %w", err)
	}
	return buf.String(), nil
}

// CompileHearingPackage renders the appeal summary to PDF, stores it, and
// records it as a document in the Hearing Package category.
func CompileHearingPackage(ctx context.Context, db *gorm.DB, actx AuditContext, appealID string) (*models.Document, error) {
	html, err := RenderHearingPackageHTML(db, appealID)
	if err != nil {
		return nil, err
	}

	pdf, err := GeneratePDF(ctx, html, DefaultPDFOptions())
	if err != nil {
		return nil, err
	}

	key := GenerateHearingPackageKey(appealID)
	stored, err := Storage.UploadReader(ctx, bytes.NewReader(pdf), key, "application/pdf", int64(len(pdf)))
	if err != nil {
		return nil, err
	}

	fileType := "pdf"
	doc := models.Document{
		AppealID:   appealID,
		FileName:   "hearing-package.pdf",
		FileType:   &fileType,
		FileSize:   stored.FileSize,
		StorageKey: stored.Key,
		Category:   models.DocumentCategoryHearingPackage,
		UploadedBy: ptrIfNotEmpty(actx.UserID),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "Document", doc.ID, map[string]interface{}{
			"appeal_id": appealID,
			"category":  doc.Category,
		})
	})
	if err != nil {
		_ = Storage.Delete(ctx, stored.Key)
		return nil, err
	}

	return &doc, nil
}
