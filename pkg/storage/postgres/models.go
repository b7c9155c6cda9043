package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"a11yscanner/pkg/domain"

	"github.com/google/uuid"
)

type PgFinding struct {
	ID              int64           `db:"id"               goqu:"skipinsert"`
	ContentID       int64           `db:"content_id"`
	ContentTitle    string          `db:"content_title"`
	ScanType        string          `db:"scan_type"`
	IssueCode       string          `db:"issue_code"`
	Severity        string          `db:"severity"`
	ElementSelector string          `db:"element_selector"`
	IssueData       json.RawMessage `db:"issue_data"`
	ScannedAt       time.Time       `db:"scanned_at"`
	ResolvedAt      sql.NullTime    `db:"resolved_at"      goqu:"skipinsert"`
}

func (p *PgFinding) ToDomain() (*domain.Finding, error) {
	var data domain.IssueData
	if len(p.IssueData) > 0 {
		if err := json.Unmarshal(p.IssueData, &data); err != nil {
			return nil, fmt.Errorf("could not unmarshal issue data: %w", err)
		}
	}

	f := &domain.Finding{
		ID:              domain.FindingID(p.ID),
		ContentID:       domain.ContentID(p.ContentID),
		ContentTitle:    p.ContentTitle,
		ScanType:        domain.ScanType(p.ScanType),
		IssueCode:       domain.IssueCode(p.IssueCode),
		Severity:        domain.Severity(p.Severity),
		ElementSelector: p.ElementSelector,
		IssueData:       data,
		ScannedAt:       p.ScannedAt,
	}
	if p.ResolvedAt.Valid {
		resolvedAt := p.ResolvedAt.Time
		f.ResolvedAt = &resolvedAt
	}

	return f, nil
}

func (p *PgFinding) FromDomain(f domain.Finding) error {
	data, err := json.Marshal(f.IssueData)
	if err != nil {
		return fmt.Errorf("could not marshal issue data: %w", err)
	}
	if f.IssueData == nil {
		data = []byte("{}")
	}

	scannedAt := f.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}

	*p = PgFinding{
		ID:              int64(f.ID),
		ContentID:       int64(f.ContentID),
		ContentTitle:    f.ContentTitle,
		ScanType:        string(f.ScanType),
		IssueCode:       string(f.IssueCode),
		Severity:        string(f.Severity),
		ElementSelector: f.ElementSelector,
		IssueData:       data,
		ScannedAt:       scannedAt,
	}
	if f.ResolvedAt != nil {
		p.ResolvedAt = sql.NullTime{Time: *f.ResolvedAt, Valid: true}
	}

	return nil
}

func pgFindingsToDomain(rows []PgFinding) ([]domain.Finding, error) {
	out := make([]domain.Finding, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgScanSession struct {
	ID            uuid.UUID       `db:"id"`
	ScanType      string          `db:"scan_type"`
	TotalBatches  int             `db:"total_batches"`
	BatchSize     int             `db:"batch_size"`
	CurrentBatch  int             `db:"current_batch"`
	TotalItems    int             `db:"total_items"`
	ScannedItems  int             `db:"scanned_items"`
	ContentTypes  json.RawMessage `db:"content_types"`
	ExcludedTypes json.RawMessage `db:"excluded_types"`
	MaxItems      int             `db:"max_items"`
	State         string          `db:"state"`
	StartedAt     time.Time       `db:"started_at"`
	ExpiresAt     time.Time       `db:"expires_at"`
}

func (p *PgScanSession) ToDomain() (*domain.ScanSession, error) {
	var contentTypes, excludedTypes []string
	if err := json.Unmarshal(p.ContentTypes, &contentTypes); err != nil {
		return nil, fmt.Errorf("could not unmarshal content types: %w", err)
	}
	if err := json.Unmarshal(p.ExcludedTypes, &excludedTypes); err != nil {
		return nil, fmt.Errorf("could not unmarshal excluded types: %w", err)
	}

	return &domain.ScanSession{
		ID:            domain.ScanID(p.ID),
		ScanType:      domain.ScanType(p.ScanType),
		TotalBatches:  p.TotalBatches,
		BatchSize:     p.BatchSize,
		CurrentBatch:  p.CurrentBatch,
		TotalItems:    p.TotalItems,
		ScannedItems:  p.ScannedItems,
		ContentTypes:  contentTypes,
		ExcludedTypes: excludedTypes,
		MaxItems:      p.MaxItems,
		State:         domain.ScanState(p.State),
		StartedAt:     p.StartedAt,
		ExpiresAt:     p.ExpiresAt,
	}, nil
}

func (p *PgScanSession) FromDomain(s domain.ScanSession) error {
	contentTypes, err := marshalStrings(s.ContentTypes)
	if err != nil {
		return fmt.Errorf("could not marshal content types: %w", err)
	}
	excludedTypes, err := marshalStrings(s.ExcludedTypes)
	if err != nil {
		return fmt.Errorf("could not marshal excluded types: %w", err)
	}

	*p = PgScanSession{
		ID:            uuid.UUID(s.ID),
		ScanType:      string(s.ScanType),
		TotalBatches:  s.TotalBatches,
		BatchSize:     s.BatchSize,
		CurrentBatch:  s.CurrentBatch,
		TotalItems:    s.TotalItems,
		ScannedItems:  s.ScannedItems,
		ContentTypes:  contentTypes,
		ExcludedTypes: excludedTypes,
		MaxItems:      s.MaxItems,
		State:         string(s.State),
		StartedAt:     s.StartedAt,
		ExpiresAt:     s.ExpiresAt,
	}

	return nil
}

// marshalStrings encodes nil as an empty JSON array rather than null.
func marshalStrings(values []string) (json.RawMessage, error) {
	if values == nil {
		values = []string{}
	}

	return json.Marshal(values) //nolint: wrapcheck
}

type PgScanHistory struct {
	ID           int64     `db:"id"            goqu:"skipinsert"`
	ScanType     string    `db:"scan_type"`
	TotalIssues  int       `db:"total_issues"`
	Errors       int       `db:"errors"`
	Warnings     int       `db:"warnings"`
	Notices      int       `db:"notices"`
	PostsScanned int       `db:"posts_scanned"`
	ScannedAt    time.Time `db:"scanned_at"`
}

func (p *PgScanHistory) ToDomain() *domain.ScanHistoryRecord {
	return &domain.ScanHistoryRecord{
		ID:           p.ID,
		ScanType:     domain.ScanType(p.ScanType),
		Total:        p.TotalIssues,
		Errors:       p.Errors,
		Warnings:     p.Warnings,
		Notices:      p.Notices,
		ItemsScanned: p.PostsScanned,
		ScannedAt:    p.ScannedAt,
	}
}

func (p *PgScanHistory) FromDomain(r domain.ScanHistoryRecord) {
	scannedAt := r.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}

	*p = PgScanHistory{
		ID:           r.ID,
		ScanType:     string(r.ScanType),
		TotalIssues:  r.Total,
		Errors:       r.Errors,
		Warnings:     r.Warnings,
		Notices:      r.Notices,
		PostsScanned: r.ItemsScanned,
		ScannedAt:    scannedAt,
	}
}

type PgContentType struct {
	Name   string `db:"name"`
	Label  string `db:"label"`
	Public bool   `db:"public"`
}

type PgContent struct {
	ID          int64     `db:"id"           goqu:"skipinsert"`
	Title       string    `db:"title"`
	ContentType string    `db:"content_type"`
	Status      string    `db:"status"`
	HTMLBody    string    `db:"html_body"`
	MimeType    string    `db:"mime_type"`
	AltText     string    `db:"alt_text"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
}

func (p *PgContent) ToDomain() *domain.ContentItem {
	return &domain.ContentItem{
		ID:          domain.ContentID(p.ID),
		Title:       p.Title,
		ContentType: p.ContentType,
		Status:      p.Status,
		HTMLBody:    p.HTMLBody,
		MimeType:    p.MimeType,
		AltText:     p.AltText,
	}
}

func (p *PgContent) FromDomain(c domain.ContentItem) {
	status := c.Status
	if status == "" {
		status = domain.ContentStatusPublish
	}

	*p = PgContent{
		ID:          int64(c.ID),
		Title:       c.Title,
		ContentType: c.ContentType,
		Status:      status,
		HTMLBody:    c.HTMLBody,
		MimeType:    c.MimeType,
		AltText:     c.AltText,
	}
}
