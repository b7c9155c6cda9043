package domain

import "time"

// FindingID identifies a persisted finding.
type FindingID int64

// ContentID identifies a content item in the host content store.
type ContentID int64

// ScanType selects which rule families a scan runs.
type ScanType string

const (
	// ScanTypeFull runs every rule family.
	ScanTypeFull ScanType = "full"
	// ScanTypeImages runs the image rule only.
	ScanTypeImages ScanType = "images"
	// ScanTypeHeadings runs the heading rule only.
	ScanTypeHeadings ScanType = "headings"
	// ScanTypeLinks runs the link rule only.
	ScanTypeLinks ScanType = "links"
)

// ParseScanType maps a raw value to a ScanType. Unknown values fall back to
// ScanTypeFull.
func ParseScanType(raw string) ScanType {
	switch ScanType(raw) {
	case ScanTypeImages, ScanTypeHeadings, ScanTypeLinks:
		return ScanType(raw)
	default:
		return ScanTypeFull
	}
}

// Severity is fixed per issue code.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNotice  Severity = "notice"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	return s == SeverityError || s == SeverityWarning || s == SeverityNotice
}

// Rank orders severities for sorting, higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 3
	case SeverityWarning:
		return 2
	case SeverityNotice:
		return 1
	default:
		return 0
	}
}

// IssueCode is the stable identifier of a detected defect.
type IssueCode string

const (
	IssueImageNoAlt      IssueCode = "img_no_alt"
	IssueImageEmptyAlt   IssueCode = "img_empty_alt"
	IssueHeadingSkip     IssueCode = "heading_skip"
	IssueHeadingEmpty    IssueCode = "heading_empty"
	IssueLinkGenericText IssueCode = "link_generic_text"
	IssueLinkEmpty       IssueCode = "link_empty"
)

var issueSeverities = map[IssueCode]Severity{ //nolint: gochecknoglobals
	IssueImageNoAlt:      SeverityError,
	IssueImageEmptyAlt:   SeverityWarning,
	IssueHeadingSkip:     SeverityWarning,
	IssueHeadingEmpty:    SeverityError,
	IssueLinkGenericText: SeverityWarning,
	IssueLinkEmpty:       SeverityError,
}

// Severity returns the fixed severity of the issue code. Unknown codes are
// reported as notices.
func (c IssueCode) Severity() Severity {
	if s, ok := issueSeverities[c]; ok {
		return s
	}

	return SeverityNotice
}

// IssueData carries rule specific fields. It always contains the "wcag"
// criterion id and a human readable "message".
type IssueData map[string]any

// WCAG returns the WCAG criterion id stored in the data.
func (d IssueData) WCAG() string {
	s, _ := d["wcag"].(string)

	return s
}

// Message returns the human readable message stored in the data.
func (d IssueData) Message() string {
	s, _ := d["message"].(string)

	return s
}

// Finding is one detected accessibility defect instance. It is immutable once
// stored, except for ResolvedAt which moves once from nil to a timestamp.
type Finding struct {
	ID              FindingID  `json:"id"`
	ContentID       ContentID  `json:"contentId"`
	ContentTitle    string     `json:"title,omitempty"`
	ScanType        ScanType   `json:"scanType"`
	IssueCode       IssueCode  `json:"issueCode"`
	Severity        Severity   `json:"severity"`
	ElementSelector string     `json:"elementSelector"`
	IssueData       IssueData  `json:"issueData"`
	ScannedAt       time.Time  `json:"scannedAt"`
	ResolvedAt      *time.Time `json:"resolvedAt"`
}

// Resolved reports whether the finding was marked as resolved.
func (f Finding) Resolved() bool {
	return f.ResolvedAt != nil
}

// NewFinding builds a finding with the severity fixed by its issue code.
func NewFinding(contentID ContentID, scanType ScanType, code IssueCode, selector string, data IssueData) Finding {
	return Finding{
		ContentID:       contentID,
		ScanType:        scanType,
		IssueCode:       code,
		Severity:        code.Severity(),
		ElementSelector: selector,
		IssueData:       data,
	}
}

// SeveritySummary aggregates finding counts grouped by severity.
type SeveritySummary struct {
	Total    int `json:"total"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Notices  int `json:"notices"`
}

// Add counts one finding of the given severity.
func (s *SeveritySummary) Add(severity Severity) {
	s.Total++
	switch severity {
	case SeverityError:
		s.Errors++
	case SeverityWarning:
		s.Warnings++
	case SeverityNotice:
		s.Notices++
	}
}
