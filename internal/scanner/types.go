package scanner

import "a11yscanner/pkg/domain"

// StartRequest describes a scan to start.
type StartRequest struct {
	// ScanType is the raw requested type. Unknown values fall back to a full scan.
	ScanType string `json:"scanType"`
	// ExcludedTypes are content types left out of the scan. Nil means the
	// configured default applies.
	ExcludedTypes []string `json:"excludedTypes,omitempty"`
	// MaxItems caps the scanned items. Zero means the configured default
	// applies, which itself may be zero for unlimited.
	MaxItems int `json:"maxItems,omitempty"`
	// BatchSize overrides the configured batch size when positive.
	BatchSize int `json:"batchSize,omitempty"`
}

// ApplySettings fills the fields the caller left empty from the stored
// scanner settings.
func (r StartRequest) ApplySettings(s domain.ScannerSettings) StartRequest {
	if r.ExcludedTypes == nil && s.ExcludedTypes != nil {
		r.ExcludedTypes = append([]string{}, s.ExcludedTypes...)
	}
	if r.MaxItems == 0 {
		r.MaxItems = s.MaxPages
	}
	if r.BatchSize == 0 {
		r.BatchSize = s.BatchSize
	}

	return r
}

// BatchResult reports what one batch did.
type BatchResult struct {
	BatchIndex     int
	ItemsProcessed int
	IssuesFound    int
	Complete       bool
	// Progress is the rounded share of scanned items, 0..100.
	Progress int
	// History is set on the batch that completed the scan.
	History *domain.ScanHistoryRecord
}

// ResultsPage is one page of findings with its paging metadata.
type ResultsPage struct {
	Findings   []domain.Finding
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// Default and maximum page sizes of Results.
const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)
