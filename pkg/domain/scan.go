package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanID uniquely identifies a scan session.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// String returns the canonical textual form of the id.
func (id ScanID) String() string {
	return uuid.UUID(id).String()
}

// ParseScanID parses the textual form of a scan id.
func ParseScanID(raw string) (ScanID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return ScanID{}, err //nolint: wrapcheck
	}

	return ScanID(id), nil
}

// ScanState is the lifecycle state of a scan session.
type ScanState string

const (
	// ScanStateStarted indicates no batch was processed yet.
	ScanStateStarted ScanState = "started"
	// ScanStateInProgress indicates at least one batch was processed.
	ScanStateInProgress ScanState = "in_progress"
	// ScanStateCompleted indicates the content universe was exhausted.
	ScanStateCompleted ScanState = "completed"
	// ScanStateExpired indicates the session outlived its TTL.
	ScanStateExpired ScanState = "expired"
)

// ScanSession is the ephemeral progress record of one scan run.
type ScanSession struct {
	// ID is the generated session key.
	ID ScanID `json:"id"`
	// ScanType selects the rule families to run.
	ScanType ScanType `json:"scanType"`
	// TotalBatches is the number of batches computed at start, never below 1.
	TotalBatches int `json:"totalBatches"`
	// BatchSize is the page size fixed for the whole session.
	BatchSize int `json:"batchSize"`
	// CurrentBatch is the number of batches processed so far.
	CurrentBatch int `json:"currentBatch"`
	// TotalItems is the eligible item count, already clamped to MaxItems.
	TotalItems int `json:"totalItems"`
	// ScannedItems is the number of content items processed so far.
	ScannedItems int `json:"scannedItems"`
	// ContentTypes is the set of content types included in the scan.
	ContentTypes []string `json:"contentTypes"`
	// ExcludedTypes are the content types excluded by the caller.
	ExcludedTypes []string `json:"excludedTypes"`
	// MaxItems caps the number of scanned items, 0 means unlimited.
	MaxItems int `json:"maxItems"`
	// State is the lifecycle state.
	State ScanState `json:"state"`
	// StartedAt is when the session was created.
	StartedAt time.Time `json:"startedAt"`
	// ExpiresAt is when the session stops being readable.
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session outlived its TTL at the given instant.
func (s ScanSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ProgressPercent returns the rounded share of scanned items. A completed
// session is always at 100.
func (s ScanSession) ProgressPercent() int {
	if s.State == ScanStateCompleted {
		return 100
	}

	return ProgressPercent(s.ScannedItems, s.TotalItems)
}

// ProgressPercent returns round(scanned / total * 100), clamped to 0..100.
// An empty universe is reported as fully scanned.
func ProgressPercent(scanned, total int) int {
	if total <= 0 {
		return 100
	}
	if scanned >= total {
		return 100
	}
	if scanned <= 0 {
		return 0
	}

	return (scanned*100*2 + total) / (total * 2)
}

// ScanHistoryRecord is written once per completed scan.
type ScanHistoryRecord struct {
	ID           int64     `json:"id"`
	ScanType     ScanType  `json:"scanType"`
	Total        int       `json:"total"`
	Errors       int       `json:"errors"`
	Warnings     int       `json:"warnings"`
	Notices      int       `json:"notices"`
	ItemsScanned int       `json:"itemsScanned"`
	ScannedAt    time.Time `json:"scannedAt"`
}

// NewScanHistoryRecord builds a history record from a severity summary.
func NewScanHistoryRecord(scanType ScanType, summary SeveritySummary, itemsScanned int) ScanHistoryRecord {
	return ScanHistoryRecord{
		ScanType:     scanType,
		Total:        summary.Total,
		Errors:       summary.Errors,
		Warnings:     summary.Warnings,
		Notices:      summary.Notices,
		ItemsScanned: itemsScanned,
	}
}
