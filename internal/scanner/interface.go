package scanner

import (
	"context"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/storage"
)

//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Coordinator interface {
	// Start computes the work of a new scan, clears unresolved findings of
	// previous scans and persists a fresh scan session.
	Start(ctx context.Context, req StartRequest) (*domain.ScanSession, error)
	// ProcessBatch scans one page of the session's content. An empty page
	// completes the scan and writes its history record.
	ProcessBatch(ctx context.Context, scanID domain.ScanID, batchIndex int) (*BatchResult, error)
	// Progress returns the live session.
	Progress(ctx context.Context, scanID domain.ScanID) (*domain.ScanSession, error)
	// RunToCompletion starts a scan and processes every batch in order.
	RunToCompletion(ctx context.Context, req StartRequest) (*domain.ScanHistoryRecord, error)
	// RescanContent replaces the unresolved findings of a single content item.
	RescanContent(ctx context.Context, contentID domain.ContentID) (int, error)
	// EnqueueScan schedules RunToCompletion on the background workers.
	EnqueueScan(ctx context.Context, req StartRequest) (bool, error)
	// EnqueueRescan schedules RescanContent on the background workers.
	EnqueueRescan(ctx context.Context, contentID domain.ContentID) (bool, error)
	// Results returns one page of findings.
	Results(ctx context.Context, query storage.FindingQuery) (*ResultsPage, error)
	// Resolve marks a finding as resolved. Resolving twice is not an error.
	Resolve(ctx context.Context, findingID domain.FindingID) error
}
