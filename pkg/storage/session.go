package storage

import (
	"context"
	"time"

	"a11yscanner/pkg/domain"
)

// SessionProgress is applied to a scan session after a batch. Counters never
// move backwards: the stored value is the greater of the current and the new one.
type SessionProgress struct {
	CurrentBatch int
	ScannedItems int
	State        domain.ScanState
	// ExpiresAt extends the session TTL when it is later than the stored value.
	ExpiresAt time.Time
}

// SessionStorage keeps scan sessions. Expiry is not enforced here; callers
// compare ExpiresAt with their clock on read.
type SessionStorage interface {
	// CreateScanSession stores a new session and returns it as persisted.
	CreateScanSession(ctx context.Context, session domain.ScanSession) (*domain.ScanSession, error)
	// ScanSessionByID returns the session, or nil when it does not exist.
	ScanSessionByID(ctx context.Context, id domain.ScanID) (*domain.ScanSession, error)
	// AdvanceScanSession records batch progress and returns the updated
	// session, or nil when it does not exist.
	AdvanceScanSession(ctx context.Context, id domain.ScanID, progress SessionProgress) (*domain.ScanSession, error)
	// DeleteScanSession removes the session. Deleting a missing session is not an error.
	DeleteScanSession(ctx context.Context, id domain.ScanID) error
	// DeleteExpiredScanSessions removes every session whose ExpiresAt is not
	// after now and returns how many were removed.
	DeleteExpiredScanSessions(ctx context.Context, now time.Time) (int64, error)
}

// HistoryStorage keeps one record per completed scan.
type HistoryStorage interface {
	// StoreScanHistory appends a history record and returns it as persisted.
	StoreScanHistory(ctx context.Context, record domain.ScanHistoryRecord) (*domain.ScanHistoryRecord, error)
	// LatestScanHistory returns the most recent record, or nil when no scan
	// completed yet.
	LatestScanHistory(ctx context.Context) (*domain.ScanHistoryRecord, error)
}
