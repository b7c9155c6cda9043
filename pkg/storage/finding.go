package storage

import (
	"context"
	"time"

	"a11yscanner/pkg/domain"
)

// ResolveOutcome tells apart the results of resolving a finding.
type ResolveOutcome int

const (
	// ResolveNotFound means no finding has the given id.
	ResolveNotFound ResolveOutcome = iota
	// ResolveResolved means resolved_at moved from NULL to now.
	ResolveResolved
	// ResolveAlreadyResolved means the finding was resolved before and was left untouched.
	ResolveAlreadyResolved
)

// FindingQuery selects one page of findings.
type FindingQuery struct {
	// Page is 1-based.
	Page int
	// PerPage is the page size.
	PerPage int
	// Severity filters on a single severity when non-empty.
	Severity domain.Severity
}

// FindingPage is one page of findings together with the total number of
// findings matching the query.
type FindingPage struct {
	Findings []domain.Finding
	Total    int
}

// FindingStorage persists findings produced by the rule evaluators.
type FindingStorage interface {
	// InsertFindings appends findings. Existing rows are never deduplicated, so
	// repeated scans accumulate identical findings.
	InsertFindings(ctx context.Context, findings ...domain.Finding) error
	// UpsertFindings inserts findings unless an unresolved finding with the same
	// (content id, issue code, element selector) already exists, in which case
	// only its scanned_at and issue data are refreshed.
	UpsertFindings(ctx context.Context, findings ...domain.Finding) error
	// DeleteUnresolvedFindings removes every finding that was not resolved. When
	// content ids are given, only findings of those items are removed.
	DeleteUnresolvedFindings(ctx context.Context, contentIDs ...domain.ContentID) (int64, error)
	// ResolveFinding sets resolved_at to now when it is NULL. Resolving twice
	// leaves the first timestamp in place.
	ResolveFinding(ctx context.Context, id domain.FindingID) (ResolveOutcome, error)
	// SummarizeFindings counts findings grouped by severity. When day is not nil
	// only findings scanned on that calendar day (in day's location) are counted.
	SummarizeFindings(ctx context.Context, day *time.Time) (domain.SeveritySummary, error)
	// QueryFindings returns a page of findings ordered by severity descending
	// then by scanned_at descending.
	QueryFindings(ctx context.Context, query FindingQuery) (FindingPage, error)
	// AllFindings returns every finding in the same order as QueryFindings.
	AllFindings(ctx context.Context) ([]domain.Finding, error)
}
