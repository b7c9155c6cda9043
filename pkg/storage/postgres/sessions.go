package postgres

import (
	"context"
	"fmt"
	"time"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	sessionsTable = "scan_sessions"
	historyTable  = "scan_history"
)

func (p *PgSQL) CreateScanSession(ctx context.Context, session domain.ScanSession) (*domain.ScanSession, error) {
	var row PgScanSession
	if err := row.FromDomain(session); err != nil {
		return nil, err
	}

	var stored PgScanSession
	if _, err := p.Builder.Insert(sessionsTable).
		Rows(row).
		Returning(&PgScanSession{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scan session into pg: %w", err)
	}

	return stored.ToDomain()
}

func (p *PgSQL) ScanSessionByID(ctx context.Context, id domain.ScanID) (*domain.ScanSession, error) {
	var row PgScanSession
	found, err := p.Builder.From(sessionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch scan session by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// AdvanceScanSession never lowers the counters and never leaves the completed
// state, so a replayed or racing batch cannot move progress backwards.
func (p *PgSQL) AdvanceScanSession(ctx context.Context,
	id domain.ScanID,
	progress storage.SessionProgress) (*domain.ScanSession, error) {
	record := goqu.Record{
		"current_batch": goqu.L("GREATEST(current_batch, ?)", progress.CurrentBatch),
		"scanned_items": goqu.L("GREATEST(scanned_items, ?)", progress.ScannedItems),
		"state": goqu.L("CASE WHEN state = ? THEN state ELSE ? END",
			string(domain.ScanStateCompleted), string(progress.State)),
	}
	if !progress.ExpiresAt.IsZero() {
		record["expires_at"] = goqu.L("GREATEST(expires_at, ?)", progress.ExpiresAt)
	}

	var row PgScanSession
	found, err := p.Builder.Update(sessionsTable).
		Set(record).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgScanSession{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not advance scan session in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteScanSession(ctx context.Context, id domain.ScanID) error {
	if _, err := p.Builder.Delete(sessionsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete scan session in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteExpiredScanSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := p.Builder.Delete(sessionsTable).
		Where(goqu.I("expires_at").Lte(now)).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired scan sessions in pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted scan sessions: %w", err)
	}

	return deleted, nil
}

func (p *PgSQL) StoreScanHistory(ctx context.Context, record domain.ScanHistoryRecord) (*domain.ScanHistoryRecord, error) {
	var row PgScanHistory
	row.FromDomain(record)

	var stored PgScanHistory
	if _, err := p.Builder.Insert(historyTable).
		Rows(row).
		Returning(&PgScanHistory{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store scan history into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) LatestScanHistory(ctx context.Context) (*domain.ScanHistoryRecord, error) {
	var row PgScanHistory
	found, err := p.Builder.From(historyTable).
		Order(goqu.I("scanned_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest scan history: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
