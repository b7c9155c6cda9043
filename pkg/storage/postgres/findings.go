package postgres

import (
	"context"
	"fmt"
	"time"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	findingsTable = "scan_results"
)

// severityOrder sorts error before warning before notice.
func severityOrder() exp.OrderedExpression {
	return goqu.L("CASE severity WHEN ? THEN 3 WHEN ? THEN 2 WHEN ? THEN 1 ELSE 0 END",
		string(domain.SeverityError),
		string(domain.SeverityWarning),
		string(domain.SeverityNotice),
	).Desc()
}

func (p *PgSQL) InsertFindings(ctx context.Context, findings ...domain.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	rows := make([]PgFinding, len(findings))
	for i := range findings {
		if err := rows[i].FromDomain(findings[i]); err != nil {
			return err
		}
	}

	if _, err := p.Builder.Insert(findingsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert findings into pg: %w", err)
	}

	return nil
}

// UpsertFindings refreshes unresolved duplicates in place and inserts the rest.
// There is no unique constraint backing it because append-only mode allows
// duplicates, so it should run inside a transaction.
func (p *PgSQL) UpsertFindings(ctx context.Context, findings ...domain.Finding) error {
	for _, f := range findings {
		var row PgFinding
		if err := row.FromDomain(f); err != nil {
			return err
		}

		res, err := p.Builder.Update(findingsTable).
			Set(goqu.Record{
				"scanned_at":    row.ScannedAt,
				"issue_data":    row.IssueData,
				"content_title": row.ContentTitle,
			}).
			Where(
				goqu.I("content_id").Eq(row.ContentID),
				goqu.I("issue_code").Eq(row.IssueCode),
				goqu.I("element_selector").Eq(row.ElementSelector),
				goqu.I("resolved_at").IsNull(),
			).Executor().ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("could not refresh finding in pg: %w", err)
		}

		updated, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("could not get affected rows: %w", err)
		}
		if updated > 0 {
			continue
		}

		if _, err := p.Builder.Insert(findingsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not insert finding into pg: %w", err)
		}
	}

	return nil
}

func (p *PgSQL) DeleteUnresolvedFindings(ctx context.Context, contentIDs ...domain.ContentID) (int64, error) {
	w := []goqu.Expression{goqu.I("resolved_at").IsNull()}
	if len(contentIDs) > 0 {
		ids := make([]int64, len(contentIDs))
		for i, id := range contentIDs {
			ids[i] = int64(id)
		}
		w = append(w, goqu.I("content_id").In(ids))
	}

	res, err := p.Builder.Delete(findingsTable).Where(w...).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete unresolved findings in pg: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get affected rows: %w", err)
	}

	return deleted, nil
}

func (p *PgSQL) ResolveFinding(ctx context.Context, id domain.FindingID) (storage.ResolveOutcome, error) {
	res, err := p.Builder.Update(findingsTable).
		Set(goqu.Record{"resolved_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(
			goqu.I("id").Eq(int64(id)),
			goqu.I("resolved_at").IsNull(),
		).Executor().ExecContext(ctx)
	if err != nil {
		return storage.ResolveNotFound, fmt.Errorf("could not resolve finding in pg: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return storage.ResolveNotFound, fmt.Errorf("could not get affected rows: %w", err)
	}
	if updated > 0 {
		return storage.ResolveResolved, nil
	}

	// nothing changed, tell apart an already resolved row from a missing one
	count, err := p.Builder.From(findingsTable).Where(goqu.I("id").Eq(int64(id))).CountContext(ctx)
	if err != nil {
		return storage.ResolveNotFound, fmt.Errorf("could not look up finding in pg: %w", err)
	}
	if count == 0 {
		return storage.ResolveNotFound, nil
	}

	return storage.ResolveAlreadyResolved, nil
}

func (p *PgSQL) SummarizeFindings(ctx context.Context, day *time.Time) (domain.SeveritySummary, error) {
	ds := p.Builder.From(findingsTable).
		Select(goqu.I("severity"), goqu.COUNT("*").As("count")).
		GroupBy(goqu.I("severity"))
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		ds = ds.Where(
			goqu.I("scanned_at").Gte(start),
			goqu.I("scanned_at").Lt(start.AddDate(0, 0, 1)),
		)
	}

	var rows []struct {
		Severity string `db:"severity"`
		Count    int    `db:"count"`
	}
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return domain.SeveritySummary{}, fmt.Errorf("could not summarize findings in pg: %w", err)
	}

	var summary domain.SeveritySummary
	for _, row := range rows {
		summary.Total += row.Count
		switch domain.Severity(row.Severity) {
		case domain.SeverityError:
			summary.Errors += row.Count
		case domain.SeverityWarning:
			summary.Warnings += row.Count
		case domain.SeverityNotice:
			summary.Notices += row.Count
		}
	}

	return summary, nil
}

func (p *PgSQL) QueryFindings(ctx context.Context, query storage.FindingQuery) (storage.FindingPage, error) {
	ds := p.Builder.From(findingsTable)
	if query.Severity != "" {
		ds = ds.Where(goqu.I("severity").Eq(string(query.Severity)))
	}

	total, err := ds.CountContext(ctx)
	if err != nil {
		return storage.FindingPage{}, fmt.Errorf("could not count findings in pg: %w", err)
	}

	page, perPage := query.Page, query.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}

	var rows []PgFinding
	if err := ds.Order(severityOrder(), goqu.I("scanned_at").Desc(), goqu.I("id").Desc()).
		Offset(uint((page - 1) * perPage)). //nolint: gosec
		Limit(uint(perPage)).                //nolint: gosec
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.FindingPage{}, fmt.Errorf("could not fetch findings from pg: %w", err)
	}

	findings, err := pgFindingsToDomain(rows)
	if err != nil {
		return storage.FindingPage{}, err
	}

	return storage.FindingPage{
		Findings: findings,
		Total:    int(total),
	}, nil
}

func (p *PgSQL) AllFindings(ctx context.Context) ([]domain.Finding, error) {
	var rows []PgFinding
	if err := p.Builder.From(findingsTable).
		Order(severityOrder(), goqu.I("scanned_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch findings from pg: %w", err)
	}

	return pgFindingsToDomain(rows)
}
