package postgres

import (
	"context"
	"fmt"

	"a11yscanner/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	contentsTable     = "contents"
	contentTypesTable = "content_types"
)

func (p *PgSQL) ContentTypes(ctx context.Context) ([]domain.ContentType, error) {
	var rows []PgContentType
	if err := p.Builder.From(contentTypesTable).
		Order(goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch content types from pg: %w", err)
	}

	out := make([]domain.ContentType, len(rows))
	for i, row := range rows {
		out[i] = domain.ContentType{Name: row.Name, Label: row.Label, Public: row.Public}
	}

	return out, nil
}

func (p *PgSQL) CountContents(ctx context.Context, contentTypes []string) (int, error) {
	if len(contentTypes) == 0 {
		return 0, nil
	}

	count, err := p.Builder.From(contentsTable).
		Where(
			goqu.I("content_type").In(contentTypes),
			goqu.I("status").Eq(domain.ContentStatusPublish),
		).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count contents in pg: %w", err)
	}

	return int(count), nil
}

func (p *PgSQL) ContentPage(ctx context.Context,
	contentTypes []string,
	offset, limit int) ([]domain.ContentItem, error) {
	if len(contentTypes) == 0 || limit <= 0 {
		return nil, nil
	}

	var rows []PgContent
	if err := p.Builder.From(contentsTable).
		Where(
			goqu.I("content_type").In(contentTypes),
			goqu.I("status").Eq(domain.ContentStatusPublish),
		).
		Order(goqu.I("id").Asc()).
		Offset(uint(max(offset, 0))). //nolint: gosec
		Limit(uint(limit)).           //nolint: gosec
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch contents from pg: %w", err)
	}

	out := make([]domain.ContentItem, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}

	return out, nil
}

func (p *PgSQL) ContentByID(ctx context.Context, id domain.ContentID) (*domain.ContentItem, error) {
	var row PgContent
	found, err := p.Builder.From(contentsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch content by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) QuickStats(ctx context.Context) (domain.QuickStats, error) {
	scannable := p.Builder.From(contentTypesTable).
		Select(goqu.I("name")).
		Where(
			goqu.I("public").IsTrue(),
			goqu.I("name").Neq(domain.AttachmentContentType),
		)

	total, err := p.Builder.From(contentsTable).
		Where(
			goqu.I("content_type").In(scannable),
			goqu.I("status").Eq(domain.ContentStatusPublish),
		).CountContext(ctx)
	if err != nil {
		return domain.QuickStats{}, fmt.Errorf("could not count published contents in pg: %w", err)
	}

	images, err := p.Builder.From(contentsTable).
		Where(
			goqu.I("content_type").Eq(domain.AttachmentContentType),
			goqu.I("mime_type").Like("image/%"),
			goqu.L("btrim(alt_text) = ''"),
		).CountContext(ctx)
	if err != nil {
		return domain.QuickStats{}, fmt.Errorf("could not count images without alt in pg: %w", err)
	}

	return domain.QuickStats{
		TotalContent:     int(total),
		ImagesWithoutAlt: int(images),
	}, nil
}

func (p *PgSQL) StoreContents(ctx context.Context, items ...domain.ContentItem) ([]domain.ContentItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	rows := make([]PgContent, len(items))
	for i := range items {
		rows[i].FromDomain(items[i])
	}

	var stored []PgContent
	if err := p.Builder.Insert(contentsTable).
		Rows(rows).
		Returning(&PgContent{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store contents into pg: %w", err)
	}

	out := make([]domain.ContentItem, len(stored))
	for i := range stored {
		out[i] = *stored[i].ToDomain()
	}

	return out, nil
}
