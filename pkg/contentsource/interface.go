// Package contentsource defines how the scanner reads host content. The
// postgres storage implements Source over the local contents table and the
// wpapi sub-package implements it over a live WordPress REST API.
//
//go:generate mockgen -package mockcontentsource -source=interface.go -destination=mock/mockcontentsource.go *
package contentsource

import (
	"context"
	"time"

	"a11yscanner/pkg/domain"
)

// Source enumerates and reads published content items. Pages are ordered by
// ascending content id so that offsets stay stable between batches.
type Source interface {
	// ContentTypes returns every registered content type, public or not.
	ContentTypes(ctx context.Context) ([]domain.ContentType, error)
	// CountContents returns the number of published items of the given types.
	CountContents(ctx context.Context, contentTypes []string) (int, error)
	// ContentPage returns up to limit published items of the given types
	// starting at offset.
	ContentPage(ctx context.Context, contentTypes []string, offset, limit int) ([]domain.ContentItem, error)
	// ContentByID returns a single item regardless of its status, or nil when
	// it does not exist.
	ContentByID(ctx context.Context, id domain.ContentID) (*domain.ContentItem, error)
	// QuickStats returns the published content count and the number of image
	// attachments lacking alt text.
	QuickStats(ctx context.Context) (domain.QuickStats, error)
}

// ScannableTypes returns the public content types minus excluded ones. The
// attachment type is never scannable.
func ScannableTypes(types []domain.ContentType, excluded []string) []string {
	skip := make(map[string]struct{}, len(excluded)+1)
	for _, e := range excluded {
		skip[e] = struct{}{}
	}
	skip[domain.AttachmentContentType] = struct{}{}

	out := make([]string, 0, len(types))
	for _, t := range types {
		if !t.Public {
			continue
		}
		if _, ok := skip[t.Name]; ok {
			continue
		}
		out = append(out, t.Name)
	}

	return out
}

// RateLimitError is wrapped into serrors.ErrRateLimited errors by sources that
// know how long the upstream asked them to wait.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limited, retry after " + e.RetryAfter.String()
}
