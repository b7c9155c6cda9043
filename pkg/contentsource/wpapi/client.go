// Package wpapi provides a contentsource.Source backed by the REST API of a
// live WordPress site (wp-json/wp/v2).
package wpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/serrors"
)

const (
	// maxPerPage is the largest page size the WordPress REST API accepts.
	maxPerPage = 100

	totalHeader      = "X-WP-Total"
	totalPagesHeader = "X-WP-TotalPages"
)

// Options configures the WordPress REST client.
type Options struct {
	// BaseURL is the site root, e.g. https://example.com.
	BaseURL string
	// Username and Password are optional application password credentials.
	// They are needed to read non-public content.
	Username string
	Password string
}

// Client reads content through the WordPress REST API. It is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	options    Options
}

// Ensure Client conforms to the contentsource.Source interface at compile time.
var _ contentsource.Source = (*Client)(nil)

// New constructs a Client. The base URL is normalized with NormalizeBaseURL.
func New(httpClient *http.Client, options Options) (*Client, error) {
	baseURL, err := NormalizeBaseURL(options.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		options:    options,
	}, nil
}

type wpType struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	RestBase string `json:"rest_base"`
}

type wpRendered struct {
	Rendered string `json:"rendered"`
}

type wpPost struct {
	ID      int64      `json:"id"`
	Type    string     `json:"type"`
	Status  string     `json:"status"`
	Title   wpRendered `json:"title"`
	Content wpRendered `json:"content"`
}

func (p wpPost) toDomain() domain.ContentItem {
	return domain.ContentItem{
		ID:          domain.ContentID(p.ID),
		Title:       p.Title.Rendered,
		ContentType: p.Type,
		Status:      p.Status,
		HTMLBody:    p.Content.Rendered,
	}
}

type wpMedia struct {
	ID      int64  `json:"id"`
	AltText string `json:"alt_text"`
}

// get performs a GET against /wp-json/wp/v2/<route>. A 404 is reported as
// serrors.ErrNotFound and a 429 as serrors.ErrRateLimited.
func (c *Client) get(ctx context.Context, route string, query url.Values, out any) (http.Header, error) {
	u := c.baseURL + "/wp-json/wp/v2/" + strings.TrimLeft(route, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.options.Username != "" {
		req.SetBasicAuth(c.options.Username, c.options.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.Header, serrors.With(serrors.ErrNotFound, "%s not found", route)
	case resp.StatusCode == http.StatusTooManyRequests:
		return resp.Header, serrors.Wrap(serrors.ErrRateLimited,
			&contentsource.RateLimitError{RetryAfter: RetryAfter(resp.Header, time.Now())}, "%s", route)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return resp.Header, fmt.Errorf("request to %s failed with %d: %s", route, resp.StatusCode,
			strings.TrimSpace(string(b)))
	}

	if out != nil {
		if err := json.Unmarshal(b, out); err != nil {
			return resp.Header, fmt.Errorf("could not decode response: %w", err)
		}
	}

	return resp.Header, nil
}

// RetryAfter returns how long the server asked to wait, from either the
// delay-seconds or the HTTP-date form of Retry-After. It returns 0 when the
// header is missing or malformed.
func RetryAfter(h http.Header, now time.Time) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return max(time.Duration(secs)*time.Second, 0)
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}

	return 0
}

func headerInt(h http.Header, key string) int {
	n, err := strconv.Atoi(h.Get(key))
	if err != nil {
		return 0
	}

	return n
}

func (c *Client) types(ctx context.Context) (map[string]wpType, error) {
	var types map[string]wpType
	if _, err := c.get(ctx, "types", nil, &types); err != nil {
		return nil, fmt.Errorf("could not list content types: %w", err)
	}

	return types, nil
}

// ContentTypes lists the types exposed through the REST API. Types without a
// REST route cannot be read and are reported as not public.
func (c *Client) ContentTypes(ctx context.Context) ([]domain.ContentType, error) {
	types, err := c.types(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ContentType, 0, len(types))
	for slug, t := range types {
		if t.Slug != "" {
			slug = t.Slug
		}
		out = append(out, domain.ContentType{
			Name:   slug,
			Label:  t.Name,
			Public: t.RestBase != "",
		})
	}
	slices.SortFunc(out, func(a, b domain.ContentType) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out, nil
}

// restBases maps the requested type slugs to REST routes, keeping the order
// of contentTypes and skipping unknown types.
func (c *Client) restBases(ctx context.Context, contentTypes []string) ([]string, error) {
	types, err := c.types(ctx)
	if err != nil {
		return nil, err
	}

	bySlug := make(map[string]string, len(types))
	for slug, t := range types {
		if t.Slug != "" {
			slug = t.Slug
		}
		bySlug[slug] = t.RestBase
	}

	out := make([]string, 0, len(contentTypes))
	for _, ct := range contentTypes {
		if base := bySlug[ct]; base != "" {
			out = append(out, base)
		}
	}

	return out, nil
}

func (c *Client) countRoute(ctx context.Context, route string) (int, error) {
	h, err := c.get(ctx, route, url.Values{
		"status":   {domain.ContentStatusPublish},
		"per_page": {"1"},
		"_fields":  {"id"},
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("could not count %s: %w", route, err)
	}

	return headerInt(h, totalHeader), nil
}

// CountContents sums the X-WP-Total header of every requested type.
func (c *Client) CountContents(ctx context.Context, contentTypes []string) (int, error) {
	routes, err := c.restBases(ctx, contentTypes)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, route := range routes {
		n, err := c.countRoute(ctx, route)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

// ContentPage walks the requested types in order, each ordered by ascending
// id, and returns the window [offset, offset+limit) of their concatenation.
func (c *Client) ContentPage(ctx context.Context,
	contentTypes []string,
	offset, limit int) ([]domain.ContentItem, error) {
	if limit <= 0 {
		return nil, nil
	}
	limit = min(limit, maxPerPage)

	routes, err := c.restBases(ctx, contentTypes)
	if err != nil {
		return nil, err
	}

	var out []domain.ContentItem
	for _, route := range routes {
		if len(out) >= limit {
			break
		}

		count, err := c.countRoute(ctx, route)
		if err != nil {
			return nil, err
		}
		if offset >= count {
			offset -= count

			continue
		}

		var posts []wpPost
		if _, err := c.get(ctx, route, url.Values{
			"status":   {domain.ContentStatusPublish},
			"orderby":  {"id"},
			"order":    {"asc"},
			"offset":   {strconv.Itoa(offset)},
			"per_page": {strconv.Itoa(limit - len(out))},
			"_fields":  {"id,type,status,title,content"},
		}, &posts); err != nil {
			return nil, fmt.Errorf("could not fetch %s: %w", route, err)
		}
		for _, p := range posts {
			out = append(out, p.toDomain())
		}
		offset = 0
	}

	return out, nil
}

// ContentByID looks the id up in every readable type. The REST API has no
// type-agnostic lookup.
func (c *Client) ContentByID(ctx context.Context, id domain.ContentID) (*domain.ContentItem, error) {
	types, err := c.ContentTypes(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(types))
	for _, t := range types {
		if t.Public && t.Name != domain.AttachmentContentType {
			names = append(names, t.Name)
		}
	}
	routes, err := c.restBases(ctx, names)
	if err != nil {
		return nil, err
	}

	for _, route := range routes {
		var post wpPost
		_, err := c.get(ctx, route+"/"+strconv.FormatInt(int64(id), 10), url.Values{
			"_fields": {"id,type,status,title,content"},
		}, &post)
		if errors.Is(err, serrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not fetch content %d: %w", id, err)
		}

		item := post.toDomain()

		return &item, nil
	}

	return nil, nil
}

// QuickStats counts published scannable items and pages through the image
// media library to count attachments with blank alt text.
func (c *Client) QuickStats(ctx context.Context) (domain.QuickStats, error) {
	types, err := c.ContentTypes(ctx)
	if err != nil {
		return domain.QuickStats{}, err
	}

	total, err := c.CountContents(ctx, contentsource.ScannableTypes(types, nil))
	if err != nil {
		return domain.QuickStats{}, err
	}

	missing := 0
	for page := 1; ; page++ {
		var media []wpMedia
		h, err := c.get(ctx, "media", url.Values{
			"media_type": {"image"},
			"per_page":   {strconv.Itoa(maxPerPage)},
			"page":       {strconv.Itoa(page)},
			"_fields":    {"id,alt_text"},
		}, &media)
		if err != nil {
			return domain.QuickStats{}, fmt.Errorf("could not list media: %w", err)
		}
		for _, m := range media {
			if strings.TrimSpace(m.AltText) == "" {
				missing++
			}
		}
		if len(media) == 0 || page >= headerInt(h, totalPagesHeader) {
			break
		}
	}

	return domain.QuickStats{
		TotalContent:     total,
		ImagesWithoutAlt: missing,
	}, nil
}
