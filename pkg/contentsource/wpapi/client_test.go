package wpapi_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/contentsource/wpapi"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

const typesJSON = `{
	"post": {"name": "Posts", "slug": "post", "rest_base": "posts"},
	"page": {"name": "Pages", "slug": "page", "rest_base": "pages"},
	"attachment": {"name": "Media", "slug": "attachment", "rest_base": "media"},
	"wp_block": {"name": "Patterns", "slug": "wp_block", "rest_base": ""}
}`

func respond(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}

	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// fakeSite serves posts with ids 1..posts and pages with ids 101..100+pages.
func fakeSite(t *testing.T, posts, pages int) rtFunc {
	t.Helper()

	items := func(base, total int, typ string, r *http.Request) *http.Response {
		q := r.URL.Query()
		h := http.Header{}
		h.Set("X-WP-Total", strconv.Itoa(total))
		require.Equal(t, "publish", q.Get("status"))

		offset, _ := strconv.Atoi(q.Get("offset"))
		perPage, _ := strconv.Atoi(q.Get("per_page"))
		var parts []string
		for i := offset; i < total && i < offset+perPage; i++ {
			id := base + i + 1
			parts = append(parts, fmt.Sprintf(
				`{"id":%d,"type":%q,"status":"publish","title":{"rendered":"T%d"},"content":{"rendered":"<p>%d</p>"}}`,
				id, typ, id, id))
		}

		return respond(http.StatusOK, "["+strings.Join(parts, ",")+"]", h)
	}

	return func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "example.com", r.URL.Host)

		switch p := strings.TrimPrefix(r.URL.Path, "/wp-json/wp/v2/"); p {
		case "types":
			return respond(http.StatusOK, typesJSON, nil), nil
		case "posts":
			return items(0, posts, "post", r), nil
		case "pages":
			return items(100, pages, "page", r), nil
		case "pages/102":
			return respond(http.StatusOK,
				`{"id":102,"type":"page","status":"draft","title":{"rendered":"About"},"content":{"rendered":"<img>"}}`,
				nil), nil
		default:
			return respond(http.StatusNotFound, `{"code":"rest_no_route"}`, nil), nil
		}
	}
}

func newClient(t *testing.T, fn rtFunc) *wpapi.Client {
	t.Helper()
	c, err := wpapi.New(&http.Client{Transport: fn}, wpapi.Options{BaseURL: "HTTPS://Example.com:443/wp-json/"})
	require.NoError(t, err)

	return c
}

func TestClient_ContentTypes(t *testing.T) {
	c := newClient(t, fakeSite(t, 0, 0))

	types, err := c.ContentTypes(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.ContentType{
		{Name: "attachment", Label: "Media", Public: true},
		{Name: "page", Label: "Pages", Public: true},
		{Name: "post", Label: "Posts", Public: true},
		{Name: "wp_block", Label: "Patterns", Public: false},
	}, types)
}

func TestClient_CountContents(t *testing.T) {
	c := newClient(t, fakeSite(t, 7, 3))

	n, err := c.CountContents(context.Background(), []string{"post", "page", "unknown"})
	require.NoError(t, err)
	require.Equal(t, 10, n)

	n, err = c.CountContents(context.Background(), nil)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestClient_ContentPage_SpansTypes(t *testing.T) {
	c := newClient(t, fakeSite(t, 7, 3))
	ctx := context.Background()

	first, err := c.ContentPage(ctx, []string{"post", "page"}, 0, 5)
	require.NoError(t, err)
	require.Len(t, first, 5)
	require.Equal(t, domain.ContentID(1), first[0].ID)
	require.Equal(t, "post", first[0].ContentType)
	require.Equal(t, "<p>1</p>", first[0].HTMLBody)

	second, err := c.ContentPage(ctx, []string{"post", "page"}, 5, 5)
	require.NoError(t, err)
	require.Len(t, second, 5)
	require.Equal(t, domain.ContentID(6), second[0].ID)
	require.Equal(t, domain.ContentID(7), second[1].ID)
	require.Equal(t, domain.ContentID(101), second[2].ID)
	require.Equal(t, "page", second[2].ContentType)

	tail, err := c.ContentPage(ctx, []string{"post", "page"}, 8, 5)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	require.Equal(t, domain.ContentID(102), tail[0].ID)

	empty, err := c.ContentPage(ctx, []string{"post", "page"}, 10, 5)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestClient_ContentByID(t *testing.T) {
	c := newClient(t, fakeSite(t, 1, 1))

	item, err := c.ContentByID(context.Background(), 102)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Equal(t, "About", item.Title)
	require.Equal(t, "draft", item.Status)

	missing, err := c.ContentByID(context.Background(), 5000)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestClient_QuickStats(t *testing.T) {
	site := fakeSite(t, 4, 2)
	c := newClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path != "/wp-json/wp/v2/media" {
			return site(r)
		}

		require.Equal(t, "image", r.URL.Query().Get("media_type"))
		h := http.Header{}
		h.Set("X-WP-TotalPages", "2")
		switch r.URL.Query().Get("page") {
		case "1":
			return respond(http.StatusOK, `[{"id":1,"alt_text":""},{"id":2,"alt_text":"Logo"}]`, h), nil
		case "2":
			return respond(http.StatusOK, `[{"id":3,"alt_text":"  "}]`, h), nil
		default:
			t.Fatalf("unexpected media page %s", r.URL.Query().Get("page"))

			return nil, nil
		}
	})

	stats, err := c.QuickStats(context.Background())
	require.NoError(t, err)
	require.Equal(t, domain.QuickStats{TotalContent: 6, ImagesWithoutAlt: 2}, stats)
}

func TestClient_Errors(t *testing.T) {
	t.Run("rate limited", func(t *testing.T) {
		c := newClient(t, func(r *http.Request) (*http.Response, error) {
			h := http.Header{}
			h.Set("Retry-After", "30")

			return respond(http.StatusTooManyRequests, "slow down", h), nil
		})

		_, err := c.ContentTypes(context.Background())
		require.ErrorIs(t, err, serrors.ErrRateLimited)
		var rle *contentsource.RateLimitError
		require.ErrorAs(t, err, &rle)
		require.Equal(t, 30*time.Second, rle.RetryAfter)
	})

	t.Run("server error", func(t *testing.T) {
		c := newClient(t, func(r *http.Request) (*http.Response, error) {
			return respond(http.StatusInternalServerError, "boom", nil), nil
		})

		_, err := c.CountContents(context.Background(), []string{"post"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "boom")
	})

	t.Run("transport error", func(t *testing.T) {
		c := newClient(t, func(r *http.Request) (*http.Response, error) {
			return nil, io.ErrUnexpectedEOF
		})

		_, err := c.ContentTypes(context.Background())
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("basic auth", func(t *testing.T) {
		c, err := wpapi.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			require.Equal(t, "editor", user)
			require.Equal(t, "app pass", pass)

			return respond(http.StatusOK, `{}`, nil), nil
		})}, wpapi.Options{BaseURL: "https://example.com", Username: "editor", Password: "app pass"})
		require.NoError(t, err)

		types, err := c.ContentTypes(context.Background())
		require.NoError(t, err)
		require.Empty(t, types)
	})
}

func TestRetryAfter(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	h := http.Header{}
	require.Zero(t, wpapi.RetryAfter(h, now))

	h.Set("Retry-After", "120")
	require.Equal(t, 2*time.Minute, wpapi.RetryAfter(h, now))

	h.Set("Retry-After", now.Add(90*time.Second).Format(http.TimeFormat))
	require.Equal(t, 90*time.Second, wpapi.RetryAfter(h, now))

	h.Set("Retry-After", now.Add(-time.Hour).Format(http.TimeFormat))
	require.Zero(t, wpapi.RetryAfter(h, now))

	h.Set("Retry-After", "soon")
	require.Zero(t, wpapi.RetryAfter(h, now))
}
