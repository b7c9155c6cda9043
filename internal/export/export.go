package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"a11yscanner/internal/config"
	"a11yscanner/internal/settings"
	"a11yscanner/pkg/codec"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/serrors"
	"a11yscanner/pkg/storage"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Format is a report download format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	// FormatPDF is accepted but not implemented.
	FormatPDF Format = "pdf"
)

// ParseFormat validates a format name.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(raw); f {
	case FormatJSON, FormatCSV, FormatPDF:
		return f, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "invalid export format %q", raw)
	}
}

// CSVHeader is the first row of CSV exports.
var CSVHeader = []string{ //nolint: gochecknoglobals
	"ID", "Post ID", "Post Title", "Scan Type", "Issue Code", "Severity", "Scanned At", "Resolved At",
}

// Document is a rendered report.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}

// Options describe the site written into JSON exports.
type Options struct {
	SiteURL string
	Version string
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SiteURL: cfg.Report.SiteURL,
		Version: cfg.Report.Version,
	}
}

type exporter struct {
	options  Options
	settings settings.Service
	findings storage.FindingStorage
}

func (x *exporter) now() time.Time {
	if x.options.Now != nil {
		return x.options.Now()
	}

	return time.Now()
}

func (x *exporter) Export(ctx context.Context, format Format) (*Document, error) {
	switch format {
	case FormatJSON, FormatCSV:
	case FormatPDF:
		return nil, serrors.With(serrors.ErrNotImplemented, "pdf export is not implemented")
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "invalid export format %q", format)
	}

	findings, err := x.findings.AllFindings(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not load findings")
	}

	now := x.now()
	filename := "accessibility-report-" + now.UTC().Format(time.DateOnly) + "." + string(format)

	var doc *Document
	if format == FormatCSV {
		doc, err = renderCSV(findings)
	} else {
		doc, err = x.renderJSON(ctx, now, findings)
	}
	if err != nil {
		return nil, err
	}
	doc.Filename = filename

	logger.Info(ctx, "report exported",
		zap.String("format", string(format)),
		zap.Int("findings", len(findings)))

	return doc, nil
}

func (x *exporter) renderJSON(ctx context.Context, now time.Time, findings []domain.Finding) (*Document, error) {
	current, err := x.settings.Get(ctx)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("generated_at", func(e *jx.Encoder) { codec.EncodeTime(e, now) })
		e.Field("site_url", func(e *jx.Encoder) { e.Str(x.options.SiteURL) })
		e.Field("plugin_version", func(e *jx.Encoder) { e.Str(x.options.Version) })
		e.Field("settings", func(e *jx.Encoder) { codec.EncodeSettings(e, current) })
		e.Field("issues", func(e *jx.Encoder) { codec.EncodeFindings(e, findings) })
	})

	return &Document{ContentType: "application/json", Body: e.Bytes()}, nil
}

func renderCSV(findings []domain.Finding) (*Document, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := make([][]string, 0, len(findings)+1)
	rows = append(rows, CSVHeader)
	for _, f := range findings {
		resolvedAt := ""
		if f.ResolvedAt != nil {
			resolvedAt = f.ResolvedAt.UTC().Format(time.DateTime)
		}
		rows = append(rows, []string{
			strconv.FormatInt(int64(f.ID), 10),
			strconv.FormatInt(int64(f.ContentID), 10),
			f.ContentTitle,
			string(f.ScanType),
			string(f.IssueCode),
			string(f.Severity),
			f.ScannedAt.UTC().Format(time.DateTime),
			resolvedAt,
		})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not write csv")
	}

	return &Document{ContentType: "text/csv", Body: buf.Bytes()}, nil
}

// New returns an Exporter over the stored findings and settings.
func New(settings settings.Service, findings storage.FindingStorage, options Options) Exporter {
	return &exporter{
		options:  options,
		settings: settings,
		findings: findings,
	}
}
