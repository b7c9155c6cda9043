package scanner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"a11yscanner/internal/config"
	"a11yscanner/pkg/contentsource"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/metrics"
	"a11yscanner/pkg/serrors"
	"a11yscanner/pkg/storage"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var (
	batchesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "a11yscanner",
		Subsystem: "scanner",
		Name:      "batches_total",
		Help:      "Number of processed batches, by outcome.",
	}, []string{"outcome"})
	itemsScanned = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "a11yscanner",
		Subsystem: "scanner",
		Name:      "items_total",
		Help:      "Number of scanned content items.",
	})
	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: "a11yscanner",
		Subsystem: "scanner",
		Name:      "batch_duration_seconds",
		Help:      "Time spent processing one batch, including the content fetch.",
		Buckets:   metrics.BatchBuckets,
	})
)

const tracerName = "a11yscanner/internal/scanner"

// DefaultSessionTTL applies when Options.SessionTTL is not positive.
const DefaultSessionTTL = time.Hour

// Options configure how scans are partitioned and how their results are stored.
// These settings are typically derived from application configuration.
type Options struct {
	// BatchSize is the default number of content items per batch.
	BatchSize int
	// SessionTTL is how long a scan session survives without a processed batch.
	SessionTTL time.Duration
	// MaxItems is the default cap on scanned items, 0 means unlimited.
	MaxItems int
	// ExcludedTypes are the content types excluded when a request names none.
	ExcludedTypes []string
	// DedupFindings stores findings with an upsert instead of appending them.
	DedupFindings bool
	// MaxAttempts is the maximum number of attempts of background jobs.
	MaxAttempts int
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BatchSize:     domain.ClampBatchSize(cfg.Scanner.BatchSize),
		SessionTTL:    cfg.Scanner.SessionTTL,
		MaxItems:      cfg.Scanner.MaxItems,
		ExcludedTypes: cfg.Scanner.ExcludedTypes,
		DedupFindings: cfg.Scanner.DedupFindings,
		MaxAttempts:   cfg.Scanner.MaxAttempts,
	}
}

// coordinator is the concrete implementation of the Coordinator interface.
type coordinator struct {
	options Options
	// storage persists findings, sessions, history and jobs.
	storage storage.Storage
	// source enumerates and reads the content to scan.
	source  contentsource.Source
	scanner *ContentScanner
	tracer  trace.Tracer
}

// TotalBatches returns ceil(items / batchSize), never less than 1.
func TotalBatches(items, batchSize int) int {
	if batchSize <= 0 || items <= 0 {
		return 1
	}

	return max(1, (items+batchSize-1)/batchSize)
}

func (c *coordinator) now() time.Time {
	if c.options.Now != nil {
		return c.options.Now()
	}

	return time.Now()
}

func (c *coordinator) Start(ctx context.Context, req StartRequest) (*domain.ScanSession, error) {
	ctx, span := c.tracer.Start(ctx, "scanner.Start")
	defer span.End()

	if req.MaxItems < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "max items must not be negative")
	}
	if req.BatchSize < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "batch size must not be negative")
	}

	scanType := domain.ParseScanType(req.ScanType)
	excluded := req.ExcludedTypes
	if excluded == nil {
		excluded = c.options.ExcludedTypes
	}
	maxItems := req.MaxItems
	if maxItems == 0 {
		maxItems = c.options.MaxItems
	}
	batchSize := c.options.BatchSize
	if req.BatchSize > 0 {
		batchSize = domain.ClampBatchSize(req.BatchSize)
	}
	batchSize = domain.ClampBatchSize(batchSize)

	types, err := c.source.ContentTypes(ctx)
	if err != nil {
		return nil, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not list content types"))
	}
	contentTypes := contentsource.ScannableTypes(types, excluded)

	total := 0
	if len(contentTypes) > 0 {
		total, err = c.source.CountContents(ctx, contentTypes)
		if err != nil {
			return nil, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not count contents"))
		}
	}
	if maxItems > 0 && total > maxItems {
		total = maxItems
	}

	now := c.now()
	session := domain.ScanSession{
		ID:            domain.ScanID(uuid.New()),
		ScanType:      scanType,
		TotalBatches:  TotalBatches(total, batchSize),
		BatchSize:     batchSize,
		TotalItems:    total,
		ContentTypes:  contentTypes,
		ExcludedTypes: excluded,
		MaxItems:      maxItems,
		State:         domain.ScanStateStarted,
		StartedAt:     now,
		ExpiresAt:     now.Add(c.options.SessionTTL),
	}

	var created *domain.ScanSession
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.DeleteExpiredScanSessions(ctx, now); err != nil {
			return fmt.Errorf("could not delete expired scan sessions: %w", err)
		}

		// findings that were resolved before survive the new scan
		if _, err := tx.DeleteUnresolvedFindings(ctx); err != nil {
			return fmt.Errorf("could not delete unresolved findings: %w", err)
		}

		created, err = tx.CreateScanSession(ctx, session)
		if err != nil {
			return fmt.Errorf("could not create scan session: %w", err)
		}

		return nil
	}); err != nil {
		return nil, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not start scan"))
	}

	span.SetAttributes(attribute.String("scan.id", created.ID.String()),
		attribute.Int("scan.total_items", created.TotalItems))
	logger.Info(logger.WithFields(ctx, zap.String("scanID", created.ID.String())), "scan started",
		zap.String("scanType", string(created.ScanType)),
		zap.Strings("contentTypes", created.ContentTypes),
		zap.Int("totalItems", created.TotalItems),
		zap.Int("totalBatches", created.TotalBatches))

	return created, nil
}

func (c *coordinator) ProcessBatch(ctx context.Context, scanID domain.ScanID, batchIndex int) (*BatchResult, error) {
	ctx, span := c.tracer.Start(ctx, "scanner.ProcessBatch", trace.WithAttributes(
		attribute.String("scan.id", scanID.String()),
		attribute.Int("scan.batch", batchIndex)))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.String("scanID", scanID.String()), zap.Int("batch", batchIndex))

	start := time.Now()
	defer func() { batchDuration.Observe(time.Since(start).Seconds()) }()

	if batchIndex < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "batch index must not be negative")
	}

	session, err := c.liveSession(ctx, scanID)
	if err != nil {
		return nil, c.fail(span, err)
	}

	// a replayed final batch reports completion again without rescanning
	if session.State == domain.ScanStateCompleted {
		logger.Debug(ctx, "scan already completed")

		return &BatchResult{BatchIndex: batchIndex, Complete: true, Progress: 100}, nil
	}

	offset, limit := batchWindow(session, batchIndex)
	var items []domain.ContentItem
	if limit > 0 && len(session.ContentTypes) > 0 {
		items, err = c.source.ContentPage(ctx, session.ContentTypes, offset, limit)
		if err != nil {
			batchesProcessed.WithLabelValues("failed").Inc()

			return nil, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not fetch content page"))
		}
	}

	if len(items) == 0 {
		return c.complete(ctx, span, session, batchIndex)
	}

	now := c.now()
	var findings []domain.Finding
	for _, item := range items {
		found := c.scanner.ScanItem(ctx, item.ID, item.HTMLBody, session.ScanType)
		for i := range found {
			found[i].ContentTitle = item.Title
			found[i].ScannedAt = now
		}
		findings = append(findings, found...)
	}
	itemsScanned.Add(float64(len(items)))

	progress := storage.SessionProgress{
		CurrentBatch: batchIndex + 1,
		ScannedItems: offset + len(items),
		State:        domain.ScanStateInProgress,
		ExpiresAt:    now.Add(c.options.SessionTTL),
	}

	var advanced *domain.ScanSession
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := c.storeFindings(ctx, tx, findings); err != nil {
			return err
		}

		advanced, err = tx.AdvanceScanSession(ctx, session.ID, progress)
		if err != nil {
			return fmt.Errorf("could not advance scan session: %w", err)
		}
		if advanced == nil {
			return serrors.With(serrors.ErrNotFound, "scan session not found or expired")
		}

		return nil
	}); err != nil {
		batchesProcessed.WithLabelValues("failed").Inc()
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, c.fail(span, err)
		}

		return nil, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not store batch results"))
	}

	batchesProcessed.WithLabelValues("processed").Inc()
	logger.Debug(ctx, "batch processed",
		zap.Int("items", len(items)),
		zap.Int("findings", len(findings)))

	return &BatchResult{
		BatchIndex:     batchIndex,
		ItemsProcessed: len(items),
		IssuesFound:    len(findings),
		Progress:       advanced.ProgressPercent(),
	}, nil
}

// complete finalizes a scan whose content is exhausted: it records the day's
// severity summary in the scan history and marks the session completed. The
// completed session stays readable until its TTL runs out.
func (c *coordinator) complete(ctx context.Context,
	span trace.Span,
	session *domain.ScanSession,
	batchIndex int) (*BatchResult, error) {
	now := c.now()
	summary, err := c.storage.SummarizeFindings(ctx, &now)
	if err != nil {
		return nil, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not summarize findings"))
	}

	record := domain.NewScanHistoryRecord(session.ScanType, summary, session.ScannedItems)
	record.ScannedAt = now

	var stored *domain.ScanHistoryRecord
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err = tx.StoreScanHistory(ctx, record)
		if err != nil {
			return fmt.Errorf("could not store scan history: %w", err)
		}

		completed, err := tx.AdvanceScanSession(ctx, session.ID, storage.SessionProgress{
			CurrentBatch: batchIndex,
			ScannedItems: session.ScannedItems,
			State:        domain.ScanStateCompleted,
		})
		if err != nil {
			return fmt.Errorf("could not mark scan session completed: %w", err)
		}
		if completed == nil {
			return serrors.With(serrors.ErrNotFound, "scan session not found or expired")
		}

		return nil
	}); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			return nil, c.fail(span, err)
		}

		return nil, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not complete scan"))
	}

	batchesProcessed.WithLabelValues("completed").Inc()
	logger.Info(ctx, "scan completed",
		zap.Int("itemsScanned", stored.ItemsScanned),
		zap.Int("totalIssues", stored.Total))

	return &BatchResult{
		BatchIndex: batchIndex,
		Complete:   true,
		Progress:   100,
		History:    stored,
	}, nil
}

// batchWindow returns the offset and page size of a batch. The page never
// reaches past the session's item cap.
func batchWindow(session *domain.ScanSession, batchIndex int) (int, int) {
	offset := batchIndex * session.BatchSize
	limit := session.BatchSize
	if session.MaxItems > 0 {
		limit = max(0, min(limit, session.MaxItems-offset))
	}

	return offset, limit
}

// liveSession loads a session that has not expired yet. Expired sessions are
// deleted on access and reported as not found.
func (c *coordinator) liveSession(ctx context.Context, scanID domain.ScanID) (*domain.ScanSession, error) {
	session, err := c.storage.ScanSessionByID(ctx, scanID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not load scan session")
	}
	if session == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan session not found or expired")
	}

	if session.Expired(c.now()) {
		if err := c.storage.DeleteScanSession(ctx, scanID); err != nil {
			logger.Warn(ctx, "could not delete expired scan session", zap.Error(err))
		}

		return nil, serrors.With(serrors.ErrNotFound, "scan session not found or expired")
	}

	return session, nil
}

func (c *coordinator) Progress(ctx context.Context, scanID domain.ScanID) (*domain.ScanSession, error) {
	return c.liveSession(ctx, scanID)
}

func (c *coordinator) RunToCompletion(ctx context.Context, req StartRequest) (*domain.ScanHistoryRecord, error) {
	session, err := c.Start(ctx, req)
	if err != nil {
		return nil, err
	}

	for batch := 0; ; batch++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scan %s interrupted at batch %d: %w", session.ID, batch, err)
		}

		res, err := c.ProcessBatch(ctx, session.ID, batch)
		if err != nil {
			return nil, err
		}
		if res.Complete {
			return res.History, nil
		}
	}
}

func (c *coordinator) RescanContent(ctx context.Context, contentID domain.ContentID) (int, error) {
	ctx, span := c.tracer.Start(ctx, "scanner.RescanContent",
		trace.WithAttributes(attribute.Int64("content.id", int64(contentID))))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.Int64("contentID", int64(contentID)))

	item, err := c.source.ContentByID(ctx, contentID)
	if err != nil {
		return 0, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not fetch content"))
	}
	if item == nil {
		return 0, c.fail(span, serrors.With(serrors.ErrNotFound, "content not found"))
	}

	// unpublished and binary items only get their stale findings cleared
	var findings []domain.Finding
	if item.Status == domain.ContentStatusPublish && item.ContentType != domain.AttachmentContentType {
		now := c.now()
		findings = c.scanner.ScanItem(ctx, item.ID, item.HTMLBody, domain.ScanTypeFull)
		for i := range findings {
			findings[i].ContentTitle = item.Title
			findings[i].ScannedAt = now
		}
	}

	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.DeleteUnresolvedFindings(ctx, contentID); err != nil {
			return fmt.Errorf("could not delete unresolved findings: %w", err)
		}

		return c.storeFindings(ctx, tx, findings)
	}); err != nil {
		return 0, c.fail(span, serrors.Wrap(serrors.ErrStorage, err, "could not store rescan results"))
	}

	logger.Info(ctx, "content rescanned", zap.Int("findings", len(findings)))

	return len(findings), nil
}

func (c *coordinator) EnqueueScan(ctx context.Context, req StartRequest) (bool, error) {
	added, err := c.storage.AddJob(ctx, FullScanJobArgs{
		Request:     req,
		maxAttempts: c.options.MaxAttempts,
	}, nil)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrStorage, err, "could not add scan job")
	}

	return added, nil
}

func (c *coordinator) EnqueueRescan(ctx context.Context, contentID domain.ContentID) (bool, error) {
	added, err := c.storage.AddJob(ctx, RescanContentJobArgs{
		ContentID:   contentID,
		maxAttempts: c.options.MaxAttempts,
	}, nil)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrStorage, err, "could not add rescan job")
	}

	return added, nil
}

func (c *coordinator) Results(ctx context.Context, query storage.FindingQuery) (*ResultsPage, error) {
	if query.Severity != "" && !query.Severity.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown severity %q", query.Severity)
	}
	if query.Page < 1 {
		query.Page = 1
	}
	switch {
	case query.PerPage < 1:
		query.PerPage = DefaultPerPage
	case query.PerPage > MaxPerPage:
		query.PerPage = MaxPerPage
	}

	page, err := c.storage.QueryFindings(ctx, query)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not query findings")
	}

	return &ResultsPage{
		Findings:   page.Findings,
		Total:      page.Total,
		Page:       query.Page,
		PerPage:    query.PerPage,
		TotalPages: (page.Total + query.PerPage - 1) / query.PerPage,
	}, nil
}

func (c *coordinator) Resolve(ctx context.Context, findingID domain.FindingID) error {
	outcome, err := c.storage.ResolveFinding(ctx, findingID)
	if err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not resolve finding")
	}
	if outcome == storage.ResolveNotFound {
		return serrors.With(serrors.ErrNotFound, "finding not found")
	}

	return nil
}

// storeFindings appends findings, or upserts them when deduplication is on.
func (c *coordinator) storeFindings(ctx context.Context, tx storage.AllStorage, findings []domain.Finding) error {
	if len(findings) == 0 {
		return nil
	}

	if c.options.DedupFindings {
		if err := tx.UpsertFindings(ctx, findings...); err != nil {
			return fmt.Errorf("could not upsert findings: %w", err)
		}

		return nil
	}

	if err := tx.InsertFindings(ctx, findings...); err != nil {
		return fmt.Errorf("could not insert findings: %w", err)
	}

	return nil
}

// fail records err on the span and returns it unchanged.
func (c *coordinator) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

// New creates a new Coordinator backed by the provided storage and content
// source and configured with the given options.
func New(storage storage.Storage,
	source contentsource.Source,
	contentScanner *ContentScanner,
	options Options) Coordinator {
	if contentScanner == nil {
		contentScanner = NewContentScanner()
	}
	options.BatchSize = domain.ClampBatchSize(options.BatchSize)
	if options.SessionTTL <= 0 {
		options.SessionTTL = DefaultSessionTTL
	}

	return &coordinator{
		options: options,
		storage: storage,
		source:  source,
		scanner: contentScanner,
		tracer:  otel.Tracer(tracerName),
	}
}
