package scanner

import (
	"context"
	"time"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/metrics"
	"a11yscanner/pkg/rules"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var (
	ruleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: "a11yscanner",
		Subsystem: "rules",
		Name:      "evaluation_duration_seconds",
		Help:      "Time spent evaluating one rule over one content item.",
		Buckets:   metrics.DefaultBuckets,
	}, []string{"rule"})
	findingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "a11yscanner",
		Subsystem: "rules",
		Name:      "findings_total",
		Help:      "Number of findings produced, by issue code.",
	}, []string{"issue_code"})
	ruleFailures = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: "a11yscanner",
		Subsystem: "rules",
		Name:      "failures_total",
		Help:      "Number of rule evaluations that panicked and were discarded.",
	}, []string{"rule"})
)

// ContentScanner runs the rules selected by a scan type over a single content
// item. It never fails: a rule that panics contributes no findings.
type ContentScanner struct {
	// rulesFor selects the rules of a scan type.
	rulesFor func(domain.ScanType) []rules.Rule
}

// NewContentScanner returns a ContentScanner over the built-in rules.
func NewContentScanner() *ContentScanner {
	return &ContentScanner{rulesFor: rules.ForScanType}
}

// NewContentScannerWithRules returns a ContentScanner that runs the given rules
// for every scan type. It is mostly useful in tests.
func NewContentScannerWithRules(rs ...rules.Rule) *ContentScanner {
	return &ContentScanner{rulesFor: func(domain.ScanType) []rules.Rule { return rs }}
}

// ScanItem returns the concatenated findings of the scan type's rules in rule
// order: images, headings, then links.
func (c *ContentScanner) ScanItem(ctx context.Context,
	contentID domain.ContentID,
	html string,
	scanType domain.ScanType) []domain.Finding {
	var findings []domain.Finding
	for _, rule := range c.rulesFor(scanType) {
		findings = append(findings, c.evaluate(ctx, rule, contentID, html)...)
	}

	return findings
}

func (c *ContentScanner) evaluate(ctx context.Context,
	rule rules.Rule,
	contentID domain.ContentID,
	html string) (findings []domain.Finding) {
	start := time.Now()
	defer func() {
		ruleDuration.WithLabelValues(string(rule.ScanType)).Observe(time.Since(start).Seconds())

		if r := recover(); r != nil {
			ruleFailures.WithLabelValues(string(rule.ScanType)).Inc()
			logger.Error(ctx, "rule evaluation panicked",
				zap.String("rule", string(rule.ScanType)),
				zap.Int64("contentID", int64(contentID)),
				zap.Any("panic", r))
			findings = nil
		}
	}()

	findings = rule.Evaluate(contentID, html)
	for _, f := range findings {
		findingsTotal.WithLabelValues(string(f.IssueCode)).Inc()
	}

	return findings
}
