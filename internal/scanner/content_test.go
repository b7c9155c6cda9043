package scanner_test

import (
	"context"
	"testing"

	"a11yscanner/internal/scanner"
	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/logger"
	"a11yscanner/pkg/rules"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func codes(findings []domain.Finding) []domain.IssueCode {
	out := make([]domain.IssueCode, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.IssueCode)
	}

	return out
}

func TestContentScanner_ImageWithoutAlt(t *testing.T) {
	s := scanner.NewContentScanner()

	findings := s.ScanItem(context.Background(), 1, `<img src="a.png">`, domain.ScanTypeFull)
	require.Len(t, findings, 1)
	require.Equal(t, domain.IssueImageNoAlt, findings[0].IssueCode)
	require.Equal(t, domain.SeverityError, findings[0].Severity)
	require.Equal(t, "1.1.1", findings[0].IssueData.WCAG())
	require.Equal(t, domain.ContentID(1), findings[0].ContentID)
}

func TestContentScanner_FullScanKeepsRuleOrder(t *testing.T) {
	s := scanner.NewContentScanner()
	html := `<a href="#">click here</a><h1>Title</h1><h3>Sub</h3><img src="a.png">`

	findings := s.ScanItem(context.Background(), 7, html, domain.ScanTypeFull)
	require.Equal(t, []domain.IssueCode{
		domain.IssueImageNoAlt,
		domain.IssueHeadingSkip,
		domain.IssueLinkGenericText,
	}, codes(findings))
}

func TestContentScanner_SingleFamily(t *testing.T) {
	s := scanner.NewContentScanner()
	html := `<a href="#">click here</a><h1>Title</h1><h3>Sub</h3><img src="a.png">`

	tests := []struct {
		scanType domain.ScanType
		want     []domain.IssueCode
	}{
		{domain.ScanTypeImages, []domain.IssueCode{domain.IssueImageNoAlt}},
		{domain.ScanTypeHeadings, []domain.IssueCode{domain.IssueHeadingSkip}},
		{domain.ScanTypeLinks, []domain.IssueCode{domain.IssueLinkGenericText}},
		{domain.ScanType("bogus"), []domain.IssueCode{
			domain.IssueImageNoAlt, domain.IssueHeadingSkip, domain.IssueLinkGenericText,
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.scanType), func(t *testing.T) {
			findings := s.ScanItem(context.Background(), 1, html, tt.scanType)
			require.Equal(t, tt.want, codes(findings))
			for _, f := range findings {
				if tt.scanType != domain.ScanType("bogus") {
					require.Equal(t, tt.scanType, f.ScanType)
				}
			}
		})
	}
}

func TestContentScanner_MalformedMarkup(t *testing.T) {
	s := scanner.NewContentScanner()

	inputs := []string{
		"",
		"<",
		"<img",
		"<h2><h3></h2>",
		"<a href=\"#\"><a>",
		"\x00\xff<img alt=>",
	}
	for _, in := range inputs {
		require.NotPanics(t, func() {
			s.ScanItem(context.Background(), 1, in, domain.ScanTypeFull)
		})
	}
}

func TestContentScanner_PanickingRuleIsDiscarded(t *testing.T) {
	panicking := rules.Rule{
		ScanType: domain.ScanTypeHeadings,
		Evaluate: func(domain.ContentID, string) []domain.Finding {
			panic("boom")
		},
	}
	images := rules.All()[0]
	s := scanner.NewContentScannerWithRules(panicking, images)

	var findings []domain.Finding
	require.NotPanics(t, func() {
		findings = s.ScanItem(context.Background(), 3, `<img src="a.png">`, domain.ScanTypeFull)
	})
	require.Equal(t, []domain.IssueCode{domain.IssueImageNoAlt}, codes(findings))
}
