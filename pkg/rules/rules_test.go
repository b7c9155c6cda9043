package rules_test

import (
	"strings"
	"testing"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/rules"

	"github.com/stretchr/testify/require"
)

func TestForScanType(t *testing.T) {
	tests := []struct {
		scanType domain.ScanType
		want     []domain.ScanType
	}{
		{domain.ScanTypeFull, []domain.ScanType{domain.ScanTypeImages, domain.ScanTypeHeadings, domain.ScanTypeLinks}},
		{domain.ScanTypeImages, []domain.ScanType{domain.ScanTypeImages}},
		{domain.ScanTypeHeadings, []domain.ScanType{domain.ScanTypeHeadings}},
		{domain.ScanTypeLinks, []domain.ScanType{domain.ScanTypeLinks}},
		{"bogus", []domain.ScanType{domain.ScanTypeImages, domain.ScanTypeHeadings, domain.ScanTypeLinks}},
	}

	for _, tt := range tests {
		t.Run(string(tt.scanType), func(t *testing.T) {
			got := rules.ForScanType(tt.scanType)
			types := make([]domain.ScanType, 0, len(got))
			for _, r := range got {
				types = append(types, r.ScanType)
			}
			require.Equal(t, tt.want, types)
		})
	}
}

func TestRules_EveryCodeHasFixedSeverity(t *testing.T) {
	for _, r := range rules.All() {
		for _, c := range r.Codes {
			require.NotEqual(t, domain.SeverityNotice, c.Severity(), c)
		}
	}
}

func TestRules_TotalOverArbitraryInput(t *testing.T) {
	inputs := []string{
		"",
		"<",
		"<<<>>>",
		"<img",
		"<a href=",
		"<h1><h2></h1></h2>",
		strings.Repeat("<a>", 1000),
		"\x00\xff<img src=\"\xfe\">",
		"<!-- <img src=a.png> -->",
	}

	for _, in := range inputs {
		require.NotPanics(t, func() {
			for _, r := range rules.All() {
				_ = r.Evaluate(1, in)
			}
		})
	}
}
