package rules_test

import (
	"testing"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/rules"

	"github.com/stretchr/testify/require"
)

func TestEvaluateHeadings_Skip(t *testing.T) {
	findings := rules.EvaluateHeadings(3, `<h1>Title</h1><h3>Sub</h3>`)
	require.Len(t, findings, 1)

	f := findings[0]
	require.Equal(t, domain.IssueHeadingSkip, f.IssueCode)
	require.Equal(t, domain.SeverityWarning, f.Severity)
	require.Equal(t, domain.ScanTypeHeadings, f.ScanType)
	require.Equal(t, 3, f.IssueData["level"])
	require.Equal(t, 1, f.IssueData["previous"])
	require.Equal(t, "1.3.1", f.IssueData.WCAG())
	require.Equal(t, "Sub", f.IssueData["text"])
}

func TestEvaluateHeadings_Sequences(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		codes []domain.IssueCode
	}{
		{name: "no headings", html: `<p>plain</p>`},
		{name: "first heading never skips", html: `<h4>Deep start</h4>`},
		{name: "sequential levels", html: `<h1>a</h1><h2>b</h2><h3>c</h3>`},
		{name: "going up is fine", html: `<h2>a</h2><h3>b</h3><h2>c</h2><h1>d</h1>`},
		{
			name:  "h2 followed by h4",
			html:  `<h2>a</h2><h4>b</h4>`,
			codes: []domain.IssueCode{domain.IssueHeadingSkip},
		},
		{
			name:  "previous level tracks the immediately preceding heading",
			html:  `<h1>a</h1><h3>b</h3><h4>c</h4><h6>d</h6>`,
			codes: []domain.IssueCode{domain.IssueHeadingSkip, domain.IssueHeadingSkip},
		},
		{
			name:  "empty heading",
			html:  `<h1>  </h1>`,
			codes: []domain.IssueCode{domain.IssueHeadingEmpty},
		},
		{
			name:  "heading with only markup is empty",
			html:  `<h2><span class="icon"></span>&nbsp;</h2>`,
			codes: []domain.IssueCode{domain.IssueHeadingEmpty},
		},
		{
			name:  "'>' inside a heading attribute does not leak into the text",
			html:  `<h1 title="a>b"></h1>`,
			codes: []domain.IssueCode{domain.IssueHeadingEmpty},
		},
		{
			name:  "inner markup with '>' in an attribute is stripped",
			html:  `<h2><span title="x>y"></span></h2>`,
			codes: []domain.IssueCode{domain.IssueHeadingEmpty},
		},
		{
			name:  "empty and skipped heading emits both",
			html:  `<h1>a</h1><h3></h3>`,
			codes: []domain.IssueCode{domain.IssueHeadingSkip, domain.IssueHeadingEmpty},
		},
		{
			name: "attributes, case and multi-line content",
			html: "<H1 class=\"t\">A\ntitle</H1>\n<h2 id=x>\n  Section\n</h2>",
		},
		{
			name: "unclosed heading is ignored",
			html: `<h1>a</h1><h4>never closed`,
		},
		{
			name: "header element is not a heading",
			html: `<header><h1>a</h1></header><h2>b</h2>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := rules.EvaluateHeadings(1, tt.html)
			require.Len(t, findings, len(tt.codes))
			for i, f := range findings {
				require.Equal(t, tt.codes[i], f.IssueCode)
				require.Equal(t, tt.codes[i].Severity(), f.Severity)
			}
		})
	}
}

func TestEvaluateHeadings_SkipFiresIffJumpIsAtLeastTwo(t *testing.T) {
	for prev := 1; prev <= 6; prev++ {
		for next := 1; next <= 6; next++ {
			html := headingTag(prev, "a") + headingTag(next, "b")
			findings := rules.EvaluateHeadings(1, html)

			if next-prev >= 2 {
				require.Len(t, findings, 1, html)
				require.Equal(t, next, findings[0].IssueData["level"])
				require.Equal(t, prev, findings[0].IssueData["previous"])
			} else {
				require.Empty(t, findings, html)
			}
		}
	}
}

func TestEvaluateHeadings_StateResetsPerItem(t *testing.T) {
	require.Len(t, rules.EvaluateHeadings(1, `<h1>a</h1>`), 0)
	// a new item starts without a previous level, so h3 first is fine
	require.Len(t, rules.EvaluateHeadings(2, `<h3>b</h3>`), 0)
}

func headingTag(level int, text string) string {
	n := string(rune('0' + level))

	return "<h" + n + ">" + text + "</h" + n + ">"
}
