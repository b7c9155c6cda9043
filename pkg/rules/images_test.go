package rules_test

import (
	"testing"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/rules"

	"github.com/stretchr/testify/require"
)

func TestEvaluateImages(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		codes []domain.IssueCode
		src   []string
	}{
		{
			name:  "missing alt",
			html:  `<p><img src="a.png"></p>`,
			codes: []domain.IssueCode{domain.IssueImageNoAlt},
			src:   []string{"a.png"},
		},
		{
			name:  "empty alt",
			html:  `<img src='b.jpg' alt="">`,
			codes: []domain.IssueCode{domain.IssueImageEmptyAlt},
			src:   []string{"b.jpg"},
		},
		{
			name:  "bare alt attribute counts as empty",
			html:  `<img alt src="c.gif" />`,
			codes: []domain.IssueCode{domain.IssueImageEmptyAlt},
			src:   []string{"c.gif"},
		},
		{
			name: "non-empty alt is fine",
			html: `<img src="d.png" alt="A chart of sales">`,
		},
		{
			name: "unquoted non-empty alt is fine",
			html: `<IMG SRC=e.png ALT=logo>`,
		},
		{
			name:  "missing src is recorded as empty string",
			html:  `<img class="hero">`,
			codes: []domain.IssueCode{domain.IssueImageNoAlt},
			src:   []string{""},
		},
		{
			name:  "data-alt is not an alt attribute",
			html:  `<img data-alt="x" src="f.png">`,
			codes: []domain.IssueCode{domain.IssueImageNoAlt},
			src:   []string{"f.png"},
		},
		{
			name:  "multiple images keep document order",
			html:  `<img src="1.png"><img src="2.png" alt="ok"><img src="3.png" alt=''>`,
			codes: []domain.IssueCode{domain.IssueImageNoAlt, domain.IssueImageEmptyAlt},
			src:   []string{"1.png", "3.png"},
		},
		{
			name: "'>' inside a quoted alt does not end the tag",
			html: `<img alt="a>b" src="x.png">`,
		},
		{
			name:  "'>' inside a quoted src is kept in the value",
			html:  `<img src="x>y.png" title='1 > 0'>`,
			codes: []domain.IssueCode{domain.IssueImageNoAlt},
			src:   []string{"x>y.png"},
		},
		{
			name:  "empty alt after an attribute containing '>'",
			html:  `<img title="a > b" alt="" src="q.png">`,
			codes: []domain.IssueCode{domain.IssueImageEmptyAlt},
			src:   []string{"q.png"},
		},
		{
			name: "malformed markup yields nothing",
			html: `<img src="broken`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := rules.EvaluateImages(7, tt.html)
			require.Len(t, findings, len(tt.codes))

			for i, f := range findings {
				require.Equal(t, tt.codes[i], f.IssueCode)
				require.Equal(t, domain.ContentID(7), f.ContentID)
				require.Equal(t, domain.ScanTypeImages, f.ScanType)
				require.Equal(t, tt.codes[i].Severity(), f.Severity)
				require.Equal(t, "1.1.1", f.IssueData.WCAG())
				require.NotEmpty(t, f.IssueData.Message())
				require.Equal(t, tt.src[i], f.IssueData["src"])
				require.Contains(t, tt.html, f.ElementSelector)
			}
		})
	}
}

func TestEvaluateImages_MutuallyExclusivePerElement(t *testing.T) {
	inputs := []string{
		`<img src="a.png">`,
		`<img src="a.png" alt="">`,
		`<img alt="" alt="second">`,
		`<img src="a.png" alt="x">`,
		`<img>`,
	}

	for _, in := range inputs {
		require.LessOrEqual(t, len(rules.EvaluateImages(1, in)), 1, in)
	}
}

func TestEvaluateImages_Severity(t *testing.T) {
	findings := rules.EvaluateImages(1, `<img src="a.png"><img src="b.png" alt="">`)
	require.Len(t, findings, 2)
	require.Equal(t, domain.SeverityError, findings[0].Severity)
	require.Equal(t, domain.SeverityWarning, findings[1].Severity)
}
