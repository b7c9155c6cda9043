package rules_test

import (
	"testing"

	"a11yscanner/pkg/domain"
	"a11yscanner/pkg/rules"

	"github.com/stretchr/testify/require"
)

func TestEvaluateLinks_GenericText(t *testing.T) {
	findings := rules.EvaluateLinks(5, `<a href="#">click here</a>`)
	require.Len(t, findings, 1)
	require.Equal(t, domain.IssueLinkGenericText, findings[0].IssueCode)
	require.Equal(t, domain.SeverityWarning, findings[0].Severity)
	require.Equal(t, "2.4.4", findings[0].IssueData.WCAG())
	require.Equal(t, "click here", findings[0].IssueData["text"])
	require.Equal(t, `<a href="#">click here</a>`, findings[0].ElementSelector)

	require.Empty(t, rules.EvaluateLinks(5, `<a href="#" aria-label="Download report">click here</a>`))
}

func TestEvaluateLinks_EveryGenericPhrase(t *testing.T) {
	phrases := []string{"click here", "here", "read more", "more", "learn more", "link", "this link"}

	for _, p := range phrases {
		variants := []string{p, "  " + p + "  ", "<strong>" + p + "</strong>", upper(p)}
		for _, v := range variants {
			html := `<a href="/x">` + v + `</a>`
			findings := rules.EvaluateLinks(1, html)
			require.Len(t, findings, 1, html)
			require.Equal(t, domain.IssueLinkGenericText, findings[0].IssueCode, html)

			labelled := `<a href="/x" aria-label="Pricing details">` + v + `</a>`
			require.Empty(t, rules.EvaluateLinks(1, labelled), labelled)
		}
	}
}

func TestEvaluateLinks_Cases(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		codes []domain.IssueCode
	}{
		{name: "descriptive text", html: `<a href="/pricing">See pricing plans</a>`},
		{name: "generic phrase inside longer text", html: `<a href="/x">click here to download</a>`},
		{
			name:  "whitespace runs are collapsed",
			html:  "<a href=\"/x\">Read\n   More</a>",
			codes: []domain.IssueCode{domain.IssueLinkGenericText},
		},
		{
			name:  "blank aria-label does not name the link",
			html:  `<a href="/x" aria-label="  ">more</a>`,
			codes: []domain.IssueCode{domain.IssueLinkGenericText},
		},
		{
			name:  "title does not suppress generic text",
			html:  `<a href="/x" title="Docs">here</a>`,
			codes: []domain.IssueCode{domain.IssueLinkGenericText},
		},
		{
			name:  "empty link",
			html:  `<a href="/x"></a>`,
			codes: []domain.IssueCode{domain.IssueLinkEmpty},
		},
		{
			name:  "link with only an icon",
			html:  `<a href="/x"><i class="icon-home"></i></a>`,
			codes: []domain.IssueCode{domain.IssueLinkEmpty},
		},
		{name: "empty link with aria-label", html: `<a href="/x" aria-label="Home"></a>`},
		{name: "empty link with title", html: `<a href="/x" title="Home"> </a>`},
		{
			name:  "empty link with blank title",
			html:  `<a href="/x" title=""></a>`,
			codes: []domain.IssueCode{domain.IssueLinkEmpty},
		},
		{name: "abbr is not an anchor", html: `<abbr title="x">here</abbr>`},
		{
			name:  "several links keep order",
			html:  `<a href="1">more</a> <a href="2">Docs</a> <a href="3"></a>`,
			codes: []domain.IssueCode{domain.IssueLinkGenericText, domain.IssueLinkEmpty},
		},
		{name: "unclosed anchor", html: `<a href="/x">here`},
		{
			name:  "'>' inside a quoted attribute does not end the tag",
			html:  `<a href="/x" title="a>b">here</a>`,
			codes: []domain.IssueCode{domain.IssueLinkGenericText},
		},
		{name: "aria-label containing '>' names the link", html: `<a href="/x" aria-label="Go > home">here</a>`},
		{
			name:  "inner tag with '>' in an attribute leaves no text",
			html:  `<a href="/x"><img src="i.png" alt="" data-x="a>b"></a>`,
			codes: []domain.IssueCode{domain.IssueLinkEmpty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := rules.EvaluateLinks(1, tt.html)
			require.Len(t, findings, len(tt.codes))
			for i, f := range findings {
				require.Equal(t, tt.codes[i], f.IssueCode)
				require.Equal(t, domain.ScanTypeLinks, f.ScanType)
			}
		})
	}
}

func TestIsGenericLinkText(t *testing.T) {
	require.True(t, rules.IsGenericLinkText(" Click   HERE "))
	require.False(t, rules.IsGenericLinkText(""))
	require.False(t, rules.IsGenericLinkText("annual report"))
}

func upper(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}

	return string(out)
}
