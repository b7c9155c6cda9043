package rules

import (
	"regexp"
	"strings"

	"a11yscanner/pkg/domain"
)

var linkRe = regexp.MustCompile(`(?is)(<a\b` + tagBody + `>)(.*?)</a\s*>`)

// genericLinkTexts is compared against case and whitespace normalized link text.
var genericLinkTexts = map[string]struct{}{ //nolint: gochecknoglobals
	"click here": {},
	"here":       {},
	"read more":  {},
	"more":       {},
	"learn more": {},
	"link":       {},
	"this link":  {},
}

// IsGenericLinkText reports whether text, once normalized, is a phrase that
// does not describe the link target.
func IsGenericLinkText(text string) bool {
	_, ok := genericLinkTexts[normalizeText(text)]

	return ok
}

// EvaluateLinks flags anchors whose text is a generic phrase without an
// aria-label (warning) and anchors with no text and neither aria-label nor
// title (error). Empty text never matches a generic phrase, so one anchor
// produces at most one finding.
func EvaluateLinks(contentID domain.ContentID, html string) []domain.Finding {
	var findings []domain.Finding

	for _, m := range linkRe.FindAllStringSubmatch(html, -1) {
		element, openTag, inner := m[0], m[1], m[2]
		attrs := parseAttributes(openTag)
		text := stripTags(inner)

		switch {
		case IsGenericLinkText(text) && !attrs.nonEmpty("aria-label"):
			findings = append(findings, domain.NewFinding(contentID, domain.ScanTypeLinks, domain.IssueLinkGenericText,
				element, domain.IssueData{
					"text":    strings.TrimSpace(text),
					"wcag":    WCAGLinkPurpose,
					"message": "Link has generic text without context",
				}))
		case strings.TrimSpace(text) == "" && !attrs.nonEmpty("aria-label") && !attrs.nonEmpty("title"):
			findings = append(findings, domain.NewFinding(contentID, domain.ScanTypeLinks, domain.IssueLinkEmpty,
				element, domain.IssueData{
					"wcag":    WCAGLinkPurpose,
					"message": "Link has no accessible name",
				}))
		}
	}

	return findings
}
