package rules

import (
	"fmt"
	"regexp"
	"strings"

	"a11yscanner/pkg/domain"
)

// headingRe matches <h1>..</h1> through <h6>..</h6>. Go regular expressions
// have no back-references, so every level is its own alternative and the
// level is recovered from the capture group that matched.
var headingRe = regexp.MustCompile(`(?is)` +
	`<h1\b` + tagBody + `>(.*?)</h1\s*>|` +
	`<h2\b` + tagBody + `>(.*?)</h2\s*>|` +
	`<h3\b` + tagBody + `>(.*?)</h3\s*>|` +
	`<h4\b` + tagBody + `>(.*?)</h4\s*>|` +
	`<h5\b` + tagBody + `>(.*?)</h5\s*>|` +
	`<h6\b` + tagBody + `>(.*?)</h6\s*>`)

// EvaluateHeadings walks headings in document order. A heading whose level
// exceeds the previous heading's level by more than one is a skip (warning);
// the first heading has no previous level and never skips. A heading whose
// text is blank is empty (error), independently of skip status.
func EvaluateHeadings(contentID domain.ContentID, html string) []domain.Finding {
	var findings []domain.Finding

	previous := 0
	for _, m := range headingRe.FindAllStringSubmatchIndex(html, -1) {
		level, inner := 0, ""
		for l := 1; l <= 6; l++ {
			if m[2*l] >= 0 {
				level, inner = l, html[m[2*l]:m[2*l+1]]

				break
			}
		}
		if level == 0 {
			continue
		}

		element := html[m[0]:m[1]]
		text := stripTags(inner)

		if previous > 0 && level > previous+1 {
			findings = append(findings, domain.NewFinding(contentID, domain.ScanTypeHeadings, domain.IssueHeadingSkip,
				element, domain.IssueData{
					"text":     strings.TrimSpace(text),
					"level":    level,
					"previous": previous,
					"wcag":     WCAGInfoRelationship,
					"message":  fmt.Sprintf("Heading level skipped: H%d follows H%d", level, previous),
				}))
		}

		if strings.TrimSpace(text) == "" {
			findings = append(findings, domain.NewFinding(contentID, domain.ScanTypeHeadings, domain.IssueHeadingEmpty,
				element, domain.IssueData{
					"level":   level,
					"wcag":    WCAGInfoRelationship,
					"message": "Empty heading found",
				}))
		}

		previous = level
	}

	return findings
}
