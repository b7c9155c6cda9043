package rules

import (
	"regexp"

	"a11yscanner/pkg/domain"
)

var imgRe = regexp.MustCompile(`(?i)<img\b` + tagBody + `>`)

// EvaluateImages flags <img> elements without an alt attribute (error) and
// with an empty alt attribute (warning, to verify the image is decorative).
// The two codes are mutually exclusive per element.
func EvaluateImages(contentID domain.ContentID, html string) []domain.Finding {
	var findings []domain.Finding

	for _, tag := range imgRe.FindAllString(html, -1) {
		attrs := parseAttributes(tag)

		var (
			code    domain.IssueCode
			message string
		)
		switch {
		case !attrs.has("alt"):
			code, message = domain.IssueImageNoAlt, "Image missing alt attribute"
		case attrs["alt"] == "":
			code, message = domain.IssueImageEmptyAlt, "Image has empty alt (verify if decorative)"
		default:
			continue
		}

		findings = append(findings, domain.NewFinding(contentID, domain.ScanTypeImages, code, tag, domain.IssueData{
			"src":     attrs["src"],
			"wcag":    WCAGNonTextContent,
			"message": message,
		}))
	}

	return findings
}
