// Package rules contains the accessibility rule evaluators run by the content
// scanner. Every evaluator is a pure function over one content item's markup:
// no I/O, deterministic output, and no failure mode. Matching is a best-effort
// heuristic over raw HTML fragments, not a validated DOM, so nested or
// malformed tags may be mismatched and evaluators may match overlapping
// substrings independently.
package rules

import "a11yscanner/pkg/domain"

// Evaluator inspects the markup of one content item and returns its findings.
type Evaluator func(contentID domain.ContentID, html string) []domain.Finding

// Rule binds an evaluator to the rule family (scan type) it implements.
type Rule struct {
	// ScanType is the rule family recorded on every finding of the rule.
	ScanType domain.ScanType
	// Codes lists the issue codes the rule may emit.
	Codes []domain.IssueCode
	// Evaluate runs the rule.
	Evaluate Evaluator
}

// WCAG criteria referenced by the rules.
const (
	WCAGNonTextContent   = "1.1.1"
	WCAGInfoRelationship = "1.3.1"
	WCAGLinkPurpose      = "2.4.4"
)

// All returns every rule in evaluation order: images, headings, links.
func All() []Rule {
	return []Rule{
		{
			ScanType: domain.ScanTypeImages,
			Codes:    []domain.IssueCode{domain.IssueImageNoAlt, domain.IssueImageEmptyAlt},
			Evaluate: EvaluateImages,
		},
		{
			ScanType: domain.ScanTypeHeadings,
			Codes:    []domain.IssueCode{domain.IssueHeadingSkip, domain.IssueHeadingEmpty},
			Evaluate: EvaluateHeadings,
		},
		{
			ScanType: domain.ScanTypeLinks,
			Codes:    []domain.IssueCode{domain.IssueLinkGenericText, domain.IssueLinkEmpty},
			Evaluate: EvaluateLinks,
		},
	}
}

// ForScanType returns the rules a scan of the given type runs. A full scan
// runs all rules; an unknown type is treated as full.
func ForScanType(scanType domain.ScanType) []Rule {
	all := All()
	scanType = domain.ParseScanType(string(scanType))
	if scanType == domain.ScanTypeFull {
		return all
	}

	for _, r := range all {
		if r.ScanType == scanType {
			return []Rule{r}
		}
	}

	return all
}
