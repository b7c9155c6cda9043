package rules

import (
	"html"
	"regexp"
	"strings"
)

// tagBody matches the inside of a start tag after its name. Quoted values
// are consumed whole so a '>' inside them does not end the tag; a stray quote
// that never closes is taken as a plain character.
const tagBody = `(?:[^>"']|"[^"]*"|'[^']*'|["'])*`

var (
	// attrRe matches one attribute inside a start tag: a name with an
	// optional double quoted, single quoted or unquoted value.
	attrRe = regexp.MustCompile(`(?s)([^\s"'<>/=]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'=<>` + "`" + `]+)))?`)
	// tagNameRe matches the "<name" prefix of a start tag.
	tagNameRe = regexp.MustCompile(`^<[a-zA-Z][a-zA-Z0-9]*`)
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	anyTagRe  = regexp.MustCompile(`(?s)<` + tagBody + `>`)
)

// attributes holds the attributes of a start tag keyed by lower-cased name.
// A bare attribute (no value) is stored with an empty value.
type attributes map[string]string

// has reports whether the attribute is present at all.
func (a attributes) has(name string) bool {
	_, ok := a[name]

	return ok
}

// nonEmpty reports whether the attribute is present with a non-blank value.
func (a attributes) nonEmpty(name string) bool {
	return strings.TrimSpace(a[name]) != ""
}

// parseAttributes extracts the attributes of a raw start tag such as
// `<img src="a.png" alt="">`. The first occurrence of a name wins.
func parseAttributes(tag string) attributes {
	attrs := attributes{}

	body := tagNameRe.ReplaceAllString(tag, "")
	body = strings.TrimSuffix(body, ">")
	body = strings.TrimSuffix(body, "/")

	for _, m := range attrRe.FindAllStringSubmatchIndex(body, -1) {
		name := strings.ToLower(body[m[2]:m[3]])
		if _, seen := attrs[name]; seen {
			continue
		}

		value := ""
		for g := 4; g+1 < len(m); g += 2 {
			if m[g] >= 0 {
				value = body[m[g]:m[g+1]]

				break
			}
		}
		attrs[name] = html.UnescapeString(value)
	}

	return attrs
}

// stripTags removes comments and tags from a fragment and decodes entities.
func stripTags(fragment string) string {
	text := commentRe.ReplaceAllString(fragment, "")
	text = anyTagRe.ReplaceAllString(text, "")

	return html.UnescapeString(text)
}

// normalizeText lower-cases text and collapses whitespace runs.
func normalizeText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
