package analytics

import "regexp"

var (
	hashtagRe  = regexp.MustCompile(`#(\w+)`)
	pageLinkRe = regexp.MustCompile(`\[\[(.*?)\]\]`)
	embedRe    = regexp.MustCompile(`\{\{\[\[.*?\]\]\}\}`)
)

// ExtractHashtags returns the #tag names in content, in order of
// appearance, without the leading '#'. Duplicates are kept; the caller
// counts one per occurrence.
func ExtractHashtags(content string) []string {
	var tags []string
	for _, m := range hashtagRe.FindAllStringSubmatch(content, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// ExtractPageLinks returns the [[page]] targets in content, in order
// of appearance. Status macros like {{[[DONE]]}} are dropped first so
// their inner brackets do not read as page references. The match is
// non-greedy; nested or unbalanced brackets get plain regex semantics.
func ExtractPageLinks(content string) []string {
	content = embedRe.ReplaceAllString(content, "")
	var links []string
	for _, m := range pageLinkRe.FindAllStringSubmatch(content, -1) {
		links = append(links, m[1])
	}
	return links
}
