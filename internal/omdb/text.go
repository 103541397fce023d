package omdb

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// plainText collapses whitespace in free text. Entities are decoded, and
// markup is stripped only when every tag in s is a known HTML element, so
// prose such as "x<y" or "<Redacted>" is kept as written. The sentinel and
// empty values pass through unchanged.
func plainText(s string) string {
	if s == "" || s == NotAvailable {
		return s
	}
	collapsed := strings.Join(strings.Fields(s), " ")
	if !strings.ContainsAny(s, "<&") {
		return collapsed
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapsed
	}
	if strings.Contains(s, "<") && !onlyKnownTags(doc) {
		return collapsed
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// onlyKnownTags reports whether the body holds at least one element and
// every element is a standard HTML tag.
func onlyKnownTags(doc *goquery.Document) bool {
	elems := doc.Find("body *")
	if elems.Length() == 0 {
		return false
	}

	known := true
	elems.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		known = sel.Get(0).DataAtom != 0
		return known
	})
	return known
}
