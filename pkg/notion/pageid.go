package notion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Page URL shapes accepted, tried in order:
//
//	https://www.notion.so/Page-Title-<32hex>?p=<32hex>&pm=c
//	https://www.notion.so/<32hex>
//	https://www.notion.so/Page-Title-<dashed-uuid>
//	https://www.notion.so/Page-Title-<32hex>
var pageIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]p=([a-f0-9]{32})`),
	regexp.MustCompile(`/([a-f0-9]{32})(?:\?|$)`),
	regexp.MustCompile(`-([a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12})(?:\?|$)`),
	regexp.MustCompile(`-([a-f0-9]{32})(?:\?|$)`),
}

// ExtractPageID pulls the page ID out of a Notion page URL and normalizes it
// to the dashed UUID form the API expects.
func ExtractPageID(pageURL string) (string, error) {
	for _, pattern := range pageIDPatterns {
		match := pattern.FindStringSubmatch(pageURL)
		if match == nil {
			continue
		}
		id, err := uuid.Parse(strings.ReplaceAll(match[1], "-", ""))
		if err != nil {
			continue
		}
		return id.String(), nil
	}
	return "", fmt.Errorf("no page id found in url %q", pageURL)
}

// CompactID strips the dashes from a page ID, the form used in page URLs.
func CompactID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}

// PageURL builds the public URL of a page from its ID.
func PageURL(id string) string {
	return "https://www.notion.so/" + CompactID(id)
}
