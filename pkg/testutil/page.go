package testutil

import (
	"fmt"
	"html"
	"strings"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// PageOptions controls the markup produced by PageHTML.
//
// Fields:
//   - OmitSelect: Dimensions whose <select> is left out of the page
//   - ExtraItems: Raw item markup appended inside the collection
type PageOptions struct {
	OmitSelect []filtering.Dimension
	ExtraItems []string
}

// PageHTML renders a collection page for items using the default selectors:
// select[name="dropdownN"], [data-collection] .collection_item_wrap,
// [data-dropdownN], [data-reset-filters], [data-results-count] and
// data-item-id. Every item gets dim1 and dim2 elements and at least one
// dim3 element, empty when untagged, so no item is skipped.
//
// Parameters:
//   - items: Items to render
//   - opts: Optional markup tweaks
//
// Returns:
//   - string: Complete HTML document
func PageHTML(items []filtering.Item, opts PageOptions) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html><head><title>Collection</title></head><body>\n<form class=\"filters\">\n")

	omitted := make(map[filtering.Dimension]bool)
	for _, d := range opts.OmitSelect {
		omitted[d] = true
	}

	for _, d := range filtering.Dimensions {
		if omitted[d] {
			continue
		}
		values := filtering.ValueSet{}
		for _, it := range items {
			for _, v := range it.Values(d) {
				values.Add(v)
			}
		}
		fmt.Fprintf(&sb, "<select name=\"dropdown%d\"><option value=\"\">All</option>", int(d))
		for _, v := range values.Sorted() {
			fmt.Fprintf(&sb, "<option value=\"%s\">%s</option>", html.EscapeString(v), html.EscapeString(v))
		}
		sb.WriteString("</select>\n")
	}

	sb.WriteString("<a href=\"#\" data-reset-filters>Reset</a>\n</form>\n")
	sb.WriteString("<p>Showing <span data-results-count>0</span> items</p>\n")
	sb.WriteString("<div data-collection>\n")

	for _, it := range items {
		fmt.Fprintf(&sb, "<div class=\"collection_item_wrap\" data-item-id=\"%s\">", html.EscapeString(it.ID))
		fmt.Fprintf(&sb, "<h3 data-dropdown1>%s</h3>", html.EscapeString(it.Dim1))
		fmt.Fprintf(&sb, "<span data-dropdown2>%s</span>", html.EscapeString(it.Dim2))
		if len(it.Dim3) == 0 {
			sb.WriteString("<span data-dropdown3></span>")
		}
		for _, v := range it.Dim3 {
			fmt.Fprintf(&sb, "<span data-dropdown3>%s</span>", html.EscapeString(v))
		}
		sb.WriteString("</div>\n")
	}
	for _, extra := range opts.ExtraItems {
		sb.WriteString(extra)
		sb.WriteString("\n")
	}

	sb.WriteString("</div>\n</body></html>\n")
	return sb.String()
}

// SamplePageHTML renders SampleCatalog with every dropdown present.
func SamplePageHTML() string {
	return PageHTML(SampleCatalog(), PageOptions{})
}
