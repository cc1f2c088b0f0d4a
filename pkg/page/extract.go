package page

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/ajxudir/cascade/pkg/catalog"
	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/verbose"
	"github.com/ajxudir/cascade/pkg/warnings"
)

// boundItem ties a catalog item to its element.
type boundItem struct {
	item filtering.Item
	node *html.Node
}

// binding is the result of reading a page with one configuration.
type binding struct {
	sel      *selectors
	controls map[filtering.Dimension]*html.Node
	items    []boundItem
	skipped  int
}

// Catalog reads the page's items as a catalog.
//
// Only dimensions whose <select> is present on the page are read. An item
// lacking the tag element of a present dimension is skipped with a warning;
// for dim3 at least one element is required but it may be empty. Items take
// their ID from page.id_attr, then the id attribute, then "item-<n>" where n
// is the item's 1-based position among matched elements. A generated ID is
// suffixed when the page already uses it (see catalog.FallbackID).
//
// Parameters:
//   - cfg: Selectors to use
//
// Returns:
//   - filtering.Catalog: Items in page order
//   - error: Invalid selectors, or duplicate IDs reported by catalog.Normalize
func (d *Document) Catalog(cfg *config.Config) (filtering.Catalog, error) {
	b, err := d.bind(cfg)
	if err != nil {
		return nil, err
	}
	items := make(filtering.Catalog, 0, len(b.items))
	for _, bi := range b.items {
		items = append(items, bi.item)
	}
	return items, nil
}

func (d *Document) bind(cfg *config.Config) (*binding, error) {
	if d.bound != nil && d.boundCfg == cfg {
		return d.bound, nil
	}

	sel, err := compileSelectors(cfg)
	if err != nil {
		return nil, err
	}

	b := &binding{sel: sel, controls: make(map[filtering.Dimension]*html.Node)}
	for _, dim := range filtering.Dimensions {
		if ctl := first(sel.dims[dim].control, d.root); ctl != nil {
			b.controls[dim] = ctl
		} else {
			verbose.WithDocRef("page", fmt.Sprintf("No %s dropdown matched %q; dimension ignored", cfg.Label(dim), cfg.Dimension(dim).Select))
		}
	}
	if sel.reset != nil && first(sel.reset, d.root) == nil {
		verbose.Printf("Reset control not found with selector %q", cfg.Page.Reset)
	}

	nodes := all(sel.items, d.root)
	verbose.Printf("Found %d potential collection items", len(nodes))

	ids := make([]string, len(nodes))
	taken := make(map[string]struct{}, len(nodes))
	for i, n := range nodes {
		if id := itemID(n, sel.idAttr); id != "" {
			ids[i] = id
			taken[id] = struct{}{}
		}
	}
	for i := range ids {
		if ids[i] == "" {
			ids[i] = catalog.FallbackID(i+1, taken)
		}
	}

	raw := make([]filtering.Item, 0, len(nodes))
	kept := make([]*html.Node, 0, len(nodes))
	for i, n := range nodes {
		it := filtering.Item{ID: ids[i]}

		var missing []string
		for _, dim := range filtering.Dimensions {
			if _, ok := b.controls[dim]; !ok {
				continue
			}
			tags := all(sel.dims[dim].tag, n)
			if len(tags) == 0 {
				missing = append(missing, cfg.Label(dim))
				continue
			}
			switch dim {
			case filtering.Dim1:
				it.Dim1 = textContent(tags[0])
			case filtering.Dim2:
				it.Dim2 = textContent(tags[0])
			case filtering.Dim3:
				for _, t := range tags {
					it.Dim3 = append(it.Dim3, textContent(t))
				}
			}
		}

		if len(missing) > 0 {
			b.skipped++
			warnings.Warnf("Collection item %d (%s) missing required data elements: %s", i, it.ID, strings.Join(missing, ", "))
			verbose.ItemSkipped(it.ID, "missing "+strings.Join(missing, ", "))
			continue
		}
		raw = append(raw, it)
		kept = append(kept, n)
	}

	items, err := catalog.Normalize(raw)
	if err != nil {
		return nil, err
	}
	for i, it := range items {
		b.items = append(b.items, boundItem{item: it, node: kept[i]})
	}
	verbose.Printf("Page catalog: %d items, %d skipped", len(b.items), b.skipped)
	d.bound, d.boundCfg = b, cfg
	return b, nil
}

// itemID returns the ID the markup gives n, or "".
func itemID(n *html.Node, idAttr string) string {
	if idAttr != "" {
		if v, ok := getAttr(n, idAttr); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	if v, ok := getAttr(n, "id"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return ""
}
