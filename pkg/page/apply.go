package page

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// Summary describes the page after Apply.
//
// Fields:
//   - Visible: Items left shown
//   - Total: Items read from the page, skipped ones excluded
type Summary struct {
	Visible int `json:"visible"`
	Total   int `json:"total"`
}

// Apply writes a filter state into the page.
//
// For every dimension with a dropdown, options whose text is not selectable
// under state get display:none and the rest are shown; the value="" option
// is never hidden. The option matching the state's value is marked selected,
// or the placeholder when the dimension is unset. Items not visible under
// state get display:none, the others lose it; each element is judged by its
// own tags, not looked up by ID. Items skipped while reading
// are left untouched. The count element, if any, receives the visible count.
//
// Parameters:
//   - cfg: Selectors to use; must match the ones the catalog was read with
//   - engine: Engine built from this page's catalog
//   - state: Filter state to show
//
// Returns:
//   - Summary: Visible and total item counts
//   - error: Invalid selectors or duplicate item IDs
func (d *Document) Apply(cfg *config.Config, engine *filtering.Engine, state filtering.FilterState) (Summary, error) {
	b, err := d.bind(cfg)
	if err != nil {
		return Summary{}, err
	}

	for dim, ctl := range b.controls {
		selectable, err := engine.SelectableValues(dim, state)
		if err != nil {
			return Summary{}, err
		}
		applyOptions(ctl, selectable, state.Get(dim))
	}

	summary := Summary{Total: len(b.items)}
	for _, bi := range b.items {
		show := filtering.Matches(bi.item, state)
		setHidden(bi.node, !show)
		if show {
			summary.Visible++
		}
	}

	if countEl := first(b.sel.count, d.root); countEl != nil {
		setText(countEl, strconv.Itoa(summary.Visible))
	}

	verbose.Printf("Showing %d of %d items", summary.Visible, summary.Total)
	return summary, nil
}

func applyOptions(ctl *html.Node, selectable filtering.ValueSet, current string) {
	for _, opt := range options(ctl) {
		if isPlaceholder(opt) {
			setHidden(opt, false)
			setSelected(opt, current == "")
			continue
		}
		text := textContent(opt)
		setHidden(opt, !selectable.Has(text))
		setSelected(opt, current != "" && text == current)
	}
}

func setSelected(opt *html.Node, selected bool) {
	if selected {
		setAttr(opt, "selected", "")
		return
	}
	removeAttr(opt, "selected")
}
