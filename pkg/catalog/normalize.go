package catalog

import (
	"fmt"

	"github.com/ajxudir/cascade/pkg/errors"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/utils"
	"github.com/ajxudir/cascade/pkg/verbose"
)

// Normalize cleans raw items into a catalog.
//
// Whitespace in IDs and tags is trimmed and collapsed, empty and repeated
// dim3 entries are dropped, and items without an ID get "item-<n>" where n
// is the 1-based position. A generated ID never reuses an explicit one; see
// FallbackID. Order is preserved.
//
// Parameters:
//   - items: Raw items from a parser or page
//
// Returns:
//   - filtering.Catalog: The cleaned catalog, also returned alongside errors
//   - error: *errors.ValidationResult listing every duplicate ID
func Normalize(items []filtering.Item) (filtering.Catalog, error) {
	result := errors.NewValidationResult()
	out := make(filtering.Catalog, 0, len(items))
	firstSeen := make(map[string]int, len(items))

	taken := make(map[string]struct{}, len(items))
	for _, raw := range items {
		if id := utils.CollapseSpace(raw.ID); id != "" {
			taken[id] = struct{}{}
		}
	}

	for i, raw := range items {
		it := filtering.Item{
			ID:   utils.CollapseSpace(raw.ID),
			Dim1: utils.CollapseSpace(raw.Dim1),
			Dim2: utils.CollapseSpace(raw.Dim2),
			Dim3: utils.CleanValues(raw.Dim3),
		}
		if it.ID == "" {
			it.ID = FallbackID(i+1, taken)
		}

		if prev, dup := firstSeen[it.ID]; dup {
			result.AddError(errors.NewCatalogValidationError(
				fmt.Sprintf("items[%d].id", i),
				fmt.Sprintf("duplicate id %q (first used by items[%d])", it.ID, prev),
				"Give every item a unique id, or omit ids to have them generated",
			))
		} else {
			firstSeen[it.ID] = i
		}

		if it.Dim1 == "" && it.Dim2 == "" && len(it.Dim3) == 0 {
			verbose.Printf("Catalog item %q has no tags; it is only visible while no filter is set", it.ID)
		}
		out = append(out, it)
	}

	verbose.Printf("Catalog normalized: %d items, %d duplicate ids", len(out), len(result.Errors))
	return out, result.Err()
}

// FallbackID returns "item-<position>", or "item-<position>-<k>" with the
// smallest k >= 2 when that is already in taken. The result is added to
// taken.
func FallbackID(position int, taken map[string]struct{}) string {
	id := fmt.Sprintf("item-%d", position)
	for k := 2; ; k++ {
		if _, used := taken[id]; !used {
			break
		}
		id = fmt.Sprintf("item-%d-%d", position, k)
	}
	taken[id] = struct{}{}
	return id
}
