package testutil

import (
	"github.com/ajxudir/cascade/pkg/filtering"
)

// ItemBuilder provides a fluent API for building catalog items.
type ItemBuilder struct {
	item filtering.Item
}

// NewItem starts an item with the given ID and no tags.
//
// Parameters:
//   - id: Item ID
//
// Returns:
//   - *ItemBuilder: Builder for method chaining
func NewItem(id string) *ItemBuilder {
	return &ItemBuilder{item: filtering.Item{ID: id}}
}

// WithDim1 sets the dim1 tag.
func (b *ItemBuilder) WithDim1(v string) *ItemBuilder {
	b.item.Dim1 = v
	return b
}

// WithDim2 sets the dim2 tag.
func (b *ItemBuilder) WithDim2(v string) *ItemBuilder {
	b.item.Dim2 = v
	return b
}

// WithDim3 sets the dim3 tags.
func (b *ItemBuilder) WithDim3(v ...string) *ItemBuilder {
	b.item.Dim3 = v
	return b
}

// Build returns the item.
func (b *ItemBuilder) Build() filtering.Item {
	return b.item
}

// SampleCatalog returns the four-item catalog used across package tests:
//
//	A: Region-East, Type-A, [Tag1 Tag2]
//	B: Region-East, Type-B, [Tag2]
//	C: Region-West, Type-A, [Tag3]
//	D: Region-West, Type-B, []
func SampleCatalog() filtering.Catalog {
	return filtering.Catalog{
		NewItem("A").WithDim1("Region-East").WithDim2("Type-A").WithDim3("Tag1", "Tag2").Build(),
		NewItem("B").WithDim1("Region-East").WithDim2("Type-B").WithDim3("Tag2").Build(),
		NewItem("C").WithDim1("Region-West").WithDim2("Type-A").WithDim3("Tag3").Build(),
		NewItem("D").WithDim1("Region-West").WithDim2("Type-B").Build(),
	}
}

// SampleCatalogYAML is SampleCatalog as a catalog file.
const SampleCatalogYAML = `items:
  - id: A
    dim1: Region-East
    dim2: Type-A
    dim3: [Tag1, Tag2]
  - id: B
    dim1: Region-East
    dim2: Type-B
    dim3: Tag2
  - id: C
    dim1: Region-West
    dim2: Type-A
    dim3: [Tag3]
  - id: D
    dim1: Region-West
    dim2: Type-B
`

// IDs returns the IDs of items in order.
func IDs(items []filtering.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
