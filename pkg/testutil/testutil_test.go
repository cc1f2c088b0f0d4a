package testutil

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// TestItemBuilder tests the fluent item builder.
func TestItemBuilder(t *testing.T) {
	it := NewItem("x").WithDim1("a").WithDim2("b").WithDim3("c", "d").Build()
	assert.Equal(t, filtering.Item{ID: "x", Dim1: "a", Dim2: "b", Dim3: []string{"c", "d"}}, it)
}

// TestSampleCatalog tests the shared fixture shape.
func TestSampleCatalog(t *testing.T) {
	cat := SampleCatalog()
	assert.Equal(t, []string{"A", "B", "C", "D"}, IDs(cat))
	assert.Empty(t, cat[3].Dim3)
	assert.Contains(t, SampleCatalogYAML, "id: D")
}

// TestPageHTML tests the page fixture builder.
//
// It verifies:
//   - One select per dimension with a placeholder and sorted options
//   - Untagged dim3 renders an empty element
//   - OmitSelect and ExtraItems are honoured
func TestPageHTML(t *testing.T) {
	page := SamplePageHTML()
	assert.Contains(t, page, `<select name="dropdown1"><option value="">All</option><option value="Region-East">Region-East</option><option value="Region-West">Region-West</option></select>`)
	assert.Contains(t, page, `data-item-id="D"><h3 data-dropdown1>Region-West</h3><span data-dropdown2>Type-B</span><span data-dropdown3></span></div>`)
	assert.Equal(t, 4, strings.Count(page, "collection_item_wrap"))

	page = PageHTML(SampleCatalog()[:1], PageOptions{
		OmitSelect: []filtering.Dimension{filtering.Dim3},
		ExtraItems: []string{`<div class="collection_item_wrap">bare</div>`},
	})
	assert.NotContains(t, page, `name="dropdown3"`)
	assert.Contains(t, page, ">bare</div>")
}

// TestCaptureStdout tests stdout capture.
func TestCaptureStdout(t *testing.T) {
	out := CaptureStdout(t, func() { fmt.Print("hello") })
	assert.Equal(t, "hello", out)
}

// TestCaptureStderr tests stderr capture.
func TestCaptureStderr(t *testing.T) {
	out := CaptureStderr(t, func() { fmt.Fprint(os.Stderr, "oops") })
	assert.Equal(t, "oops", out)
}

// TestCaptureOutput tests capturing both streams.
func TestCaptureOutput(t *testing.T) {
	stdout, stderr := CaptureOutput(t, func() {
		fmt.Print("out")
		fmt.Fprint(os.Stderr, "err")
	})
	assert.Equal(t, "out", stdout)
	assert.Equal(t, "err", stderr)
}
