package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/cascade/pkg/config"
	"github.com/ajxudir/cascade/pkg/filtering"
	"github.com/ajxudir/cascade/pkg/output"
	"github.com/ajxudir/cascade/pkg/testutil"
)

func labelledConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("", t.TempDir())
	require.NoError(t, err)
	cfg.Dimensions.Dim1.Label = "Region"
	cfg.Dimensions.Dim2.Label = "Type"
	cfg.Dimensions.Dim3.Label = "Tag"
	return cfg
}

func mustSorter(t *testing.T, locale string) *Sorter {
	t.Helper()
	s, err := NewSorter(locale)
	require.NoError(t, err)
	return s
}

// TestSorter tests collation order.
//
// It verifies:
//   - Case does not split otherwise equal prefixes
//   - Digits compare numerically
//   - Accented letters sort next to their base letter
func TestSorter(t *testing.T) {
	s := mustSorter(t, "und")
	assert.Equal(t, "und", s.Locale())

	values := filtering.ValueSet{}
	for _, v := range []string{"Zürich", "Tag10", "tag1", "Zurich", "Tag2", "Apple"} {
		values.Add(v)
	}
	assert.Equal(t, []string{"Apple", "tag1", "Tag2", "Tag10", "Zurich", "Zürich"}, s.Sort(values))
	assert.Empty(t, s.Sort(nil))

	_, err := NewSorter("!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid locale "!!"`)
}

// TestNewOptionsResult tests snapshot conversion.
func TestNewOptionsResult(t *testing.T) {
	cfg := labelledConfig(t)
	session := filtering.NewSession(filtering.NewEngine(testutil.SampleCatalog(), filtering.Rules{}))
	_, err := session.Apply(filtering.Dim3, "Tag3")
	require.NoError(t, err)
	cleared, err := session.Apply(filtering.Dim1, "Region-East")
	require.NoError(t, err)

	r := NewOptionsResult(cfg, session.Snapshot(), cleared, mustSorter(t, "en"))
	assert.Equal(t, output.Summary{Visible: 2, Total: 4}, r.Summary)
	assert.Equal(t, []string{"dim3"}, r.Cleared)
	require.Len(t, r.Dimensions, 3)
	assert.Equal(t, output.DimensionOptions{Key: "dim1", Label: "Region", Selected: "Region-East", Values: []string{"Region-East", "Region-West"}}, r.Dimensions[0])
	assert.Equal(t, []string{"Type-A", "Type-B"}, r.Dimensions[1].Values)
	assert.Equal(t, []string{"Tag1", "Tag2"}, r.Dimensions[2].Values)
	assert.Empty(t, r.Dimensions[2].Selected)
}

// TestNewItemsResult tests visible item conversion.
func TestNewItemsResult(t *testing.T) {
	session := filtering.NewSession(filtering.NewEngine(testutil.SampleCatalog(), filtering.Rules{}))
	_, err := session.Apply(filtering.Dim2, "Type-B")
	require.NoError(t, err)

	r := NewItemsResult(labelledConfig(t), session.Snapshot())
	assert.Equal(t, [3]string{"Region", "Type", "Tag"}, r.Labels)
	assert.Equal(t, output.Summary{Visible: 2, Total: 4}, r.Summary)
	assert.Equal(t, []output.ItemEntry{
		{ID: "B", Dim1: "Region-East", Dim2: "Type-B", Dim3: []string{"Tag2"}},
		{ID: "D", Dim1: "Region-West", Dim2: "Type-B"},
	}, r.Items)
}

// TestPrintOptionsTable tests the options table layout.
func TestPrintOptionsTable(t *testing.T) {
	r := &output.OptionsResult{
		Summary: output.Summary{Visible: 0, Total: 4},
		Dimensions: []output.DimensionOptions{
			{Key: "dim1", Label: "Region", Selected: "Region-West", Values: []string{"Region-East", "Region-West"}},
			{Key: "dim2", Label: "Type"},
		},
		Cleared: []string{"dim2"},
	}
	var buf bytes.Buffer
	PrintOptionsTable(&buf, r)
	assert.Equal(t, ""+
		"DIMENSION  SELECTED     SELECTABLE\n"+
		"---------  -----------  ------------------------\n"+
		"Region     Region-West  Region-East, Region-West\n"+
		"Type       -            (none)\n"+
		"↺ Cleared: Type (no longer selectable)\n"+
		"\n"+
		"Showing 0 of 4 items\n", buf.String())
}

// TestPrintItemsTable tests the items table layout.
//
// It verifies:
//   - The tag column disappears when no visible item has tags
//   - An empty result prints a message instead of a table
func TestPrintItemsTable(t *testing.T) {
	t.Run("with tags", func(t *testing.T) {
		var buf bytes.Buffer
		PrintItemsTable(&buf, &output.ItemsResult{
			Labels:  [3]string{"Region", "Type", "Tag"},
			Summary: output.Summary{Visible: 2, Total: 4},
			Items: []output.ItemEntry{
				{ID: "A", Dim1: "Region-East", Dim2: "Type-A", Dim3: []string{"Tag1", "Tag2"}},
				{ID: "D", Dim1: "Region-West", Dim2: "Type-B"},
			},
		})
		assert.Equal(t, ""+
			"ID  REGION       TYPE    TAG\n"+
			"--  -----------  ------  ----------\n"+
			"A   Region-East  Type-A  Tag1, Tag2\n"+
			"D   Region-West  Type-B  -\n"+
			"\n"+
			"Showing 2 of 4 items\n", buf.String())
	})

	t.Run("without tags", func(t *testing.T) {
		var buf bytes.Buffer
		PrintItemsTable(&buf, &output.ItemsResult{
			Labels:  [3]string{"dim1", "dim2", "dim3"},
			Summary: output.Summary{Visible: 1, Total: 1},
			Items:   []output.ItemEntry{{ID: "D", Dim1: "Region-West", Dim2: "Type-B"}},
		})
		assert.Equal(t, "ID  DIM1         DIM2\n--  -----------  ------\nD   Region-West  Type-B\n\nShowing 1 of 1 item\n", buf.String())
	})

	t.Run("no matches", func(t *testing.T) {
		var buf bytes.Buffer
		PrintItemsTable(&buf, &output.ItemsResult{Summary: output.Summary{Total: 4}})
		assert.Equal(t, "No items match the current selection (0 of 4)\n", buf.String())
	})
}

// TestMessages tests the one-line message helpers.
func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	PrintWarnings(&buf, nil)
	PrintCleared(&buf, nil)
	assert.Empty(t, buf.String())

	PrintWarnings(&buf, []string{"first", "second"})
	assert.Equal(t, "\n⚠️ first\n⚠️ second\n", buf.String())

	buf.Reset()
	PrintNoItemsMessage(&buf, 0)
	PrintValidationOK(&buf, "Configuration")
	assert.Equal(t, "Catalog is empty\n✅ Configuration is valid\n", buf.String())
}
