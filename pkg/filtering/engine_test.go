package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleCatalog returns the four-item catalog used throughout these tests.
func sampleCatalog() Catalog {
	return Catalog{
		{ID: "A", Dim1: "Region-East", Dim2: "Type-A", Dim3: []string{"Tag1", "Tag2"}},
		{ID: "B", Dim1: "Region-East", Dim2: "Type-B", Dim3: []string{"Tag2"}},
		{ID: "C", Dim1: "Region-West", Dim2: "Type-A", Dim3: []string{"Tag3"}},
		{ID: "D", Dim1: "Region-West", Dim2: "Type-B"},
	}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func mustSelectable(t *testing.T, e *Engine, d Dimension, s FilterState) []string {
	t.Helper()
	vs, err := e.SelectableValues(d, s)
	require.NoError(t, err)
	return vs.Sorted()
}

// TestExampleScenarios walks the reference scenarios for the sample catalog.
//
// It verifies:
//   - Reset shows everything and offers every dim1 value
//   - Setting dim1 narrows items and the other dimensions
//   - Setting an incompatible dim3 clears dim1 under the default rules
//   - With dim3 non-cascading the contradictory state is kept and nothing is visible
//   - Clearing dim1 keeps a dim2 value that is still reachable
func TestExampleScenarios(t *testing.T) {
	e := NewEngine(sampleCatalog(), Rules{})

	t.Run("reset", func(t *testing.T) {
		s := e.Reset()
		assert.True(t, s.IsEmpty())
		assert.Equal(t, []string{"A", "B", "C", "D"}, ids(e.VisibleItems(s)))
		assert.Equal(t, []string{"Region-East", "Region-West"}, mustSelectable(t, e, Dim1, s))
	})

	t.Run("set dim1", func(t *testing.T) {
		s, err := e.ApplyChange(Dim1, "Region-East", e.Reset())
		require.NoError(t, err)
		assert.Equal(t, FilterState{Dim1: "Region-East"}, s)
		assert.Equal(t, []string{"A", "B"}, ids(e.VisibleItems(s)))
		assert.Equal(t, []string{"Type-A", "Type-B"}, mustSelectable(t, e, Dim2, s))
		assert.Equal(t, []string{"Tag1", "Tag2"}, mustSelectable(t, e, Dim3, s))
	})

	t.Run("incompatible dim3 clears dim1", func(t *testing.T) {
		prev := FilterState{Dim1: "Region-East"}
		s, err := e.ApplyChange(Dim3, "Tag3", prev)
		require.NoError(t, err)
		assert.Equal(t, FilterState{Dim3: "Tag3"}, s)
		assert.Equal(t, []string{"C"}, ids(e.VisibleItems(s)))
		assert.Equal(t, FilterState{Dim1: "Region-East"}, prev, "input state must not change")
	})

	t.Run("non-cascading dim3 keeps dim1", func(t *testing.T) {
		nc := NewEngine(sampleCatalog(), Rules{NonCascading: []Dimension{Dim3}})
		s, err := nc.ApplyChange(Dim3, "Tag3", FilterState{Dim1: "Region-East"})
		require.NoError(t, err)
		assert.Equal(t, FilterState{Dim1: "Region-East", Dim3: "Tag3"}, s)
		assert.Empty(t, nc.VisibleItems(s))
		assert.NotNil(t, nc.VisibleItems(s))
	})

	t.Run("clearing dim1 keeps dim2", func(t *testing.T) {
		s, err := e.ApplyChange(Dim1, "", FilterState{Dim1: "Region-East", Dim2: "Type-A"})
		require.NoError(t, err)
		assert.Equal(t, FilterState{Dim2: "Type-A"}, s)
		assert.Equal(t, []string{"A", "C"}, ids(e.VisibleItems(s)))
	})
}

// TestSelectableValues tests SelectableValues edge cases.
//
// It verifies:
//   - The target dimension's own value does not restrict itself
//   - Untagged items contribute nothing
//   - An impossible combination yields an empty, non-nil set
//   - Invalid dimensions are rejected
func TestSelectableValues(t *testing.T) {
	e := NewEngine(sampleCatalog(), Rules{})

	tests := []struct {
		name  string
		dim   Dimension
		state FilterState
		want  []string
	}{
		{"own value ignored", Dim1, FilterState{Dim1: "Region-East"}, []string{"Region-East", "Region-West"}},
		{"dim3 under dim2", Dim3, FilterState{Dim2: "Type-B"}, []string{"Tag2"}},
		{"dim1 under dim3", Dim1, FilterState{Dim3: "Tag2"}, []string{"Region-East"}},
		{"dim2 under dim1 and dim3", Dim2, FilterState{Dim1: "Region-West", Dim3: "Tag3"}, []string{"Type-A"}},
		{"no combination", Dim2, FilterState{Dim1: "Region-East", Dim3: "Tag3"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustSelectable(t, e, tt.dim, tt.state))
		})
	}

	t.Run("untagged items ignored", func(t *testing.T) {
		cat := Catalog{{ID: "x", Dim1: "", Dim2: "T"}, {ID: "y", Dim1: "R"}}
		got := mustSelectable(t, NewEngine(cat, Rules{}), Dim1, FilterState{})
		assert.Equal(t, []string{"R"}, got)
	})

	t.Run("invalid dimension", func(t *testing.T) {
		for _, d := range []Dimension{0, 4, -1} {
			_, err := e.SelectableValues(d, FilterState{})
			assert.ErrorIs(t, err, ErrInvalidDimension)
		}
	})

	t.Run("empty catalog", func(t *testing.T) {
		empty := NewEngine(nil, Rules{})
		vs, err := empty.SelectableValues(Dim3, FilterState{})
		require.NoError(t, err)
		assert.Zero(t, vs.Len())
		assert.Empty(t, empty.VisibleItems(FilterState{}))
	})

	t.Run("result is a copy", func(t *testing.T) {
		vs, err := e.SelectableValues(Dim1, FilterState{})
		require.NoError(t, err)
		vs.Add("mutated")
		again, _ := e.SelectableValues(Dim1, FilterState{})
		assert.False(t, again.Has("mutated"))
	})
}

// TestApplyChangeErrors tests ApplyChange rejections.
//
// It verifies:
//   - Invalid dimensions return ErrInvalidDimension and the prior state
//   - Values absent from the catalog return ErrUnknownValue
func TestApplyChangeErrors(t *testing.T) {
	e := NewEngine(sampleCatalog(), Rules{})
	prev := FilterState{Dim2: "Type-A"}

	s, err := e.ApplyChange(Dimension(7), "x", prev)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.Equal(t, prev, s)

	s, err = e.ApplyChange(Dim1, "Region-North", prev)
	assert.ErrorIs(t, err, ErrUnknownValue)
	assert.Contains(t, err.Error(), "Region-North")
	assert.Equal(t, prev, s)

	// A dim2 value is not a dim1 value.
	_, err = e.ApplyChange(Dim1, "Type-A", prev)
	assert.ErrorIs(t, err, ErrUnknownValue)
}

// TestVisibleItemsStrict tests that untagged items are hidden under a constraint.
func TestVisibleItemsStrict(t *testing.T) {
	e := NewEngine(sampleCatalog(), Rules{})
	// D has no dim3 tags.
	assert.Equal(t, []string{"A", "B"}, ids(e.VisibleItems(FilterState{Dim3: "Tag2"})))
	assert.Equal(t, []string{"B", "D"}, ids(e.VisibleItems(FilterState{Dim2: "Type-B"})))
	assert.NotContains(t, ids(e.VisibleItems(FilterState{Dim2: "Type-B", Dim3: "Tag2"})), "D")
}

// TestParseDimension tests dimension parsing.
func TestParseDimension(t *testing.T) {
	tests := []struct {
		in      string
		want    Dimension
		wantErr bool
	}{
		{"dim1", Dim1, false},
		{"DIM2", Dim2, false},
		{" 3 ", Dim3, false},
		{"dim4", 0, true},
		{"", 0, true},
		{"region", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDimension(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDimension)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "dim(9)", Dimension(9).String())
}

// TestClearedBy tests cascade change detection.
func TestClearedBy(t *testing.T) {
	prev := FilterState{Dim1: "a", Dim2: "b", Dim3: "c"}
	next := FilterState{Dim1: "z"}
	assert.Equal(t, []Dimension{Dim2, Dim3}, ClearedBy(prev, next, Dim1))
	assert.Nil(t, ClearedBy(prev, prev, Dim2))
}

// TestFilterStateString tests the debug rendering of a state.
func TestFilterStateString(t *testing.T) {
	assert.Equal(t, "(none)", FilterState{}.String())
	assert.Equal(t, "dim1=a dim3=c", FilterState{Dim1: "a", Dim3: "c"}.String())
}
