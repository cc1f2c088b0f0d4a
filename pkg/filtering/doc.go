// Package filtering implements the cascading three-dimension filter engine.
//
// A Catalog of tagged items is fixed for the lifetime of a filtering session.
// The Engine answers two questions for any FilterState: which values remain
// selectable in each dimension, and which items remain visible.
//
// Basic Usage:
//
//	eng := filtering.NewEngine(catalog, filtering.Rules{})
//	state, err := eng.ApplyChange(filtering.Dim1, "Region-East", eng.Reset())
//	visible := eng.VisibleItems(state)
//	tags, err := eng.SelectableValues(filtering.Dim3, state)
//
// Sessions:
//
// Session owns the current FilterState for one adapter (a page, an HTTP
// client) and keeps a history for Undo:
//
//	s := filtering.NewSession(eng)
//	cleared, err := s.Apply(filtering.Dim2, "Type-A")
//	s.Undo()
//
// The Engine itself holds no mutable state and is safe for concurrent use.
// A Session is not.
package filtering
