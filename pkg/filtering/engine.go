package filtering

import (
	"fmt"

	"github.com/ajxudir/cascade/pkg/verbose"
)

// Rules adjusts how ApplyChange cascades.
//
// Fields:
//   - NonCascading: Dimensions whose changes never clear other selections.
//     With Dim3 listed here a tag change only narrows the visible items,
//     which is how the original page script behaved. The default (empty)
//     re-validates the other dimensions after every change.
type Rules struct {
	NonCascading []Dimension
}

// cascades reports whether a change to d re-validates the other dimensions.
func (r Rules) cascades(d Dimension) bool {
	for _, nc := range r.NonCascading {
		if nc == d {
			return false
		}
	}
	return true
}

// Engine computes selectable values and visible items over a fixed Catalog.
//
// The catalog and rules are read-only after construction and the engine
// holds no selection state, so one Engine may serve any number of sessions
// concurrently.
type Engine struct {
	catalog  Catalog
	rules    Rules
	universe map[Dimension]ValueSet
}

// NewEngine indexes catalog and returns an engine for it.
//
// Parameters:
//   - catalog: Items in display order; the engine does not copy item slices
//     and callers must not mutate them afterwards
//   - rules: Cascade rules
//
// Returns:
//   - *Engine: Engine ready for use
func NewEngine(catalog Catalog, rules Rules) *Engine {
	e := &Engine{
		catalog:  catalog,
		rules:    rules,
		universe: make(map[Dimension]ValueSet, len(Dimensions)),
	}
	for _, d := range Dimensions {
		e.universe[d] = make(ValueSet)
	}
	for _, it := range catalog {
		for _, d := range Dimensions {
			for _, v := range it.Values(d) {
				if v != "" {
					e.universe[d].Add(v)
				}
			}
		}
	}
	verbose.Printf("Filter engine: %d items, %d/%d/%d distinct values",
		len(catalog), e.universe[Dim1].Len(), e.universe[Dim2].Len(), e.universe[Dim3].Len())
	return e
}

// Catalog returns the engine's catalog.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// Rules returns the cascade rules in effect.
func (e *Engine) Rules() Rules {
	return e.rules
}

// AllValues returns every distinct value the catalog has for d, ignoring any
// selection.
//
// Parameters:
//   - d: Target dimension
//
// Returns:
//   - ValueSet: A fresh set the caller may modify
//   - error: ErrInvalidDimension for an invalid d
func (e *Engine) AllValues(d Dimension) (ValueSet, error) {
	if err := checkDimension(d); err != nil {
		return nil, err
	}
	return copySet(e.universe[d]), nil
}

// Reset returns the fully unset state.
func (e *Engine) Reset() FilterState {
	return FilterState{}
}

// SelectableValues returns the values of d that still appear on at least one
// item matching every other dimension's constraint in state. The value
// currently selected for d does not restrict itself.
//
// Parameters:
//   - d: Target dimension
//   - state: Current selection
//
// Returns:
//   - ValueSet: Selectable values, possibly empty
//   - error: ErrInvalidDimension for an invalid d
func (e *Engine) SelectableValues(d Dimension, state FilterState) (ValueSet, error) {
	if err := checkDimension(d); err != nil {
		return nil, err
	}
	if !othersSet(d, state) {
		return copySet(e.universe[d]), nil
	}

	out := make(ValueSet)
	for _, it := range e.catalog {
		if !matchesExcept(it, state, d) {
			continue
		}
		for _, v := range it.Values(d) {
			if v != "" {
				out.Add(v)
			}
		}
	}
	return out, nil
}

// ApplyChange returns the state that results from setting d to value.
//
// It performs the following operations:
//   - Step 1: Validates d and, for a non-empty value, that the catalog has it
//   - Step 2: Copies state with d set to value ("" clears d)
//   - Step 3: Unless d was cleared or is non-cascading, checks each other set dimension
//     against SelectableValues of the post-change state and clears it when
//     its value is no longer selectable
//
// All checks in step 3 read the same post-change snapshot, so the result
// does not depend on the order the other dimensions are visited. Clearing
// only removes a constraint, so it keeps every other selection even when the
// prior state contradicts itself. The input state is never modified and d
// itself is never cleared.
//
// Parameters:
//   - d: Dimension that changed
//   - value: New value, or "" to unset
//   - state: Prior state
//
// Returns:
//   - FilterState: Resulting state
//   - error: ErrInvalidDimension or ErrUnknownValue; state is returned unchanged
func (e *Engine) ApplyChange(d Dimension, value string, state FilterState) (FilterState, error) {
	if err := checkDimension(d); err != nil {
		return state, err
	}
	if value != "" && !e.universe[d].Has(value) {
		return state, fmt.Errorf("%w: %s has no value %q", ErrUnknownValue, d, value)
	}

	next := state.With(d, value)
	if value == "" {
		verbose.Printf("Filter change %s cleared: %s", d, next)
		return next, nil
	}
	if !e.rules.cascades(d) {
		verbose.Printf("Filter change %s=%q (non-cascading): %s", d, value, next)
		return next, nil
	}

	snapshot := next
	for _, other := range Dimensions {
		if other == d || !snapshot.IsSet(other) {
			continue
		}
		selectable, _ := e.SelectableValues(other, snapshot)
		if !selectable.Has(snapshot.Get(other)) {
			verbose.Printf("Filter change %s=%q clears %s=%q", d, value, other, snapshot.Get(other))
			next = next.With(other, "")
		}
	}

	verbose.Printf("Filter change %s=%q: %s", d, value, next)
	return next, nil
}

// VisibleItems returns, in catalog order, every item that matches all set
// dimensions of state. An item without a tag in a constrained dimension is
// hidden.
//
// Parameters:
//   - state: Current selection
//
// Returns:
//   - []Item: Visible items; empty (never nil) when nothing matches
func (e *Engine) VisibleItems(state FilterState) []Item {
	out := make([]Item, 0, len(e.catalog))
	for _, it := range e.catalog {
		if Matches(it, state) {
			out = append(out, it)
		}
	}
	return out
}

// Matches reports whether it satisfies every set dimension of state.
func Matches(it Item, state FilterState) bool {
	return matchesExcept(it, state, 0)
}

// matchesExcept applies the per-dimension matching rule to every set
// dimension other than skip.
func matchesExcept(it Item, state FilterState, skip Dimension) bool {
	for _, d := range Dimensions {
		if d == skip {
			continue
		}
		if v := state.Get(d); v != "" && !it.Has(d, v) {
			return false
		}
	}
	return true
}

// othersSet reports whether any dimension other than d is constrained.
func othersSet(d Dimension, state FilterState) bool {
	for _, other := range Dimensions {
		if other != d && state.IsSet(other) {
			return true
		}
	}
	return false
}

func copySet(vs ValueSet) ValueSet {
	out := make(ValueSet, len(vs))
	for v := range vs {
		out.Add(v)
	}
	return out
}

// ClearedBy lists the dimensions, other than changed, that were set in prev
// and are unset in next.
//
// Parameters:
//   - prev: State before ApplyChange
//   - next: State after ApplyChange
//   - changed: The dimension passed to ApplyChange
//
// Returns:
//   - []Dimension: Cleared dimensions in evaluation order
func ClearedBy(prev, next FilterState, changed Dimension) []Dimension {
	var cleared []Dimension
	for _, d := range Dimensions {
		if d != changed && prev.IsSet(d) && !next.IsSet(d) {
			cleared = append(cleared, d)
		}
	}
	return cleared
}
