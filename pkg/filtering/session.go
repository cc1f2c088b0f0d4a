package filtering

// Session owns the selection of one filtering session.
//
// It is created by an adapter (a rendered page, an HTTP client) and passed
// to whatever handles that adapter's events. A Session is not safe for
// concurrent use; callers serialize access.
type Session struct {
	engine  *Engine
	state   FilterState
	history []FilterState
}

// Snapshot is a read-only view of a session after an operation.
//
// Fields:
//   - State: Current selection
//   - Selectable: Selectable values per dimension under State
//   - Visible: Visible items in catalog order
//   - Total: Number of items in the catalog
type Snapshot struct {
	State      FilterState
	Selectable map[Dimension]ValueSet
	Visible    []Item
	Total      int
}

// NewSession starts a session with the fully unset state.
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine, state: engine.Reset()}
}

// Engine returns the engine the session evaluates against.
func (s *Session) Engine() *Engine {
	return s.engine
}

// State returns the current selection.
func (s *Session) State() FilterState {
	return s.state
}

// Apply changes one dimension and records the prior state for Undo.
//
// Parameters:
//   - d: Dimension that changed
//   - value: New value, or "" to unset
//
// Returns:
//   - []Dimension: Other dimensions that were cleared by the cascade
//   - error: Engine error; the session is left unchanged
func (s *Session) Apply(d Dimension, value string) ([]Dimension, error) {
	next, err := s.engine.ApplyChange(d, value, s.state)
	if err != nil {
		return nil, err
	}
	cleared := ClearedBy(s.state, next, d)
	s.history = append(s.history, s.state)
	s.state = next
	return cleared, nil
}

// Reset clears every dimension. The prior state can be restored with Undo.
func (s *Session) Reset() FilterState {
	s.history = append(s.history, s.state)
	s.state = s.engine.Reset()
	return s.state
}

// Undo restores the state before the last Apply or Reset.
//
// Returns:
//   - FilterState: The restored state
//   - bool: false when there is nothing to undo
func (s *Session) Undo() (FilterState, bool) {
	if len(s.history) == 0 {
		return s.state, false
	}
	last := len(s.history) - 1
	s.state = s.history[last]
	s.history = s.history[:last]
	return s.state, true
}

// Depth returns how many operations can be undone.
func (s *Session) Depth() int {
	return len(s.history)
}

// Visible returns the items visible under the current state.
func (s *Session) Visible() []Item {
	return s.engine.VisibleItems(s.state)
}

// Selectable returns the selectable values of d under the current state.
func (s *Session) Selectable(d Dimension) (ValueSet, error) {
	return s.engine.SelectableValues(d, s.state)
}

// Snapshot evaluates every dimension and the visible items at once.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Selectable: make(map[Dimension]ValueSet, len(Dimensions)),
		Visible:    s.Visible(),
		Total:      len(s.engine.catalog),
	}
	for _, d := range Dimensions {
		// Dimensions only holds valid values.
		snap.Selectable[d], _ = s.engine.SelectableValues(d, s.state)
	}
	return snap
}
