package filtering

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidDimension is returned when a dimension outside Dim1..Dim3 is used.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrUnknownValue is returned when a value being set does not occur in the
	// catalog for that dimension.
	ErrUnknownValue = errors.New("unknown value")
)

// Dimension identifies one of the three filter axes.
type Dimension int

const (
	// Dim1 is the first single-valued dimension.
	Dim1 Dimension = iota + 1
	// Dim2 is the second single-valued dimension.
	Dim2
	// Dim3 is the multi-valued dimension.
	Dim3
)

// Dimensions lists every valid dimension in evaluation order.
var Dimensions = []Dimension{Dim1, Dim2, Dim3}

// Valid reports whether d is one of Dim1, Dim2 or Dim3.
func (d Dimension) Valid() bool {
	return d >= Dim1 && d <= Dim3
}

// String returns the canonical key for the dimension ("dim1", "dim2", "dim3").
func (d Dimension) String() string {
	if !d.Valid() {
		return fmt.Sprintf("dim(%d)", int(d))
	}
	return fmt.Sprintf("dim%d", int(d))
}

// ParseDimension parses "dim1", "1", "DIM2" and similar into a Dimension.
//
// Parameters:
//   - s: Dimension key or number
//
// Returns:
//   - Dimension: The parsed dimension
//   - error: ErrInvalidDimension when s names no dimension
func ParseDimension(s string) (Dimension, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "dim")
	switch key {
	case "1":
		return Dim1, nil
	case "2":
		return Dim2, nil
	case "3":
		return Dim3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDimension, s)
}

// checkDimension wraps ErrInvalidDimension with the offending value.
func checkDimension(d Dimension) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, int(d))
	}
	return nil
}

// Item is one tagged content entry.
//
// Fields:
//   - ID: Opaque identifier, unique within a catalog
//   - Dim1: Single tag for the first dimension, empty when untagged
//   - Dim2: Single tag for the second dimension, empty when untagged
//   - Dim3: Zero or more tags for the third dimension
type Item struct {
	ID   string   `json:"id" yaml:"id"`
	Dim1 string   `json:"dim1,omitempty" yaml:"dim1,omitempty"`
	Dim2 string   `json:"dim2,omitempty" yaml:"dim2,omitempty"`
	Dim3 []string `json:"dim3,omitempty" yaml:"dim3,omitempty"`
}

// Values returns the item's tags for d. Dim1 and Dim2 yield at most one value.
func (it Item) Values(d Dimension) []string {
	switch d {
	case Dim1:
		if it.Dim1 == "" {
			return nil
		}
		return []string{it.Dim1}
	case Dim2:
		if it.Dim2 == "" {
			return nil
		}
		return []string{it.Dim2}
	case Dim3:
		return it.Dim3
	}
	return nil
}

// Has reports whether the item carries value in dimension d. Equality is used
// for Dim1 and Dim2, membership for Dim3. An untagged item never matches.
func (it Item) Has(d Dimension, value string) bool {
	if value == "" {
		return false
	}
	for _, v := range it.Values(d) {
		if v == value {
			return true
		}
	}
	return false
}

// Catalog is the ordered, immutable item list of a filtering session.
type Catalog []Item

// FilterState is the current selection. An empty string means the dimension
// is unconstrained. The zero value is the fully unset state.
type FilterState struct {
	Dim1 string `json:"dim1,omitempty" yaml:"dim1,omitempty"`
	Dim2 string `json:"dim2,omitempty" yaml:"dim2,omitempty"`
	Dim3 string `json:"dim3,omitempty" yaml:"dim3,omitempty"`
}

// Get returns the selected value for d, or "" when unset or invalid.
func (s FilterState) Get(d Dimension) string {
	switch d {
	case Dim1:
		return s.Dim1
	case Dim2:
		return s.Dim2
	case Dim3:
		return s.Dim3
	}
	return ""
}

// With returns a copy of s with d set to value.
func (s FilterState) With(d Dimension, value string) FilterState {
	switch d {
	case Dim1:
		s.Dim1 = value
	case Dim2:
		s.Dim2 = value
	case Dim3:
		s.Dim3 = value
	}
	return s
}

// IsSet reports whether d carries a constraint.
func (s FilterState) IsSet(d Dimension) bool {
	return s.Get(d) != ""
}

// IsEmpty reports whether no dimension is constrained.
func (s FilterState) IsEmpty() bool {
	return s == FilterState{}
}

// String renders the set dimensions as "dim1=a dim3=b", or "(none)".
func (s FilterState) String() string {
	var parts []string
	for _, d := range Dimensions {
		if v := s.Get(d); v != "" {
			parts = append(parts, d.String()+"="+v)
		}
	}
	if len(parts) == 0 {
		return "(none)"
	}
	return strings.Join(parts, " ")
}

// ValueSet is an unordered set of dimension values.
type ValueSet map[string]struct{}

// Add inserts v into the set.
func (vs ValueSet) Add(v string) {
	vs[v] = struct{}{}
}

// Has reports whether v is in the set.
func (vs ValueSet) Has(v string) bool {
	_, ok := vs[v]
	return ok
}

// Len returns the number of values.
func (vs ValueSet) Len() int {
	return len(vs)
}

// Sorted returns the values in byte order. Display code that needs
// locale-aware ordering sorts the result again.
func (vs ValueSet) Sorted() []string {
	out := make([]string, 0, len(vs))
	for v := range vs {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ContainsAll reports whether every value of other is in vs.
func (vs ValueSet) ContainsAll(other ValueSet) bool {
	for v := range other {
		if !vs.Has(v) {
			return false
		}
	}
	return true
}
