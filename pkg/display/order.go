package display

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ajxudir/cascade/pkg/filtering"
)

// Sorter orders option values for a locale. It is safe for concurrent use.
type Sorter struct {
	mu       sync.Mutex
	tag      language.Tag
	collator *collate.Collator
}

// NewSorter creates a sorter for a BCP 47 locale. "und" gives the root
// collation order.
//
// Parameters:
//   - locale: Locale such as "en", "de-CH" or "und"
//
// Returns:
//   - *Sorter: The sorter
//   - error: When locale does not parse
func NewSorter(locale string) (*Sorter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Sorter{
		tag:      tag,
		collator: collate.New(tag, collate.Numeric),
	}, nil
}

// Locale returns the sorter's language tag.
func (s *Sorter) Locale() string {
	return s.tag.String()
}

// Sort returns the values of vs in collation order.
func (s *Sorter) Sort(vs filtering.ValueSet) []string {
	values := make([]string, 0, vs.Len())
	for v := range vs {
		values = append(values, v)
	}
	s.SortStrings(values)
	return values
}

// SortStrings sorts values in place.
func (s *Sorter) SortStrings(values []string) {
	// Collator buffers are not safe for concurrent use.
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collator.SortStrings(values)
}
