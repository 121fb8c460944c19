package index

import (
	"strings"

	"github.com/xxxsen/drinkmap/internal/stats"
)

// Attrs are the statistic values attached to one country.
type Attrs struct {
	Litres float64
	Beer   float64
	Spirit float64
	Wine   float64
}

// Index maps upper-cased country names to their statistics.
type Index struct {
	byName    map[string]Attrs
	maxLitres float64
}

// Normalize returns the join key for a country name. Case folding is the only
// normalization: names spelled differently across datasets do not match.
func Normalize(name string) string {
	return strings.ToUpper(name)
}

// Build indexes records by normalized country name. A later record with the
// same key replaces the earlier one, but every record counts towards the
// litres maximum, which never drops below 0.
func Build(records []stats.Record) *Index {
	idx := &Index{byName: make(map[string]Attrs, len(records))}
	for _, r := range records {
		idx.byName[Normalize(r.Country)] = Attrs{
			Litres: r.Litres,
			Beer:   r.Beer,
			Spirit: r.Spirit,
			Wine:   r.Wine,
		}
		if r.Litres > idx.maxLitres {
			idx.maxLitres = r.Litres
		}
	}
	return idx
}

// Get returns the attributes for name. ok is false when the country has no
// record, which is distinct from a record whose values are zero.
func (i *Index) Get(name string) (Attrs, bool) {
	if i == nil {
		return Attrs{}, false
	}
	a, ok := i.byName[Normalize(name)]
	return a, ok
}

// Litres returns the litres value used for coloring; 0 when there is no data.
func (i *Index) Litres(name string) float64 {
	a, ok := i.Get(name)
	if !ok {
		return 0
	}
	return a.Litres
}

func (i *Index) MaxLitres() float64 {
	if i == nil {
		return 0
	}
	return i.maxLitres
}

func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.byName)
}
