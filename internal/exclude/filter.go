package exclude

import "github.com/renesugar/gircheck/internal/gir"

// Stats counts excluded entities per reason.
type Stats map[Reason]int

// Add folds other into s.
func (s Stats) Add(other Stats) {
	for reason, n := range other {
		s[reason] += n
	}
}

// Total returns the number of excluded entities.
func (s Stats) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Filter removes every excluded entity, with all the properties and signals
// it owns, from doc's tree and model. The lookup table is left intact so
// references to removed types still resolve.
func Filter(doc *gir.Document, reg *Registry) Stats {
	stats := Stats{}
	if reg.IsEmpty() {
		return stats
	}

	for _, e := range doc.Entities() {
		reason, excluded := reg.Excluded(e)
		if !excluded {
			continue
		}
		if doc.RemoveEntity(e) {
			stats[reason]++
		}
	}
	return stats
}
