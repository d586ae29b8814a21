package report

import "sort"

// Level pairs a severity tag with the inclusive lower bound that
// activates it.
type Level struct {
	Tag string
	Min float64
}

// Classify maps a value to the most severe applicable tag. Levels are
// evaluated from the highest bound down, so when ranges overlap the first
// bound the value meets or exceeds wins. Values below every bound get the
// fallback tag.
func Classify(value float64, levels []Level, fallback string) string {
	ordered := make([]Level, len(levels))
	copy(ordered, levels)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Min > ordered[j].Min
	})
	for _, l := range ordered {
		if value >= l.Min {
			return l.Tag
		}
	}
	return fallback
}
