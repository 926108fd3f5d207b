package domain

import (
	"strconv"
	"strings"
)

// IndexRange is an inclusive span of 1-based item indices, Lo <= Hi
type IndexRange struct {
	Lo, Hi int
}

// IndexSet is the parsed form of an index list. Ranges stay unexpanded until
// Within bounds them by the item count.
type IndexSet []IndexRange

// ParseIndexSpec parses a list such as "1,3,5-7" into a set of indices.
// Ranges are inclusive and are swapped when written high-low. Tokens that
// are empty, unparsable or not positive are skipped.
func ParseIndexSpec(spec string) IndexSet {
	var set IndexSet
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := strconv.Atoi(tok)
			if err != nil || n <= 0 {
				continue
			}
			set = append(set, IndexRange{Lo: n, Hi: n})
			continue
		}

		a, errA := strconv.Atoi(strings.TrimSpace(lo))
		b, errB := strconv.Atoi(strings.TrimSpace(hi))
		if errA != nil || errB != nil || a <= 0 || b <= 0 {
			continue
		}
		if a > b {
			a, b = b, a
		}
		set = append(set, IndexRange{Lo: a, Hi: b})
	}
	return set
}

// IsIndexSpec reports whether s looks like a list or range rather than a
// single index.
func IsIndexSpec(s string) bool {
	return strings.ContainsAny(s, ",-")
}

// Within returns the distinct indices that fall in [1, count], ascending.
// Each range is clamped first, so the work is bounded by count.
func (s IndexSet) Within(count int) []int {
	if count <= 0 {
		return nil
	}
	hit := make([]bool, count+1)
	for _, r := range s {
		for i := max(r.Lo, 1); i <= min(r.Hi, count); i++ {
			hit[i] = true
		}
	}
	var out []int
	for i := 1; i <= count; i++ {
		if hit[i] {
			out = append(out, i)
		}
	}
	return out
}
