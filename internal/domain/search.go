package domain

import "strings"

// SearchResult is an item matched by a keyword search
type SearchResult struct {
	Object string
	Index  int // 1-based position within the object
	Item   Item
}

// MatchesAll reports whether every keyword occurs in text, ignoring case.
// An empty keyword list matches nothing.
func MatchesAll(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// SearchObject returns the items of obj matching all keywords
func SearchObject(obj *Object, keywords []string) []SearchResult {
	var results []SearchResult
	for i, item := range obj.ItemsInOrder() {
		if MatchesAll(item.Text, keywords) {
			results = append(results, SearchResult{
				Object: obj.Name,
				Index:  i + 1,
				Item:   item,
			})
		}
	}
	return results
}

// SearchProject searches every object in stored order
func SearchProject(p *Project, keywords []string) []SearchResult {
	var results []SearchResult
	for _, obj := range p.Objects {
		results = append(results, SearchObject(obj, keywords)...)
	}
	return results
}
