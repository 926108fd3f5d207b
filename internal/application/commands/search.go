package commands

import (
	"context"
	"sort"
	"strings"

	"funknotes/internal/application"
	"funknotes/internal/domain"
)

// SearchResults contains the matches of a keyword search
type SearchResults struct {
	Project string
	Object  string // set when the search was limited to one object
	Matches []domain.SearchResult
}

// SearchCommand finds items whose text contains every keyword, ignoring case
type SearchCommand struct {
	ws       *Workspace
	Project  string
	Object   string
	Keywords []string
	// DetectScope treats the first keyword as an object name when it names
	// an object of the project and more keywords follow.
	DetectScope bool
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(ws *Workspace, project, object string, keywords ...string) *SearchCommand {
	return &SearchCommand{
		ws:       ws,
		Project:  project,
		Object:   object,
		Keywords: keywords,
	}
}

// Validate checks that there is something to search for
func (c *SearchCommand) Validate() error {
	for _, kw := range c.Keywords {
		if strings.TrimSpace(kw) != "" {
			return nil
		}
	}
	return &application.ValidationError{
		Field:   "keywords",
		Message: "at least one keyword is required",
	}
}

// Execute runs the search command. Matches come in object order, then item
// order.
func (c *SearchCommand) Execute(ctx context.Context) (*SearchResults, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	t, err := c.ws.resolve(c.Project)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	object := c.Object
	keywords := c.Keywords
	if object == "" && c.DetectScope && len(keywords) > 1 && t.project.FindObject(keywords[0]) != nil {
		object = keywords[0]
		keywords = keywords[1:]
	}

	results := &SearchResults{Project: t.project.Name, Object: object}
	if object != "" {
		obj, err := findObject(t.project, object)
		if err != nil {
			return nil, err
		}
		results.Matches = domain.SearchObject(obj, keywords)
	} else {
		results.Matches = domain.SearchProject(t.project, keywords)
	}

	c.ws.logger().Debug("search finished", "project", t.project.Name, "object", object, "keywords", keywords, "matches", len(results.Matches))
	return results, nil
}

// FuzzyScore rates how well name matches query, ignoring case. Zero means
// no match. Exact names beat prefixes, prefixes beat substrings, and those
// beat names that merely contain the query's runes in order.
func FuzzyScore(name, query string) int {
	name, query = strings.ToLower(name), strings.ToLower(query)
	switch {
	case query == "":
		return 0
	case name == query:
		return 200
	case strings.HasPrefix(name, query):
		return 150
	case strings.Contains(name, query):
		return 100
	}
	return subsequenceScore([]rune(name), []rune(query))
}

// subsequenceScore rewards runes that match in a run or at a word start
func subsequenceScore(name, query []rune) int {
	score, q, last := 0, 0, -2
	for i, r := range name {
		if q == len(query) {
			break
		}
		if r != query[q] {
			continue
		}
		score++
		if i == last+1 {
			score += 10
		}
		if i == 0 || strings.ContainsRune(" _-.", name[i-1]) {
			score += 10
		}
		last = i
		q++
	}
	if q < len(query) {
		return 0
	}
	return score
}

// FuzzyFilter keeps the names matching query, best match first. Ties keep
// their original order. An empty query returns names unchanged.
func FuzzyFilter(names []string, query string) []string {
	if query == "" {
		return names
	}

	type scored struct {
		name  string
		score int
	}
	matches := make([]scored, 0, len(names))
	for _, n := range names {
		if s := FuzzyScore(n, query); s > 0 {
			matches = append(matches, scored{name: n, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.name)
	}
	return out
}
