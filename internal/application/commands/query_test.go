package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"funknotes/internal/application"
	"funknotes/internal/domain"
)

func TestMergeProjectsCommand(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "a", 1, true,
		map[string][]string{"todo": {"a1"}, "only-a": {"x"}}, "todo", "only-a")
	seedProject(store, state, "t", 2, false,
		map[string][]string{"todo": {"t1"}}, "todo")
	prompt := &scriptedPrompt{answers: []bool{true, true}}
	ws.Prompt = prompt

	res, err := NewMergeProjectsCommand(ws, "a", "ghost", "t").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(res.Message, "Merged into t") {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", res.Warnings)
	}

	target := store.get("t")
	todo := target.FindObject("todo")
	if todo == nil || todo.CountItems() != 2 || todo.Items[0].Text != "t1" || todo.Items[1].Text != "a1" {
		t.Errorf("expected t1 then a1 in todo, got %+v", todo)
	}
	if target.FindObject("only-a") == nil {
		t.Error("expected only-a to be moved into target")
	}

	if store.get("a") != nil {
		t.Error("expected source project to be deleted")
	}
	if !res.PrimaryCleared || state.cfg.HasPrimary() {
		t.Error("expected primary to be cleared")
	}
	if len(prompt.questions) != 2 || prompt.questions[0] != "Merge a into t?" || prompt.questions[1] != "Delete source projects?" {
		t.Errorf("unexpected questions %v", prompt.questions)
	}
}

func TestMergeProjectsCommand_KeepSources(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "a", 1, false, map[string][]string{"todo": {"a1"}}, "todo")
	seedProject(store, state, "t", 2, false, nil)
	ws.Prompt = &scriptedPrompt{answers: []bool{true, false}}

	if _, err := NewMergeProjectsCommand(ws, "a", "t").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.get("a") == nil {
		t.Error("expected source project to be kept")
	}
	if store.get("t").FindObject("todo") == nil {
		t.Error("expected todo in target")
	}
}

func TestMergeProjectsCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		ids     []string
		wantErr error
	}{
		{"single identifier", []string{"t"}, nil},
		{"missing target", []string{"a", "ghost"}, application.ErrNotFound},
		{"no sources resolve", []string{"ghost", "t"}, application.ErrNotFound},
		{"source is target", []string{"t", "t"}, application.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, store, state := newTestWorkspace()
			seedProject(store, state, "a", 1, false, nil)
			seedProject(store, state, "t", 2, false, nil)
			ws.Prompt = &scriptedPrompt{answers: []bool{true, true}}

			_, err := NewMergeProjectsCommand(ws, tt.ids...).Execute(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if store.saves != 0 || len(store.removed) != 0 {
				t.Errorf("expected nothing written")
			}
		})
	}
}

func TestMergeObjectsCommand(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 1, true,
		map[string][]string{"a": {"a1"}, "b": {"b1"}, "t": {"t1"}}, "a", "b", "t")
	ws.Prompt = &scriptedPrompt{answers: []bool{true, true}}

	res, err := NewMergeObjectsCommand(ws, "", "a", "ghost", "b", "t").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Merged objects into t\nDeleted source objects" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(res.Warnings) != 1 || res.Warnings[0] != "Source object 'ghost' not found, skipping" {
		t.Errorf("unexpected warnings %v", res.Warnings)
	}
	if store.saves != 1 {
		t.Errorf("expected a single write, got %d", store.saves)
	}

	p := store.get("work")
	if len(p.Objects) != 1 {
		t.Fatalf("expected only the target left, got %d objects", len(p.Objects))
	}
	var texts []string
	for _, item := range p.Objects[0].Items {
		texts = append(texts, item.Text)
	}
	if strings.Join(texts, ",") != "t1,a1,b1" {
		t.Errorf("expected t1,a1,b1, got %v", texts)
	}
	if len(p.Objects[0].History) != 3 {
		t.Errorf("expected merged history of 3, got %d", len(p.Objects[0].History))
	}
}

func TestMergeObjectsCommand_KeepSources(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 1, true,
		map[string][]string{"a": {"a1"}, "t": {"t1"}}, "a", "t")
	ws.Prompt = &scriptedPrompt{answers: []bool{true, false}}

	res, err := NewMergeObjectsCommand(ws, "", "a", "t").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SourcesDeleted {
		t.Error("sources should be kept")
	}

	p := store.get("work")
	src := p.FindObject("a")
	if src == nil {
		t.Fatal("source object should still exist")
	}
	if len(src.Items) != 0 || len(src.History) != 0 {
		t.Errorf("expected emptied source, got %d items and %d history entries", len(src.Items), len(src.History))
	}

	total := 0
	for _, obj := range p.Objects {
		total += len(obj.Items)
	}
	if total != 2 {
		t.Errorf("expected 2 items in the project, got %d", total)
	}
	if n := len(p.FindObject("t").Items); n != 2 {
		t.Errorf("expected 2 items in target, got %d", n)
	}
}

func TestMergeObjectsCommand_MissingTarget(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 1, true,
		map[string][]string{"a": {"a1"}}, "a")
	prompt := &scriptedPrompt{answers: []bool{true, true}}
	ws.Prompt = prompt

	_, err := NewMergeObjectsCommand(ws, "", "a", "ghost").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(prompt.questions) != 0 || store.saves != 0 {
		t.Errorf("expected no prompt and no write")
	}
}

func TestSearchCommand(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 1, true, map[string][]string{
		"todo":  {"Buy MILK and bread", "buy eggs", "call mom"},
		"ideas": {"milk frother", "buy a bread machine"},
	}, "todo", "ideas")

	tests := []struct {
		name     string
		object   string
		detect   bool
		keywords []string
		want     []string // object:index
	}{
		{"all keywords must match", "", false, []string{"buy", "bread"}, []string{"todo:1", "ideas:2"}},
		{"case insensitive", "", false, []string{"milk"}, []string{"todo:1", "ideas:1"}},
		{"explicit scope", "ideas", false, []string{"milk"}, []string{"ideas:1"}},
		{"detected scope", "", true, []string{"todo", "buy"}, []string{"todo:1", "todo:2"}},
		{"single keyword is never a scope", "", true, []string{"todo"}, nil},
		{"no match", "", false, []string{"zebra"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSearchCommand(ws, "", tt.object, tt.keywords...)
			cmd.DetectScope = tt.detect
			res, err := cmd.Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var got []string
			for _, m := range res.Matches {
				got = append(got, m.Object+":"+strconv.Itoa(m.Index))
			}
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearchCommand_Validate(t *testing.T) {
	cmd := &SearchCommand{Keywords: []string{" ", ""}}
	if err := cmd.Validate(); err == nil {
		t.Error("expected error for blank keywords")
	}

	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 1, true, nil)
	_, err := NewSearchCommand(ws, "", "ghost", "x").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListProjectsCommand(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 2, true, nil)
	seedProject(store, state, "home", 1, false, nil)
	seedProject(store, state, "workshop", 3, false, nil)

	all, err := NewListProjectsCommand(ws, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(all))
	}
	for _, s := range all {
		if s.IsPrimary != (s.Name == "work") {
			t.Errorf("unexpected primary flag on %s", s.Name)
		}
	}

	filtered, err := NewListProjectsCommand(ws, "work*").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 matches, got %d", len(filtered))
	}

	var verr *application.ValidationError
	if _, err := NewListProjectsCommand(ws, "[").Execute(context.Background()); !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestShowCommand(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 1, true,
		map[string][]string{"todo": {"a", "b"}, "ideas": nil}, "todo", "ideas")
	seedProject(store, state, "home", 2, false,
		map[string][]string{"garden": {"weed"}}, "garden")
	ctx := context.Background()

	res, err := NewShowCommand(ws).Execute(ctx)
	if err != nil || res.Objects == nil || res.Objects.Project != "work" {
		t.Fatalf("expected objects of primary, got %+v, %v", res, err)
	}
	if len(res.Objects.Objects) != 2 || res.Objects.Objects[0].Count != 2 {
		t.Errorf("unexpected objects %+v", res.Objects.Objects)
	}

	res, err = NewShowCommand(ws, "home").Execute(ctx)
	if err != nil || res.Objects == nil || res.Objects.Project != "home" {
		t.Fatalf("expected objects of home, got %+v, %v", res, err)
	}

	res, err = NewShowCommand(ws, "todo").Execute(ctx)
	if err != nil || res.Items == nil {
		t.Fatalf("expected items of todo, got %+v, %v", res, err)
	}
	if len(res.Items.Items) != 2 || res.Items.Items[1].Index != 2 || res.Items.Items[1].Text != "b" {
		t.Errorf("unexpected items %+v", res.Items.Items)
	}

	res, err = NewShowCommand(ws, "2", "garden").Execute(ctx)
	if err != nil || res.Items == nil || res.Items.Project != "home" {
		t.Fatalf("expected garden items, got %+v, %v", res, err)
	}

	if _, err := NewShowCommand(ws, "nothing").Execute(ctx); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestShowHistoryCommand(t *testing.T) {
	ws, store, state := newTestWorkspace()
	seedProject(store, state, "work", 1, true,
		map[string][]string{"todo": {"a", "b"}}, "todo")
	ws.Prompt = &scriptedPrompt{answers: []bool{true}}

	if _, err := NewDeleteItemCommand(ws, "", "todo", 1).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := NewShowHistoryCommand(ws, "", "todo").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var actions []string
	for _, e := range res.Entries {
		actions = append(actions, string(e.Action)+":"+e.Text)
	}
	if strings.Join(actions, " ") != "ADD:a ADD:b DELETE_ITEM:a" {
		t.Errorf("unexpected history %v", actions)
	}
}

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int
	}{
		{name: "exact match", target: "groceries", query: "groceries", wantScore: 200},
		{name: "prefix match", target: "groceries list", query: "groceries", wantScore: 150},
		{name: "substring match", target: "weekly groceries", query: "groceries", wantScore: 100},
		{name: "fuzzy match", target: "reading_list", query: "rl", wantMin: 1},
		{name: "no match", target: "groceries", query: "xyz"},
		{name: "empty query", target: "groceries", query: ""},
		{name: "case insensitive", target: "GROCERIES", query: "groceries", wantMin: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else if score != 0 {
				t.Errorf("expected score 0, got %d", score)
			}
		})
	}
}

func TestMissingObjectSuggestsNames(t *testing.T) {
	p := domain.NewProject("work", 1)
	for _, name := range []string{"groceries", "ideas"} {
		if _, err := p.AddObject(name); err != nil {
			t.Fatal(err)
		}
	}

	_, err := findObject(p, "grcries")
	if err == nil || !strings.Contains(err.Error(), "did you mean groceries?") {
		t.Errorf("expected suggestion, got %v", err)
	}

	_, err = findObject(p, "zzz")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("expected no suggestion, got %v", err)
	}
}

func TestFuzzyFilter(t *testing.T) {
	names := []string{"ideas", "my-todo", "todo", "reading"}

	got := FuzzyFilter(names, "todo")
	if strings.Join(got, ",") != "todo,my-todo" {
		t.Errorf("expected todo,my-todo, got %v", got)
	}
	if got := FuzzyFilter(names, ""); len(got) != len(names) {
		t.Errorf("empty query should keep all names, got %v", got)
	}
}
