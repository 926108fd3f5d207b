package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseIndexSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []int
	}{
		{name: "single", spec: "3", want: []int{3}},
		{name: "list and range", spec: "1,3-4", want: []int{1, 3, 4}},
		{name: "reversed range", spec: "5-3", want: []int{3, 4, 5}},
		{name: "duplicates collapse", spec: "2,2,1-2", want: []int{1, 2}},
		{name: "spaces around tokens", spec: " 1 , 4 - 5 ", want: []int{1, 4, 5}},
		{name: "zero and junk skipped", spec: "0,abc,2", want: []int{2}},
		{name: "empty tokens skipped", spec: ",,7,", want: []int{7}},
		{name: "bad range skipped", spec: "1-x,0-3,6", want: []int{6}},
		{name: "nothing valid", spec: "x,0", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIndexSpec(tt.spec).Within(100))
		})
	}
}

func TestIndexSet_Within(t *testing.T) {
	set := ParseIndexSpec("1,3-4,9")
	assert.Equal(t, []int{1, 3, 4}, set.Within(5))
	assert.Nil(t, set.Within(0))
}

func TestIndexSet_HugeRangeIsClamped(t *testing.T) {
	set := ParseIndexSpec("1-2147483647,3000000000-1")

	done := make(chan []int, 1)
	go func() { done <- set.Within(3) }()

	select {
	case got := <-done:
		assert.Equal(t, []int{1, 2, 3}, got)
	case <-time.After(time.Second):
		t.Fatal("Within did not bound the range by the item count")
	}
}

func TestIsIndexSpec(t *testing.T) {
	assert.True(t, IsIndexSpec("1,2"))
	assert.True(t, IsIndexSpec("2-4"))
	assert.False(t, IsIndexSpec("12"))
}

func TestMatchesAll(t *testing.T) {
	tests := []struct {
		text     string
		keywords []string
		want     bool
	}{
		{"buy milk", []string{"buy", "milk"}, true},
		{"buy eggs", []string{"buy", "milk"}, false},
		{"sell milk", []string{"buy", "milk"}, false},
		{"buy milk", []string{"BUY"}, true},
		{"Buy Milk", []string{"milk"}, true},
		{"anything", nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesAll(tt.text, tt.keywords), "%q %v", tt.text, tt.keywords)
	}
}

func TestSearchProject(t *testing.T) {
	p := NewProject("home", 1)
	p.Objects = append(p.Objects,
		objectWith("groceries", "buy milk", "buy eggs", "sell milk"),
		objectWith("chores", "buy milk crate"),
	)

	results := SearchProject(p, []string{"buy", "milk"})

	assert.Equal(t, []SearchResult{
		{Object: "groceries", Index: 1, Item: Item{Timestamp: ts, Text: "buy milk"}},
		{Object: "chores", Index: 1, Item: Item{Timestamp: ts, Text: "buy milk crate"}},
	}, results)

	scoped := SearchObject(p.FindObject("groceries"), []string{"milk"})
	assert.Len(t, scoped, 2)
	assert.Equal(t, 3, scoped[1].Index)
}

func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2024, 3, 9, 7, 5, 1, 0, time.Local)
	assert.Equal(t, "2024-03-09 07:05:01", FormatTimestamp(at))
	assert.Equal(t, at, FixedClock{T: at}.Now())
}
