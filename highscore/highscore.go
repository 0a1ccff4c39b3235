// Package highscore keeps the ranked best-results table. The table is a
// plain descending list of name/score pairs capped at a fixed size; its
// JSON form is a bare array so the save file stays trivially
// inspectable and editable.
package highscore

import (
	"encoding/json"
	"sort"
)

// DefaultSize is the number of entries kept when no size is given.
const DefaultSize = 5

// Entry is one ranked result.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Table is a descending ranking of at most a fixed number of entries.
// The zero value is unusable; construct with NewTable.
type Table struct {
	size    int
	entries []Entry
}

// NewTable returns an empty table holding at most size entries.
func NewTable(size int) *Table {
	if size <= 0 {
		size = DefaultSize
	}
	return &Table{size: size}
}

// Entries returns the ranking, best first, as a copy.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries currently ranked.
func (t *Table) Len() int {
	return len(t.entries)
}

// Qualifies reports whether a score would enter the table. A full table
// must be beaten outright; matching the last place is not enough.
func (t *Table) Qualifies(score int) bool {
	if len(t.entries) < t.size {
		return true
	}
	return score > t.entries[len(t.entries)-1].Score
}

// Insert ranks the result and returns its zero-based position, or -1 if
// it did not qualify. Ties rank below existing entries with the same
// score, so earlier results keep their standing.
func (t *Table) Insert(name string, score int) int {
	if !t.Qualifies(score) {
		return -1
	}
	pos := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Score < score
	})
	t.entries = append(t.entries, Entry{})
	copy(t.entries[pos+1:], t.entries[pos:])
	t.entries[pos] = Entry{Name: name, Score: score}
	if len(t.entries) > t.size {
		t.entries = t.entries[:t.size]
	}
	return pos
}

// MarshalJSON encodes the table as a plain array of entries.
func (t *Table) MarshalJSON() ([]byte, error) {
	if t.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t.entries)
}

// UnmarshalJSON replaces the table's entries with the decoded array,
// re-sorting and truncating so a hand-edited save file still loads into
// a valid ranking.
func (t *Table) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if t.size <= 0 {
		t.size = DefaultSize
	}
	if len(entries) > t.size {
		entries = entries[:t.size]
	}
	t.entries = entries
	return nil
}
