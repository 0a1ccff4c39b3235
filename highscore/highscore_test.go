package highscore

import (
	"encoding/json"
	"testing"
)

func TestInsertKeepsDescendingOrder(t *testing.T) {
	table := NewTable(5)
	for _, e := range []Entry{
		{Name: "ada", Score: 12},
		{Name: "bo", Score: 30},
		{Name: "cy", Score: 7},
		{Name: "dee", Score: 21},
	} {
		table.Insert(e.Name, e.Score)
	}

	got := table.Entries()
	want := []Entry{
		{Name: "bo", Score: 30},
		{Name: "dee", Score: 21},
		{Name: "ada", Score: 12},
		{Name: "cy", Score: 7},
	}
	if len(got) != len(want) {
		t.Fatalf("Entries() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInsertRanks(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		score    int
		wantRank int
	}{
		{name: "first entry tops an empty table", existing: nil, score: 10, wantRank: 0},
		{name: "new best goes first", existing: []int{30, 20, 10}, score: 40, wantRank: 0},
		{name: "middle placement", existing: []int{30, 20, 10}, score: 25, wantRank: 1},
		{name: "tie ranks below the earlier result", existing: []int{30, 20, 10}, score: 20, wantRank: 2},
		{name: "fills the last free slot", existing: []int{30, 20, 10, 8}, score: 1, wantRank: 4},
		{name: "full table rejects a non-beating score", existing: []int{30, 20, 10, 8, 5}, score: 5, wantRank: -1},
		{name: "full table accepts a beating score", existing: []int{30, 20, 10, 8, 5}, score: 6, wantRank: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(5)
			for i, s := range tt.existing {
				table.Insert(string(rune('a'+i)), s)
			}
			if got := table.Insert("new", tt.score); got != tt.wantRank {
				t.Errorf("Insert(%d) rank = %d, want %d", tt.score, got, tt.wantRank)
			}
			if table.Len() > 5 {
				t.Errorf("table grew to %d entries, want at most 5", table.Len())
			}
		})
	}
}

func TestQualifies(t *testing.T) {
	table := NewTable(2)
	if !table.Qualifies(0) {
		t.Error("Qualifies(0) = false on an empty table, want true")
	}
	table.Insert("a", 10)
	table.Insert("b", 5)
	if table.Qualifies(5) {
		t.Error("Qualifies(5) = true, want false when only tying last place")
	}
	if !table.Qualifies(6) {
		t.Error("Qualifies(6) = false, want true")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	table := NewTable(5)
	table.Insert("ada", 12)
	table.Insert("bo", 30)

	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if want := `[{"name":"bo","score":30},{"name":"ada","score":12}]`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	loaded := NewTable(5)
	if err := json.Unmarshal(data, loaded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if loaded.Len() != 2 || loaded.Entries()[0] != (Entry{Name: "bo", Score: 30}) {
		t.Errorf("round trip lost data: %v", loaded.Entries())
	}
}

func TestUnmarshalRepairsDisorder(t *testing.T) {
	// A hand-edited save file: unsorted and over-long.
	data := []byte(`[{"name":"c","score":3},{"name":"a","score":9},{"name":"b","score":7},{"name":"d","score":1}]`)
	table := NewTable(3)
	if err := json.Unmarshal(data, table); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	got := table.Entries()
	want := []Entry{{Name: "a", Score: 9}, {Name: "b", Score: 7}, {Name: "c", Score: 3}}
	if len(got) != len(want) {
		t.Fatalf("Entries() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUnmarshalCorruptData(t *testing.T) {
	table := NewTable(5)
	if err := json.Unmarshal([]byte(`{"not":"an array"}`), table); err == nil {
		t.Error("Unmarshal() of a non-array succeeded, want error")
	}
}

func TestMarshalEmptyTable(t *testing.T) {
	data, err := json.Marshal(NewTable(5))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal() = %s, want []", data)
	}
}
