package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStoreAppend_SingleRecord(t *testing.T) {
	s := NewStore(WithIDGenerator(NewCounterIDs("X")))

	got := s.Append("Alice", 30)

	want := []PersonRecord{{ID: "X-1", Name: "Alice", Age: 30}}
	if diff := cmp.Diff(want, got.Records()); diff != "" {
		t.Fatalf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreAppend_PreservesOrder(t *testing.T) {
	s := NewStore(WithIDGenerator(NewCounterIDs("p")))

	s.Append("Alice", 30)
	got := s.Append("Bob", 25)

	want := []PersonRecord{
		{ID: "p-1", Name: "Alice", Age: 30},
		{ID: "p-2", Name: "Bob", Age: 25},
	}
	if diff := cmp.Diff(want, got.Records()); diff != "" {
		t.Fatalf("roster mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, s.Snapshot().Records()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreAppend_IsMonotonicAndLeavesPriorSnapshot(t *testing.T) {
	s := NewStore()
	prev := s.Snapshot()
	prevRecords := prev.Records()

	for i := 0; i < 20; i++ {
		next := s.Append("n", i+1)
		if next.Len() != prev.Len()+1 {
			t.Fatalf("append %d: expected len %d, got %d", i, prev.Len()+1, next.Len())
		}
		if diff := cmp.Diff(prevRecords, prev.Records()); diff != "" {
			t.Fatalf("append %d mutated previous snapshot (-before +after):\n%s", i, diff)
		}
		prev = next
		prevRecords = next.Records()
	}
}

func TestRosterAppend_SiblingSnapshotsDoNotAlias(t *testing.T) {
	base := Roster{}.Append(PersonRecord{ID: "a", Name: "A", Age: 1})
	left := base.Append(PersonRecord{ID: "b", Name: "B", Age: 2})
	right := base.Append(PersonRecord{ID: "c", Name: "C", Age: 3})

	if left.At(1).ID != "b" || right.At(1).ID != "c" {
		t.Fatalf("sibling snapshots share storage: left=%v right=%v", left.Records(), right.Records())
	}
	if base.Len() != 1 {
		t.Fatalf("base changed length: %d", base.Len())
	}
}

func TestRosterRecords_ReturnsCopy(t *testing.T) {
	r := Roster{}.Append(PersonRecord{ID: "a", Name: "A", Age: 1})
	recs := r.Records()
	recs[0].Name = "mutated"

	if r.At(0).Name != "A" {
		t.Fatalf("Records exposed internal storage")
	}
}

func TestRosterLast(t *testing.T) {
	var r Roster
	if _, ok := r.Last(); ok {
		t.Fatalf("expected no last record on empty roster")
	}
	r = r.Append(PersonRecord{ID: "1", Name: "A", Age: 1}).Append(PersonRecord{ID: "2", Name: "B", Age: 2})
	last, ok := r.Last()
	if !ok || last.Name != "B" {
		t.Fatalf("expected B as last record, got %+v", last)
	}
}

func TestStore_OnAppendObserversSeeNewSnapshot(t *testing.T) {
	var seen []int
	s := NewStore(
		WithOnAppend(func(r Roster) { seen = append(seen, r.Len()) }),
		WithOnAppend(nil),
	)

	s.Append("A", 1)
	s.Append("B", 2)

	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Fatalf("observer calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPersonRecordString(t *testing.T) {
	p := PersonRecord{ID: "1", Name: "Alice", Age: 30}
	if got := p.String(); got != "Alice (30 years old)" {
		t.Fatalf("unexpected display line %q", got)
	}
}
