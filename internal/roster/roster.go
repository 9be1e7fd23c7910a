// Package roster holds the ordered list of accepted people.
//
// A Roster is a snapshot value: appending produces a new Roster that owns
// its own backing array, so a snapshot handed to the display layer never
// changes underneath it. The Store owns the current snapshot and is the
// only place records are created.
package roster

import "fmt"

// PersonRecord is one accepted name/age entry.
type PersonRecord struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
	Age  int    `yaml:"age" json:"age"`
}

// String renders the record the way the list shows it.
func (p PersonRecord) String() string {
	return fmt.Sprintf("%s (%d years old)", p.Name, p.Age)
}

// Roster is an immutable, insertion-ordered snapshot of records.
// The zero value is an empty roster.
type Roster struct {
	records []PersonRecord
}

// Len returns the number of records.
func (r Roster) Len() int {
	return len(r.records)
}

// At returns the i-th record, oldest first.
func (r Roster) At(i int) PersonRecord {
	return r.records[i]
}

// Last returns the newest record.
func (r Roster) Last() (PersonRecord, bool) {
	if len(r.records) == 0 {
		return PersonRecord{}, false
	}
	return r.records[len(r.records)-1], true
}

// Records returns a copy of the records, oldest first.
func (r Roster) Records() []PersonRecord {
	out := make([]PersonRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Append returns a new Roster with rec at the end. r is left untouched.
func (r Roster) Append(rec PersonRecord) Roster {
	next := make([]PersonRecord, len(r.records), len(r.records)+1)
	copy(next, r.records)
	return Roster{records: append(next, rec)}
}
