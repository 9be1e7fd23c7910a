package roster

// Store owns the current roster snapshot. It is not safe for concurrent use;
// the application drives it from a single event loop.
type Store struct {
	current  Roster
	ids      IDGenerator
	onAppend []func(Roster)
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithOnAppend registers an observer called with every new snapshot.
func WithOnAppend(fn func(Roster)) Option {
	return func(s *Store) {
		if fn != nil {
			s.onAppend = append(s.onAppend, fn)
		}
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{ids: NewUUIDIDs()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append records a validated name and age and returns the new snapshot.
// Inputs are assumed valid; see package validate.
func (s *Store) Append(name string, age int) Roster {
	rec := PersonRecord{ID: s.ids.NextID(), Name: name, Age: age}
	s.current = s.current.Append(rec)
	for _, fn := range s.onAppend {
		fn(s.current)
	}
	return s.current
}

// Snapshot returns the current roster.
func (s *Store) Snapshot() Roster {
	return s.current
}
