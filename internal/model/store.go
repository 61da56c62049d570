package model

import "fmt"

// Store holds the ordered entries and the current selection.
// The selection is kept by id so removing an entry can never leave it dangling.
type Store struct {
	entries  []Entry
	selected *int64
	nextID   int64
}

// NewStore creates a Store seeded with the given entries.
// Ids allocated later are strictly greater than any seed id.
func NewStore(seed []Entry) *Store {
	s := &Store{
		entries: make([]Entry, 0, len(seed)),
		nextID:  1,
	}
	for _, e := range seed {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
		s.entries = append(s.entries, e)
	}
	return s
}

// DefaultSeed returns the reference entries the selector starts with.
func DefaultSeed() []Entry {
	return []Entry{
		{ID: 1, URL: "www.rappi.com", Status: StatusProcessed, Timestamp: "2 days ago"},
		{ID: 2, URL: "www.google.com", Status: StatusPending, Timestamp: "1 hour ago"},
		{ID: 3, URL: "www.github.com", Status: StatusError, Timestamp: "5 days ago"},
	}
}

// Entries returns a copy of all entries in order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get finds an entry by id.
func (s *Store) Get(id int64) (Entry, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i], true
	}
	return Entry{}, false
}

// HasURL reports whether an entry with exactly this url exists.
func (s *Store) HasURL(url string) bool {
	for _, e := range s.entries {
		if e.URL == url {
			return true
		}
	}
	return false
}

// Add appends a new pending entry and selects it.
func (s *Store) Add(rawURL string) (Entry, error) {
	url, err := NormalizeURL(rawURL)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		ID:        s.allocID(),
		URL:       url,
		Status:    StatusPending,
		Timestamp: JustNow,
	}
	s.entries = append(s.entries, e)

	id := e.ID
	s.selected = &id
	return e, nil
}

// Remove deletes an entry, clearing the selection if it pointed at it.
func (s *Store) Remove(id int64) (Entry, error) {
	i := s.index(id)
	if i < 0 {
		return Entry{}, fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}

	removed := s.entries[i]
	s.entries = append(s.entries[:i], s.entries[i+1:]...)

	if s.selected != nil && *s.selected == id {
		s.selected = nil
	}
	return removed, nil
}

// UpdateStatus sets the status and timestamp of an existing entry.
func (s *Store) UpdateStatus(id int64, status Status, timestamp string) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("update %d: %w", id, ErrNotFound)
	}
	s.entries[i].Status = status
	s.entries[i].Timestamp = timestamp
	return nil
}

// Select makes the entry with the given id the selection.
func (s *Store) Select(id int64) error {
	if s.index(id) < 0 {
		return fmt.Errorf("select %d: %w", id, ErrNotFound)
	}
	s.selected = &id
	return nil
}

// ClearSelection sets the selection to none.
func (s *Store) ClearSelection() {
	s.selected = nil
}

// SelectedID returns the selected id, if any.
func (s *Store) SelectedID() (int64, bool) {
	if s.selected == nil {
		return 0, false
	}
	return *s.selected, true
}

// Selected returns the selected entry, if any.
func (s *Store) Selected() (Entry, bool) {
	if s.selected == nil {
		return Entry{}, false
	}
	return s.Get(*s.selected)
}

func (s *Store) index(id int64) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}
