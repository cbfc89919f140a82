// Package registry provides the in-memory ordered record store at the core
// of showroom. A Registry holds records of a single kind, preserves insertion
// order, and enforces identifier uniqueness at insert time.
//
// Registries are not safe for concurrent use. All access happens on the
// single Bubble Tea event loop, so no locking discipline is needed.
package registry

// Record is a stored entity with a unique identifier.
//
// The type parameter ties WithRecordID to the concrete record type so the
// registry can hand back an ID-stamped copy without reflection.
type Record[R any] interface {
	// RecordID returns the record's identifier, or 0 when unassigned.
	RecordID() int64

	// WithRecordID returns a copy of the record with the identifier set.
	// Identifiers are assigned once at insert time and immutable thereafter.
	WithRecordID(id int64) R

	// Validate reports whether all required attributes are present and
	// well formed. Implementations return a *ValidationError.
	Validate() error
}

// Registry is an ordered in-memory collection of records of one kind.
type Registry[R Record[R]] struct {
	kind    string
	records []R
	nextID  int64
}

// New creates an empty registry. kind names the record type in error
// messages ("car", "salesperson").
func New[R Record[R]](kind string) *Registry[R] {
	return &Registry[R]{
		kind:    kind,
		records: make([]R, 0),
		nextID:  1,
	}
}

// Add validates the record and inserts it at the end of the collection.
//
// A record with RecordID() == 0 is assigned the next counter identifier.
// A caller-supplied positive identifier is kept as-is; supplying one that is
// already taken fails with a ValidationError. The assigned identifier is
// returned.
func (r *Registry[R]) Add(rec R) (int64, error) {
	if err := rec.Validate(); err != nil {
		return 0, err
	}

	id := rec.RecordID()
	switch {
	case id < 0:
		return 0, &ValidationError{Kind: r.kind, Field: "id", Reason: "must not be negative"}
	case id == 0:
		id = r.nextID
	default:
		if r.indexOf(id) >= 0 {
			return 0, &ValidationError{Kind: r.kind, Field: "id", Reason: "already taken"}
		}
	}

	// Keep the counter ahead of every identifier seen, including
	// caller-supplied ones.
	if id >= r.nextID {
		r.nextID = id + 1
	}

	r.records = append(r.records, rec.WithRecordID(id))
	return id, nil
}

// Get returns the record with the given identifier.
func (r *Registry[R]) Get(id int64) (R, error) {
	if i := r.indexOf(id); i >= 0 {
		return r.records[i], nil
	}
	var zero R
	return zero, &NotFoundError{Kind: r.kind, ID: id}
}

// List returns a snapshot of all records in insertion order.
func (r *Registry[R]) List() []R {
	out := make([]R, len(r.records))
	copy(out, r.records)
	return out
}

// Update replaces the stored record wholesale. There are no partial patch
// semantics: the caller supplies the complete replacement. The identifier and
// the record's position in the insertion order are preserved.
func (r *Registry[R]) Update(id int64, rec R) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	i := r.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: r.kind, ID: id}
	}
	r.records[i] = rec.WithRecordID(id)
	return nil
}

// Remove deletes the record with the given identifier. Removal has no
// cascading effects: records referencing the removed identifier keep their
// now-dangling reference.
func (r *Registry[R]) Remove(id int64) error {
	i := r.indexOf(id)
	if i < 0 {
		return &NotFoundError{Kind: r.kind, ID: id}
	}
	r.records = append(r.records[:i], r.records[i+1:]...)
	return nil
}

// Len returns the number of stored records.
func (r *Registry[R]) Len() int {
	return len(r.records)
}

// indexOf returns the position of id in the insertion order, or -1.
// Linear scan: registries hold showroom-sized collections, not fleets.
func (r *Registry[R]) indexOf(id int64) int {
	for i, rec := range r.records {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}
