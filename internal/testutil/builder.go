// Package testutil provides fluent builders for dealership test data.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"showroom/internal/dealership"
)

type carEntry struct {
	key string
	car dealership.Car
}

type spEntry struct {
	name string
	sp   dealership.Salesperson
}

type assignment struct {
	carKey string
	spName string
}

// Builder accumulates test records and inserts them in order, so tests
// get deterministic IDs without spelling out every field.
type Builder struct {
	t           *testing.T
	cars        []carEntry
	staff       []spEntry
	assignments []assignment

	carIDs map[string]int64
	spIDs  map[string]int64
}

// NewBuilder creates a builder bound to the test.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{
		t:      t,
		carIDs: make(map[string]int64),
		spIDs:  make(map[string]int64),
	}
}

// WithCar adds a car under a key the test can look the ID up by.
func (b *Builder) WithCar(key string, opts ...CarOption) *Builder {
	car := defaultCar()
	for _, opt := range opts {
		opt(&car)
	}
	b.cars = append(b.cars, carEntry{key: key, car: car})
	return b
}

// WithSalesperson adds a salesperson; the name doubles as the lookup key.
func (b *Builder) WithSalesperson(name string, opts ...SalespersonOption) *Builder {
	sp := dealership.Salesperson{Name: name}
	for _, opt := range opts {
		opt(&sp)
	}
	b.staff = append(b.staff, spEntry{name: name, sp: sp})
	return b
}

// WithAssignment assigns the salesperson to the car once both exist.
func (b *Builder) WithAssignment(carKey, spName string) *Builder {
	b.assignments = append(b.assignments, assignment{carKey: carKey, spName: spName})
	return b
}

// Build inserts everything into a fresh dealership. Insert order follows
// declaration order, so IDs are sequential per kind.
func (b *Builder) Build() *dealership.Dealership {
	b.t.Helper()
	d := dealership.New()

	for _, entry := range b.staff {
		id, err := d.AddSalesperson(entry.sp)
		require.NoError(b.t, err, "adding salesperson %s", entry.name)
		b.spIDs[entry.name] = id
	}
	for _, entry := range b.cars {
		id, err := d.AddCar(entry.car)
		require.NoError(b.t, err, "adding car %s", entry.key)
		b.carIDs[entry.key] = id
	}
	for _, a := range b.assignments {
		require.NoError(b.t, d.AssignSalesperson(b.CarID(a.carKey), b.SalespersonID(a.spName)),
			"assigning %s to %s", a.spName, a.carKey)
	}
	return d
}

// CarID returns the registry ID the keyed car got at Build time.
func (b *Builder) CarID(key string) int64 {
	b.t.Helper()
	id, ok := b.carIDs[key]
	require.True(b.t, ok, "unknown car key %q", key)
	return id
}

// SalespersonID returns the registry ID the named salesperson got at
// Build time.
func (b *Builder) SalespersonID(name string) int64 {
	b.t.Helper()
	id, ok := b.spIDs[name]
	require.True(b.t, ok, "unknown salesperson %q", name)
	return id
}
