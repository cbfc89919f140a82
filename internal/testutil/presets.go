package testutil

import (
	"testing"

	"showroom/internal/dealership"
)

// WithSmallLot builds a dealership with three cars, two salespeople, and
// one assignment. Enough variety for list, search, and count tests.
func WithSmallLot(t *testing.T) *Builder {
	t.Helper()
	return NewBuilder(t).
		WithSalesperson("Maya Torres", Phone("555-0134"), Specialty("SUVs")).
		WithSalesperson("Dev Patel", Phone("555-0197")).
		WithCar("corolla", Year(2021), Price(21500)).
		WithCar("crv", Make("Honda"), Model("CR-V"), Year(2024), Price(33200), Cond(dealership.ConditionNew), BodyType("SUV")).
		WithCar("mx5", Make("Mazda"), Model("MX-5"), Year(2023), Price(29800), Color("red")).
		WithAssignment("crv", "Maya Torres")
}
