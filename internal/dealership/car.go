// Package dealership holds the showroom domain: the car and salesperson
// records and the Dealership service that owns their registries.
package dealership

import (
	"fmt"
	"strings"
	"time"

	"showroom/internal/registry"
)

// KindCar names car records in error messages.
const KindCar = "car"

// firstModelYear is the year of the Benz Patent-Motorwagen; nothing on a
// lot predates it.
const firstModelYear = 1886

// Condition describes whether a car is sold new or used.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Car is a vehicle record held in the inventory registry.
//
// ID is assigned by the registry at insert time and immutable thereafter.
// StockNumber is assigned by the Dealership at creation and survives
// full-replace updates. SalespersonID is a non-owning lookup key into the
// staff registry; 0 means unassigned, and a dangling value after the
// salesperson is removed is acceptable.
type Car struct {
	ID            int64
	Make          string
	Model         string
	Year          int
	Price         float64
	Color         string
	BodyType      string // e.g. SUV, Sedan
	Condition     Condition
	DriveTrain    string // e.g. FWD, AWD
	EnginePowerCC int
	FuelCapacityL int
	SalespersonID int64
	StockNumber   string
}

// RecordID implements registry.Record.
func (c Car) RecordID() int64 { return c.ID }

// WithRecordID implements registry.Record.
func (c Car) WithRecordID(id int64) Car {
	c.ID = id
	return c
}

// Validate implements registry.Record. Required attributes must be present
// and well formed before a car enters the registry.
func (c Car) Validate() error {
	if strings.TrimSpace(c.Make) == "" {
		return &registry.ValidationError{Kind: KindCar, Field: "make", Reason: "is required"}
	}
	if strings.TrimSpace(c.Model) == "" {
		return &registry.ValidationError{Kind: KindCar, Field: "model", Reason: "is required"}
	}
	if maxYear := time.Now().Year() + 1; c.Year < firstModelYear || c.Year > maxYear {
		return &registry.ValidationError{
			Kind:   KindCar,
			Field:  "year",
			Reason: fmt.Sprintf("must be between %d and %d", firstModelYear, maxYear),
		}
	}
	if c.Price <= 0 {
		return &registry.ValidationError{Kind: KindCar, Field: "price", Reason: "must be positive"}
	}
	switch c.Condition {
	case "", ConditionNew, ConditionUsed:
	default:
		return &registry.ValidationError{Kind: KindCar, Field: "condition", Reason: "must be new or used"}
	}
	if c.EnginePowerCC < 0 {
		return &registry.ValidationError{Kind: KindCar, Field: "engine power", Reason: "must not be negative"}
	}
	if c.FuelCapacityL < 0 {
		return &registry.ValidationError{Kind: KindCar, Field: "fuel capacity", Reason: "must not be negative"}
	}
	return nil
}

// Title returns the customary "year make model" display line.
func (c Car) Title() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}
