package dealership

import (
	"strings"

	"showroom/internal/registry"
)

// KindSalesperson names salesperson records in error messages.
const KindSalesperson = "salesperson"

// Salesperson is a staff record. Specialty is the make they sell.
type Salesperson struct {
	ID        int64
	Name      string
	Phone     string
	Specialty string
}

// RecordID implements registry.Record.
func (s Salesperson) RecordID() int64 { return s.ID }

// WithRecordID implements registry.Record.
func (s Salesperson) WithRecordID(id int64) Salesperson {
	s.ID = id
	return s
}

// Validate implements registry.Record.
func (s Salesperson) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &registry.ValidationError{Kind: KindSalesperson, Field: "name", Reason: "is required"}
	}
	return nil
}
