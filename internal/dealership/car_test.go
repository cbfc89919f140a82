package dealership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"showroom/internal/registry"
)

func TestCar_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Car)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Car) {}},
		{name: "valid without condition", mutate: func(c *Car) { c.Condition = "" }},
		{
			name:    "missing make",
			mutate:  func(c *Car) { c.Make = "" },
			wantErr: "invalid car: make is required",
		},
		{
			name:    "blank model",
			mutate:  func(c *Car) { c.Model = "   " },
			wantErr: "invalid car: model is required",
		},
		{
			name:    "year before the first motorwagen",
			mutate:  func(c *Car) { c.Year = 1885 },
			wantErr: "invalid car: year must be between",
		},
		{
			name:    "year too far out",
			mutate:  func(c *Car) { c.Year = time.Now().Year() + 2 },
			wantErr: "invalid car: year must be between",
		},
		{
			name:    "zero price",
			mutate:  func(c *Car) { c.Price = 0 },
			wantErr: "invalid car: price must be positive",
		},
		{
			name:    "made-up condition",
			mutate:  func(c *Car) { c.Condition = "mint" },
			wantErr: "invalid car: condition must be new or used",
		},
		{
			name:    "negative engine power",
			mutate:  func(c *Car) { c.EnginePowerCC = -1 },
			wantErr: "invalid car: engine power must not be negative",
		},
		{
			name:    "negative fuel capacity",
			mutate:  func(c *Car) { c.FuelCapacityL = -1 },
			wantErr: "invalid car: fuel capacity must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := validCar()
			tt.mutate(&car)

			err := car.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, registry.IsValidation(err))
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCar_Title(t *testing.T) {
	car := validCar()
	require.Equal(t, "2020 Toyota Corolla", car.Title())
}

func TestSalesperson_Validate(t *testing.T) {
	require.NoError(t, Salesperson{Name: "Dee"}.Validate())

	err := Salesperson{Phone: "555-0100"}.Validate()
	require.Error(t, err)
	require.True(t, registry.IsValidation(err))
	require.EqualError(t, err, "invalid salesperson: name is required")
}
