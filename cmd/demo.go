package cmd

import (
	"showroom/internal/dealership"
)

// seedDemoData loads a small believable lot so the UI has something to
// show. Records are in-memory only, so reseeding every run is cheap.
func seedDemoData(d *dealership.Dealership) error {
	staff := []dealership.Salesperson{
		{Name: "Maya Torres", Phone: "555-0134", Specialty: "SUVs"},
		{Name: "Dev Patel", Phone: "555-0197", Specialty: "sports cars"},
		{Name: "Iris Wong", Phone: "555-0172", Specialty: "family sedans"},
	}
	spIDs := make([]int64, 0, len(staff))
	for _, sp := range staff {
		id, err := d.AddSalesperson(sp)
		if err != nil {
			return err
		}
		spIDs = append(spIDs, id)
	}

	cars := []dealership.Car{
		{Make: "Toyota", Model: "Corolla", Year: 2021, Price: 21500, Color: "white", BodyType: "Sedan", Condition: dealership.ConditionUsed, DriveTrain: "FWD", EnginePowerCC: 1798, FuelCapacityL: 50},
		{Make: "Honda", Model: "CR-V", Year: 2024, Price: 33200, Color: "blue", BodyType: "SUV", Condition: dealership.ConditionNew, DriveTrain: "AWD", EnginePowerCC: 1993, FuelCapacityL: 53},
		{Make: "Mazda", Model: "MX-5", Year: 2023, Price: 29800, Color: "red", BodyType: "Roadster", Condition: dealership.ConditionUsed, DriveTrain: "RWD", EnginePowerCC: 1998, FuelCapacityL: 45},
		{Make: "Ford", Model: "F-150", Year: 2022, Price: 41900, Color: "black", BodyType: "Pickup", Condition: dealership.ConditionUsed, DriveTrain: "4WD", EnginePowerCC: 3496, FuelCapacityL: 98},
		{Make: "Hyundai", Model: "Ioniq 5", Year: 2025, Price: 44700, Color: "silver", BodyType: "Crossover", Condition: dealership.ConditionNew, DriveTrain: "AWD"},
	}
	carIDs := make([]int64, 0, len(cars))
	for _, car := range cars {
		id, err := d.AddCar(car)
		if err != nil {
			return err
		}
		carIDs = append(carIDs, id)
	}

	// A couple of assignments so the staff table shows counts.
	if err := d.AssignSalesperson(carIDs[1], spIDs[0]); err != nil {
		return err
	}
	if err := d.AssignSalesperson(carIDs[2], spIDs[1]); err != nil {
		return err
	}
	return nil
}
