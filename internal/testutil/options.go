package testutil

import "showroom/internal/dealership"

// defaultCar returns a valid used car so tests only spell out what they
// care about.
func defaultCar() dealership.Car {
	return dealership.Car{
		Make:      "Toyota",
		Model:     "Corolla",
		Year:      2020,
		Price:     20000,
		Color:     "white",
		BodyType:  "Sedan",
		Condition: dealership.ConditionUsed,
	}
}

// CarOption configures a car during builder setup.
type CarOption func(*dealership.Car)

// Make sets the car make.
func Make(make string) CarOption {
	return func(c *dealership.Car) { c.Make = make }
}

// Model sets the car model.
func Model(model string) CarOption {
	return func(c *dealership.Car) { c.Model = model }
}

// Year sets the model year.
func Year(year int) CarOption {
	return func(c *dealership.Car) { c.Year = year }
}

// Price sets the asking price.
func Price(price float64) CarOption {
	return func(c *dealership.Car) { c.Price = price }
}

// Color sets the car color.
func Color(color string) CarOption {
	return func(c *dealership.Car) { c.Color = color }
}

// Cond sets the car condition (new or used).
func Cond(cond dealership.Condition) CarOption {
	return func(c *dealership.Car) { c.Condition = cond }
}

// BodyType sets the body type.
func BodyType(body string) CarOption {
	return func(c *dealership.Car) { c.BodyType = body }
}

// DriveTrain sets the drive train.
func DriveTrain(dt string) CarOption {
	return func(c *dealership.Car) { c.DriveTrain = dt }
}

// Engine sets the engine displacement in cc.
func Engine(cc int) CarOption {
	return func(c *dealership.Car) { c.EnginePowerCC = cc }
}

// Fuel sets the fuel tank capacity in liters.
func Fuel(liters int) CarOption {
	return func(c *dealership.Car) { c.FuelCapacityL = liters }
}

// SalespersonOption configures a salesperson during builder setup.
type SalespersonOption func(*dealership.Salesperson)

// Phone sets the salesperson phone number.
func Phone(phone string) SalespersonOption {
	return func(sp *dealership.Salesperson) { sp.Phone = phone }
}

// Specialty sets what the salesperson sells best.
func Specialty(s string) SalespersonOption {
	return func(sp *dealership.Salesperson) { sp.Specialty = s }
}
