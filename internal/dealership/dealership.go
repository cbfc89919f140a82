package dealership

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"showroom/internal/cachemanager"
	"showroom/internal/log"
	"showroom/internal/registry"
)

// searchKey is the normalized make used as a search cache key.
type searchKey string

// Dealership owns the in-memory registries and the operations the
// presentation layer calls. It is constructed explicitly and passed by
// reference to its consumers; there is no shared module-level instance.
//
// All state is volatile: nothing survives process exit.
type Dealership struct {
	cars        *registry.Registry[Car]
	staff       *registry.Registry[Salesperson]
	searchCache cachemanager.CacheManager[searchKey, []Car]
}

// New creates an empty dealership.
func New() *Dealership {
	return &Dealership{
		cars:  registry.New[Car](KindCar),
		staff: registry.New[Salesperson](KindSalesperson),
		searchCache: cachemanager.NewInMemoryCacheManager[searchKey, []Car](
			"car-search", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
	}
}

// AddCar validates and stores a car, assigning its identifier and, when
// absent, a stock number. Returns the assigned identifier.
func (d *Dealership) AddCar(car Car) (int64, error) {
	if car.StockNumber == "" {
		car.StockNumber = uuid.New().String()
	}
	id, err := d.cars.Add(car)
	if err != nil {
		log.ErrorErr(log.CatDealer, "add car rejected", err)
		return 0, err
	}
	d.invalidateSearch()
	log.Info(log.CatDealer, "car added", "id", id, "make", car.Make, "model", car.Model)
	return id, nil
}

// CarByID returns the car with the given identifier.
func (d *Dealership) CarByID(id int64) (Car, error) {
	return d.cars.Get(id)
}

// Cars returns a snapshot of the inventory in insertion order.
func (d *Dealership) Cars() []Car {
	return d.cars.List()
}

// UpdateCar replaces the stored car wholesale. The identifier and stock
// number of the existing record are preserved; everything else comes from
// the replacement.
func (d *Dealership) UpdateCar(id int64, car Car) error {
	existing, err := d.cars.Get(id)
	if err != nil {
		return err
	}
	car.StockNumber = existing.StockNumber
	if err := d.cars.Update(id, car); err != nil {
		log.ErrorErr(log.CatDealer, "update car rejected", err, "id", id)
		return err
	}
	d.invalidateSearch()
	log.Info(log.CatDealer, "car updated", "id", id)
	return nil
}

// RemoveCar deletes a car from the inventory. Salespeople are not touched;
// nothing references cars by identifier except the UI selection.
func (d *Dealership) RemoveCar(id int64) error {
	if err := d.cars.Remove(id); err != nil {
		return err
	}
	d.invalidateSearch()
	log.Info(log.CatDealer, "car removed", "id", id)
	return nil
}

// SearchCarsByMake returns all cars of the given make, case-insensitively,
// in insertion order. Results are cached until the next inventory mutation.
func (d *Dealership) SearchCarsByMake(carMake string) []Car {
	ctx := context.Background()
	key := searchKey(strings.ToLower(strings.TrimSpace(carMake)))
	if key == "" {
		return d.Cars()
	}

	if cached, ok := d.searchCache.Get(ctx, key); ok {
		return cached
	}

	matches := make([]Car, 0)
	for _, car := range d.cars.List() {
		if strings.EqualFold(strings.TrimSpace(car.Make), string(key)) {
			matches = append(matches, car)
		}
	}
	d.searchCache.Set(ctx, key, matches, cachemanager.DefaultExpiration)
	log.Debug(log.CatDealer, "search by make", "make", key, "matches", len(matches))
	return matches
}

// AddSalesperson validates and stores a salesperson.
func (d *Dealership) AddSalesperson(sp Salesperson) (int64, error) {
	id, err := d.staff.Add(sp)
	if err != nil {
		log.ErrorErr(log.CatDealer, "add salesperson rejected", err)
		return 0, err
	}
	log.Info(log.CatDealer, "salesperson added", "id", id, "name", sp.Name)
	return id, nil
}

// SalespersonByID returns the salesperson with the given identifier.
func (d *Dealership) SalespersonByID(id int64) (Salesperson, error) {
	return d.staff.Get(id)
}

// Salespeople returns a snapshot of the staff in insertion order.
func (d *Dealership) Salespeople() []Salesperson {
	return d.staff.List()
}

// RemoveSalesperson deletes a staff record. Cars that reference the removed
// identifier keep the dangling reference; SalespersonName resolves it to
// nothing.
func (d *Dealership) RemoveSalesperson(id int64) error {
	if err := d.staff.Remove(id); err != nil {
		return err
	}
	log.Info(log.CatDealer, "salesperson removed", "id", id)
	return nil
}

// AssignSalesperson points a car at a salesperson via a full-replace update.
// An spID of 0 clears the assignment. Fails with a NotFoundError when either
// record is absent.
func (d *Dealership) AssignSalesperson(carID, spID int64) error {
	if spID != 0 {
		if _, err := d.staff.Get(spID); err != nil {
			return err
		}
	}
	car, err := d.cars.Get(carID)
	if err != nil {
		return err
	}
	car.SalespersonID = spID
	if err := d.cars.Update(carID, car); err != nil {
		return err
	}
	d.invalidateSearch()
	log.Info(log.CatDealer, "salesperson assigned", "car", carID, "salesperson", spID)
	return nil
}

// SalespersonName resolves a car's assignment for display. Returns the empty
// string for unassigned cars and for dangling references.
func (d *Dealership) SalespersonName(spID int64) string {
	if spID == 0 {
		return ""
	}
	sp, err := d.staff.Get(spID)
	if err != nil {
		return ""
	}
	return sp.Name
}

func (d *Dealership) invalidateSearch() {
	d.searchCache.Flush(context.Background())
}
