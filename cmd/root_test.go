package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"showroom/internal/dealership"
)

func TestSeedDemoData(t *testing.T) {
	d := dealership.New()
	require.NoError(t, seedDemoData(d))

	cars := d.Cars()
	staff := d.Salespeople()
	require.NotEmpty(t, cars)
	require.NotEmpty(t, staff)

	// Every seeded car got a stock number.
	for _, car := range cars {
		require.NotEmpty(t, car.StockNumber, "car %d missing stock number", car.ID)
	}

	// At least one assignment so the staff table shows counts.
	assigned := 0
	for _, car := range cars {
		if car.SalespersonID != 0 {
			_, err := d.SalespersonByID(car.SalespersonID)
			require.NoError(t, err)
			assigned++
		}
	}
	require.NotZero(t, assigned)
}

func TestConfigInit_WritesDefaultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	prev := cfgFile
	cfgFile = path
	t.Cleanup(func() { cfgFile = prev })

	var out bytes.Buffer
	configInitCmd.SetOut(&out)

	require.NoError(t, runConfigInit(configInitCmd, nil))
	require.Contains(t, out.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "currency_code")

	// Refuses to clobber an existing file.
	err = runConfigInit(configInitCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
