package world

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCities(t *testing.T) {
	cities, err := LoadCities(filepath.Join("testdata", "cities.csv"))
	require.NoError(t, err)
	require.Len(t, cities, 3)

	assert.Equal(t, "Berlin", cities[0].Name)
	assert.Equal(t, "BER", cities[0].Short)
	assert.Equal(t, 3645000, cities[0].Population)
	assert.InDelta(t, 52.52, cities[0].Lat, 1e-9)
	assert.InDelta(t, 1.0, cities[0].Timezone, 1e-9)

	// fractional offsets survive the parse
	assert.InDelta(t, 5.5, cities[2].Timezone, 1e-9)
}

func TestLoadCitiesBadPopulation(t *testing.T) {
	_, err := LoadCities(filepath.Join("testdata", "cities_bad.csv"))
	assert.ErrorContains(t, err, "bad population")
}

func TestLoadCitiesMissingFile(t *testing.T) {
	_, err := LoadCities(filepath.Join("testdata", "nope.csv"))
	assert.Error(t, err)
}

func TestLoadModels(t *testing.T) {
	models, err := LoadModels(filepath.Join("testdata", "planes"))
	require.NoError(t, err)
	require.Len(t, models, 2)

	byName := map[string]bool{}
	for _, m := range models {
		byName[m.Name] = true
	}
	assert.True(t, byName["Regional Prop"])
	assert.True(t, byName["Wide Twin"])
}

func TestLoadModelsRejectsIncompleteRecord(t *testing.T) {
	_, err := LoadModels(filepath.Join("testdata", "planes_bad"))
	assert.ErrorContains(t, err, "incomplete record")
}

func TestLoadPrependsStarterModel(t *testing.T) {
	world, err := Load(
		filepath.Join("testdata", "cities.csv"),
		filepath.Join("testdata", "planes"),
	)
	require.NoError(t, err)

	require.Len(t, world.Models, 3)
	assert.Equal(t, StarterModel, world.Models[0])

	starter, ok := world.ModelByName("Dash 8 Q200")
	require.True(t, ok)
	assert.Equal(t, 39, starter.Capacity)

	city, ok := world.CityByName("ber")
	require.True(t, ok)
	assert.Equal(t, "Berlin", city.Name)
}
