// Package world loads the process-wide reference data: the city registry
// from a flat CSV and the purchasable plane catalog from a directory of
// JSON records. Both are read once at startup and handed to the simulation
// as an immutable bundle.
package world

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"skyline/internal/sim"
)

// StarterModel heads every catalog; new games receive one of these for free.
var StarterModel = sim.PlaneModel{
	Name:        "Dash 8 Q200",
	Capacity:    39,
	Range:       2000,
	Velocity:    3,
	Price:       50000,
	Maintenance: 200,
	Pilots:      2,
}

// Load builds the reference bundle from the two external sources. The
// starter model is prepended so it is always Models[0].
func Load(citiesPath, modelsDir string) (*sim.World, error) {
	cities, err := LoadCities(citiesPath)
	if err != nil {
		return nil, err
	}
	models, err := LoadModels(modelsDir)
	if err != nil {
		return nil, err
	}
	return sim.NewWorld(cities, append([]sim.PlaneModel{StarterModel}, models...)), nil
}

// LoadCities reads the city CSV. Row schema:
// name,population,latitude,longitude,short,timezone. No header row.
func LoadCities(path string) ([]sim.City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cities file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 6
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse cities file: %w", err)
	}

	cities := make([]sim.City, 0, len(rows))
	for i, row := range rows {
		population, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("cities row %d: bad population %q", i+1, row[1])
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("cities row %d: bad latitude %q", i+1, row[2])
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("cities row %d: bad longitude %q", i+1, row[3])
		}
		tz, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		if err != nil {
			return nil, fmt.Errorf("cities row %d: bad timezone %q", i+1, row[5])
		}
		cities = append(cities, sim.City{
			Name:       strings.TrimSpace(row[0]),
			Population: population,
			Lat:        lat,
			Lon:        lon,
			Short:      strings.TrimSpace(row[4]),
			Timezone:   tz,
		})
	}
	if len(cities) == 0 {
		return nil, fmt.Errorf("cities file %s is empty", path)
	}
	return cities, nil
}

// LoadModels reads every *.json under dir (recursively) as one PlaneModel.
func LoadModels(dir string) ([]sim.PlaneModel, error) {
	var models []sim.PlaneModel
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read model file %s: %w", path, err)
		}
		var model sim.PlaneModel
		if err := json.Unmarshal(data, &model); err != nil {
			return fmt.Errorf("parse model file %s: %w", path, err)
		}
		if model.Name == "" || model.Capacity <= 0 || model.Velocity <= 0 {
			return fmt.Errorf("model file %s: incomplete record", path)
		}
		models = append(models, model)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return models, nil
}
