package sim

import "strings"

// PlaneModel is a purchasable catalog entry. Velocity is in km per minute;
// Maintenance is the weekly upkeep per owned airframe.
type PlaneModel struct {
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	Range       float64 `json:"range"`
	Velocity    float64 `json:"velocity"`
	Price       float64 `json:"price"`
	Maintenance float64 `json:"maintenance"`
	Pilots      int     `json:"pilots"`
}

// World is the immutable reference-data bundle: every city and plane model
// known to the game. It is built once at process start and shared by all
// simulations; nothing in it is ever mutated.
type World struct {
	Cities []City
	Models []PlaneModel

	cityIdx  map[string]int
	modelIdx map[string]int
}

// NewWorld indexes the reference data by lower-cased city name, city short
// code and model name so per-request lookups stay constant time.
func NewWorld(cities []City, models []PlaneModel) *World {
	w := &World{
		Cities:   cities,
		Models:   models,
		cityIdx:  make(map[string]int, len(cities)*2),
		modelIdx: make(map[string]int, len(models)),
	}
	for i, c := range cities {
		w.cityIdx[strings.ToLower(c.Name)] = i
		w.cityIdx[strings.ToLower(c.Short)] = i
	}
	for i, m := range models {
		w.modelIdx[strings.ToLower(m.Name)] = i
	}
	return w
}

// CityByName looks a city up by full name or short code, case-insensitive.
func (w *World) CityByName(name string) (City, bool) {
	i, ok := w.cityIdx[strings.ToLower(name)]
	if !ok {
		return City{}, false
	}
	return w.Cities[i], true
}

// ModelByName looks a plane model up by name, case-insensitive.
func (w *World) ModelByName(name string) (PlaneModel, bool) {
	i, ok := w.modelIdx[strings.ToLower(name)]
	if !ok {
		return PlaneModel{}, false
	}
	return w.Models[i], true
}
