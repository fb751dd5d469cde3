package sim

import (
	"fmt"

	"skyline/pkg/logger"
)

// Snapshot is the complete serialized state of one simulation, sufficient
// for exact reconstruction against the same reference-data bundle. The
// demand cache is intentionally absent: it is a pure function of (route,
// week) and gets recomputed on restore.
type Snapshot struct {
	Planes   []PlaneState  `json:"planes"`
	Flights  []FlightState `json:"flights"`
	Hubs     []HubState    `json:"hubs"`
	Cash     float64       `json:"cash"`
	Week     int           `json:"week"`
	PlaneSeq int           `json:"plane_seq"`
}

type PlaneState struct {
	Model        string `json:"model"`
	Registration string `json:"registration"`
	Location     string `json:"location"`
}

type FlightState struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Registration string  `json:"registration"`
	Passengers   int     `json:"passengers"`
	Start        Instant `json:"start"`
}

type HubState struct {
	City  string `json:"city"`
	Level int    `json:"level"`
}

// Snapshot captures the full mutable state.
func (m *Manager) Snapshot() Snapshot {
	snap := Snapshot{
		Cash:     m.cash,
		Week:     m.week,
		PlaneSeq: m.planeSeq,
	}
	for _, p := range m.planes {
		snap.Planes = append(snap.Planes, PlaneState{
			Model:        p.Model.Name,
			Registration: p.Registration,
			Location:     p.Location,
		})
	}
	for _, f := range m.flights {
		snap.Flights = append(snap.Flights, FlightState{
			Origin:       f.Origin,
			Destination:  f.Destination,
			Registration: f.Registration,
			Passengers:   f.Passengers,
			Start:        f.Start,
		})
	}
	for _, h := range m.hubs {
		snap.Hubs = append(snap.Hubs, HubState{City: h.City, Level: h.Level})
	}
	return snap
}

// Restore rebuilds a Manager from a snapshot against the injected reference
// bundle. Flights are re-derived (distance, duration, end) from current
// reference data. Hub bonuses are re-derived from the stored level via the
// creation formula, which forgets any upgrade drift — longstanding behavior
// the save format depends on.
func Restore(world *World, snap Snapshot, log logger.Client) (*Manager, error) {
	if log == nil {
		log = logger.Nop()
	}
	m := &Manager{
		world:    world,
		cash:     snap.Cash,
		week:     snap.Week,
		planeSeq: snap.PlaneSeq,
		log:      log,
	}

	for _, ps := range snap.Planes {
		model, ok := world.ModelByName(ps.Model)
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown plane model %q", ps.Model)
		}
		if ps.Location != "" {
			if _, ok := world.CityByName(ps.Location); !ok {
				return nil, fmt.Errorf("snapshot references unknown city %q", ps.Location)
			}
		}
		m.planes = append(m.planes, &Plane{
			Model:        model,
			Registration: ps.Registration,
			Location:     ps.Location,
		})
	}

	for _, fs := range snap.Flights {
		origin, ok := world.CityByName(fs.Origin)
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown city %q", fs.Origin)
		}
		destination, ok := world.CityByName(fs.Destination)
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown city %q", fs.Destination)
		}
		plane, ok := m.FindPlane(fs.Registration)
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown plane %q", fs.Registration)
		}
		m.flights = append(m.flights, newFlight(origin, destination, plane, fs.Start, fs.Passengers))
	}

	for _, hs := range snap.Hubs {
		if _, ok := world.CityByName(hs.City); !ok {
			return nil, fmt.Errorf("snapshot references unknown city %q", hs.City)
		}
		if hs.Level < 1 || hs.Level > MaxHubLevel {
			return nil, fmt.Errorf("snapshot hub in %q has invalid level %d", hs.City, hs.Level)
		}
		m.hubs = append(m.hubs, NewHub(hs.City, hs.Level))
	}

	m.refreshDemand()
	return m, nil
}
