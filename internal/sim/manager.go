package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"skyline/pkg/logger"
)

const (
	startingCash = 50_000_000.0
	seededHubs   = 11 // starter hubs cover the first cities of the registry

	// organicDemandFactor models the share of slot demand a new flight can
	// actually capture; the rest flies with competitors or other timeslots.
	organicDemandFactor = 0.8
)

// Manager is the aggregate root of one player's simulation: fleet, flight
// plan, hubs, cash and the week counter. Reference data is injected and
// shared; everything else is owned. A Manager is not safe for concurrent
// use — the shell serializes requests per player at the storage boundary.
type Manager struct {
	world    *World
	planes   []*Plane
	flights  []*Flight
	hubs     []*Hub
	demand   map[string]map[string]int
	cash     float64
	week     int
	planeSeq int
	log      logger.Client
}

// Settlement summarizes one week advance.
type Settlement struct {
	Week        int     `json:"week"`
	Flights     int     `json:"flights"`
	Revenue     float64 `json:"revenue"`
	FlightCost  float64 `json:"flight_cost"`
	Maintenance float64 `json:"maintenance"`
	HubUpkeep   float64 `json:"hub_upkeep"`
	Profit      float64 `json:"profit"`
	Balance     float64 `json:"balance"`
}

// NewManager creates a fresh game: starting cash, week 1, one starter plane
// (the first catalog model) parked in the first city, and level-1 hubs
// seeded across the first cities of the registry.
func NewManager(world *World, log logger.Client) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	m := &Manager{
		world:    world,
		cash:     startingCash,
		week:     1,
		planeSeq: 1,
		log:      log,
	}

	starter := &Plane{
		Model:        world.Models[0],
		Registration: "Starter",
		Location:     world.Cities[0].Short,
	}
	m.planes = append(m.planes, starter)
	m.planeSeq++

	n := seededHubs
	if n > len(world.Cities) {
		n = len(world.Cities)
	}
	for _, c := range world.Cities[:n] {
		m.hubs = append(m.hubs, NewHub(c.Short, 1))
	}

	m.refreshDemand()
	return m
}

// Accessors. Slices are returned as-is; callers must not mutate them.

func (m *Manager) Cash() float64      { return m.cash }
func (m *Manager) Week() int          { return m.week }
func (m *Manager) World() *World      { return m.world }
func (m *Manager) Planes() []*Plane   { return m.planes }
func (m *Manager) Flights() []*Flight { return m.flights }
func (m *Manager) Hubs() []*Hub       { return m.hubs }

// FindPlane resolves a registration, case-insensitive.
func (m *Manager) FindPlane(registration string) (*Plane, bool) {
	for _, p := range m.planes {
		if strings.EqualFold(p.Registration, registration) {
			return p, true
		}
	}
	return nil, false
}

// HubAt returns the hub in the given city, if any.
func (m *Manager) HubAt(cityShort string) (*Hub, bool) {
	for _, h := range m.hubs {
		if strings.EqualFold(h.City, cityShort) {
			return h, true
		}
	}
	return nil, false
}

// RouteDemand returns this week's cached demand between two cities.
func (m *Manager) RouteDemand(origin, destination City) int {
	return m.demand[origin.Short][destination.Short]
}

func (m *Manager) refreshDemand() {
	m.demand = make(map[string]map[string]int, len(m.world.Cities))
	for _, o := range m.world.Cities {
		row := make(map[string]int, len(m.world.Cities))
		for _, d := range m.world.Cities {
			row[d.Short] = RouteWeeklyDemand(o, d, m.week)
		}
		m.demand[o.Short] = row
	}
}

// flightsForPlane collects a plane's flights sorted by start time.
func (m *Manager) flightsForPlane(registration string) []*Flight {
	var out []*Flight
	for _, f := range m.flights {
		if strings.EqualFold(f.Registration, registration) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Minutes() < out[j].Start.Minutes()
	})
	return out
}

// BuyPlane purchases a model and parks the new plane in the given city. An
// empty registration gets the counter-based default. The registration
// counter advances on every purchase.
func (m *Manager) BuyPlane(modelName, registration, cityName string) (*Plane, error) {
	model, ok := m.world.ModelByName(modelName)
	if !ok {
		return nil, newError(CodeReferenceNotFound, "plane model %q not found", modelName)
	}
	city, ok := m.world.CityByName(cityName)
	if !ok {
		return nil, newError(CodeReferenceNotFound, "city %q not found", cityName)
	}
	if m.cash < model.Price {
		return nil, newError(CodeInsufficientFunds,
			"not enough cash: %s costs %.0f, balance is %.2f", model.Name, model.Price, m.cash)
	}
	if registration == "" {
		registration = fmt.Sprintf("SKY-%d", m.planeSeq)
	}
	if _, exists := m.FindPlane(registration); exists {
		return nil, newError(CodeAssetInUse, "registration %q already in use", registration)
	}

	m.cash -= model.Price
	m.planeSeq++

	plane := &Plane{Model: model, Registration: registration, Location: city.Short}
	m.planes = append(m.planes, plane)

	m.log.Info("plane purchased",
		logger.Field{Key: "registration", Value: plane.Registration},
		logger.Field{Key: "model", Value: model.Name},
		logger.Field{Key: "city", Value: city.Short},
	)
	return plane, nil
}

// SellPlane removes a plane from the fleet and credits 70% of the purchase
// price. A plane with scheduled flights cannot be sold.
func (m *Manager) SellPlane(registration string) (float64, error) {
	plane, ok := m.FindPlane(registration)
	if !ok {
		return 0, newError(CodeReferenceNotFound, "plane %q not found", registration)
	}
	if len(m.flightsForPlane(plane.Registration)) > 0 {
		return 0, newError(CodeAssetInUse,
			"plane %q still has scheduled flights and cannot be sold", plane.Registration)
	}

	price := plane.SellPrice()
	m.cash += price
	for i, p := range m.planes {
		if p == plane {
			m.planes = append(m.planes[:i], m.planes[i+1:]...)
			break
		}
	}

	m.log.Info("plane sold",
		logger.Field{Key: "registration", Value: plane.Registration},
		logger.Field{Key: "price", Value: price},
	)
	return price, nil
}

// InvestHub opens a level-1 hub in a city that has none.
func (m *Manager) InvestHub(cityName string) (*Hub, error) {
	city, ok := m.world.CityByName(cityName)
	if !ok {
		return nil, newError(CodeReferenceNotFound, "city %q not found", cityName)
	}
	if _, exists := m.HubAt(city.Short); exists {
		return nil, newError(CodeAssetInUse, "hub already exists in %s", city.Name)
	}
	hub := NewHub(city.Short, 1)
	m.hubs = append(m.hubs, hub)
	return hub, nil
}

// UpgradeHub raises an existing hub one level.
func (m *Manager) UpgradeHub(cityName string) (*Hub, error) {
	city, ok := m.world.CityByName(cityName)
	if !ok {
		return nil, newError(CodeReferenceNotFound, "city %q not found", cityName)
	}
	hub, exists := m.HubAt(city.Short)
	if !exists {
		return nil, newError(CodeInfrastructureMissing, "no hub in %s", city.Name)
	}
	if hub.Level >= MaxHubLevel {
		return nil, newError(CodeCapacityExceeded, "hub in %s is already at maximum level", city.Name)
	}
	hub.Upgrade()
	return hub, nil
}

// routeUsage sums passengers already booked from origin to destination. With
// a non-nil at, only flights departing exactly at that instant count. Always
// a full scan of the flight list; no per-route state is kept.
func (m *Manager) routeUsage(origin, destination string, at *Instant) int {
	total := 0
	for _, f := range m.flights {
		if f.Origin != origin || f.Destination != destination {
			continue
		}
		if at != nil && f.Start.Minutes() != at.Minutes() {
			continue
		}
		total += f.Passengers
	}
	return total
}

// CreateFlight schedules a service. Validations run in a fixed order, each
// with its own error. The passenger count actually assigned is clamped by
// the slot's remaining demand and the route's remaining weekly demand and
// may be lower than requested — callers must read it off the returned
// flight. A plane cannot have two flights starting at the same instant;
// (registration, start) is the flight's identity.
func (m *Manager) CreateFlight(originName, destName, registration string, start Instant, passengers int) (*Flight, error) {
	origin, ok := m.world.CityByName(originName)
	if !ok {
		return nil, newError(CodeReferenceNotFound, "city %q not found", originName)
	}
	destination, ok := m.world.CityByName(destName)
	if !ok {
		return nil, newError(CodeReferenceNotFound, "city %q not found", destName)
	}
	plane, ok := m.FindPlane(registration)
	if !ok {
		return nil, newError(CodeReferenceNotFound, "plane %q not found", registration)
	}
	if passengers > plane.Model.Capacity {
		return nil, newError(CodeCapacityExceeded,
			"too many passengers: %d exceeds capacity %d", passengers, plane.Model.Capacity)
	}
	distance := origin.Distance(destination)
	if !plane.CanFly(distance) {
		return nil, newError(CodeCapacityExceeded,
			"distance %.0f km exceeds %s range of %.0f km", distance, plane.Model.Name, plane.Model.Range)
	}
	originHub, ok := m.HubAt(origin.Short)
	if !ok {
		return nil, newError(CodeInfrastructureMissing, "no hub in departure city %s", origin.Name)
	}
	if _, ok := m.HubAt(destination.Short); !ok {
		return nil, newError(CodeInfrastructureMissing, "no hub in arrival city %s", destination.Name)
	}
	for _, f := range m.flightsForPlane(plane.Registration) {
		if f.Start.Minutes() == start.Minutes() {
			return nil, newError(CodeDuplicateFlight,
				"plane %q already has a flight starting at %s", plane.Registration, start)
		}
	}

	weekly := m.RouteDemand(origin, destination)
	potential := float64(IntradayDemand(weekly, start.Hour, start.Minute, origin.Timezone)) * originHub.Bonus
	bookedAtSlot := m.routeUsage(origin.Short, destination.Short, &start)
	bookedTotal := m.routeUsage(origin.Short, destination.Short, nil)

	available := int(math.Round((potential - float64(bookedAtSlot)) * organicDemandFactor))
	weeklyLeft := weekly - bookedTotal

	granted := passengers
	if available < granted {
		granted = available
	}
	if weeklyLeft < granted {
		granted = weeklyLeft
	}
	if granted < 0 {
		granted = 0
	}

	flight := newFlight(origin, destination, plane, start, granted)
	m.flights = append(m.flights, flight)

	m.log.Debug("flight scheduled",
		logger.Field{Key: "route", Value: flight.Origin + "-" + flight.Destination},
		logger.Field{Key: "registration", Value: flight.Registration},
		logger.Field{Key: "start", Value: flight.Start.String()},
		logger.Field{Key: "requested", Value: passengers},
		logger.Field{Key: "granted", Value: granted},
	)
	return flight, nil
}

// DeleteFlight removes the flight identified by (registration, start wire
// string, e.g. "M-10-30").
func (m *Manager) DeleteFlight(registration, startStr string) error {
	for i, f := range m.flights {
		if strings.EqualFold(f.Registration, registration) && f.Start.String() == startStr {
			m.flights = append(m.flights[:i], m.flights[i+1:]...)
			return nil
		}
	}
	return newError(CodeReferenceNotFound,
		"no flight for plane %q starting at %s", registration, startStr)
}

// AdvanceWeek settles the current week: validates the plan, realizes every
// flight's economics, bills maintenance and hub upkeep, relocates planes to
// their final destinations, bumps the week, clears the schedule and reseeds
// the demand cache. All-or-nothing: an invalid plan leaves state untouched.
func (m *Manager) AdvanceWeek() (Settlement, error) {
	if issues := m.CheckFlightPlan(); len(issues) > 0 {
		return Settlement{}, newError(CodePlanInvalid,
			"flight plan has %d issue(s); fix them before advancing", len(issues))
	}

	var revenue, flightCost float64
	for _, f := range m.flights {
		plane, _ := m.FindPlane(f.Registration)
		revenue += f.Revenue()
		flightCost += f.VariableCost() + f.FixedCost(plane.Model)
	}

	var maintenance float64
	for _, p := range m.planes {
		maintenance += p.Model.Maintenance
	}
	var hubUpkeep float64
	for _, h := range m.hubs {
		hubUpkeep += h.WeeklyCost()
	}

	for _, p := range m.planes {
		if flights := m.flightsForPlane(p.Registration); len(flights) > 0 {
			p.Location = flights[len(flights)-1].Destination
		}
	}

	settled := Settlement{
		Week:        m.week,
		Flights:     len(m.flights),
		Revenue:     revenue,
		FlightCost:  flightCost,
		Maintenance: maintenance,
		HubUpkeep:   hubUpkeep,
	}
	settled.Profit = revenue - flightCost - maintenance - hubUpkeep

	m.cash += settled.Profit
	m.week++
	m.flights = nil
	m.refreshDemand()

	settled.Balance = m.cash

	m.log.Info("week settled",
		logger.Field{Key: "week", Value: settled.Week},
		logger.Field{Key: "flights", Value: settled.Flights},
		logger.Field{Key: "revenue", Value: settled.Revenue},
		logger.Field{Key: "profit", Value: settled.Profit},
		logger.Field{Key: "balance", Value: settled.Balance},
	)
	return settled, nil
}

// ExpectedProfit is the profit the current schedule would realize if the
// week advanced now. Display-only; it never mutates state.
func (m *Manager) ExpectedProfit() float64 {
	var total float64
	for _, f := range m.flights {
		plane, ok := m.FindPlane(f.Registration)
		if !ok {
			continue
		}
		total += f.Profit(plane.Model)
	}
	for _, p := range m.planes {
		total -= p.Model.Maintenance
	}
	for _, h := range m.hubs {
		total -= h.WeeklyCost()
	}
	return total
}
