package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"skyline/internal/sim"
	"skyline/pkg/logger"
	"skyline/pkg/store"
)

// Service is the persistence shell around the simulation engine. Every
// operation loads the player's snapshot from the store, runs exactly one
// engine call, and writes the snapshot back. A missing snapshot means a
// fresh game.
type Service struct {
	world  *sim.World
	store  store.Store
	ttl    time.Duration
	logger logger.Client
	tracer trace.Tracer
}

func NewService(world *sim.World, store store.Store, ttlMinutes int, logger logger.Client) *Service {
	return &Service{
		world:  world,
		store:  store,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
		logger: logger,
		tracer: otel.Tracer("skyline/game"),
	}
}

func (s *Service) startSpan(ctx context.Context, op, player string) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, op,
		trace.WithAttributes(attribute.String("game.player", player)))
}

func snapshotKey(player string) string {
	return "game:" + player
}

func (s *Service) load(ctx context.Context, player string) (*sim.Manager, error) {
	raw, err := s.store.Get(ctx, snapshotKey(player))
	if errors.Is(err, store.ErrNotFound) {
		s.logger.Info("starting fresh game", logger.Field{Key: "player", Value: player})
		return sim.NewManager(s.world, s.logger), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot for %q: %w", player, err)
	}

	var snap sim.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot for %q: %w", player, err)
	}
	m, err := sim.Restore(s.world, snap, s.logger)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot for %q: %w", player, err)
	}
	return m, nil
}

func (s *Service) save(ctx context.Context, player string, m *sim.Manager) error {
	raw, err := json.Marshal(m.Snapshot())
	if err != nil {
		return fmt.Errorf("encode snapshot for %q: %w", player, err)
	}
	if err := s.store.Set(ctx, snapshotKey(player), string(raw), s.ttl); err != nil {
		return fmt.Errorf("save snapshot for %q: %w", player, err)
	}
	return nil
}

// State returns the full game view. It also persists, so the first request
// of a fresh game pins its snapshot (and every read refreshes the TTL).
func (s *Service) State(ctx context.Context, player string) (*StateView, error) {
	ctx, span := s.startSpan(ctx, "game.state", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, player, m); err != nil {
		return nil, err
	}
	return s.stateView(player, m), nil
}

func (s *Service) CreateFlight(ctx context.Context, player string, req CreateFlightRequest) (*FlightView, error) {
	start, err := sim.NewInstant(req.Day, req.Hour, req.Minute)
	if err != nil {
		return nil, &sim.Error{Code: sim.CodePlanInvalid, Message: err.Error()}
	}

	ctx, span := s.startSpan(ctx, "game.create_flight", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}
	flight, err := m.CreateFlight(req.Origin, req.Destination, req.Registration, start, req.Passengers)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, player, m); err != nil {
		return nil, err
	}
	view := s.flightView(m, flight)
	return &view, nil
}

func (s *Service) DeleteFlight(ctx context.Context, player string, req DeleteFlightRequest) error {
	ctx, span := s.startSpan(ctx, "game.delete_flight", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return err
	}
	if err := m.DeleteFlight(req.Registration, req.Start); err != nil {
		return err
	}
	return s.save(ctx, player, m)
}

func (s *Service) CheckPlan(ctx context.Context, player string) (*PlanCheckView, error) {
	ctx, span := s.startSpan(ctx, "game.check_plan", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}
	issues := m.CheckFlightPlan()
	if issues == nil {
		issues = []string{}
	}
	return &PlanCheckView{Issues: issues, Valid: len(issues) == 0}, nil
}

func (s *Service) Advance(ctx context.Context, player string) (*sim.Settlement, error) {
	ctx, span := s.startSpan(ctx, "game.advance", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}
	settled, err := m.AdvanceWeek()
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, player, m); err != nil {
		return nil, err
	}
	return &settled, nil
}

func (s *Service) BuyPlane(ctx context.Context, player string, req BuyPlaneRequest) (*PlaneView, error) {
	ctx, span := s.startSpan(ctx, "game.buy_plane", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}
	plane, err := m.BuyPlane(req.Model, req.Registration, req.City)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, player, m); err != nil {
		return nil, err
	}
	view := planeView(plane)
	return &view, nil
}

func (s *Service) SellPlane(ctx context.Context, player, registration string) (*SellReceipt, error) {
	ctx, span := s.startSpan(ctx, "game.sell_plane", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}
	price, err := m.SellPlane(registration)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, player, m); err != nil {
		return nil, err
	}
	return &SellReceipt{Registration: registration, Price: price, Balance: m.Cash()}, nil
}

// UpsertHub invests in a new hub, or upgrades the existing one when the
// city already has a hub.
func (s *Service) UpsertHub(ctx context.Context, player, city string) (*HubView, error) {
	ctx, span := s.startSpan(ctx, "game.upsert_hub", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}

	resolved, ok := m.World().CityByName(city)
	if !ok {
		return nil, &sim.Error{Code: sim.CodeReferenceNotFound, Message: fmt.Sprintf("city %q not found", city)}
	}

	var hub *sim.Hub
	if _, exists := m.HubAt(resolved.Short); exists {
		hub, err = m.UpgradeHub(city)
	} else {
		hub, err = m.InvestHub(city)
	}
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, player, m); err != nil {
		return nil, err
	}
	view := hubView(hub)
	return &view, nil
}

// RouteInfo is the demand picture for one route: weekly total, distance and
// the per-hour availability at the top of each local hour.
func (s *Service) RouteInfo(ctx context.Context, player, origin, destination string) (*RouteView, error) {
	ctx, span := s.startSpan(ctx, "game.route_info", player)
	defer span.End()

	m, err := s.load(ctx, player)
	if err != nil {
		return nil, err
	}
	o, ok := m.World().CityByName(origin)
	if !ok {
		return nil, &sim.Error{Code: sim.CodeReferenceNotFound, Message: fmt.Sprintf("city %q not found", origin)}
	}
	d, ok := m.World().CityByName(destination)
	if !ok {
		return nil, &sim.Error{Code: sim.CodeReferenceNotFound, Message: fmt.Sprintf("city %q not found", destination)}
	}

	weekly := m.RouteDemand(o, d)
	view := &RouteView{
		Origin:       o.Short,
		Destination:  d.Short,
		DistanceKM:   o.Distance(d),
		WeeklyDemand: weekly,
	}
	for hour := 0; hour < 24; hour++ {
		view.Hourly = append(view.Hourly, HourlyDemand{
			Hour:   hour,
			Demand: sim.IntradayDemand(weekly, hour, 0, o.Timezone),
		})
	}
	return view, nil
}

// Reset deletes the player's snapshot; the next request starts fresh.
func (s *Service) Reset(ctx context.Context, player string) error {
	ctx, span := s.startSpan(ctx, "game.reset", player)
	defer span.End()

	s.logger.Info("resetting game", logger.Field{Key: "player", Value: player})
	return s.store.Del(ctx, snapshotKey(player))
}

func (s *Service) stateView(player string, m *sim.Manager) *StateView {
	view := &StateView{
		Player:         player,
		Week:           m.Week(),
		Cash:           m.Cash(),
		Planes:         []PlaneView{},
		Flights:        []FlightView{},
		Hubs:           []HubView{},
		PlanIssues:     []string{},
		ExpectedProfit: m.ExpectedProfit(),
	}
	for _, p := range m.Planes() {
		view.Planes = append(view.Planes, planeView(p))
	}
	for _, f := range m.Flights() {
		view.Flights = append(view.Flights, s.flightView(m, f))
	}
	for _, h := range m.Hubs() {
		view.Hubs = append(view.Hubs, hubView(h))
	}
	view.PlanIssues = append(view.PlanIssues, m.CheckFlightPlan()...)
	return view
}

func (s *Service) flightView(m *sim.Manager, f *sim.Flight) FlightView {
	view := FlightView{
		Origin:       f.Origin,
		Destination:  f.Destination,
		Registration: f.Registration,
		Passengers:   f.Passengers,
		Start:        f.Start.String(),
		End:          f.End.String(),
		DistanceKM:   f.Distance,
		DurationMin:  f.Duration,
		Revenue:      f.Revenue(),
	}
	if plane, ok := m.FindPlane(f.Registration); ok {
		view.Profit = f.Profit(plane.Model)
	}
	return view
}

func planeView(p *sim.Plane) PlaneView {
	return PlaneView{
		Model:        p.Model.Name,
		Registration: p.Registration,
		Location:     p.Location,
		Capacity:     p.Model.Capacity,
		RangeKM:      p.Model.Range,
		SellPrice:    p.SellPrice(),
	}
}

func hubView(h *sim.Hub) HubView {
	return HubView{
		City:       h.City,
		Level:      h.Level,
		Tier:       h.TierName(),
		Bonus:      h.Bonus,
		WeeklyCost: h.WeeklyCost(),
	}
}
