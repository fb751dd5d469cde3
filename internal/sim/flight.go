package sim

import "math"

// Flight economics tunables.
const (
	fuelCostPerKM        = 0.08
	pilotSalaryPerMinute = 0.67
)

// ticketPricePerKM is tiered by distance: short hops command a higher
// per-km fare than long haul.
func ticketPricePerKM(distance float64) float64 {
	switch {
	case distance < 500:
		return 0.25
	case distance < 1000:
		return 0.20
	default:
		return 0.15
	}
}

// Flight is one scheduled service. Cities and the plane are referenced by
// identifier, not pointer; the Manager's indices resolve them. Distance,
// Duration and End are derived at creation and never change.
type Flight struct {
	Origin       string  // city short code
	Destination  string  // city short code
	Registration string  // plane identity
	Passengers   int
	Start        Instant
	Distance     float64 // km
	Duration     int     // minutes
	End          Instant
}

func newFlight(origin, destination City, plane *Plane, start Instant, passengers int) *Flight {
	distance := origin.Distance(destination)
	duration := int(math.Round(distance / plane.Model.Velocity))
	return &Flight{
		Origin:       origin.Short,
		Destination:  destination.Short,
		Registration: plane.Registration,
		Passengers:   passengers,
		Start:        start,
		Distance:     distance,
		Duration:     duration,
		End:          start.AddMinutes(duration),
	}
}

// Revenue is passengers times the tiered per-km fare times distance.
func (f *Flight) Revenue() float64 {
	return float64(f.Passengers) * ticketPricePerKM(f.Distance) * f.Distance
}

// VariableCost covers fuel for the leg.
func (f *Flight) VariableCost() float64 {
	return f.Distance * fuelCostPerKM
}

// FixedCost covers the airframe's per-flight maintenance share and the crew
// salaries for the flight's duration.
func (f *Flight) FixedCost(model PlaneModel) float64 {
	return model.Maintenance + float64(model.Pilots)*pilotSalaryPerMinute*float64(f.Duration)
}

// Profit is revenue minus variable and fixed cost.
func (f *Flight) Profit(model PlaneModel) float64 {
	return f.Revenue() - f.VariableCost() - f.FixedCost(model)
}
