package sim

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strconv"
)

// Demand curve parameters. Tunables, not derived values.
const (
	demandPeakKM  = 3000.0 // distance where demand is strongest
	demandWidthKM = 2000.0 // width of the sweet spot
	longHaulKM    = 6000.0 // beyond this, big hubs keep their pull
)

// RouteWeeklyDemand computes the total passenger volume wanting to travel
// from origin to destination in the given week. The result is deterministic:
// the market-noise factor is seeded from (origin name, destination name,
// week), so the value can be re-derived at any time instead of stored. The
// seeding scheme (FNV-1a into math/rand) is frozen; changing it invalidates
// every saved game.
func RouteWeeklyDemand(origin, destination City, week int) int {
	if origin.Short == destination.Short {
		return 0
	}

	d := math.Max(origin.Distance(destination), 1)

	distanceFactor := math.Exp(-((d - demandPeakKM) * (d - demandPeakKM)) / (2 * demandWidthKM * demandWidthKM))
	popFactor := math.Sqrt(float64(origin.Population)) * math.Sqrt(float64(destination.Population)) / 1000

	demand := popFactor * (1 + 2*distanceFactor)

	if d > longHaulKM {
		hubBonus := math.Log10(float64(origin.Population)*float64(destination.Population)) / 10
		demand *= 1 + hubBonus
	}

	demand *= routeNoise(origin.Name, destination.Name, week)

	return int(math.Round(math.Max(demand, 0)))
}

func routeNoise(origin, destination string, week int) float64 {
	h := fnv.New64a()
	h.Write([]byte(origin))
	h.Write([]byte(destination))
	h.Write([]byte(strconv.Itoa(week)))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return 0.09 + rng.Float64()*0.02
}

// Intraday curve parameters: three daily travel peaks at 07:00, 12:00 and
// 18:00 local time with fixed widths, a shared mixture weight and a floor
// that keeps red-eye slots from zeroing out.
const (
	morningPeakHour = 7.0
	middayPeakHour  = 12.0
	eveningPeakHour = 18.0
	morningWidth    = 1.5
	middayWidth     = 4.0
	eveningWidth    = 2.0
	peakWeight      = 0.4
	densityFloor    = 0.1
)

func intradayDensity(t float64) float64 {
	t = math.Mod(t, 24)
	if t < 0 {
		t += 24
	}
	b1 := math.Exp(-((t - morningPeakHour) * (t - morningPeakHour)) / (2 * morningWidth * morningWidth))
	b2 := math.Exp(-((t - middayPeakHour) * (t - middayPeakHour)) / (2 * middayWidth * middayWidth))
	b3 := math.Exp(-((t - eveningPeakHour) * (t - eveningPeakHour)) / (2 * eveningWidth * eveningWidth))
	return peakWeight/math.Sqrt(math.Pi)*(b1+b2+b3) + densityFloor
}

// IntradayDemand distributes a route's weekly demand onto one departure
// slot. The curve is evaluated at local time and again one hour earlier and
// the two samples summed, which smooths demand across the hour boundary of
// the requested slot. Purely deterministic in its four inputs.
func IntradayDemand(weeklyDemand, hour, minute int, timezone float64) int {
	exactHours := float64(hour*60+minute) / 60
	local := exactHours - timezone
	density := intradayDensity(local) + intradayDensity(local-1)
	return int(math.Round(float64(weeklyDemand)*density + 0.2))
}
