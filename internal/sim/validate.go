package sim

import "fmt"

// CheckFlightPlan verifies the schedule is physically flyable: every plane
// must start its first flight where it is parked, each flight must depart
// from the previous one's destination, and no flight may start before the
// previous one has landed (meeting exactly is fine, turnaround is zero).
// Returns one human-readable issue per violation; empty means valid.
func (m *Manager) CheckFlightPlan() []string {
	var issues []string

	for _, plane := range m.planes {
		flights := m.flightsForPlane(plane.Registration)
		if len(flights) == 0 {
			continue
		}

		first := flights[0]
		if plane.Location != "" && plane.Location != first.Origin {
			issues = append(issues, fmt.Sprintf(
				"%s: plane is parked in %s but its first flight departs from %s",
				plane.Registration, m.cityLabel(plane.Location), m.cityLabel(first.Origin)))
		}

		for i := 0; i < len(flights)-1; i++ {
			cur, next := flights[i], flights[i+1]

			if cur.Destination != next.Origin {
				issues = append(issues, fmt.Sprintf(
					"%s: flight lands in %s but the next one departs from %s",
					plane.Registration, m.cityLabel(cur.Destination), m.cityLabel(next.Origin)))
			}

			if cur.End.Minutes() > next.Start.Minutes() {
				issues = append(issues, fmt.Sprintf(
					"%s: flight %s-%s ending %s overlaps the next departure at %s",
					plane.Registration, cur.Origin, cur.Destination, cur.End, next.Start))
			}
		}
	}

	return issues
}

func (m *Manager) cityLabel(short string) string {
	if c, ok := m.world.CityByName(short); ok {
		return c.Name
	}
	return short
}
