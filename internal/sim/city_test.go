package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSymmetric(t *testing.T) {
	a := City{Name: "Berlin", Short: "BER", Lat: 52.52, Lon: 13.405}
	b := City{Name: "Tokyo", Short: "HND", Lat: 35.6762, Lon: 139.6503}

	assert.InDelta(t, a.Distance(b), b.Distance(a), 1e-9)
}

func TestDistanceToSelfIsZero(t *testing.T) {
	c := City{Name: "Madrid", Short: "MAD", Lat: 40.4168, Lon: -3.7038}
	assert.InDelta(t, 0, c.Distance(c), 1e-9)
}

func TestDistanceKnownRoute(t *testing.T) {
	berlin := City{Lat: 52.52, Lon: 13.405}
	munich := City{Lat: 48.1372, Lon: 11.5755}

	// great-circle Berlin-Munich is a bit over 500 km
	assert.InDelta(t, 504, berlin.Distance(munich), 5)
}

func TestDistanceEquatorDegree(t *testing.T) {
	a := City{Lat: 0, Lon: 0}
	b := City{Lat: 0, Lon: 1}

	// one degree of longitude on the equator
	assert.InDelta(t, 111.19, a.Distance(b), 0.1)
}
