package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"centrodrinks/internal/domain"
)

var guadalajara = domain.Coordinate{Latitude: 20.6597, Longitude: -103.3496}

func TestHaversineKm_SamePointIsZero(t *testing.T) {
	assert.Zero(t, HaversineKm(guadalajara, guadalajara))
}

func TestHaversineKm_Symmetric(t *testing.T) {
	cdmx := domain.Coordinate{Latitude: 19.4326, Longitude: -99.1332}

	assert.InDelta(t, HaversineKm(guadalajara, cdmx), HaversineKm(cdmx, guadalajara), 1e-9)
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Guadalajara to Mexico City is roughly 460 km as the crow flies.
	cdmx := domain.Coordinate{Latitude: 19.4326, Longitude: -99.1332}

	km := HaversineKm(guadalajara, cdmx)
	assert.InDelta(t, 460, km, 10)
}

func TestEtaMinutes(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		want int
	}{
		{name: "zero distance", km: 0, want: 0},
		{name: "one km at 18 km/h", km: 1, want: 3},
		{name: "half km rounds", km: 0.5, want: 2},
		{name: "ten km", km: 10, want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EtaMinutes(tt.km))
		})
	}
}

func TestEtaMinutes_MonotoneInDistance(t *testing.T) {
	prev := EtaMinutes(0)
	for km := 0.5; km <= 30; km += 0.5 {
		cur := EtaMinutes(km)
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}
