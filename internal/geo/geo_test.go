package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

var (
	washingtonDC = orb.Point{-77.0369, 38.9072}
	georgetown   = orb.Point{-77.0654, 38.9098}
	arlington    = orb.Point{-77.0915, 38.8868}
)

func TestMilesBetween_SamePointIsZero(t *testing.T) {
	assert.Zero(t, MilesBetween(washingtonDC, washingtonDC))
}

func TestMilesBetween_Symmetric(t *testing.T) {
	ab := MilesBetween(washingtonDC, arlington)
	ba := MilesBetween(arlington, washingtonDC)

	assert.InEpsilon(t, ab, ba, 1e-6)
}

func TestMilesBetween_KnownDistance(t *testing.T) {
	// Downtown DC to Georgetown is roughly a mile and a half as the crow flies.
	d := MilesBetween(washingtonDC, georgetown)

	assert.Greater(t, d, 1.0)
	assert.Less(t, d, 2.0)
}

func TestMilesBetween_Positive(t *testing.T) {
	d := MilesBetween(georgetown, arlington)
	assert.False(t, math.IsNaN(d))
	assert.Greater(t, d, 0.0)
}
