package satfire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreatCircleDistanceSelfIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, GreatCircleDistance(12.3, 45.6, 12.3, 45.6), 1e-9)
}

func TestGreatCircleDistanceSymmetric(t *testing.T) {
	a := GreatCircleDistance(10, 20, -5, 100)
	b := GreatCircleDistance(-5, 100, 10, 20)
	assert.InDelta(t, a, b, 1e-9)
}

func TestGreatCircleDistanceQuarterMeridian(t *testing.T) {
	d := GreatCircleDistance(0, 0, 0, 90)
	assert.InDelta(t, 10007.543, d, 1.0)
}

func TestGreatCircleDistanceAntipodal(t *testing.T) {
	d := GreatCircleDistance(0, 0, 0, 180)
	assert.InDelta(t, math.Pi*earthRadiusKm, d, 1.0)
}
