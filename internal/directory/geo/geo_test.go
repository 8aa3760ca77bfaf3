package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		assert.Zero(t, DistanceMeters(55.7558, 37.6173, 55.7558, 37.6173))
	})

	t.Run("symmetric", func(t *testing.T) {
		// Moscow and Saint Petersburg.
		d1 := DistanceMeters(55.7558, 37.6173, 59.9311, 30.3609)
		d2 := DistanceMeters(59.9311, 30.3609, 55.7558, 37.6173)
		assert.Equal(t, d1, d2)
	})

	t.Run("known distance", func(t *testing.T) {
		// Moscow to Saint Petersburg is roughly 634 km great-circle.
		d := DistanceMeters(55.7558, 37.6173, 59.9311, 30.3609)
		assert.InDelta(t, 634_000, d, 5_000)
	})

	t.Run("one degree of latitude at the equator", func(t *testing.T) {
		d := DistanceMeters(0, 0, 1, 0)
		assert.InDelta(t, 111_195, d, 100)
	})
}

func TestBBoxForRadius(t *testing.T) {
	t.Run("never excludes a point within the radius", func(t *testing.T) {
		centerLat, centerLon := 55.75, 37.62
		const radius = 5_000.0
		box := BBoxForRadius(centerLat, centerLon, radius)

		// Probe points on a ring just inside the radius in eight directions.
		offsets := []struct{ dLat, dLon float64 }{
			{1, 0}, {-1, 0}, {0, 1}, {0, -1},
			{0.7, 0.7}, {0.7, -0.7}, {-0.7, 0.7}, {-0.7, -0.7},
		}
		for _, o := range offsets {
			lat := centerLat + o.dLat*radius*0.99/111_000
			lon := centerLon + o.dLon*radius*0.99/111_000 // lon degrees are shorter here, still inside
			if DistanceMeters(centerLat, centerLon, lat, lon) <= radius {
				assert.True(t, box.Contains(lat, lon),
					"point (%f, %f) within radius must be inside bbox", lat, lon)
			}
		}
	})

	t.Run("clamps longitude scaling near the poles", func(t *testing.T) {
		box := BBoxForRadius(89.9, 0, 1_000)
		// cos(89.9°) ≈ 0.0017 would blow the lon delta up without the clamp.
		assert.LessOrEqual(t, box.LonMax-box.LonMin, 2*1_000/(111_000.0*0.1)+1e-9)
	})

	t.Run("is centered on the query point", func(t *testing.T) {
		box := BBoxForRadius(10, 20, 10_000)
		assert.InDelta(t, 10, (box.LatMin+box.LatMax)/2, 1e-9)
		assert.InDelta(t, 20, (box.LonMin+box.LonMax)/2, 1e-9)
	})
}

func TestBBoxForRectangle(t *testing.T) {
	t.Run("corner order is irrelevant", func(t *testing.T) {
		b1 := BBoxForRectangle(1, 2, 3, 4)
		b2 := BBoxForRectangle(3, 4, 1, 2)
		b3 := BBoxForRectangle(3, 2, 1, 4)
		assert.Equal(t, b1, b2)
		assert.Equal(t, b1, b3)
	})

	t.Run("normalizes to min and max", func(t *testing.T) {
		b := BBoxForRectangle(5, -10, -5, 10)
		assert.Equal(t, BBox{LatMin: -5, LatMax: 5, LonMin: -10, LonMax: 10}, b)
	})
}

func TestBBoxContains(t *testing.T) {
	box := BBox{LatMin: 0, LatMax: 1, LonMin: 0, LonMax: 1}
	assert.True(t, box.Contains(0.5, 0.5))
	assert.True(t, box.Contains(0, 0), "borders count as inside")
	assert.True(t, box.Contains(1, 1))
	assert.False(t, box.Contains(1.001, 0.5))
	assert.False(t, box.Contains(0.5, -0.001))
}
