package reader

import "github.com/chewxy/math32"

// PositionBounds computes the component-wise min and max over a position
// sequence, for cross-checking an accessor's declared bounds or rebuilding
// them. An empty sequence yields +Inf mins and -Inf maxes.
func PositionBounds(s Seq[[3]float32]) (min, max [3]float32) {
	for i := range min {
		min[i] = math32.Inf(1)
		max[i] = math32.Inf(-1)
	}
	for v := range s.All() {
		for i := range v {
			min[i] = math32.Min(min[i], v[i])
			max[i] = math32.Max(max[i], v[i])
		}
	}
	return min, max
}
