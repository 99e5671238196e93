package metrics

import (
	"hash/fnv"
	"math/rand"

	"github.com/iwvelando/saas-metrics/pkg/constants"
)

// Sparkline generates a synthetic history series for a metric: noise around
// the current value, trending into it so the final point equals the value
// exactly. There is no retained history anywhere in the system; this exists
// purely so dashboard cards have something to draw. The series is seeded from
// the metric id, so repeated renders of the same value are identical.
func Sparkline(id string, value float64, points int) []float64 {
	if points <= 0 {
		points = constants.DefaultSparklinePoints
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	series := make([]float64, points)
	for i := 0; i < points-1; i++ {
		// Noise amplitude tapers toward the present so the series reads as
		// converging on the current value.
		progress := float64(i) / float64(points-1)
		noise := (rng.Float64()*2 - 1) * constants.SparklineVolatility * (1 - progress)
		series[i] = value * (1 + noise)
	}
	series[points-1] = value
	return series
}
