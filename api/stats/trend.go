package stats

// Direction of a statistic over the most recent games.
type Direction string

const (
	TrendUp     Direction = "up"
	TrendDown   Direction = "down"
	TrendStable Direction = "stable"
)

// DefaultTrendWindow is the number of games on each side of the comparison.
const DefaultTrendWindow = 5

// Relative change needed to leave the stable state.
const trendThreshold = 0.10

// Trend compares the mean of the last window values with the mean of the
// window values before them. Each side needs more than half a window of values.
func Trend(series []float64, window int) Direction {
	if window <= 0 {
		window = DefaultTrendWindow
	}
	if len(series) < window {
		return TrendStable
	}

	recent := series[len(series)-window:]
	older := series[max(0, len(series)-2*window) : len(series)-window]

	minPoints := window/2 + 1
	if len(recent) < minPoints || len(older) < minPoints {
		return TrendStable
	}

	olderAvg := mean(older)
	if olderAvg == 0 {
		return TrendStable
	}

	change := (mean(recent) - olderAvg) / olderAvg
	switch {
	case change > trendThreshold:
		return TrendUp
	case change < -trendThreshold:
		return TrendDown
	}
	return TrendStable
}

// MovingAverage returns the mean of each value with up to window-1 values before it.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 {
		window = DefaultTrendWindow
	}

	result := make([]float64, len(values))
	sum := 0.0
	for i, value := range values {
		sum += value
		if i >= window {
			sum -= values[i-window]
		}
		result[i] = Round(sum/float64(min(i+1, window)), 2)
	}
	return result
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}
