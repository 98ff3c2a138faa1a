package metrics

// windowNanos is the sliding-window width for instantaneous throughput.
const windowNanos = 1e10 // 10 seconds

// ThroughputSeries holds the sliding-window throughput samples: window-end
// timestamps in seconds, per-window bit rates, and the running mean of those
// rates. The three slices always have equal length.
type ThroughputSeries struct {
	Timestamps    []float64 `json:"timestamps"`
	Samples       []float64 `json:"samples"`
	MovingAverage []float64 `json:"movingAverage"`
}

// InstantaneousThroughput scans delivery RX records in table order, counting
// each UniqueID once. Every time a record lands at least the window width
// past the window start, the window closes: a bits-per-second sample is
// emitted for it together with an incrementally updated running mean, and the
// window restarts at the current record.
func (e *Engine) InstantaneousThroughput() ThroughputSeries {
	var series ThroughputSeries
	counted := make(map[int]struct{})

	var windowStart float64
	count := 0
	prevAvg := 0.0
	k := 1
	started := false

	for _, r := range e.Trace {
		if !e.isDelivery(r) {
			continue
		}
		if _, ok := counted[r.UniqueID]; ok {
			continue
		}
		counted[r.UniqueID] = struct{}{}

		if !started {
			windowStart = r.Timestamp
			count = 1
			started = true
			continue
		}

		if r.Timestamp-windowStart < windowNanos {
			count++
			continue
		}

		elapsed := (r.Timestamp - windowStart) / nsPerSec
		sample := float64(count*e.Params.PacketSize*8) / elapsed
		avg := prevAvg + (sample-prevAvg)/float64(k)

		series.Timestamps = append(series.Timestamps, r.Timestamp/nsPerSec)
		series.Samples = append(series.Samples, sample)
		series.MovingAverage = append(series.MovingAverage, avg)

		prevAvg = avg
		k++
		windowStart = r.Timestamp
		count = 1
	}
	return series
}
