package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// FormatText writes the report in the fixed order the sweep layer consumes.
func FormatText(w io.Writer, rep *Report, thresholds *ThresholdResults) {
	fmt.Fprintf(w, "Number of received packets: %d\n", rep.RecvPackets)
	fmt.Fprintf(w, "Number of sent packets: %d\n", rep.SentPackets)
	fmt.Fprintf(w, "Total number of tx calls: %d\n", rep.TxCalls)
	fmt.Fprintf(w, "Total number of rx calls: %d\n", rep.RxCalls)
	fmt.Fprintf(w, "Total energy consumption: %g\n", rep.EnergyConsumption)
	fmt.Fprintf(w, "Energy per bit: %g\n", rep.EnergyPerBit)
	fmt.Fprintf(w, "Throughput: %d\n", rep.Throughput)
	fmt.Fprintf(w, "PDR: %g\n", rep.PDR)
	fmt.Fprintf(w, "Number of collisions: %d\n", rep.TotalCollisions)
	fmt.Fprintf(w, "Instantaneous throughput: %v %v %v\n",
		rep.Instantaneous.Timestamps, rep.Instantaneous.Samples, rep.Instantaneous.MovingAverage)
	fmt.Fprintf(w, "Average hop count: %g\n", rep.AverageHopCount)

	if thresholds != nil && len(thresholds.Results) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "Thresholds:")
		for _, result := range thresholds.Results {
			symbol := "✓"
			if !result.Passed {
				symbol = "✗"
			}
			fmt.Fprintf(w, "  %s %s %s (actual: %s)\n",
				symbol, result.Name, result.Threshold, result.Actual)
		}
	}
}

// FormatJSON writes the report in JSON format. AverageDelay is null rather
// than NaN when the trace holds no delivery, since JSON cannot carry NaN.
func FormatJSON(w io.Writer, rep *Report, thresholds *ThresholdResults) {
	output := struct {
		RecvPackets        int               `json:"recvPackets"`
		SentPackets        int               `json:"sentPackets"`
		TxCalls            int               `json:"txCalls"`
		RxCalls            int               `json:"rxCalls"`
		RxNoCollisionCalls int               `json:"rxNoCollisionCalls"`
		ErrorMarkedRX      int               `json:"errorMarkedRx"`
		EnergyConsumption  float64           `json:"energyConsumption"`
		EnergyPerBit       float64           `json:"energyPerBit"`
		Throughput         int               `json:"throughput"`
		PDR                float64           `json:"pdr"`
		TotalCollisions    int               `json:"totalCollisions"`
		AverageDelay       *float64          `json:"averageDelay"`
		AverageHopCount    float64           `json:"averageHopCount"`
		Instantaneous      ThroughputSeries  `json:"instantaneousThroughput"`
		Thresholds         *ThresholdResults `json:"thresholds,omitempty"`
	}{
		RecvPackets:        rep.RecvPackets,
		SentPackets:        rep.SentPackets,
		TxCalls:            rep.TxCalls,
		RxCalls:            rep.RxCalls,
		RxNoCollisionCalls: rep.RxNoCollisionCalls,
		ErrorMarkedRX:      rep.ErrorMarkedRX,
		EnergyConsumption:  rep.EnergyConsumption,
		EnergyPerBit:       rep.EnergyPerBit,
		Throughput:         rep.Throughput,
		PDR:                rep.PDR,
		TotalCollisions:    rep.TotalCollisions,
		AverageHopCount:    rep.AverageHopCount,
		Instantaneous:      rep.Instantaneous,
		Thresholds:         thresholds,
	}
	if !math.IsNaN(rep.AverageDelay) {
		delay := rep.AverageDelay
		output.AverageDelay = &delay
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(output) // stdout errors are unrecoverable
}

// FormatCSV writes one header and one row of the scalar metrics so a sweep
// run can concatenate analysis outputs into a single table.
func FormatCSV(w io.Writer, rep *Report) error {
	writer := csv.NewWriter(w)
	header := []string{
		"recv_packets", "sent_packets", "tx_calls", "rx_calls",
		"rx_nocol_calls", "error_marked_rx", "energy_consumption",
		"energy_per_bit", "throughput", "pdr", "total_collisions",
		"average_delay", "average_hop_count",
	}
	row := []string{
		strconv.Itoa(rep.RecvPackets),
		strconv.Itoa(rep.SentPackets),
		strconv.Itoa(rep.TxCalls),
		strconv.Itoa(rep.RxCalls),
		strconv.Itoa(rep.RxNoCollisionCalls),
		strconv.Itoa(rep.ErrorMarkedRX),
		formatFloat(rep.EnergyConsumption),
		formatFloat(rep.EnergyPerBit),
		strconv.Itoa(rep.Throughput),
		formatFloat(rep.PDR),
		strconv.Itoa(rep.TotalCollisions),
		formatFloat(rep.AverageDelay),
		formatFloat(rep.AverageHopCount),
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.Write(row); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
