// Package metrics derives aggregate performance statistics from a finished
// trace table and its per-node radio state.
package metrics

import (
	"fmt"
	"math"
	"strconv"

	"alohatrace/internal/macaddr"
	"alohatrace/internal/radio"
	"alohatrace/internal/trace"
)

const nsPerSec = 1e9

// Engine computes derived statistics over one analysis run. All methods are
// pure reads: the trace table and node map are owned by the run and never
// mutated here.
type Engine struct {
	Trace  trace.Trace
	Nodes  map[int]*radio.NodeState
	Params radio.Params
}

// NewEngine wraps a finished trace and the tracker that was fed during its
// parse.
func NewEngine(t trace.Trace, tracker *radio.Tracker) *Engine {
	return &Engine{
		Trace:  t,
		Nodes:  tracker.Nodes(),
		Params: tracker.Params(),
	}
}

// RecvPackets counts distinct logical packets that reached their intended
// destination: packets with at least one non-colliding RX whose DestAddress
// field decodes to the receiving node's one-based identity. Address decode
// faults propagate to the caller.
func (e *Engine) RecvPackets() (int, error) {
	delivered := make(map[int]struct{})
	for _, r := range e.Trace {
		if r.Mode != trace.RX || r.Collision {
			continue
		}
		// DestAddress is a secondary lookup over the original event text; the
		// stored MacDstAddr may have come from the DA field instead.
		dest, ok := trace.ScanFields(r.RawText)["DestAddress"]
		if !ok {
			continue
		}
		addr, err := macaddr.Decode(dest)
		if err != nil {
			return 0, fmt.Errorf("recv packets: %w", err)
		}
		if addr == r.NodeID+1 {
			delivered[r.UniqueID] = struct{}{}
		}
	}
	return len(delivered), nil
}

// SentPackets counts every TX record. Relay retransmissions are deliberately
// not deduplicated by UniqueID, so the delivery ratio reads as per-hop
// efficiency rather than per-packet delivery.
func (e *Engine) SentPackets() int {
	return e.TxCalls()
}

// TxCalls counts TX records.
func (e *Engine) TxCalls() int {
	n := 0
	for _, r := range e.Trace {
		if r.Mode == trace.TX {
			n++
		}
	}
	return n
}

// RxCalls counts RX records.
func (e *Engine) RxCalls() int {
	n := 0
	for _, r := range e.Trace {
		if r.Mode == trace.RX {
			n++
		}
	}
	return n
}

// RxNoCollisionCalls sums the receptions each node processed cleanly.
func (e *Engine) RxNoCollisionCalls() int {
	n := 0
	for _, s := range e.Nodes {
		n += s.ProcessedRXCount
	}
	return n
}

// ErrorMarkedRX counts RX records the simulator itself flagged with
// Error=True, independent of the busy-interval collision model.
func (e *Engine) ErrorMarkedRX() int {
	n := 0
	for _, r := range e.Trace {
		if r.Mode == trace.RX && r.Error == "True" {
			n++
		}
	}
	return n
}

// EnergyConsumption is the total joules spent across all nodes and radio
// states.
func (e *Engine) EnergyConsumption() float64 {
	var total float64
	for _, s := range e.Nodes {
		total += s.RXEnergy + s.TXEnergy + s.IdleEnergy
	}
	return total
}

// EnergyPerBit divides total energy by usefully received bits. Returns 0
// when nothing was delivered.
func (e *Engine) EnergyPerBit() (float64, error) {
	recv, err := e.RecvPackets()
	if err != nil {
		return 0, err
	}
	if recv == 0 {
		return 0, nil
	}
	return e.EnergyConsumption() / float64(recv*e.Params.PacketSize*8), nil
}

// TotalCollisions sums collision counts across all nodes.
func (e *Engine) TotalCollisions() int {
	n := 0
	for _, s := range e.Nodes {
		n += s.CollisionCount
	}
	return n
}

// Throughput is a coarse, non-normalized proxy: the TX call count scaled by
// the first record's payload size. Not a bitrate.
func (e *Engine) Throughput() int {
	if len(e.Trace) == 0 {
		return 0
	}
	return e.TxCalls() * e.Trace[0].PayloadSize
}

// PDR is received over sent packets. Zero sent packets is an error rather
// than a guarded zero: a trace without transmissions has no meaningful ratio.
func (e *Engine) PDR() (float64, error) {
	recv, err := e.RecvPackets()
	if err != nil {
		return 0, err
	}
	sent := e.SentPackets()
	if sent == 0 {
		return 0, fmt.Errorf("pdr: trace has no TX records")
	}
	return float64(recv) / float64(sent), nil
}

// AverageDelay is the mean seconds between each delivery RX and every TX
// sharing its UniqueID. A retransmitted packet contributes one sample per
// matching TX. Returns NaN when the trace holds no delivery.
func (e *Engine) AverageDelay() float64 {
	var sum float64
	samples := 0
	counted := make(map[int]struct{})

	for _, r := range e.Trace {
		if !e.isDelivery(r) {
			continue
		}
		if _, ok := counted[r.UniqueID]; ok {
			continue
		}
		counted[r.UniqueID] = struct{}{}

		for _, tx := range e.Trace {
			if tx.Mode == trace.TX && tx.UniqueID == r.UniqueID {
				sum += (r.Timestamp - tx.Timestamp) / nsPerSec
				samples++
			}
		}
	}

	if samples == 0 {
		return math.NaN()
	}
	return sum / float64(samples)
}

// AverageHopCount is fixed at 1.0: the analyzed traffic is single-hop and
// real hop counting is a known simplification.
func (e *Engine) AverageHopCount() float64 {
	return 1.0
}

// isDelivery reports whether r is an RX whose MAC destination, read as a
// plain decimal number, names the receiving node's one-based identity. The
// plain-decimal comparison is intentional and differs from the positional
// decode used by RecvPackets.
func (e *Engine) isDelivery(r trace.Record) bool {
	if r.Mode != trace.RX {
		return false
	}
	dst, err := strconv.Atoi(r.MacDstAddr)
	if err != nil {
		return false
	}
	return dst == r.NodeID+1
}
