package radio

// nsPerSec converts between the trace's nanosecond timestamps and the
// second-scaled air time. All busy-interval arithmetic stays in nanoseconds.
const nsPerSec = 1e9

// NodeState accumulates per-node bookkeeping. Energy fields are joules and
// never decrease; BusyUntil is the nanosecond instant the radio becomes free.
type NodeState struct {
	ProcessedRXCount int
	RXEnergy         float64
	TXEnergy         float64
	IdleEnergy       float64
	CollisionCount   int
	BusyUntil        float64
}

// Tracker owns the node state map for one analysis run. States are created
// lazily with zeroed fields on first reference, so node ids are unbounded.
type Tracker struct {
	params Params
	nodes  map[int]*NodeState
}

// NewTracker creates an empty tracker using the given physical-layer model.
func NewTracker(params Params) *Tracker {
	return &Tracker{
		params: params,
		nodes:  make(map[int]*NodeState),
	}
}

func (t *Tracker) node(id int) *NodeState {
	s, ok := t.nodes[id]
	if !ok {
		s = &NodeState{}
		t.nodes[id] = s
	}
	return s
}

// ObserveTX accounts a transmission starting at ts (nanoseconds) and reports
// whether it overlaps the node's own busy interval. Transmit energy is
// charged regardless of the outcome: the radio burns power even when the
// packet is lost, and a transmitting radio still draws its idle baseline.
func (t *Tracker) ObserveTX(nodeID int, ts float64, payloadBytes int) bool {
	s := t.node(nodeID)
	air := t.params.AirTime(payloadBytes)
	s.TXEnergy += air * (t.params.TXPower + t.params.IdlePower)

	if ts >= s.BusyUntil {
		s.IdleEnergy += (ts - s.BusyUntil) / nsPerSec * t.params.IdlePower
		s.BusyUntil = ts + air*nsPerSec
		return false
	}
	s.CollisionCount++
	return true
}

// ObserveRX accounts a reception completing at ts (nanoseconds). The trace
// stamps receptions at their end, so the overlap check runs against the
// effective start ts-airtime. A colliding reception updates nothing but the
// collision counter.
func (t *Tracker) ObserveRX(nodeID int, ts float64, payloadBytes int) bool {
	s := t.node(nodeID)
	air := t.params.AirTime(payloadBytes)

	if ts-air*nsPerSec >= s.BusyUntil {
		s.ProcessedRXCount++
		s.IdleEnergy += (ts - s.BusyUntil) / nsPerSec * t.params.IdlePower
		s.BusyUntil = ts
		s.RXEnergy += air * t.params.RXPower
		return false
	}
	s.CollisionCount++
	return true
}

// Nodes returns the tracked state map. Callers must treat it as read-only.
func (t *Tracker) Nodes() map[int]*NodeState {
	return t.nodes
}

// Params returns the physical-layer constants the tracker was built with.
func (t *Tracker) Params() Params {
	return t.params
}
