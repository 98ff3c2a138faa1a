package trace

// Mode identifies the direction of a physical event.
type Mode string

const (
	TX Mode = "TX"
	RX Mode = "RX"
)

// Record is one parsed TX or RX occurrence.
type Record struct {
	Mode        Mode
	Timestamp   float64 // nanoseconds, as reported by the simulator
	NodeID      int
	PacketType  string
	PayloadSize int     // bytes
	TxDuration  float64 // nanoseconds
	Direction   string
	NumForwards int
	Error       string
	UniqueID    int // shared by all copies of one logical packet
	MacSrcAddr  string
	MacDstAddr  string
	RawText     string // original event text, kept for secondary field lookups
	Collision   bool   // computed once at parse time, never revisited
}

// Trace is the ordered table of parsed records for one analysis run.
type Trace []Record
