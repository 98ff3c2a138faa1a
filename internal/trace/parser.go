package trace

import (
	"fmt"
	"strconv"
	"strings"

	"alohatrace/internal/radio"
)

// Defaults substituted for optional fields that are absent from an event.
const (
	defaultPayloadSize = 50
	defaultAddr        = "000"
	defaultUnknown     = "UNKNOWN"
	defaultError       = "False"
)

// Parser turns split event strings into Records. Parsing feeds the radio
// tracker as a side effect so every record carries the collision flag
// computed against the node's busy interval at that point of the trace.
type Parser struct {
	Tracker *radio.Tracker

	// Progress, when set, is called with the running record count. Used for
	// throttled progress reporting on large traces.
	Progress func(parsed int)
}

// Parse consumes events in input order and returns the finished trace table.
// A record missing its UniqueID field aborts the whole parse: without it the
// record cannot be grouped with its relayed copies, and every delivery metric
// downstream would silently miscount.
func (p *Parser) Parse(events []string) (Trace, error) {
	t := make(Trace, 0, len(events))
	for i, ev := range events {
		if len(ev) == 0 {
			continue
		}
		var mode Mode
		switch ev[0] {
		case 't':
			mode = TX
		case 'r':
			mode = RX
		default:
			// Leading junk before the first real event.
			continue
		}

		rec, err := p.parseEvent(mode, ev)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		t = append(t, rec)

		if p.Progress != nil {
			p.Progress(len(t))
		}
	}
	return t, nil
}

func (p *Parser) parseEvent(mode Mode, ev string) (Record, error) {
	tokens := strings.Fields(ev)
	if len(tokens) < 3 {
		return Record{}, fmt.Errorf("truncated event %q", ev)
	}

	ts, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Record{}, fmt.Errorf("timestamp %q: %w", tokens[1], err)
	}

	// The node id sits at a fixed position in the slash-delimited path token,
	// e.g. /NodeList/7/DeviceList/0/... -> 7.
	segs := strings.Split(tokens[2], "/")
	if len(segs) < 3 {
		return Record{}, fmt.Errorf("node path %q: want at least 3 segments", tokens[2])
	}
	nodeID, err := strconv.Atoi(segs[2])
	if err != nil {
		return Record{}, fmt.Errorf("node id %q: %w", segs[2], err)
	}

	fields := ScanFields(ev)
	if !fields.Has("UniqueID") {
		return Record{}, fmt.Errorf("missing required field UniqueID")
	}
	uniqueID, err := strconv.Atoi(fields["UniqueID"])
	if err != nil {
		return Record{}, fmt.Errorf("field UniqueID=%q: %w", fields["UniqueID"], err)
	}

	rec := Record{
		Mode:        mode,
		Timestamp:   ts,
		NodeID:      nodeID,
		PacketType:  fields.Str("PacketType", defaultUnknown),
		PayloadSize: fields.Int("Size", defaultPayloadSize),
		Direction:   fields.Str("Direction", defaultUnknown),
		NumForwards: fields.Int("NumForwards", 0),
		Error:       fields.Str("Error", defaultError),
		UniqueID:    uniqueID,
		MacSrcAddr:  fields.Str("SA", defaultAddr),
		RawText:     ev,
	}

	switch mode {
	case TX:
		rec.TxDuration = fields.Duration("TxTime")
		rec.MacDstAddr = fields.Str("DA", defaultAddr)
		rec.Collision = p.Tracker.ObserveTX(nodeID, ts, rec.PayloadSize)
	case RX:
		// Receptions carry the destination in DA or, on some layers, in
		// DestAddress.
		if fields.Has("DA") {
			rec.MacDstAddr = fields["DA"]
		} else {
			rec.MacDstAddr = fields.Str("DestAddress", defaultAddr)
		}
		rec.Collision = p.Tracker.ObserveRX(nodeID, ts, rec.PayloadSize)
	}
	return rec, nil
}
