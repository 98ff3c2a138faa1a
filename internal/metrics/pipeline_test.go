package metrics

import (
	"strings"
	"testing"

	"alohatrace/internal/radio"
	"alohatrace/internal/trace"
)

// TestPipeline_EndToEnd runs the whole chain over raw trace text, including
// writer-wrapped lines: split, parse with state tracking, compute.
func TestPipeline_EndToEnd(t *testing.T) {
	raw := "t 0 /NodeList/0/DeviceList/0/Mac Header (PacketType=DATA Size=50\n" +
		" TxTime=+5000000.0ns Direction=DOWN UniqueID=1 SA=01, DA=02)\n" +
		"t 1000000 /NodeList/0/DeviceList/0/Mac Header (PacketType=DATA Size=50 " +
		"UniqueID=2 SA=01, DA=03)\n" +
		"r 5000000000 /NodeList/1/DeviceList/0/Mac Header (PacketType=DATA Size=50\n" +
		" UniqueID=1 SA=01, DestAddress=02)\n"

	events, err := trace.Split(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	tracker := radio.NewTracker(radio.DefaultParams())
	parser := &trace.Parser{Tracker: tracker}
	table, err := parser.Parse(events)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rep, err := NewEngine(table, tracker).Compute()
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if rep.RecvPackets != 1 {
		t.Errorf("RecvPackets = %d, want 1", rep.RecvPackets)
	}
	// The second TX lands inside the first one's 5 ms busy window.
	if rep.SentPackets != 2 {
		t.Errorf("SentPackets = %d, want 2", rep.SentPackets)
	}
	if rep.TotalCollisions != 1 {
		t.Errorf("TotalCollisions = %d, want 1", rep.TotalCollisions)
	}
	if rep.PDR != 0.5 {
		t.Errorf("PDR = %g, want 0.5", rep.PDR)
	}
	if rep.AverageDelay != 5.0 {
		t.Errorf("AverageDelay = %g, want 5.0", rep.AverageDelay)
	}
	if rep.EnergyConsumption <= 0 {
		t.Errorf("EnergyConsumption = %g, want > 0", rep.EnergyConsumption)
	}
}
