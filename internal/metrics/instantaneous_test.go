package metrics

import (
	"math"
	"testing"

	"alohatrace/internal/radio"
	"alohatrace/internal/trace"
)

func deliveryRecord(ts float64, uniqueID int) trace.Record {
	return trace.Record{
		Mode:       trace.RX,
		Timestamp:  ts,
		NodeID:     0,
		MacDstAddr: "1",
		UniqueID:   uniqueID,
	}
}

func TestInstantaneousThroughput_WindowClosing(t *testing.T) {
	e := &Engine{
		Trace: trace.Trace{
			deliveryRecord(0, 1),
			deliveryRecord(2e9, 2),  // inside first window
			deliveryRecord(11e9, 3), // closes first window
			deliveryRecord(12e9, 4), // inside second window
			deliveryRecord(22e9, 5), // closes second window
		},
		Params: radio.DefaultParams(),
	}

	s := e.InstantaneousThroughput()
	if len(s.Samples) != 2 {
		t.Fatalf("expected 2 windows closed, got %d", len(s.Samples))
	}

	if s.Timestamps[0] != 11.0 || s.Timestamps[1] != 22.0 {
		t.Errorf("Timestamps = %v, want [11 22]", s.Timestamps)
	}

	// Both windows deliver 2 packets over 11 seconds.
	want := float64(2*800*8) / 11.0
	for i, sample := range s.Samples {
		if math.Abs(sample-want) > 1e-9 {
			t.Errorf("Samples[%d] = %v, want %v", i, sample, want)
		}
	}
}

func TestInstantaneousThroughput_EqualLengthSequences(t *testing.T) {
	e := &Engine{
		Trace: trace.Trace{
			deliveryRecord(0, 1),
			deliveryRecord(11e9, 2),
			deliveryRecord(23e9, 3),
			deliveryRecord(36e9, 4),
			deliveryRecord(50e9, 5),
		},
		Params: radio.DefaultParams(),
	}

	s := e.InstantaneousThroughput()
	if len(s.Timestamps) != len(s.Samples) || len(s.Samples) != len(s.MovingAverage) {
		t.Fatalf("sequence lengths differ: %d/%d/%d",
			len(s.Timestamps), len(s.Samples), len(s.MovingAverage))
	}
	if len(s.Samples) == 0 {
		t.Fatal("expected at least one closed window")
	}
}

func TestInstantaneousThroughput_MovingAverageIsRunningMean(t *testing.T) {
	e := &Engine{
		Trace: trace.Trace{
			deliveryRecord(0, 1),
			deliveryRecord(4e9, 2),
			deliveryRecord(12e9, 3),
			deliveryRecord(13e9, 4),
			deliveryRecord(40e9, 5),
			deliveryRecord(55e9, 6),
		},
		Params: radio.DefaultParams(),
	}

	s := e.InstantaneousThroughput()
	if len(s.Samples) == 0 {
		t.Fatal("expected closed windows")
	}

	var sum float64
	for i, sample := range s.Samples {
		sum += sample
		mean := sum / float64(i+1)
		if math.Abs(s.MovingAverage[i]-mean) > 1e-9 {
			t.Errorf("MovingAverage[%d] = %v, want running mean %v", i, s.MovingAverage[i], mean)
		}
	}
}

func TestInstantaneousThroughput_DuplicateUniqueIDsIgnored(t *testing.T) {
	e := &Engine{
		Trace: trace.Trace{
			deliveryRecord(0, 1),
			deliveryRecord(2e9, 1), // duplicate reception of packet 1
			deliveryRecord(11e9, 2),
		},
		Params: radio.DefaultParams(),
	}

	s := e.InstantaneousThroughput()
	if len(s.Samples) != 1 {
		t.Fatalf("expected 1 window, got %d", len(s.Samples))
	}
	// Only the original reception counts: 1 packet over 11 seconds.
	want := float64(1*800*8) / 11.0
	if math.Abs(s.Samples[0]-want) > 1e-9 {
		t.Errorf("Samples[0] = %v, want %v", s.Samples[0], want)
	}
}

func TestInstantaneousThroughput_NoDeliveries(t *testing.T) {
	e := &Engine{
		Trace: trace.Trace{
			{Mode: trace.TX, Timestamp: 0, NodeID: 0, UniqueID: 1, MacDstAddr: "05"},
		},
		Params: radio.DefaultParams(),
	}
	s := e.InstantaneousThroughput()
	if len(s.Timestamps) != 0 || len(s.Samples) != 0 || len(s.MovingAverage) != 0 {
		t.Errorf("expected empty series, got %d/%d/%d",
			len(s.Timestamps), len(s.Samples), len(s.MovingAverage))
	}
}
