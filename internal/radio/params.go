// Package radio models per-node radio state for a random-access medium:
// busy intervals, medium-access collisions and energy accounting.
package radio

// Params holds the physical-layer constants used for collision and energy
// accounting. They are injected rather than hard-coded so multiple analyses
// can run concurrently with different radio models.
type Params struct {
	TXPower    float64 `yaml:"tx_power"`    // watts
	RXPower    float64 `yaml:"rx_power"`    // watts
	IdlePower  float64 `yaml:"idle_power"`  // watts
	LinkSpeed  float64 `yaml:"link_speed"`  // bits/second
	PacketSize int     `yaml:"packet_size"` // bytes, used only by throughput metrics
}

// DefaultParams returns the acoustic-modem model the traces are captured
// against: a 60 W transmitter with a 158 mW receive/idle floor on an
// 80 kbit/s link.
func DefaultParams() Params {
	return Params{
		TXPower:    60.0,
		RXPower:    0.158,
		IdlePower:  0.158,
		LinkSpeed:  80000.0,
		PacketSize: 800,
	}
}

// AirTime returns the seconds a payload of the given size occupies the medium.
func (p Params) AirTime(payloadBytes int) float64 {
	return float64(payloadBytes) * 8 / p.LinkSpeed
}
