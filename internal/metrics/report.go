package metrics

// Report materializes every derived metric of one analysis run for output
// formatting.
type Report struct {
	RecvPackets        int              `json:"recvPackets"`
	SentPackets        int              `json:"sentPackets"`
	TxCalls            int              `json:"txCalls"`
	RxCalls            int              `json:"rxCalls"`
	RxNoCollisionCalls int              `json:"rxNoCollisionCalls"`
	ErrorMarkedRX      int              `json:"errorMarkedRx"`
	EnergyConsumption  float64          `json:"energyConsumption"`
	EnergyPerBit       float64          `json:"energyPerBit"`
	Throughput         int              `json:"throughput"`
	PDR                float64          `json:"pdr"`
	TotalCollisions    int              `json:"totalCollisions"`
	AverageDelay       float64          `json:"averageDelay"` // NaN when no delivery
	AverageHopCount    float64          `json:"averageHopCount"`
	Instantaneous      ThroughputSeries `json:"instantaneousThroughput"`
}

// Compute runs every metric over the finished trace. Address-decode faults
// and the PDR zero-division fault surface as the returned error.
func (e *Engine) Compute() (*Report, error) {
	recv, err := e.RecvPackets()
	if err != nil {
		return nil, err
	}
	energyPerBit, err := e.EnergyPerBit()
	if err != nil {
		return nil, err
	}
	pdr, err := e.PDR()
	if err != nil {
		return nil, err
	}

	return &Report{
		RecvPackets:        recv,
		SentPackets:        e.SentPackets(),
		TxCalls:            e.TxCalls(),
		RxCalls:            e.RxCalls(),
		RxNoCollisionCalls: e.RxNoCollisionCalls(),
		ErrorMarkedRX:      e.ErrorMarkedRX(),
		EnergyConsumption:  e.EnergyConsumption(),
		EnergyPerBit:       energyPerBit,
		Throughput:         e.Throughput(),
		PDR:                pdr,
		TotalCollisions:    e.TotalCollisions(),
		AverageDelay:       e.AverageDelay(),
		AverageHopCount:    e.AverageHopCount(),
		Instantaneous:      e.InstantaneousThroughput(),
	}, nil
}
