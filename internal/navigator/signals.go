package navigator

// Signals are the five user-supplied inputs, each on a 0-10 scale.
// They are decoded from flags, a config file or interactive answers and are
// treated as immutable once clamped.
type Signals struct {
	NeedPrivacy      float64 `json:"needPrivacy" mapstructure:"need-privacy"`
	NeedFormal       float64 `json:"needFormal" mapstructure:"need-formal"`
	NeedThroughput   float64 `json:"needThroughput" mapstructure:"need-throughput"`
	LatencyTolerance float64 `json:"latencyTolerance" mapstructure:"latency-tolerance"`
	CryptoExperience float64 `json:"cryptoExperience" mapstructure:"crypto-experience"`
}

// DefaultSignals returns the built-in defaults used when neither flags nor a
// config file provide values.
func DefaultSignals() Signals {
	return Signals{
		NeedPrivacy:      8,
		NeedFormal:       7,
		NeedThroughput:   6,
		LatencyTolerance: 5,
		CryptoExperience: 6,
	}
}

// Clamp pins every signal into the accepted 0-10 range. Out-of-range values
// are corrected silently, they are not an input error.
func (s Signals) Clamp() Signals {
	s.NeedPrivacy = clamp(s.NeedPrivacy, 0, 10)
	s.NeedFormal = clamp(s.NeedFormal, 0, 10)
	s.NeedThroughput = clamp(s.NeedThroughput, 0, 10)
	s.LatencyTolerance = clamp(s.LatencyTolerance, 0, 10)
	s.CryptoExperience = clamp(s.CryptoExperience, 0, 10)
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
