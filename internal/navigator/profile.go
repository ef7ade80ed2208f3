package navigator

// Profile is one of the fixed architecture directions the navigator scores
// against. Focus and complexity attributes are on a 0-1 scale.
type Profile struct {
	Key              string
	Name             string
	Tagline          string
	Description      string
	PrivacyFocus     float64
	SoundnessFocus   float64
	PerformanceFocus float64
	Complexity       float64
}

// profiles holds the set in declared order. The declared order is also the
// tie-break order for ranking, so it must stay stable.
var profiles = []Profile{
	{
		Key:     "aztec",
		Name:    "Aztec-style zk Rollup",
		Tagline: "Encrypted state + zk circuits on Ethereum.",
		Description: "Privacy-first rollup that uses zero-knowledge proofs for " +
			"encrypted balances and private smart contracts. Most suitable " +
			"when you need on-chain privacy and Ethereum composability.",
		PrivacyFocus:     0.95,
		SoundnessFocus:   0.82,
		PerformanceFocus: 0.60,
		Complexity:       0.78,
	},
	{
		Key:     "zama",
		Name:    "Zama-style FHE Compute Stack",
		Tagline: "Fully homomorphic encrypted compute around Web3 data.",
		Description: "FHE-heavy design where application logic and analytics operate " +
			"on encrypted data. Useful when you need strong privacy across " +
			"off-chain or hybrid compute pipelines.",
		PrivacyFocus:     0.90,
		SoundnessFocus:   0.86,
		PerformanceFocus: 0.40,
		Complexity:       0.88,
	},
	{
		Key:     "soundness",
		Name:    "Soundness-first Protocol Lab",
		Tagline: "Formally specified and verified Web3 protocols.",
		Description: "Design discipline centered on specifications, proofs, and " +
			"verified implementations. Best suited when correctness and " +
			"long-term maintainability are the primary constraints.",
		PrivacyFocus:     0.55,
		SoundnessFocus:   0.98,
		PerformanceFocus: 0.72,
		Complexity:       0.65,
	},
}

// Profiles returns the architecture profiles in declared order.
// Callers get a copy, the underlying set is never mutated.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// FindProfile returns the profile with the given key.
func FindProfile(key string) (Profile, bool) {
	for _, p := range profiles {
		if p.Key == key {
			return p, true
		}
	}
	return Profile{}, false
}
