package navigator

import (
	"math"

	"go.uber.org/zap"

	"github.com/spigell/web3-navigator/internal/logger"
)

// Weights of the closeness terms in the composite score.
const (
	privacyWeight   = 0.40
	soundnessWeight = 0.30
	perfWeight      = 0.30
)

// Label bands. The cut points are monotonic and exhaustive, every fit score
// in [0,1] maps to exactly one label.
const (
	LabelExcellent = "excellent"
	LabelGood      = "good"
	LabelModerate  = "moderate"
	LabelWeak      = "weak"

	excellentCutoff = 0.80
	goodCutoff      = 0.65
	moderateCutoff  = 0.50
)

// Deps aggregates dependencies shared across the scoring steps.
type Deps struct {
	Logger *zap.Logger
}

// Penalty is a single named deduction applied to a profile composite.
type Penalty interface {
	Name() string
	Apply(p Profile, s Signals) float64
}

// Penalties returns the deduction steps in application order.
func Penalties() []Penalty {
	return []Penalty{latencyPenalty{}, experiencePenalty{}}
}

type latencyPenalty struct{}

func (latencyPenalty) Name() string { return "latency" }

// Apply charges complex stacks with long proving times when the project
// cannot tolerate latency. The deduction grows as tolerance drops.
func (latencyPenalty) Apply(p Profile, s Signals) float64 {
	return 0.30 * (1 - s.LatencyTolerance/10) * (p.Complexity * 0.5)
}

type experiencePenalty struct{}

func (experiencePenalty) Name() string { return "experience" }

// Apply charges the gap between profile complexity and team experience.
func (experiencePenalty) Apply(p Profile, s Signals) float64 {
	return 0.40 * math.Max(0, p.Complexity-s.CryptoExperience/10)
}

// Closeness converts the distance between two 0-1 values into a similarity.
func Closeness(a, b float64) float64 {
	return clamp(1-math.Abs(a-b), 0, 1)
}

// Result holds the computed fit of a single profile.
type Result struct {
	Profile  Profile
	FitScore float64
	Label    string
}

// ScoreFit computes the fit of a single profile against clamped signals.
// It is a pure function of its arguments apart from debug logging.
func ScoreFit(p Profile, s Signals, deps Deps) Result {
	log := logger.WithFields(deps.Logger, logger.StringFields(
		logger.StringField{Key: logger.FieldProfile, Value: p.Key},
	)...)

	privacyMatch := Closeness(s.NeedPrivacy/10, p.PrivacyFocus)
	soundnessMatch := Closeness(s.NeedFormal/10, p.SoundnessFocus)
	perfMatch := Closeness(s.NeedThroughput/10, p.PerformanceFocus)

	composite := privacyMatch*privacyWeight +
		soundnessMatch*soundnessWeight +
		perfMatch*perfWeight

	log.Debug("composite score",
		zap.Float64("privacy_match", privacyMatch),
		zap.Float64("soundness_match", soundnessMatch),
		zap.Float64("performance_match", perfMatch),
		zap.Float64("composite", composite),
	)

	for _, penalty := range Penalties() {
		deduction := penalty.Apply(p, s)
		composite -= deduction

		log.Debug("penalty step",
			zap.String("name", penalty.Name()),
			zap.Float64("deduction", deduction),
			zap.Float64("composite", composite),
		)
	}

	fit := clamp(composite, 0, 1)
	label := LabelFor(fit)

	log.Debug("profile scored",
		zap.Float64("fit_score", fit),
		zap.String(logger.FieldLabel, label),
		zap.String("tagline", logger.TruncateForLog(p.Tagline, 60)),
	)

	return Result{
		Profile:  p,
		FitScore: fit,
		Label:    label,
	}
}

// ScoreAll scores every profile in declared order.
func ScoreAll(s Signals, deps Deps) *Results {
	results := &Results{Items: make([]Result, 0, len(profiles))}
	for _, p := range Profiles() {
		results.Items = append(results.Items, ScoreFit(p, s, deps))
	}
	return results
}

// LabelFor maps a fit score to its qualitative band.
func LabelFor(fit float64) string {
	switch {
	case fit >= excellentCutoff:
		return LabelExcellent
	case fit >= goodCutoff:
		return LabelGood
	case fit >= moderateCutoff:
		return LabelModerate
	default:
		return LabelWeak
	}
}

// Round3 rounds a score to three decimals for reporting.
// Ranking always compares unrounded values.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
