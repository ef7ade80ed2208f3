// Package report renders scoring results as a human-readable summary or as a
// structured json document.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spigell/web3-navigator/internal/navigator"
)

const scoreBarWidth = 20

// Document is the structured report emitted in json mode. It has exactly
// three sections: the clamped inputs, the per-profile results and the summary.
type Document struct {
	Inputs  navigator.Signals        `json:"inputs"`
	Results map[string]ProfileResult `json:"results"`
	Summary navigator.Summary        `json:"summary"`
}

// ProfileResult is a single profile entry of the json document.
type ProfileResult struct {
	Name             string  `json:"name"`
	Tagline          string  `json:"tagline"`
	Description      string  `json:"description"`
	PrivacyFocus     float64 `json:"privacyFocus"`
	SoundnessFocus   float64 `json:"soundnessFocus"`
	PerformanceFocus float64 `json:"performanceFocus"`
	Complexity       float64 `json:"complexity"`
	FitScore         float64 `json:"fitScore"`
	FitLabel         string  `json:"fitLabel"`
}

// NewDocument assembles the structured document from a scoring pass.
func NewDocument(signals navigator.Signals, results *navigator.Results, summary navigator.Summary) *Document {
	doc := &Document{
		Inputs:  signals,
		Results: make(map[string]ProfileResult, results.Len()),
		Summary: summary,
	}

	for _, r := range results.Items {
		doc.Results[r.Profile.Key] = ProfileResult{
			Name:             r.Profile.Name,
			Tagline:          r.Profile.Tagline,
			Description:      r.Profile.Description,
			PrivacyFocus:     r.Profile.PrivacyFocus,
			SoundnessFocus:   r.Profile.SoundnessFocus,
			PerformanceFocus: r.Profile.PerformanceFocus,
			Complexity:       r.Profile.Complexity,
			FitScore:         navigator.Round3(r.FitScore),
			FitLabel:         r.Label,
		}
	}

	return doc
}

// JSON renders the document with indented, byte-stable output. Map keys are
// emitted in sorted order, so identical inputs produce identical bytes.
func (d *Document) JSON() (string, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling the report: %w", err)
	}
	return string(out) + "\n", nil
}

// Render produces the report in the requested format.
func Render(signals navigator.Signals, results *navigator.Results, summary navigator.Summary, asJSON bool) (string, error) {
	if asJSON {
		return NewDocument(signals, results, summary).JSON()
	}
	return Human(signals, results, summary), nil
}

// Human renders the ranked report for terminal output.
func Human(signals navigator.Signals, results *navigator.Results, summary navigator.Summary) string {
	var b strings.Builder

	b.WriteString("🧭 web3-navigator\n\n")

	b.WriteString("Input profile:\n")
	fmt.Fprintf(&b, "  Need privacy             : %g / 10\n", signals.NeedPrivacy)
	fmt.Fprintf(&b, "  Need formal verification : %g / 10\n", signals.NeedFormal)
	fmt.Fprintf(&b, "  Need throughput          : %g / 10\n", signals.NeedThroughput)
	fmt.Fprintf(&b, "  Latency tolerance        : %g / 10\n", signals.LatencyTolerance)
	fmt.Fprintf(&b, "  Team crypto experience   : %g / 10\n", signals.CryptoExperience)
	b.WriteString("\n")

	b.WriteString("Fit scores by architecture:\n")
	for _, r := range results.Rank() {
		bar := strings.Repeat("█", int(r.FitScore*scoreBarWidth))
		fmt.Fprintf(&b, "- %s (%s): %.3f (%s) %s\n",
			r.Profile.Name, r.Profile.Key, navigator.Round3(r.FitScore), r.Label, bar)
	}
	b.WriteString("\n")

	b.WriteString("Recommended direction:\n")
	fmt.Fprintf(&b, "  → %s (%s)\n\n", summary.BestName, summary.Best)

	if best := results.FindByKey(summary.Best); best != nil {
		b.WriteString("Why this might fit:\n")
		fmt.Fprintf(&b, "  %s\n\n", best.Profile.Tagline)
		b.WriteString("Short description:\n")
		fmt.Fprintf(&b, "  %s\n", best.Profile.Description)
	}

	return b.String()
}
