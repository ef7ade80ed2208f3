package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spigell/web3-navigator/internal/navigator"
)

func scoredFixture() (navigator.Signals, *navigator.Results, navigator.Summary) {
	signals := navigator.DefaultSignals().Clamp()
	results := navigator.ScoreAll(signals, navigator.Deps{})
	return signals, results, results.Summarize()
}

func TestDocumentHasExactlyThreeSections(t *testing.T) {
	signals, results, summary := scoredFixture()

	out, err := NewDocument(signals, results, summary).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(out), &sections); err != nil {
		t.Fatalf("document is not valid json: %v", err)
	}

	if len(sections) != 3 {
		t.Fatalf("expected 3 top-level sections, got %d", len(sections))
	}
	for _, key := range []string{"inputs", "results", "summary"} {
		if _, ok := sections[key]; !ok {
			t.Fatalf("missing %q section", key)
		}
	}

	var profileResults map[string]ProfileResult
	if err := json.Unmarshal(sections["results"], &profileResults); err != nil {
		t.Fatalf("results section is not a map: %v", err)
	}
	if len(profileResults) != 3 {
		t.Fatalf("expected 3 profile entries, got %d", len(profileResults))
	}
	for _, key := range []string{"aztec", "zama", "soundness"} {
		entry, ok := profileResults[key]
		if !ok {
			t.Fatalf("missing result for %q", key)
		}
		if entry.FitScore < 0 || entry.FitScore > 1 {
			t.Fatalf("fit score out of bounds for %q: %v", key, entry.FitScore)
		}
		if entry.FitLabel == "" || entry.Name == "" {
			t.Fatalf("incomplete entry for %q: %+v", key, entry)
		}
	}
}

func TestJSONOutputIsByteStable(t *testing.T) {
	signals, results, summary := scoredFixture()

	first, err := NewDocument(signals, results, summary).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := NewDocument(signals, results, summary).JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Fatalf("expected identical inputs to render identical bytes")
	}
}

func TestRenderSelectsFormat(t *testing.T) {
	signals, results, summary := scoredFixture()

	human, err := Render(signals, results, summary, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.HasPrefix(human, "{") {
		t.Fatalf("expected human output, got json")
	}

	structured, err := Render(signals, results, summary, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(structured, "{") {
		t.Fatalf("expected json output")
	}
}

func TestHumanReportNamesTheRecommendation(t *testing.T) {
	signals, results, summary := scoredFixture()

	out := Human(signals, results, summary)

	if !strings.Contains(out, "Recommended direction:") {
		t.Fatalf("missing recommendation section:\n%s", out)
	}
	if !strings.Contains(out, summary.BestName) {
		t.Fatalf("expected best profile name %q in report", summary.BestName)
	}

	best := results.FindByKey(summary.Best)
	if !strings.Contains(out, best.Profile.Tagline) {
		t.Fatalf("expected tagline of the best profile in report")
	}

	for _, key := range []string{"aztec", "zama", "soundness"} {
		if !strings.Contains(out, "("+key+")") {
			t.Fatalf("expected %q in the ranked list", key)
		}
	}
}

func TestHumanReportListsProfilesInRankOrder(t *testing.T) {
	signals, results, summary := scoredFixture()

	out := Human(signals, results, summary)

	ranked := results.Rank()
	last := -1
	for _, r := range ranked {
		pos := strings.Index(out, "("+r.Profile.Key+")")
		if pos <= last {
			t.Fatalf("expected %s to appear after the previous entry", r.Profile.Key)
		}
		last = pos
	}
}
