package navigator

import "testing"

func TestClampPinsSignalsIntoRange(t *testing.T) {
	signals := Signals{
		NeedPrivacy:      15,
		NeedFormal:       -3,
		NeedThroughput:   10,
		LatencyTolerance: 0,
		CryptoExperience: 5.5,
	}.Clamp()

	if signals.NeedPrivacy != 10 {
		t.Fatalf("expected 15 to clamp to 10, got %v", signals.NeedPrivacy)
	}
	if signals.NeedFormal != 0 {
		t.Fatalf("expected -3 to clamp to 0, got %v", signals.NeedFormal)
	}
	if signals.NeedThroughput != 10 || signals.LatencyTolerance != 0 || signals.CryptoExperience != 5.5 {
		t.Fatalf("expected in-range values to pass through unchanged: %+v", signals)
	}
}

func TestClampedOverflowScoresLikeMaximum(t *testing.T) {
	overflown := DefaultSignals()
	overflown.NeedPrivacy = 15

	maxed := DefaultSignals()
	maxed.NeedPrivacy = 10

	left := ScoreAll(overflown.Clamp(), Deps{})
	right := ScoreAll(maxed.Clamp(), Deps{})

	for i := range left.Items {
		if left.Items[i].FitScore != right.Items[i].FitScore {
			t.Fatalf("expected identical scores for %s: %v vs %v",
				left.Items[i].Profile.Key, left.Items[i].FitScore, right.Items[i].FitScore)
		}
	}
}

func TestDefaultSignalsAreMidline(t *testing.T) {
	defaults := DefaultSignals()

	if defaults != defaults.Clamp() {
		t.Fatalf("expected defaults to be in range already")
	}
	if defaults.NeedPrivacy != 8 || defaults.LatencyTolerance != 5 {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}
}
