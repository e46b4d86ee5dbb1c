package game

import "testing"

func pattern(vs ...Verdict) Guess {
	g := make(Guess, len(vs))
	for i, v := range vs {
		g[i] = ScoredLetter{Char: "x", Verdict: v}
	}
	return g
}

// A single hit must outrank any number of presents a five-letter word can
// carry, otherwise the selector could leak a hit while believing it chose
// the least helpful feedback.
func TestHelpfulnessHitDominance(t *testing.T) {
	oneHit := helpfulness(pattern(VerdictHit, VerdictMiss, VerdictMiss, VerdictMiss, VerdictMiss))
	allPresent := helpfulness(pattern(VerdictPresent, VerdictPresent, VerdictPresent, VerdictPresent, VerdictPresent))
	if oneHit != 6 {
		t.Fatalf("one hit in a 5-letter word = %d, want 6", oneHit)
	}
	if allPresent != 5 {
		t.Fatalf("five presents = %d, want 5", allPresent)
	}
	if oneHit <= allPresent {
		t.Fatalf("hit (%d) must outrank all-present (%d)", oneHit, allPresent)
	}

	// The dominance must survive longer words too.
	longHit := helpfulness(pattern(VerdictHit, VerdictMiss, VerdictMiss, VerdictMiss, VerdictMiss, VerdictMiss, VerdictMiss))
	longPresent := helpfulness(pattern(VerdictPresent, VerdictPresent, VerdictPresent, VerdictPresent, VerdictPresent, VerdictPresent, VerdictPresent))
	if longHit <= longPresent {
		t.Fatalf("7-letter words: hit (%d) must outrank all-present (%d)", longHit, longPresent)
	}
}

func TestSelectWithholdsWhenMultipleSilentCandidates(t *testing.T) {
	pool := []string{"buggy", "crazy", "fancy", "fresh", "hello", "panic", "quite", "world"}
	sel, err := selectAdversarial("hello", pool)
	if err != nil {
		t.Fatal(err)
	}
	if sel.resolved != "" {
		t.Fatalf("expected no resolution, got %q", sel.resolved)
	}
	for _, l := range sel.pattern {
		if l.Verdict != VerdictMiss {
			t.Fatalf("withheld pattern must be all miss, got %v", verdicts(sel.pattern))
		}
	}
	want := map[string]bool{"buggy": true, "crazy": true, "fancy": true, "panic": true}
	if len(sel.pool) != len(want) {
		t.Fatalf("narrowed pool = %v, want the 4 silent candidates", sel.pool)
	}
	inPool := map[string]bool{}
	for _, w := range pool {
		inPool[w] = true
	}
	for _, w := range sel.pool {
		if !want[w] {
			t.Errorf("unexpected candidate %q", w)
		}
		if !inPool[w] {
			t.Errorf("narrowed pool member %q not drawn from input pool", w)
		}
	}
}

func TestSelectForcedResolutionPicksLexicographicMinimum(t *testing.T) {
	// crane leaks the same amount against both words, so the engine must
	// commit; beach is the lexicographically smaller of the tie.
	sel, err := selectAdversarial("crane", []string{"peach", "beach"})
	if err != nil {
		t.Fatal(err)
	}
	if sel.resolved != "beach" {
		t.Fatalf("resolved = %q, want beach", sel.resolved)
	}
	if sel.pool != nil {
		t.Fatalf("pool should be cleared after resolution, got %v", sel.pool)
	}
	want := Score("crane", "beach")
	for i := range want {
		if sel.pattern[i] != want[i] {
			t.Fatalf("pattern must be the true comparison against the resolved answer")
		}
	}
}

func TestSelectNarrowsThenResolvesLeastHelpful(t *testing.T) {
	// fancy scores a hit against fresh while buggy and panic stay silent,
	// so the pool narrows to the two silent candidates.
	sel, err := selectAdversarial("fresh", []string{"buggy", "fancy", "panic"})
	if err != nil {
		t.Fatal(err)
	}
	if sel.resolved != "" {
		t.Fatalf("unexpected resolution to %q", sel.resolved)
	}
	if len(sel.pool) != 2 {
		t.Fatalf("narrowed pool = %v, want [buggy panic]", sel.pool)
	}

	// Against crazy nothing stays silent (panic leaks two presents, buggy
	// a hit), so the engine resolves to the least helpful candidate.
	sel, err = selectAdversarial("crazy", []string{"buggy", "panic"})
	if err != nil {
		t.Fatal(err)
	}
	if sel.resolved != "panic" {
		t.Fatalf("resolved = %q, want panic", sel.resolved)
	}
}

func TestSelectEmptyPoolIsInternalError(t *testing.T) {
	_, err := selectAdversarial("crane", nil)
	ge, ok := err.(*Error)
	if !ok || ge.Kind != KindInternal {
		t.Fatalf("expected KindInternal error, got %v", err)
	}
}
