// internal/game/adversary.go
//
// Adversarial feedback selection for absurdle mode. Instead of scoring
// against a fixed answer, the engine keeps a pool of candidate answers and
// answers each guess with the least helpful feedback any remaining
// candidate could produce, narrowing the pool as it goes.

package game

// selection is the outcome of one adversarial turn.
type selection struct {
	// pattern is the feedback shown to the player. Either a real
	// comparison against the resolved answer or an all-miss row.
	pattern Guess
	// pool is the narrowed candidate pool; nil once resolved is set.
	pool []string
	// resolved is the committed answer, or empty while still withholding.
	resolved string
}

// hitWeight returns the helpfulness weight of a single hit for words of
// the given length. A hit must outrank any feedback made purely of
// presents, so the weight exceeds the word length; at the standard length
// of five this is 6.
func hitWeight(wordLen int) int { return wordLen + 1 }

// helpfulness measures how much information a feedback pattern reveals.
// Lower is better for the adversary.
func helpfulness(g Guess) int {
	hits, presents := 0, 0
	for _, l := range g {
		switch l.Verdict {
		case VerdictHit:
			hits++
		case VerdictPresent:
			presents++
		}
	}
	return hitWeight(len(g))*hits + presents
}

// selectAdversarial computes the least helpful valid feedback for guess
// given the remaining candidate pool.
//
// Every candidate is scored against the guess and the candidates with the
// minimal helpfulness form the minimal set. Three outcomes:
//
//   - minimal helpfulness > 0: any remaining candidate would leak some
//     information, so the engine commits to an answer. The resolved answer
//     is the lexicographically smallest member of the minimal set, which
//     keeps resolution independent of pool ordering.
//   - minimal helpfulness == 0 with a single candidate: only one word can
//     still produce a no-information reply; commit to it and return its
//     real pattern.
//   - otherwise: withhold everything. The reply is an all-miss row and the
//     pool shrinks to the minimal set.
func selectAdversarial(guess string, pool []string) (selection, error) {
	if len(pool) == 0 {
		return selection{}, Errorf(KindInternal, "adversarial candidate pool is empty")
	}

	minScore := -1
	var minimalSet []string
	for _, cand := range pool {
		h := helpfulness(Score(guess, cand))
		switch {
		case minScore < 0 || h < minScore:
			minScore = h
			minimalSet = append(minimalSet[:0], cand)
		case h == minScore:
			minimalSet = append(minimalSet, cand)
		}
	}

	if minScore > 0 || len(minimalSet) == 1 {
		resolved := minimalSet[0]
		for _, w := range minimalSet[1:] {
			if w < resolved {
				resolved = w
			}
		}
		return selection{pattern: Score(guess, resolved), resolved: resolved}, nil
	}

	pattern := make(Guess, len(guess))
	for i := 0; i < len(guess); i++ {
		pattern[i] = ScoredLetter{Char: string(guess[i]), Verdict: VerdictMiss}
	}
	return selection{pattern: pattern, pool: minimalSet}, nil
}
