// internal/game/scorer.go
//
// Pure guess scoring. Score implements the standard two-pass algorithm
// that is correct in the presence of repeated letters:
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Miss.
//
// For any letter c this guarantees
//   count(Hit,c) + count(Present,c) <= min(count(c,guess), count(c,answer)).

package game

// Score compares guess to answer and returns the per-letter verdicts.
// Both strings must be the same length and lowercase a-z; inputs are
// validated by the caller.
func Score(guess, answer string) Guess {
	n := len(guess)
	res := make(Guess, n)

	// Letter frequency for the non-hit answer positions (a-z).
	var counts [26]int

	// First pass: mark hits and collect counts for remaining answer letters.
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			res[i] = ScoredLetter{Char: string(guess[i]), Verdict: VerdictHit}
		} else {
			counts[idx(answer[i])]++
		}
	}

	// Second pass: resolve presents/misses for non-hit tiles.
	for i := 0; i < n; i++ {
		if res[i].Verdict == VerdictHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = ScoredLetter{Char: string(guess[i]), Verdict: VerdictPresent}
			counts[j]--
		} else {
			res[i] = ScoredLetter{Char: string(guess[i]), Verdict: VerdictMiss}
		}
	}
	return res
}

// idx maps a lowercase ASCII letter byte to 0..25.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
