// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load answer and allowed guess lists from environment-provided files
//     or fall back to embedded defaults.
//   - Index answers per word length (the engine supports variable-length
//     games) and keep a set for quick allowed-guess lookups.
//   - Supply RandomAnswer, Answers, IsAllowed, and Stats.
//
// Word Lists:
//   - "answers": canonical solutions, bucketed by length.
//   - "allowed": valid guesses (always includes answers).
//
// Environment variables:
//   WORDS_ANSWERS_FILE=/path/to/answers.txt
//   WORDS_ALLOWED_FILE=/path/to/allowed.txt
//
// Constraints:
//   • Words must be alphabetic (a-z), 2 to 15 letters.
//   • Lists are normalized to lowercase.
//   • Answers per length are kept sorted so adversarial candidate pools
//     start from a deterministic order.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	"os"
	"sort"
	"strings"
)

const (
	minWordLen = 2
	maxWordLen = 15
)

// --- embedded tiny defaults (ensures server runs even if no files configured) ---

//go:embed default_answers.txt
var embeddedAnswers string

//go:embed default_allowed.txt
var embeddedAllowed string

// Dictionary holds the loaded word lists. Construct one via Load or
// FromLists; instances are immutable after construction and safe for
// concurrent use.
type Dictionary struct {
	answersByLen map[int][]string    // sorted canonical answers per length
	allowedSet   map[string]struct{} // answers ∪ guesses
	answerCount  int
}

// Load builds a Dictionary from the configured files, falling back to the
// embedded defaults. Returns an error if the answers list ends up empty.
func Load() (*Dictionary, error) {
	var ansList, allowList []string

	answersPath := os.Getenv("WORDS_ANSWERS_FILE")
	allowedPath := os.Getenv("WORDS_ALLOWED_FILE")

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		var err error
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}

	// Case 2: only one file provided → use it for both lists
	case answersPath != "":
		var err error
		ansList, err = readWordFile(answersPath)
		if err != nil {
			return nil, err
		}
		allowList = ansList
	case allowedPath != "":
		var err error
		allowList, err = readWordFile(allowedPath)
		if err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: fallback to embedded defaults
	default:
		ansList = normalizeLines(embeddedAnswers)
		allowList = normalizeLines(embeddedAllowed)
	}

	d := FromLists(ansList, allowList)
	if d.answerCount == 0 {
		return nil, errors.New("words: answers list is empty")
	}
	return d, nil
}

// FromLists builds a Dictionary from in-memory lists. Invalid entries are
// dropped; answers are always allowed guesses. Intended for tests and for
// callers that manage their own word sources.
func FromLists(answers, allowed []string) *Dictionary {
	d := &Dictionary{
		answersByLen: make(map[int][]string),
		allowedSet:   make(map[string]struct{}),
	}
	for _, w := range answers {
		w = strings.TrimSpace(strings.ToLower(w))
		if !valid(w) {
			continue
		}
		d.answersByLen[len(w)] = append(d.answersByLen[len(w)], w)
		d.allowedSet[w] = struct{}{}
		d.answerCount++
	}
	for _, list := range d.answersByLen {
		sort.Strings(list)
	}
	for _, w := range allowed {
		w = strings.TrimSpace(strings.ToLower(w))
		if valid(w) {
			d.allowedSet[w] = struct{}{}
		}
	}
	return d
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if valid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string into a slice of
// valid lowercase words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if valid(w) {
			out = append(out, w)
		}
	}
	return out
}

// valid reports whether w is an acceptable dictionary word.
func valid(w string) bool {
	if len(w) < minWordLen || len(w) > maxWordLen {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// RandomAnswer returns a cryptographically random answer of the given
// length. ok is false when no answers of that length exist.
func (d *Dictionary) RandomAnswer(length int) (string, bool) {
	list := d.answersByLen[length]
	if len(list) == 0 {
		return "", false
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[nBig.Int64()], true
}

// Answers returns a copy of the sorted answer list for the given length.
func (d *Dictionary) Answers(length int) []string {
	return append([]string(nil), d.answersByLen[length]...)
}

// Stats returns counts of loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return d.answerCount, len(d.allowedSet)
}
