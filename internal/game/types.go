// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Verdict: per-letter result of a guess (hit/present/miss/pending).
//   - ScoredLetter, Guess: one evaluated letter and one evaluated row.
//   - Mode, Status: rule set and lifecycle of a session.
//   - Player, Session: mutable per-game state.
//   - State: the client-safe projection (never carries the answer).

package game

// Verdict represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter is not available to match given remaining counts.
//   - "pending": letter has not been evaluated yet (client-side rendering).
type Verdict string

const (
	VerdictHit     Verdict = "hit"
	VerdictPresent Verdict = "present"
	VerdictMiss    Verdict = "miss"
	VerdictPending Verdict = "pending"
)

// ScoredLetter is one guessed letter together with its verdict.
type ScoredLetter struct {
	Char    string  `json:"char"`
	Verdict Verdict `json:"verdict"`
}

// Guess is a fully scored guess row, always WordLength letters long.
type Guess []ScoredLetter

// Mode selects the rule set of a session. Immutable after creation.
type Mode string

const (
	// ModeSingle is the classic single-player game against a fixed answer.
	ModeSingle Mode = "single"
	// ModeMultiplayer is turn-based play against a shared fixed answer.
	ModeMultiplayer Mode = "multiplayer"
	// ModeAbsurdle is the adversarial variant: the answer stays undecided
	// while the engine can still withhold information.
	ModeAbsurdle Mode = "absurdle"
)

// Status is the lifecycle state of a session. Won/Lost are terminal.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Player is one participant in a session.
type Player struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Guesses  []Guess `json:"guesses"`
	IsWinner bool    `json:"isWinner"`
}

// Session holds the full state of one game, including the secret parts.
// It is owned by the store after creation and mutated only through the
// Machine's guess submission.
type Session struct {
	ID   string
	Mode Mode

	// Players is fixed after creation: length 1 for single/absurdle,
	// two or more for multiplayer.
	Players []*Player

	// Answer is the solution word (lowercase). Empty only in absurdle
	// mode while the answer is still unresolved.
	Answer string

	// CandidatePool is the set of words still consistent with all
	// feedback given so far. Non-empty exactly while Answer is
	// unresolved in absurdle mode; nil otherwise.
	CandidatePool []string

	CurrentPlayerIndex int
	CurrentRound       int
	Status             Status

	// WinnerIDs is empty unless Status is won. Multiple entries mean a
	// tied multiplayer round.
	WinnerIDs []string

	MaxRounds  int
	WordLength int
}

// Clone returns a deep copy of the session. Scored guess rows are never
// mutated after they are appended, so sharing them between copies is safe;
// everything that mutates during play is duplicated.
func (s *Session) Clone() *Session {
	c := *s
	c.Players = make([]*Player, len(s.Players))
	for i, p := range s.Players {
		cp := *p
		cp.Guesses = append([]Guess(nil), p.Guesses...)
		c.Players[i] = &cp
	}
	c.WinnerIDs = append([]string(nil), s.WinnerIDs...)
	c.CandidatePool = append([]string(nil), s.CandidatePool...)
	return &c
}

// State is the redacted projection returned to clients. It never includes
// the answer or the candidate pool.
type State struct {
	Mode               Mode      `json:"mode"`
	Players            []*Player `json:"players"`
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	CurrentRound       int       `json:"currentRound"`
	Status             Status    `json:"status"`
	WinnerIDs          []string  `json:"winnerIds"`
	MaxRounds          int       `json:"maxRounds"`
	WordLength         int       `json:"wordLength"`
}

// State builds the client-safe projection of the session.
func (s *Session) State() *State {
	winners := s.WinnerIDs
	if winners == nil {
		winners = []string{}
	}
	return &State{
		Mode:               s.Mode,
		Players:            s.Players,
		CurrentPlayerIndex: s.CurrentPlayerIndex,
		CurrentRound:       s.CurrentRound,
		Status:             s.Status,
		WinnerIDs:          winners,
		MaxRounds:          s.MaxRounds,
		WordLength:         s.WordLength,
	}
}
