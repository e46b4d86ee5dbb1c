// internal/game/machine.go
//
// The per-session state machine. A Machine orchestrates a guess submission
// end-to-end: load the session, validate the request against the session's
// mode and turn order, score (directly or adversarially), append the scored
// guess, advance turn/round, and evaluate win/loss.
//
// Validation rules:
//   - Session must exist and be in the playing state.
//   - Guess must be exactly WordLength letters, a-z, and a dictionary word.
//   - In multiplayer, an acting player id (when supplied) must match the
//     player whose turn it is. Omitting the id skips turn enforcement,
//     which supports single-viewport pass-and-play.
//
// All validation completes before the first state write, so a failed
// submission never leaves a session partially mutated.
//
// State transitions:
//   - single/absurdle: a correct guess wins immediately; otherwise the
//     round increments and the game is lost once MaxRounds is reached.
//   - multiplayer: the turn index rotates after every guess. Win/loss is
//     evaluated only when the index wraps back to zero, so every player in
//     a round gets a guess before the round settles; all players who hit
//     the answer within the round win together.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Store is the session persistence interface consumed by the Machine.
// Implementations must serialize Mutate calls per session id; guesses
// against distinct sessions may run fully in parallel. Sessions returned
// from Get and Mutate are snapshots the caller may read or marshal without
// further locking.
type Store interface {
	// Save persists a newly created session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a snapshot of a session by id, or a KindNotFound error.
	Get(ctx context.Context, id string) (*Session, error)

	// Mutate applies fn to the session under exclusive access. If fn
	// returns an error the session is returned unchanged.
	Mutate(ctx context.Context, id string, fn func(*Session) error) (*Session, error)
}

// Dictionary supplies word lists to the engine.
type Dictionary interface {
	// IsAllowed reports whether w is a valid guess.
	IsAllowed(w string) bool
	// RandomAnswer returns a random answer of the given length, or
	// ok=false if no answers of that length exist.
	RandomAnswer(length int) (answer string, ok bool)
	// Answers returns all answers of the given length in sorted order.
	Answers(length int) []string
}

// Config describes a session to create.
type Config struct {
	Mode        Mode
	MaxRounds   int
	WordLength  int
	PlayerNames []string
	// Answer optionally fixes the solution (testing aid, single mode only).
	Answer string
}

// Machine drives guess submissions for all sessions in a store.
type Machine struct {
	store Store
	dict  Dictionary
}

// NewMachine constructs a Machine on top of a store and a dictionary.
func NewMachine(store Store, dict Dictionary) *Machine {
	return &Machine{store: store, dict: dict}
}

// NewSession validates cfg, builds a session, and saves it.
func (m *Machine) NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.MaxRounds < 1 {
		return nil, Errorf(KindValidation, "maxRounds must be at least 1")
	}
	if cfg.WordLength < 1 {
		return nil, Errorf(KindValidation, "wordLength must be at least 1")
	}

	var players []*Player
	switch cfg.Mode {
	case ModeSingle, ModeAbsurdle:
		name := "Player 1"
		if len(cfg.PlayerNames) > 0 && strings.TrimSpace(cfg.PlayerNames[0]) != "" {
			name = strings.TrimSpace(cfg.PlayerNames[0])
		}
		players = []*Player{newPlayer(name)}
	case ModeMultiplayer:
		if len(cfg.PlayerNames) < 2 {
			return nil, Errorf(KindValidation, "multiplayer requires at least 2 player names")
		}
		for _, name := range cfg.PlayerNames {
			name = strings.TrimSpace(name)
			if name == "" {
				return nil, Errorf(KindValidation, "player names must not be empty")
			}
			players = append(players, newPlayer(name))
		}
	default:
		return nil, Errorf(KindValidation, "unknown mode %q", cfg.Mode)
	}

	s := &Session{
		ID:         randomID(),
		Mode:       cfg.Mode,
		Players:    players,
		Status:     StatusPlaying,
		MaxRounds:  cfg.MaxRounds,
		WordLength: cfg.WordLength,
	}

	switch cfg.Mode {
	case ModeAbsurdle:
		pool := m.dict.Answers(cfg.WordLength)
		if len(pool) == 0 {
			return nil, Errorf(KindValidation, "no answers of length %d", cfg.WordLength)
		}
		s.CandidatePool = append([]string(nil), pool...)
	default:
		answer := strings.ToLower(strings.TrimSpace(cfg.Answer))
		if answer != "" {
			if cfg.Mode != ModeSingle {
				return nil, Errorf(KindValidation, "fixed answers are only supported in single mode")
			}
			if len(answer) != cfg.WordLength || !isAlpha(answer) || !m.dict.IsAllowed(answer) {
				return nil, Errorf(KindValidation, "fixed answer must be a dictionary word of length %d", cfg.WordLength)
			}
		} else {
			var ok bool
			answer, ok = m.dict.RandomAnswer(cfg.WordLength)
			if !ok {
				return nil, Errorf(KindValidation, "no answers of length %d", cfg.WordLength)
			}
		}
		s.Answer = answer
	}

	if err := m.store.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Get loads a session by id.
func (m *Machine) Get(ctx context.Context, id string) (*Session, error) {
	return m.store.Get(ctx, id)
}

// SubmitGuess applies one guess to the session and returns the updated
// session together with the scored guess.
func (m *Machine) SubmitGuess(ctx context.Context, sessionID, rawGuess, playerID string) (*Session, Guess, error) {
	var scored Guess
	s, err := m.store.Mutate(ctx, sessionID, func(s *Session) error {
		g, err := m.applyGuess(s, rawGuess, playerID)
		if err != nil {
			return err
		}
		scored = g
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return s, scored, nil
}

// applyGuess holds the whole submission pipeline. Called under the store's
// per-session lock.
func (m *Machine) applyGuess(s *Session, rawGuess, playerID string) (Guess, error) {
	if s.Status != StatusPlaying {
		return nil, Errorf(KindState, "game is already %s", s.Status)
	}

	guess := strings.ToLower(strings.TrimSpace(rawGuess))
	if len(guess) != s.WordLength || !isAlpha(guess) {
		return nil, Errorf(KindValidation, "guess must be %d letters a-z", s.WordLength)
	}
	if !m.dict.IsAllowed(guess) {
		return nil, Errorf(KindValidation, "%q is not in the word list", guess)
	}

	player := s.Players[s.CurrentPlayerIndex]
	if s.Mode == ModeMultiplayer && playerID != "" && playerID != player.ID {
		return nil, Errorf(KindTurn, "it is %s's turn", player.Name)
	}

	var scored Guess
	if s.Mode == ModeAbsurdle && s.Answer == "" {
		sel, err := selectAdversarial(guess, s.CandidatePool)
		if err != nil {
			return nil, err
		}
		scored = sel.pattern
		s.CandidatePool = sel.pool
		if sel.resolved != "" {
			s.Answer = sel.resolved
			s.CandidatePool = nil
			// Re-score against the now-fixed answer. Equal to the
			// selector's pattern for the chosen candidate; recomputing
			// keeps one source of truth for the stored row.
			scored = Score(guess, s.Answer)
		}
	} else {
		scored = Score(guess, s.Answer)
	}

	player.Guesses = append(player.Guesses, scored)

	// An unresolved absurdle game can never record a win.
	won := s.Answer != "" && guess == s.Answer
	if won {
		player.IsWinner = true
	}

	switch s.Mode {
	case ModeMultiplayer:
		s.CurrentPlayerIndex = (s.CurrentPlayerIndex + 1) % len(s.Players)
		if s.CurrentPlayerIndex == 0 {
			s.CurrentRound++
			var winners []string
			for _, p := range s.Players {
				if p.IsWinner {
					winners = append(winners, p.ID)
				}
			}
			if len(winners) > 0 {
				s.Status = StatusWon
				s.WinnerIDs = winners
			} else if s.CurrentRound >= s.MaxRounds {
				s.Status = StatusLost
			}
		}
	default:
		if won {
			s.Status = StatusWon
			s.WinnerIDs = []string{player.ID}
		} else {
			s.CurrentRound++
			if s.CurrentRound >= s.MaxRounds {
				s.Status = StatusLost
			}
		}
	}
	return scored, nil
}

// RevealAnswer returns the answer for a finished game. For an absurdle
// session that ended unresolved with a single candidate left, that
// candidate is the de-facto answer. In all other cases the answer stays
// secret and a KindNotFound error is returned.
func (m *Machine) RevealAnswer(ctx context.Context, id string) (string, error) {
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if s.Answer != "" && s.Status != StatusPlaying {
		return s.Answer, nil
	}
	if s.Mode == ModeAbsurdle && s.Answer == "" && len(s.CandidatePool) == 1 {
		return s.CandidatePool[0], nil
	}
	return "", Errorf(KindNotFound, "answer is not available while the game is in progress")
}

// newPlayer builds a player with a fresh UUID.
func newPlayer(name string) *Player {
	return &Player{ID: uuid.NewString(), Name: name, Guesses: []Guess{}}
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
