// internal/game/errors.go
//
// Typed errors for the game engine. Each error carries a Kind so the HTTP
// layer can map failures to status codes without matching on message text.

package game

import "fmt"

// Kind classifies an engine error.
type Kind int

const (
	// KindValidation covers malformed guesses and malformed configuration.
	KindValidation Kind = iota + 1
	// KindTurn is returned when the wrong player acts in multiplayer.
	KindTurn
	// KindState is returned when a finished game receives a guess.
	KindState
	// KindNotFound is returned for unknown session ids.
	KindNotFound
	// KindInternal signals an invariant violation (e.g. empty pool).
	KindInternal
)

// Error is the engine's error type.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
