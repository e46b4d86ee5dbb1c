// internal/httpserver/server.go
//
// HTTP server wiring for the game backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /api/games, POST /api/games/guess,
//     GET /api/games/{gameID}, GET /api/games/{gameID}/answer.
//   - Results endpoint: GET /api/results/recent.
//   - Mapping engine error kinds to HTTP status codes.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Game state responses are the redacted projection; the answer is only
//     reachable through the /answer endpoint, which the engine gates.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/wordarena/go-server/internal/game"
	"github.com/wordarena/go-server/internal/results"
	"github.com/wordarena/go-server/internal/words"
)

// Server bundles router, game machine, dictionary, and the results log.
type Server struct {
	r       *chi.Mux
	machine *game.Machine
	dict    *words.Dictionary
	results *results.Recorder // may be nil; results logging is optional
}

// New constructs a Server, installs middleware, and registers routes.
func New(machine *game.Machine, dict *words.Dictionary, rec *results.Recorder) *Server {
	s := &Server{r: chi.NewRouter(), machine: machine, dict: dict, results: rec}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsFromEnv)                     // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordarena-go","endpoints":["/health","POST /api/games","POST /api/games/guess","GET /api/games/{gameId}","GET /api/games/{gameId}/answer"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := s.dict.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"answers": a, "allowed": g})
	})

	// --- game API ---
	s.r.Route("/api/games", func(r chi.Router) {
		r.Post("/", s.handleCreateGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/{gameID}", s.handleGetGame)
		r.Get("/{gameID}/answer", s.handleGetAnswer)
	})

	// --- results API ---
	s.r.Get("/api/results/recent", s.handleRecentResults)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to http://localhost:5173.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// createGameReq is the payload for POST /api/games.
type createGameReq struct {
	MaxRounds   int      `json:"maxRounds"`
	WordLength  int      `json:"wordLength"`
	Mode        string   `json:"mode"` // "single" | "multiplayer" | "absurdle"
	PlayerNames []string `json:"playerNames,omitempty"`
	Answer      string   `json:"answer,omitempty"` // optional fixed answer (testing)
}

// createGameRes is returned with 201 Created.
type createGameRes struct {
	GameID    string      `json:"gameId"`
	GameState *game.State `json:"gameState"`
}

// handleCreateGame creates a new session from the request config.
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Mode == string(game.ModeMultiplayer) && len(req.PlayerNames) != 2 {
		writeError(w, http.StatusBadRequest, "multiplayer requires exactly 2 player names")
		return
	}
	sess, err := s.machine.NewSession(r.Context(), game.Config{
		Mode:        game.Mode(req.Mode),
		MaxRounds:   req.MaxRounds,
		WordLength:  req.WordLength,
		PlayerNames: req.PlayerNames,
		Answer:      req.Answer,
	})
	if err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(createGameRes{GameID: sess.ID, GameState: sess.State()})
}

// guessReq is the payload for POST /api/games/guess.
type guessReq struct {
	GameID   string `json:"gameId"`
	Guess    string `json:"guess"`
	PlayerID string `json:"playerId,omitempty"`
}

// guessRes pairs the updated state with the scored guess row.
type guessRes struct {
	GameState   *game.State `json:"gameState"`
	ScoredGuess game.Guess  `json:"scoredGuess"`
}

// handleGuess applies a guess and, when the game just finished, logs the
// result (best effort, non-fatal if it fails).
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, scored, err := s.machine.SubmitGuess(r.Context(), req.GameID, req.Guess, req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	if sess.Status != game.StatusPlaying && s.results != nil {
		res := results.Result{
			GameID:     sess.ID,
			Mode:       string(sess.Mode),
			Status:     string(sess.Status),
			Rounds:     sess.CurrentRound,
			Winners:    len(sess.WinnerIDs),
			FinishedAt: time.Now().UTC(),
		}
		if err := s.results.Record(r.Context(), res); err != nil {
			log.Warn().Err(err).Str("gameId", sess.ID).Msg("record result")
		}
	}

	_ = json.NewEncoder(w).Encode(guessRes{GameState: sess.State(), ScoredGuess: scored})
}

// handleGetGame returns the redacted state of a game. Read-only.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.machine.Get(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]*game.State{"gameState": sess.State()})
}

// handleGetAnswer reveals the answer for finished games only.
func (s *Server) handleGetAnswer(w http.ResponseWriter, r *http.Request) {
	answer, err := s.machine.RevealAnswer(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		writeGameError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"answer": answer})
}

// ------------------------------ RESULTS ------------------------------------

// handleRecentResults lists the most recently finished games.
func (s *Server) handleRecentResults(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		_ = json.NewEncoder(w).Encode([]results.Result{})
		return
	}
	out, err := s.results.Recent(r.Context(), 50)
	if err != nil {
		log.Error().Err(err).Msg("query recent results")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	if out == nil {
		out = []results.Result{}
	}
	_ = json.NewEncoder(w).Encode(out)
}

// ------------------------------ errors -------------------------------------

// writeGameError maps an engine error kind to an HTTP status code.
func writeGameError(w http.ResponseWriter, err error) {
	var ge *game.Error
	if !errors.As(err, &ge) {
		log.Error().Err(err).Msg("unexpected engine error")
		writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	switch ge.Kind {
	case game.KindValidation, game.KindTurn, game.KindState:
		writeError(w, http.StatusBadRequest, ge.Message)
	case game.KindNotFound:
		writeError(w, http.StatusNotFound, ge.Message)
	default:
		log.Error().Err(ge).Msg("engine invariant violation")
		writeError(w, http.StatusInternalServerError, ge.Message)
	}
}

// writeError emits a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
