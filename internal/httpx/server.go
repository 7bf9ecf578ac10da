// Package httpx exposes the chess engine over a small JSON API.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"chesscore/internal/chess"
)

// Server wires the HTTP layer to a single chess.Board session.
type Server struct {
	boardMu sync.Mutex
	board   chess.Board

	srvMu sync.Mutex
	srv   *http.Server
}

const (
	maxJSONBodyBytes int64 = 1 << 20
	apiCSP                 = "default-src 'none'; frame-ancestors 'none'; base-uri 'none'"
)

// NewServer builds a Server seeded with the standard starting position.
func NewServer() *Server {
	return &Server{board: chess.InitBoard()}
}

// Listen starts the HTTP server.
func (s *Server) Listen(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close attempts a graceful shutdown of the HTTP server.
func (s *Server) Close(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// routes configures the router and wraps it in request logging.
func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/state", s.withJSON(s.handleState)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/api/move", s.withJSON(s.handleMove)).Methods(http.MethodPost)
	r.HandleFunc("/api/reset", s.withJSON(s.handleReset)).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return handlers.LoggingHandler(os.Stdout, r)
}

// ---- JSON helpers ----

func (s *Server) withJSON(h func(http.ResponseWriter, *http.Request)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyAPISecurityHeaders(w.Header())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
		}
		h(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	writeJSON(w, map[string]string{"error": msg})
}

func applyAPISecurityHeaders(h http.Header) {
	h.Set("Content-Security-Policy", apiCSP)
	h.Set("Cross-Origin-Opener-Policy", "same-origin")
	h.Set("Cross-Origin-Embedder-Policy", "require-corp")
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// ---- API: state ----

type stateView struct {
	FEN       string `json:"fen"`
	ToPlay    string `json:"to_play"`
	Check     bool   `json:"check"`
	Checkmate bool   `json:"checkmate"`
	Status    string `json:"status"`
}

// viewLocked renders the current board; callers must hold boardMu.
func (s *Server) viewLocked() stateView {
	return stateView{
		FEN:       chess.FENEncode(s.board),
		ToPlay:    s.board.ToPlay().String(),
		Check:     s.board.Check(),
		Checkmate: s.board.Checkmate(),
		Status:    chess.Status(s.board),
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.boardMu.Lock()
	view := s.viewLocked()
	s.boardMu.Unlock()
	writeJSON(w, map[string]any{"state": view})
}

// ---- API: move ----

type moveBody struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Castle string `json:"castle"` // "kingside" or "queenside"; alternative to from/to
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var body moveBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if isBodyTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	move, ok := parseMoveBody(body)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid move")
		return
	}

	s.boardMu.Lock()
	next, played := chess.Play(s.board, move)
	if played {
		s.board = next
	}
	view := s.viewLocked()
	s.boardMu.Unlock()

	if !played {
		writeError(w, http.StatusBadRequest, "illegal move")
		return
	}
	writeJSON(w, map[string]any{"state": view})
}

func parseMoveBody(body moveBody) (chess.Move, bool) {
	switch strings.ToLower(strings.TrimSpace(body.Castle)) {
	case "kingside":
		return chess.NewCastleMove(chess.Kingside), true
	case "queenside":
		return chess.NewCastleMove(chess.Queenside), true
	case "":
		from, ok := chess.FENToSquare(body.From)
		if !ok {
			return chess.Move{}, false
		}
		to, ok := chess.FENToSquare(body.To)
		if !ok {
			return chess.Move{}, false
		}
		return chess.NewStandardMove(from, to), true
	default:
		return chess.Move{}, false
	}
}

// ---- API: reset ----

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if r.Body != nil {
		r.Body.Close()
	}
	s.boardMu.Lock()
	s.board = chess.InitBoard()
	view := s.viewLocked()
	s.boardMu.Unlock()
	writeJSON(w, map[string]any{"state": view})
}
