// Package server exposes a board over HTTP: a JSON API for reads and
// mutations plus the rendered document at the root. Every mutation is a
// load, one aggregate operation, save.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"lanes/internal/board"
	"lanes/internal/storage"
)

// Server serves one board from a storage backend. A single mutex
// serializes mutating requests; the board model itself assumes one
// writer at a time.
type Server struct {
	store  storage.Store
	logger *log.Logger
	mu     sync.Mutex
	router *mux.Router
}

// New wires the routes for a board server.
func New(store storage.Store, logger *log.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.router.HandleFunc("/api/board", s.handleGetBoard).Methods("GET")
	s.router.HandleFunc("/api/columns", s.handleAddColumn).Methods("POST")
	s.router.HandleFunc("/api/cards", s.handleAddCard).Methods("POST")
	s.router.HandleFunc("/api/cards/move", s.handleMoveCard).Methods("POST")
	s.router.HandleFunc("/", s.handleDocument).Methods("GET")
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// cardJSON is the wire form of a card. Status carries the document
// encoding: "x" for done, " " (or empty on input) for incomplete.
type cardJSON struct {
	Column string `json:"column"`
	Status string `json:"status"`
	Title  string `json:"title"`
	Date   string `json:"date,omitempty"`
	Time   string `json:"time,omitempty"`
}

type boardJSON struct {
	Columns []string   `json:"columns"`
	Cards   []cardJSON `json:"cards"`
}

func toCardJSON(c board.Card) cardJSON {
	return cardJSON{
		Column: c.Column(),
		Status: c.Status().String(),
		Title:  c.Title(),
		Date:   c.Date(),
		Time:   c.Time(),
	}
}

func (p cardJSON) toCard() (board.Card, error) {
	status := board.Incomplete
	if p.Status != "" {
		var err error
		status, err = board.ParseStatus(p.Status)
		if err != nil {
			return board.Card{}, err
		}
	}
	b := board.NewCardBuilder().Status(status)
	if p.Column != "" {
		b.Column(p.Column)
	}
	if p.Title != "" {
		b.Title(p.Title)
	}
	if p.Date != "" {
		b.Date(p.Date)
	}
	if p.Time != "" {
		b.Time(p.Time)
	}
	return b.Build()
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	k, err := s.store.Load(r.Context())
	if err != nil {
		s.fail(w, "load board", err)
		return
	}
	resp := boardJSON{Columns: k.Columns(), Cards: make([]cardJSON, 0, len(k.Cards()))}
	for _, c := range k.Cards() {
		resp.Cards = append(resp.Cards, toCardJSON(c))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	k, err := s.store.Load(r.Context())
	if err != nil {
		s.fail(w, "load board", err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Write([]byte(k.Render()))
}

func (s *Server) handleAddColumn(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		http.Error(w, "want a JSON body with a non-empty name", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	k, err := s.store.Load(r.Context())
	if err != nil {
		s.fail(w, "load board", err)
		return
	}
	k.AddColumn(payload.Name)
	if err := s.store.Save(r.Context(), k); err != nil {
		s.fail(w, "save board", err)
		return
	}
	s.logger.Info("column added", "name", payload.Name)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleAddCard(w http.ResponseWriter, r *http.Request) {
	var payload cardJSON
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed card payload", http.StatusBadRequest)
		return
	}
	card, err := payload.toCard()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	k, err := s.store.Load(r.Context())
	if err != nil {
		s.fail(w, "load board", err)
		return
	}
	if err := k.AddCard(card); err != nil {
		s.fail(w, "add card", err)
		return
	}
	if err := s.store.Save(r.Context(), k); err != nil {
		s.fail(w, "save board", err)
		return
	}
	s.logger.Info("card added", "column", card.Column(), "title", card.Title())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toCardJSON(card))
}

func (s *Server) handleMoveCard(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Target string   `json:"target"`
		Card   cardJSON `json:"card"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Target == "" {
		http.Error(w, "want a JSON body with target and card", http.StatusBadRequest)
		return
	}
	card, err := payload.Card.toCard()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	k, err := s.store.Load(r.Context())
	if err != nil {
		s.fail(w, "load board", err)
		return
	}
	if err := k.MoveCard(payload.Target, card); err != nil {
		s.fail(w, "move card", err)
		return
	}
	if err := s.store.Save(r.Context(), k); err != nil {
		s.fail(w, "save board", err)
		return
	}
	s.logger.Info("card moved", "target", payload.Target, "title", card.Title())
	w.WriteHeader(http.StatusOK)
}

// fail maps model and storage errors onto HTTP status codes.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, board.ErrColumnNotFound):
		status = http.StatusNotFound
	case errors.Is(err, board.ErrMissingField), errors.Is(err, board.ErrInvalidStatus):
		status = http.StatusBadRequest
	case errors.Is(err, board.ErrCardBeforeColumn), errors.Is(err, board.ErrMalformedLine):
		// The stored document no longer parses; surface it as a conflict
		// rather than a generic server error.
		status = http.StatusConflict
	}
	s.logger.Error(op+" failed", "err", err)
	http.Error(w, err.Error(), status)
}
