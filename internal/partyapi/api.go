// Package partyapi serves the party collections over HTTP in the shape the
// viewer's remote client expects. It stands in for the hosted backend during
// development and tests.
package partyapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AlexTLDR/partyplanner/internal/planner"
)

// Store provides the collections served by the API.
type Store interface {
	ListParties(ctx context.Context) ([]planner.Party, error)
	GetParty(ctx context.Context, id int64) (*planner.Party, error)
	ListGuests(ctx context.Context) ([]planner.Guest, error)
	ListRSVPs(ctx context.Context) ([]planner.RSVP, error)
}

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Error   string `json:"error,omitempty"`
}

// NewRouter mounts the collections under /api/{cohort}.
func NewRouter(store Store, cohort string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/"+strings.Trim(cohort, "/"), func(r chi.Router) {
		r.Get("/events", handleParties(store))
		r.Get("/events/{id}", handleParty(store))
		r.Get("/guests", handleGuests(store))
		r.Get("/rsvps", handleRSVPs(store))
	})
	return r
}

func handleParties(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parties, err := store.ListParties(r.Context())
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeData(w, parties)
	}
}

// handleParty answers unknown ids with null data, like the hosted backend.
func handleParty(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid event id")
			return
		}
		party, err := store.GetParty(r.Context(), id)
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeData(w, party)
	}
}

func handleGuests(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guests, err := store.ListGuests(r.Context())
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeData(w, guests)
	}
}

func handleRSVPs(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsvps, err := store.ListRSVPs(r.Context())
		if err != nil {
			writeFailure(w, r, err)
			return
		}
		writeData(w, rsvps)
	}
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("Warning: %s %s failed (request %s): %v", r.Method, r.URL.Path, middleware.GetReqID(r.Context()), err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
