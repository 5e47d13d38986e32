package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"

	"github.com/AlexTLDR/partyplanner/internal/config"
	"github.com/AlexTLDR/partyplanner/internal/planner"
	"github.com/AlexTLDR/partyplanner/internal/server/handlers"
	"github.com/AlexTLDR/partyplanner/internal/view"
	"github.com/AlexTLDR/partyplanner/internal/viewer"
)

const (
	sessionName = "planner-session"
	viewerKey   = "viewer"

	viewerTTL         = 24 * time.Hour
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type Server struct {
	config       *config.Config
	sessionStore *sessions.CookieStore
	viewers      *viewer.Registry
	router       chi.Router
}

// GetConfig implements handlers.Server interface
func (s *Server) GetConfig() *config.Config {
	return s.config
}

// GetViewer implements handlers.Server interface. It returns the viewer bound
// to the request's session, creating one (and the session) when needed. fresh
// reports whether the viewer was just created.
func (s *Server) GetViewer(w http.ResponseWriter, r *http.Request) (v *viewer.Viewer, fresh bool) {
	session, err := s.sessionStore.Get(r, sessionName)
	if err != nil {
		// A cookie signed with another secret; start over with a new session.
		log.Printf("Warning: discarding invalid session: %v", err)
	}

	if id, ok := session.Values[viewerKey].(string); ok {
		if v, ok := s.viewers.Get(id); ok {
			return v, false
		}
	}

	v = s.viewers.Create()
	session.Values[viewerKey] = v.ID
	if err := session.Save(r, w); err != nil {
		log.Printf("Warning: failed to save session: %v", err)
	}
	return v, true
}

func New(cfg *config.Config, src planner.Source) *Server {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(viewerTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	s := &Server{
		config:       cfg,
		sessionStore: store,
		viewers: viewer.NewRegistry(src, view.Options{
			Lang:        cfg.Language(),
			PhoneRegion: cfg.PhoneRegion,
		}, viewerTTL),
		router: chi.NewRouter(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Get("/", handlers.HandleHome(s))
	s.router.Get("/parties/selected/guests.csv", handlers.HandleDownloadGuestsCSV(s))
	s.router.Get("/parties/{id}", handlers.HandleSelectParty(s))
}

// ServeHTTP makes the server usable as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
