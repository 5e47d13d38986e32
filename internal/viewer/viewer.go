// Package viewer keeps one planner controller and screen per browser session.
package viewer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AlexTLDR/partyplanner/internal/planner"
	"github.com/AlexTLDR/partyplanner/internal/view"
)

// Viewer is the state and mounted view of one browser session.
type Viewer struct {
	ID         string
	Controller *planner.Controller
	Screen     *view.Screen
}

type entry struct {
	viewer   *Viewer
	lastSeen time.Time
}

// Registry hands out viewers by id. Viewers idle for longer than the TTL are
// dropped the next time a viewer is created.
type Registry struct {
	src  planner.Source
	opts view.Options
	ttl  time.Duration
	now  func() time.Time

	mu      sync.Mutex
	viewers map[string]*entry
}

// NewRegistry returns a registry whose viewers read from src.
func NewRegistry(src planner.Source, opts view.Options, ttl time.Duration) *Registry {
	return &Registry{
		src:     src,
		opts:    opts,
		ttl:     ttl,
		now:     time.Now,
		viewers: make(map[string]*entry),
	}
}

// Get returns the viewer with id and marks it as seen.
func (r *Registry) Get(id string) (*Viewer, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.viewers[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.viewer, true
}

// Create registers a new viewer with an empty state.
func (r *Registry) Create() *Viewer {
	screen := view.NewScreen(r.opts)
	v := &Viewer{
		ID:         uuid.NewString(),
		Controller: planner.NewController(r.src, screen.Render),
		Screen:     screen,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.pruneLocked(now)
	r.viewers[v.ID] = &entry{viewer: v, lastSeen: now}
	return v
}

// size reports the number of live viewers.
func (r *Registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.viewers)
}

func (r *Registry) pruneLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, e := range r.viewers {
		if now.Sub(e.lastSeen) > r.ttl {
			delete(r.viewers, id)
		}
	}
}
