package viewer

import (
	"context"
	"testing"
	"time"

	"github.com/AlexTLDR/partyplanner/internal/i18n"
	"github.com/AlexTLDR/partyplanner/internal/planner"
	"github.com/AlexTLDR/partyplanner/internal/view"
)

type staticSource struct{}

func (staticSource) Parties(context.Context) ([]planner.Party, error) {
	return []planner.Party{{ID: 1, Name: "Gala"}}, nil
}
func (staticSource) Party(context.Context, int64) (*planner.Party, error) { return nil, nil }
func (staticSource) Guests(context.Context) ([]planner.Guest, error)      { return nil, nil }
func (staticSource) RSVPs(context.Context) ([]planner.RSVP, error)        { return nil, nil }

func TestRegistry_CreateGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry(staticSource{}, view.Options{Lang: i18n.English}, time.Hour)
	a := r.Create()
	b := r.Create()
	if a.ID == b.ID {
		t.Fatalf("viewer ids collide: %q", a.ID)
	}

	got, ok := r.Get(a.ID)
	if !ok || got != a {
		t.Fatalf("Get(%q)=%v,%v", a.ID, got, ok)
	}
	if _, ok := r.Get(""); ok {
		t.Fatalf("Get(\"\") found a viewer")
	}
	if _, ok := r.Get("unknown"); ok {
		t.Fatalf("Get(unknown) found a viewer")
	}

	// The controller renders into the viewer's own screen.
	a.Controller.LoadAllParties(context.Background())
	if len(a.Screen.State().Parties) != 1 {
		t.Fatalf("screen of a not rendered")
	}
	if len(b.Screen.State().Parties) != 0 {
		t.Fatalf("screen of b shares state with a")
	}
}

func TestRegistry_PrunesIdleViewers(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	r := NewRegistry(staticSource{}, view.Options{}, time.Minute)
	r.now = func() time.Time { return now }

	idle := r.Create()
	now = now.Add(30 * time.Second)
	active := r.Create()
	now = now.Add(45 * time.Second)
	if _, ok := r.Get(active.ID); !ok {
		t.Fatalf("active viewer missing")
	}

	r.Create()
	if _, ok := r.Get(idle.ID); ok {
		t.Fatalf("idle viewer not pruned")
	}
	if r.size() != 2 {
		t.Fatalf("size()=%d, want 2", r.size())
	}
}
