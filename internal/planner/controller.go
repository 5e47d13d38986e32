package planner

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Source is the remote backend holding the events, guests and RSVP collections.
type Source interface {
	Parties(ctx context.Context) ([]Party, error)
	// Party returns nil without an error when the backend has no such party.
	Party(ctx context.Context, id int64) (*Party, error)
	Guests(ctx context.Context) ([]Guest, error)
	RSVPs(ctx context.Context) ([]RSVP, error)
}

// RenderFunc receives a snapshot after every state change.
type RenderFunc func(State)

// Controller owns the planner state. Every mutation goes through one of its
// methods and ends with a call to the render callback.
//
// Loads are tagged with a sequence token; a result is applied only while its
// token is still the latest issued for that kind of load.
type Controller struct {
	src    Source
	render RenderFunc

	mu        sync.Mutex
	state     State
	listSeq   uint64
	selectSeq uint64
}

// NewController creates a controller with an empty state.
func NewController(src Source, render RenderFunc) *Controller {
	if render == nil {
		render = func(State) {}
	}
	return &Controller{src: src, render: render}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// LoadAllParties replaces the parties collection with the remote one.
func (c *Controller) LoadAllParties(ctx context.Context) {
	c.mu.Lock()
	c.listSeq++
	token := c.listSeq
	c.mu.Unlock()

	parties, err := c.src.Parties(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.listSeq {
		return
	}
	if err != nil {
		log.Printf("Warning: failed to load parties: %v", err)
		c.state.LastError = newFailure("load parties", err)
	} else {
		c.state.Parties = parties
		if c.state.LastError != nil && c.state.LastError.Op == "load parties" {
			c.state.LastError = nil
		}
	}
	c.renderLocked()
}

// Reset returns to the empty initial state and renders it. Loads still in
// flight when Reset is called are discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listSeq++
	c.selectSeq++
	c.state = State{}
	c.renderLocked()
}

// LoadParty selects the party with the given id and derives its guest list.
// A selection overtaken by a newer LoadParty call is discarded.
func (c *Controller) LoadParty(ctx context.Context, id int64) {
	c.mu.Lock()
	c.selectSeq++
	token := c.selectSeq
	c.mu.Unlock()

	party, err := c.src.Party(ctx, id)
	if err != nil {
		log.Printf("Warning: failed to load party %d: %v", id, err)
		c.mu.Lock()
		defer c.mu.Unlock()
		if token != c.selectSeq {
			return
		}
		c.state.LastError = newFailure("load party", err)
		c.renderLocked()
		return
	}

	c.mu.Lock()
	if token != c.selectSeq {
		c.mu.Unlock()
		return
	}
	if party == nil || c.state.Selected == nil || c.state.Selected.ID != party.ID {
		c.state.Guests = nil
	}
	c.state.Selected = party
	c.state.LastError = nil
	c.mu.Unlock()

	c.deriveGuests(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.selectSeq {
		return
	}
	c.renderLocked()
}

// LoadGuestsForSelection recomputes the guest list of the selected party.
func (c *Controller) LoadGuestsForSelection(ctx context.Context) {
	c.mu.Lock()
	token := c.selectSeq
	c.mu.Unlock()

	c.deriveGuests(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.selectSeq {
		return
	}
	c.renderLocked()
}

// deriveGuests fetches guests and RSVPs together and keeps the guests that
// answered for the selected party. On failure guests keeps its previous value.
func (c *Controller) deriveGuests(ctx context.Context, token uint64) {
	c.mu.Lock()
	selected := c.state.Selected
	c.mu.Unlock()
	if selected == nil {
		return
	}
	partyID := selected.ID

	var (
		guests []Guest
		rsvps  []RSVP
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guests, err = c.src.Guests(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rsvps, err = c.src.RSVPs(gctx)
		return err
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.selectSeq {
		return
	}
	if err != nil {
		log.Printf("Warning: failed to load guests for party %d: %v", partyID, err)
		c.state.LastError = newFailure("load guests", err)
		return
	}
	if c.state.Selected == nil || c.state.Selected.ID != partyID {
		return
	}
	c.state.Guests = FilterGuests(guests, rsvps, partyID)
	if c.state.LastError != nil && c.state.LastError.Op == "load guests" {
		c.state.LastError = nil
	}
}

func (c *Controller) renderLocked() {
	c.render(c.state.clone())
}
