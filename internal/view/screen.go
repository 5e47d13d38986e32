package view

import (
	"io"
	"sync"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/AlexTLDR/partyplanner/internal/planner"
)

// Screen is the mount point of one viewer. Every Render replaces the whole
// tree; nothing of the previous tree is kept.
type Screen struct {
	mu    sync.RWMutex
	opts  Options
	state planner.State
	root  *html.Node
}

// NewScreen returns a screen showing the empty state.
func NewScreen(opts Options) *Screen {
	s := &Screen{opts: opts}
	s.Render(planner.State{})
	return s
}

// Render rebuilds the mounted tree from state. It satisfies planner.RenderFunc.
func (s *Screen) Render(state planner.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.root = App(state, s.opts)
}

// SetOptions changes the presentation options and re-renders the last state.
func (s *Screen) SetOptions(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if opts == s.opts {
		return
	}
	s.opts = opts
	s.root = App(s.state, s.opts)
}

// Options returns the presentation options in use.
func (s *Screen) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// State returns the state the mounted tree was built from.
func (s *Screen) State() planner.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// WriteFragment writes the mounted #app subtree.
func (s *Screen) WriteFragment(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return html.Render(w, s.root)
}

// Page returns the full document around a copy of the mounted subtree.
func (s *Screen) Page() templ.Component {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Node(Document(string(s.opts.Lang), s.opts.messages().Title, App(s.state, s.opts)))
}
