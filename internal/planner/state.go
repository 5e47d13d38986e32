package planner

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies a failed fetch.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNetwork covers transport failures and unexpected HTTP statuses.
	KindNetwork
	// KindDecode covers response bodies that could not be parsed.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// kinded is implemented by source errors that know their own failure kind.
type kinded interface {
	FailureKind() Kind
}

// KindOf reports the failure kind carried by err.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.FailureKind()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}
	return KindUnknown
}

// Failure records the last operation that could not complete.
type Failure struct {
	Op   string
	Kind Kind
	Err  error
}

func newFailure(op string, err error) *Failure {
	return &Failure{Op: op, Kind: KindOf(err), Err: err}
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s failure: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// State is the snapshot the view is rendered from.
type State struct {
	Parties   []Party
	Selected  *Party
	Guests    []Guest
	LastError *Failure
}

// HasSelection reports whether a party is currently selected.
func (s State) HasSelection() bool {
	return s.Selected != nil
}

// clone copies the state so callers never share slices with the controller.
func (s State) clone() State {
	out := State{LastError: s.LastError}
	if s.Parties != nil {
		out.Parties = append([]Party(nil), s.Parties...)
	}
	if s.Selected != nil {
		p := *s.Selected
		out.Selected = &p
	}
	if s.Guests != nil {
		out.Guests = append([]Guest(nil), s.Guests...)
	}
	return out
}
