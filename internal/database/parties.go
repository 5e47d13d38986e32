package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AlexTLDR/partyplanner/internal/planner"
)

// ListParties retrieves all events ordered by id.
func (db *DB) ListParties(ctx context.Context) ([]planner.Party, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, date, location, cohort_id FROM events ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get parties: %w", err)
	}
	defer rows.Close()

	parties := []planner.Party{}
	for rows.Next() {
		var p planner.Party
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Date, &p.Location, &p.CohortID); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parties: %w", err)
	}

	return parties, nil
}

// GetParty retrieves an event by id. It returns nil when none exists.
func (db *DB) GetParty(ctx context.Context, id int64) (*planner.Party, error) {
	p := &planner.Party{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, date, location, cohort_id FROM events WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Date, &p.Location, &p.CohortID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get party: %w", err)
	}

	return p, nil
}

// ListGuests retrieves all guests ordered by id.
func (db *DB) ListGuests(ctx context.Context) ([]planner.Guest, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, email, phone, job, bio FROM guests ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get guests: %w", err)
	}
	defer rows.Close()

	guests := []planner.Guest{}
	for rows.Next() {
		var g planner.Guest
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.Phone, &g.Job, &g.Bio); err != nil {
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guests: %w", err)
	}

	return guests, nil
}

// ListRSVPs retrieves all RSVPs ordered by id.
func (db *DB) ListRSVPs(ctx context.Context) ([]planner.RSVP, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, event_id, guest_id FROM rsvps ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get rsvps: %w", err)
	}
	defer rows.Close()

	rsvps := []planner.RSVP{}
	for rows.Next() {
		var r planner.RSVP
		if err := rows.Scan(&r.ID, &r.EventID, &r.GuestID); err != nil {
			return nil, fmt.Errorf("failed to scan rsvp: %w", err)
		}
		rsvps = append(rsvps, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rsvps: %w", err)
	}

	return rsvps, nil
}
