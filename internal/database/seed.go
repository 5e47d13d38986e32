package database

import (
	"context"
	"fmt"
	"log"

	"github.com/AlexTLDR/partyplanner/internal/planner"
	"github.com/AlexTLDR/partyplanner/internal/utils"
)

// Fixture is a complete data set for the party collections.
type Fixture struct {
	Parties []planner.Party
	Guests  []planner.Guest
	RSVPs   []planner.RSVP
}

// DefaultFixture is the data set the local API starts with.
var DefaultFixture = Fixture{
	Parties: []planner.Party{
		{ID: 1, Name: "Summer Gala", Description: "An evening of music and dancing under the stars.", Date: "2026-07-18T19:00:00.000Z", Location: "Rooftop Terrace", CohortID: 1},
		{ID: 2, Name: "Board Game Night", Description: "Bring your favourite game and a snack to share.", Date: "2026-08-02T18:30:00.000Z", Location: "Community Library", CohortID: 1},
		{ID: 3, Name: "Harvest Picnic", Description: "Potluck lunch in the park with lawn games.", Date: "2026-09-20T12:00:00.000Z", Location: "Riverside Park", CohortID: 1},
	},
	Guests: []planner.Guest{
		{ID: 1, Name: "Amy Lee", Email: "amy@example.com", Phone: "(650) 253-0000", Job: "Architect"},
		{ID: 2, Name: "Bo Carter", Email: "bo@example.com", Job: "Chef"},
		{ID: 3, Name: "Cy Nakamura", Email: "cy@example.com", Phone: "+40 721 234 567", Job: "Pilot"},
		{ID: 4, Name: "Di Okafor", Email: "di@example.com", Job: "Librarian"},
	},
	RSVPs: []planner.RSVP{
		{ID: 1, EventID: 1, GuestID: 2},
		{ID: 2, EventID: 1, GuestID: 4},
		{ID: 3, EventID: 2, GuestID: 1},
		{ID: 4, EventID: 2, GuestID: 2},
		{ID: 5, EventID: 2, GuestID: 3},
	},
}

// Seed loads f into empty tables. Guest phones are normalized to E.164 using
// region as the default country; phones that do not parse are stored as given.
// Seeding is skipped when events already exist.
func (db *DB) Seed(ctx context.Context, f Fixture, region string) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count parties: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range f.Parties {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (id, name, description, date, location, cohort_id) VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.Name, p.Description, p.Date, p.Location, p.CohortID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert party %d: %w", p.ID, err)
		}
	}

	for _, g := range f.Guests {
		phone := g.Phone
		if phone != "" {
			normalized, err := utils.NormalizePhoneNumber(phone, region)
			if err != nil {
				log.Printf("Warning: keeping phone %q of guest %d as given: %v", phone, g.ID, err)
			} else {
				phone = normalized
			}
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO guests (id, name, email, phone, job, bio) VALUES ($1, $2, $3, $4, $5, $6)`,
			g.ID, g.Name, g.Email, phone, g.Job, g.Bio,
		)
		if err != nil {
			return fmt.Errorf("failed to insert guest %d: %w", g.ID, err)
		}
	}

	for _, r := range f.RSVPs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO rsvps (id, event_id, guest_id) VALUES ($1, $2, $3)`,
			r.ID, r.EventID, r.GuestID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rsvp %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
