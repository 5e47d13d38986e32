package partyapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlexTLDR/partyplanner/internal/database"
	"github.com/AlexTLDR/partyplanner/internal/planner"
	"github.com/AlexTLDR/partyplanner/internal/remote"
)

type memStore struct {
	parties []planner.Party
	guests  []planner.Guest
	rsvps   []planner.RSVP
	err     error
}

func (m *memStore) ListParties(context.Context) ([]planner.Party, error) { return m.parties, m.err }
func (m *memStore) ListGuests(context.Context) ([]planner.Guest, error)  { return m.guests, m.err }
func (m *memStore) ListRSVPs(context.Context) ([]planner.RSVP, error)    { return m.rsvps, m.err }

func (m *memStore) GetParty(_ context.Context, id int64) (*planner.Party, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.parties {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func do(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]json.RawMessage
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s: invalid json %q: %v", path, rr.Body.String(), err)
		}
	}
	return rr, body
}

func TestRouter_Endpoints(t *testing.T) {
	t.Parallel()

	store := &memStore{
		parties: []planner.Party{{ID: 1, Name: "Gala"}},
		guests:  []planner.Guest{{ID: 10, Name: "Amy"}},
		rsvps:   []planner.RSVP{{ID: 1, EventID: 1, GuestID: 10}},
	}
	h := NewRouter(store, "/test-cohort/")

	tests := []struct {
		path       string
		wantStatus int
		wantData   string
	}{
		{path: "/api/test-cohort/events", wantStatus: 200, wantData: `[{"id":1,"name":"Gala","description":"","date":"","location":""}]`},
		{path: "/api/test-cohort/events/1", wantStatus: 200, wantData: `{"id":1,"name":"Gala","description":"","date":"","location":""}`},
		{path: "/api/test-cohort/events/999", wantStatus: 200, wantData: `null`},
		{path: "/api/test-cohort/guests", wantStatus: 200, wantData: `[{"id":10,"name":"Amy"}]`},
		{path: "/api/test-cohort/rsvps", wantStatus: 200, wantData: `[{"id":1,"eventId":1,"guestId":10}]`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr, body := do(t, h, tt.path)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d", rr.Code, tt.wantStatus)
			}
			if got := string(body["data"]); got != tt.wantData {
				t.Fatalf("data=%s, want %s", got, tt.wantData)
			}
			if string(body["success"]) != "true" {
				t.Fatalf("success=%s, want true", body["success"])
			}
		})
	}
}

func TestRouter_Errors(t *testing.T) {
	t.Parallel()

	h := NewRouter(&memStore{err: errors.New("db down")}, "c")

	rr, body := do(t, h, "/api/c/events/abc")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rr.Code)
	}
	if string(body["error"]) != `"invalid event id"` {
		t.Fatalf("error=%s", body["error"])
	}

	rr, body = do(t, h, "/api/c/guests")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, want 500", rr.Code)
	}
	if strings.Contains(string(body["error"]), "db down") {
		t.Fatalf("internal error leaked: %s", body["error"])
	}

	rr, _ = do(t, h, "/api/other/events")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("wrong cohort status=%d, want 404", rr.Code)
	}

	rr, _ = do(t, h, "/healthz")
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("healthz=%d %q", rr.Code, rr.Body.String())
	}
}

// The viewer's client and controller running against the seeded database.
func TestRouter_EndToEnd(t *testing.T) {
	t.Parallel()

	db, err := database.New("sqlite3", "file:"+filepath.Join(t.TempDir(), "e2e.db")+"?_foreign_keys=on")
	if err != nil {
		t.Fatalf("database.New() err=%v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() err=%v", err)
	}
	if err := db.Seed(ctx, database.DefaultFixture, "US"); err != nil {
		t.Fatalf("Seed() err=%v", err)
	}

	srv := httptest.NewServer(NewRouter(db, "e2e"))
	t.Cleanup(srv.Close)

	var last planner.State
	c := planner.NewController(remote.New(srv.URL+"/api", "e2e", srv.Client()), func(s planner.State) { last = s })

	c.LoadAllParties(ctx)
	if len(last.Parties) != 3 {
		t.Fatalf("Parties len=%d, want 3", len(last.Parties))
	}

	c.LoadParty(ctx, 2)
	if last.Selected == nil || last.Selected.Name != "Board Game Night" {
		t.Fatalf("Selected=%+v", last.Selected)
	}
	var names []string
	for _, g := range last.Guests {
		names = append(names, g.Name)
	}
	if strings.Join(names, ",") != "Amy Lee,Bo Carter,Cy Nakamura" {
		t.Fatalf("Guests=%v", names)
	}

	c.LoadParty(ctx, 3)
	if last.Selected == nil || last.Selected.ID != 3 || len(last.Guests) != 0 {
		t.Fatalf("party 3: Selected=%+v Guests=%+v", last.Selected, last.Guests)
	}

	c.LoadParty(ctx, 999)
	if last.Selected != nil || last.LastError != nil {
		t.Fatalf("missing party: Selected=%+v LastError=%v", last.Selected, last.LastError)
	}
}
