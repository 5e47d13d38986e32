package handlers

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/AlexTLDR/partyplanner/internal/planner"
	"github.com/AlexTLDR/partyplanner/internal/utils"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]+`)

// csvFilename builds the attachment name for a party's guest list.
func csvFilename(p *planner.Party) string {
	slug := strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.ToLower(p.Name), "-"), "-")
	if slug == "" {
		return fmt.Sprintf("party-%d-guests.csv", p.ID)
	}
	return fmt.Sprintf("party-%d-%s-guests.csv", p.ID, slug)
}

// formatGuestForCSV converts a guest to a CSV record.
func formatGuestForCSV(g planner.Guest, region string) []string {
	phone := "-"
	if g.Phone != "" {
		phone = utils.FormatPhoneNumber(g.Phone, region)
	}
	email := "-"
	if g.Email != "" {
		email = g.Email
	}
	// Keep multi-line bios on one row.
	bio := strings.Join(strings.Fields(g.Bio), " ")
	return []string{fmt.Sprintf("%d", g.ID), g.Name, email, phone, g.Job, bio}
}

// writeCSVHeaders sets HTTP headers and writes the UTF-8 BOM
func writeCSVHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	// Write UTF-8 BOM for Excel compatibility
	_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})
}

// HandleDownloadGuestsCSV exports the guest list of the selected party as
// currently shown on the viewer's screen.
func HandleDownloadGuestsCSV(s Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, _ := s.GetViewer(w, r)
		state := v.Screen.State()
		if !state.HasSelection() {
			http.Error(w, "No party selected", http.StatusNotFound)
			return
		}

		writeCSVHeaders(w, csvFilename(state.Selected))

		cw := csv.NewWriter(w)
		records := [][]string{{"ID", "Name", "Email", "Phone", "Job", "Bio"}}
		for _, g := range state.Guests {
			records = append(records, formatGuestForCSV(g, s.GetConfig().PhoneRegion))
		}
		if err := cw.WriteAll(records); err != nil {
			log.Printf("Warning: failed to write guest CSV: %v", err)
		}
	}
}
