package planner

// FilterGuests returns the guests holding an RSVP for partyID, in the order
// they appear in guests.
func FilterGuests(guests []Guest, rsvps []RSVP, partyID int64) []Guest {
	attending := make(map[int64]struct{})
	for _, r := range rsvps {
		if r.EventID == partyID {
			attending[r.GuestID] = struct{}{}
		}
	}

	matched := make([]Guest, 0, len(attending))
	for _, g := range guests {
		if _, ok := attending[g.ID]; ok {
			matched = append(matched, g)
		}
	}
	return matched
}
