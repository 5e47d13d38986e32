package planner

// Party is a schedulable gathering as served by the events collection.
type Party struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	CohortID    int64  `json:"cohortId,omitempty"`
}

// Guest is a person record independent of any specific party.
type Guest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Job   string `json:"job,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// RSVP links one guest to one party.
type RSVP struct {
	ID      int64 `json:"id,omitempty"`
	EventID int64 `json:"eventId"`
	GuestID int64 `json:"guestId"`
}
