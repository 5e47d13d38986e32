package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

type Language string

const (
	English  Language = "en"
	Romanian Language = "ro"
)

var supported = []language.Tag{language.English, language.Romanian}

var matcher = language.NewMatcher(supported)

// Parse maps a language code to a supported Language.
func Parse(code string) (Language, bool) {
	switch code {
	case string(English):
		return English, true
	case string(Romanian):
		return Romanian, true
	}
	return "", false
}

// GetLanguageFromRequest extracts language from request (query param, cookie,
// then Accept-Language), falling back to def.
func GetLanguageFromRequest(r *http.Request, def Language) Language {
	if lang, ok := Parse(r.URL.Query().Get("lang")); ok {
		return lang
	}

	if cookie, err := r.Cookie("lang"); err == nil {
		if lang, ok := Parse(cookie.Value); ok {
			return lang
		}
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		tags, _, err := language.ParseAcceptLanguage(accept)
		if err == nil && len(tags) > 0 {
			_, idx, confidence := matcher.Match(tags...)
			if confidence != language.No {
				base, _ := supported[idx].Base()
				if lang, ok := Parse(base.String()); ok {
					return lang
				}
			}
		}
	}

	return def
}

// Messages holds the user-visible strings of the viewer.
type Messages struct {
	Title          string
	PartiesHeading string
	DetailsHeading string
	SelectPrompt   string
	GuestsHeading  string
	LoadFailed     string
}

var catalog = map[Language]Messages{
	English: {
		Title:          "Party Planner",
		PartiesHeading: "Upcoming Parties",
		DetailsHeading: "Party Details",
		SelectPrompt:   "Please select a party to view its details.",
		GuestsHeading:  "Guests",
		LoadFailed:     "Could not refresh the data. Showing the last known state.",
	},
	Romanian: {
		Title:          "Planificator de petreceri",
		PartiesHeading: "Petreceri viitoare",
		DetailsHeading: "Detaliile petrecerii",
		SelectPrompt:   "Selectează o petrecere pentru a vedea detaliile.",
		GuestsHeading:  "Invitați",
		LoadFailed:     "Datele nu au putut fi actualizate. Se afișează ultima stare cunoscută.",
	},
}

// For returns the messages for lang, defaulting to English.
func For(lang Language) Messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[English]
}
