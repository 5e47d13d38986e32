// Package view builds the planner page as an HTML node tree. Builders only
// read the state they are given; the Screen is the single place the tree is
// mounted.
package view

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/AlexTLDR/partyplanner/internal/i18n"
	"github.com/AlexTLDR/partyplanner/internal/planner"
	"github.com/AlexTLDR/partyplanner/internal/utils"
)

// AppID is the id of the mount point the whole view is rendered into.
const AppID = "app"

// Options carries the presentation settings of a viewer.
type Options struct {
	Lang        i18n.Language
	PhoneRegion string
}

func (o Options) messages() i18n.Messages {
	return i18n.For(o.Lang)
}

// PartyPath is the URL that selects a party.
func PartyPath(id int64) string {
	return "/parties/" + strconv.FormatInt(id, 10)
}

// PartyListItem renders one clickable entry. Following the link selects the
// party.
func PartyListItem(p planner.Party) *html.Node {
	href := PartyPath(p.ID)
	a := el("a", []html.Attribute{
		attr("id", fmt.Sprintf("party-%d", p.ID)),
		attr("href", href),
		attr("hx-get", href),
		attr("hx-target", "#"+AppID),
		attr("hx-swap", "outerHTML"),
		attr("hx-push-url", "true"),
	}, text(p.Name))
	return el("li", nil, a)
}

// PartyList renders the parties in collection order.
func PartyList(parties []planner.Party) *html.Node {
	ul := element("ul", attr("class", "lineup"))
	for _, p := range parties {
		ul.AppendChild(PartyListItem(p))
	}
	return ul
}

// PartyDetails renders the selected party with its guests, or a prompt when
// nothing is selected.
func PartyDetails(state planner.State, opts Options) *html.Node {
	msgs := opts.messages()
	if state.Selected == nil {
		return el("p", []html.Attribute{attr("class", "placeholder")}, text(msgs.SelectPrompt))
	}

	p := state.Selected
	guests := element("ul", attr("class", "guests"), attr("aria-label", msgs.GuestsHeading))
	for _, g := range state.Guests {
		guests.AppendChild(guestItem(g, opts.PhoneRegion))
	}

	return el("section", []html.Attribute{attr("class", "party")},
		el("h3", nil, text(fmt.Sprintf("%s #%d", p.Name, p.ID))),
		el("p", nil, text(p.Date)),
		el("p", nil, el("em", nil, text(p.Location))),
		el("p", nil, text(p.Description)),
		guests,
	)
}

func guestItem(g planner.Guest, region string) *html.Node {
	li := el("li", nil, text(g.Name))
	if g.Phone == "" {
		return li
	}
	li.AppendChild(text(" "))
	li.AppendChild(el("small", []html.Attribute{attr("class", "phone")},
		text(utils.FormatPhoneNumber(g.Phone, region))))
	return li
}

// ErrorNotice renders the non-fatal banner for the last failed load, or nil.
func ErrorNotice(f *planner.Failure, opts Options) *html.Node {
	if f == nil {
		return nil
	}
	return el("p", []html.Attribute{
		attr("class", "notice"),
		attr("role", "alert"),
		attr("data-kind", f.Kind.String()),
	}, text(opts.messages().LoadFailed))
}

// App builds the full #app subtree: the page skeleton with the party list
// and the details attached to their sections.
func App(state planner.State, opts Options) *html.Node {
	msgs := opts.messages()

	list := el("div", []html.Attribute{attr("id", "party-list")}, PartyList(state.Parties))
	details := el("div", []html.Attribute{attr("id", "party-details")}, PartyDetails(state, opts))

	root := el("div", []html.Attribute{attr("id", AppID)},
		el("h1", nil, text(msgs.Title)),
	)
	if notice := ErrorNotice(state.LastError, opts); notice != nil {
		root.AppendChild(notice)
	}
	root.AppendChild(el("main", nil,
		el("section", nil, el("h2", nil, text(msgs.PartiesHeading)), list),
		el("section", nil, el("h2", nil, text(msgs.DetailsHeading)), details),
	))
	return root
}
