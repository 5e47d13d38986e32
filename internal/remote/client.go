// Package remote reads the party collections from the REST backend.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/multierr"

	"github.com/AlexTLDR/partyplanner/internal/planner"
)

const (
	DefaultBaseURL = "https://fsa-crud-2aa9294fe819.herokuapp.com/api"
	DefaultCohort  = "2506-Angel"
)

// envelope is the wrapper every collection endpoint responds with.
type envelope[T any] struct {
	Data T `json:"data"`
}

// Client is a planner.Source backed by HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ planner.Source = (*Client)(nil)

// New returns a client for {baseURL}/{cohort}. A nil httpClient means
// http.DefaultClient.
func New(baseURL, cohort string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	endpoint := strings.TrimRight(baseURL, "/")
	if cohort != "" {
		endpoint += "/" + strings.Trim(cohort, "/")
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Endpoint returns the collection root every path is resolved against.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Parties(ctx context.Context) ([]planner.Party, error) {
	var env envelope[[]planner.Party]
	if err := c.get(ctx, "/events", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Party returns nil when the backend does not know the id, either by answering
// 404 or with null data.
func (c *Client) Party(ctx context.Context, id int64) (*planner.Party, error) {
	var env envelope[*planner.Party]
	if err := c.get(ctx, fmt.Sprintf("/events/%d", id), &env); err != nil {
		var ne *NetworkError
		if errors.As(err, &ne) && ne.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) Guests(ctx context.Context) ([]planner.Guest, error) {
	var env envelope[[]planner.Guest]
	if err := c.get(ctx, "/guests", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) RSVPs(ctx context.Context) ([]planner.RSVP, error) {
	var env envelope[[]planner.RSVP]
	if err := c.get(ctx, "/rsvps", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// get decodes the response for path into out.
func (c *Client) get(ctx context.Context, path string, out any) (err error) {
	url := c.endpoint + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer multierr.AppendInvoke(&err, multierr.Close(resp.Body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{URL: url, Status: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{URL: url, Err: err}
	}
	return nil
}
