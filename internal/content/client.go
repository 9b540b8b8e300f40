package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/emberandoak/website/internal/config"
)

const maxResponseBytes = 10 * 1024 * 1024

// Client reads documents from the remote content store over its HTTP query API.
// The CDN host is never used: every read goes to the live API so published
// changes show up on the next request.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	token      string
	baseURL    string // overridden in tests
	httpClient *http.Client
}

// NewClient builds a client from the content configuration.
func NewClient(cfg config.ContentConfig) *Client {
	return &Client{
		projectID:  cfg.ProjectID,
		dataset:    cfg.Dataset,
		apiVersion: cfg.APIVersion,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) queryURL() string {
	if c.baseURL != "" {
		return c.baseURL + "/v" + c.apiVersion + "/data/query/" + c.dataset
	}
	return fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s", c.projectID, c.apiVersion, c.dataset)
}

func (c *Client) mutateURL() string {
	if c.baseURL != "" {
		return c.baseURL + "/v" + c.apiVersion + "/data/mutate/" + c.dataset
	}
	return fmt.Sprintf("https://%s.api.sanity.io/v%s/data/mutate/%s", c.projectID, c.apiVersion, c.dataset)
}

// Fetch executes a GROQ query with optional parameters and decodes the result
// envelope into v. A query returning no documents decodes as JSON null or an
// empty array; that is not an error.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, v any) error {
	values := url.Values{}
	values.Set("query", query)
	for name, val := range params {
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL()+"?"+values.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("build query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query content store: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("query content store: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return fmt.Errorf("read query response: %w", err)
	}
	if len(body) > maxResponseBytes {
		return errors.New("query response too large")
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode query envelope: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, v); err != nil {
		return fmt.Errorf("decode query result: %w", err)
	}
	return nil
}

// CreateOrReplace writes a document through the mutate endpoint. The document
// must carry its _id and _type. Used by seeding only.
func (c *Client) CreateOrReplace(ctx context.Context, doc any) error {
	payload := map[string]any{
		"mutations": []map[string]any{{"createOrReplace": doc}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode mutation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.mutateURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mutate content store: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mutate content store: HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}

// Typed read operations. Each runs its query definition and leaves "no result"
// as the zero value.

func (c *Client) SiteSettings(ctx context.Context) (*SiteSettings, error) {
	var s *SiteSettings
	if err := c.Fetch(ctx, siteSettingsQuery, nil, &s); err != nil {
		return nil, err
	}
	return s, nil
}

func (c *Client) HomePage(ctx context.Context) (*HomePage, error) {
	var p *HomePage
	if err := c.Fetch(ctx, homePageQuery, nil, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) AboutPage(ctx context.Context) (*AboutPage, error) {
	var p *AboutPage
	if err := c.Fetch(ctx, aboutPageQuery, nil, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.Fetch(ctx, categoriesQuery, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *Client) MenuItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.Fetch(ctx, menuItemsQuery, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) FeaturedItems(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.Fetch(ctx, featuredItemsQuery, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Staff(ctx context.Context) ([]StaffMember, error) {
	var staff []StaffMember
	if err := c.Fetch(ctx, staffQuery, nil, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (c *Client) Locations(ctx context.Context) ([]Location, error) {
	var locs []Location
	if err := c.Fetch(ctx, locationsQuery, nil, &locs); err != nil {
		return nil, err
	}
	return locs, nil
}

func (c *Client) PrimaryLocation(ctx context.Context) (*Location, error) {
	var loc *Location
	if err := c.Fetch(ctx, primaryLocationQuery, nil, &loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (c *Client) Events(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.Fetch(ctx, eventsQuery, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) UpcomingEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.Fetch(ctx, upcomingEventsQuery, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

var _ Store = (*Client)(nil)
var _ Mutator = (*Client)(nil)
