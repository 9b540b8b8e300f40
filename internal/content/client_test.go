package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emberandoak/website/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.ContentConfig{
		ProjectID:  "testproj",
		Dataset:    "production",
		APIVersion: "2024-01-01",
	})
	c.baseURL = srv.URL
	return c
}

func TestFetch_DecodesResultEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2024-01-01/data/query/production", r.URL.Path)
		require.Contains(t, r.URL.Query().Get("query"), `_type == "category"`)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{"_id": "category-espresso", "name": "Espresso", "slug": map[string]string{"current": "espresso"}, "order": 1},
			},
		})
	})

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Equal(t, "Espresso", cats[0].Name)
	require.Equal(t, "espresso", cats[0].Slug.Current)
}

func TestFetch_NullResultIsNotAnError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": null}`))
	})

	settings, err := c.SiteSettings(context.Background())
	require.NoError(t, err)
	require.Nil(t, settings)

	items, err := c.MenuItems(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestFetch_HTTPErrorSurfaces(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Events(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "HTTP 500")
}

func TestFetch_SendsBearerToken(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"result": []}`))
	})
	c.token = "sk-test"

	_, err := c.Staff(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer sk-test", gotAuth)
}

func TestFetch_EncodesParamsAsJSON(t *testing.T) {
	var gotParam string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotParam = r.URL.Query().Get("$slug")
		_, _ = w.Write([]byte(`{"result": null}`))
	})

	var out any
	err := c.Fetch(context.Background(), `*[slug.current == $slug][0]`, map[string]any{"slug": "division"}, &out)
	require.NoError(t, err)
	require.Equal(t, `"division"`, gotParam)
}

func TestFetch_DecodesEventDates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": [{"_id": "event-cupping", "title": "Cupping", "date": "2026-01-15T10:00:00Z"}]}`))
	})

	events, err := c.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC), events[0].Date)
}

func TestCreateOrReplace_PostsMutation(t *testing.T) {
	var got map[string]any
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v2024-01-01/data/mutate/production", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"transactionId": "abc"}`))
	})

	doc := Category{ID: "category-espresso", Type: TypeCategory, Name: "Espresso", Slug: Slug{Current: "espresso"}, Order: 1}
	require.NoError(t, c.CreateOrReplace(context.Background(), doc))

	mutations := got["mutations"].([]any)
	require.Len(t, mutations, 1)
	cor := mutations[0].(map[string]any)["createOrReplace"].(map[string]any)
	require.Equal(t, "category-espresso", cor["_id"])
	require.Equal(t, "category", cor["_type"])
}
