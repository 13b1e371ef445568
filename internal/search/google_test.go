package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondhu-robotics/bondhu/internal/config"
	"github.com/bondhu-robotics/bondhu/internal/intent"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.SearchConfig{
		APIKey:   "test-key",
		EngineID: "test-engine",
		Timeout:  5 * time.Second,
	})
	c.baseURL = srv.URL
	return c
}

func TestSearch_FormatsTopResults(t *testing.T) {
	var gotQuery, gotLang string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLang = r.URL.Query().Get("lr")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": [
			{"title": "Result One", "snippet": "first snippet", "link": "https://a.example"},
			{"title": "Result Two", "snippet": "second snippet", "link": "https://b.example"},
			{"title": "Result Three", "snippet": "third snippet", "link": "https://c.example"},
			{"title": "Result Four", "snippet": "fourth snippet", "link": "https://d.example"}
		]}`))
	})

	out, err := c.Search(context.Background(), "robots", intent.LangEnglish)
	require.NoError(t, err)

	assert.Equal(t, "robots", gotQuery)
	assert.Equal(t, "lang_en", gotLang)
	assert.Contains(t, out, "Search results:")
	assert.Contains(t, out, "1. Result One")
	assert.Contains(t, out, "3. Result Three")
	// Only the top three results are spoken.
	assert.NotContains(t, out, "Result Four")
}

func TestSearch_BanglaLanguageRestrict(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "lang_bn", r.URL.Query().Get("lr"))
		w.Write([]byte(`{"items": [{"title": "ঢাকা", "snippet": "বাংলাদেশের রাজধানী", "link": "https://x.example"}]}`))
	})

	out, err := c.Search(context.Background(), "ঢাকা", intent.LangBangla)
	require.NoError(t, err)
	assert.Contains(t, out, "খুঁজে পাওয়া তথ্য:")
	assert.Contains(t, out, "ঢাকা")
}

func TestSearch_NoResults(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	out, err := c.Search(context.Background(), "nothing", intent.LangEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Sorry, no information found on this topic.", out)

	out, err = c.Search(context.Background(), "কিছু না", intent.LangBangla)
	require.NoError(t, err)
	assert.Equal(t, "দুঃখিত, এই বিষয়ে কোনো তথ্য পাইনি।", out)
}

func TestSearch_ServerErrorIsUnavailable(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := c.Search(context.Background(), "anything", intent.LangEnglish)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearch_MissingCredentials(t *testing.T) {
	c := NewClient(config.SearchConfig{Timeout: time.Second})

	assert.False(t, c.Enabled())
	_, err := c.Search(context.Background(), "anything", intent.LangEnglish)
	assert.ErrorIs(t, err, ErrUnavailable)
}
