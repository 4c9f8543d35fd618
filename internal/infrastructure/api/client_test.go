package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsite/internal/domain"
	"medsite/internal/domain/entities"
	"medsite/internal/domain/language"
	"medsite/internal/infrastructure/api"
)

func TestFetch(t *testing.T) {
	var gotPath, gotLang, gotHeader, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLang = r.URL.Query().Get("lang")
		gotHeader = r.Header.Get("Accept-Language")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 2, "results": [{"id": 1, "title_kg": "Жаңылык"}, {"id": 2, "title": "Новость"}]}`))
	}))
	defer srv.Close()

	c, err := api.NewClient(srv.URL+"/api/", nil)
	require.NoError(t, err)

	res, _ := entities.LookupResource("news")
	records, err := c.Fetch(context.Background(), res, language.KG)
	require.NoError(t, err)

	assert.Equal(t, "/api/news/", gotPath)
	assert.Equal(t, "ky", gotLang)
	assert.Equal(t, "ky", gotHeader)
	assert.Equal(t, "application/json", gotAccept)
	require.Len(t, records, 2)
	assert.Equal(t, "Жаңылык", records[0]["title_kg"])
	assert.Equal(t, float64(2), records[1]["id"])
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := api.NewClient(srv.URL, nil)
	require.NoError(t, err)

	res, _ := entities.LookupResource("events")
	_, err = c.Fetch(context.Background(), res, language.RU)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := api.NewClient(url, nil)
	require.NoError(t, err)

	res, _ := entities.LookupResource("events")
	_, err = c.Fetch(context.Background(), res, language.EN)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestNewClientRejectsRelativeURL(t *testing.T) {
	_, err := api.NewClient("/api", nil)
	assert.Error(t, err)
}

func TestDecodeRecords(t *testing.T) {
	records, err := api.DecodeRecords([]byte(` [{"name": "a"}, {"name": "b"}] `))
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = api.DecodeRecords([]byte(`{"id": 5, "title_en": "One"}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "One", records[0]["title_en"])

	records, err = api.DecodeRecords([]byte(`{"success": true, "data": [{"name_en": "Partner"}]}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Partner", records[0]["name_en"])

	records, err = api.DecodeRecords([]byte(`{"data": "not a list", "name": "x"}`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "x", records[0]["name"])

	records, err = api.DecodeRecords([]byte(`{"results": []}`))
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = api.DecodeRecords([]byte(``))
	assert.Error(t, err)
	_, err = api.DecodeRecords([]byte(`"text"`))
	assert.Error(t, err)
	_, err = api.DecodeRecords([]byte(`[1, 2]`))
	assert.Error(t, err)
}
