package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	songstore "github.com/ndmello/songsapi/internal/songstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI() *SongsAPI {
	return New(songstore.New())
}

func do(t *testing.T, api *SongsAPI, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, req)
	return rec
}

func TestListSongsEmptyStore(t *testing.T) {
	api := newTestAPI()
	rec := do(t, api, http.MethodGet, "/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAddSongThenList(t *testing.T) {
	api := newTestAPI()

	rec := do(t, api, http.MethodPost, "/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"title":"Ulazi ","artist":"Amaroto "}]`, rec.Body.String())

	rec = do(t, api, http.MethodGet, "/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"title":"Ulazi ","artist":"Amaroto "}]`, rec.Body.String())
}

func TestAddSongIgnoresRequestBody(t *testing.T) {
	api := newTestAPI()
	body := strings.NewReader(`{"title":"Osama","artist":"Zakes Bantwini"}`)
	rec := do(t, api, http.MethodPost, "/songs", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"title":"Ulazi ","artist":"Amaroto "}]`, rec.Body.String())
}

func TestRepeatedAddSongKeepsOrder(t *testing.T) {
	api := newTestAPI()
	do(t, api, http.MethodPost, "/songs", nil)
	do(t, api, http.MethodPost, "/songs", nil)

	rec := do(t, api, http.MethodGet, "/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"title":"Ulazi ","artist":"Amaroto "},{"title":"Ulazi ","artist":"Amaroto "}]`,
		rec.Body.String())
}

func TestPlaceholderRoutes(t *testing.T) {
	cases := []struct {
		method string
		target string
		reply  string
	}{
		{http.MethodGet, "/songs/42", "Song Received!!"},
		{http.MethodGet, "/songs/not-a-number", "Song Received!!"},
		{http.MethodPut, "/songs/42", "Song updated succesfully!!"},
		{http.MethodPut, "/songs/whatever", "Song updated succesfully!!"},
		{http.MethodDelete, "/songs/42", "Song removed succesfully!!"},
		{http.MethodDelete, "/songs/zz-9", "Song removed succesfully!!"},
	}
	for _, c := range cases {
		t.Run(c.method+" "+c.target, func(t *testing.T) {
			api := newTestAPI()
			// same reply whether the store is empty or not
			rec := do(t, api, c.method, c.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, c.reply, rec.Body.String())

			do(t, api, http.MethodPost, "/songs", nil)
			rec = do(t, api, c.method, c.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, c.reply, rec.Body.String())
		})
	}
}

func TestPlaceholderRoutesDoNotTouchStore(t *testing.T) {
	api := newTestAPI()
	do(t, api, http.MethodPost, "/songs", nil)
	do(t, api, http.MethodPut, "/songs/0", strings.NewReader(`{"title":"x","artist":"y"}`))
	do(t, api, http.MethodDelete, "/songs/0", nil)

	rec := do(t, api, http.MethodGet, "/songs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"title":"Ulazi ","artist":"Amaroto "}]`, rec.Body.String())
}

func TestJSONContentType(t *testing.T) {
	api := newTestAPI()
	rec := do(t, api, http.MethodGet, "/songs", nil)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = do(t, api, http.MethodGet, "/songs/1", nil)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
}
