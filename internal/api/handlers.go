package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ndmello/songsapi/models"

	songstore "github.com/ndmello/songsapi/internal/songstore"

	"github.com/gorilla/mux"
)

// Placeholder replies for the routes not wired to the store yet.
const (
	getSongReply    = "Song Received!!"
	updateSongReply = "Song updated succesfully!!"
	removeSongReply = "Song removed succesfully!!"
)

//	@Summary		List all songs
//	@Description	Returns every stored song in insertion order
//	@produce		json
//	@Success		200	{array}	models.Song
//	@Failure		500
//	@Router			/songs [get]
func (api *SongsAPI) ListSongs(w http.ResponseWriter, r *http.Request) {
	result := api.store.FindAll()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(result)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		slog.Error("marshalling error: "+err.Error(), slog.String("from", r.RemoteAddr))
		return
	}
	slog.Info("listed songs", slog.Int("count", len(result)), slog.String("from", r.RemoteAddr))
}

//	@Summary		Add a song
//	@Description	Appends the fixed demo record to the collection and responds with
//	@Description	the full updated list. The request body is not consumed.
//	@produce		json
//	@Success		200	{array}	models.Song
//	@Failure		400,	500
//	@Router			/songs [post]
func (api *SongsAPI) AddSong(w http.ResponseWriter, r *http.Request) {
	// The create payload is fixed; the request body is intentionally ignored.
	result, err := api.store.Create(models.Song{Title: "Ulazi ", Artist: "Amaroto "})
	if err != nil {
		if errors.Is(err, songstore.ErrIncompleteSong) {
			w.WriteHeader(http.StatusBadRequest)
			slog.Error("incomplete song rejected", slog.String("from", r.RemoteAddr))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		slog.Error("store error: "+err.Error(), slog.String("from", r.RemoteAddr))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(result)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		slog.Error("marshalling error: "+err.Error(), slog.String("from", r.RemoteAddr))
		return
	}
	slog.Info("added song", slog.Int("count", len(result)), slog.String("from", r.RemoteAddr))
}

//	@Summary		Get one song
//	@Description	Placeholder: the id is not looked up, a fixed acknowledgment is returned
//	@Param			id	path	string	true
//	@produce		plain
//	@Success		200	{string}	string
//	@Router			/songs/{id} [get]
func (api *SongsAPI) GetSong(w http.ResponseWriter, r *http.Request) {
	api.placeholderReply(w, r, getSongReply)
}

//	@Summary		Update a song
//	@Description	Placeholder: id and body are ignored, a fixed acknowledgment is returned
//	@Param			id	path	string	true
//	@produce		plain
//	@Success		200	{string}	string
//	@Router			/songs/{id} [put]
func (api *SongsAPI) UpdateSong(w http.ResponseWriter, r *http.Request) {
	api.placeholderReply(w, r, updateSongReply)
}

//	@Summary		Remove a song
//	@Description	Placeholder: the id is ignored, a fixed acknowledgment is returned
//	@Param			id	path	string	true
//	@produce		plain
//	@Success		200	{string}	string
//	@Router			/songs/{id} [delete]
func (api *SongsAPI) RemoveSong(w http.ResponseWriter, r *http.Request) {
	api.placeholderReply(w, r, removeSongReply)
}

// Id lookup is an extension point: these routes acknowledge with a
// fixed literal and never touch the store.
func (api *SongsAPI) placeholderReply(w http.ResponseWriter, r *http.Request, reply string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := w.Write([]byte(reply))
	if err != nil {
		slog.Error("response writing error: "+err.Error(), slog.String("from", r.RemoteAddr))
		return
	}
	slog.Info("placeholder reply", slog.String("id", mux.Vars(r)["id"]), slog.String("reply", reply), slog.String("from", r.RemoteAddr))
}

// Applying CORS options middleware
func CORSMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		w.Header().Set("Access-Control-Max-Age", "20")
		w.Header().Set("Access-Control-Allow-Origin", "http://127.0.0.1:*")
		h.ServeHTTP(w, r)
	})
}

// Access log middleware
func LoggingMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("incoming request", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.String("from", r.RemoteAddr))
		h.ServeHTTP(w, r)
	})
}
