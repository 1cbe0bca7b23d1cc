package api

import (
	"net/http"
	"time"

	"github.com/ndmello/songsapi/models"

	"github.com/gorilla/mux"
	_ "github.com/ndmello/songsapi/cmd/docs"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type songStoreI interface {
	Create(s models.Song) ([]models.Song, error)
	FindAll() []models.Song
}

// main API class
type SongsAPI struct {
	mux   *mux.Router
	store songStoreI
}

func New(store songStoreI) *SongsAPI {
	api := &SongsAPI{
		mux:   mux.NewRouter(),
		store: store,
	}
	api.routes()
	return api
}

func (api *SongsAPI) routes() {
	api.mux.HandleFunc("/songs", api.ListSongs).Methods(http.MethodGet)
	api.mux.HandleFunc("/songs", api.AddSong).Methods(http.MethodPost)
	api.mux.HandleFunc("/songs/{id}", api.GetSong).Methods(http.MethodGet)
	api.mux.HandleFunc("/songs/{id}", api.UpdateSong).Methods(http.MethodPut)
	api.mux.HandleFunc("/songs/{id}", api.RemoveSong).Methods(http.MethodDelete)
	api.mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	api.mux.Use(CORSMiddleware, LoggingMiddleware)
}

// Handler exposes the configured routing table.
func (api *SongsAPI) Handler() http.Handler {
	return api.mux
}

func (api *SongsAPI) Run(host string, port string) error {
	srv := &http.Server{
		Addr:         host + ":" + port,
		Handler:      api.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
