package main

import (
	"log"
	"log/slog"
	"os"

	songstore "github.com/ndmello/songsapi/internal/songstore"

	"github.com/ndmello/songsapi/internal/api"

	"github.com/joho/godotenv"
)

var cfg map[string]string

func init() {
	env, err := os.OpenFile("configs/cfg.env", os.O_RDONLY, os.ModeExclusive)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err = godotenv.Parse(env)
	if err != nil {
		log.Fatal(err)
	}
}

//	@title			SongsApi
//	@version		1.0
//	@description	API for a songs collection

//	@BasePath	/
func main() {
	store := songstore.New()
	sv := api.New(store)
	if err := sv.Run(cfgValue("SERVER_HOST", "0.0.0.0"), cfgValue("SERVER_PORT", "8080")); err != nil {
		slog.Error(err.Error())
	}
}

// cfgValue reads a parsed env key or returns a default value.
func cfgValue(key, fallback string) string {
	if value, ok := cfg[key]; ok && value != "" {
		return value
	}
	return fallback
}
