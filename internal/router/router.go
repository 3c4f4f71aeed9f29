package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"twitch_helix_client/internal/handlers/hello"
	twitchHandler "twitch_helix_client/internal/handlers/twitch"
	"twitch_helix_client/internal/middleware"
)

// NewWebRouter serves the greeting on / and the metrics in gatherer on /metrics.
func NewWebRouter(gatherer prometheus.Gatherer, allowedOrigins ...string) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/", hello.Greet).Methods(http.MethodGet, http.MethodHead)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")

	return middleware.ConfigureCORS(router, allowedOrigins...)
}

func NewDebugRouter(twh *twitchHandler.TwitchHandler) http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/twitch/users", twh.GetUsers).Methods("GET")
	router.HandleFunc("/twitch/streams", twh.GetStreams).Methods("GET")
	router.HandleFunc("/twitch/games", twh.GetGames).Methods("GET")

	return router
}
