// Package server implements the REST API to queue blink patterns: morse
// text, raw bit strings, or named patterns from the library.
package server

import (
	"net/http"

	"github.com/clambin/blinkq/internal/library"
	"github.com/clambin/blinkq/internal/player"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server dispatches API requests to the player and the pattern library
type Server struct {
	player  *player.Player
	library *library.Library
}

// New creates a new Server
func New(p *player.Player, l *library.Library) *Server {
	return &Server{player: p, library: l}
}

// MakeRouter returns the router for the API and the prometheus metrics
func (s *Server) MakeRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(prometheusMiddleware)
	r.Path("/metrics").Handler(promhttp.Handler())
	r.HandleFunc("/blink", s.handleBlink).Methods(http.MethodPost)
	r.HandleFunc("/pattern", s.handlePattern).Methods(http.MethodPost)
	r.HandleFunc("/queue", s.handleQueue).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	return r
}

// Prometheus metrics
var httpDuration = promauto.NewSummaryVec(prometheus.SummaryOpts{
	Name: "blinkq_http_duration_seconds",
	Help: "API duration of HTTP requests.",
}, []string{"path"})

func prometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path, _ := mux.CurrentRoute(req).GetPathTemplate()
		timer := prometheus.NewTimer(httpDuration.WithLabelValues(path))
		next.ServeHTTP(w, req)
		timer.ObserveDuration()
	})
}
