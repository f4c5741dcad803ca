// Package api serves compiled species records over HTTP: record fetches
// as JSON and on-demand spline evaluation of stored radial channels. The
// surface is read-only; compiling records stays a CLI/generator concern.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes configures the router for a query server.
func Routes(server *Server, metrics *Metrics, apiKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if apiKey != "" {
			r.Use(requireAPIKey(apiKey))
		}

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		species := "/species/{dataset}/{elem}/{charge}/{mult}/{nexc}"
		r.Get(species, metrics.InstrumentHandler("GET", "/api/v1"+species, server.handleGetSpecies))
		r.Get(species+"/spline", metrics.InstrumentHandler("GET", "/api/v1"+species+"/spline", server.handleSpline))
	})

	return r
}

// StartServer starts the HTTP query server with all routes configured
func StartServer(store SpeciesLoader, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(store, config, metrics)
	r := Routes(server, metrics, config.APIKey)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("AtomDB query server listening on %s\n", addr)
	return http.ListenAndServe(addr, r)
}
