package api

import (
	"encoding/json"
	"net/http"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/store"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// writeSuccess writes data in the standard envelope with status 200.
func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// writeError writes a failure envelope with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIResponse{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// SplineResponse carries the evaluated points of one reconstructed
// radial function.
type SplineResponse struct {
	Channel string    `json:"channel"`
	Spin    string    `json:"spin"`
	Log     bool      `json:"log"`
	Points  []float64 `json:"points"`
	Values  []float64 `json:"values"`
}

// ServerConfig holds configuration for the query server
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string // optional; empty disables authentication
}

// SpeciesLoader defines the store operations the query server needs.
type SpeciesLoader interface {
	Load(key store.Key) (*species.Record, error)
}
