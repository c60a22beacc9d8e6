package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rajdesai17/finplay/internal/content"
	"github.com/rajdesai17/finplay/internal/progression"
	"github.com/rajdesai17/finplay/internal/service"
)

// SimulationHandler serves the content catalog, completion submissions and
// the report card.
type SimulationHandler struct {
	simulations *service.SimulationService
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(simulations *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{simulations: simulations}
}

// List handles GET /api/simulations
func (h *SimulationHandler) List(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.simulations.List())
}

// Complete handles POST /api/simulations/{id}/complete
func (h *SimulationHandler) Complete(w http.ResponseWriter, r *http.Request) {
	simulationID := r.PathValue("id")

	var outcome content.Outcome
	if err := json.NewDecoder(r.Body).Decode(&outcome); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid outcome payload", "", err)
		return
	}

	result, err := h.simulations.Complete(simulationID, outcome)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownSimulation):
			respondWithError(w, http.StatusNotFound, "Unknown simulation", "", nil)
		case errors.Is(err, progression.ErrInvalidReward):
			respondWithError(w, http.StatusBadRequest, "Reward values must be non-negative", "", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to complete simulation", "Complete failed", err)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// Report handles GET /api/report
func (h *SimulationHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.simulations.Report()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to build report", "Report failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}
