package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rajdesai17/finplay/internal/models"
	"github.com/rajdesai17/finplay/internal/progression"
	"github.com/rajdesai17/finplay/internal/service"
)

// ProgressHandler serves the progression state, the raw reward entry point,
// the notification endpoints and the reset lifecycle.
type ProgressHandler struct {
	progression *service.ProgressionService
	simulations *service.SimulationService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progression *service.ProgressionService, simulations *service.SimulationService) *ProgressHandler {
	return &ProgressHandler{progression: progression, simulations: simulations}
}

// GetProgress handles GET /api/progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.progression.State())
}

// ApplyReward handles POST /api/rewards. The body is a raw reward for
// content that computes its own numbers.
func (h *ProgressHandler) ApplyReward(w http.ResponseWriter, r *http.Request) {
	var reward models.Reward
	if err := json.NewDecoder(r.Body).Decode(&reward); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid reward payload", "", err)
		return
	}

	state, err := h.progression.ApplyReward(reward)
	if err != nil {
		if errors.Is(err, progression.ErrInvalidReward) {
			respondWithError(w, http.StatusBadRequest, "Reward values must be non-negative", "", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to apply reward", "Apply reward failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

// CurrentReward handles GET /api/rewards/current
func (h *ProgressHandler) CurrentReward(w http.ResponseWriter, r *http.Request) {
	reward, showing := h.progression.CurrentReward()
	if !showing {
		respondWithJSON(w, http.StatusOK, map[string]bool{"showing": false})
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]any{"showing": true, "reward": reward})
}

// DismissReward handles POST /api/rewards/dismiss. Dismissing with nothing
// showing is not an error.
func (h *ProgressHandler) DismissReward(w http.ResponseWriter, r *http.Request) {
	dismissed := h.progression.DismissReward()
	respondWithJSON(w, http.StatusOK, map[string]bool{"dismissed": dismissed})
}

// Reset handles POST /api/reset. It clears progression and run history.
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.progression.Reset(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset progress", "Reset failed", err)
		return
	}
	if err := h.simulations.ResetHistory(); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to reset run history", "History reset failed", err)
		return
	}
	respondWithJSON(w, http.StatusOK, h.progression.State())
}
