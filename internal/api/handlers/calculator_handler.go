package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sTrAy74/swi-web/internal/leadgen"
)

// CalculatorHandler serves the savings projection used on the landing page
type CalculatorHandler struct{}

// NewCalculatorHandler creates a calculator handler
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// ProjectSavings handles POST /api/calculator/savings
func (h *CalculatorHandler) ProjectSavings(w http.ResponseWriter, r *http.Request) {
	var input leadgen.SavingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Years > 100 {
		respondWithError(w, http.StatusBadRequest, "years must be 100 or less")
		return
	}

	respondWithJSON(w, http.StatusOK, leadgen.ProjectSavings(input))
}
