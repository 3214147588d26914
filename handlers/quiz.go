package handlers

import (
	"net/http"
	"strconv"
)

// GET /api/lists/{listID}/play?includeMastered=false&rounds=10
//
// Anonymous callers may play public lists; the mastery filter keys off the
// recorded statuses, not the caller's identity.
func (h *APIHandler) GetQuizTerms(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("listID")

	includeMastered := r.URL.Query().Get("includeMastered") != "false"
	rounds, err := strconv.Atoi(r.URL.Query().Get("rounds"))
	if err != nil || rounds < 1 {
		http.Error(w, "rounds must be a positive integer", http.StatusBadRequest)
		return
	}

	quizRounds, err := h.Service.QuizRoundsFor(listID, includeMastered, rounds)
	if err != nil {
		writeServiceError(w, "GetQuizTerms", err)
		return
	}

	writeJSON(w, http.StatusOK, quizRounds)
}
