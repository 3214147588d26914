package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Fabken42/study-quiz/middleware"
)

// PUT /api/terms/{termID}/status
func (h *APIHandler) UpdateTermStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	termID, err := strconv.ParseUint(r.PathValue("termID"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid term ID", http.StatusBadRequest)
		return
	}

	var req struct {
		IsCorrect bool `json:"isCorrect"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	status, err := h.Service.RecordAnswer(uint(termID), user.ID, req.IsCorrect)
	if err != nil {
		writeServiceError(w, "UpdateTermStatus", err)
		return
	}

	writeJSON(w, http.StatusOK, status)
}
