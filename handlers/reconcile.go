package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Fabken42/study-quiz/middleware"
	"github.com/Fabken42/study-quiz/services"
)

// POST /api/lists/{listID}/edit
//
// Full-list edit: the request carries the complete term array in display
// order. Entries with an id update existing terms, entries without one are
// created, and any existing term missing from the array is deleted. The
// whole submission is applied atomically or not at all.
func (h *APIHandler) UpdateTermListTerms(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	listID := r.PathValue("listID")

	var req struct {
		ListName    string               `json:"listName"`
		Description string               `json:"description"`
		IsPublic    bool                 `json:"isPublic"`
		Terms       []services.TermInput `json:"terms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("UpdateTermListTerms: invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	list, err := h.Service.ReconcileTerms(listID, user.ID, req.ListName, req.Description, req.IsPublic, req.Terms)
	if err != nil {
		writeServiceError(w, "UpdateTermListTerms", err)
		return
	}

	log.Printf("UpdateTermListTerms: list %s now has %d terms", listID, len(list.Terms))
	writeJSON(w, http.StatusOK, list)
}
