package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Fabken42/study-quiz/middleware"
	"github.com/Fabken42/study-quiz/utils"
)

// POST /api/lists
func (h *APIHandler) CreateTermList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		ListName    string `json:"listName"`
		Description string `json:"description"`
		Category    string `json:"category"`
		IsPublic    bool   `json:"isPublic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	list, err := h.Service.CreateTermList(user.ID, req.ListName, req.Description, req.Category, req.IsPublic)
	if err != nil {
		writeServiceError(w, "CreateTermList", err)
		return
	}

	log.Printf("CreateTermList: created list %s for user %d", list.PublicID, user.ID)
	writeJSON(w, http.StatusCreated, list)
}

// GET /api/lists/{listID}
func (h *APIHandler) GetTermListByID(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("listID")

	list, err := h.Service.GetTermList(listID, utils.ViewerID(r))
	if err != nil {
		writeServiceError(w, "GetTermListByID", err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// GET /api/lists/popular?category=
func (h *APIHandler) GetPopularLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.Service.PopularLists(r.URL.Query().Get("category"), 24)
	if err != nil {
		writeServiceError(w, "GetPopularLists", err)
		return
	}

	writeJSON(w, http.StatusOK, lists)
}

// GET /api/lists/recent?ids=a,b,c
func (h *APIHandler) GetRecentLists(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ids")
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	lists, err := h.Service.RecentLists(ids, 3)
	if err != nil {
		writeServiceError(w, "GetRecentLists", err)
		return
	}

	writeJSON(w, http.StatusOK, lists)
}

// DELETE /api/lists/{listID}
func (h *APIHandler) DeleteTermList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	listID := r.PathValue("listID")
	if err := h.Service.DeleteTermList(listID, user.ID); err != nil {
		writeServiceError(w, "DeleteTermList", err)
		return
	}

	log.Printf("DeleteTermList: deleted list %s by user %d", listID, user.ID)
	w.WriteHeader(http.StatusNoContent)
}

// PUT /api/lists/{listID}/favourite
func (h *APIHandler) ToggleFavourite(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.ToggleFavourite(r.PathValue("listID"), user.ID); err != nil {
		writeServiceError(w, "ToggleFavourite", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Favourite status toggled"})
}

// POST /api/lists/{listID}/reset-status
func (h *APIHandler) ResetStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.ResetMastery(r.PathValue("listID"), user.ID); err != nil {
		writeServiceError(w, "ResetStatus", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Status reset successfully"})
}
