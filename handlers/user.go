package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/Fabken42/study-quiz/auth"
	"github.com/Fabken42/study-quiz/models"
	"github.com/Fabken42/study-quiz/utils"
)

// POST /api/auth/signup
func (h *APIHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "Username, email and password are required", http.StatusBadRequest)
		return
	}

	var existing models.User
	if err := h.Service.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		http.Error(w, "User already exists", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Signup: failed to hash password: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.Service.DB.Create(&user).Error; err != nil {
		log.Printf("Signup: failed to create user: %v", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	token, err := auth.CreateToken(user.ID)
	if err != nil {
		log.Printf("Signup: failed to create token: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, token)
	log.Printf("Signup: created user %s", user.Username)
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       user.ID,
		"username": user.Username,
	})
}

// POST /api/auth/signin
func (h *APIHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var user models.User
	if err := h.Service.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid credentials", http.StatusBadRequest)
		return
	}

	token, err := auth.CreateToken(user.ID)
	if err != nil {
		log.Printf("Signin: failed to create token: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, token)
	writeJSON(w, http.StatusOK, map[string]any{
		"id":       user.ID,
		"username": user.Username,
	})
}

// POST /api/auth/signout
func (h *APIHandler) Signout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out successfully"})
}

// GET /api/users/{username}/lists
func (h *APIHandler) GetUserLists(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		http.Error(w, "Username is required", http.StatusBadRequest)
		return
	}

	created, favourited, err := h.Service.UserLists(username, utils.ViewerID(r))
	if err != nil {
		writeServiceError(w, "GetUserLists", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"createdLists":    created,
		"favouritedLists": favourited,
	})
}
