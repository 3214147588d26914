package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Fabken42/study-quiz/config"
	"github.com/Fabken42/study-quiz/handlers"
	"github.com/Fabken42/study-quiz/middleware"
	"github.com/Fabken42/study-quiz/services"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	// Initialize database connection
	config.Connect()

	api := &handlers.APIHandler{Service: services.New(config.Database)}
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/signup", api.Signup)
	mux.HandleFunc("POST /api/auth/signin", api.Signin)
	mux.HandleFunc("POST /api/auth/signout", api.Signout)

	// Term lists
	mux.HandleFunc("POST /api/lists", middleware.RequireUser(api.CreateTermList))
	mux.HandleFunc("GET /api/lists/recent", api.GetRecentLists)
	mux.HandleFunc("GET /api/lists/popular", api.GetPopularLists)
	mux.HandleFunc("GET /api/lists/{listID}", api.GetTermListByID)
	mux.HandleFunc("POST /api/lists/{listID}/edit", middleware.RequireUser(api.UpdateTermListTerms))
	mux.HandleFunc("DELETE /api/lists/{listID}", middleware.RequireUser(api.DeleteTermList))
	mux.HandleFunc("PUT /api/lists/{listID}/favourite", middleware.RequireUser(api.ToggleFavourite))
	mux.HandleFunc("POST /api/lists/{listID}/reset-status", middleware.RequireUser(api.ResetStatus))

	// Quiz
	mux.HandleFunc("GET /api/lists/{listID}/play", api.GetQuizTerms)
	mux.HandleFunc("PUT /api/terms/{termID}/status", middleware.RequireUser(api.UpdateTermStatus))

	// Users
	mux.HandleFunc("GET /api/users/{username}/lists", api.GetUserLists)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	log.Printf("main: listening on %s", serverAddr)
	http.ListenAndServe(serverAddr, corsHandler)
}
