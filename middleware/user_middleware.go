package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/Fabken42/study-quiz/auth"
	"github.com/Fabken42/study-quiz/config"
	"github.com/Fabken42/study-quiz/models"
)

type contextKey string

const userKey contextKey = "user"

// RequireUser rejects requests without a valid session and attaches the
// session user to the request context for downstream handlers.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.UserIDFromRequest(r)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var user models.User
		if err := config.Database.First(&user, userID).Error; err != nil {
			log.Printf("RequireUser: user %d from valid token not found: %v", userID, err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// CurrentUser returns the session user attached by RequireUser, if any.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}
