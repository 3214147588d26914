package utils

import (
	"net/http"

	"github.com/Fabken42/study-quiz/auth"
)

// ViewerID identifies the caller on read paths that work for anonymous
// users too. Returns 0 when no valid session is present.
func ViewerID(r *http.Request) uint {
	userID, ok := auth.UserIDFromRequest(r)
	if !ok {
		return 0
	}
	return userID
}
