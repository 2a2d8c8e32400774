package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"blogapi/internal/logger"
	"blogapi/internal/models"
	"blogapi/internal/service"
)

type Middleware func(http.Handler) http.Handler

// AuthedHandler is a request handler that receives the resolved identity as
// a parameter. Handlers never read credentials from ambient request state.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, identity *models.User)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, detail string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{Detail: detail})
}

// RequireAuth resolves the request's credentials into a User before handler
// dispatch. It accepts "Authorization: Token <opaque>" or a session cookie;
// on failure the request terminates with 401 and no entity data.
func RequireAuth(auth service.AuthService, sessionCookie string, next AuthedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Token" || parts[1] == "" {
				writeError(w, "Invalid token header.", http.StatusUnauthorized)
				return
			}

			identity, err := auth.ResolveToken(r.Context(), parts[1])
			if err != nil {
				writeError(w, "Invalid token.", http.StatusUnauthorized)
				return
			}

			next(w, r, identity)
			return
		}

		if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
			identity, err := auth.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				writeError(w, "Invalid session.", http.StatusUnauthorized)
				return
			}

			next(w, r, identity)
			return
		}

		writeError(w, "Authentication credentials were not provided.", http.StatusUnauthorized)
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
