package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/internal/middleware"
)

// Routes builds the full route table. Item routes constrain {id} to an
// integer pattern, so malformed identifiers never reach a handler: they
// fall through to the 404 handler instead of turning into a 500.
func (h *Handlers) Routes() *mux.Router {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "Not found.", http.StatusNotFound)
	})

	router.HandleFunc("/", h.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", h.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api-token/", h.ObtainAuthToken).Methods(http.MethodPost)
	router.HandleFunc("/api-auth/login/", h.SessionLogin).Methods(http.MethodPost)
	router.HandleFunc("/api-auth/logout/", h.SessionLogout).Methods(http.MethodPost)

	requireAuth := func(next middleware.AuthedHandler) http.HandlerFunc {
		return middleware.RequireAuth(h.AuthService, h.Cfg.SessionCookie, next)
	}

	router.HandleFunc("/api/me/", requireAuth(h.Me)).Methods(http.MethodGet)

	router.HandleFunc("/api/", requireAuth(h.GetPosts)).Methods(http.MethodGet)
	router.HandleFunc("/api/", requireAuth(h.CreatePost)).Methods(http.MethodPost)
	router.HandleFunc("/api/{id:[0-9]+}/", requireAuth(h.GetPost)).Methods(http.MethodGet)
	router.HandleFunc("/api/{id:[0-9]+}/", requireAuth(h.UpdatePost)).Methods(http.MethodPut)
	router.HandleFunc("/api/{id:[0-9]+}/", requireAuth(h.DeletePost)).Methods(http.MethodDelete)

	router.HandleFunc("/apicomment/", requireAuth(h.GetComments)).Methods(http.MethodGet)
	router.HandleFunc("/apicomment/", requireAuth(h.CreateComment)).Methods(http.MethodPost)
	router.HandleFunc("/apicomment/{id:[0-9]+}/", requireAuth(h.GetComment)).Methods(http.MethodGet)
	router.HandleFunc("/apicomment/{id:[0-9]+}/", requireAuth(h.UpdateComment)).Methods(http.MethodPut)
	router.HandleFunc("/apicomment/{id:[0-9]+}/", requireAuth(h.DeleteComment)).Methods(http.MethodDelete)

	return router
}
