package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// decodeCredentials accepts a JSON body or a classic form post.
func decodeCredentials(r *http.Request) (TokenRequest, error) {
	var req TokenRequest

	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		err := json.NewDecoder(r.Body).Decode(&req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Username = r.PostFormValue("username")
	req.Password = r.PostFormValue("password")
	return req, nil
}

// ObtainAuthToken exchanges username/password for the user's opaque token.
func (h *Handlers) ObtainAuthToken(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(r)
	if err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	token, user, err := h.AuthService.ObtainToken(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			WriteNonFieldErrors(w, "Unable to log in with provided credentials.")
		} else {
			WriteServerError(w, err)
		}
		return
	}

	response := TokenResponse{
		Token:  token.Key,
		UserID: user.ID,
		Email:  user.Email,
	}

	WriteSuccess(w, response, http.StatusOK)
}

// SessionLogin opens a cookie-backed session as an alternative credential.
func (h *Handlers) SessionLogin(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentials(r)
	if err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	key, user, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			WriteNonFieldErrors(w, "Unable to log in with provided credentials.")
		} else {
			WriteServerError(w, err)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.SessionCookie,
		Value:    key,
		Path:     "/",
		MaxAge:   int(h.Cfg.SessionDuration.Seconds()),
		HttpOnly: true,
	})

	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) SessionLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.Cfg.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.AuthService.Logout(r.Context(), cookie.Value); err != nil {
			WriteServerError(w, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	WriteSuccess(w, ErrorResponse{Detail: "Logged out."}, http.StatusOK)
}

// Me echoes the authenticated identity.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request, identity *models.User) {
	WriteSuccess(w, identity, http.StatusOK)
}
