package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

// PostRequest is the full-resubmit body for post create and update.
// A submitted author id is accepted for compatibility but never changes
// ownership: create binds the requester, update keeps the stored author.
type PostRequest struct {
	Title         string     `json:"title" validate:"required"`
	Text          string     `json:"text" validate:"required"`
	PublishedDate *time.Time `json:"published_date"`
	Author        int64      `json:"author"`
}

func idFromRequest(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request, identity *models.User) {
	posts, err := h.PostRepo.GetAll(r.Context())
	if err != nil {
		WriteServerError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request, identity *models.User) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	// ownership is always the requesting identity
	serviceReq := repository.CreatePostRequest{
		AuthorID:      identity.ID,
		Title:         req.Title,
		Text:          req.Text,
		PublishedDate: req.PublishedDate,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		WriteServerError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request, identity *models.User) {
	postID, ok := idFromRequest(r)
	if !ok {
		WriteError(w, "Not found.", http.StatusNotFound)
		return
	}

	post, err := h.PostRepo.GetByID(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Not found.", http.StatusNotFound)
		} else {
			WriteServerError(w, err)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request, identity *models.User) {
	postID, ok := idFromRequest(r)
	if !ok {
		WriteError(w, "Not found.", http.StatusNotFound)
		return
	}

	// resolve and authorize before reading the body: a non-owner gets 403
	// and an absent post gets 404 whatever the payload looks like
	if _, err := h.PostService.AuthorizeMutation(r.Context(), identity, postID); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "You are not authorized to edit this post.", http.StatusForbidden)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Not found.", http.StatusNotFound)
		default:
			WriteServerError(w, err)
		}
		return
	}

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	serviceReq := repository.UpdatePostRequest{
		PostID:        postID,
		Title:         req.Title,
		Text:          req.Text,
		PublishedDate: req.PublishedDate,
	}

	post, err := h.PostService.UpdatePost(r.Context(), identity, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "You are not authorized to edit this post.", http.StatusForbidden)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Not found.", http.StatusNotFound)
		default:
			WriteServerError(w, err)
		}
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request, identity *models.User) {
	postID, ok := idFromRequest(r)
	if !ok {
		WriteError(w, "Not found.", http.StatusNotFound)
		return
	}

	err := h.PostService.DeletePost(r.Context(), identity, postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			WriteError(w, "You are not authorized to delete this post.", http.StatusForbidden)
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Not found.", http.StatusNotFound)
		default:
			WriteServerError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
