package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

// CommentRequest is the full-resubmit body for comment create and update.
// PostID is a pointer so a missing "post" field fails required validation
// instead of silently binding post id 0.
type CommentRequest struct {
	PostID          *int64 `json:"post" validate:"required"`
	Author          string `json:"author" validate:"required"`
	Text            string `json:"text" validate:"required"`
	ApprovedComment bool   `json:"approved_comment"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request, identity *models.User) {
	var comments []models.Comment
	var err error

	// optional one-to-many navigation: ?post=<id>
	if postParam := r.URL.Query().Get("post"); postParam != "" {
		postID, perr := strconv.ParseInt(postParam, 10, 64)
		if perr != nil {
			WriteFieldErrors(w, map[string][]string{"post": {"This field is invalid."}})
			return
		}
		comments, err = h.CommentRepo.GetByPostID(r.Context(), postID)
	} else {
		comments, err = h.CommentRepo.GetAll(r.Context())
	}

	if err != nil {
		WriteServerError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request, identity *models.User) {
	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	serviceReq := repository.CreateCommentRequest{
		PostID:          *req.PostID,
		Author:          req.Author,
		Text:            req.Text,
		ApprovedComment: req.ApprovedComment,
	}

	comment, err := h.CommentService.CreateComment(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			WriteFieldErrors(w, map[string][]string{"post": {"Referenced post does not exist."}})
		} else {
			WriteServerError(w, err)
		}
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request, identity *models.User) {
	commentID, ok := idFromRequest(r)
	if !ok {
		WriteError(w, "Not found.", http.StatusNotFound)
		return
	}

	comment, err := h.CommentRepo.GetByID(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Not found.", http.StatusNotFound)
		} else {
			WriteServerError(w, err)
		}
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

// UpdateComment has no ownership policy: any authenticated identity may
// mutate any comment. Posts are the only owner-guarded resource.
func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request, identity *models.User) {
	commentID, ok := idFromRequest(r)
	if !ok {
		WriteError(w, "Not found.", http.StatusNotFound)
		return
	}

	// resolve the comment before reading the body so an absent id is a
	// 404 even when the payload would not validate
	if _, err := h.CommentRepo.GetByID(r.Context(), commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Not found.", http.StatusNotFound)
		} else {
			WriteServerError(w, err)
		}
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteValidationError(w, err)
		return
	}

	serviceReq := repository.UpdateCommentRequest{
		CommentID:       commentID,
		PostID:          *req.PostID,
		Author:          req.Author,
		Text:            req.Text,
		ApprovedComment: req.ApprovedComment,
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			WriteFieldErrors(w, map[string][]string{"post": {"Referenced post does not exist."}})
		case errors.Is(err, repository.ErrNotFound):
			WriteError(w, "Not found.", http.StatusNotFound)
		default:
			WriteServerError(w, err)
		}
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request, identity *models.User) {
	commentID, ok := idFromRequest(r)
	if !ok {
		WriteError(w, "Not found.", http.StatusNotFound)
		return
	}

	err := h.CommentService.DeleteComment(r.Context(), commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Not found.", http.StatusNotFound)
		} else {
			WriteServerError(w, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
