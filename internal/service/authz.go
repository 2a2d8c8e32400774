package service

import (
	"errors"

	"blogapi/internal/models"
)

// ErrForbidden is returned when an authenticated identity is not the owner
// of the post it tries to mutate.
var ErrForbidden = errors.New("identity is not the post author")

// CanMutate is the single ownership predicate for post mutation. Update and
// delete both go through it; no role hierarchy, no admin override.
func CanMutate(identity *models.User, post *models.Post) bool {
	if identity == nil || post == nil {
		return false
	}
	return identity.ID == post.AuthorID
}
