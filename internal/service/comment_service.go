package service

import (
	"context"
	"errors"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// ErrPostNotFound reports a comment pointing at a post that does not exist.
// Handlers surface it as a field validation error, not a 404.
var ErrPostNotFound = errors.New("referenced post does not exist")

type CommentService interface {
	CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, req repository.UpdateCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// CreateComment stores a comment bound to exactly one existing post.
// There is no ownership rule on comments: author is a free-text label and
// any authenticated identity may mutate any comment.
func (c *commentService) CreateComment(ctx context.Context, req repository.CreateCommentRequest) (*models.Comment, error) {
	ok, err := c.postRepo.Exists(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrPostNotFound
	}

	comment := &models.Comment{
		PostID:          req.PostID,
		Author:          req.Author,
		Text:            req.Text,
		ApprovedComment: req.ApprovedComment,
	}

	if err := c.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *commentService) UpdateComment(ctx context.Context, req repository.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := c.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		return nil, err
	}

	if req.PostID != comment.PostID {
		ok, err := c.postRepo.Exists(ctx, req.PostID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrPostNotFound
		}
	}

	comment.PostID = req.PostID
	comment.Author = req.Author
	comment.Text = req.Text
	comment.ApprovedComment = req.ApprovedComment

	if err := c.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	return c.commentRepo.Delete(ctx, commentID)
}
