package service

import (
	"context"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	AuthorizeMutation(ctx context.Context, identity *models.User, postID int64) (*models.Post, error)
	UpdatePost(ctx context.Context, identity *models.User, req repository.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, identity *models.User, postID int64) error
}

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// CreatePost stores a new post owned by req.AuthorID. Any authenticated
// identity may create; ownership is fixed for the post's lifetime.
func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		AuthorID:      req.AuthorID,
		Title:         req.Title,
		Text:          req.Text,
		PublishedDate: req.PublishedDate,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// AuthorizeMutation resolves the post and decides whether identity may
// mutate it. Handlers run this before looking at the request body, so a
// non-owner gets 403 and an absent id gets 404 regardless of the payload.
func (p *postService) AuthorizeMutation(ctx context.Context, identity *models.User, postID int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !CanMutate(identity, post) {
		return nil, ErrForbidden
	}

	return post, nil
}

// UpdatePost resubmits all mutable fields. The stored author is preserved:
// a resubmitted author value never changes ownership.
func (p *postService) UpdatePost(ctx context.Context, identity *models.User, req repository.UpdatePostRequest) (*models.Post, error) {
	post, err := p.AuthorizeMutation(ctx, identity, req.PostID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Text = req.Text
	post.PublishedDate = req.PublishedDate

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, identity *models.User, postID int64) error {
	if _, err := p.AuthorizeMutation(ctx, identity, postID); err != nil {
		return err
	}

	return p.postRepo.Delete(ctx, postID)
}
