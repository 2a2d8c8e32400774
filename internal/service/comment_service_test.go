package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type fakeCommentRepo struct {
	comments map[int64]*models.Comment
	nextID   int64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[int64]*models.Comment), nextID: 1}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentRepo) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	comment, ok := f.comments[commentID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeCommentRepo) GetAll(ctx context.Context) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCommentRepo) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	out := []models.Comment{}
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) Update(ctx context.Context, comment *models.Comment) error {
	if _, ok := f.comments[comment.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *comment
	f.comments[comment.ID] = &copied
	return nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, commentID int64) error {
	if _, ok := f.comments[commentID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.comments, commentID)
	return nil
}

func (f *fakeCommentRepo) DeleteByPostID(ctx context.Context, postID int64) error {
	for id, c := range f.comments {
		if c.PostID == postID {
			delete(f.comments, id)
		}
	}
	return nil
}

func TestCommentServiceCreate(t *testing.T) {
	t.Run("comment binds to an existing post", func(t *testing.T) {
		posts := newFakePostRepo(&models.Post{ID: 1, AuthorID: 1})
		svc := NewCommentService(newFakeCommentRepo(), posts)

		comment, err := svc.CreateComment(context.Background(), repository.CreateCommentRequest{
			PostID:          1,
			Author:          "AJ Santos",
			Text:            "I like this post",
			ApprovedComment: true,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), comment.PostID)
		assert.True(t, comment.ApprovedComment)
	})

	t.Run("comment cannot exist without its post", func(t *testing.T) {
		svc := NewCommentService(newFakeCommentRepo(), newFakePostRepo())

		comment, err := svc.CreateComment(context.Background(), repository.CreateCommentRequest{
			PostID: 999,
			Author: "Spaghetti",
			Text:   "Chilling",
		})

		assert.Nil(t, comment)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestCommentServiceUpdate(t *testing.T) {
	t.Run("rebinding to a nonexistent post is rejected", func(t *testing.T) {
		posts := newFakePostRepo(&models.Post{ID: 1, AuthorID: 1})
		comments := newFakeCommentRepo()
		require.NoError(t, comments.Create(context.Background(), &models.Comment{PostID: 1, Author: "hi", Text: "x"}))

		svc := NewCommentService(comments, posts)

		_, err := svc.UpdateComment(context.Background(), repository.UpdateCommentRequest{
			CommentID: 1,
			PostID:    42,
			Author:    "hi",
			Text:      "x",
		})

		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("full resubmit replaces every field", func(t *testing.T) {
		posts := newFakePostRepo(&models.Post{ID: 1, AuthorID: 1})
		comments := newFakeCommentRepo()
		require.NoError(t, comments.Create(context.Background(), &models.Comment{
			PostID: 1, Author: "AJ Santos", Text: "I like this post", ApprovedComment: true,
		}))

		svc := NewCommentService(comments, posts)

		updated, err := svc.UpdateComment(context.Background(), repository.UpdateCommentRequest{
			CommentID:       1,
			PostID:          1,
			Author:          "Somebody Else",
			Text:            "edited",
			ApprovedComment: false,
		})

		require.NoError(t, err)
		assert.Equal(t, "Somebody Else", updated.Author)
		assert.Equal(t, "edited", updated.Text)
		assert.False(t, updated.ApprovedComment)
	})
}
