package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blogapi/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type TokenRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*models.Token, error)
	GetUserByKey(ctx context.Context, key string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int64) error
	Exists(ctx context.Context, postID int64) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID int64) (*models.Comment, error)
	GetAll(ctx context.Context) ([]models.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, commentID int64) error
	DeleteByPostID(ctx context.Context, postID int64) error
}

type StatusRepository interface {
	CountTables(ctx context.Context) (int, error)
}

type Repository struct {
	User    UserRepository
	Token   TokenRepository
	Post    PostRepository
	Comment CommentRepository
	Status  StatusRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Token:   NewTokenRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Status:  NewStatusRepository(db),
	}
}
