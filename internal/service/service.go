package service

import (
	"blogapi/internal/config"
	"blogapi/internal/repository"
	"blogapi/internal/storage"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Comment CommentService
	Status  StatusService
}

func NewService(rep *repository.Repository, cfg *config.Config, sessions storage.SessionStore) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, rep.Token, sessions),
		Post:    NewPostService(rep.Post),
		Comment: NewCommentService(rep.Comment, rep.Post),
		Status:  NewStatusService(rep.Status),
	}
}
