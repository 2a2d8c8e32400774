package handlers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"blogapi/internal/config"
	"blogapi/internal/repository"
	"blogapi/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	PostRepo       repository.PostRepository
	CommentService service.CommentService
	CommentRepo    repository.CommentRepository
	UserRepo       repository.UserRepository
	StatusService  service.StatusService
	Cfg            *config.Config
	Validate       *validator.Validate
}

// NewValidator builds the request validator; errors are reported under the
// JSON field name.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		PostService:    service.Post,
		PostRepo:       repo.Post,
		CommentService: service.Comment,
		CommentRepo:    repo.Comment,
		UserRepo:       repo.User,
		StatusService:  service.Status,
		Cfg:            config,
		Validate:       NewValidator(),
	}
}
