package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type stubAuthService struct {
	tokenUsers   map[string]*models.User
	sessionUsers map[string]*models.User
}

func (s *stubAuthService) ObtainToken(ctx context.Context, username, password string) (*models.Token, *models.User, error) {
	return nil, nil, errors.New("not implemented")
}

func (s *stubAuthService) ResolveToken(ctx context.Context, key string) (*models.User, error) {
	if user, ok := s.tokenUsers[key]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	return "", nil, errors.New("not implemented")
}

func (s *stubAuthService) ResolveSession(ctx context.Context, key string) (*models.User, error) {
	if user, ok := s.sessionUsers[key]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubAuthService) Logout(ctx context.Context, key string) error {
	return nil
}

func TestRequireAuth(t *testing.T) {
	auth := &stubAuthService{
		tokenUsers:   map[string]*models.User{"good-token": {ID: 1, Username: "wkwkwk"}},
		sessionUsers: map[string]*models.User{"good-session": {ID: 2, Username: "user2"}},
	}

	capture := func(got **models.User) middleware.AuthedHandler {
		return func(w http.ResponseWriter, r *http.Request, identity *models.User) {
			*got = identity
			w.WriteHeader(http.StatusOK)
		}
	}

	t.Run("token header resolves into the identity parameter", func(t *testing.T) {
		var got *models.User
		handler := middleware.RequireAuth(auth, "sessionid", capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Header.Set("Authorization", "Token good-token")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("session cookie resolves into the identity parameter", func(t *testing.T) {
		var got *models.User
		handler := middleware.RequireAuth(auth, "sessionid", capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.AddCookie(&http.Cookie{Name: "sessionid", Value: "good-session"})
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("missing credentials are rejected", func(t *testing.T) {
		var got *models.User
		handler := middleware.RequireAuth(auth, "sessionid", capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, got)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Authentication credentials were not provided.", resp["detail"])
	})

	t.Run("wrong header scheme is rejected", func(t *testing.T) {
		var got *models.User
		handler := middleware.RequireAuth(auth, "sessionid", capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, got)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		var got *models.User
		handler := middleware.RequireAuth(auth, "sessionid", capture(&got))

		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Header.Set("Authorization", "Token bogus")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Nil(t, got)
	})
}
