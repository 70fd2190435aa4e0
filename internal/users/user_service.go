package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/clipsmart/clipsmart-web/internal/authclient"
	"github.com/clipsmart/clipsmart-web/internal/store"
	"github.com/clipsmart/clipsmart-web/model"
)

type AccountAPI interface {
	Me(ctx context.Context, accessToken string) (*model.User, error)
}

// UserService serves the signed-in user's summary from the cache and falls
// back to the backend on a miss.
type UserService struct {
	api        AccountAPI
	cache      store.Store[model.UserSummary]
	expiration time.Duration
}

func (s *UserService) CacheUser(ctx context.Context, user *model.User) (*model.UserSummary, error) {
	summary := user.Summary()
	if err := s.cache.Set(ctx, user.ID, summary, s.expiration); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *UserService) GetUser(ctx context.Context, userID string, accessToken string) (*model.UserSummary, error) {
	if userID == "" {
		return nil, ErrUserNotFound
	}
	summary, err := s.cache.Get(ctx, userID)
	if err == nil {
		return summary, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user, err := s.api.Me(ctx, accessToken)
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}
	if user.ID != userID {
		return nil, fmt.Errorf("%w: token belongs to %s", ErrUserNotFound, user.ID)
	}
	return s.CacheUser(ctx, user)
}

func (s *UserService) ForgetUser(ctx context.Context, userID string) error {
	return s.cache.Del(ctx, userID)
}

func NewUserService(api AccountAPI, cache store.Store[model.UserSummary], expiration time.Duration) *UserService {
	return &UserService{
		api:        api,
		cache:      cache,
		expiration: expiration,
	}
}
