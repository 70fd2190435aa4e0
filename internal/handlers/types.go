package handlers

import (
	"context"

	"github.com/clipsmart/clipsmart-web/internal/authform"
	"github.com/clipsmart/clipsmart-web/internal/notify"
	"github.com/clipsmart/clipsmart-web/model"
)

type AuthFormRegistry interface {
	Open(mode authform.Mode, notifier notify.Notifier) *authform.Controller
	Get(id string) (*authform.Controller, error)
	Close(id string)
}

type UserService interface {
	CacheUser(ctx context.Context, user *model.User) (*model.UserSummary, error)
	GetUser(ctx context.Context, userID string, accessToken string) (*model.UserSummary, error)
	ForgetUser(ctx context.Context, userID string) error
}

type NotificationQueue interface {
	For(clientID string) notify.Notifier
	Push(clientID string, n notify.Notification) error
	Drain(clientID string) ([]notify.Notification, error)
}
