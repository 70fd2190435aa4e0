package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store keeps values of T by key. A zero expiration keeps the value until deleted.
type Store[T any] interface {
	Get(ctx context.Context, key string) (*T, error)
	Set(ctx context.Context, key string, val T, expiresIn time.Duration) error
	Del(ctx context.Context, key string) error
}
