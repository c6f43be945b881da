package session

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a key is blank
var ErrEmptyKey = errors.New("session key must not be empty")

// Repository is a durable key/value store for session state.
// Implementations never expire entries on their own.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
