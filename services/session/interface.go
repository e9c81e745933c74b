// File: loanguard/services/session/interface.go
package session

import (
	"context"
	"errors"

	"loanguard/models"
)

// ErrTxFailed is returned when an update kept losing optimistic-lock races.
var ErrTxFailed = errors.New("session update conflicted too many times")

// UpdateFunc derives the next snapshot from the current one. It must not
// mutate its argument and may be called more than once.
type UpdateFunc func(models.AppState) models.AppState

// Store keeps one AppState per session id. Unknown or expired ids read as a
// fresh default state.
type Store interface {
	Get(ctx context.Context, id string) (models.AppState, error)
	Update(ctx context.Context, id string, fn UpdateFunc) (models.AppState, error)
	Clear(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
