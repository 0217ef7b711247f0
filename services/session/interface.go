// Package session holds wizard state keyed by session id.
package session

import (
	"context"
	"errors"

	"voiceform/models"
)

// ErrSessionNotFound is returned when an id is unknown or has expired.
var ErrSessionNotFound = errors.New("session not found or expired")

// Store persists form sessions. Put is last-write-wins per id; concurrent
// writers to the same id are not ordered.
type Store interface {
	Get(ctx context.Context, id string) (*models.FormSession, error)
	Put(ctx context.Context, s *models.FormSession) error
	Delete(ctx context.Context, id string) error
}
