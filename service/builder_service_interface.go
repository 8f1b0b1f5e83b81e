package service

import (
	"navillera/bracelet"
	"navillera/models"
)

// BuilderServiceInterface defines the builder session store contract.
type BuilderServiceInterface interface {
	Create(size int, color models.BaseColor) (models.BuilderState, error)
	State(sessionID string) (models.BuilderState, error)
	With(sessionID string, fn func(b *bracelet.Bracelet) error) (models.BuilderState, error)
	SetColor(sessionID string, color models.BaseColor) (models.BuilderState, error)
	Drop(sessionID string)
}

var _ BuilderServiceInterface = (*BuilderService)(nil)
