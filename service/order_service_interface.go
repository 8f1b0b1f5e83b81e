package service

import (
	"context"

	"navillera/models"
)

// OrderServiceInterface defines the order submission contract.
type OrderServiceInterface interface {
	Submit(ctx context.Context, order *models.Order) error
}

var _ OrderServiceInterface = (*OrderService)(nil)
