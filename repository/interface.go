package repository

import (
	"context"

	"navillera/models"
)

// OrderRecorderInterface defines the contract for the order-recording
// collaborator.
type OrderRecorderInterface interface {
	Append(ctx context.Context, order *models.Order) error
}

// OrderReaderInterface defines the contract for reading recorded orders back
// for the admin listing.
type OrderReaderInterface interface {
	List(ctx context.Context) ([]models.OrderRecord, error)
}

// StockRepositoryInterface defines the contract for the stock collaborator.
type StockRepositoryInterface interface {
	GetAll(ctx context.Context) (map[string]int, error)
	Set(ctx context.Context, charmName string, quantity int) (int, error)
}

// BaseColorRepositoryInterface defines the contract for base-color
// availability persistence.
type BaseColorRepositoryInterface interface {
	Read() (map[models.BaseColor]bool, error)
	SetSoldOut(color models.BaseColor, soldOut bool) error
}
