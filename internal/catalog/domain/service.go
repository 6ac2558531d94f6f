package domain

import (
	"context"
	"errors"
)

// MaxCost bounds the price of a single catalog entry.
const MaxCost = 5000

type CreateEntryRequest struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
}

type UpdateEntryRequest struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`
}

type Service interface {
	Create(context.Context, CreateEntryRequest) (Entry, error)
	Update(context.Context, UpdateEntryRequest) (Entry, error)
	Delete(ctx context.Context, serviceID string) error
	List(context.Context) ([]Entry, error)
	GetByID(ctx context.Context, serviceID string) (Entry, error)
}

var (
	ErrInvalidServiceID = errors.New("invalid_service_id")
	ErrInvalidName      = errors.New("invalid_service_name")
	ErrInvalidCost      = errors.New("invalid_cost")
	ErrEntryExists      = errors.New("service_exists")
	ErrNotFound         = errors.New("service_not_found")
)
