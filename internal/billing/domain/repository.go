package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, bill *Bill) error
	UpdateByID(ctx context.Context, db *gorm.DB, bill *Bill) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, billID string) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]Bill, error)
}
