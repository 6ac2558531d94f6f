package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *Entry) error
	Update(ctx context.Context, db *gorm.DB, entry *Entry) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, serviceID string) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]Entry, error)
	FindByID(ctx context.Context, db *gorm.DB, serviceID string) (*Entry, error)
}
