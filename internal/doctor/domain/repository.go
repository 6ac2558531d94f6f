package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, doctor *Doctor) error
	Update(ctx context.Context, db *gorm.DB, doctor *Doctor) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, doctorID string) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]Doctor, error)
	Exists(ctx context.Context, db *gorm.DB, doctorID string) (bool, error)
}
