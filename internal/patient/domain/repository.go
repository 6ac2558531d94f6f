package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, patient *Patient) error
	Update(ctx context.Context, db *gorm.DB, patient *Patient) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, patientID string) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]Patient, error)
	Exists(ctx context.Context, db *gorm.DB, patientID string) (bool, error)
}
