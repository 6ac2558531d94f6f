package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, entry *UsageEntry) error
	FindByPatient(ctx context.Context, db *gorm.DB, patientID string) ([]UsageEntry, error)
	// FindByPatientForUpdate locks the staged rows for the duration of the
	// surrounding transaction where the dialect supports row locking.
	FindByPatientForUpdate(ctx context.Context, db *gorm.DB, patientID string) ([]UsageEntry, error)
	DeleteByPatient(ctx context.Context, db *gorm.DB, patientID string) (int64, error)
}
