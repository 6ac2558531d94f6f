package repository

import (
	"context"

	"github.com/caredesk/caredesk/internal/ledger/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, entry *domain.UsageEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *repo) FindByPatient(ctx context.Context, db *gorm.DB, patientID string) ([]domain.UsageEntry, error) {
	var entries []domain.UsageEntry
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Find(&entries).Error
	return entries, err
}

func (r *repo) FindByPatientForUpdate(ctx context.Context, db *gorm.DB, patientID string) ([]domain.UsageEntry, error) {
	stmt := db.WithContext(ctx).Where("patient_id = ?", patientID)
	// sqlite has no row-level locks; its single writer covers us in tests.
	if db.Dialector.Name() != "sqlite" {
		stmt = stmt.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var entries []domain.UsageEntry
	err := stmt.Find(&entries).Error
	return entries, err
}

func (r *repo) DeleteByPatient(ctx context.Context, db *gorm.DB, patientID string) (int64, error) {
	res := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Delete(&domain.UsageEntry{})
	return res.RowsAffected, res.Error
}
