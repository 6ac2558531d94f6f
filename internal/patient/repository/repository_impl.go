package repository

import (
	"context"

	"github.com/caredesk/caredesk/internal/patient/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, patient *domain.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, patient *domain.Patient) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Patient{}).
		Where("patient_id = ?", patient.PatientID).
		Updates(map[string]any{
			"name":           patient.Name,
			"age":            patient.Age,
			"gender":         patient.Gender,
			"admission_date": patient.AdmissionDate,
			"contact_no":     patient.ContactNo,
			"updated_at":     patient.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, patientID string) (int64, error) {
	res := db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&domain.Patient{})
	return res.RowsAffected, res.Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Patient, error) {
	var patients []domain.Patient
	err := db.WithContext(ctx).Model(&domain.Patient{}).Find(&patients).Error
	return patients, err
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, patientID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Patient{}).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count > 0, err
}
