package repository

import (
	"context"

	"github.com/caredesk/caredesk/internal/doctor/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, doctor *domain.Doctor) error {
	return db.WithContext(ctx).Create(doctor).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, doctor *domain.Doctor) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Doctor{}).
		Where("doctor_id = ?", doctor.DoctorID).
		Updates(map[string]any{
			"name":           doctor.Name,
			"specialization": doctor.Specialization,
			"contact_no":     doctor.ContactNo,
			"updated_at":     doctor.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, doctorID string) (int64, error) {
	res := db.WithContext(ctx).Where("doctor_id = ?", doctorID).Delete(&domain.Doctor{})
	return res.RowsAffected, res.Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Doctor, error) {
	var doctors []domain.Doctor
	err := db.WithContext(ctx).Model(&domain.Doctor{}).Find(&doctors).Error
	return doctors, err
}

func (r *repo) Exists(ctx context.Context, db *gorm.DB, doctorID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Doctor{}).
		Where("doctor_id = ?", doctorID).
		Count(&count).Error
	return count > 0, err
}
