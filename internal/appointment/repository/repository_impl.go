package repository

import (
	"context"

	"github.com/caredesk/caredesk/internal/appointment/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, appt *domain.Appointment) error {
	return db.WithContext(ctx).Create(appt).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, appt *domain.Appointment) (int64, error) {
	res := db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("appt_id = ?", appt.ApptID).
		Updates(map[string]any{
			"patient_id": appt.PatientID,
			"doctor_id":  appt.DoctorID,
			"date":       appt.Date,
			"diagnosis":  appt.Diagnosis,
			"updated_at": appt.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, apptID string) (int64, error) {
	res := db.WithContext(ctx).Where("appt_id = ?", apptID).Delete(&domain.Appointment{})
	return res.RowsAffected, res.Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := db.WithContext(ctx).Model(&domain.Appointment{}).Find(&appts).Error
	return appts, err
}
