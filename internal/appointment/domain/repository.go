package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, appt *Appointment) error
	Update(ctx context.Context, db *gorm.DB, appt *Appointment) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, apptID string) (int64, error)
	List(ctx context.Context, db *gorm.DB) ([]Appointment, error)
}
