// Package domain contains persistence models for appointment scheduling.
package domain

import "time"

// Appointment links a patient and a doctor on a given date.
type Appointment struct {
	ApptID    string    `gorm:"primaryKey;column:appt_id" json:"appt_id"`
	PatientID string    `gorm:"not null;index" json:"patient_id"`
	DoctorID  string    `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Diagnosis string    `gorm:"not null" json:"diagnosis"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Appointment) TableName() string { return "appointments" }
