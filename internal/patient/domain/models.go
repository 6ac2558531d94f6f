// Package domain contains persistence models for patient administration.
package domain

import "time"

// Patient is one admitted or registered patient record.
type Patient struct {
	PatientID     string    `gorm:"primaryKey;column:patient_id" json:"patient_id"`
	Name          string    `gorm:"not null" json:"name"`
	Age           int       `gorm:"not null" json:"age"`
	Gender        string    `gorm:"not null" json:"gender"`
	AdmissionDate time.Time `gorm:"type:date;not null" json:"admission_date"`
	ContactNo     string    `gorm:"not null" json:"contact_no"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Patient) TableName() string { return "patients" }
