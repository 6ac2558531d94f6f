// Package domain contains persistence models for doctor administration.
package domain

import "time"

// Doctor is one practicing doctor on staff.
type Doctor struct {
	DoctorID       string    `gorm:"primaryKey;column:doctor_id" json:"doctor_id"`
	Name           string    `gorm:"not null" json:"name"`
	Specialization string    `gorm:"not null" json:"specialization"`
	ContactNo      string    `gorm:"not null" json:"contact_no"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Doctor) TableName() string { return "doctors" }
