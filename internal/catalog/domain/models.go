// Package domain contains persistence models for the billable service catalog.
package domain

import "time"

// Entry is one named, priced service that can be attributed to a patient.
type Entry struct {
	ServiceID string    `gorm:"primaryKey;column:service_id" json:"service_id"`
	Name      string    `gorm:"column:service_name;not null" json:"name"`
	Cost      float64   `gorm:"not null" json:"cost"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Entry) TableName() string { return "services" }
