// Package domain contains persistence models for the usage staging ledger.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// UsageEntry is one staged service charge awaiting billing. Name and cost
// are copied from the catalog at attribution time so later catalog updates
// do not alter pending charges.
type UsageEntry struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	PatientID   string       `gorm:"not null;index" json:"patient_id"`
	ServiceID   string       `gorm:"not null" json:"service_id"`
	ServiceName string       `gorm:"not null" json:"service_name"`
	Cost        float64      `gorm:"not null" json:"cost"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (UsageEntry) TableName() string { return "service_usage" }
