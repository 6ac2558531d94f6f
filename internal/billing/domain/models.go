// Package domain contains persistence models for finalized bills.
package domain

import "time"

// Bill is the finalized record of total charges for a patient as of a
// billing date. The total is computed from the staged usage entries that
// existed at the moment the bill was created or updated.
type Bill struct {
	BillID      string    `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	PatientID   string    `gorm:"not null;index" json:"patient_id"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	BillingDate time.Time `gorm:"type:date;not null" json:"billing_date"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Bill) TableName() string { return "bills" }
